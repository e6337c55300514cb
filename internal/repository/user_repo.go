package repository

import (
	"context"
	"time"

	"tourvisor-backend/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type UserRepo struct {
	collection *mongo.Collection
}

func NewUserRepo(db *mongo.Database) *UserRepo {
	return &UserRepo{
		collection: db.Collection("users"),
	}
}

func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// Search lists users whose email matches the search string case-insensitively.
// An empty search matches everyone. A non-empty role narrows to an exact match.
func (r *UserRepo) Search(ctx context.Context, search, role string) ([]models.User, error) {
	query := bson.M{
		"email": bson.M{"$regex": search, "$options": "i"},
	}
	if role != "" {
		query["role"] = role
	}

	cursor, err := r.collection.Find(ctx, query)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// UpdateStatus sets only the status field of the user with the given email.
func (r *UserRepo) UpdateStatus(ctx context.Context, email, status string) (*mongo.UpdateResult, error) {
	return r.collection.UpdateOne(ctx, bson.M{"email": email}, bson.M{
		"$set": bson.M{"status": status},
	})
}

// Upsert inserts the user keyed by email, stamping a server-assigned timestamp.
func (r *UserRepo) Upsert(ctx context.Context, user *models.User) (*mongo.UpdateResult, error) {
	user.Timestamp = time.Now().UnixMilli()
	return r.collection.UpdateOne(ctx,
		bson.M{"email": user.Email},
		bson.M{"$set": user},
		options.UpdateOne().SetUpsert(true),
	)
}

// UpdateFields overwrites the submitted fields on the targeted user and
// refreshes the timestamp. The _id field is never overwritten.
func (r *UserRepo) UpdateFields(ctx context.Context, email string, fields bson.M) (*mongo.UpdateResult, error) {
	delete(fields, "_id")
	delete(fields, "id")
	fields["timestamp"] = time.Now().UnixMilli()
	return r.collection.UpdateOne(ctx, bson.M{"email": email}, bson.M{
		"$set": fields,
	})
}

// EnsureIndexes creates necessary indexes for the users collection
func (r *UserRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
