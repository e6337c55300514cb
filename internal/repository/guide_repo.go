package repository

import (
	"context"

	"tourvisor-backend/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type GuideRepo struct {
	collection *mongo.Collection
}

func NewGuideRepo(db *mongo.Database) *GuideRepo {
	return &GuideRepo{
		collection: db.Collection("guides"),
	}
}

// Create inserts a guide profile. The unique index on email makes a second
// submission for the same email fail with a duplicate key error, which the
// handler maps to the "Already Submitted" domain error.
func (r *GuideRepo) Create(ctx context.Context, guide *models.Guide) (*mongo.InsertOneResult, error) {
	return r.collection.InsertOne(ctx, guide)
}

func (r *GuideRepo) FindAll(ctx context.Context) ([]models.Guide, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	guides := []models.Guide{}
	if err := cursor.All(ctx, &guides); err != nil {
		return nil, err
	}
	return guides, nil
}

func (r *GuideRepo) FindByID(ctx context.Context, id bson.ObjectID) (*models.Guide, error) {
	var guide models.Guide
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&guide)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &guide, nil
}

// EnsureIndexes creates necessary indexes for the guides collection
func (r *GuideRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
