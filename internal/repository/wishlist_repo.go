package repository

import (
	"context"

	"tourvisor-backend/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type WishlistRepo struct {
	collection *mongo.Collection
}

func NewWishlistRepo(db *mongo.Database) *WishlistRepo {
	return &WishlistRepo{
		collection: db.Collection("wishlist"),
	}
}

func (r *WishlistRepo) Create(ctx context.Context, item *models.WishlistItem) (*mongo.InsertOneResult, error) {
	return r.collection.InsertOne(ctx, item)
}

func (r *WishlistRepo) FindByEmail(ctx context.Context, email string) ([]models.WishlistItem, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := []models.WishlistItem{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *WishlistRepo) DeleteByID(ctx context.Context, id bson.ObjectID) (*mongo.DeleteResult, error) {
	return r.collection.DeleteOne(ctx, bson.M{"_id": id})
}

// EnsureIndexes creates necessary indexes for the wishlist collection
func (r *WishlistRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "email", Value: 1}},
	})
	return err
}
