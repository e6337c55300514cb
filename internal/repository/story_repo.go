package repository

import (
	"context"

	"tourvisor-backend/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type StoryRepo struct {
	collection *mongo.Collection
}

func NewStoryRepo(db *mongo.Database) *StoryRepo {
	return &StoryRepo{
		collection: db.Collection("stories"),
	}
}

func (r *StoryRepo) Create(ctx context.Context, story *models.Story) (*mongo.InsertOneResult, error) {
	return r.collection.InsertOne(ctx, story)
}

func (r *StoryRepo) FindAll(ctx context.Context) ([]models.Story, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	stories := []models.Story{}
	if err := cursor.All(ctx, &stories); err != nil {
		return nil, err
	}
	return stories, nil
}

func (r *StoryRepo) FindByID(ctx context.Context, id bson.ObjectID) (*models.Story, error) {
	var story models.Story
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&story)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &story, nil
}
