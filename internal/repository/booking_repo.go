package repository

import (
	"context"
	"time"

	"tourvisor-backend/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type BookingRepo struct {
	collection *mongo.Collection
}

func NewBookingRepo(db *mongo.Database) *BookingRepo {
	return &BookingRepo{
		collection: db.Collection("bookings"),
	}
}

func (r *BookingRepo) Create(ctx context.Context, booking *models.Booking) (*mongo.InsertOneResult, error) {
	booking.CreatedAt = time.Now()
	return r.collection.InsertOne(ctx, booking)
}

func (r *BookingRepo) FindByID(ctx context.Context, id bson.ObjectID) (*models.Booking, error) {
	var booking models.Booking
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&booking)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &booking, nil
}

func (r *BookingRepo) FindByEmail(ctx context.Context, email string) ([]models.Booking, error) {
	return r.find(ctx, bson.M{"email": email})
}

// FindByGuide lists bookings assigned to a guide by name (the tourGuide field).
func (r *BookingRepo) FindByGuide(ctx context.Context, guideName string) ([]models.Booking, error) {
	return r.find(ctx, bson.M{"tourGuide": guideName})
}

func (r *BookingRepo) find(ctx context.Context, query bson.M) ([]models.Booking, error) {
	cursor, err := r.collection.Find(ctx, query)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	bookings := []models.Booking{}
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// UpdateStatus sets only the status field of the targeted booking.
func (r *BookingRepo) UpdateStatus(ctx context.Context, id bson.ObjectID, status string) (*mongo.UpdateResult, error) {
	return r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{"status": status},
	})
}

func (r *BookingRepo) DeleteByID(ctx context.Context, id bson.ObjectID) (*mongo.DeleteResult, error) {
	return r.collection.DeleteOne(ctx, bson.M{"_id": id})
}

// EnsureIndexes creates necessary indexes for the bookings collection
func (r *BookingRepo) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "email", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "tourGuide", Value: 1}},
		},
	}
	_, err := r.collection.Indexes().CreateMany(ctx, indexes)
	return err
}
