package repository

import (
	"context"

	"tourvisor-backend/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type PackageRepo struct {
	collection *mongo.Collection
}

func NewPackageRepo(db *mongo.Database) *PackageRepo {
	return &PackageRepo{
		collection: db.Collection("packages"),
	}
}

func (r *PackageRepo) Create(ctx context.Context, pkg *models.TourPackage) (*mongo.InsertOneResult, error) {
	return r.collection.InsertOne(ctx, pkg)
}

func (r *PackageRepo) FindAll(ctx context.Context) ([]models.TourPackage, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	packages := []models.TourPackage{}
	if err := cursor.All(ctx, &packages); err != nil {
		return nil, err
	}
	return packages, nil
}

func (r *PackageRepo) FindByID(ctx context.Context, id bson.ObjectID) (*models.TourPackage, error) {
	var pkg models.TourPackage
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&pkg)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &pkg, nil
}
