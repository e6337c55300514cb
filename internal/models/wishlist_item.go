package models

import (
	"go.mongodb.org/mongo-driver/v2/bson"
)

// WishlistItem stores a snapshot of the package a tourist saved, keyed by
// the tourist's email.
type WishlistItem struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Email     string        `bson:"email" json:"email"`
	PackageID string        `bson:"packageId,omitempty" json:"packageId,omitempty"`
	Title     string        `bson:"title,omitempty" json:"title,omitempty"`
	TourType  string        `bson:"tourType,omitempty" json:"tourType,omitempty"`
	Price     float64       `bson:"price,omitempty" json:"price,omitempty"`
	Image     string        `bson:"image,omitempty" json:"image,omitempty"`
}
