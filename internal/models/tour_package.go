package models

import (
	"go.mongodb.org/mongo-driver/v2/bson"
)

type TourPackage struct {
	ID          bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string        `bson:"title" json:"title"`
	TourType    string        `bson:"tourType,omitempty" json:"tourType,omitempty"`
	Price       float64       `bson:"price" json:"price"`
	Duration    string        `bson:"duration,omitempty" json:"duration,omitempty"`
	Description string        `bson:"description,omitempty" json:"description,omitempty"`
	Images      []string      `bson:"images,omitempty" json:"images,omitempty"`
}
