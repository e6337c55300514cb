package models

import (
	"go.mongodb.org/mongo-driver/v2/bson"
)

type Story struct {
	ID     bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Email  string        `bson:"email" json:"email"`
	Name   string        `bson:"name,omitempty" json:"name,omitempty"`
	Title  string        `bson:"title" json:"title"`
	Story  string        `bson:"story" json:"story"`
	Images []string      `bson:"images,omitempty" json:"images,omitempty"`
}
