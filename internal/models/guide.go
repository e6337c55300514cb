package models

import (
	"go.mongodb.org/mongo-driver/v2/bson"
)

// Guide is a guide-profile submission. At most one submission per email —
// enforced by a unique index on the guides collection.
type Guide struct {
	ID         bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Email      string        `bson:"email" json:"email"`
	Name       string        `bson:"name,omitempty" json:"name,omitempty"`
	Photo      string        `bson:"photo,omitempty" json:"photo,omitempty"`
	Experience string        `bson:"experience,omitempty" json:"experience,omitempty"`
	Specialty  string        `bson:"specialty,omitempty" json:"specialty,omitempty"`
	Education  string        `bson:"education,omitempty" json:"education,omitempty"`
	Skills     []string      `bson:"skills,omitempty" json:"skills,omitempty"`
	Reason     string        `bson:"reason,omitempty" json:"reason,omitempty"`
	CVLink     string        `bson:"cvLink,omitempty" json:"cvLink,omitempty"`
}
