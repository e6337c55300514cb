package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Booking links a tourist (by email) to a guide (by name, field tourGuide).
// Status is a free-form string set by the guide ("In Review", "Accepted",
// "Rejected", ...); no transition rules are enforced.
type Booking struct {
	ID           bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Reference    string        `bson:"reference,omitempty" json:"reference,omitempty"`
	Email        string        `bson:"email" json:"email"`
	PackageTitle string        `bson:"packageTitle,omitempty" json:"packageTitle,omitempty"`
	TourGuide    string        `bson:"tourGuide" json:"tourGuide"`
	Date         string        `bson:"date,omitempty" json:"date,omitempty"`
	Price        float64       `bson:"price,omitempty" json:"price,omitempty"`
	Status       string        `bson:"status,omitempty" json:"status,omitempty"`
	CreatedAt    time.Time     `bson:"created_at,omitempty" json:"created_at,omitempty"`
}
