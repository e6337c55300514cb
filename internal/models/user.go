package models

import (
	"go.mongodb.org/mongo-driver/v2/bson"
)

// Roles stored on a user record. The stored role is the only authorization
// signal — token claims are never trusted for role checks.
const (
	RoleTourist = "tourist"
	RoleGuide   = "guide"
	RoleAdmin   = "admin"
)

type User struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Email     string        `bson:"email" json:"email"`
	Name      string        `bson:"name,omitempty" json:"name,omitempty"`
	Photo     string        `bson:"photo,omitempty" json:"photo,omitempty"`
	Role      string        `bson:"role,omitempty" json:"role,omitempty"`
	Status    string        `bson:"status,omitempty" json:"status,omitempty"`
	Timestamp int64         `bson:"timestamp,omitempty" json:"timestamp,omitempty"`
}
