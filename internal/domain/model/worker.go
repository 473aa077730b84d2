// Package model defines the core domain entities for the check-in service.
package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Worker represents a registered worker eligible to check in at events.
type Worker struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FullName  string             `bson:"full_name" json:"full_name"`
	Email     string             `bson:"email" json:"email"`
	Phone     string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Active    bool               `bson:"active" json:"active"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}

// SearchTexts returns the searchable projections of the worker, in the
// order they should be considered by the ranker.
func (w Worker) SearchTexts() []string {
	return []string{w.FullName, w.Email, w.Phone}
}
