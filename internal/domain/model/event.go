package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Event represents a scheduled event workers check in to.
type Event struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Location  string             `bson:"location,omitempty" json:"location,omitempty"`
	StartsAt  time.Time          `bson:"starts_at" json:"starts_at"`
	EndsAt    time.Time          `bson:"ends_at" json:"ends_at"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}

// IsOpen reports whether the event accepts check-ins at the given time.
func (e Event) IsOpen(at time.Time) bool {
	return !at.Before(e.StartsAt) && !at.After(e.EndsAt)
}
