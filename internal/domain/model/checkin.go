package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CheckIn records a single worker check-in at an event. A worker checks in
// at most once per event, enforced by a unique index on (worker_id, event_id).
type CheckIn struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	WorkerID    primitive.ObjectID `bson:"worker_id" json:"worker_id"`
	EventID     primitive.ObjectID `bson:"event_id" json:"event_id"`
	CheckedInAt time.Time          `bson:"checked_in_at" json:"checked_in_at"`
	Device      string             `bson:"device,omitempty" json:"device,omitempty"`
}
