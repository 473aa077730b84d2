// Package repository provides data access for check-ins.
package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/guttosm/checkin-service/internal/domain/model"
)

// ErrDuplicateCheckIn is returned when a worker is already checked in to
// the event. Backed by the unique (worker_id, event_id) index.
var ErrDuplicateCheckIn = errors.New("worker already checked in to event")

// CheckInRepository provides methods for check-in operations.
type CheckInRepository struct {
	collection *mongo.Collection
}

// NewCheckInRepository creates a new check-in repository.
func NewCheckInRepository(db *MongoDB) *CheckInRepository {
	return &CheckInRepository{
		collection: db.CheckIns,
	}
}

// Create inserts a new check-in, filling in the generated ID and timestamp.
func (r *CheckInRepository) Create(ctx context.Context, checkIn *model.CheckIn) error {
	checkIn.ID = primitive.NewObjectID()
	if checkIn.CheckedInAt.IsZero() {
		checkIn.CheckedInAt = time.Now()
	}

	_, err := r.collection.InsertOne(ctx, checkIn)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateCheckIn
	}
	return err
}

// ListByEvent returns check-ins for an event, most recent first.
func (r *CheckInRepository) ListByEvent(ctx context.Context, eventID primitive.ObjectID, limit, skip int) ([]model.CheckIn, error) {
	opts := options.Find().SetSort(bson.M{"checked_in_at": -1})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}
	if skip > 0 {
		opts.SetSkip(int64(skip))
	}

	cursor, err := r.collection.Find(ctx, bson.M{"event_id": eventID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var checkIns []model.CheckIn
	if err := cursor.All(ctx, &checkIns); err != nil {
		return nil, err
	}
	return checkIns, nil
}

// CountByEvent returns the number of check-ins recorded for an event.
func (r *CheckInRepository) CountByEvent(ctx context.Context, eventID primitive.ObjectID) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"event_id": eventID})
}
