// Package repository provides data access for events.
package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/guttosm/checkin-service/internal/domain/model"
)

// EventRepository provides methods for event operations.
type EventRepository struct {
	collection *mongo.Collection
}

// NewEventRepository creates a new event repository.
func NewEventRepository(db *MongoDB) *EventRepository {
	return &EventRepository{
		collection: db.Events,
	}
}

// Create inserts a new event, filling in the generated ID and timestamp.
func (r *EventRepository) Create(ctx context.Context, event *model.Event) error {
	event.ID = primitive.NewObjectID()
	event.CreatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, event)
	return err
}

// GetByID returns the event with the given ID, or nil if absent.
func (r *EventRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Event, error) {
	var event model.Event
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&event)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// List returns events sorted by start time, newest first.
func (r *EventRepository) List(ctx context.Context, limit, skip int) ([]model.Event, error) {
	opts := options.Find().SetSort(bson.M{"starts_at": -1})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}
	if skip > 0 {
		opts.SetSkip(int64(skip))
	}

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var events []model.Event
	if err := cursor.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}
