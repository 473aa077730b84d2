// Package repository provides interfaces for repository operations.
package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/checkin-service/internal/domain/model"
)

// WorkerRepositoryInterface defines worker persistence operations.
// Search performs case-insensitive substring matching across the worker's
// searchable fields; callers re-order the rows themselves.
type WorkerRepositoryInterface interface {
	Search(ctx context.Context, term string, limit int) ([]model.Worker, error)
	Create(ctx context.Context, worker *model.Worker) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.Worker, error)
	List(ctx context.Context, limit, skip int) ([]model.Worker, error)
	Deactivate(ctx context.Context, id primitive.ObjectID) error
}

// EventRepositoryInterface defines event persistence operations.
type EventRepositoryInterface interface {
	Create(ctx context.Context, event *model.Event) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.Event, error)
	List(ctx context.Context, limit, skip int) ([]model.Event, error)
}

// CheckInRepositoryInterface defines check-in persistence operations.
type CheckInRepositoryInterface interface {
	Create(ctx context.Context, checkIn *model.CheckIn) error
	ListByEvent(ctx context.Context, eventID primitive.ObjectID, limit, skip int) ([]model.CheckIn, error)
	CountByEvent(ctx context.Context, eventID primitive.ObjectID) (int64, error)
}
