package service

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/checkin-service/internal/domain/model"
	"github.com/guttosm/checkin-service/internal/repository"
)

// ErrEventNotFound is returned when a referenced event does not exist.
var ErrEventNotFound = errors.New("event not found")

// EventService defines event administration operations.
type EventService interface {
	Create(ctx context.Context, name, location string, startsAt, endsAt time.Time) (*model.Event, error)
	Get(ctx context.Context, id primitive.ObjectID) (*model.Event, error)
	List(ctx context.Context, limit, skip int) ([]model.Event, error)
}

type eventService struct {
	repo repository.EventRepositoryInterface
}

// NewEventService creates an EventService.
func NewEventService(repo repository.EventRepositoryInterface) EventService {
	return &eventService{repo: repo}
}

// Create stores a new event.
func (s *eventService) Create(ctx context.Context, name, location string, startsAt, endsAt time.Time) (*model.Event, error) {
	event := &model.Event{
		Name:     name,
		Location: location,
		StartsAt: startsAt,
		EndsAt:   endsAt,
	}
	if err := s.repo.Create(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

// Get returns an event by ID.
func (s *eventService) Get(ctx context.Context, id primitive.ObjectID) (*model.Event, error) {
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, ErrEventNotFound
	}
	return event, nil
}

// List returns events, newest first.
func (s *eventService) List(ctx context.Context, limit, skip int) ([]model.Event, error) {
	return s.repo.List(ctx, limit, skip)
}
