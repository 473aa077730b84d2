package service

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/checkin-service/internal/domain/model"
	"github.com/guttosm/checkin-service/internal/metrics"
	"github.com/guttosm/checkin-service/internal/repository"
)

var (
	// ErrAlreadyCheckedIn is returned when a worker re-checks-in to an event.
	ErrAlreadyCheckedIn = errors.New("worker already checked in")
	// ErrEventClosed is returned when the event is outside its check-in window.
	ErrEventClosed = errors.New("event not accepting check-ins")
)

// CheckInService defines check-in recording operations.
type CheckInService interface {
	Create(ctx context.Context, workerID, eventID primitive.ObjectID, device string) (*model.CheckIn, error)
	ListByEvent(ctx context.Context, eventID primitive.ObjectID, limit, skip int) ([]model.CheckIn, error)
	CountByEvent(ctx context.Context, eventID primitive.ObjectID) (int64, error)
}

type checkInService struct {
	checkIns repository.CheckInRepositoryInterface
	workers  repository.WorkerRepositoryInterface
	events   repository.EventRepositoryInterface
}

// NewCheckInService creates a CheckInService.
func NewCheckInService(
	checkIns repository.CheckInRepositoryInterface,
	workers repository.WorkerRepositoryInterface,
	events repository.EventRepositoryInterface,
) CheckInService {
	return &checkInService{
		checkIns: checkIns,
		workers:  workers,
		events:   events,
	}
}

// Create records a check-in after verifying the worker exists and the event
// is inside its check-in window. Duplicate check-ins surface as
// ErrAlreadyCheckedIn via the unique index rather than a read-then-write
// race.
func (s *checkInService) Create(ctx context.Context, workerID, eventID primitive.ObjectID, device string) (*model.CheckIn, error) {
	worker, err := s.workers.GetByID(ctx, workerID)
	if err != nil {
		return nil, err
	}
	if worker == nil {
		metrics.RecordCheckIn("worker_not_found")
		return nil, ErrWorkerNotFound
	}

	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		metrics.RecordCheckIn("event_not_found")
		return nil, ErrEventNotFound
	}
	if !event.IsOpen(time.Now()) {
		metrics.RecordCheckIn("event_closed")
		return nil, ErrEventClosed
	}

	checkIn := &model.CheckIn{
		WorkerID: workerID,
		EventID:  eventID,
		Device:   device,
	}
	if err := s.checkIns.Create(ctx, checkIn); err != nil {
		if errors.Is(err, repository.ErrDuplicateCheckIn) {
			metrics.RecordCheckIn("duplicate")
			return nil, ErrAlreadyCheckedIn
		}
		metrics.RecordCheckIn("error")
		return nil, err
	}

	metrics.RecordCheckIn("success")
	return checkIn, nil
}

// ListByEvent returns check-ins for an event, most recent first.
func (s *checkInService) ListByEvent(ctx context.Context, eventID primitive.ObjectID, limit, skip int) ([]model.CheckIn, error) {
	return s.checkIns.ListByEvent(ctx, eventID, limit, skip)
}

// CountByEvent returns the number of check-ins for an event.
func (s *checkInService) CountByEvent(ctx context.Context, eventID primitive.ObjectID) (int64, error) {
	return s.checkIns.CountByEvent(ctx, eventID)
}
