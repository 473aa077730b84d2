// Package service contains the business logic for the check-in service.
package service

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/checkin-service/internal/domain/model"
	"github.com/guttosm/checkin-service/internal/repository"
)

// ErrWorkerNotFound is returned when a referenced worker does not exist.
var ErrWorkerNotFound = errors.New("worker not found")

// SearchInvalidator drops cached search results. Worker mutations call it
// so stale rankings never outlive a change by more than one request.
type SearchInvalidator interface {
	InvalidateAll()
}

// WorkerService defines worker administration operations.
type WorkerService interface {
	Create(ctx context.Context, fullName, email, phone string) (*model.Worker, error)
	Get(ctx context.Context, id primitive.ObjectID) (*model.Worker, error)
	List(ctx context.Context, limit, skip int) ([]model.Worker, error)
	Deactivate(ctx context.Context, id primitive.ObjectID) error
}

type workerService struct {
	repo        repository.WorkerRepositoryInterface
	invalidator SearchInvalidator
}

// NewWorkerService creates a WorkerService. invalidator may be nil when no
// search cache is wired (tests, tooling).
func NewWorkerService(repo repository.WorkerRepositoryInterface, invalidator SearchInvalidator) WorkerService {
	return &workerService{
		repo:        repo,
		invalidator: invalidator,
	}
}

// Create registers a worker and invalidates cached search results.
func (s *workerService) Create(ctx context.Context, fullName, email, phone string) (*model.Worker, error) {
	worker := &model.Worker{
		FullName: fullName,
		Email:    email,
		Phone:    phone,
	}
	if err := s.repo.Create(ctx, worker); err != nil {
		return nil, err
	}

	if s.invalidator != nil {
		s.invalidator.InvalidateAll()
	}
	return worker, nil
}

// Get returns a worker by ID.
func (s *workerService) Get(ctx context.Context, id primitive.ObjectID) (*model.Worker, error) {
	worker, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if worker == nil {
		return nil, ErrWorkerNotFound
	}
	return worker, nil
}

// List returns registered workers, newest first.
func (s *workerService) List(ctx context.Context, limit, skip int) ([]model.Worker, error) {
	return s.repo.List(ctx, limit, skip)
}

// Deactivate removes a worker from search results and invalidates the cache.
func (s *workerService) Deactivate(ctx context.Context, id primitive.ObjectID) error {
	if err := s.repo.Deactivate(ctx, id); err != nil {
		return err
	}
	if s.invalidator != nil {
		s.invalidator.InvalidateAll()
	}
	return nil
}
