// Package repository provides circuit breaker wrappers for MongoDB operations.
package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/checkin-service/internal/circuitbreaker"
	"github.com/guttosm/checkin-service/internal/domain/model"
)

// WorkerRepositoryWithCircuitBreaker wraps WorkerRepository with circuit
// breaker protection. When the circuit is open, Search fails fast with
// ErrCircuitOpen and the lookup core degrades to an empty result instead of
// queueing behind a browning-out database.
type WorkerRepositoryWithCircuitBreaker struct {
	repo           *WorkerRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewWorkerRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewWorkerRepositoryWithCircuitBreaker(repo *WorkerRepository, cb *circuitbreaker.CircuitBreaker) *WorkerRepositoryWithCircuitBreaker {
	return &WorkerRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Search performs a worker search with circuit breaker protection.
func (r *WorkerRepositoryWithCircuitBreaker) Search(ctx context.Context, term string, limit int) ([]model.Worker, error) {
	var result []model.Worker
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Search(ctx, term, limit)
		return cbErr
	})
	return result, err
}

// Create inserts a worker with circuit breaker protection.
func (r *WorkerRepositoryWithCircuitBreaker) Create(ctx context.Context, worker *model.Worker) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, worker)
	})
}

// GetByID fetches a worker with circuit breaker protection.
func (r *WorkerRepositoryWithCircuitBreaker) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Worker, error) {
	var result *model.Worker
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.GetByID(ctx, id)
		return cbErr
	})
	return result, err
}

// List fetches workers with circuit breaker protection.
func (r *WorkerRepositoryWithCircuitBreaker) List(ctx context.Context, limit, skip int) ([]model.Worker, error) {
	var result []model.Worker
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.List(ctx, limit, skip)
		return cbErr
	})
	return result, err
}

// Deactivate marks a worker inactive with circuit breaker protection.
func (r *WorkerRepositoryWithCircuitBreaker) Deactivate(ctx context.Context, id primitive.ObjectID) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Deactivate(ctx, id)
	})
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *WorkerRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}
