// Package app provides database initialization and setup.
package app

import (
	"github.com/rs/zerolog/log"

	"github.com/guttosm/checkin-service/config"
	"github.com/guttosm/checkin-service/internal/circuitbreaker"
	"github.com/guttosm/checkin-service/internal/repository"
)

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	DB                    *repository.MongoDB
	WorkerRepo            repository.WorkerRepositoryInterface
	EventRepo             repository.EventRepositoryInterface
	CheckInRepo           repository.CheckInRepositoryInterface
	WorkersCircuitBreaker *circuitbreaker.CircuitBreaker
}

// InitializeDatabase initializes the MongoDB connection and creates required
// repositories. Returns nil if the database is disabled or the connection
// fails; the service then serves only infrastructure routes.
func InitializeDatabase(cfg config.DatabaseConfig) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing without database")
		return nil
	}

	log.Info().Msg("Connected to MongoDB")

	// The worker repository sits on the lookup hot path, so it gets circuit
	// breaker protection. Event and check-in traffic is low-volume.
	workersCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-workers",
	})

	workerRepo := repository.NewWorkerRepository(db)
	workerRepoWithCB := repository.NewWorkerRepositoryWithCircuitBreaker(workerRepo, workersCB)

	return &DatabaseComponents{
		DB:                    db,
		WorkerRepo:            workerRepoWithCB,
		EventRepo:             repository.NewEventRepository(db),
		CheckInRepo:           repository.NewCheckInRepository(db),
		WorkersCircuitBreaker: workersCB,
	}
}
