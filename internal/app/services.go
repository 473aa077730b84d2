// Package app provides service initialization.
package app

import (
	"context"

	"github.com/guttosm/checkin-service/config"
	"github.com/guttosm/checkin-service/internal/domain/model"
	"github.com/guttosm/checkin-service/internal/search"
	"github.com/guttosm/checkin-service/internal/service"
)

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Workers  service.WorkerService
	Events   service.EventService
	CheckIns service.CheckInService
	Searcher *search.Searcher[model.Worker]
}

// debouncedInvalidator coalesces bursts of cache invalidations. Roster
// imports create hundreds of workers in seconds; one invalidation after the
// burst settles is enough, since the cache TTL is short anyway.
type debouncedInvalidator struct {
	debouncer *search.Debouncer
	searcher  *search.Searcher[model.Worker]
}

func (d *debouncedInvalidator) InvalidateAll() {
	d.debouncer.Call("workers", func(context.Context) {
		d.searcher.InvalidateAll()
	})
}

// InitializeServices initializes business logic services and the worker
// lookup engine. Returns nil when no database components are available.
func InitializeServices(cfg config.SearchConfig, dbComponents *DatabaseComponents) *ServiceComponents {
	if dbComponents == nil {
		return nil
	}

	monitor := search.NewMonitor(cfg.MonitorBufferSize)
	searcher := search.NewSearcher[model.Worker]("workers", dbComponents.WorkerRepo, model.Worker.SearchTexts, monitor, search.Config{
		CacheCapacity: cfg.CacheCapacity,
		CacheTTL:      cfg.CacheTTL,
		MaxCandidates: cfg.MaxCandidates,
		FetchTimeout:  cfg.FetchTimeout,
	})
	searcher.StartCacheSweeper(context.Background(), cfg.SweepInterval)

	invalidator := &debouncedInvalidator{
		debouncer: search.NewDebouncer(cfg.DebounceDelay),
		searcher:  searcher,
	}

	return &ServiceComponents{
		Workers:  service.NewWorkerService(dbComponents.WorkerRepo, invalidator),
		Events:   service.NewEventService(dbComponents.EventRepo),
		CheckIns: service.NewCheckInService(dbComponents.CheckInRepo, dbComponents.WorkerRepo, dbComponents.EventRepo),
		Searcher: searcher,
	}
}
