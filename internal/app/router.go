// Package app provides router configuration.
package app

import (
	"context"

	"github.com/guttosm/checkin-service/config"
	"github.com/guttosm/checkin-service/internal/http"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	Handler       *http.Handler
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// mongoHealthChecker adapts the MongoDB ping to the HealthChecker interface.
type mongoHealthChecker struct {
	components *DatabaseComponents
}

func (m *mongoHealthChecker) Check() error {
	return m.components.DB.HealthCheck(context.Background())
}

// InitializeRouter initializes HTTP handlers and router configuration.
// When the database is unavailable the business handler is nil and only
// infrastructure routes are served.
func InitializeRouter(
	serviceComponents *ServiceComponents,
	dbComponents *DatabaseComponents,
	cfg config.Config,
) *RouterComponents {
	healthHandler := http.NewHealthHandler()

	var handler *http.Handler
	if serviceComponents != nil {
		handler = http.NewHandler(
			serviceComponents.Workers,
			serviceComponents.Events,
			serviceComponents.CheckIns,
			serviceComponents.Searcher,
		)
	}

	if dbComponents != nil {
		healthHandler.RegisterChecker("mongodb", &mongoHealthChecker{components: dbComponents})
		if dbComponents.WorkersCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_workers", dbComponents.WorkersCircuitBreaker)
		}
	}

	routerCfg := http.RouterConfig{
		RateLimit:         cfg.Server.RateLimit,
		RateWindow:        cfg.Server.RateWindow,
		RequestTimeout:    http.DefaultRouterConfig().RequestTimeout,
		EnableIdempotency: true,
		CORSOrigins:       cfg.Server.CORSOrigins,
	}

	return &RouterComponents{
		Handler:       handler,
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}
