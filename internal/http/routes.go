package http

import (
	"github.com/gin-gonic/gin"
)

// RouteGroup defines a group of routes that can be registered.
type RouteGroup interface {
	// RegisterRoutes registers routes to the given router group.
	RegisterRoutes(rg *gin.RouterGroup)
}

// CheckInRoutes handles worker, event, and check-in route registration.
type CheckInRoutes struct {
	handler *Handler
}

// NewCheckInRoutes creates a new CheckInRoutes instance.
func NewCheckInRoutes(handler *Handler) *CheckInRoutes {
	return &CheckInRoutes{handler: handler}
}

// RegisterRoutes registers all API routes on the given group.
func (r *CheckInRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	if r.handler == nil {
		return
	}

	// The search route sits before the :id wildcard on purpose: tablets hit
	// it on every debounced keystroke and it must resolve first.
	rg.GET("/workers/search", r.handler.SearchWorkers)
	rg.POST("/workers", r.handler.CreateWorker)
	rg.GET("/workers", r.handler.ListWorkers)
	rg.GET("/workers/:id", r.handler.GetWorker)
	rg.DELETE("/workers/:id", r.handler.DeactivateWorker)

	rg.POST("/events", r.handler.CreateEvent)
	rg.GET("/events", r.handler.ListEvents)
	rg.GET("/events/:id", r.handler.GetEvent)
	rg.GET("/events/:id/checkins", r.handler.ListEventCheckIns)

	rg.POST("/checkins", r.handler.CreateCheckIn)

	rg.GET("/search/stats", r.handler.SearchStats)
	rg.GET("/search/errors", r.handler.SearchErrors)
}

// GetHandler returns the underlying handler.
func (r *CheckInRoutes) GetHandler() *Handler {
	return r.handler
}
