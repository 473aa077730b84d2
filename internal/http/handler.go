// Package http provides the HTTP handlers and router for the check-in service.
package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/checkin-service/internal/domain/dto"
	"github.com/guttosm/checkin-service/internal/domain/model"
	"github.com/guttosm/checkin-service/internal/i18n"
	"github.com/guttosm/checkin-service/internal/repository"
	"github.com/guttosm/checkin-service/internal/search"
	"github.com/guttosm/checkin-service/internal/service"
)

const (
	defaultListLimit   = 50
	maxListLimit       = 200
	defaultStatsWindow = 5 * time.Minute
)

// Handler provides HTTP handlers for worker, event, and check-in routes.
type Handler struct {
	workers  service.WorkerService
	events   service.EventService
	checkIns service.CheckInService
	searcher *search.Searcher[model.Worker]
}

// NewHandler creates a new Handler instance. searcher may be nil when the
// record store is disabled; search endpoints then return empty results.
func NewHandler(
	workers service.WorkerService,
	events service.EventService,
	checkIns service.CheckInService,
	searcher *search.Searcher[model.Worker],
) *Handler {
	return &Handler{
		workers:  workers,
		events:   events,
		checkIns: checkIns,
		searcher: searcher,
	}
}

// SearchWorkers handles GET /api/workers/search requests. The lookup never
// fails from the client's point of view: invalid terms and store faults both
// come back as an empty result set.
func (h *Handler) SearchWorkers(c *gin.Context) {
	builder := NewResponseBuilder(c)

	if h.searcher == nil {
		builder.SuccessOK(search.Result[model.Worker]{Results: []search.Ranked[model.Worker]{}})
		return
	}

	result := h.searcher.Search(c.Request.Context(), c.Query("q"))
	if result.Cached {
		c.Header("X-Cache", "hit")
	}
	builder.SuccessOK(result)
}

// SearchStats handles GET /api/search/stats requests. The window query
// parameter accepts a Go duration string and defaults to 5m.
func (h *Handler) SearchStats(c *gin.Context) {
	builder := NewResponseBuilder(c)

	if h.searcher == nil {
		builder.SuccessOK(search.Snapshot{TopSlowEndpoints: []search.EndpointTiming{}})
		return
	}

	window := defaultStatsWindow
	if raw := c.Query("window"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil || parsed <= 0 {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
			return
		}
		window = parsed
	}

	builder.SuccessOK(h.searcher.Monitor().Stats(window))
}

// SearchErrors handles GET /api/search/errors requests, returning recent
// failed lookup samples for debugging venue-side complaints.
func (h *Handler) SearchErrors(c *gin.Context) {
	builder := NewResponseBuilder(c)

	if h.searcher == nil {
		builder.SuccessOK([]search.Metric{})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	builder.SuccessOK(h.searcher.Monitor().RecentErrors(limit))
}

// CreateWorker handles POST /api/workers requests.
func (h *Handler) CreateWorker(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.CreateWorkerRequest](c)
	if err != nil {
		var vErr *dto.ValidationError
		if errors.As(err, &vErr) {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationWorker, err)
		} else {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		}
		return
	}

	worker, err := h.workers.Create(c.Request.Context(), req.FullName, req.Email, req.Phone)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			builder.ErrorWithMessage(http.StatusConflict, "email already registered", err)
			return
		}
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessCreated(worker)
}

// GetWorker handles GET /api/workers/:id requests.
func (h *Handler) GetWorker(c *gin.Context) {
	builder := NewResponseBuilder(c)

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	worker, err := h.workers.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrWorkerNotFound) {
			builder.Error(http.StatusNotFound, i18n.ErrKeyNotFound, err)
			return
		}
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(worker)
}

// ListWorkers handles GET /api/workers requests.
func (h *Handler) ListWorkers(c *gin.Context) {
	builder := NewResponseBuilder(c)

	limit, skip := paginationParams(c)
	workers, err := h.workers.List(c.Request.Context(), limit, skip)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(workers)
}

// DeactivateWorker handles DELETE /api/workers/:id requests. Deactivated
// workers stop appearing in search results but keep their check-in history.
func (h *Handler) DeactivateWorker(c *gin.Context) {
	builder := NewResponseBuilder(c)

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	if err := h.workers.Deactivate(c.Request.Context(), id); err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// CreateEvent handles POST /api/events requests.
func (h *Handler) CreateEvent(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.CreateEventRequest](c)
	if err != nil {
		var vErr *dto.ValidationError
		if errors.As(err, &vErr) {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationEvent, err)
		} else {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		}
		return
	}

	event, err := h.events.Create(c.Request.Context(), req.Name, req.Location, req.StartsAt, req.EndsAt)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessCreated(event)
}

// GetEvent handles GET /api/events/:id requests.
func (h *Handler) GetEvent(c *gin.Context) {
	builder := NewResponseBuilder(c)

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	event, err := h.events.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			builder.Error(http.StatusNotFound, i18n.ErrKeyNotFound, err)
			return
		}
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(event)
}

// ListEvents handles GET /api/events requests.
func (h *Handler) ListEvents(c *gin.Context) {
	builder := NewResponseBuilder(c)

	limit, skip := paginationParams(c)
	events, err := h.events.List(c.Request.Context(), limit, skip)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(events)
}

// CreateCheckIn handles POST /api/checkins requests. Tablets send an
// Idempotency-Key header so retried submissions replay instead of
// double-recording; that is handled by middleware before this handler runs.
func (h *Handler) CreateCheckIn(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.CreateCheckInRequest](c)
	if err != nil {
		var vErr *dto.ValidationError
		if errors.As(err, &vErr) {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationCheckIn, err)
		} else {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		}
		return
	}

	workerID, err := primitive.ObjectIDFromHex(req.WorkerID)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationCheckIn, err)
		return
	}
	eventID, err := primitive.ObjectIDFromHex(req.EventID)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationCheckIn, err)
		return
	}

	checkIn, err := h.checkIns.Create(c.Request.Context(), workerID, eventID, req.Device)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAlreadyCheckedIn):
			builder.Error(http.StatusConflict, i18n.ErrKeyAlreadyCheckedIn, err)
		case errors.Is(err, service.ErrEventClosed):
			builder.Error(http.StatusConflict, i18n.ErrKeyEventClosed, err)
		case errors.Is(err, service.ErrWorkerNotFound), errors.Is(err, service.ErrEventNotFound):
			builder.Error(http.StatusNotFound, i18n.ErrKeyNotFound, err)
		default:
			builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		}
		return
	}

	builder.SuccessCreated(checkIn)
}

// ListEventCheckIns handles GET /api/events/:id/checkins requests.
func (h *Handler) ListEventCheckIns(c *gin.Context) {
	builder := NewResponseBuilder(c)

	eventID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	limit, skip := paginationParams(c)
	checkIns, err := h.checkIns.ListByEvent(c.Request.Context(), eventID, limit, skip)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	total, err := h.checkIns.CountByEvent(c.Request.Context(), eventID)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(gin.H{
		"checkins":    checkIns,
		"total_count": total,
	})
}

// paginationParams extracts limit and skip query parameters with defaults.
func paginationParams(c *gin.Context) (limit, skip int) {
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultListLimit)))
	if limit <= 0 || limit > maxListLimit {
		limit = defaultListLimit
	}
	skip, _ = strconv.Atoi(c.DefaultQuery("skip", "0"))
	if skip < 0 {
		skip = 0
	}
	return limit, skip
}
