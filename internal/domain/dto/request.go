// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs decouple the HTTP layer from the domain model, providing validation
// and serialization for API communication.
package dto

import "time"

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

var (
	// ErrInvalidFullName is returned when full_name is missing.
	ErrInvalidFullName = &ValidationError{Field: "full_name", Message: "must not be empty"}
	// ErrInvalidEmail is returned when email is missing.
	ErrInvalidEmail = &ValidationError{Field: "email", Message: "must not be empty"}
	// ErrInvalidEventName is returned when an event name is missing.
	ErrInvalidEventName = &ValidationError{Field: "name", Message: "must not be empty"}
	// ErrInvalidEventWindow is returned when ends_at is not after starts_at.
	ErrInvalidEventWindow = &ValidationError{Field: "ends_at", Message: "must be after starts_at"}
	// ErrInvalidWorkerID is returned when worker_id is missing.
	ErrInvalidWorkerID = &ValidationError{Field: "worker_id", Message: "must be a valid id"}
	// ErrInvalidEventID is returned when event_id is missing.
	ErrInvalidEventID = &ValidationError{Field: "event_id", Message: "must be a valid id"}
)

// CreateWorkerRequest is the JSON request body for registering a worker.
type CreateWorkerRequest struct {
	FullName string `json:"full_name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone"`
}

// Validate performs custom validation on the request.
func (r *CreateWorkerRequest) Validate() error {
	if r.FullName == "" {
		return ErrInvalidFullName
	}
	if r.Email == "" {
		return ErrInvalidEmail
	}
	return nil
}

// CreateEventRequest is the JSON request body for creating an event.
type CreateEventRequest struct {
	Name     string    `json:"name" binding:"required"`
	Location string    `json:"location"`
	StartsAt time.Time `json:"starts_at" binding:"required"`
	EndsAt   time.Time `json:"ends_at" binding:"required"`
}

// Validate performs custom validation on the request.
func (r *CreateEventRequest) Validate() error {
	if r.Name == "" {
		return ErrInvalidEventName
	}
	if !r.EndsAt.After(r.StartsAt) {
		return ErrInvalidEventWindow
	}
	return nil
}

// CreateCheckInRequest is the JSON request body for recording a check-in.
type CreateCheckInRequest struct {
	WorkerID string `json:"worker_id" binding:"required"`
	EventID  string `json:"event_id" binding:"required"`
	Device   string `json:"device"`
}

// Validate performs custom validation on the request.
func (r *CreateCheckInRequest) Validate() error {
	if r.WorkerID == "" {
		return ErrInvalidWorkerID
	}
	if r.EventID == "" {
		return ErrInvalidEventID
	}
	return nil
}
