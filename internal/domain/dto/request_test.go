package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateWorkerRequestValidate(t *testing.T) {
	valid := CreateWorkerRequest{FullName: "John Smith", Email: "john@example.com"}
	assert.NoError(t, valid.Validate())

	missingName := CreateWorkerRequest{Email: "john@example.com"}
	assert.ErrorIs(t, missingName.Validate(), ErrInvalidFullName)

	missingEmail := CreateWorkerRequest{FullName: "John Smith"}
	assert.ErrorIs(t, missingEmail.Validate(), ErrInvalidEmail)
}

func TestCreateEventRequestValidate(t *testing.T) {
	now := time.Now()

	valid := CreateEventRequest{Name: "Festival", StartsAt: now, EndsAt: now.Add(time.Hour)}
	assert.NoError(t, valid.Validate())

	missingName := CreateEventRequest{StartsAt: now, EndsAt: now.Add(time.Hour)}
	assert.ErrorIs(t, missingName.Validate(), ErrInvalidEventName)

	invertedWindow := CreateEventRequest{Name: "Festival", StartsAt: now, EndsAt: now.Add(-time.Hour)}
	assert.ErrorIs(t, invertedWindow.Validate(), ErrInvalidEventWindow)

	zeroWindow := CreateEventRequest{Name: "Festival", StartsAt: now, EndsAt: now}
	assert.ErrorIs(t, zeroWindow.Validate(), ErrInvalidEventWindow)
}

func TestCreateCheckInRequestValidate(t *testing.T) {
	valid := CreateCheckInRequest{WorkerID: "a", EventID: "b"}
	assert.NoError(t, valid.Validate())

	missingWorker := CreateCheckInRequest{EventID: "b"}
	assert.ErrorIs(t, missingWorker.Validate(), ErrInvalidWorkerID)

	missingEvent := CreateCheckInRequest{WorkerID: "a"}
	assert.ErrorIs(t, missingEvent.Validate(), ErrInvalidEventID)
}

func TestValidationErrorMessage(t *testing.T) {
	err := &ValidationError{Field: "email", Message: "must not be empty"}
	assert.Equal(t, "email: must not be empty", err.Error())
}

func TestErrCodeFromStatus(t *testing.T) {
	tests := []struct {
		status int
		want   string
	}{
		{400, ErrCodeInvalidRequest},
		{404, ErrCodeNotFound},
		{409, ErrCodeConflict},
		{429, ErrCodeRateLimit},
		{504, ErrCodeTimeout},
		{500, ErrCodeInternal},
		{502, ErrCodeInternal},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ErrCodeFromStatus(tt.status), "status %d", tt.status)
	}
}

func TestErrorResponseWithRequestID(t *testing.T) {
	resp := NewError(ErrCodeConflict, "already checked in").WithRequestID("req-123")
	require.Equal(t, ErrCodeConflict, resp.Error)
	assert.Equal(t, "req-123", resp.RequestID)
	assert.False(t, resp.Timestamp.IsZero())
}
