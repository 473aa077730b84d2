package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/checkin-service/internal/domain/dto"
	"github.com/guttosm/checkin-service/internal/i18n"
)

func testContext(body string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func TestBuildRequestAndValidate(t *testing.T) {
	c, _ := testContext(`{"full_name":"John Smith","email":"john@example.com"}`)

	req, err := BuildRequestAndValidate[dto.CreateWorkerRequest](c)
	require.NoError(t, err)
	assert.Equal(t, "John Smith", req.FullName)
	assert.Equal(t, "john@example.com", req.Email)
}

func TestBuildRequestAndValidateMalformedJSON(t *testing.T) {
	c, _ := testContext(`{"full_name":`)

	_, err := BuildRequestAndValidate[dto.CreateWorkerRequest](c)
	assert.Error(t, err)
}

func TestBuildRequestAndValidateRunsValidator(t *testing.T) {
	c, _ := testContext(`{"name":"Festival","starts_at":"2026-09-01T10:00:00Z","ends_at":"2026-09-01T08:00:00Z"}`)

	_, err := BuildRequestAndValidate[dto.CreateEventRequest](c)
	require.Error(t, err)

	var vErr *dto.ValidationError
	assert.ErrorAs(t, err, &vErr)
	assert.Equal(t, "ends_at", vErr.Field)
}

func TestResponseBuilderSuccess(t *testing.T) {
	c, w := testContext(`{}`)

	NewResponseBuilder(c).SuccessOK(gin.H{"hello": "world"})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"hello":"world"`)
	assert.Contains(t, w.Body.String(), `"timestamp"`)
}

func TestResponseBuilderError(t *testing.T) {
	c, w := testContext(`{}`)

	NewResponseBuilder(c).Error(http.StatusNotFound, i18n.ErrKeyNotFound, nil)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), `"error":"not_found"`)
	assert.True(t, c.IsAborted())
}

func TestResponseBuilderErrorWithMessage(t *testing.T) {
	c, w := testContext(`{}`)

	NewResponseBuilder(c).ErrorWithMessage(http.StatusConflict, "email already registered", nil)

	require.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), `"error":"conflict"`)
	assert.Contains(t, w.Body.String(), "email already registered")
}

func TestResponseBuilderPoolReuse(t *testing.T) {
	// responses drawn from the pool must not leak fields between uses
	c1, w1 := testContext(`{}`)
	NewResponseBuilder(c1).SuccessOK(gin.H{"first": true})
	require.Contains(t, w1.Body.String(), `"first":true`)

	c2, w2 := testContext(`{}`)
	NewResponseBuilder(c2).SuccessOK(nil)
	assert.NotContains(t, w2.Body.String(), "first")
}
