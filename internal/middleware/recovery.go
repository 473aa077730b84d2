package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/checkin-service/internal/domain/dto"
	"github.com/guttosm/checkin-service/internal/logger"
)

// Recovery converts a handler panic into a 500 response. One bad lookup
// must not take the process down while a line of workers is waiting at the
// door; the panic is logged with the request ID and the tablet gets a
// generic error it can retry.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log := logger.Logger()
				log.Error().
					Str("request_id", GetRequestID(c)).
					Str("path", c.Request.URL.Path).
					Interface("panic", r).
					Msg("Recovered from handler panic")

				c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
					Error:   dto.ErrCodeInternal,
					Message: "An unexpected error occurred",
				})
			}
		}()
		c.Next()
	}
}
