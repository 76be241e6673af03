package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	assistantdomain "github.com/shoplight/shoplight/internal/assistant/domain"
	catalogdomain "github.com/shoplight/shoplight/internal/catalog/domain"
)

type errorPayload struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

var ErrInvalidRequest = errors.New("invalid_request")

// ErrorHandlingMiddleware converts errors collected on the context into
// consistent JSON responses for handlers that did not write one.
func ErrorHandlingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		lastErr := c.Errors.Last()
		if lastErr == nil {
			return
		}

		status, payload := mapError(lastErr.Err)
		c.AbortWithStatusJSON(status, payload)
	}
}

func AbortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

func mapError(err error) (int, errorPayload) {
	switch {
	case isValidationError(err):
		return http.StatusBadRequest, errorPayload{
			Error:   "Bad Request",
			Message: err.Error(),
		}
	case isResponderError(err):
		return http.StatusInternalServerError, errorPayload{
			Error:   "Internal Server Error",
			Message: err.Error(),
		}
	default:
		return http.StatusInternalServerError, errorPayload{
			Error:   "Internal Server Error",
			Message: "An unexpected error occurred",
		}
	}
}

func isValidationError(err error) bool {
	return errors.Is(err, ErrInvalidRequest) ||
		errors.Is(err, catalogdomain.ErrProductIDRequired) ||
		errors.Is(err, assistantdomain.ErrEmptyMessage)
}

func isResponderError(err error) bool {
	var respErr *assistantdomain.ResponderError
	return errors.Is(err, assistantdomain.ErrResponderUnavailable) || errors.As(err, &respErr)
}
