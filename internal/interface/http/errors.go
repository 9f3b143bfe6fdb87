package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-ddd-social/internal/application"
	"github.com/oksasatya/go-ddd-social/pkg/response"
	"github.com/oksasatya/go-ddd-social/pkg/validation"
)

// statusFor maps a workflow error to its HTTP status.
func statusFor(err error) int {
	var ve *application.ValidationError
	var pe *application.PersistenceError
	switch {
	case errors.As(err, &ve):
		return http.StatusBadRequest
	case errors.Is(err, application.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, application.ErrNotFound):
		return http.StatusNotFound
	case errors.As(err, &pe):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// fail renders a workflow error. The body lists only client-safe messages.
func fail(c *gin.Context, err error) {
	msgs := application.Messages(err)
	response.Error[any](c, statusFor(err), msgs[0], msgs)
}

// bindObject decodes the request body as a JSON object.
func bindObject(c *gin.Context) (map[string]any, bool) {
	var m map[string]any
	if err := c.ShouldBindJSON(&m); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return nil, false
	}
	if m == nil {
		m = map[string]any{}
	}
	return m, true
}

func viewerID(c *gin.Context) string {
	return c.GetString("userID")
}
