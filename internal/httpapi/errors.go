package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"aiktp_sync/internal/domain"
	"aiktp_sync/internal/gateway"
)

const restForbidden = "rest_forbidden"

// restError is the error body the sync client expects from permission failures.
type restError struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Data    map[string]int `json:"data"`
}

// abortAuth writes an authorization failure and reports whether err was one.
func abortAuth(c *gin.Context, err error) bool {
	var authErr *gateway.AuthError
	if !errors.As(err, &authErr) {
		return false
	}
	c.AbortWithStatusJSON(authErr.Status, restError{
		Code:    restForbidden,
		Message: authErr.Message,
		Data:    map[string]int{"status": authErr.Status},
	})
	return true
}

// statusFor maps domain errors to a status code.
func statusFor(err error) int {
	var authErr *gateway.AuthError
	switch {
	case errors.As(err, &authErr):
		return authErr.Status
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNoAPIKey):
		return http.StatusPreconditionFailed
	case errors.Is(err, domain.ErrNetwork), errors.Is(err, domain.ErrInvalidResponse):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// fail writes the sync envelope for errors that are not permission failures.
func fail(c *gin.Context, err error, extra gin.H) {
	if abortAuth(c, err) {
		return
	}
	_ = c.Error(err)
	body := gin.H{"status": "error", "message": publicMessage(err)}
	for k, v := range extra {
		body[k] = v
	}
	c.JSON(statusFor(err), body)
}

// publicMessage hides internal failures from remote callers.
func publicMessage(err error) string {
	if statusFor(err) == http.StatusInternalServerError {
		return "Internal server error"
	}
	return err.Error()
}
