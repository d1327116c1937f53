package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-frontdesk/services"
	"hotel-frontdesk/store"
)

func JSONSuccess(c *gin.Context, code int, data interface{}) {
	c.JSON(code, gin.H{"success": true, "data": data})
}

func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"success": false, "error": message})
}

// StatusFor maps a front-desk error to its HTTP status.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrRoomNotFound),
		errors.Is(err, services.ErrGuestNotFound),
		errors.Is(err, store.ErrStateNotFound):
		// A missing room at check-in is reported as unavailable.
		if errors.Is(err, services.ErrRoomUnavailable) {
			return http.StatusConflict
		}
		return http.StatusNotFound
	case errors.Is(err, services.ErrValidation),
		errors.Is(err, services.ErrCapacityExceeded),
		errors.Is(err, services.ErrEmptyRange):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrInvalidTransition),
		errors.Is(err, services.ErrOccupied),
		errors.Is(err, services.ErrAlreadyOutOfOrder),
		errors.Is(err, services.ErrRoomUnavailable),
		errors.Is(err, services.ErrNoActiveGuest),
		errors.Is(err, store.ErrVersionConflict):
		return http.StatusConflict
	case errors.Is(err, services.ErrInvalidCredentials):
		return http.StatusUnauthorized
	}
	return http.StatusInternalServerError
}

// JSONFromError writes the error envelope for err. Internal errors are
// recorded on the context and reported without detail.
func JSONFromError(c *gin.Context, err error) {
	code := StatusFor(err)
	if code == http.StatusInternalServerError {
		_ = c.Error(err)
		JSONError(c, code, "internal server error")
		return
	}
	body := gin.H{"success": false, "error": err.Error()}
	if errors.Is(err, store.ErrVersionConflict) {
		body["retryable"] = true
	}
	c.JSON(code, body)
}
