package handler

import (
	"errors"
	"net/http"

	"github.com/BloggingApp/social-service/internal/service"
)

var (
	errNoToken       = errors.New("there is no token")
	errInvalidJWT    = errors.New("invalid jwt")
	errInvalidUserID = errors.New("invalid user ID")
	errInvalidID     = errors.New("id must be an integer")
)

// statusFor maps service errors to HTTP status codes. The services never
// retry; the caller decides what a failure means on the wire.
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrPostNotFound),
		errors.Is(err, service.ErrNotFollowing),
		errors.Is(err, service.ErrNotificationNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrUsernameTaken),
		errors.Is(err, service.ErrAlreadyFollowing):
		return http.StatusConflict
	case errors.Is(err, service.ErrEmptyContent),
		errors.Is(err, service.ErrContentTooLong),
		errors.Is(err, service.ErrSelfFollow):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
