package services

import "errors"

// Front-desk failures. Every one is local and non-retryable: the caller must
// correct the input and resubmit. Operations return them before mutating.
var (
	ErrRoomNotFound       = errors.New("room not found")
	ErrInvalidTransition  = errors.New("invalid room status transition")
	ErrOccupied           = errors.New("room is occupied")
	ErrAlreadyOutOfOrder  = errors.New("room is already out of order")
	ErrCapacityExceeded   = errors.New("room capacity exceeded")
	ErrValidation         = errors.New("validation failed")
	ErrRoomUnavailable    = errors.New("room unavailable")
	ErrNoActiveGuest      = errors.New("no active guest in room")
	ErrEmptyRange         = errors.New("report end date is before start date")
	ErrGuestNotFound      = errors.New("guest not found")
	ErrInvalidCredentials = errors.New("invalid username or password")
)
