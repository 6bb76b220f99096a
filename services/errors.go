package services

import "errors"

// Sentinel errors surfaced to the HTTP layer. Everything else coming out of
// a service is a wrapped persistence failure.
var (
	// ErrNotAuthenticated means no viewer identity accompanied the request
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrProfileNotFound means the viewer or target has no profile row
	ErrProfileNotFound = errors.New("profile not found")

	// ErrMatchNotFound means no match row exists for the given id
	ErrMatchNotFound = errors.New("match not found")

	// ErrInvalidSwipeAction means the action is neither "like" nor "pass"
	ErrInvalidSwipeAction = errors.New("invalid swipe action")
)
