package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// HTTPError defines errors that can be mapped to HTTP status codes.
type HTTPError interface {
	error
	StatusCode() int
}

// Sentinel errors - use with errors.Is()
var (
	ErrNotFound        = errors.New("not found")
	ErrOutOfRange      = errors.New("index out of range")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrConflict        = errors.New("already exists")
)

// Domain error types implementing HTTPError interface
type (
	// NotFoundError indicates a resource (or the session's current deck) was not found
	NotFoundError struct {
		Message string
	}

	// InvalidArgumentError indicates an argument outside its allowed set
	InvalidArgumentError struct {
		Field   string
		Message string
	}
)

// Error implementations
func (e *NotFoundError) Error() string        { return e.Message }
func (e *InvalidArgumentError) Error() string { return e.Message }

// StatusCode implementations (HTTPError interface)
func (e *NotFoundError) StatusCode() int        { return http.StatusNotFound }
func (e *InvalidArgumentError) StatusCode() int { return http.StatusBadRequest }

// Is allows errors.Is() to match against the sentinels
func (e *NotFoundError) Is(target error) bool        { return target == ErrNotFound }
func (e *InvalidArgumentError) Is(target error) bool { return target == ErrInvalidArgument }

// OutOfRangeError reports a slide index outside [0, Count).
// The message carries the valid bounds so the caller can recover.
type OutOfRangeError struct {
	Index int
	Count int
}

// Error implements the error interface
func (e *OutOfRangeError) Error() string {
	if e.Count == 0 {
		return fmt.Sprintf("Invalid slide index %d. Deck has no slides.", e.Index)
	}
	return fmt.Sprintf("Invalid slide index %d. Deck has %d slides (0-%d).", e.Index, e.Count, e.Count-1)
}

// StatusCode implements the HTTPError interface
func (e *OutOfRangeError) StatusCode() int {
	return http.StatusBadRequest
}

// Is allows errors.Is() to match against ErrOutOfRange
func (e *OutOfRangeError) Is(target error) bool {
	return target == ErrOutOfRange
}

// ConflictError represents a resource conflict with details about the existing resource
type ConflictError struct {
	Message      string // Human-readable error message
	ResourceType string // Type of resource (deck, slide)
	ResourceID   string // ID of the existing/conflicting resource
}

// Error implements the error interface
func (e *ConflictError) Error() string {
	return e.Message
}

// StatusCode implements the HTTPError interface
func (e *ConflictError) StatusCode() int {
	return http.StatusConflict
}

// Is allows errors.Is() to match against ErrConflict
func (e *ConflictError) Is(target error) bool {
	return target == ErrConflict
}

// NewNoCurrentDeckError is returned by every operation except generate when the
// session has no current deck.
func NewNoCurrentDeckError() error {
	return &NotFoundError{Message: "No deck found. Generate a pitch deck first."}
}
