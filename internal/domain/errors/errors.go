package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Domain errors
var (
	ErrNotFound            = errors.New("resource not found")
	ErrAlreadyExists       = errors.New("resource already exists")
	ErrInvalidInput        = errors.New("invalid input")
	ErrBadRequest          = errors.New("bad request")
	ErrMerchantNotActive   = errors.New("merchant not active")
	ErrCapabilityDisabled  = errors.New("merchant capability disabled")
	ErrChecklistIncomplete = errors.New("onboarding checklist incomplete")
)

// IllegalTransitionError reports a (from, to) pair that is not in the
// allowed-transition table for the entity kind. Never retried; callers
// should present only legal next-states.
type IllegalTransitionError struct {
	Kind string
	From string
	To   string
}

func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("illegal %s transition from %s to %s", e.Kind, e.From, e.To)
}

// NewIllegalTransitionError creates a new IllegalTransitionError
func NewIllegalTransitionError(kind, from, to string) *IllegalTransitionError {
	return &IllegalTransitionError{Kind: kind, From: from, To: to}
}

// MissingReasonError reports a transition that requires a non-empty reason
// (merchant rejection/suspension) invoked without one.
type MissingReasonError struct {
	Kind string
	To   string
}

func (e *MissingReasonError) Error() string {
	return fmt.Sprintf("%s transition to %s requires a reason", e.Kind, e.To)
}

// NewMissingReasonError creates a new MissingReasonError
func NewMissingReasonError(kind, to string) *MissingReasonError {
	return &MissingReasonError{Kind: kind, To: to}
}

// UnknownEntityError reports an unrecognized entity kind or status value.
// Malformed input is never coerced to a default status.
type UnknownEntityError struct {
	Kind   string
	Status string
}

func (e *UnknownEntityError) Error() string {
	if e.Status == "" {
		return fmt.Sprintf("unknown entity kind %q", e.Kind)
	}
	return fmt.Sprintf("unknown status %q for entity kind %q", e.Status, e.Kind)
}

// NewUnknownEntityError creates a new UnknownEntityError
func NewUnknownEntityError(kind, status string) *UnknownEntityError {
	return &UnknownEntityError{Kind: kind, Status: status}
}

// PersistenceError wraps a storage failure. The whole operation is safe to
// retry since no partial state is visible after a failed transaction.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failure during %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// NewPersistenceError creates a new PersistenceError
func NewPersistenceError(op string, err error) *PersistenceError {
	return &PersistenceError{Op: op, Err: err}
}

// AppError represents application error with HTTP status
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new app error
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Common error constructors
func NotFound(message string) *AppError {
	return NewAppError(http.StatusNotFound, message, ErrNotFound)
}

func BadRequest(message string) *AppError {
	return NewAppError(http.StatusBadRequest, message, ErrInvalidInput)
}

func UnprocessableEntity(message string, err error) *AppError {
	return NewAppError(http.StatusUnprocessableEntity, message, err)
}

func InternalError(err error) *AppError {
	return NewAppError(http.StatusInternalServerError, "internal server error", err)
}
