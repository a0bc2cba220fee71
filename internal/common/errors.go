// Package common holds the error taxonomy shared by services and handlers.
package common

import (
	"fmt"
	"strings"
)

// ValidationError rejects malformed or out-of-range input before any store
// access. Messages are human-readable, one per failed field rule.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "validation error: " + strings.Join(e.Messages, "; ")
}

func NewValidationError(messages ...string) *ValidationError {
	return &ValidationError{Messages: messages}
}

// NotFoundError names the missing entity and identifier.
type NotFoundError struct {
	Entity string
	ID     int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %d not found", e.Entity, e.ID)
}

// StoreError wraps a persistence-layer failure. The wrapped detail is only
// exposed to clients in development mode.
type StoreError struct {
	Err error
}

func (e *StoreError) Error() string {
	return "store error: " + e.Err.Error()
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// TimeoutError signals that a request exceeded its deadline, typically while
// waiting for a pooled connection.
type TimeoutError struct {
	Op string
}

func (e *TimeoutError) Error() string {
	return "timeout during " + e.Op
}
