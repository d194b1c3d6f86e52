// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"errors"
	"fmt"
)

// ErrVotingClosed is returned when a vote arrives after voting was closed.
var ErrVotingClosed = errors.New("voting is closed")

// ValidationError reports input that is empty, malformed, or inconsistent.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Field + " " + e.Reason
}

// NotFoundError reports an identifier that does not reference an existing row.
type NotFoundError struct {
	Resource string
	ID       int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Resource, e.ID)
}

// ConflictError is reserved for writes that collide with existing state.
// Votes upsert and messages append, so nothing returns it today.
type ConflictError struct {
	Reason string
}

func (e *ConflictError) Error() string {
	return e.Reason
}
