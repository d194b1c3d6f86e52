// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// Store implements registration, voting, messaging and aggregation on top of a SQL database.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

func New(db *sql.DB) *Store {
	return &Store{
		db: db,
		now: func() time.Time {
			// Postgres keeps microseconds; match it everywhere.
			return time.Now().UTC().Truncate(time.Microsecond)
		},
	}
}

type querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func requireUser(ctx context.Context, q querier, userID int64) error {
	return requireRow(ctx, q, "user", userID, `SELECT 1 FROM app_user WHERE id = $1`)
}

func requireActivity(ctx context.Context, q querier, activityID int64) error {
	return requireRow(ctx, q, "activity", activityID, `SELECT 1 FROM activity WHERE id = $1`)
}

func requireRow(ctx context.Context, q querier, resource string, id int64, query string) error {
	var one int
	err := q.QueryRowContext(ctx, query, id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return &NotFoundError{Resource: resource, ID: id}
	}
	if err != nil {
		return fmt.Errorf("query %s: %w", resource, err)
	}
	return nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
