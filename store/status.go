// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/danielhkuo/celebrate/models"
)

// VotingStatus reports whether votes are accepted right now.
func (s *Store) VotingStatus(ctx context.Context) (models.VotingStatus, error) {
	return votingStatus(ctx, s.db, s.now())
}

// Voting is open unless the closed flag is set or the end time has passed.
// A missing config row means open.
func votingStatus(ctx context.Context, q querier, now time.Time) (models.VotingStatus, error) {
	var (
		closed bool
		end    sql.NullTime
	)
	err := q.QueryRowContext(ctx, `
		SELECT is_voting_closed, voting_end_time FROM app_config WHERE id = 1
	`).Scan(&closed, &end)

	if errors.Is(err, sql.ErrNoRows) {
		return models.VotingStatus{IsVotingOpen: true}, nil
	}
	if err != nil {
		return models.VotingStatus{}, fmt.Errorf("query app config: %w", err)
	}

	status := models.VotingStatus{IsVotingOpen: !closed}
	if end.Valid {
		t := end.Time
		status.VotingEndTime = &t
		if !now.Before(t) {
			status.IsVotingOpen = false
		}
	}

	return status, nil
}

// SetVotingClosed sets or clears the closed flag.
func (s *Store) SetVotingClosed(ctx context.Context, closed bool) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO app_config (id, is_voting_closed) VALUES (1, $1)
		ON CONFLICT (id) DO UPDATE SET is_voting_closed = excluded.is_voting_closed
	`, closed)
	if err != nil {
		return fmt.Errorf("update voting closed: %w", err)
	}
	return nil
}

// SetVotingEndTime schedules when voting closes. Nil removes the deadline.
func (s *Store) SetVotingEndTime(ctx context.Context, end *time.Time) error {
	var v sql.NullTime
	if end != nil {
		v = sql.NullTime{Time: end.UTC(), Valid: true}
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO app_config (id, is_voting_closed, voting_end_time) VALUES (1, FALSE, $1)
		ON CONFLICT (id) DO UPDATE SET voting_end_time = excluded.voting_end_time
	`, v)
	if err != nil {
		return fmt.Errorf("update voting end time: %w", err)
	}
	return nil
}
