// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/danielhkuo/celebrate/models"
)

// VoteMeta carries request details recorded with a vote for auditing.
type VoteMeta struct {
	IPHash    string
	UserAgent string
}

const activityQuery = `
	SELECT a.id, a.question, a.sort_order, o.id, o.option_text, o.sort_order
	FROM activity a
	LEFT JOIN activity_option o ON o.activity_id = a.id
`

// ListActivities returns the active activities ordered by their order field,
// each with its options ordered by their order field.
func (s *Store) ListActivities(ctx context.Context) ([]models.Activity, error) {
	rows, err := s.db.QueryContext(ctx, activityQuery+`
		WHERE a.is_active = TRUE
		ORDER BY a.sort_order, o.sort_order
	`)
	if err != nil {
		return nil, fmt.Errorf("query activities: %w", err)
	}
	defer rows.Close()

	return scanActivities(rows)
}

// GetActivity returns a single activity with its ordered options.
func (s *Store) GetActivity(ctx context.Context, id int64) (models.Activity, error) {
	rows, err := s.db.QueryContext(ctx, activityQuery+`
		WHERE a.id = $1
		ORDER BY o.sort_order
	`, id)
	if err != nil {
		return models.Activity{}, fmt.Errorf("query activity: %w", err)
	}
	defer rows.Close()

	activities, err := scanActivities(rows)
	if err != nil {
		return models.Activity{}, err
	}
	if len(activities) == 0 {
		return models.Activity{}, &NotFoundError{Resource: "activity", ID: id}
	}

	return activities[0], nil
}

// scanActivities folds joined activity/option rows, which must arrive grouped by activity.
func scanActivities(rows *sql.Rows) ([]models.Activity, error) {
	activities := []models.Activity{}
	for rows.Next() {
		var (
			a        models.Activity
			optID    sql.NullInt64
			optText  sql.NullString
			optOrder sql.NullInt64
		)
		if err := rows.Scan(&a.ID, &a.Question, &a.Order, &optID, &optText, &optOrder); err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}

		if n := len(activities); n == 0 || activities[n-1].ID != a.ID {
			a.Options = []models.Option{}
			activities = append(activities, a)
		}

		if optID.Valid {
			last := &activities[len(activities)-1]
			last.Options = append(last.Options, models.Option{
				ID:         optID.Int64,
				ActivityID: a.ID,
				OptionText: optText.String,
				Order:      int(optOrder.Int64),
			})
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate activities: %w", err)
	}

	return activities, nil
}

// SubmitVote records the user's choice for an activity, replacing any earlier
// choice for the same activity. Checks and write share one transaction and the
// write is a single upsert on (user_id, activity_id), so retries and concurrent
// submissions leave exactly one row.
func (s *Store) SubmitVote(ctx context.Context, userID, activityID, optionID int64, meta VoteMeta) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin vote: %w", err)
	}
	defer tx.Rollback()

	status, err := votingStatus(ctx, tx, s.now())
	if err != nil {
		return err
	}
	if !status.IsVotingOpen {
		return ErrVotingClosed
	}

	if err := requireUser(ctx, tx, userID); err != nil {
		return err
	}
	if err := requireActivity(ctx, tx, activityID); err != nil {
		return err
	}

	var optionActivityID int64
	err = tx.QueryRowContext(ctx, `
		SELECT activity_id FROM activity_option WHERE id = $1
	`, optionID).Scan(&optionActivityID)
	if errors.Is(err, sql.ErrNoRows) {
		return &ValidationError{Field: "option_id", Reason: "does not exist"}
	}
	if err != nil {
		return fmt.Errorf("query option: %w", err)
	}
	if optionActivityID != activityID {
		return &ValidationError{Field: "option_id", Reason: "does not belong to this activity"}
	}

	now := s.now()
	_, err = tx.ExecContext(ctx, `
		INSERT INTO vote (user_id, activity_id, option_id, ip_hash, user_agent, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id, activity_id) DO UPDATE
		SET option_id = excluded.option_id,
		    ip_hash = excluded.ip_hash,
		    user_agent = excluded.user_agent,
		    updated_at = excluded.updated_at
	`, userID, activityID, optionID, nullString(meta.IPHash), nullString(meta.UserAgent), now, now)
	if err != nil {
		return fmt.Errorf("upsert vote: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit vote: %w", err)
	}

	return nil
}

// GetUserVotes returns the user's current votes ordered by activity order.
// An unknown user is a NotFoundError rather than an empty list.
func (s *Store) GetUserVotes(ctx context.Context, userID int64) ([]models.Vote, error) {
	if err := requireUser(ctx, s.db, userID); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT v.id, v.user_id, v.activity_id, v.option_id, v.created_at, v.updated_at
		FROM vote v
		JOIN activity a ON a.id = v.activity_id
		WHERE v.user_id = $1
		ORDER BY a.sort_order
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("query votes: %w", err)
	}
	defer rows.Close()

	votes := []models.Vote{}
	for rows.Next() {
		var v models.Vote
		if err := rows.Scan(&v.ID, &v.UserID, &v.ActivityID, &v.OptionID, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan vote: %w", err)
		}
		votes = append(votes, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate votes: %w", err)
	}

	return votes, nil
}
