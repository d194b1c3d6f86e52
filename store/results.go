// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/danielhkuo/celebrate/models"
)

// GetResults tallies votes per option for every active activity.
// Options without votes are included with a zero count.
func (s *Store) GetResults(ctx context.Context) ([]models.ActivityResult, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT a.id, a.question, a.sort_order, o.id, o.option_text, COUNT(v.id)
		FROM activity a
		LEFT JOIN activity_option o ON o.activity_id = a.id
		LEFT JOIN vote v ON v.option_id = o.id AND v.activity_id = a.id
		WHERE a.is_active = TRUE
		GROUP BY a.id, a.question, a.sort_order, o.id, o.option_text, o.sort_order
		ORDER BY a.sort_order, o.sort_order
	`)
	if err != nil {
		return nil, fmt.Errorf("query results: %w", err)
	}
	defer rows.Close()

	results := []models.ActivityResult{}
	for rows.Next() {
		var (
			r       models.ActivityResult
			optID   sql.NullInt64
			optText sql.NullString
			count   int
		)
		if err := rows.Scan(&r.ActivityID, &r.Question, &r.Order, &optID, &optText, &count); err != nil {
			return nil, fmt.Errorf("scan result: %w", err)
		}

		if n := len(results); n == 0 || results[n-1].ActivityID != r.ActivityID {
			r.VoteCounts = []models.VoteCount{}
			results = append(results, r)
		}

		if optID.Valid {
			last := &results[len(results)-1]
			last.VoteCounts = append(last.VoteCounts, models.VoteCount{
				OptionID:   optID.Int64,
				OptionText: optText.String,
				VoteCount:  count,
			})
			last.TotalVotes += count
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate results: %w", err)
	}

	return results, nil
}
