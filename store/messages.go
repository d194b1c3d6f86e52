// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/danielhkuo/celebrate/models"
)

// SubmitMessage stores a new message for the user. Every call appends a row.
func (s *Store) SubmitMessage(ctx context.Context, userID int64, text string) (models.Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return models.Message{}, &ValidationError{Field: "message_text", Reason: "is required"}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return models.Message{}, fmt.Errorf("begin message: %w", err)
	}
	defer tx.Rollback()

	if err := requireUser(ctx, tx, userID); err != nil {
		return models.Message{}, err
	}

	msg := models.Message{UserID: userID, MessageText: text, CreatedAt: s.now()}
	err = tx.QueryRowContext(ctx, `
		INSERT INTO message (user_id, message_text, created_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`, msg.UserID, msg.MessageText, msg.CreatedAt).Scan(&msg.ID)
	if err != nil {
		return models.Message{}, fmt.Errorf("insert message: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return models.Message{}, fmt.Errorf("commit message: %w", err)
	}

	return msg, nil
}

// GetUserMessages returns the user's messages, oldest first.
func (s *Store) GetUserMessages(ctx context.Context, userID int64) ([]models.Message, error) {
	if err := requireUser(ctx, s.db, userID); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, message_text, created_at
		FROM message
		WHERE user_id = $1
		ORDER BY id
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("query messages: %w", err)
	}
	defer rows.Close()

	return scanMessages(rows)
}

// GetMessages returns every message in insertion order, oldest first.
func (s *Store) GetMessages(ctx context.Context) ([]models.Message, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, message_text, created_at
		FROM message
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("query messages: %w", err)
	}
	defer rows.Close()

	return scanMessages(rows)
}

func scanMessages(rows *sql.Rows) ([]models.Message, error) {
	messages := []models.Message{}
	for rows.Next() {
		var m models.Message
		if err := rows.Scan(&m.ID, &m.UserID, &m.MessageText, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		messages = append(messages, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate messages: %w", err)
	}

	return messages, nil
}
