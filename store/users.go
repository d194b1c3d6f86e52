// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/danielhkuo/celebrate/models"
)

const maxNameLength = 255

// RegisterUser creates a guest with the trimmed display name.
// Names are not unique.
func (s *Store) RegisterUser(ctx context.Context, name string) (models.User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.User{}, &ValidationError{Field: "name", Reason: "is required"}
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		return models.User{}, &ValidationError{Field: "name", Reason: fmt.Sprintf("must be at most %d characters", maxNameLength)}
	}

	user := models.User{Name: name, CreatedAt: s.now()}
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO app_user (name, created_at)
		VALUES ($1, $2)
		RETURNING id
	`, user.Name, user.CreatedAt).Scan(&user.ID)
	if err != nil {
		return models.User{}, fmt.Errorf("insert user: %w", err)
	}

	return user, nil
}

func (s *Store) GetUser(ctx context.Context, id int64) (models.User, error) {
	var user models.User
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, created_at FROM app_user WHERE id = $1
	`, id).Scan(&user.ID, &user.Name, &user.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, &NotFoundError{Resource: "user", ID: id}
	}
	if err != nil {
		return models.User{}, fmt.Errorf("query user: %w", err)
	}

	return user, nil
}
