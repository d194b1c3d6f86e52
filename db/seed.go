// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var defaultSeed []byte

// SeedActivity is one activity in the seed catalogue.
type SeedActivity struct {
	Order    int          `yaml:"order"`
	Question string       `yaml:"question"`
	Options  []SeedOption `yaml:"options"`
}

type SeedOption struct {
	Order int    `yaml:"order"`
	Text  string `yaml:"text"`
}

type seedFile struct {
	Activities []SeedActivity `yaml:"activities"`
}

// LoadSeed reads the activity catalogue from path, or the embedded default when path is empty.
func LoadSeed(path string) ([]SeedActivity, error) {
	data := defaultSeed
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read seed %s: %w", path, err)
		}
	}

	return ParseSeed(data)
}

// ParseSeed decodes and validates a YAML activity catalogue.
func ParseSeed(data []byte) ([]SeedActivity, error) {
	var f seedFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse seed: %w", err)
	}

	if err := validateSeed(f.Activities); err != nil {
		return nil, err
	}

	return f.Activities, nil
}

func validateSeed(activities []SeedActivity) error {
	if len(activities) == 0 {
		return errors.New("seed has no activities")
	}

	orders := make(map[int]bool)
	for _, a := range activities {
		if strings.TrimSpace(a.Question) == "" {
			return fmt.Errorf("activity %d: question is required", a.Order)
		}
		if orders[a.Order] {
			return fmt.Errorf("activity %d: duplicate order", a.Order)
		}
		orders[a.Order] = true

		if len(a.Options) < 2 {
			return fmt.Errorf("activity %d: at least 2 options required", a.Order)
		}

		optOrders := make(map[int]bool)
		for _, o := range a.Options {
			if strings.TrimSpace(o.Text) == "" {
				return fmt.Errorf("activity %d option %d: text is required", a.Order, o.Order)
			}
			if optOrders[o.Order] {
				return fmt.Errorf("activity %d option %d: duplicate order", a.Order, o.Order)
			}
			optOrders[o.Order] = true
		}
	}

	return nil
}

// Seed inserts the catalogue and the voting config row in one transaction.
// Returns the number of activities inserted, zero when activities already exist.
func Seed(ctx context.Context, db *sql.DB, activities []SeedActivity) (int, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin seed: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO app_config (id, is_voting_closed) VALUES (1, FALSE)
		ON CONFLICT (id) DO NOTHING
	`); err != nil {
		return 0, fmt.Errorf("insert app config: %w", err)
	}

	var existing int
	if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM activity`).Scan(&existing); err != nil {
		return 0, fmt.Errorf("count activities: %w", err)
	}
	if existing > 0 {
		return 0, tx.Commit()
	}

	for _, a := range activities {
		var activityID int64
		err := tx.QueryRowContext(ctx, `
			INSERT INTO activity (question, sort_order, is_active)
			VALUES ($1, $2, TRUE)
			RETURNING id
		`, a.Question, a.Order).Scan(&activityID)
		if err != nil {
			return 0, fmt.Errorf("insert activity %d: %w", a.Order, err)
		}

		for _, o := range a.Options {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO activity_option (activity_id, option_text, sort_order)
				VALUES ($1, $2, $3)
			`, activityID, o.Text, o.Order)
			if err != nil {
				return 0, fmt.Errorf("insert option %d of activity %d: %w", o.Order, a.Order, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit seed: %w", err)
	}

	return len(activities), nil
}
