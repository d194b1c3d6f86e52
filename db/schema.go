// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(ctx context.Context, db *sql.DB, driver string) error {
	_, err := db.ExecContext(ctx, schemaFor(driver))
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// schemaFor fills in the column types that differ between engines.
func schemaFor(driver string) string {
	pk, ts := "INTEGER PRIMARY KEY AUTOINCREMENT", "TIMESTAMP"
	if driver == DriverPostgres {
		pk, ts = "BIGSERIAL PRIMARY KEY", "TIMESTAMPTZ"
	}

	return strings.NewReplacer("{{pk}}", pk, "{{ts}}", ts).Replace(schema)
}

const schema = `
-- Guests
CREATE TABLE IF NOT EXISTS app_user (
    id {{pk}},
    name TEXT NOT NULL,
    created_at {{ts}} NOT NULL
);

-- Activities
CREATE TABLE IF NOT EXISTS activity (
    id {{pk}},
    question TEXT NOT NULL,
    sort_order INTEGER NOT NULL UNIQUE,
    is_active BOOLEAN NOT NULL DEFAULT TRUE
);

-- Options
CREATE TABLE IF NOT EXISTS activity_option (
    id {{pk}},
    activity_id BIGINT NOT NULL REFERENCES activity(id) ON DELETE CASCADE,
    option_text TEXT NOT NULL,
    sort_order INTEGER NOT NULL,
    UNIQUE (activity_id, sort_order)
);

CREATE INDEX IF NOT EXISTS idx_activity_option_activity_id ON activity_option(activity_id);

-- Votes
CREATE TABLE IF NOT EXISTS vote (
    id {{pk}},
    user_id BIGINT NOT NULL REFERENCES app_user(id) ON DELETE CASCADE,
    activity_id BIGINT NOT NULL REFERENCES activity(id) ON DELETE CASCADE,
    option_id BIGINT NOT NULL REFERENCES activity_option(id) ON DELETE CASCADE,
    ip_hash TEXT,
    user_agent TEXT,
    created_at {{ts}} NOT NULL,
    updated_at {{ts}} NOT NULL,
    UNIQUE (user_id, activity_id)
);

CREATE INDEX IF NOT EXISTS idx_vote_option_id ON vote(option_id);

-- Messages
CREATE TABLE IF NOT EXISTS message (
    id {{pk}},
    user_id BIGINT NOT NULL REFERENCES app_user(id) ON DELETE CASCADE,
    message_text TEXT NOT NULL,
    created_at {{ts}} NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_message_user_id ON message(user_id);

-- Voting status (single row)
CREATE TABLE IF NOT EXISTS app_config (
    id INTEGER PRIMARY KEY CHECK (id = 1),
    is_voting_closed BOOLEAN NOT NULL DEFAULT FALSE,
    voting_end_time {{ts}}
);
`
