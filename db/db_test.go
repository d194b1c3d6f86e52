// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := Open(t.Context(), DriverSQLite, "file:"+filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	require.NoError(t, CreateSchema(t.Context(), conn, DriverSQLite))
	return conn
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := Open(t.Context(), "mysql", "whatever")
	assert.ErrorContains(t, err, "unsupported database type")
}

func TestSqliteDSN(t *testing.T) {
	assert.Equal(t,
		"file:x.db?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)",
		sqliteDSN("file:x.db"))
	assert.Equal(t,
		"file:x.db?mode=rwc&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)",
		sqliteDSN("file:x.db?mode=rwc"))
}

func TestCreateSchema_Idempotent(t *testing.T) {
	conn := openTestDB(t)

	require.NoError(t, CreateSchema(t.Context(), conn, DriverSQLite))

	for _, table := range []string{"app_user", "activity", "activity_option", "vote", "message", "app_config"} {
		var n int
		err := conn.QueryRow(`SELECT COUNT(*) FROM ` + table).Scan(&n)
		assert.NoError(t, err, "table %s", table)
	}
}

func TestSchemaFor(t *testing.T) {
	pg := schemaFor(DriverPostgres)
	assert.Contains(t, pg, "id BIGSERIAL PRIMARY KEY")
	assert.Contains(t, pg, "TIMESTAMPTZ")
	assert.NotContains(t, pg, "{{")

	lite := schemaFor(DriverSQLite)
	assert.Contains(t, lite, "id INTEGER PRIMARY KEY AUTOINCREMENT")
	assert.NotContains(t, lite, "TIMESTAMPTZ")
}

func TestSchema_VoteUniquePerActivity(t *testing.T) {
	conn := openTestDB(t)

	_, err := Seed(t.Context(), conn, []SeedActivity{{
		Order:    1,
		Question: "Q",
		Options:  []SeedOption{{Order: 1, Text: "A"}, {Order: 2, Text: "B"}},
	}})
	require.NoError(t, err)
	_, err = conn.Exec(`INSERT INTO app_user (name, created_at) VALUES ('Alice', CURRENT_TIMESTAMP)`)
	require.NoError(t, err)

	insert := `
		INSERT INTO vote (user_id, activity_id, option_id, created_at, updated_at)
		VALUES (1, 1, $1, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
	`
	_, err = conn.Exec(insert, 1)
	require.NoError(t, err)
	_, err = conn.Exec(insert, 2)
	assert.Error(t, err, "second vote row for the same activity")
}

func TestSchema_ForeignKeys(t *testing.T) {
	conn := openTestDB(t)

	_, err := conn.Exec(`INSERT INTO message (user_id, message_text, created_at) VALUES (42, 'hi', CURRENT_TIMESTAMP)`)
	assert.Error(t, err, "message for a missing user")
}
