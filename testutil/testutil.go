// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/celebrate/cliparse"
	"github.com/danielhkuo/celebrate/db"
)

// SetupTestDB creates a fresh SQLite database with the full schema and no seed data.
// The database lives in the test's temp dir and is closed on cleanup.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	ctx := context.Background()
	dsn := "file:" + filepath.Join(t.TempDir(), "test.db")

	conn, err := db.Open(ctx, db.DriverSQLite, dsn)
	require.NoError(t, err, "open test database")
	t.Cleanup(func() { conn.Close() })

	require.NoError(t, db.CreateSchema(ctx, conn, db.DriverSQLite), "create schema")

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:           8000,
		DatabaseURL:    "file:test.db",
		DatabaseType:   db.DriverSQLite,
		AllowedOrigins: []string{"http://localhost:5173"},
		IPHashSalt:     "test-ip-salt",
		LogLevel:       "info",
		LogFormat:      "text",
	}
}

// TestActivity identifies an inserted activity and its options in insertion order.
type TestActivity struct {
	ID        int64
	OptionIDs []int64
}

// CreateTestActivity inserts an active activity with the given options.
// Option orders are 1..n in the order given.
func CreateTestActivity(t *testing.T, conn *sql.DB, order int, question string, options ...string) TestActivity {
	t.Helper()

	var a TestActivity
	err := conn.QueryRow(`
		INSERT INTO activity (question, sort_order, is_active)
		VALUES ($1, $2, TRUE)
		RETURNING id
	`, question, order).Scan(&a.ID)
	require.NoError(t, err, "create test activity")

	for i, text := range options {
		var optID int64
		err := conn.QueryRow(`
			INSERT INTO activity_option (activity_id, option_text, sort_order)
			VALUES ($1, $2, $3)
			RETURNING id
		`, a.ID, text, i+1).Scan(&optID)
		require.NoError(t, err, "create test option")
		a.OptionIDs = append(a.OptionIDs, optID)
	}

	return a
}

// CreateTestUser registers a guest directly and returns the user ID
func CreateTestUser(t *testing.T, conn *sql.DB, name string) int64 {
	t.Helper()

	var id int64
	err := conn.QueryRow(`
		INSERT INTO app_user (name, created_at)
		VALUES ($1, $2)
		RETURNING id
	`, name, time.Now().UTC()).Scan(&id)
	require.NoError(t, err, "create test user")

	return id
}

// CountVotes returns how many vote rows exist for the user and activity
func CountVotes(t *testing.T, conn *sql.DB, userID, activityID int64) int {
	t.Helper()

	var n int
	err := conn.QueryRow(`
		SELECT COUNT(*) FROM vote WHERE user_id = $1 AND activity_id = $2
	`, userID, activityID).Scan(&n)
	require.NoError(t, err, "count votes")

	return n
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body any, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	require.Equal(t, expected, w.Code, "unexpected status. Body: %s", w.Body.String())
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(w.Body).Decode(v), "decode JSON response")
}
