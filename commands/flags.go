// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package commands

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/danielhkuo/celebrate/cliparse"
	"github.com/danielhkuo/celebrate/db"
)

// Flags holds the global configuration shared by every command.
// The root command's Before hook validates Config before any Action runs.
type Flags struct {
	Config cliparse.Config
}

// openDB connects to the configured database and ensures the schema exists.
func (f *Flags) openDB(ctx context.Context) (*sql.DB, error) {
	conn, err := db.Open(ctx, f.Config.DatabaseType, f.Config.DatabaseURL)
	if err != nil {
		return nil, err
	}

	if err := db.CreateSchema(ctx, conn, f.Config.DatabaseType); err != nil {
		conn.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return conn, nil
}

// seed loads the configured catalogue and inserts it when the database is empty.
func (f *Flags) seed(ctx context.Context, conn *sql.DB) (int, error) {
	activities, err := db.LoadSeed(f.Config.SeedFile)
	if err != nil {
		return 0, err
	}

	return db.Seed(ctx, conn, activities)
}
