// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the database, creates the schema and seeds the activity catalogue.

# Opening a Connection

Open selects the driver by type and verifies the connection:

	conn, err := db.Open(ctx, db.DriverSQLite, "file:celebrate.db")

SQLite connections get foreign keys, WAL journaling and a busy timeout,
and are limited to a single open connection so writes never contend.
PostgreSQL connections use lib/pq.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(ctx, conn, db.DriverSQLite); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - app_user: Registered guests
  - activity: Questions guests vote on
  - activity_option: Choices per activity
  - vote: One vote per guest per activity
  - message: Free-text messages from guests
  - app_config: Single row holding the voting status

# Relationships

	activity 1──* activity_option
	activity 1──* vote
	app_user 1──* vote
	app_user 1──* message

All foreign keys use ON DELETE CASCADE.

# Seeding

The activity catalogue lives in YAML. The embedded seed.yaml is used
unless a path is given:

	activities, err := db.LoadSeed("")
	inserted, err := db.Seed(ctx, conn, activities)

Seed does nothing when activities already exist.
*/
package db
