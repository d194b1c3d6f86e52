// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the celebration voting API.

Guests register with a display name, vote once per activity (changing a
vote replaces it), and leave messages. The hosts view per-option tallies
and every message on an unlisted results page.

# Starting the Server

With no configuration the server uses a local SQLite file:

	go run .

Or against PostgreSQL:

	DATABASE_TYPE=postgres DATABASE_URL=postgres://... go run . serve -p 8080

A .env file in the working directory is loaded first. Variables already
set in the environment win.

# Commands

  - serve (default): Schema, seed, then serve HTTP until SIGINT/SIGTERM
  - seed: Schema and seed only
  - results: Print tallies and messages
  - voting status|open|close [--until RFC3339]: Inspect or toggle voting

# Configuration

  - PORT (-p): Server port (default: 8000)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - DATABASE_URL (-d): Connection string (default: file:celebrate.db)
  - SEED_FILE (--seed-file): YAML activity catalogue (default: built-in)
  - ALLOWED_ORIGINS (--allowed-origins): CORS allowlist
  - IP_HASH_SALT (--ip-salt): Secret for hashing voter IPs
  - LOG_LEVEL, LOG_FORMAT: slog level and text/json output

# Architecture

  - commands: CLI subcommands
  - handlers: HTTP request handlers (users, voting, messages, results)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - store: Queries and transactions
  - models: Request/response types
  - fingerprint: Salted IP hashing for vote auditing
  - report: Terminal tables for the results command
  - db: Connection, schema and seed data
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
