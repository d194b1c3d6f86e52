// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line flags, environment and .env configuration.

# Configuration

Flags returns the global urfave/cli flags bound to a Config. The root
command in main.go registers them and calls Validate before any
subcommand runs. ParseFlags does the same for a bare argument list:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 8000)
  - DatabaseURL: Connection string (default: file:celebrate.db for sqlite)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - SeedFile: YAML activity catalogue (default: built-in)
  - AllowedOrigins: CORS allowlist
  - IPHashSalt: Secret for hashing voter IPs
  - LogLevel, LogFormat: slog handler settings

# Environment Variables

Flags fall back to environment variables:

	PORT            → -p, --port
	DATABASE_URL    → -d, --database-url
	DATABASE_TYPE   → -t, --database-type
	SEED_FILE       → --seed-file
	ALLOWED_ORIGINS → --allowed-origins (comma separated)
	IP_HASH_SALT    → --ip-salt
	LOG_LEVEL       → --log-level
	LOG_FORMAT      → --log-format

CLI flags take precedence over environment variables. LoadDotEnv reads
a .env file first, without overriding variables that are already set.

# Validation

Validate returns an error when:

  - the database type is neither sqlite nor postgres
  - postgres is selected without a DATABASE_URL
  - the port is outside 1-65535
  - the log level or format is unknown
*/
package cliparse
