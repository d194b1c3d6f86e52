package cliparse

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"

	"github.com/danielhkuo/celebrate/db"
)

const (
	DefaultPort      = 8000
	DefaultSQLiteURL = "file:celebrate.db"
)

// DefaultAllowedOrigins are the hosted frontend and the Vite dev server.
var DefaultAllowedOrigins = []string{"https://zfenton.github.io", "http://localhost:5173"}

type Config struct {
	Port           int
	DatabaseURL    string
	DatabaseType   string
	SeedFile       string
	AllowedOrigins []string
	IPHashSalt     string
	LogLevel       string
	LogFormat      string
}

// LoadDotEnv loads a .env file into the environment when one exists.
// Variables already set are not overridden.
func LoadDotEnv(paths ...string) error {
	err := godotenv.Load(paths...)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}
	return nil
}

// Flags declares the global flags, each falling back to its environment variable.
func Flags(cfg *Config) []cli.Flag {
	return []cli.Flag{
		// Network config
		&cli.IntFlag{
			Name:        "port",
			Aliases:     []string{"p"},
			Usage:       "server port",
			Sources:     cli.EnvVars("PORT"),
			Value:       DefaultPort,
			Destination: &cfg.Port,
		},
		&cli.StringFlag{
			Name:        "database-url",
			Aliases:     []string{"d"},
			Usage:       "database URL (defaults to " + DefaultSQLiteURL + " for sqlite)",
			Sources:     cli.EnvVars("DATABASE_URL"),
			Destination: &cfg.DatabaseURL,
		},
		&cli.StringFlag{
			Name:        "database-type",
			Aliases:     []string{"t"},
			Usage:       "database type (sqlite or postgres)",
			Sources:     cli.EnvVars("DATABASE_TYPE"),
			Value:       db.DriverSQLite,
			Destination: &cfg.DatabaseType,
		},
		&cli.StringFlag{
			Name:        "seed-file",
			Usage:       "YAML activity catalogue (defaults to the built-in one)",
			Sources:     cli.EnvVars("SEED_FILE"),
			Destination: &cfg.SeedFile,
		},
		&cli.StringSliceFlag{
			Name:        "allowed-origins",
			Usage:       "origins allowed by CORS",
			Sources:     cli.EnvVars("ALLOWED_ORIGINS"),
			Value:       DefaultAllowedOrigins,
			Destination: &cfg.AllowedOrigins,
		},
		// Secrets (prefer env variables, but allow CLI for dev)
		&cli.StringFlag{
			Name:        "ip-salt",
			Usage:       "salt for hashing voter IPs (prefer env)",
			Sources:     cli.EnvVars("IP_HASH_SALT"),
			Destination: &cfg.IPHashSalt,
		},
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "log level (debug, info, warn, error)",
			Sources:     cli.EnvVars("LOG_LEVEL"),
			Value:       "info",
			Destination: &cfg.LogLevel,
		},
		&cli.StringFlag{
			Name:        "log-format",
			Usage:       "log format (text or json)",
			Sources:     cli.EnvVars("LOG_FORMAT"),
			Value:       "text",
			Destination: &cfg.LogFormat,
		},
	}
}

// ParseFlags parses args (without the program name) and the environment into a validated Config.
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	cmd := &cli.Command{
		Name:      "celebrate",
		Flags:     Flags(&cfg),
		Writer:    io.Discard,
		ErrWriter: io.Discard,
		Action: func(context.Context, *cli.Command) error {
			return nil
		},
	}

	if err := cmd.Run(context.Background(), append([]string{"celebrate"}, args...)); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks the settings and fills in the sqlite default URL.
func (c *Config) Validate() error {
	switch c.DatabaseType {
	case db.DriverSQLite:
		if c.DatabaseURL == "" {
			c.DatabaseURL = DefaultSQLiteURL
		}
	case db.DriverPostgres:
		if c.DatabaseURL == "" {
			return errors.New("database URL required for postgres (use -d or DATABASE_URL env)")
		}
	default:
		return fmt.Errorf("unsupported database type %q (use sqlite or postgres)", c.DatabaseType)
	}

	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}

	if _, err := c.SlogLevel(); err != nil {
		return err
	}

	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("unsupported log format %q (use text or json)", c.LogFormat)
	}

	return nil
}

func (c Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log level %q", c.LogLevel)
	}
	return level, nil
}

// NewLogger builds the slog logger described by the config.
func (c Config) NewLogger(w io.Writer) *slog.Logger {
	level, err := c.SlogLevel()
	if err != nil {
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if c.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
