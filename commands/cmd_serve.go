// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/danielhkuo/celebrate/router"
	"github.com/danielhkuo/celebrate/store"
)

const shutdownTimeout = 10 * time.Second

type ServeCmd struct {
	flags *Flags
}

// NewServeCmd creates a new serve command
func NewServeCmd(flags *Flags) *ServeCmd {
	return &ServeCmd{flags: flags}
}

// Register adds the serve command to the application
func (cmd *ServeCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "serve",
		Usage:     "Run the HTTP API",
		UsageText: "celebrate serve",
		Description: `Opens the database, creates the schema, seeds the activity catalogue
when no activities exist yet, and serves the API until SIGINT or SIGTERM.

This is also what runs when no command is given.`,
		Action: cmd.Run,
	})

	return app
}

func (cmd *ServeCmd) Run(ctx context.Context, c *cli.Command) error {
	cfg := cmd.flags.Config

	conn, err := cmd.flags.openDB(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()
	slog.Info("Database schema ready", "type", cfg.DatabaseType)

	inserted, err := cmd.flags.seed(ctx, conn)
	if err != nil {
		return fmt.Errorf("seed database: %w", err)
	}
	if inserted > 0 {
		slog.Info("Seeded activities", "count", inserted)
	}

	server := http.Server{
		Handler:           router.NewRouter(store.New(conn), cfg),
		Addr:              ":" + strconv.Itoa(cfg.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		slog.Info("Listening", "port", cfg.Port)
		errc <- server.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return fmt.Errorf("server closed: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server closed: %w", err)
	}

	slog.Info("Server closed")
	return nil
}
