// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

type SeedCmd struct {
	flags *Flags
}

// NewSeedCmd creates a new seed command
func NewSeedCmd(flags *Flags) *SeedCmd {
	return &SeedCmd{flags: flags}
}

// Register adds the seed command to the application
func (cmd *SeedCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "seed",
		Usage:     "Create the schema and insert the activity catalogue",
		UsageText: "celebrate seed [--seed-file activities.yaml]",
		Description: `Creates the schema and inserts the activity catalogue. Nothing is
inserted when the database already has activities, so running it twice is safe.`,
		Action: cmd.run,
	})

	return app
}

func (cmd *SeedCmd) run(ctx context.Context, c *cli.Command) error {
	conn, err := cmd.flags.openDB(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	inserted, err := cmd.flags.seed(ctx, conn)
	if err != nil {
		return fmt.Errorf("seed database: %w", err)
	}

	w := c.Root().Writer
	if inserted == 0 {
		fmt.Fprintln(w, "Activities already present, nothing inserted")
		return nil
	}

	fmt.Fprintf(w, "Inserted %d activities\n", inserted)
	return nil
}
