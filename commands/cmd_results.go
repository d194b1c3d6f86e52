// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/danielhkuo/celebrate/report"
	"github.com/danielhkuo/celebrate/store"
)

type ResultsCmd struct {
	flags *Flags
}

// NewResultsCmd creates a new results command
func NewResultsCmd(flags *Flags) *ResultsCmd {
	return &ResultsCmd{flags: flags}
}

// Register adds the results command to the application
func (cmd *ResultsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "results",
		Usage:     "Print vote tallies and guest messages",
		UsageText: "celebrate results [--no-messages]",
		Action:    cmd.run,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "no-messages",
				Usage: "only print the vote tallies",
			},
		},
	})

	return app
}

func (cmd *ResultsCmd) run(ctx context.Context, c *cli.Command) error {
	conn, err := cmd.flags.openDB(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	s := store.New(conn)
	w := c.Root().Writer

	results, err := s.GetResults(ctx)
	if err != nil {
		return fmt.Errorf("compute results: %w", err)
	}
	if err := report.WriteResults(w, results); err != nil {
		return err
	}

	if c.Bool("no-messages") {
		return nil
	}

	messages, err := s.GetMessages(ctx)
	if err != nil {
		return fmt.Errorf("query messages: %w", err)
	}

	fmt.Fprintln(w)
	return report.WriteMessages(w, messages, time.Now())
}
