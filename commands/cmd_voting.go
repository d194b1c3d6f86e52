// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package commands

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"

	"github.com/danielhkuo/celebrate/models"
	"github.com/danielhkuo/celebrate/store"
)

type VotingCmd struct {
	flags *Flags
}

// NewVotingCmd creates a new voting command
func NewVotingCmd(flags *Flags) *VotingCmd {
	return &VotingCmd{flags: flags}
}

// Register adds the voting command and its subcommands to the application
func (cmd *VotingCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "voting",
		Usage:     "Show, open or close voting",
		UsageText: "celebrate voting status|open|close [--until RFC3339]",
		Commands: []*cli.Command{
			{
				Name:   "status",
				Usage:  "Show whether votes are accepted",
				Action: cmd.status,
			},
			{
				Name:   "open",
				Usage:  "Accept votes and clear any end time",
				Action: cmd.open,
			},
			{
				Name:  "close",
				Usage: "Stop accepting votes now, or at --until",
				Description: `Without --until voting closes immediately. With --until the closed
flag is left alone and voting stops once the given time passes.`,
				Action: cmd.close,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "until",
						Usage: "RFC3339 time at which voting ends",
					},
				},
			},
		},
	})

	return app
}

func (cmd *VotingCmd) withStore(ctx context.Context, fn func(*store.Store) error) error {
	conn, err := cmd.flags.openDB(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	return fn(store.New(conn))
}

func (cmd *VotingCmd) status(ctx context.Context, c *cli.Command) error {
	return cmd.withStore(ctx, func(s *store.Store) error {
		return printStatus(ctx, c.Root().Writer, s)
	})
}

func (cmd *VotingCmd) open(ctx context.Context, c *cli.Command) error {
	return cmd.withStore(ctx, func(s *store.Store) error {
		if err := s.SetVotingClosed(ctx, false); err != nil {
			return err
		}
		if err := s.SetVotingEndTime(ctx, nil); err != nil {
			return err
		}
		return printStatus(ctx, c.Root().Writer, s)
	})
}

func (cmd *VotingCmd) close(ctx context.Context, c *cli.Command) error {
	return cmd.withStore(ctx, func(s *store.Store) error {
		if raw := c.String("until"); raw != "" {
			until, err := time.Parse(time.RFC3339, raw)
			if err != nil {
				return fmt.Errorf("invalid --until %q: %w", raw, err)
			}
			if err := s.SetVotingEndTime(ctx, &until); err != nil {
				return err
			}
		} else if err := s.SetVotingClosed(ctx, true); err != nil {
			return err
		}
		return printStatus(ctx, c.Root().Writer, s)
	})
}

func printStatus(ctx context.Context, w io.Writer, s *store.Store) error {
	status, err := s.VotingStatus(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, describeStatus(status, time.Now()))
	return nil
}

func describeStatus(status models.VotingStatus, now time.Time) string {
	state := "closed"
	if status.IsVotingOpen {
		state = "open"
	}

	if status.VotingEndTime == nil {
		return "Voting is " + state
	}

	end := *status.VotingEndTime
	return fmt.Sprintf("Voting is %s (ends %s, %s)", state,
		end.Local().Format(time.RFC3339),
		humanize.RelTime(end, now, "ago", "from now"))
}
