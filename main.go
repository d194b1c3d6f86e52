package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/danielhkuo/celebrate/cliparse"
	"github.com/danielhkuo/celebrate/commands"
)

func main() {
	// Values from .env fill in whatever the shell has not set
	if err := cliparse.LoadDotEnv(); err != nil {
		slog.Error("Error loading .env", "error", err)
		os.Exit(1)
	}

	flags := &commands.Flags{}

	app := &cli.Command{
		Name:      "celebrate",
		Usage:     "Anniversary celebration voting API",
		UsageText: "celebrate [global options] [command [command options]]",
		Description: `Guests register by name, vote on a fixed list of activities, and leave
a message for the couple. Hosts read the tallies and messages.

Run 'celebrate' with no command to serve the API.`,
		Flags: cliparse.Flags(&flags.Config),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			if err := flags.Config.Validate(); err != nil {
				return ctx, err
			}
			slog.SetDefault(flags.Config.NewLogger(os.Stderr))
			return ctx, nil
		},
	}

	serveCmd := commands.NewServeCmd(flags)

	app = serveCmd.Register(app)
	app = commands.NewSeedCmd(flags).Register(app)
	app = commands.NewResultsCmd(flags).Register(app)
	app = commands.NewVotingCmd(flags).Register(app)

	// Serve when no subcommand is provided
	app.Action = func(ctx context.Context, c *cli.Command) error {
		if c.Args().Len() > 0 {
			return fmt.Errorf("unknown command %q. Run 'celebrate --help' for usage", c.Args().First())
		}
		return serveCmd.Run(ctx, c)
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		slog.Error("celebrate failed", "error", err)
		os.Exit(1)
	}
}
