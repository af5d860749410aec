package main

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/dmitrijs2005/stackguard/internal/buildinfo"
	"github.com/dmitrijs2005/stackguard/internal/client/cli"
	"github.com/dmitrijs2005/stackguard/internal/client/config"
	"github.com/dmitrijs2005/stackguard/internal/logging"
)

// newRootCmd builds the command tree around an already loaded config. Tests
// call it for a fresh tree per case.
func newRootCmd(cfg *config.Config) *cobra.Command {
	root := &cobra.Command{
		Use:   "stackguard",
		Short: "StackGuard account and public key onboarding",
		Long: `StackGuard walks a user through creating an account or signing in,
configuring a public key and reaching the dashboard.

Running without a subcommand starts the interactive prompt. Settings come
from -c/-config (JSON), -d, -l, -lang and -w.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, cfg, func(ctx context.Context, app *cli.App) error {
				app.Run(ctx)
				return nil
			})
		},
	}
	root.Version = buildinfo.Version

	root.AddCommand(newStatusCmd(cfg), newResetCmd(cfg), newVersionCmd())
	return root
}

func newStatusCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the stored session and where the prompt would start",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, cfg, func(ctx context.Context, app *cli.App) error {
				return app.Status(ctx)
			})
		},
	}
}

func newResetCmd(cfg *config.Config) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete every account, the session and the public key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !yes {
				return errors.New("reset deletes all local accounts; pass --yes to confirm")
			}
			return withApp(cmd, cfg, func(ctx context.Context, app *cli.App) error {
				return app.Reset(ctx)
			})
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "confirm the reset")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			buildinfo.PrintBuildData(cmd.OutOrStdout())
		},
	}
}

// withApp opens the client for one command and closes it afterwards. Every
// run gets its own id in the log.
func withApp(cmd *cobra.Command, cfg *config.Config, fn func(context.Context, *cli.App) error) error {
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	log := logging.NewConsoleLogger(cmd.ErrOrStderr(), level).With("run", uuid.NewString())

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	app, err := cli.NewApp(ctx, cfg, log, cmd.InOrStdin(), cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer func() {
		if err := app.Close(); err != nil {
			log.Warn(ctx, "closing store", "error", err)
		}
	}()

	log.Debug(ctx, "command started", "command", cmd.Name(), "db", cfg.DatabasePath)
	return fn(ctx, app)
}
