// Package cli implements the routectl command line client.
package cli

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "routectl",
		Short: "Recommend routes between two places",
		Long: `routectl runs the route recommendation pipeline locally.

It resolves a baseline route through the configured map provider, applies an
optimization strategy (fastest, shortest, economical, eco_friendly) and prints
the route with tourist information and safety alerts.`,
		SilenceUsage: true,
	}

	root.AddCommand(newRouteCmd(), newModesCmd(), newStrategiesCmd())
	return root
}

// Execute runs the root command with os.Args.
func Execute() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	return root.ExecuteContext(ctx)
}
