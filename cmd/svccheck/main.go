package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/hazz-dev/svccheck/internal/config"
	"github.com/hazz-dev/svccheck/internal/version"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "svccheck",
		Short:        "Verify connectivity to the backing services of a deployment",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         runRoot,
	}
	root.AddCommand(versionCmd())
	return root
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String("svccheck"))
		},
	}
}

func runRoot(cmd *cobra.Command, _ []string) error {
	env, err := config.Resolve(config.OSEnv{})
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := newLogger(env, cmd.ErrOrStderr())
	slog.SetDefault(logger)

	color := useColor(env, isatty.IsTerminal(os.Stdout.Fd()))
	return executeRun(cmd.OutOrStdout(), env, logger, color)
}
