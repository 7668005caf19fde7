package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/hazz-dev/svccheck/internal/checker"
	"github.com/hazz-dev/svccheck/internal/config"
	"github.com/hazz-dev/svccheck/internal/probes"
	"github.com/hazz-dev/svccheck/internal/report"
	"github.com/hazz-dev/svccheck/internal/runner"
)

func executeRun(out io.Writer, env config.Env, logger *slog.Logger, color bool) error {
	return runDefinitions(out, env, logger, color, probes.All())
}

func runDefinitions(out io.Writer, env config.Env, logger *slog.Logger, color bool, defs []checker.Definition) error {
	harness := checker.New(env, logger)
	results := runner.New(defs, harness, logger).Run(context.Background())

	summary := report.NewPrinter(out, color).Print(results)
	if summary.ExitCode() != 0 {
		return fmt.Errorf("%d of %d checks failed", summary.Failed, len(results))
	}
	return nil
}

func newLogger(env config.Env, w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: logLevel(env)}))
}

func logLevel(env config.Env) slog.Level {
	switch strings.ToLower(config.String(env, "LOG_LEVEL", "warn")) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// useColor reports whether result lines should carry ANSI colors.
func useColor(env config.Env, tty bool) bool {
	if _, ok := env.Lookup("NO_COLOR"); ok {
		return false
	}
	return tty
}
