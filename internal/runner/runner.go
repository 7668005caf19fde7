// Package runner drives service checks one after another.
package runner

import (
	"context"
	"log/slog"

	"github.com/hazz-dev/svccheck/internal/checker"
)

// Harness runs a single service definition.
type Harness interface {
	RunDefinition(ctx context.Context, def checker.Definition) checker.Result
}

// Runner executes definitions sequentially, in order, and collects one
// result per definition.
type Runner struct {
	defs    []checker.Definition
	harness Harness
	logger  *slog.Logger
}

// New creates a new Runner. A nil logger falls back to slog.Default().
func New(defs []checker.Definition, harness Harness, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{
		defs:    defs,
		harness: harness,
		logger:  logger,
	}
}

// Run executes every definition and returns the results in definition
// order. A failing check never prevents the ones after it from running.
func (r *Runner) Run(ctx context.Context) []checker.Result {
	results := make([]checker.Result, 0, len(r.defs))
	for _, def := range r.defs {
		result := r.harness.RunDefinition(ctx, def)

		r.logger.Info("check result",
			"service", result.Service,
			"client", result.Client,
			"status", result.Status,
			"duration_ms", result.DurationMs(),
			"detail", result.Detail,
		)
		results = append(results, result)
	}
	return results
}
