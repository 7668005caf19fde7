// Package checker holds the gate-then-execute harness shared by every
// service check.
package checker

import (
	"context"
	"log/slog"
	"time"

	"github.com/hazz-dev/svccheck/internal/config"
)

// Check is one named service probe together with its gate.
type Check struct {
	Service string
	Client  string
	Gate    Gate
	Probe   ProbeFunc
}

// Definition builds a Check from the environment. Each supported service
// provides one.
type Definition func(env config.Env) Check

// Harness gates and runs checks against a fixed environment.
type Harness struct {
	env    config.Env
	wait   WaitFunc
	logger *slog.Logger
}

// New creates a Harness. Pass nil logger to use the default logger.
func New(env config.Env, logger *slog.Logger) *Harness {
	if logger == nil {
		logger = slog.Default()
	}
	return &Harness{
		env:    env,
		logger: logger,
		wait: func(host string, port uint16, timeout time.Duration) bool {
			return waitForPort(logger, host, port, timeout)
		},
	}
}

// NewWithWait creates a Harness with a custom reachability function (for testing).
func NewWithWait(env config.Env, wait WaitFunc, logger *slog.Logger) *Harness {
	h := New(env, logger)
	h.wait = wait
	return h
}

// Run evaluates c's gate and, if it passes, executes the probe body.
func (h *Harness) Run(ctx context.Context, c Check) Result {
	if gated := c.Gate.Evaluate(h.env, h.wait, c.Service, c.Client); gated != nil {
		h.logger.Debug("gate stopped check",
			"service", c.Service,
			"status", gated.Status,
			"detail", gated.Detail,
		)
		return *gated
	}
	return RunCheck(ctx, c.Service, c.Client, c.Probe)
}

// RunDefinition builds the check for def from the harness environment and runs it.
func (h *Harness) RunDefinition(ctx context.Context, def Definition) Result {
	return h.Run(ctx, def(h.env))
}
