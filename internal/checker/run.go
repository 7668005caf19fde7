package checker

import (
	"context"
	"fmt"
	"time"
)

// ProbeFunc is a probe body: it exercises one backend and returns a
// human-readable success detail, or an error describing what went wrong.
type ProbeFunc func(ctx context.Context) (string, error)

// RunCheck times probe and converts its outcome into a Result. Errors and
// panics raised by probe become StatusFail; nothing escapes.
func RunCheck(ctx context.Context, service, client string, probe ProbeFunc) (result Result) {
	result = Result{Service: service, Client: client}

	start := time.Now()
	defer func() {
		result.Duration = time.Since(start)
		if r := recover(); r != nil {
			result.Status = StatusFail
			result.Detail = fmt.Sprintf("panic: %v", r)
		}
	}()

	detail, err := probe(ctx)
	if err != nil {
		result.Status = StatusFail
		result.Detail = err.Error()
		return result
	}
	result.Status = StatusPass
	result.Detail = detail
	return result
}
