package checker

import "time"

// Status is the terminal outcome of one service check.
type Status string

const (
	StatusPass Status = "PASS"
	StatusFail Status = "FAIL"
	StatusSkip Status = "SKIP"
)

// Result is the outcome of a single service check. Duration is zero when
// the probe body never ran.
type Result struct {
	Service  string
	Client   string
	Status   Status
	Detail   string
	Duration time.Duration
}

// DurationMs returns the elapsed time in whole milliseconds.
func (r Result) DurationMs() int64 {
	return r.Duration.Milliseconds()
}

func skipResult(service, client, reason string) Result {
	return Result{Service: service, Client: client, Status: StatusSkip, Detail: reason}
}

func failResult(service, client, reason string) Result {
	return Result{Service: service, Client: client, Status: StatusFail, Detail: reason}
}
