package checker

import (
	"fmt"
	"time"

	"github.com/hazz-dev/svccheck/internal/config"
)

// ReachTimeout bounds how long a gate waits for a service port.
const ReachTimeout = 2 * time.Second

// Gate describes when a check is allowed to run: Flag must resolve true
// (DefaultEnabled when unset) and, if Port is non-zero, Host:Port must
// accept TCP connections.
type Gate struct {
	Flag           string
	DefaultEnabled bool
	Host           string
	Port           uint16
}

// Evaluate returns nil when the probe body should run. Otherwise it returns
// the terminal Skip or Fail result, without having invoked anything.
func (g Gate) Evaluate(env config.Env, wait WaitFunc, service, client string) *Result {
	if !config.Bool(env, g.Flag, g.DefaultEnabled) {
		r := skipResult(service, client, fmt.Sprintf("%s=false -> service intentionally disabled", g.Flag))
		return &r
	}

	if g.Port > 0 && !wait(g.Host, g.Port, ReachTimeout) {
		r := failResult(service, client, fmt.Sprintf("%s:%d is not reachable", g.Host, g.Port))
		return &r
	}

	return nil
}
