// Package probes defines the per-service connectivity checks. Each check
// creates a uniquely named resource, writes a record tagged with the client
// name, reads it back and verifies it. Created resources are left in place.
package probes

import (
	"fmt"
	"net"
	"strconv"

	"github.com/hazz-dev/svccheck/internal/checker"
)

// All returns the service definitions in the order they are run.
func All() []checker.Definition {
	return []checker.Definition{
		Postgres,
		MySQL,
		Valkey,
		Kafka,
		OpenSearch,
		MinIO,
	}
}

func hostPort(host string, port uint16) string {
	return net.JoinHostPort(host, strconv.Itoa(int(port)))
}

func healthName(id fmt.Stringer) string {
	return fmt.Sprintf("health-check-%s", id)
}
