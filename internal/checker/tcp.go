package checker

import (
	"context"
	"log/slog"
	"net"
	"strconv"
	"time"
)

const (
	dialTimeout   = 500 * time.Millisecond
	retryInterval = 200 * time.Millisecond
)

// WaitFunc reports whether host:port accepts a TCP connection within timeout.
type WaitFunc func(host string, port uint16, timeout time.Duration) bool

// WaitForPort polls host:port until a TCP connection succeeds or timeout
// elapses. Resolution and connect failures are retried alike.
func WaitForPort(host string, port uint16, timeout time.Duration) bool {
	return waitForPort(slog.Default(), host, port, timeout)
}

func waitForPort(logger *slog.Logger, host string, port uint16, timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)
	portStr := strconv.Itoa(int(port))

	for time.Now().Before(deadline) {
		err := dialOnce(host, portStr)
		if err == nil {
			return true
		}
		logger.Debug("dial attempt failed", "host", host, "port", port, "error", err)
		time.Sleep(retryInterval)
	}
	return false
}

// dialOnce resolves host and connects to the first address it returns.
func dialOnce(host, port string) error {
	ctx, cancel := context.WithTimeout(context.Background(), dialTimeout)
	defer cancel()

	addrs, err := net.DefaultResolver.LookupHost(ctx, host)
	if err != nil {
		return err
	}
	if len(addrs) == 0 {
		return &net.DNSError{Err: "no addresses", Name: host, IsNotFound: true}
	}

	conn, err := net.DialTimeout("tcp", net.JoinHostPort(addrs[0], port), dialTimeout)
	if err != nil {
		return err
	}
	conn.Close()
	return nil
}
