package probes_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/alicebob/miniredis"
	"github.com/neilotoole/slogt"
	"github.com/stretchr/testify/require"

	"github.com/hazz-dev/svccheck/internal/checker"
	"github.com/hazz-dev/svccheck/internal/config"
	"github.com/hazz-dev/svccheck/internal/probes"
)

var setGetDetail = regexp.MustCompile(`^SET/GET on (health:[0-9a-f-]{36}) succeeded$`)

func runMiniredis(t *testing.T) (*miniredis.Miniredis, config.MapEnv) {
	t.Helper()
	server, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(server.Close)

	return server, config.MapEnv{
		"ENABLE_VALKEY": "true",
		"VALKEY_HOST":   "127.0.0.1",
		"VALKEY_PORT":   server.Port(),
	}
}

func TestValkeyProbe_RoundTrip(t *testing.T) {
	server, env := runMiniredis(t)

	detail, err := probes.Valkey(env).Probe(context.Background())
	require.NoError(t, err)

	m := setGetDetail.FindStringSubmatch(detail)
	require.NotNil(t, m, "unexpected detail %q", detail)
	require.False(t, server.Exists(m[1]), "expected key %s to be deleted", m[1])
}

func TestValkeyProbe_ServerDown(t *testing.T) {
	server, env := runMiniredis(t)
	server.Close()

	_, err := probes.Valkey(env).Probe(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "setting health:")
}

func TestValkey_ThroughHarness(t *testing.T) {
	_, env := runMiniredis(t)
	h := checker.New(env, slogt.New(t))

	result := h.RunDefinition(context.Background(), probes.Valkey)
	require.Equal(t, checker.StatusPass, result.Status, result.Detail)
	require.Equal(t, "Valkey", result.Service)
	require.Equal(t, "go-redis", result.Client)
	require.Regexp(t, setGetDetail, result.Detail)
}

func TestKafka_DisabledThroughHarness(t *testing.T) {
	env := config.MapEnv{"ENABLE_KAFKA": "false"}
	h := checker.New(env, slogt.New(t))

	result := h.RunDefinition(context.Background(), probes.Kafka)
	require.Equal(t, checker.StatusSkip, result.Status)
	require.Equal(t, "ENABLE_KAFKA=false -> service intentionally disabled", result.Detail)
	require.Zero(t, result.DurationMs())
}

func TestMinIO_UnreachableThroughHarness(t *testing.T) {
	// Port 1 on loopback is not expected to accept connections.
	env := config.MapEnv{"MINIO_HOST": "127.0.0.1", "MINIO_PORT": "1"}
	h := checker.New(env, slogt.New(t))

	result := h.RunDefinition(context.Background(), probes.MinIO)
	require.Equal(t, checker.StatusFail, result.Status)
	require.Contains(t, result.Detail, "127.0.0.1:1 is not reachable")
	require.Zero(t, result.DurationMs())
}
