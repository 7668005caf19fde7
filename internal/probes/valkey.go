package probes

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/hazz-dev/svccheck/internal/checker"
	"github.com/hazz-dev/svccheck/internal/config"
)

const (
	valkeyService = "Valkey"
	valkeyClient  = "go-redis"

	valkeyKeyTTL = 30 * time.Second
)

// Valkey checks a Valkey (or Redis) server with a SET/GET/DEL round-trip.
// VALKEY_* variables take precedence over REDIS_*.
func Valkey(env config.Env) checker.Check {
	host := config.String(env, "VALKEY_HOST", config.String(env, "REDIS_HOST", "valkey"))
	port := config.Port(env, "VALKEY_PORT", config.Port(env, "REDIS_PORT", 6379))

	return checker.Check{
		Service: valkeyService,
		Client:  valkeyClient,
		Gate: checker.Gate{
			Flag:           "ENABLE_VALKEY",
			DefaultEnabled: false,
			Host:           host,
			Port:           port,
		},
		Probe: func(ctx context.Context) (string, error) {
			client := redis.NewClient(&redis.Options{Addr: hostPort(host, port)})
			defer client.Close()

			payload := uuid.New().String()
			key := fmt.Sprintf("health:%s", payload)

			if err := client.Set(ctx, key, payload, valkeyKeyTTL).Err(); err != nil {
				return "", fmt.Errorf("setting %s: %w", key, err)
			}

			value, err := client.Get(ctx, key).Result()
			if err != nil {
				return "", fmt.Errorf("getting %s: %w", key, err)
			}

			if err := client.Del(ctx, key).Err(); err != nil {
				return "", fmt.Errorf("deleting %s: %w", key, err)
			}

			if value != payload {
				return "", fmt.Errorf("unexpected payload: got %s, want %s", value, payload)
			}

			return fmt.Sprintf("SET/GET on %s succeeded", key), nil
		},
	}
}
