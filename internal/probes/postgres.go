package probes

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/hazz-dev/svccheck/internal/checker"
	"github.com/hazz-dev/svccheck/internal/config"
)

const (
	postgresService = "PostgreSQL"
	postgresClient  = "go-pgx"
)

var postgresDialect = sqlDialect{
	createTable: `
		CREATE TABLE IF NOT EXISTS health_check_events (
			id UUID PRIMARY KEY,
			source TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	insert: `INSERT INTO health_check_events (id, source) VALUES ($1, $2)`,
	count:  `SELECT COUNT(*) FROM health_check_events WHERE id = $1`,
}

// Postgres checks a PostgreSQL server through pgx.
func Postgres(env config.Env) checker.Check {
	host := config.String(env, "POSTGRES_HOST", "postgres")
	port := config.Port(env, "POSTGRES_PORT", 5432)
	user := config.String(env, "POSTGRES_USER", "postgres")
	password := config.String(env, "POSTGRES_PASSWORD", "postgres")
	database := config.String(env, "POSTGRES_DB", "devcontainer_db")

	return checker.Check{
		Service: postgresService,
		Client:  postgresClient,
		Gate: checker.Gate{
			Flag:           "ENABLE_POSTGRES",
			DefaultEnabled: true,
			Host:           host,
			Port:           port,
		},
		Probe: func(ctx context.Context) (string, error) {
			cfg, err := pgx.ParseConfig("sslmode=disable")
			if err != nil {
				return "", fmt.Errorf("configuring postgres: %w", err)
			}
			// Set fields directly so empty or space-containing values
			// reach the server unchanged.
			cfg.Host = host
			cfg.Port = port
			cfg.User = user
			cfg.Password = password
			cfg.Database = database
			cfg.Fallbacks = nil

			db := stdlib.OpenDB(*cfg)
			defer db.Close()

			return sqlRoundTrip(ctx, db, postgresDialect, postgresClient)
		},
	}
}
