package probes

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/go-sql-driver/mysql"

	"github.com/hazz-dev/svccheck/internal/checker"
	"github.com/hazz-dev/svccheck/internal/config"
)

const (
	mysqlService = "MySQL"
	mysqlClient  = "go-mysql"
)

var mysqlDialect = sqlDialect{
	createTable: `
		CREATE TABLE IF NOT EXISTS health_check_events (
			id CHAR(36) PRIMARY KEY,
			source VARCHAR(255) NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
	insert: `INSERT INTO health_check_events (id, source) VALUES (?, ?)`,
	count:  `SELECT COUNT(*) FROM health_check_events WHERE id = ?`,
}

// MySQL checks a MySQL server through go-sql-driver.
func MySQL(env config.Env) checker.Check {
	host := config.String(env, "MYSQL_HOST", "mysql")
	port := config.Port(env, "MYSQL_PORT", 3306)
	user := config.String(env, "MYSQL_USER", "mysql")
	password := config.String(env, "MYSQL_PASSWORD", "mysql")
	database := config.String(env, "MYSQL_DATABASE", "devcontainer_db")

	return checker.Check{
		Service: mysqlService,
		Client:  mysqlClient,
		Gate: checker.Gate{
			Flag:           "ENABLE_MYSQL",
			DefaultEnabled: false,
			Host:           host,
			Port:           port,
		},
		Probe: func(ctx context.Context) (string, error) {
			cfg := mysql.NewConfig()
			cfg.User = user
			cfg.Passwd = password
			cfg.Net = "tcp"
			cfg.Addr = hostPort(host, port)
			cfg.DBName = database
			cfg.ParseTime = true

			connector, err := mysql.NewConnector(cfg)
			if err != nil {
				return "", fmt.Errorf("configuring mysql: %w", err)
			}
			db := sql.OpenDB(connector)
			defer db.Close()

			return sqlRoundTrip(ctx, db, mysqlDialect, mysqlClient)
		},
	}
}
