package probes

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

// sqlDialect holds the statements for the health_check_events round-trip.
// insert takes (id, source); count takes (id).
type sqlDialect struct {
	createTable string
	insert      string
	count       string
}

// sqlRoundTrip creates the events table if needed, inserts one row tagged
// with source and counts it back.
func sqlRoundTrip(ctx context.Context, db *sql.DB, d sqlDialect, source string) (string, error) {
	if _, err := db.ExecContext(ctx, d.createTable); err != nil {
		return "", fmt.Errorf("creating table: %w", err)
	}

	eventID := uuid.New().String()
	if _, err := db.ExecContext(ctx, d.insert, eventID, source); err != nil {
		return "", fmt.Errorf("inserting row %s: %w", eventID, err)
	}

	var count int
	if err := db.QueryRowContext(ctx, d.count, eventID).Scan(&count); err != nil {
		return "", fmt.Errorf("counting row %s: %w", eventID, err)
	}
	if count == 0 {
		return "", fmt.Errorf("row %s not found after insert", eventID)
	}

	return fmt.Sprintf("Inserted row %s (rows_found=%d)", eventID, count), nil
}
