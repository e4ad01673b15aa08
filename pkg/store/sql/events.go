package sql

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/de-tools/team-migration/pkg/models/store"
)

const DiagnosticEventsSchema = `
	CREATE TABLE IF NOT EXISTS diagnostic_events (
		id VARCHAR(36) PRIMARY KEY,
		name VARCHAR(128) NOT NULL,
		profile VARCHAR(128) NOT NULL DEFAULT '',
		occurred_at TIMESTAMP NOT NULL
	);
`

type EventStore struct {
	db *sql.DB
}

func NewEventStore(db *sql.DB) (*EventStore, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &EventStore{db: db}, nil
}

// Init creates the events table when it does not exist yet.
func (s *EventStore) Init(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, DiagnosticEventsSchema); err != nil {
		return fmt.Errorf("failed to create diagnostic_events table: %w", err)
	}
	return nil
}

func (s *EventStore) Add(ctx context.Context, event store.DiagnosticEvent) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO diagnostic_events (id, name, profile, occurred_at) VALUES ($1, $2, $3, $4)",
		event.ID, event.Name, event.Profile, event.OccurredAt)
	if err != nil {
		return fmt.Errorf("failed to insert diagnostic event %s: %w", event.Name, err)
	}
	return nil
}

// Recent returns the latest events of a profile, newest first.
func (s *EventStore) Recent(ctx context.Context, profile string, limit int) ([]store.DiagnosticEvent, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, profile, occurred_at FROM diagnostic_events WHERE profile = $1 ORDER BY occurred_at DESC LIMIT $2",
		profile, limit)
	if err != nil {
		return nil, fmt.Errorf("diagnostic events query failed: %w", err)
	}
	defer rows.Close()

	var events []store.DiagnosticEvent
	for rows.Next() {
		var e store.DiagnosticEvent
		if err := rows.Scan(&e.ID, &e.Name, &e.Profile, &e.OccurredAt); err != nil {
			return nil, fmt.Errorf("failed to scan diagnostic event: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("diagnostic events rows: %w", err)
	}
	return events, nil
}
