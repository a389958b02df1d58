// Package store persists completed CSTV runs to Postgres via pgx, keyed by
// a generated run ID, so a server or CLI invocation can be looked back up
// later (by the HTTP API, or by an operator auditing past elections).
package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pbvote/cstv/internal/applog"
)

const schema = `
CREATE TABLE IF NOT EXISTS cstv_runs (
	run_id       UUID PRIMARY KEY,
	combination  TEXT NOT NULL,
	project_names TEXT[] NOT NULL,
	created_at   TIMESTAMPTZ NOT NULL
);
`

// Run is one completed election, as persisted.
type Run struct {
	ID           uuid.UUID
	Combination  string
	ProjectNames []string
	CreatedAt    time.Time
}

// Store wraps a pgx connection pool.
type Store struct {
	pool *pgxpool.Pool
}

// Connect opens a connection pool against connStr and verifies it with a
// ping.
func Connect(ctx context.Context, connStr string) (*Store, error) {
	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		return nil, fmt.Errorf("store: connect: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("store: ping: %w", err)
	}
	applog.For("store").Info("connected to postgres")
	return &Store{pool: pool}, nil
}

// Close releases the connection pool.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// InitSchema creates the cstv_runs table if it doesn't already exist.
func (s *Store) InitSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("store: init schema: %w", err)
	}
	return nil
}

// SaveRun records a completed election under a fresh run ID and returns it.
func (s *Store) SaveRun(ctx context.Context, combination string, projectNames []string) (uuid.UUID, error) {
	id := uuid.New()
	const insert = `
		INSERT INTO cstv_runs (run_id, combination, project_names, created_at)
		VALUES ($1, $2, $3, $4)
	`
	if _, err := s.pool.Exec(ctx, insert, id, combination, projectNames, time.Now().UTC()); err != nil {
		return uuid.Nil, fmt.Errorf("store: save run: %w", err)
	}
	return id, nil
}

// GetRun looks up a previously persisted run by ID.
func (s *Store) GetRun(ctx context.Context, id uuid.UUID) (*Run, error) {
	const query = `
		SELECT run_id, combination, project_names, created_at
		FROM cstv_runs WHERE run_id = $1
	`
	row := s.pool.QueryRow(ctx, query, id)

	var run Run
	if err := row.Scan(&run.ID, &run.Combination, &run.ProjectNames, &run.CreatedAt); err != nil {
		return nil, fmt.Errorf("store: get run %s: %w", id, err)
	}
	return &run, nil
}
