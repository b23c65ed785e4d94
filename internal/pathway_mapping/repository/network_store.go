package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/GoSim-25-26J-441/biopax-network-mapper/internal/pathway_mapping/domain"
)

const networkSchema = `
	CREATE TABLE IF NOT EXISTS biopax_networks (
		run_id     TEXT PRIMARY KEY,
		format     TEXT NOT NULL,
		payload    BYTEA NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)
`

// PgxConn is the subset of *pgxpool.Pool the store uses.
type PgxConn interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// NetworkStore keeps the serialized network of each run.
type NetworkStore struct {
	conn PgxConn
}

func NewNetworkStore(conn PgxConn) *NetworkStore {
	return &NetworkStore{conn: conn}
}

func (s *NetworkStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.conn.Exec(ctx, networkSchema); err != nil {
		return fmt.Errorf("create network table: %w", err)
	}
	return nil
}

func (s *NetworkStore) Save(ctx context.Context, runID, format string, payload []byte) error {
	_, err := s.conn.Exec(ctx, `
		INSERT INTO biopax_networks (run_id, format, payload)
		VALUES ($1, $2, $3)
		ON CONFLICT (run_id) DO UPDATE SET format = EXCLUDED.format, payload = EXCLUDED.payload
	`, runID, format, payload)
	if err != nil {
		return fmt.Errorf("save network %s: %w", runID, err)
	}
	return nil
}

// Load returns the stored payload and its format.
func (s *NetworkStore) Load(ctx context.Context, runID string) ([]byte, string, error) {
	var (
		payload []byte
		format  string
	)
	err := s.conn.QueryRow(ctx, `SELECT payload, format FROM biopax_networks WHERE run_id = $1`, runID).
		Scan(&payload, &format)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, "", domain.ErrRunNotFound
	}
	if err != nil {
		return nil, "", fmt.Errorf("load network %s: %w", runID, err)
	}
	return payload, format, nil
}

func (s *NetworkStore) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := s.conn.Exec(ctx, `DELETE FROM biopax_networks WHERE created_at < $1`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("delete old networks: %w", err)
	}
	return tag.RowsAffected(), nil
}
