package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/GoSim-25-26J-441/biopax-network-mapper/internal/pathway_mapping/domain"
)

const summarySchema = `
	CREATE TABLE IF NOT EXISTS biopax_run_summaries (
		id           UUID PRIMARY KEY,
		run_id       TEXT NOT NULL UNIQUE,
		mode         TEXT NOT NULL,
		network_name TEXT NOT NULL,
		nodes        INTEGER NOT NULL DEFAULT 0,
		edges        INTEGER NOT NULL DEFAULT 0,
		relations    INTEGER,
		rules        JSONB NOT NULL DEFAULT '[]',
		created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)
`

// SummaryRepository handles PostgreSQL operations for conversion run summaries
type SummaryRepository struct {
	db *sql.DB
}

func NewSummaryRepository(db *sql.DB) *SummaryRepository {
	return &SummaryRepository{db: db}
}

func (r *SummaryRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, summarySchema); err != nil {
		return fmt.Errorf("failed to create summary table: %w", err)
	}
	return nil
}

// CreateOrUpdate upserts a summary keyed by run_id.
func (r *SummaryRepository) CreateOrUpdate(ctx context.Context, summary *domain.RunSummary) error {
	if summary.ID == "" {
		summary.ID = uuid.New().String()
	}

	query := `
		INSERT INTO biopax_run_summaries (
			id, run_id, mode, network_name, nodes, edges, relations, rules
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (run_id) DO UPDATE SET
			mode = EXCLUDED.mode,
			network_name = EXCLUDED.network_name,
			nodes = EXCLUDED.nodes,
			edges = EXCLUDED.edges,
			relations = EXCLUDED.relations,
			rules = EXCLUDED.rules,
			updated_at = NOW()
		RETURNING created_at, updated_at
	`

	rules := summary.Rules
	if rules == nil {
		rules = []string{}
	}
	rulesJSON, err := json.Marshal(rules)
	if err != nil {
		return fmt.Errorf("failed to marshal rules: %w", err)
	}

	// relations only apply to SIF runs
	var relations sql.NullInt64
	if summary.Relations > 0 {
		relations = sql.NullInt64{Int64: int64(summary.Relations), Valid: true}
	}

	err = r.db.QueryRowContext(ctx, query,
		summary.ID,
		summary.RunID,
		summary.Mode,
		summary.NetworkName,
		summary.Nodes,
		summary.Edges,
		relations,
		rulesJSON,
	).Scan(&summary.CreatedAt, &summary.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create or update summary: %w", err)
	}

	return nil
}

func (r *SummaryRepository) GetByRunID(ctx context.Context, runID string) (*domain.RunSummary, error) {
	query := `
		SELECT id, run_id, mode, network_name, nodes, edges, relations, rules,
		       created_at, updated_at
		FROM biopax_run_summaries
		WHERE run_id = $1
	`

	var summary domain.RunSummary
	var relations sql.NullInt64
	var rulesJSON []byte

	err := r.db.QueryRowContext(ctx, query, runID).Scan(
		&summary.ID,
		&summary.RunID,
		&summary.Mode,
		&summary.NetworkName,
		&summary.Nodes,
		&summary.Edges,
		&relations,
		&rulesJSON,
		&summary.CreatedAt,
		&summary.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrRunNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get summary: %w", err)
	}

	if relations.Valid {
		summary.Relations = int(relations.Int64)
	}
	summary.Rules = []string{}
	if len(rulesJSON) > 0 {
		if err := json.Unmarshal(rulesJSON, &summary.Rules); err != nil {
			summary.Rules = []string{}
		}
	}

	return &summary, nil
}

// DeleteOlderThan removes summaries created before cutoff and returns how
// many went.
func (r *SummaryRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM biopax_run_summaries WHERE created_at < $1`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to delete old summaries: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count deleted summaries: %w", err)
	}
	return n, nil
}

// Ping reports whether the database is reachable.
func (r *SummaryRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
