package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoSim-25-26J-441/biopax-network-mapper/internal/pathway_mapping/domain"
)

func setupSummaryRepo(t *testing.T) (*SummaryRepository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewSummaryRepository(db), mock
}

func TestSummaryRepository_CreateOrUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("creates new summary", func(t *testing.T) {
		repo, mock := setupSummaryRepo(t)
		summary := &domain.RunSummary{
			RunID:       "run-123",
			Mode:        "sif",
			NetworkName: "Glycolysis (SIF)",
			Nodes:       12,
			Edges:       20,
			Relations:   20,
			Rules:       []string{"in-complex-with"},
		}

		now := time.Now()
		mock.ExpectQuery(`INSERT INTO biopax_run_summaries`).
			WithArgs(
				sqlmock.AnyArg(), // id (UUID)
				"run-123",
				"sif",
				"Glycolysis (SIF)",
				12,
				20,
				sql.NullInt64{Int64: 20, Valid: true},
				[]byte(`["in-complex-with"]`),
			).
			WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

		require.NoError(t, repo.CreateOrUpdate(ctx, summary))
		assert.NotEmpty(t, summary.ID)
		assert.Equal(t, now, summary.CreatedAt)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("default run stores null relations and empty rules", func(t *testing.T) {
		repo, mock := setupSummaryRepo(t)
		summary := &domain.RunSummary{ID: "existing-uuid", RunID: "run-9", Mode: "default", NetworkName: "X (Default)", Nodes: 3}

		mock.ExpectQuery(`INSERT INTO biopax_run_summaries`).
			WithArgs("existing-uuid", "run-9", "default", "X (Default)", 3, 0, sql.NullInt64{}, []byte(`[]`)).
			WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(time.Now(), time.Now()))

		require.NoError(t, repo.CreateOrUpdate(ctx, summary))
		assert.Equal(t, "existing-uuid", summary.ID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("database error", func(t *testing.T) {
		repo, mock := setupSummaryRepo(t)
		mock.ExpectQuery(`INSERT INTO biopax_run_summaries`).WillReturnError(errors.New("connection reset"))

		err := repo.CreateOrUpdate(ctx, &domain.RunSummary{RunID: "run-1"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "connection reset")
	})
}

func TestSummaryRepository_GetByRunID(t *testing.T) {
	ctx := context.Background()
	cols := []string{"id", "run_id", "mode", "network_name", "nodes", "edges", "relations", "rules", "created_at", "updated_at"}

	t.Run("found", func(t *testing.T) {
		repo, mock := setupSummaryRepo(t)
		now := time.Now()
		mock.ExpectQuery(`SELECT (.+) FROM biopax_run_summaries WHERE run_id = \$1`).
			WithArgs("run-123").
			WillReturnRows(sqlmock.NewRows(cols).
				AddRow("uuid-1", "run-123", "sif", "G (SIF)", 4, 5, 5, []byte(`["a","b"]`), now, now))

		s, err := repo.GetByRunID(ctx, "run-123")
		require.NoError(t, err)
		assert.Equal(t, "uuid-1", s.ID)
		assert.Equal(t, 5, s.Relations)
		assert.Equal(t, []string{"a", "b"}, s.Rules)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("null relations and bad rules json", func(t *testing.T) {
		repo, mock := setupSummaryRepo(t)
		mock.ExpectQuery(`SELECT (.+) FROM biopax_run_summaries`).
			WithArgs("run-2").
			WillReturnRows(sqlmock.NewRows(cols).
				AddRow("uuid-2", "run-2", "default", "G (Default)", 4, 5, nil, []byte(`{`), time.Now(), time.Now()))

		s, err := repo.GetByRunID(ctx, "run-2")
		require.NoError(t, err)
		assert.Zero(t, s.Relations)
		assert.Equal(t, []string{}, s.Rules)
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock := setupSummaryRepo(t)
		mock.ExpectQuery(`SELECT (.+) FROM biopax_run_summaries`).
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		_, err := repo.GetByRunID(ctx, "missing")
		assert.ErrorIs(t, err, domain.ErrRunNotFound)
	})
}

func TestSummaryRepository_DeleteOlderThan(t *testing.T) {
	repo, mock := setupSummaryRepo(t)
	cutoff := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectExec(`DELETE FROM biopax_run_summaries WHERE created_at < \$1`).
		WithArgs(cutoff).
		WillReturnResult(sqlmock.NewResult(0, 7))

	n, err := repo.DeleteOlderThan(context.Background(), cutoff)
	require.NoError(t, err)
	assert.Equal(t, int64(7), n)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSummaryRepository_EnsureSchema(t *testing.T) {
	repo, mock := setupSummaryRepo(t)
	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS biopax_run_summaries`).WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.EnsureSchema(context.Background()))
	require.NoError(t, mock.ExpectationsWereMet())
}
