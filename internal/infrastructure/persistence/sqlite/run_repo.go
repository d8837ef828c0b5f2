package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/bnema/favbuddy/internal/application/port"
	"github.com/bnema/favbuddy/internal/domain/entity"
	"github.com/bnema/favbuddy/internal/logging"
)

// RunRepository records enrichment runs. The connection is opened lazily.
type RunRepository struct {
	db *LazyDB
}

var _ port.RunHistoryRepository = (*RunRepository)(nil)

// NewRunRepository creates a run history repository.
func NewRunRepository(db *LazyDB) *RunRepository {
	return &RunRepository{db: db}
}

const upsertRunSQL = `
INSERT INTO enrich_runs (id, input_path, output_path, status, processed, total, succeeded, failed, error, started_at, finished_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
    output_path = excluded.output_path,
    status      = excluded.status,
    processed   = excluded.processed,
    total       = excluded.total,
    succeeded   = excluded.succeeded,
    failed      = excluded.failed,
    error       = excluded.error,
    finished_at = excluded.finished_at`

func (r *RunRepository) Save(ctx context.Context, run *entity.EnrichSession) error {
	db, err := r.db.DB(ctx)
	if err != nil {
		return err
	}

	var finished sql.NullInt64
	if !run.FinishedAt.IsZero() {
		finished = sql.NullInt64{Int64: run.FinishedAt.UnixMilli(), Valid: true}
	}

	_, err = db.ExecContext(ctx, upsertRunSQL,
		run.ID, run.InputPath, run.OutputPath, string(run.Status),
		run.Processed, run.Total, run.Succeeded, run.Failed, run.Error,
		run.StartedAt.UnixMilli(), finished,
	)
	if err != nil {
		return fmt.Errorf("save run %s: %w", run.ID, err)
	}

	logging.FromContext(ctx).Debug().Str("run_id", run.ID).Str("status", string(run.Status)).Msg("run recorded")
	return nil
}

const recentRunsSQL = `
SELECT id, input_path, output_path, status, processed, total, succeeded, failed, error, started_at, finished_at
FROM enrich_runs
ORDER BY started_at DESC
LIMIT ?`

func (r *RunRepository) Recent(ctx context.Context, limit int) ([]*entity.EnrichSession, error) {
	db, err := r.db.DB(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, recentRunsSQL, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	runs := make([]*entity.EnrichSession, 0, limit)
	for rows.Next() {
		var (
			run      entity.EnrichSession
			status   string
			started  int64
			finished sql.NullInt64
		)
		if err := rows.Scan(
			&run.ID, &run.InputPath, &run.OutputPath, &status,
			&run.Processed, &run.Total, &run.Succeeded, &run.Failed, &run.Error,
			&started, &finished,
		); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		run.Status = entity.RunStatus(status)
		run.StartedAt = time.UnixMilli(started)
		if finished.Valid {
			run.FinishedAt = time.UnixMilli(finished.Int64)
		}
		runs = append(runs, &run)
	}
	return runs, rows.Err()
}
