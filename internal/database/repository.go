package database

import (
	"context"
	"fmt"
	"time"

	"github.com/povarna/aoc2022/internal/models"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id          BIGSERIAL PRIMARY KEY,
	day         INTEGER NOT NULL,
	part        INTEGER NOT NULL,
	input_hash  TEXT NOT NULL,
	answer      TEXT NOT NULL DEFAULT '',
	status      TEXT NOT NULL,
	error       TEXT NOT NULL DEFAULT '',
	duration_ns BIGINT NOT NULL,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS runs_day_created_at_idx ON runs (day, created_at DESC);
`

// EnsureSchema creates the runs table if it does not exist.
func (db *DB) EnsureSchema(ctx context.Context) error {
	if _, err := db.Pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// Record stores one solve attempt.
func (db *DB) Record(ctx context.Context, run models.Run) error {
	query := `
	INSERT INTO runs (day, part, input_hash, answer, status, error, duration_ns, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	createdAt := run.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	_, err := db.Pool.Exec(ctx, query,
		run.Day,
		run.Part,
		run.InputHash,
		run.Answer,
		string(run.Status),
		run.Error,
		run.Duration.Nanoseconds(),
		createdAt,
	)
	if err != nil {
		return fmt.Errorf("failed to record run for day %d part %d: %w", run.Day, run.Part, err)
	}
	return nil
}

// ListRuns returns the most recent runs first. A day of 0 lists every day.
func (db *DB) ListRuns(ctx context.Context, day int, limit int) ([]models.Run, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `
	SELECT id, day, part, input_hash, answer, status, error, duration_ns, created_at
	FROM runs
	WHERE $1 = 0 OR day = $1
	ORDER BY created_at DESC, id DESC
	LIMIT $2`

	rows, err := db.Pool.Query(ctx, query, day, limit)
	if err != nil {
		return nil, fmt.Errorf("unable to query runs: %w", err)
	}
	defer rows.Close()

	var runs []models.Run
	for rows.Next() {
		var (
			run      models.Run
			status   string
			duration int64
		)
		if err := rows.Scan(&run.ID, &run.Day, &run.Part, &run.InputHash, &run.Answer, &status, &run.Error, &duration, &run.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		run.Status = models.RunStatus(status)
		run.Duration = time.Duration(duration)
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read runs: %w", err)
	}

	return runs, nil
}
