package history

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/shipdesk/shipment-ledger/constants"
)

// Store records one row per processed document in a local SQLite database.
// It is an audit aid, not the system of record: callers log and continue
// when a history write fails.
type Store struct {
	db  *sql.DB
	log *slog.Logger
}

// Job is one processing attempt for one document.
type Job struct {
	ID          uuid.UUID
	SourcePath  string
	Status      constants.JobStatus
	FieldsFound int
	Error       string
	StartedAt   time.Time
	FinishedAt  *time.Time
}

const schemaSQL = `
CREATE TABLE IF NOT EXISTS jobs (
	id           TEXT PRIMARY KEY,
	source_path  TEXT NOT NULL,
	status       TEXT NOT NULL,
	fields_found INTEGER NOT NULL DEFAULT 0,
	error        TEXT NOT NULL DEFAULT '',
	started_at   TIMESTAMP NOT NULL,
	finished_at  TIMESTAMP
);
CREATE INDEX IF NOT EXISTS jobs_started_at ON jobs(started_at);
`

// Open opens (creating if needed) the history database at path.
func Open(ctx context.Context, path string, log *slog.Logger) (*Store, error) {
	if log == nil {
		log = slog.Default()
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}
	if _, err := db.ExecContext(ctx, schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init history schema: %w", err)
	}
	return &Store{db: db, log: log}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Start inserts a RUNNING job row and returns its id.
func (s *Store) Start(ctx context.Context, sourcePath string) (uuid.UUID, error) {
	id := uuid.New()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO jobs (id, source_path, status, started_at) VALUES (?, ?, ?, ?)`,
		id.String(), sourcePath, string(constants.JobStatusRunning), time.Now().UTC(),
	)
	if err != nil {
		s.log.Error("history job start failed", "source", sourcePath, "err", err)
		return uuid.Nil, err
	}
	s.log.Info("history job started", "job_id", id, "source", sourcePath)
	return id, nil
}

// FinishSuccess marks the job SUCCEEDED with the number of fields found.
func (s *Store) FinishSuccess(ctx context.Context, id uuid.UUID, fieldsFound int) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE jobs SET status = ?, fields_found = ?, finished_at = ? WHERE id = ?`,
		string(constants.JobStatusSucceeded), fieldsFound, time.Now().UTC(), id.String(),
	)
	if err != nil {
		s.log.Error("history job finish(SUCCEEDED) failed", "job_id", id, "err", err)
		return err
	}
	return nil
}

// FinishFailure marks the job FAILED with the error message.
func (s *Store) FinishFailure(ctx context.Context, id uuid.UUID, message string) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE jobs SET status = ?, error = ?, finished_at = ? WHERE id = ?`,
		string(constants.JobStatusFailed), message, time.Now().UTC(), id.String(),
	)
	if err != nil {
		s.log.Error("history job finish(FAILED) failed", "job_id", id, "err", err)
		return err
	}
	s.log.Warn("history job failed", "job_id", id, "error", message)
	return nil
}

// Recent returns the most recently started jobs, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Job, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, source_path, status, fields_found, error, started_at, finished_at
		 FROM jobs ORDER BY started_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Job
	for rows.Next() {
		var j Job
		var id, status string
		var finished sql.NullTime
		if err := rows.Scan(&id, &j.SourcePath, &status, &j.FieldsFound, &j.Error, &j.StartedAt, &finished); err != nil {
			return nil, err
		}
		j.Status = constants.JobStatus(status)
		j.ID, err = uuid.Parse(id)
		if err != nil {
			return nil, fmt.Errorf("corrupt job id %q: %w", id, err)
		}
		if finished.Valid {
			t := finished.Time
			j.FinishedAt = &t
		}
		out = append(out, j)
	}
	return out, rows.Err()
}
