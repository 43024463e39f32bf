// Package journal keeps a SQLite history of parse runs.
package journal

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	mdwerror "github.com/msto63/sable/foundation/core/error"
	"github.com/msto63/sable/pkg/core/version"
)

// Status is the outcome of a parse run
type Status string

const (
	StatusOK    Status = "ok"
	StatusError Status = "error"
)

// Run is one recorded parse
type Run struct {
	ID         string    `json:"id" yaml:"id"`
	Source     string    `json:"source" yaml:"source"`
	Tokens     int       `json:"tokens" yaml:"tokens"`
	Forms      int       `json:"forms" yaml:"forms"`
	Status     Status    `json:"status" yaml:"status"`
	Diagnostic string    `json:"diagnostic,omitempty" yaml:"diagnostic,omitempty"`
	Output     string    `json:"output,omitempty" yaml:"output,omitempty"`
	DurationMs int64     `json:"duration_ms" yaml:"duration_ms"`
	CreatedAt  time.Time `json:"created_at" yaml:"created_at"`
}

// Filter restricts List results
type Filter struct {
	Status Status
	Source string
	Limit  int
}

// Stats summarizes the journal
type Stats struct {
	Total         int64   `json:"total"`
	OK            int64   `json:"ok"`
	Failed        int64   `json:"failed"`
	AvgDurationMs float64 `json:"avg_duration_ms"`
}

// Config holds journal configuration
type Config struct {
	Path string
}

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	return Config{Path: "./data/journal.db"}
}

// Journal is a SQLite-backed run history
type Journal struct {
	db *sql.DB
	mu sync.RWMutex
}

// Open opens or creates the journal database
func Open(cfg Config) (*Journal, error) {
	if cfg.Path == "" {
		cfg.Path = DefaultConfig().Path
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0755); err != nil {
		return nil, storageError(err, "failed to create journal directory").WithDetail("path", cfg.Path)
	}

	db, err := sql.Open("sqlite3", cfg.Path+"?_journal_mode=WAL&_synchronous=NORMAL&_busy_timeout=5000")
	if err != nil {
		return nil, storageError(err, "failed to open journal").WithDetail("path", cfg.Path)
	}
	db.SetMaxOpenConns(1)

	j := &Journal{db: db}
	if err := j.initSchema(); err != nil {
		db.Close()
		return nil, storageError(err, "failed to initialize journal schema").WithDetail("path", cfg.Path)
	}

	return j, nil
}

func (j *Journal) initSchema() error {
	var current int
	if err := j.db.QueryRow(`PRAGMA user_version`).Scan(&current); err != nil {
		return err
	}
	if current > version.JournalSchema {
		return fmt.Errorf("journal schema %d is newer than supported %d", current, version.JournalSchema)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		source TEXT NOT NULL,
		tokens INTEGER NOT NULL,
		forms INTEGER NOT NULL,
		status TEXT NOT NULL,
		diagnostic TEXT,
		output TEXT,
		duration_ms INTEGER NOT NULL,
		created_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at DESC);
	CREATE INDEX IF NOT EXISTS idx_runs_status ON runs(status);
	`
	if _, err := j.db.Exec(schema); err != nil {
		return err
	}

	_, err := j.db.Exec(fmt.Sprintf("PRAGMA user_version = %d", version.JournalSchema))
	return err
}

// Record stores a run, assigning ID and CreatedAt when unset
func (j *Journal) Record(ctx context.Context, run *Run) error {
	if run == nil {
		return mdwerror.New("run is nil").WithCode(mdwerror.CodeInvalidInput).WithOperation("journal.Record")
	}
	if run.Status != StatusOK && run.Status != StatusError {
		return mdwerror.Newf("invalid run status %q", run.Status).
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("journal.Record")
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	if run.ID == "" {
		run.ID = uuid.New().String()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}

	_, err := j.db.ExecContext(ctx, `
		INSERT INTO runs (id, source, tokens, forms, status, diagnostic, output, duration_ms, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, run.ID, run.Source, run.Tokens, run.Forms, string(run.Status),
		nullString(run.Diagnostic), nullString(run.Output), run.DurationMs, run.CreatedAt)
	if err != nil {
		return storageError(err, "failed to record run").WithOperation("journal.Record").WithDetail("id", run.ID)
	}

	return nil
}

// Get returns the run with the given ID
func (j *Journal) Get(ctx context.Context, id string) (*Run, error) {
	j.mu.RLock()
	defer j.mu.RUnlock()

	row := j.db.QueryRowContext(ctx, `
		SELECT id, source, tokens, forms, status, diagnostic, output, duration_ms, created_at
		FROM runs WHERE id = ?
	`, id)

	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, mdwerror.Newf("run %s not found", id).
			WithCode(mdwerror.CodeNotFound).
			WithOperation("journal.Get")
	}
	if err != nil {
		return nil, storageError(err, "failed to load run").WithOperation("journal.Get").WithDetail("id", id)
	}
	return run, nil
}

// List returns runs newest first
func (j *Journal) List(ctx context.Context, filter Filter) ([]*Run, error) {
	j.mu.RLock()
	defer j.mu.RUnlock()

	query := `SELECT id, source, tokens, forms, status, diagnostic, output, duration_ms, created_at FROM runs WHERE 1=1`
	var args []interface{}

	if filter.Status != "" {
		query += " AND status = ?"
		args = append(args, string(filter.Status))
	}
	if filter.Source != "" {
		query += " AND source = ?"
		args = append(args, filter.Source)
	}

	query += " ORDER BY created_at DESC, rowid DESC"

	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := j.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storageError(err, "failed to list runs").WithOperation("journal.List")
	}
	defer rows.Close()

	var runs []*Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, storageError(err, "failed to scan run").WithOperation("journal.List")
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, storageError(err, "failed to list runs").WithOperation("journal.List")
	}

	return runs, nil
}

// Stats summarizes all recorded runs
func (j *Journal) Stats(ctx context.Context) (*Stats, error) {
	j.mu.RLock()
	defer j.mu.RUnlock()

	var stats Stats
	var avg sql.NullFloat64
	err := j.db.QueryRowContext(ctx, `
		SELECT COUNT(*),
		       COALESCE(SUM(CASE WHEN status = 'ok' THEN 1 ELSE 0 END), 0),
		       COALESCE(SUM(CASE WHEN status = 'error' THEN 1 ELSE 0 END), 0),
		       AVG(duration_ms)
		FROM runs
	`).Scan(&stats.Total, &stats.OK, &stats.Failed, &avg)
	if err != nil {
		return nil, storageError(err, "failed to compute stats").WithOperation("journal.Stats")
	}
	if avg.Valid {
		stats.AvgDurationMs = avg.Float64
	}

	return &stats, nil
}

// Prune deletes runs older than the given age and returns the count removed
func (j *Journal) Prune(ctx context.Context, olderThan time.Duration) (int64, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	cutoff := time.Now().UTC().Add(-olderThan)
	res, err := j.db.ExecContext(ctx, `DELETE FROM runs WHERE created_at < ?`, cutoff)
	if err != nil {
		return 0, storageError(err, "failed to prune runs").WithOperation("journal.Prune")
	}
	return res.RowsAffected()
}

// Ping checks that the database is reachable
func (j *Journal) Ping(ctx context.Context) error {
	return j.db.PingContext(ctx)
}

// Close closes the database
func (j *Journal) Close() error {
	return j.db.Close()
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanRun(s scanner) (*Run, error) {
	var run Run
	var status string
	var diagnostic, output sql.NullString

	if err := s.Scan(&run.ID, &run.Source, &run.Tokens, &run.Forms, &status,
		&diagnostic, &output, &run.DurationMs, &run.CreatedAt); err != nil {
		return nil, err
	}

	run.Status = Status(status)
	run.Diagnostic = diagnostic.String
	run.Output = output.String
	return &run, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func storageError(err error, message string) *mdwerror.Error {
	return mdwerror.Wrap(err, message).WithCode(mdwerror.CodeStorageError)
}
