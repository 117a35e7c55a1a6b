package runlog

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

type repo struct {
	db *sql.DB
}

// NewSQLite opens (or creates) the run ledger at path.
func NewSQLite(path string) (RunRepository, error) {
	db, err := initDatabase(path)
	if err != nil {
		return nil, err
	}

	return &repo{db: db}, nil
}

func (r *repo) Create(ctx context.Context, run *Run) error {
	const q = `INSERT INTO runs (id, url, status, count, output_file, error, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, q,
		run.ID, run.URL, run.Status, run.Count, run.OutputFile, run.Error,
		run.CreatedAt.Unix(), run.UpdatedAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert run: %w", err)
	}

	return nil
}

func (r *repo) Select(ctx context.Context, params SelectParams) ([]Run, error) {
	q := `SELECT id, url, status, count, output_file, error, created_at, updated_at FROM runs`

	var (
		where []string
		args  []any
	)

	if params.Status != "" {
		where = append(where, "status = ?")
		args = append(args, params.Status)
	}

	if len(where) > 0 {
		q += " WHERE " + strings.Join(where, " AND ")
	}

	q += " ORDER BY created_at DESC, rowid DESC"

	if params.Limit > 0 {
		q += " LIMIT ?"
		args = append(args, params.Limit)
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ans []Run

	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}

		ans = append(ans, run)
	}

	return ans, rows.Err()
}

func (r *repo) Update(ctx context.Context, run *Run) error {
	const q = `UPDATE runs SET status = ?, count = ?, output_file = ?, error = ?, updated_at = ? WHERE id = ?`

	res, err := r.db.ExecContext(ctx, q,
		run.Status, run.Count, run.OutputFile, run.Error, run.UpdatedAt.Unix(), run.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update run: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}

	if n == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *repo) Close() error {
	return r.db.Close()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(s scanner) (Run, error) {
	var (
		run                  Run
		createdAt, updatedAt int64
	)

	err := s.Scan(&run.ID, &run.URL, &run.Status, &run.Count, &run.OutputFile, &run.Error, &createdAt, &updatedAt)
	if err != nil {
		return Run{}, err
	}

	run.CreatedAt = time.Unix(createdAt, 0).UTC()
	run.UpdatedAt = time.Unix(updatedAt, 0).UTC()

	return run, nil
}

func initDatabase(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(1)

	_, err = db.Exec("PRAGMA busy_timeout = 5000")
	if err != nil {
		db.Close()
		return nil, err
	}

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

func createSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			url TEXT NOT NULL,
			status TEXT NOT NULL,
			count INTEGER NOT NULL DEFAULT 0,
			output_file TEXT NOT NULL DEFAULT '',
			error TEXT NOT NULL DEFAULT '',
			created_at INTEGER NOT NULL,
			updated_at INTEGER NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}
