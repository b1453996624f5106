// internal/store/sqlite.go
//
// SQLite implementation of the Store interface.
// Responsibilities:
//   - Opening the database with safe defaults (WAL, busy timeout, foreign keys).
//   - Applying embedded migrations from assets/sql (idempotent, recorded in _migrations).
//   - Progress row and results history queries.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"

	"github.com/robalobadob/wordle/apps/wrdl/assets"
)

// SQLite is a Store backed by a single database file.
type SQLite struct {
	db  *sql.DB
	log zerolog.Logger
}

// Open opens (and creates if missing) the database at path and migrates it.
func Open(ctx context.Context, path string, logger zerolog.Logger) (*SQLite, error) {
	db, err := openDB(path)
	if err != nil {
		return nil, err
	}
	s := &SQLite{db: db, log: logger}
	if err := s.migrate(ctx, assets.Migrations()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

/**
 * openDB opens (and creates if missing) a SQLite database file.
 *
 * - Ensures parent directory exists.
 * - Configures busy timeout and WAL journaling mode.
 * - Enforces foreign keys.
 */
func openDB(dsn string) (*sql.DB, error) {
	dir := filepath.Dir(dsn)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", dsn+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	// Single writer.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(`PRAGMA foreign_keys = ON; PRAGMA journal_mode = WAL;`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set pragmas: %w", err)
	}
	return db, nil
}

/**
 * migrate applies SQL migrations from fsys.
 *
 * - Uses a _migrations table to track applied files.
 * - Executes each *.sql file in lexical order, each in its own transaction.
 * - Skips if already applied.
 */
func (s *SQLite) migrate(ctx context.Context, fsys fs.FS) error {
	if _, err := s.db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS _migrations (name TEXT PRIMARY KEY);`); err != nil {
		return fmt.Errorf("create _migrations: %w", err)
	}

	files, err := fs.Glob(fsys, "*.sql")
	if err != nil {
		return fmt.Errorf("list migrations: %w", err)
	}
	sort.Strings(files)

	for _, f := range files {
		var done int
		err := s.db.QueryRowContext(ctx, `SELECT 1 FROM _migrations WHERE name=?`, f).Scan(&done)
		if err == nil {
			s.log.Debug().Str("migration", f).Msg("already applied")
			continue
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("query _migrations: %w", err)
		}

		sqlBytes, err := fs.ReadFile(fsys, f)
		if err != nil {
			return fmt.Errorf("read %s: %w", f, err)
		}

		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, string(sqlBytes)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply %s: %w", f, err)
		}
		if _, err := tx.ExecContext(ctx, `INSERT INTO _migrations(name) VALUES (?)`, f); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record %s: %w", f, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit %s: %w", f, err)
		}
		s.log.Info().Str("migration", f).Msg("applied")
	}
	return nil
}

// ----------------------------- progress ------------------------------------

func (s *SQLite) LoadProgress(ctx context.Context) (Progress, error) {
	var p Progress
	err := s.db.QueryRowContext(ctx,
		`SELECT word_index, words_path, allowed_path FROM progress WHERE id=1`,
	).Scan(&p.Index, &p.WordsPath, &p.AllowedPath)
	if errors.Is(err, sql.ErrNoRows) {
		return Progress{}, nil
	}
	if err != nil {
		return Progress{}, fmt.Errorf("load progress: %w", err)
	}
	return p, nil
}

func (s *SQLite) SaveProgress(ctx context.Context, p Progress) error {
	_, err := s.db.ExecContext(ctx, `
        INSERT INTO progress (id, word_index, words_path, allowed_path, updated_at)
        VALUES (1, ?, ?, ?, ?)
        ON CONFLICT(id) DO UPDATE SET
            word_index=excluded.word_index,
            words_path=excluded.words_path,
            allowed_path=excluded.allowed_path,
            updated_at=excluded.updated_at`,
		p.Index, p.WordsPath, p.AllowedPath, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}

// ----------------------------- results -------------------------------------

// tsLayout keeps a fixed-width fraction so played_at sorts lexically.
const tsLayout = "2006-01-02T15:04:05.000000000Z07:00"

const resultColumns = `id, word_index, word, attempts, won, daily, date, grid, elapsed_ms, played_at`

func (s *SQLite) RecordResult(ctx context.Context, r *Result) error {
	if r.PlayedAt.IsZero() {
		r.PlayedAt = time.Now().UTC()
	}
	res, err := s.db.ExecContext(ctx, `
        INSERT INTO results
            (word_index, word, attempts, won, daily, date, grid, elapsed_ms, played_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.Index, r.Word, r.Attempts, r.Won, r.Daily, r.Date, r.Grid, r.ElapsedMs,
		r.PlayedAt.UTC().Format(tsLayout),
	)
	if err != nil {
		return fmt.Errorf("record result: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("record result: %w", err)
	}
	r.ID = id
	return nil
}

func (s *SQLite) Results(ctx context.Context, limit int) ([]Result, error) {
	q := `SELECT ` + resultColumns + ` FROM results ORDER BY played_at DESC, id DESC`
	args := []any{}
	if limit > 0 {
		q += ` LIMIT ?`
		args = append(args, limit)
	}
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query results: %w", err)
	}
	defer rows.Close()

	out := []Result{}
	for rows.Next() {
		r, err := scanResult(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *SQLite) Result(ctx context.Context, id int64) (Result, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+resultColumns+` FROM results WHERE id=?`, id)
	r, err := scanResult(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Result{}, ErrNotFound
	}
	return r, err
}

func (s *SQLite) PlayedDaily(ctx context.Context, date string) (bool, error) {
	var cnt int
	if err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM results WHERE daily=1 AND date=?`, date,
	).Scan(&cnt); err != nil {
		return false, fmt.Errorf("query daily: %w", err)
	}
	return cnt > 0, nil
}

func (s *SQLite) Close() error { return s.db.Close() }

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanResult(sc scanner) (Result, error) {
	var (
		r        Result
		playedAt string
	)
	if err := sc.Scan(&r.ID, &r.Index, &r.Word, &r.Attempts, &r.Won, &r.Daily,
		&r.Date, &r.Grid, &r.ElapsedMs, &playedAt); err != nil {
		return Result{}, err
	}
	r.PlayedAt = mustParse(playedAt)
	return r, nil
}

// mustParse parses RFC3339 timestamps; on error returns zero time.
func mustParse(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}
	}
	return t
}
