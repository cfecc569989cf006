// Package store persists generated questions for the review workflow.
// The generation core never reads from it.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/andyxwarren/factory-architect-sub002/internal/question"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Status is the review state of a stored question.
type Status string

const (
	StatusDraft    Status = "draft"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Valid reports whether s is a known review status.
func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// ErrNotFound reports a question id with no stored row.
var ErrNotFound = errors.New("question not found")

// StoredQuestion is one persisted question with its review state.
type StoredQuestion struct {
	ID        string               `json:"id"`
	Status    Status               `json:"status"`
	Question  *question.Definition `json:"question"`
	CreatedAt time.Time            `json:"created_at"`
	UpdatedAt time.Time            `json:"updated_at"`
}

// Store wraps the SQLite database holding saved questions.
type Store struct {
	db *sql.DB
}

// Open connects to the SQLite database at dsn, applies recommended
// pragmas and creates the schema if missing.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}
	if err := migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save persists a question as a draft and returns the stored record.
// The question's own id is used when present; otherwise one is minted.
// Re-saving an existing id replaces its content and moves it back to
// draft, since changed content needs a fresh review.
func (s *Store) Save(ctx context.Context, def *question.Definition) (*StoredQuestion, error) {
	if def == nil {
		return nil, errors.New("nil question")
	}
	id := def.ID
	if id == "" {
		id = uuid.NewString()
	}
	payload, err := json.Marshal(def)
	if err != nil {
		return nil, fmt.Errorf("marshal question: %w", err)
	}
	now := time.Now().UTC()
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO questions (id, status, model_id, difficulty_level, format, payload, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			status = excluded.status,
			payload = excluded.payload,
			updated_at = excluded.updated_at`,
		id, StatusDraft, def.ModelID, def.LevelLabel, string(def.Format), string(payload), now.Unix(), now.Unix())
	if err != nil {
		return nil, fmt.Errorf("insert question: %w", err)
	}
	return s.Get(ctx, id)
}

// SetStatus moves a question to a new review state.
func (s *Store) SetStatus(ctx context.Context, id string, status Status) error {
	if !status.Valid() {
		return fmt.Errorf("invalid status %q", status)
	}
	res, err := s.db.ExecContext(ctx,
		`UPDATE questions SET status = ?, updated_at = ? WHERE id = ?`,
		status, time.Now().UTC().Unix(), id)
	if err != nil {
		return fmt.Errorf("update status: %w", err)
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

// Get loads one stored question by id.
func (s *Store) Get(ctx context.Context, id string) (*StoredQuestion, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, status, payload, created_at, updated_at
		FROM questions WHERE id = ?`, id)
	return scanQuestion(row)
}

// List returns stored questions, newest first, optionally filtered by
// status. An empty status returns everything.
func (s *Store) List(ctx context.Context, status Status) ([]*StoredQuestion, error) {
	query := `SELECT id, status, payload, created_at, updated_at FROM questions`
	args := []any{}
	if status != "" {
		if !status.Valid() {
			return nil, fmt.Errorf("invalid status %q", status)
		}
		query += ` WHERE status = ?`
		args = append(args, status)
	}
	query += ` ORDER BY created_at DESC, id`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	defer rows.Close()

	var out []*StoredQuestion
	for rows.Next() {
		q, err := scanQuestion(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanQuestion(row scanner) (*StoredQuestion, error) {
	var (
		q       StoredQuestion
		payload string
		created int64
		updated int64
	)
	if err := row.Scan(&q.ID, &q.Status, &payload, &created, &updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := json.Unmarshal([]byte(payload), &q.Question); err != nil {
		return nil, fmt.Errorf("unmarshal question %s: %w", q.ID, err)
	}
	q.CreatedAt = time.Unix(created, 0).UTC()
	q.UpdatedAt = time.Unix(updated, 0).UTC()
	return &q, nil
}

// applyPragmas configures SQLite for single-writer server use.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

func migrate(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS questions (
			id               TEXT PRIMARY KEY,
			status           TEXT NOT NULL DEFAULT 'draft',
			model_id         TEXT NOT NULL,
			difficulty_level TEXT NOT NULL,
			format           TEXT NOT NULL,
			payload          TEXT NOT NULL,
			created_at       INTEGER NOT NULL,
			updated_at       INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_questions_status ON questions (status);`)
	return err
}

// DefaultDBPath resolves the database file path in priority order:
// 1. FACTORY_DB environment variable
// 2. $XDG_DATA_HOME/factory-architect/questions.db
// 3. ~/.local/share/factory-architect/questions.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("FACTORY_DB"); p != "" {
		return p, ensureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "factory-architect", "questions.db")
	return p, ensureDir(p)
}

// ensureDir creates the parent directory of path if it doesn't exist.
func ensureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
