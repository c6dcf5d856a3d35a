package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	_ "modernc.org/sqlite"

	"svw.info/sudoku-dlx/internal/domain"
)

const schema = `
CREATE TABLE IF NOT EXISTS puzzles (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL DEFAULT '',
	notes      TEXT NOT NULL DEFAULT '',
	difficulty INTEGER NOT NULL,
	seed       INTEGER NOT NULL,
	created_at INTEGER NOT NULL,
	board      TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS puzzles_created_at ON puzzles (created_at);
`

// SQLite stores puzzles in a single database file (or ":memory:").
// The board is kept as the same JSON document the FS store writes, so the
// two backends stay interchangeable.
type SQLite struct{ db *sql.DB }

func NewSQLite(dsn string) (*SQLite, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &SQLite{db: db}, nil
}

func (s *SQLite) Close() error { return s.db.Close() }

func (s *SQLite) Save(ctx context.Context, p *domain.Puzzle) error {
	if p == nil || p.ID == "" {
		return errors.New("invalid puzzle: missing ID")
	}
	board, err := json.Marshal(p.Board)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO puzzles (id, name, notes, difficulty, seed, created_at, board)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			name = excluded.name,
			notes = excluded.notes,
			difficulty = excluded.difficulty,
			seed = excluded.seed,
			created_at = excluded.created_at,
			board = excluded.board`,
		p.ID, p.Name, p.Notes, int(p.Difficulty), p.Seed, p.CreatedAt, string(board))
	return err
}

func (s *SQLite) Load(ctx context.Context, id string) (*domain.Puzzle, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, notes, difficulty, seed, created_at, board
		FROM puzzles WHERE id = ?`, id)

	var p domain.Puzzle
	var diff int
	var board string
	err := row.Scan(&p.ID, &p.Name, &p.Notes, &diff, &p.Seed, &p.CreatedAt, &board)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, os.ErrNotExist
	}
	if err != nil {
		return nil, err
	}
	p.Difficulty = domain.Difficulty(diff)
	if err := json.Unmarshal([]byte(board), &p.Board); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *SQLite) List(ctx context.Context) ([]domain.PuzzleMeta, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, difficulty, created_at
		FROM puzzles ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.PuzzleMeta
	for rows.Next() {
		var m domain.PuzzleMeta
		var diff int
		if err := rows.Scan(&m.ID, &m.Name, &diff, &m.CreatedAt); err != nil {
			return nil, err
		}
		m.Difficulty = domain.Difficulty(diff)
		out = append(out, m)
	}
	return out, rows.Err()
}
