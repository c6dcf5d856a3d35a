// Package ports declares the interfaces the use-case layer is wired
// against. Concrete implementations live in solver, generator,
// validator, hint, and infrastructure/storage.
package ports

import (
	"context"
	"time"

	"svw.info/sudoku-dlx/internal/domain"
)

// Stats reports the cost of a solve or generate call. Nodes counts
// search-tree nodes visited; backends without a node notion leave it 0.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Solver finds a completion of a board. Solve returns the first
// solution found; Unique reports whether exactly one exists. Both
// reject boards that break a row, column, or box constraint up front.
type Solver interface {
	Solve(ctx context.Context, b *domain.Board) (*domain.Board, Stats, error)
	Unique(ctx context.Context, b *domain.Board) (bool, Stats, error)
}

// Generator produces a puzzle with a unique solution at the requested
// difficulty. The same seed yields the same puzzle.
type Generator interface {
	Generate(ctx context.Context, seed int64, difficulty domain.Difficulty) (*domain.Puzzle, Stats, error)
}

// Validator checks constraints without searching.
type Validator interface {
	Validate(ctx context.Context, b *domain.Board) (ok bool, conflicts []domain.CellCoord, err error)
}

// Hinter suggests the next logical step, using techniques up to max.
// The bool is false when no hint at or below that tier applies.
type Hinter interface {
	Hint(ctx context.Context, b *domain.Board, max domain.StrategyTier) (domain.Hint, bool, error)
}

// Storage persists puzzles. Load returns an error satisfying
// errors.Is(err, os.ErrNotExist) for unknown IDs.
type Storage interface {
	Save(ctx context.Context, p *domain.Puzzle) error
	Load(ctx context.Context, id string) (*domain.Puzzle, error)
	List(ctx context.Context) ([]domain.PuzzleMeta, error)
}
