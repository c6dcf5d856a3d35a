package solver

import (
	"context"
	"fmt"
	"time"

	"svw.info/sudoku-dlx/internal/domain"
	"svw.info/sudoku-dlx/internal/ports"
)

// BacktrackingSolver is a straightforward recursive solver, kept as a
// reference implementation to cross-check the DLX backend against.
type BacktrackingSolver struct{}

func NewBacktrackingSolver() *BacktrackingSolver { return &BacktrackingSolver{} }

func cellAllowed(b *[9][9]uint8, r, c int, v uint8) bool {
	for i := 0; i < 9; i++ {
		if b[r][i] == v || b[i][c] == v {
			return false
		}
	}
	br, bc := (r/3)*3, (c/3)*3
	for dr := 0; dr < 3; dr++ {
		for dc := 0; dc < 3; dc++ {
			if b[br+dr][bc+dc] == v {
				return false
			}
		}
	}
	return true
}

func firstEmpty(b *[9][9]uint8) (int, int, bool) {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if b[r][c] == 0 {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}

// solutions counts solutions of grid up to limit, mutating grid in place; it
// is back at its input state when the search returns.
func solutions(ctx context.Context, grid *[9][9]uint8, limit int, nodes *int, first *[9][9]uint8) int {
	count := 0
	var dfs func() bool
	dfs = func() bool {
		if ctx.Err() != nil {
			return true
		}
		r, c, ok := firstEmpty(grid)
		if !ok {
			if count == 0 && first != nil {
				*first = *grid
			}
			count++
			return count >= limit
		}
		for v := uint8(1); v <= 9; v++ {
			*nodes++
			if cellAllowed(grid, r, c, v) {
				grid[r][c] = v
				if dfs() {
					grid[r][c] = 0
					return true
				}
				grid[r][c] = 0
			}
		}
		return false
	}
	dfs()
	return count
}

func (s *BacktrackingSolver) Solve(ctx context.Context, b *domain.Board) (*domain.Board, ports.Stats, error) {
	start := time.Now()
	if err := CheckPuzzle(b); err != nil {
		return nil, ports.Stats{}, err
	}
	grid := b.Values
	nodes := 0
	var out [9][9]uint8
	found := solutions(ctx, &grid, 1, &nodes, &out)
	st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
	if found < 1 {
		if ctx.Err() != nil {
			return nil, st, ctx.Err()
		}
		return nil, st, fmt.Errorf("%w: search space exhausted", ErrNoSolution)
	}
	return &domain.Board{Values: out, Fixed: b.Fixed}, st, nil
}

// Unique counts solutions up to 2 and reports whether exactly one exists.
func (s *BacktrackingSolver) Unique(ctx context.Context, b *domain.Board) (bool, ports.Stats, error) {
	start := time.Now()
	if err := CheckPuzzle(b); err != nil {
		return false, ports.Stats{}, err
	}
	grid := b.Values
	nodes := 0
	found := solutions(ctx, &grid, 2, &nodes, nil)
	st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
	if ctx.Err() != nil {
		return false, st, ctx.Err()
	}
	return found == 1, st, nil
}
