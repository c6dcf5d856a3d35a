package solver

import (
	"context"
	"fmt"
	"time"

	"svw.info/sudoku-dlx/internal/dlx"
	"svw.info/sudoku-dlx/internal/domain"
	"svw.info/sudoku-dlx/internal/ports"
)

// DLXSolver solves boards with Algorithm X over the dancing-links matrix in
// internal/dlx. It is the default backend: the matrix is rebuilt per call, so
// independent solves may run concurrently.
type DLXSolver struct{}

func NewDLXSolver() *DLXSolver { return &DLXSolver{} }

// prime validates the board and returns a fresh matrix with its givens
// pre-covered.
func prime(b *domain.Board) (*dlx.Sudoku, error) {
	if err := CheckPuzzle(b); err != nil {
		return nil, err
	}
	s := dlx.NewSudoku()
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if v := b.Values[r][c]; v != 0 {
				s.PlaceGiven(r, c, int(v))
			}
		}
	}
	return s, nil
}

func (s *DLXSolver) Solve(ctx context.Context, b *domain.Board) (*domain.Board, ports.Stats, error) {
	start := time.Now()
	sud, err := prime(b)
	if err != nil {
		return nil, ports.Stats{}, err
	}
	var out domain.Board
	found, nodes := sud.Solve(ctx, 1, func(g *[9][9]uint8) {
		out.Values = *g
	})
	st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
	if found < 1 {
		if ctx.Err() != nil {
			return nil, st, ctx.Err()
		}
		return nil, st, fmt.Errorf("%w: search space exhausted", ErrNoSolution)
	}
	out.Fixed = b.Fixed
	return &out, st, nil
}

// Unique reports whether the board has exactly one solution. The search is
// capped at two solutions; it never enumerates further.
func (s *DLXSolver) Unique(ctx context.Context, b *domain.Board) (bool, ports.Stats, error) {
	start := time.Now()
	sud, err := prime(b)
	if err != nil {
		return false, ports.Stats{}, err
	}
	found, nodes := sud.Solve(ctx, 2, nil)
	st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
	if ctx.Err() != nil {
		return false, st, ctx.Err()
	}
	return found == 1, st, nil
}
