package solver

import (
	"errors"
	"fmt"

	"svw.info/sudoku-dlx/internal/domain"
)

var (
	// ErrInvalidPuzzle marks input the solvers refuse to run on: values
	// outside [0,9] or duplicate givens within a row, column, or box.
	ErrInvalidPuzzle = errors.New("invalid puzzle")

	// ErrNoSolution is returned when the search space is exhausted.
	ErrNoSolution = errors.New("no solution")
)

// CheckPuzzle validates a board before any solver touches it. Malformed input
// must never reach the search: a duplicate given would cover an exact-cover
// column twice and corrupt the link matrix.
func CheckPuzzle(b *domain.Board) error {
	if b == nil {
		return fmt.Errorf("%w: nil board", ErrInvalidPuzzle)
	}
	var rows, cols, boxes [9]int
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			v := b.Values[r][c]
			if v > 9 {
				return fmt.Errorf("%w: value %d at (%d,%d) out of range", ErrInvalidPuzzle, v, r, c)
			}
			if v == 0 {
				continue
			}
			bit := 1 << v
			box := (r/3)*3 + c/3
			if rows[r]&bit != 0 {
				return fmt.Errorf("%w: digit %d repeated in row %d", ErrInvalidPuzzle, v, r)
			}
			if cols[c]&bit != 0 {
				return fmt.Errorf("%w: digit %d repeated in column %d", ErrInvalidPuzzle, v, c)
			}
			if boxes[box]&bit != 0 {
				return fmt.Errorf("%w: digit %d repeated in box %d", ErrInvalidPuzzle, v, box)
			}
			rows[r] |= bit
			cols[c] |= bit
			boxes[box] |= bit
		}
	}
	return nil
}
