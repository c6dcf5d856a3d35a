// Package validator checks boards against the row, column, and box
// constraints without searching. It is the cheap pre-flight used by the
// HTTP validate endpoint and the CLI validate command.
package validator

import (
	"context"

	"svw.info/sudoku-dlx/internal/domain"
)

// FastValidator flags duplicate digits in a single pass over the grid.
type FastValidator struct{}

func New() *FastValidator { return &FastValidator{} }

// Validate reports whether the board is conflict-free. For each cell
// whose digit already appears earlier in its row, column, or box, the
// cell is listed once in conflicts.
func (v *FastValidator) Validate(ctx context.Context, b *domain.Board) (bool, []domain.CellCoord, error) {
	var rows, cols, boxes [9]uint16
	var conflicts []domain.CellCoord

	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			val := b.Values[r][c]
			if val == 0 {
				continue
			}
			box := (r/3)*3 + c/3
			bit := uint16(1) << val
			if rows[r]&bit != 0 || cols[c]&bit != 0 || boxes[box]&bit != 0 {
				conflicts = append(conflicts, domain.CellCoord{Row: r, Col: c})
			}
			rows[r] |= bit
			cols[c] |= bit
			boxes[box] |= bit
		}
	}
	return len(conflicts) == 0, conflicts, nil
}
