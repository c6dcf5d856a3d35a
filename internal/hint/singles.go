// Package hint finds the next logical step a human could take, capped
// at a strategy tier so the UI can grade how much help it gives away.
package hint

import (
	"context"
	"fmt"
	"math/bits"

	"svw.info/sudoku-dlx/internal/domain"
)

const allDigits = 0b1111111110 // bits 1..9

// Singles suggests naked and hidden singles.
type Singles struct{}

func NewSingles() *Singles { return &Singles{} }

// Hint scans for a naked single first, then a hidden single in a row.
// It returns false when neither exists or max forbids the singles tier.
func (h *Singles) Hint(ctx context.Context, b *domain.Board, max domain.StrategyTier) (domain.Hint, bool, error) {
	if max < domain.StrategySingles {
		return domain.Hint{}, false, nil
	}

	cand := candidates(b)

	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			m := cand[r][c]
			if m != 0 && bits.OnesCount16(m) == 1 {
				return single(r, c, digitOf(m), "only %d fits in this cell"), true, nil
			}
		}
	}

	// A hidden single: the digit has exactly one home left in its row.
	for r := 0; r < 9; r++ {
		for v := uint8(1); v <= 9; v++ {
			bit := uint16(1) << v
			home, n := 0, 0
			for c := 0; c < 9; c++ {
				if cand[r][c]&bit != 0 {
					home = c
					n++
				}
			}
			if n == 1 {
				return single(r, home, v, "this row has one place left for %d"), true, nil
			}
		}
	}

	return domain.Hint{}, false, nil
}

func single(r, c int, v uint8, format string) domain.Hint {
	return domain.Hint{
		Message:  fmt.Sprintf("Single: "+format, v),
		Cells:    []domain.CellCoord{{Row: r, Col: c}},
		Strategy: domain.StrategySingles,
	}
}

// candidates computes the legal digits for every empty cell as a
// bitmask; filled cells get 0.
func candidates(b *domain.Board) [9][9]uint16 {
	var rows, cols, boxes [9]uint16
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if v := b.Values[r][c]; v != 0 {
				bit := uint16(1) << v
				rows[r] |= bit
				cols[c] |= bit
				boxes[(r/3)*3+c/3] |= bit
			}
		}
	}
	var out [9][9]uint16
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if b.Values[r][c] == 0 {
				out[r][c] = allDigits &^ (rows[r] | cols[c] | boxes[(r/3)*3+c/3])
			}
		}
	}
	return out
}

func digitOf(m uint16) uint8 { return uint8(bits.TrailingZeros16(m)) }
