package hint

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/sudoku-dlx/internal/domain"
)

func TestHintNakedSingle(t *testing.T) {
	b := &domain.Board{}
	for c := 0; c < 8; c++ {
		b.Values[0][c] = uint8(c + 1) // row 0 holds 1..8, so only 9 fits at (0,8)
	}

	h, found, err := NewSingles().Hint(context.Background(), b, domain.StrategySingles)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []domain.CellCoord{{Row: 0, Col: 8}}, h.Cells)
	assert.Equal(t, domain.StrategySingles, h.Strategy)
	assert.True(t, strings.Contains(h.Message, "9"), "message should name the digit: %q", h.Message)
}

func TestHintHiddenSingle(t *testing.T) {
	// Eight 5s placed in distinct rows, columns, and boxes leave column 0
	// as the only home for 5 in row 0, while (0,0) itself still has many
	// candidates. No naked single exists on this board.
	b := &domain.Board{}
	for _, p := range [][2]int{{1, 3}, {2, 6}, {3, 1}, {4, 4}, {5, 7}, {6, 2}, {7, 5}, {8, 8}} {
		b.Values[p[0]][p[1]] = 5
	}

	h, found, err := NewSingles().Hint(context.Background(), b, domain.StrategySingles)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []domain.CellCoord{{Row: 0, Col: 0}}, h.Cells)
	assert.True(t, strings.Contains(h.Message, "5"), "message should name the digit: %q", h.Message)
}

func TestHintNoneOnEmptyBoard(t *testing.T) {
	_, found, err := NewSingles().Hint(context.Background(), &domain.Board{}, domain.StrategyXWing)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestCandidatesRespectAllUnits(t *testing.T) {
	b := &domain.Board{}
	b.Values[0][0] = 1 // row peer
	b.Values[8][4] = 2 // column peer
	b.Values[1][3] = 3 // box peer of (0,4)

	m := candidates(b)[0][4]
	for _, v := range []uint8{1, 2, 3} {
		assert.Zero(t, m&(1<<v), "digit %d should be excluded", v)
	}
	assert.NotZero(t, m&(1<<4))
}
