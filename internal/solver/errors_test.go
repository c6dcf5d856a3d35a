package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/sudoku-dlx/internal/domain"
)

func TestCheckPuzzle(t *testing.T) {
	set := func(cells ...[3]uint8) *domain.Board {
		b := &domain.Board{}
		for _, x := range cells {
			b.Values[x[0]][x[1]] = x[2]
		}
		return b
	}

	t.Run("empty grid ok", func(t *testing.T) {
		assert.NoError(t, CheckPuzzle(&domain.Board{}))
	})
	t.Run("nil board", func(t *testing.T) {
		require.ErrorIs(t, CheckPuzzle(nil), ErrInvalidPuzzle)
	})
	t.Run("value out of range", func(t *testing.T) {
		require.ErrorIs(t, CheckPuzzle(set([3]uint8{4, 4, 10})), ErrInvalidPuzzle)
	})
	t.Run("duplicate in row", func(t *testing.T) {
		require.ErrorIs(t, CheckPuzzle(set([3]uint8{0, 0, 5}, [3]uint8{0, 8, 5})), ErrInvalidPuzzle)
	})
	t.Run("duplicate in column", func(t *testing.T) {
		require.ErrorIs(t, CheckPuzzle(set([3]uint8{0, 3, 7}, [3]uint8{8, 3, 7})), ErrInvalidPuzzle)
	})
	t.Run("duplicate in box", func(t *testing.T) {
		require.ErrorIs(t, CheckPuzzle(set([3]uint8{0, 0, 2}, [3]uint8{2, 2, 2})), ErrInvalidPuzzle)
	})
	t.Run("same digit in different units ok", func(t *testing.T) {
		assert.NoError(t, CheckPuzzle(set([3]uint8{0, 0, 9}, [3]uint8{4, 4, 9}, [3]uint8{8, 8, 9})))
	})
}
