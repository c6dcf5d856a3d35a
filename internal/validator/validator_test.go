package validator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/sudoku-dlx/internal/domain"
)

func TestValidateEmptyBoard(t *testing.T) {
	ok, conflicts, err := New().Validate(context.Background(), &domain.Board{})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, conflicts)
}

func TestValidateRowConflict(t *testing.T) {
	b := &domain.Board{}
	b.Values[2][0] = 7
	b.Values[2][8] = 7

	ok, conflicts, err := New().Validate(context.Background(), b)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, []domain.CellCoord{{Row: 2, Col: 8}}, conflicts)
}

func TestValidateColumnConflict(t *testing.T) {
	b := &domain.Board{}
	b.Values[0][4] = 3
	b.Values[8][4] = 3

	ok, conflicts, err := New().Validate(context.Background(), b)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, []domain.CellCoord{{Row: 8, Col: 4}}, conflicts)
}

func TestValidateBoxConflict(t *testing.T) {
	b := &domain.Board{}
	b.Values[3][3] = 1
	b.Values[5][5] = 1

	ok, conflicts, err := New().Validate(context.Background(), b)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, []domain.CellCoord{{Row: 5, Col: 5}}, conflicts)
}

func TestValidateReportsCellOnce(t *testing.T) {
	// (1,0) clashes with (0,0) by both column and box but is listed once.
	b := &domain.Board{}
	b.Values[0][0] = 9
	b.Values[1][0] = 9

	ok, conflicts, err := New().Validate(context.Background(), b)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Len(t, conflicts, 1)
}
