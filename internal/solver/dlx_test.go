package solver

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/sudoku-dlx/internal/domain"
	"svw.info/sudoku-dlx/internal/ports"
	"svw.info/sudoku-dlx/internal/validator"
)

// A classic, solvable Sudoku (0 = empty).
var sample = [9][9]uint8{
	{5, 3, 0, 0, 7, 0, 0, 0, 0},
	{6, 0, 0, 1, 9, 5, 0, 0, 0},
	{0, 9, 8, 0, 0, 0, 0, 6, 0},
	{8, 0, 0, 0, 6, 0, 0, 0, 3},
	{4, 0, 0, 8, 0, 3, 0, 0, 1},
	{7, 0, 0, 0, 2, 0, 0, 0, 6},
	{0, 6, 0, 0, 0, 0, 2, 8, 0},
	{0, 0, 0, 4, 1, 9, 0, 0, 5},
	{0, 0, 0, 0, 8, 0, 0, 7, 9},
}

// The 19/02/2022 NYTimes hard puzzle, fixed regression input.
var nytHard = [9][9]uint8{
	{0, 7, 0, 4, 8, 0, 1, 3, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 5, 6, 0, 0, 8, 0},
	{0, 6, 0, 0, 0, 8, 0, 7, 0},
	{0, 4, 1, 0, 0, 6, 0, 0, 0},
	{0, 0, 8, 0, 0, 0, 0, 1, 0},
	{0, 9, 0, 3, 0, 0, 2, 0, 8},
	{0, 0, 5, 0, 0, 2, 0, 0, 0},
	{4, 0, 0, 0, 7, 0, 5, 0, 0},
}

// unsatisfiable but conflict-free: the clues eliminate all nine digits
// for cell (0,0)
func deadCellGrid() [9][9]uint8 {
	var g [9][9]uint8
	g[0][1], g[0][2], g[0][3], g[0][4] = 1, 2, 3, 4
	g[1][0], g[2][0] = 5, 6
	g[3][0], g[4][0], g[5][0] = 7, 8, 9
	return g
}

func checkSolution(t *testing.T, in, out *domain.Board) {
	t.Helper()
	ok, conflicts, err := validator.New().Validate(context.Background(), out)
	require.NoError(t, err)
	require.True(t, ok, "conflicts: %v", conflicts)
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			require.NotZero(t, out.Values[r][c], "unsolved cell (%d,%d)", r, c)
			if in.Values[r][c] != 0 {
				require.Equal(t, in.Values[r][c], out.Values[r][c], "clue (%d,%d) changed", r, c)
			}
		}
	}
}

func TestDLXSolveSample(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	in := &domain.Board{Values: sample}
	out, st, err := NewDLXSolver().Solve(ctx, in)
	require.NoError(t, err)
	checkSolution(t, in, out)
	assert.Greater(t, st.Nodes, 0)
	t.Logf("solved in %v, nodes=%d", st.Duration, st.Nodes)
}

func TestDLXSolveRegression(t *testing.T) {
	in := &domain.Board{Values: nytHard}
	out, _, err := NewDLXSolver().Solve(context.Background(), in)
	require.NoError(t, err)
	checkSolution(t, in, out)

	unique, _, err := NewDLXSolver().Unique(context.Background(), in)
	require.NoError(t, err)
	assert.True(t, unique)
}

func TestDLXNoSolution(t *testing.T) {
	in := &domain.Board{Values: deadCellGrid()}
	_, _, err := NewDLXSolver().Solve(context.Background(), in)
	require.ErrorIs(t, err, ErrNoSolution)
}

func TestDLXRejectsConflictingClues(t *testing.T) {
	var g [9][9]uint8
	g[0][0], g[0][1] = 5, 5
	_, _, err := NewDLXSolver().Solve(context.Background(), &domain.Board{Values: g})
	require.ErrorIs(t, err, ErrInvalidPuzzle)

	_, _, err = NewDLXSolver().Unique(context.Background(), &domain.Board{Values: g})
	require.ErrorIs(t, err, ErrInvalidPuzzle)
}

func TestDLXEmptyGridNotUnique(t *testing.T) {
	unique, _, err := NewDLXSolver().Unique(context.Background(), &domain.Board{})
	require.NoError(t, err)
	assert.False(t, unique)
}

func TestDLXCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := NewDLXSolver().Solve(ctx, &domain.Board{Values: sample})
	require.ErrorIs(t, err, context.Canceled)
}

// All three backends must agree on solvable grids and preserve givens.
func TestBackendAgreement(t *testing.T) {
	backends := map[string]ports.Solver{
		"dlx":       NewDLXSolver(),
		"backtrack": NewBacktrackingSolver(),
		"sat":       NewSATSolver(),
	}
	grids := map[string][9][9]uint8{
		"sample": sample,
		"nyt":    nytHard,
	}
	for gname, grid := range grids {
		in := &domain.Board{Values: grid}
		for bname, s := range backends {
			t.Run(gname+"/"+bname, func(t *testing.T) {
				out, _, err := s.Solve(context.Background(), in)
				require.NoError(t, err)
				checkSolution(t, in, out)

				unique, _, err := s.Unique(context.Background(), in)
				require.NoError(t, err)
				assert.True(t, unique)
			})
		}
	}
}

func TestBackendsAgreeOnUnsatisfiable(t *testing.T) {
	in := &domain.Board{Values: deadCellGrid()}
	for bname, s := range map[string]ports.Solver{
		"dlx":       NewDLXSolver(),
		"backtrack": NewBacktrackingSolver(),
		"sat":       NewSATSolver(),
	} {
		t.Run(bname, func(t *testing.T) {
			_, _, err := s.Solve(context.Background(), in)
			require.ErrorIs(t, err, ErrNoSolution)
		})
	}
}
