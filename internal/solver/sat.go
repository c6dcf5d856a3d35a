package solver

import (
	"context"
	"fmt"
	"time"

	"github.com/go-air/gini"
	"github.com/go-air/gini/z"

	"svw.info/sudoku-dlx/internal/domain"
	"svw.info/sudoku-dlx/internal/ports"
)

// SATSolver encodes the board as CNF and hands it to the gini SAT solver.
// One variable per (row, col, digit); each cell must take at least one digit,
// and within every row, column, and box a digit appears at most once. Givens
// become unit clauses.
type SATSolver struct{}

func NewSATSolver() *SATSolver { return &SATSolver{} }

// satLit is the variable for digit v (1..9) at (r,c).
func satLit(r, c, v int) z.Lit {
	return z.Var(r*81 + c*9 + v).Pos()
}

// atMostOne adds pairwise exclusion clauses over ms.
func atMostOne(g *gini.Gini, ms []z.Lit) {
	for i := 0; i < len(ms); i++ {
		for j := i + 1; j < len(ms); j++ {
			g.Add(ms[i].Not())
			g.Add(ms[j].Not())
			g.Add(0)
		}
	}
}

func encode(b *domain.Board) *gini.Gini {
	g := gini.New()

	// every cell holds at least one digit
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			for v := 1; v <= 9; v++ {
				g.Add(satLit(r, c, v))
			}
			g.Add(0)
		}
	}

	// each digit at most once per row, column, and box; together with the
	// at-least-one clauses this pins every cell to exactly one digit
	var unit [9]z.Lit
	for v := 1; v <= 9; v++ {
		for i := 0; i < 9; i++ {
			for j := 0; j < 9; j++ {
				unit[j] = satLit(i, j, v)
			}
			atMostOne(g, unit[:])
			for j := 0; j < 9; j++ {
				unit[j] = satLit(j, i, v)
			}
			atMostOne(g, unit[:])
			for j := 0; j < 9; j++ {
				unit[j] = satLit((i/3)*3+j/3, (i%3)*3+j%3, v)
			}
			atMostOne(g, unit[:])
		}
	}

	// givens as unit clauses
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if v := b.Values[r][c]; v != 0 {
				g.Add(satLit(r, c, int(v)))
				g.Add(0)
			}
		}
	}
	return g
}

// model reads the satisfying assignment back into a grid.
func model(g *gini.Gini) [9][9]uint8 {
	var out [9][9]uint8
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			for v := 1; v <= 9; v++ {
				if g.Value(satLit(r, c, v)) {
					out[r][c] = uint8(v)
					break
				}
			}
		}
	}
	return out
}

func (s *SATSolver) Solve(ctx context.Context, b *domain.Board) (*domain.Board, ports.Stats, error) {
	start := time.Now()
	if err := CheckPuzzle(b); err != nil {
		return nil, ports.Stats{}, err
	}
	if err := ctx.Err(); err != nil {
		return nil, ports.Stats{}, err
	}
	g := encode(b)
	st := ports.Stats{}
	if g.Solve() != 1 {
		st.Duration = time.Since(start)
		return nil, st, fmt.Errorf("%w: formula unsatisfiable", ErrNoSolution)
	}
	out := &domain.Board{Values: model(g), Fixed: b.Fixed}
	st.Duration = time.Since(start)
	return out, st, nil
}

// Unique solves, blocks the first model with a clause negating its 81 cell
// assignments, and reports whether the blocked formula is unsatisfiable.
func (s *SATSolver) Unique(ctx context.Context, b *domain.Board) (bool, ports.Stats, error) {
	start := time.Now()
	if err := CheckPuzzle(b); err != nil {
		return false, ports.Stats{}, err
	}
	if err := ctx.Err(); err != nil {
		return false, ports.Stats{}, err
	}
	g := encode(b)
	if g.Solve() != 1 {
		return false, ports.Stats{Duration: time.Since(start)}, nil
	}
	first := model(g)
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			g.Add(satLit(r, c, int(first[r][c])).Not())
		}
	}
	g.Add(0)
	unique := g.Solve() != 1
	return unique, ports.Stats{Duration: time.Since(start)}, nil
}
