package dlx

import "context"

// search holds the per-run state of Algorithm X. One value per Search call;
// the matrix itself carries no search state, so a Matrix can be reused for
// another run once Search returns.
type search struct {
	m     *Matrix
	trace []int32 // row chosen at each depth; overwritten on backtrack
	limit int     // stop after this many solutions
	found int
	nodes int
	emit  func(trace []int32)
}

// Search runs Algorithm X from depth over the matrix's current state.
// trace must have capacity for the deepest possible selection and already
// hold, in trace[:depth], the identifiers of any rows applied before the
// search (pre-covered givens). emit, if non-nil, receives the full trace for
// each complete solution; the slice is only valid during the call.
//
// Search returns once limit solutions have been found, the space is
// exhausted, or ctx is cancelled. The matrix is restored to its pre-call
// state in all three cases. Returns the number of solutions found and the
// number of row choices tried.
func (m *Matrix) Search(ctx context.Context, trace []int32, depth, limit int, emit func([]int32)) (int, int) {
	s := &search{m: m, trace: trace, limit: limit, emit: emit}
	s.run(ctx, depth)
	return s.found, s.nodes
}

// run tries to complete the selection at depth k. It returns true when the
// search should stop unwinding (limit reached or ctx cancelled); the matrix
// is uncovered on the way out either way.
func (s *search) run(ctx context.Context, k int) bool {
	select {
	case <-ctx.Done():
		return true
	default:
	}

	m := s.m
	if m.right[m.root] == m.root {
		// every constraint covered exactly once
		s.found++
		if s.emit != nil {
			s.emit(s.trace[:k])
		}
		return s.found >= s.limit
	}

	// choose the column with the fewest live cells to limit branching
	c := m.right[m.root]
	for cand := m.right[c]; cand != m.root; cand = m.right[cand] {
		if m.count[cand] < m.count[c] {
			c = cand
		}
	}

	m.Cover(c)
	for r := m.down[c]; r != c; r = m.down[r] {
		s.nodes++
		s.trace[k] = m.rowID[r]
		for j := m.right[r]; j != r; j = m.right[j] {
			m.Cover(m.col[j])
		}
		stop := s.run(ctx, k+1)
		for j := m.left[r]; j != r; j = m.left[j] {
			m.Uncover(m.col[j])
		}
		if stop {
			m.Uncover(c)
			return true
		}
	}
	// a zero-count column lands here directly: the loop body never runs
	m.Uncover(c)
	return false
}
