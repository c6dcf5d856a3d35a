package dlx

import "context"

// Exact-cover encoding of 9x9 Sudoku: 324 constraint columns, 729 candidate
// rows, 4 cells per row.
// Columns: 0..80   -> cell (r,c) is occupied
//          81..161 -> row r contains digit v
//          162..242-> col c contains digit v
//          243..323-> box b contains digit v, b = (r/3)*3 + (c/3)
const (
	Size       = 9
	Cells      = Size * Size  // 81
	Columns    = 4 * Cells    // 324
	Candidates = Cells * Size // 729, one per (r,c,v)
	rowCells   = 4            // constraint columns touched per candidate

	colCell = 0
	colRow  = 81
	colCol  = 162
	colBox  = 243
)

// CandidateIndex maps placement (r,c,v) to its row identifier, r and c in
// [0,9), v in [1,9].
func CandidateIndex(r, c, v int) int {
	return (r*Size+c)*Size + v - 1
}

// Candidate decodes a row identifier back to its placement.
func Candidate(idx int) (r, c, v int) {
	r = idx / Cells
	c = (idx / Size) % Size
	v = idx%Size + 1
	return
}

// candidateColumns returns the 4 constraint columns placement (r,c,v)
// satisfies, one per constraint family.
func candidateColumns(r, c, v int) [rowCells]int {
	box := (r/3)*3 + c/3
	return [rowCells]int{
		colCell + r*Size + c,
		colRow + r*Size + v - 1,
		colCol + c*Size + v - 1,
		colBox + box*Size + v - 1,
	}
}

// Sudoku is a dancing-links matrix primed with the full 729-candidate Sudoku
// encoding, ready to have givens applied and be searched. One value per
// puzzle; no state survives between solves.
type Sudoku struct {
	m      *Matrix
	trace  [Cells]int32
	givens int
}

// NewSudoku builds the matrix: all columns first, then every candidate row in
// increasing index order, so row identifiers coincide with candidate indices.
func NewSudoku() *Sudoku {
	s := &Sudoku{m: NewMatrix(Columns, Candidates*rowCells)}
	for i := 0; i < Candidates; i++ {
		r, c, v := Candidate(i)
		cols := candidateColumns(r, c, v)
		s.m.AddRow(cols[0], cols[1], cols[2], cols[3])
	}
	return s
}

// Matrix exposes the underlying link matrix.
func (s *Sudoku) Matrix() *Matrix { return s.m }

// PlaceGiven applies clue v at (r,c) as if the search had selected that
// candidate first: its 4 columns are covered and the candidate recorded in
// the solution trace. The search then starts below the givens and only fills
// the remaining cells.
//
// The caller must have validated the clue set: a value outside [1,9] or a
// clue conflicting with an earlier one covers a column twice and corrupts
// the matrix.
func (s *Sudoku) PlaceGiven(r, c, v int) {
	row := CandidateIndex(r, c, v)
	for _, col := range candidateColumns(r, c, v) {
		s.m.Cover(int32(col))
	}
	s.trace[s.givens] = int32(row)
	s.givens++
}

// Solve searches for up to limit solutions and invokes emit with each
// completed grid, givens included. Returns the number of solutions found and
// the number of row choices tried.
func (s *Sudoku) Solve(ctx context.Context, limit int, emit func(grid *[Size][Size]uint8)) (int, int) {
	return s.m.Search(ctx, s.trace[:], s.givens, limit, func(trace []int32) {
		if emit == nil {
			return
		}
		var g [Size][Size]uint8
		for _, id := range trace {
			r, c, v := Candidate(int(id))
			g[r][c] = uint8(v)
		}
		emit(&g)
	})
}
