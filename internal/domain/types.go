package domain

// Board is a 9x9 grid. Values uses 0 for empty cells and 1..9 for
// digits; Fixed marks the original givens so renderers and hint logic
// can tell clues apart from fills.
type Board struct {
	Values [9][9]uint8 `json:"board"`
	Fixed  [9][9]bool  `json:"fixed,omitempty"`
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	out := *b
	return &out
}

// Clues counts the non-empty cells.
func (b *Board) Clues() int {
	n := 0
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if b.Values[r][c] != 0 {
				n++
			}
		}
	}
	return n
}

// Full reports whether every cell holds a digit.
func (b *Board) Full() bool { return b.Clues() == 81 }

// CellCoord identifies a cell by zero-based row and column.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Hint is a single suggested step, with the cells it touches and the
// strategy tier that found it.
type Hint struct {
	Message  string       `json:"message,omitempty"`
	Cells    []CellCoord  `json:"cells,omitempty"`
	Strategy StrategyTier `json:"strategy,omitempty"`
}

// Puzzle is a board plus the metadata persisted alongside it.
type Puzzle struct {
	ID         string     `json:"id,omitempty"`
	Seed       int64      `json:"seed,omitempty"`
	Difficulty Difficulty `json:"difficulty,omitempty"`
	Board      Board      `json:"board"`
	CreatedAt  int64      `json:"createdAt,omitempty"` // unix nanoseconds
	Name       string     `json:"name,omitempty"`
	Notes      string     `json:"notes,omitempty"`
}

// Meta strips the board, leaving the fields listings need.
func (p *Puzzle) Meta() PuzzleMeta {
	return PuzzleMeta{
		ID:         p.ID,
		Name:       p.Name,
		Difficulty: p.Difficulty,
		CreatedAt:  p.CreatedAt,
	}
}

// PuzzleMeta is a listing entry without the board payload.
type PuzzleMeta struct {
	ID         string     `json:"id"`
	Name       string     `json:"name,omitempty"`
	Difficulty Difficulty `json:"difficulty"`
	CreatedAt  int64      `json:"createdAt"`
}
