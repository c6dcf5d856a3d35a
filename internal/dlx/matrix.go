// Package dlx implements Donald Knuth's Algorithm X over a dancing-links
// matrix for exact-cover problems, plus the 9x9 Sudoku encoding on top of it.
//
// Instead of the classic pointer graph, the whole matrix lives in a single
// pre-sized arena: column headers and row cells are slots in flat slices and
// the up/down/left/right links are int32 indices into that arena. Cover and
// uncover are the same O(1)-per-cell relink operations, without any node
// allocation after construction.
//
// See Knuth's paper: https://arxiv.org/pdf/cs/0011047.pdf
package dlx

import "fmt"

// Matrix is a sparse 0/1 exact-cover matrix whose rows and columns form
// circular doubly-linked rings. Arena layout: slots [0, columns) are the
// constraint column headers, slot columns is the root header, and every
// AddRow call appends one slot per referenced column.
type Matrix struct {
	left, right []int32
	up, down    []int32
	col         []int32 // owning column header; headers own themselves
	rowID       []int32 // candidate row identifier; -1 for headers
	count       []int32 // live cells per column header, indexed by header slot
	labels      []string
	root        int32
	rows        int32
}

// NewMatrix builds an empty matrix with the given number of constraint
// columns. Every column starts as a self-referential up/down singleton, and
// all headers plus the root form one circular left/right ring. cellCap sizes
// the arena for the cells that AddRow will insert; it may be zero.
func NewMatrix(columns, cellCap int) *Matrix {
	headers := columns + 1 // root included, as the last header
	m := &Matrix{
		left:   make([]int32, headers, headers+cellCap),
		right:  make([]int32, headers, headers+cellCap),
		up:     make([]int32, headers, headers+cellCap),
		down:   make([]int32, headers, headers+cellCap),
		col:    make([]int32, headers, headers+cellCap),
		rowID:  make([]int32, headers, headers+cellCap),
		count:  make([]int32, headers),
		labels: make([]string, headers),
		root:   int32(columns),
	}
	for i := 0; i < headers; i++ {
		m.up[i] = int32(i)
		m.down[i] = int32(i)
		m.right[i] = int32((i + 1) % headers)
		m.left[i] = int32((i - 1 + headers) % headers)
		m.col[i] = int32(i)
		m.rowID[i] = -1
		m.labels[i] = fmt.Sprintf("column %d", i)
	}
	m.labels[m.root] = "root"
	return m
}

// Columns returns the number of constraint columns (the root excluded).
func (m *Matrix) Columns() int { return int(m.root) }

// Label returns the diagnostic name of a column header.
func (m *Matrix) Label(c int32) string { return m.labels[c] }

// Rows returns the number of rows inserted so far.
func (m *Matrix) Rows() int { return int(m.rows) }

// AddRow appends a row touching the given constraint columns: one cell per
// column, inserted at the bottom of that column's ring, with all cells of the
// row linked into their own left/right ring. Returns the row identifier,
// which is simply the insertion index (0, 1, 2, ...).
func (m *Matrix) AddRow(cols ...int) int {
	id := m.rows
	m.rows++
	first := int32(len(m.col))
	for k, c := range cols {
		hdr := int32(c)
		idx := int32(len(m.col))
		m.col = append(m.col, hdr)
		m.rowID = append(m.rowID, id)

		// bottom of the column: between the current last cell and the header
		m.up = append(m.up, m.up[hdr])
		m.down = append(m.down, hdr)
		m.down[m.up[hdr]] = idx
		m.up[hdr] = idx
		m.count[hdr]++

		if k == 0 {
			m.left = append(m.left, idx)
			m.right = append(m.right, idx)
		} else {
			m.left = append(m.left, idx-1)
			m.right = append(m.right, first)
			m.right[idx-1] = idx
			m.left[first] = idx
		}
	}
	return int(id)
}

// Cover removes column c from the header ring and unlinks every row that has
// a cell in c from all other columns those rows touch. The removed cells keep
// their own link values so a matching Uncover can restore them exactly.
func (m *Matrix) Cover(c int32) {
	m.left[m.right[c]] = m.left[c]
	m.right[m.left[c]] = m.right[c]
	for i := m.down[c]; i != c; i = m.down[i] {
		for j := m.right[i]; j != i; j = m.right[j] {
			m.up[m.down[j]] = m.up[j]
			m.down[m.up[j]] = m.down[j]
			m.count[m.col[j]]--
		}
	}
}

// Uncover reverses a Cover of c. Covers must be undone in strict reverse
// order, and the traversal mirrors Cover (bottom-to-top, right-to-left) so
// every relink reads link values that have not been overwritten yet.
func (m *Matrix) Uncover(c int32) {
	for i := m.up[c]; i != c; i = m.up[i] {
		for j := m.left[i]; j != i; j = m.left[j] {
			m.count[m.col[j]]++
			m.up[m.down[j]] = j
			m.down[m.up[j]] = j
		}
	}
	m.left[m.right[c]] = c
	m.right[m.left[c]] = c
}
