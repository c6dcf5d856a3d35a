package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"svw.info/sudoku-dlx/internal/domain"
)

// ParseBoard reads a 9x9 grid from text. Digits 1-9 are givens; '0' and '.'
// mark empty cells; all whitespace and the optional '|', '+', '-' frame
// characters are ignored, so both a bare 81-character string and a
// pretty-printed grid parse.
func ParseBoard(s string) (*domain.Board, error) {
	b := &domain.Board{}
	n := 0
	for _, ch := range s {
		switch {
		case ch >= '1' && ch <= '9':
			if n >= 81 {
				return nil, fmt.Errorf("grid has more than 81 cells")
			}
			b.Values[n/9][n%9] = uint8(ch - '0')
			b.Fixed[n/9][n%9] = true
			n++
		case ch == '0' || ch == '.':
			if n >= 81 {
				return nil, fmt.Errorf("grid has more than 81 cells")
			}
			n++
		case ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' ||
			ch == '|' || ch == '+' || ch == '-':
			// frame or spacing, skip
		default:
			return nil, fmt.Errorf("unexpected character %q in grid", ch)
		}
	}
	if n != 81 {
		return nil, fmt.Errorf("grid has %d cells, want 81", n)
	}
	return b, nil
}

// readBoard loads a grid from the named file, or from stdin when the
// argument is empty or "-".
func readBoard(path string) (*domain.Board, error) {
	var data []byte
	var err error
	if path == "" || path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, err
	}
	b, err := ParseBoard(string(data))
	if err != nil {
		src := path
		if src == "" || src == "-" {
			src = "stdin"
		}
		return nil, fmt.Errorf("%s: %w", src, err)
	}
	return b, nil
}

// FormatBoard renders a board as the plain 9-line digit form ParseBoard
// accepts, with '.' for empty cells.
func FormatBoard(b *domain.Board) string {
	var sb strings.Builder
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if v := b.Values[r][c]; v == 0 {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('0' + v)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
