package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"svw.info/sudoku-dlx/internal/domain"
)

var (
	frameStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	givenStyle = lipgloss.NewStyle().Bold(true)
	fillStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	emptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
)

// RenderBoard draws the grid with box separators; givens are bold, solver-
// filled digits colored, empty cells dimmed dots.
func RenderBoard(b *domain.Board) string {
	var sb strings.Builder
	rule := frameStyle.Render("+-------+-------+-------+")
	for r := 0; r < 9; r++ {
		if r%3 == 0 {
			sb.WriteString(rule)
			sb.WriteByte('\n')
		}
		for c := 0; c < 9; c++ {
			if c%3 == 0 {
				sb.WriteString(frameStyle.Render("| "))
			}
			sb.WriteString(renderCell(b, r, c))
			sb.WriteByte(' ')
		}
		sb.WriteString(frameStyle.Render("|"))
		sb.WriteByte('\n')
	}
	sb.WriteString(rule)
	return sb.String()
}

func renderCell(b *domain.Board, r, c int) string {
	v := b.Values[r][c]
	switch {
	case v == 0:
		return emptyStyle.Render(".")
	case b.Fixed[r][c]:
		return givenStyle.Render(string('0' + rune(v)))
	default:
		return fillStyle.Render(string('0' + rune(v)))
	}
}
