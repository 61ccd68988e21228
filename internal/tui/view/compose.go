package view

import (
	"slices"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Compose paints frame onto a blank width x height screen. Placements on the
// same row are laid left to right; text running into the next placement is
// cut at that placement's column.
func Compose(frame Frame, width, height int) string {
	if width < 1 || height < 1 {
		return ""
	}
	ordered := slices.Clone(frame)
	slices.SortStableFunc(ordered, func(a, b Placement) int {
		if a.Row != b.Row {
			return a.Row - b.Row
		}
		return a.Col - b.Col
	})

	rows := make([]string, height)
	for _, p := range ordered {
		if p.Row < 1 || p.Row > height || p.Col < 1 || p.Col > width {
			continue
		}
		row := rows[p.Row-1]
		col := p.Col - 1
		cur := ansi.StringWidth(row)
		if cur > col {
			row = ansi.Truncate(row, col, "")
			cur = col
		}
		row += strings.Repeat(" ", col-cur) + p.Text
		rows[p.Row-1] = ansi.Truncate(row, width, "")
	}

	for i, row := range rows {
		if pad := width - ansi.StringWidth(row); pad > 0 {
			rows[i] = row + strings.Repeat(" ", pad)
		}
	}
	return strings.Join(rows, "\n")
}
