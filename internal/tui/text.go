package tui

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// drawText writes s starting at cell (x, y) and returns the column after
// the last rune. Text is clipped to maxX.
func drawText(screen tcell.Screen, x, y, maxX int, s string, style tcell.Style) int {
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x+w > maxX {
			break
		}
		screen.SetContent(x, y, r, nil, style)
		x += w
	}
	return x
}

// drawCentered writes s centered on the row between x0 and x1.
func drawCentered(screen tcell.Screen, x0, x1, y int, s string, style tcell.Style) {
	s = runewidth.Truncate(s, x1-x0, "…")
	x := x0 + (x1-x0-runewidth.StringWidth(s))/2
	drawText(screen, x, y, x1, s, style)
}

// wrap breaks s into lines no wider than width cells, on spaces.
func wrap(s string, width int) []string {
	if width <= 0 {
		return nil
	}
	var (
		lines []string
		line  strings.Builder
		used  int
	)
	for _, word := range strings.Fields(s) {
		ww := runewidth.StringWidth(word)
		if ww > width {
			word = runewidth.Truncate(word, width, "…")
			ww = runewidth.StringWidth(word)
		}
		if used > 0 && used+1+ww > width {
			lines = append(lines, line.String())
			line.Reset()
			used = 0
		}
		if used > 0 {
			line.WriteByte(' ')
			used++
		}
		line.WriteString(word)
		used += ww
	}
	if used > 0 {
		lines = append(lines, line.String())
	}
	return lines
}
