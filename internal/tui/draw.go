package tui

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/dhruvywuvy/ursa-minor/internal/canvas"
	"github.com/dhruvywuvy/ursa-minor/internal/constellation"
	"github.com/dhruvywuvy/ursa-minor/internal/starfield"
)

var (
	textColor  = canvas.White
	mutedColor = canvas.RGB(170, 170, 170)
	cardColor  = canvas.Black
)

// dotted box drawing
const (
	borderH      = '┄'
	borderV      = '┆'
	borderCorner = '·'
)

// drawOverlay runs after the starfield of every frame: constellation,
// markers, the terminal copy of the surface, then text on top.
func (a *App) drawOverlay(s starfield.Surface, w, h float64) {
	now := time.Now()
	a.layer.Advance(now.Sub(a.lastFrame))
	a.lastFrame = now
	phase := now.Sub(a.start).Seconds()

	container := sceneContainer(w, h)
	a.surface.SetStrokeScale(lineScale)
	a.layer.RenderConstellation(s, container)
	a.surface.SetStrokeScale(1)
	a.layer.RenderMarkers(s, container, phase)

	a.surface.Flush(a.screen)

	cols, rows := a.screen.Size()
	a.drawHeading(cols)
	a.drawSocials(cols, rows)
	if p, ok := a.layer.Panel(); ok {
		a.drawCard(cols, rows, p)
	}
	a.screen.Show()
}

// textStyle draws fg over the scene cell at (x, y).
func (a *App) textStyle(x, y int, fg canvas.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(toTcell(fg)).Background(toTcell(a.surface.Cell(x, y)))
}

func (a *App) drawLine(x0, x1, y int, s string, fg canvas.Color, centered bool) {
	style := a.textStyle((x0+x1)/2, y, fg)
	if centered {
		drawCentered(a.screen, x0, x1, y, s, style)
		return
	}
	drawText(a.screen, x0, y, x1, s, style)
}

func (a *App) drawHeading(cols int) {
	y := 1
	a.drawLine(0, cols, y, a.profile.Name, textColor, true)
	y++
	width := min(70, cols-4)
	for _, line := range wrap(a.profile.Tagline, width) {
		y++
		a.drawLine(0, cols, y, line, mutedColor, true)
	}
	y += 2
	a.drawLine(0, cols, y, a.profile.Guide, mutedColor, true)
}

// drawSocials writes the social links on the bottom row. Terminals that
// support OSC 8 make them clickable.
func (a *App) drawSocials(cols, rows int) {
	total := 0
	for i, l := range a.socials {
		if i > 0 {
			total += 3
		}
		total += runewidth.StringWidth(l.Name)
	}
	x := max(0, (cols-total)/2)
	y := rows - 1
	for i, l := range a.socials {
		if i > 0 {
			x = drawText(a.screen, x, y, cols, " · ", a.textStyle(x, y, mutedColor))
		}
		style := a.textStyle(x, y, textColor).Url(l.URL).Underline(true)
		x = drawText(a.screen, x, y, cols, l.Name, style)
	}
}

// drawCard draws the card growing out of its star, then its text once
// fully revealed.
func (a *App) drawCard(cols, rows int, p constellation.Panel) {
	full := cardBox(cols, rows, p)
	if full.W == 0 {
		return
	}
	b := full.scaled(p.Scale)
	if b.W < 2 || b.H < 2 {
		return
	}

	bg := tcell.StyleDefault.Background(toTcell(cardColor))
	border := bg.Foreground(toTcell(textColor))
	for y := b.Y; y < b.Y+b.H; y++ {
		for x := b.X; x < b.X+b.W; x++ {
			r := ' '
			switch {
			case (y == b.Y || y == b.Y+b.H-1) && (x == b.X || x == b.X+b.W-1):
				r = borderCorner
			case y == b.Y || y == b.Y+b.H-1:
				r = borderH
			case x == b.X || x == b.X+b.W-1:
				r = borderV
			}
			a.screen.SetContent(x, y, r, nil, border)
		}
	}
	if b != full {
		return
	}

	fade := func(c canvas.Color) tcell.Style {
		return bg.Foreground(toTcell(canvas.Lerp(cardColor, c, p.Opacity)))
	}
	x0, x1 := b.X+2, b.X+b.W-2
	y := b.Y + 1

	head := badge(p) + " " + p.Experience.Title + " " + p.Separator + " " + p.Experience.Company
	period := p.Experience.Period
	periodX := x1 - runewidth.StringWidth(period)
	drawText(a.screen, x0, y, periodX-1, head, fade(textColor))
	drawText(a.screen, periodX, y, x1, period, fade(mutedColor))

	y += 2
	for _, line := range wrap(p.Experience.Description, descriptionWidth(cols)) {
		drawText(a.screen, x0, y, x1, line, fade(textColor))
		y++
	}

	y++
	drawText(a.screen, x0, y, x1, p.LinkLabel, fade(textColor).Url(p.Experience.Link).Underline(true))
}
