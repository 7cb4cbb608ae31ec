package tui

import (
	"math"

	"github.com/mattn/go-runewidth"

	"github.com/dhruvywuvy/ursa-minor/internal/canvas"
	"github.com/dhruvywuvy/ursa-minor/internal/constellation"
	"github.com/dhruvywuvy/ursa-minor/internal/portfolio"
)

const (
	cardWidth = 52
	hitRadius = 2.5

	// Stroke widths of the constellation are given for a browser window.
	lineScale = 0.25
)

type box struct {
	X, Y, W, H int
}

func (b box) contains(x, y int) bool {
	return x >= b.X && x < b.X+b.W && y >= b.Y && y < b.Y+b.H
}

// sceneContainer places the 2:1 star container in a surface of w×h
// sub-pixels, below the heading.
func sceneContainer(w, h float64) canvas.Rect {
	cw := math.Min(w*0.7, h*0.6*2)
	ch := cw / 2
	return canvas.Rect{X: (w - cw) / 2, Y: h * 0.22, W: cw, H: ch}
}

// subPixel maps a cell to the center of its sub-pixel pair.
func subPixel(x, y int) (float64, float64) {
	return float64(x) + 0.5, float64(2*y) + 1
}

// markerCell returns the cell under a star.
func markerCell(cols, rows int, pos portfolio.Position) (int, int) {
	x, y := constellation.Point(sceneContainer(float64(cols), float64(2*rows)), pos)
	return int(math.Floor(x)), int(math.Floor(y / 2))
}

func descriptionWidth(cols int) int {
	return min(cardWidth, cols-2) - 4
}

// cardBox is the screen area of a fully revealed card, centered on its
// star and kept inside the screen.
func cardBox(cols, rows int, p constellation.Panel) box {
	w := min(cardWidth, cols-2)
	h := len(wrap(p.Experience.Description, descriptionWidth(cols))) + 6
	if w <= 0 || h > rows {
		return box{}
	}
	mx, my := markerCell(cols, rows, p.Anchor)
	b := box{X: mx - w/2, Y: my - h/2, W: w, H: h}
	b.X = max(0, min(b.X, cols-w))
	b.Y = max(0, min(b.Y, rows-h))
	return b
}

// scaled shrinks b around its center.
func (b box) scaled(k float64) box {
	if k >= 1 {
		return b
	}
	w := int(math.Round(float64(b.W) * k))
	h := int(math.Round(float64(b.H) * k))
	return box{X: b.X + (b.W-w)/2, Y: b.Y + (b.H-h)/2, W: w, H: h}
}

// badge stands in for a company logo: the company initial, or a star when
// the card has no logo of its own.
func badge(p constellation.Panel) string {
	if p.Logo == portfolio.PlaceholderLogo || p.Experience.Company == "" {
		return "[✦]"
	}
	r := []rune(p.Experience.Company)[0]
	if runewidth.RuneWidth(r) != 1 {
		return "[✦]"
	}
	return "[" + string(r) + "]"
}
