package constellation

import (
	"math"

	"github.com/dhruvywuvy/ursa-minor/internal/canvas"
)

const (
	haloWidth   = 3
	haloBlur    = 4
	lineWidth   = 0.5
	markerSize  = 4
	pulsePeriod = 1.2
)

// Stroke colors of the constellation lines and star markers.
var (
	HaloColor   = canvas.RGB(255, 255, 255)
	LineColor   = canvas.RGBA(180, 180, 180, 0.8)
	MarkerColor = canvas.White
)

// RenderConstellation draws every edge as a blurred white halo under a
// thin grey line.
func (l *Layer) RenderConstellation(c canvas.Canvas, container canvas.Rect) {
	halo := canvas.Stroke{Paint: canvas.Solid(HaloColor), Width: haloWidth, Blur: haloBlur}
	thin := canvas.Stroke{Paint: canvas.Solid(LineColor), Width: lineWidth}

	for _, line := range Lines(l.stars) {
		x0, y0 := Point(container, line.From)
		x1, y1 := Point(container, line.To)
		c.StrokeLine(x0, y0, x1, y1, halo)
		c.StrokeLine(x0, y0, x1, y1, thin)
	}
}

// RenderMarker draws the pulsing glyph of one star. phase is the time in
// seconds since the page was mounted.
func (l *Layer) RenderMarker(c canvas.Canvas, container canvas.Rect, index int, phase float64) error {
	if err := l.check(index); err != nil {
		return err
	}
	x, y := Point(container, l.stars[index].Position)
	alpha := Pulse(phase)
	paint := canvas.Solid(MarkerColor.WithAlpha(alpha))
	arm := markerSize / 2.0

	c.Save()
	c.Translate(x, y)
	c.StrokeLine(-arm, 0, arm, 0, canvas.Stroke{Paint: paint, Width: 1})
	c.StrokeLine(0, -arm, 0, arm, canvas.Stroke{Paint: paint, Width: 1})
	c.FillCircle(0, 0, arm/2, paint)
	c.Restore()
	return nil
}

// RenderMarkers draws every star marker.
func (l *Layer) RenderMarkers(c canvas.Canvas, container canvas.Rect, phase float64) {
	for i := range l.stars {
		_ = l.RenderMarker(c, container, i, phase)
	}
}

// Pulse is the marker opacity at phase seconds, between 0.5 and 1.
func Pulse(phase float64) float64 {
	return 0.75 + 0.25*math.Cos(2*math.Pi*phase/pulsePeriod)
}
