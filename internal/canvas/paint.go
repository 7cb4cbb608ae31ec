package canvas

import "sort"

// Stop is a color stop of a gradient, Offset in [0, 1].
type Stop struct {
	Offset float64
	Color  Color
}

// LinearGradient runs from (X0, Y0) at offset 0 to (X1, Y1) at offset 1.
type LinearGradient struct {
	X0, Y0, X1, Y1 float64
	Stops          []Stop
}

// At samples the gradient at a user space point. Points are projected onto
// the gradient axis and clamped to the end stops.
func (g *LinearGradient) At(x, y float64) Color {
	if len(g.Stops) == 0 {
		return Transparent
	}
	dx, dy := g.X1-g.X0, g.Y1-g.Y0
	t := 0.0
	if l2 := dx*dx + dy*dy; l2 > 0 {
		t = ((x-g.X0)*dx + (y-g.Y0)*dy) / l2
	}
	return g.sample(clamp01(t))
}

func (g *LinearGradient) sample(t float64) Color {
	stops := g.Stops
	if !sort.SliceIsSorted(stops, func(i, j int) bool { return stops[i].Offset < stops[j].Offset }) {
		stops = append([]Stop(nil), stops...)
		sort.SliceStable(stops, func(i, j int) bool { return stops[i].Offset < stops[j].Offset })
	}
	if t <= stops[0].Offset {
		return stops[0].Color
	}
	for i := 1; i < len(stops); i++ {
		lo, hi := stops[i-1], stops[i]
		if t <= hi.Offset {
			span := hi.Offset - lo.Offset
			if span <= 0 {
				return hi.Color
			}
			return Lerp(lo.Color, hi.Color, (t-lo.Offset)/span)
		}
	}
	return stops[len(stops)-1].Color
}

// Paint is either a solid color or a linear gradient. A non-nil Gradient
// takes precedence over Color.
type Paint struct {
	Color    Color
	Gradient *LinearGradient
}

// Solid returns a single color paint.
func Solid(c Color) Paint {
	return Paint{Color: c}
}

// Linear returns a gradient paint.
func Linear(x0, y0, x1, y1 float64, stops ...Stop) Paint {
	return Paint{Gradient: &LinearGradient{X0: x0, Y0: y0, X1: x1, Y1: y1, Stops: stops}}
}

// At returns the paint color at a user space point.
func (p Paint) At(x, y float64) Color {
	if p.Gradient != nil {
		return p.Gradient.At(x, y)
	}
	return p.Color
}

// Stroke describes how a line is drawn. Blur softens the line by the given
// radius, used for glow halos.
type Stroke struct {
	Paint Paint
	Width float64
	Blur  float64
}
