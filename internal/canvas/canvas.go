// Package canvas defines the small immediate-mode 2D surface the scene is
// drawn on. Hosts implement Canvas over their native drawing facility: a
// browser CanvasRenderingContext2D, a terminal cell grid, or a Recorder.
package canvas

// Rect is an axis aligned rectangle in user space.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether (x, y) lies inside r.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Center returns the midpoint of r.
func (r Rect) Center() (x, y float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Canvas is a 2D drawing surface with a save/restore transform stack.
// Coordinates passed to drawing calls are in user space and are mapped
// through the current transform.
type Canvas interface {
	Size() (w, h float64)

	FillRect(r Rect, p Paint)
	FillCircle(cx, cy, radius float64, p Paint)
	StrokeLine(x0, y0, x1, y1 float64, s Stroke)

	Save()
	Restore()
	Translate(dx, dy float64)
	Rotate(rad float64)
}
