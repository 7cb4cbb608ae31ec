package tui

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/dhruvywuvy/ursa-minor/internal/canvas"
)

// halfBlock paints the top sub-pixel of a cell with the foreground and the
// bottom one with the background.
const halfBlock = '▀'

// Surface is a canvas over a terminal. Every cell holds two square
// sub-pixels stacked vertically, so a cols×rows screen is a cols×(2*rows)
// pixel surface.
type Surface struct {
	canvas.TransformStack

	w, h   int
	pixels []canvas.Color

	// strokeScale multiplies stroke widths and blur radii.
	strokeScale float64
}

// NewSurface returns a black surface of w×h sub-pixels.
func NewSurface(w, h int) *Surface {
	s := &Surface{strokeScale: 1}
	s.resize(w, h)
	return s
}

// Size returns the surface size in sub-pixels.
func (s *Surface) Size() (float64, float64) {
	return float64(s.w), float64(s.h)
}

// Resize reallocates the pixel buffer. Contents are cleared.
func (s *Surface) Resize(w, h float64) {
	s.resize(int(w), int(h))
}

func (s *Surface) resize(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	s.w, s.h = w, h
	s.pixels = make([]canvas.Color, w*h)
	for i := range s.pixels {
		s.pixels[i] = canvas.Black
	}
	s.Reset()
}

// SetStrokeScale scales stroke widths and blur radii of later StrokeLine
// calls. Scenes laid out for a browser use it to keep lines thin.
func (s *Surface) SetStrokeScale(k float64) {
	if k <= 0 {
		k = 1
	}
	s.strokeScale = k
}

// Pixel returns the color at sub-pixel (x, y).
func (s *Surface) Pixel(x, y int) canvas.Color {
	if x < 0 || y < 0 || x >= s.w || y >= s.h {
		return canvas.Transparent
	}
	return s.pixels[y*s.w+x]
}

func (s *Surface) blend(x, y int, c canvas.Color, coverage float64) {
	if x < 0 || y < 0 || x >= s.w || y >= s.h || coverage <= 0 {
		return
	}
	if coverage < 1 {
		c = c.WithAlpha(c.A * coverage)
	}
	i := y*s.w + x
	s.pixels[i] = c.Over(s.pixels[i])
}

// device returns the current transform and its inverse.
func (s *Surface) device() (canvas.Matrix, canvas.Matrix, bool) {
	m := s.Current()
	inv, ok := m.Invert()
	return m, inv, ok
}

func (s *Surface) FillRect(r canvas.Rect, p canvas.Paint) {
	m, inv, ok := s.device()
	if !ok {
		return
	}
	x0, y0, x1, y1 := bounds(m, [][2]float64{
		{r.X, r.Y}, {r.X + r.W, r.Y}, {r.X, r.Y + r.H}, {r.X + r.W, r.Y + r.H},
	})
	s.each(x0, y0, x1, y1, func(px, py int) {
		ux, uy := inv.Apply(float64(px)+0.5, float64(py)+0.5)
		if r.Contains(ux, uy) {
			s.blend(px, py, p.At(ux, uy), 1)
		}
	})
}

func (s *Surface) FillCircle(cx, cy, radius float64, p canvas.Paint) {
	if radius <= 0 {
		return
	}
	m, inv, ok := s.device()
	if !ok {
		return
	}
	dx, dy := m.Apply(cx, cy)
	dr := radius * m.Scale()

	// Dots smaller than a sub-pixel light the pixel under their center.
	if dr < 0.5 {
		px, py := int(math.Floor(dx)), int(math.Floor(dy))
		s.blend(px, py, p.At(cx, cy), math.Min(1, math.Pi*dr*dr*4))
		return
	}

	s.each(dx-dr-1, dy-dr-1, dx+dr+1, dy+dr+1, func(px, py int) {
		fx, fy := float64(px)+0.5, float64(py)+0.5
		d := math.Hypot(fx-dx, fy-dy)
		ux, uy := inv.Apply(fx, fy)
		s.blend(px, py, p.At(ux, uy), clamp01(dr+0.5-d))
	})
}

func (s *Surface) StrokeLine(x0, y0, x1, y1 float64, st canvas.Stroke) {
	m, inv, ok := s.device()
	if !ok {
		return
	}
	ax, ay := m.Apply(x0, y0)
	bx, by := m.Apply(x1, y1)
	half := st.Width * m.Scale() * s.strokeScale / 2
	blur := st.Blur * m.Scale() * s.strokeScale
	reach := half + blur + 1

	s.each(math.Min(ax, bx)-reach, math.Min(ay, by)-reach, math.Max(ax, bx)+reach, math.Max(ay, by)+reach, func(px, py int) {
		fx, fy := float64(px)+0.5, float64(py)+0.5
		d := segmentDistance(fx, fy, ax, ay, bx, by)

		coverage := clamp01(half + 0.5 - d)
		if blur > 0 {
			// Half strength, fading linearly over the blur radius.
			coverage = 0.5 * clamp01(1-(d-half)/blur)
		}
		ux, uy := inv.Apply(fx, fy)
		s.blend(px, py, st.Paint.At(ux, uy), coverage)
	})
}

func (s *Surface) each(x0, y0, x1, y1 float64, fn func(px, py int)) {
	minX := max(0, int(math.Floor(x0)))
	minY := max(0, int(math.Floor(y0)))
	maxX := min(s.w-1, int(math.Ceil(x1)))
	maxY := min(s.h-1, int(math.Ceil(y1)))
	for py := minY; py <= maxY; py++ {
		for px := minX; px <= maxX; px++ {
			fn(px, py)
		}
	}
}

// Flush copies the surface to the screen, two sub-pixels per cell. Text
// drawn afterwards covers the cells it touches.
func (s *Surface) Flush(screen tcell.Screen) {
	cols, rows := screen.Size()
	for y := 0; y < rows && 2*y < s.h; y++ {
		for x := 0; x < cols && x < s.w; x++ {
			top := s.Pixel(x, 2*y)
			bottom := s.Pixel(x, 2*y+1)
			if 2*y+1 >= s.h {
				bottom = canvas.Black
			}
			style := tcell.StyleDefault.Foreground(toTcell(top)).Background(toTcell(bottom))
			screen.SetContent(x, y, halfBlock, nil, style)
		}
	}
}

// Cell returns the average color of the two sub-pixels of a cell, used as
// the background of text drawn over the scene.
func (s *Surface) Cell(x, y int) canvas.Color {
	return canvas.Lerp(s.Pixel(x, 2*y), s.Pixel(x, 2*y+1), 0.5).WithAlpha(1)
}

func toTcell(c canvas.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func bounds(m canvas.Matrix, pts [][2]float64) (x0, y0, x1, y1 float64) {
	x0, y0 = math.Inf(1), math.Inf(1)
	x1, y1 = math.Inf(-1), math.Inf(-1)
	for _, p := range pts {
		x, y := m.Apply(p[0], p[1])
		x0, y0 = math.Min(x0, x), math.Min(y0, y)
		x1, y1 = math.Max(x1, x), math.Max(y1, y)
	}
	return x0, y0, x1, y1
}

func segmentDistance(px, py, ax, ay, bx, by float64) float64 {
	dx, dy := bx-ax, by-ay
	l2 := dx*dx + dy*dy
	if l2 == 0 {
		return math.Hypot(px-ax, py-ay)
	}
	t := clamp01(((px-ax)*dx + (py-ay)*dy) / l2)
	return math.Hypot(px-(ax+t*dx), py-(ay+t*dy))
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
