package tui

import (
	"math"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhruvywuvy/ursa-minor/internal/canvas"
)

func TestSurfaceSize(t *testing.T) {
	s := NewSurface(10, 8)
	w, h := s.Size()
	assert.Equal(t, 10.0, w)
	assert.Equal(t, 8.0, h)
	assert.Equal(t, canvas.Black, s.Pixel(9, 7))
	assert.Equal(t, canvas.Transparent, s.Pixel(10, 0))

	s.Resize(-1, 4)
	w, h = s.Size()
	assert.Zero(t, w)
	assert.Equal(t, 4.0, h)
}

func TestSurfaceFillRect(t *testing.T) {
	s := NewSurface(4, 4)
	s.FillRect(canvas.Rect{X: 1, Y: 1, W: 2, H: 2}, canvas.Solid(canvas.White))

	assert.Equal(t, canvas.White, s.Pixel(1, 1))
	assert.Equal(t, canvas.White, s.Pixel(2, 2))
	assert.Equal(t, canvas.Black, s.Pixel(0, 0))
	assert.Equal(t, canvas.Black, s.Pixel(3, 3))
}

func TestSurfaceFillRectGradient(t *testing.T) {
	s := NewSurface(1, 10)
	s.FillRect(canvas.Rect{W: 1, H: 10}, canvas.Linear(0, 10, 0, 0,
		canvas.Stop{Offset: 0, Color: canvas.White},
		canvas.Stop{Offset: 1, Color: canvas.Transparent},
	))

	assert.Greater(t, s.Pixel(0, 9).R, s.Pixel(0, 5).R)
	assert.Greater(t, s.Pixel(0, 5).R, s.Pixel(0, 0).R)
}

func TestSurfaceFillCircle(t *testing.T) {
	s := NewSurface(9, 9)
	s.FillCircle(4.5, 4.5, 2, canvas.Solid(canvas.White))
	assert.Equal(t, canvas.White, s.Pixel(4, 4))
	assert.Equal(t, canvas.Black, s.Pixel(0, 0))

	dot := NewSurface(3, 3)
	dot.FillCircle(1.5, 1.5, 0.2, canvas.Solid(canvas.White))
	assert.NotEqual(t, canvas.Black, dot.Pixel(1, 1))
	assert.Equal(t, canvas.Black, dot.Pixel(0, 1))
}

func TestSurfaceTransform(t *testing.T) {
	s := NewSurface(10, 10)
	s.Save()
	s.Translate(5, 5)
	s.FillRect(canvas.Rect{W: 1, H: 1}, canvas.Solid(canvas.White))
	s.Restore()

	assert.Equal(t, canvas.White, s.Pixel(5, 5))
	assert.Equal(t, canvas.Black, s.Pixel(0, 0))

	s.Save()
	s.Translate(2, 2)
	s.Rotate(math.Pi / 2)
	s.FillRect(canvas.Rect{W: 3, H: 1}, canvas.Solid(canvas.White))
	s.Restore()
	// A 3×1 bar rotated a quarter turn stands vertically left of the origin.
	assert.Equal(t, canvas.White, s.Pixel(1, 3))
	assert.Equal(t, canvas.Black, s.Pixel(3, 2))
}

func TestSurfaceStrokeLine(t *testing.T) {
	s := NewSurface(10, 3)
	s.StrokeLine(0, 1.5, 10, 1.5, canvas.Stroke{Paint: canvas.Solid(canvas.White), Width: 1})
	for x := 0; x < 10; x++ {
		assert.Equal(t, canvas.White, s.Pixel(x, 1), "x=%d", x)
	}
	assert.Equal(t, canvas.Black, s.Pixel(5, 0))

	blurred := NewSurface(10, 9)
	blurred.StrokeLine(0, 4.5, 10, 4.5, canvas.Stroke{Paint: canvas.Solid(canvas.White), Width: 1, Blur: 3})
	center, edge := blurred.Pixel(5, 4), blurred.Pixel(5, 2)
	assert.Greater(t, center.R, edge.R)
	assert.Greater(t, edge.R, uint8(0))
	assert.Less(t, center.R, uint8(255))
}

func TestSurfaceStrokeScale(t *testing.T) {
	wide := NewSurface(10, 9)
	wide.StrokeLine(0, 4.5, 10, 4.5, canvas.Stroke{Paint: canvas.Solid(canvas.White), Width: 5})

	thin := NewSurface(10, 9)
	thin.SetStrokeScale(0.2)
	thin.StrokeLine(0, 4.5, 10, 4.5, canvas.Stroke{Paint: canvas.Solid(canvas.White), Width: 5})

	assert.Equal(t, canvas.White, wide.Pixel(5, 2))
	assert.Equal(t, canvas.Black, thin.Pixel(5, 2))
	assert.NotEqual(t, canvas.Black, thin.Pixel(5, 4))
}

func TestSurfaceFlush(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	defer screen.Fini()
	screen.SetSize(4, 2)

	s := NewSurface(4, 4)
	s.FillRect(canvas.Rect{W: 4, H: 1}, canvas.Solid(canvas.White))
	s.Flush(screen)
	screen.Show()

	cells, w, _ := screen.GetContents()
	require.Equal(t, 4, w)
	first := cells[0]
	assert.Equal(t, []rune{halfBlock}, first.Runes)
	fg, bg, _ := first.Style.Decompose()
	assert.Equal(t, tcell.NewRGBColor(255, 255, 255), fg)
	assert.Equal(t, tcell.NewRGBColor(0, 0, 0), bg)

	assert.Equal(t, canvas.RGB(128, 128, 128), s.Cell(0, 0))
}

func TestWrap(t *testing.T) {
	assert.Equal(t, []string{"Redefining how", "we learn."}, wrap("Redefining how we learn.", 14))
	assert.Equal(t, []string{"one"}, wrap("  one  ", 10))
	assert.Nil(t, wrap("anything", 0))
	for _, line := range wrap("Founded label to support innovative artists + uplift people.", 12) {
		assert.LessOrEqual(t, len([]rune(line)), 12)
	}
}
