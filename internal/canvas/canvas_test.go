package canvas

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColorCSS(t *testing.T) {
	assert.Equal(t, "rgba(0, 191, 255, 0.15)", RGBA(0, 191, 255, 0.15).CSS())
	assert.Equal(t, "rgba(255, 255, 255, 1)", White.CSS())
}

func TestHex(t *testing.T) {
	c, err := Hex("#333333")
	require.NoError(t, err)
	assert.Equal(t, RGB(0x33, 0x33, 0x33), c)

	_, err = Hex("not a color")
	assert.Error(t, err)
}

func TestLerp(t *testing.T) {
	assert.Equal(t, Black, Lerp(Black, White, 0))
	assert.Equal(t, White, Lerp(Black, White, 1))

	mid := Lerp(RGBA(0, 0, 0, 0), RGBA(200, 100, 0, 1), 0.5)
	assert.Equal(t, uint8(100), mid.R)
	assert.Equal(t, uint8(50), mid.G)
	assert.InDelta(t, 0.5, mid.A, 1e-9)
}

func TestOver(t *testing.T) {
	assert.Equal(t, White, White.Over(Black))
	assert.Equal(t, Black, Transparent.Over(Black))

	half := RGBA(200, 200, 200, 0.5).Over(Black)
	assert.Equal(t, uint8(100), half.R)
	assert.Equal(t, 1.0, half.A)
}

func TestLinearGradientAt(t *testing.T) {
	g := &LinearGradient{X0: 0, Y0: 100, X1: 0, Y1: 60, Stops: []Stop{
		{Offset: 0, Color: RGBA(0, 191, 255, 0.15)},
		{Offset: 1, Color: Transparent},
	}}

	bottom := g.At(10, 100)
	assert.InDelta(t, 0.15, bottom.A, 1e-9)
	assert.Equal(t, uint8(191), bottom.G)

	top := g.At(10, 60)
	assert.Zero(t, top.A)

	// Clamped past both ends.
	assert.Equal(t, bottom, g.At(0, 500))
	assert.Equal(t, top, g.At(0, -500))

	mid := g.At(0, 80)
	assert.InDelta(t, 0.075, mid.A, 1e-9)
}

func TestLinearGradientUnsortedStops(t *testing.T) {
	g := &LinearGradient{X1: 10, Stops: []Stop{{Offset: 1, Color: White}, {Offset: 0, Color: Black}}}
	assert.Equal(t, Black, g.At(0, 0))
	assert.Equal(t, White, g.At(10, 0))
}

func TestPaintAt(t *testing.T) {
	assert.Equal(t, White, Solid(White).At(3, 4))
	p := Linear(0, 0, 10, 0, Stop{0, Black}, Stop{1, White})
	assert.Equal(t, White, p.At(20, 0))
}

func TestMatrix(t *testing.T) {
	m := Identity.Translate(10, 20).Rotate(math.Pi / 2)
	x, y := m.Apply(1, 0)
	assert.InDelta(t, 10, x, 1e-9)
	assert.InDelta(t, 21, y, 1e-9)
	assert.InDelta(t, 1, m.Scale(), 1e-9)

	inv, ok := m.Invert()
	assert.True(t, ok)
	ux, uy := inv.Apply(x, y)
	assert.InDelta(t, 1, ux, 1e-9)
	assert.InDelta(t, 0, uy, 1e-9)

	_, ok = Matrix{}.Invert()
	assert.False(t, ok)
}

func TestTransformStack(t *testing.T) {
	var s TransformStack
	assert.Equal(t, Identity, s.Current())

	s.Save()
	s.Translate(5, 5)
	x, y := s.Current().Apply(0, 0)
	assert.Equal(t, 5.0, x)
	assert.Equal(t, 5.0, y)
	assert.Equal(t, 1, s.Depth())

	s.Restore()
	assert.Equal(t, Identity, s.Current())

	// Unbalanced restore is ignored.
	s.Restore()
	assert.Equal(t, Identity, s.Current())
}

func TestRecorder(t *testing.T) {
	r := NewRecorder(100, 50)
	w, h := r.Size()
	assert.Equal(t, 100.0, w)
	assert.Equal(t, 50.0, h)

	r.FillRect(Rect{W: 100, H: 50}, Solid(Black))
	r.Save()
	r.Translate(30, 40)
	r.Rotate(math.Pi / 4)
	r.StrokeLine(0, 0, -20, -20, Stroke{Width: 1})
	r.FillCircle(0, 0, 2, Solid(Black))
	r.Restore()

	ops := r.Ops()
	require.Len(t, ops, 3)
	assert.Equal(t, OpFillRect, ops[0].Kind)
	assert.Equal(t, OpStrokeLine, ops[1].Kind)
	assert.InDelta(t, 30, ops[1].DX0, 1e-9)
	assert.InDelta(t, 40, ops[1].DY0, 1e-9)
	// (-20,-20) rotated by 45 degrees lands straight above the origin.
	assert.InDelta(t, 30, ops[1].DX1, 1e-9)
	assert.InDelta(t, 40-20*math.Sqrt2, ops[1].DY1, 1e-9)
	assert.Equal(t, 1, r.Count(OpFillCircle))
	assert.Equal(t, "stroke_line", OpStrokeLine.String())

	r.Reset()
	assert.Empty(t, r.Ops())
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 10, W: 5, H: 5}
	assert.True(t, r.Contains(10, 10))
	assert.False(t, r.Contains(15, 10))
	cx, cy := r.Center()
	assert.Equal(t, 12.5, cx)
	assert.Equal(t, 12.5, cy)
}
