package starfield

import (
	"context"
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhruvywuvy/ursa-minor/internal/canvas"
)

func fixedViewport(w, h float64) Viewport {
	return func() (float64, float64) { return w, h }
}

func newMounted(t *testing.T, w, h float64, opts ...Option) (*Animator, *canvas.Recorder) {
	t.Helper()
	opts = append([]Option{WithRand(rand.New(rand.NewSource(42)))}, opts...)
	a := New(opts...)
	rec := canvas.NewRecorder(0, 0)
	a.Initialize(rec, fixedViewport(w, h))
	return a, rec
}

func TestInitialize(t *testing.T) {
	a, rec := newMounted(t, 1280, 720)

	w, h := rec.Size()
	assert.Equal(t, 1280.0, w)
	assert.Equal(t, 720.0, h)

	particles := a.Particles()
	require.Len(t, particles, DefaultParticleCount)
	for _, p := range particles {
		assert.GreaterOrEqual(t, p.X, 0.0)
		assert.Less(t, p.X, 1280.0)
		assert.GreaterOrEqual(t, p.Y, 0.0)
		assert.Less(t, p.Y, 720.0)
		assert.GreaterOrEqual(t, p.Size, 0.0)
		assert.Less(t, p.Size, DefaultMaxSize)
		assert.GreaterOrEqual(t, p.Speed, 0.0)
		assert.Less(t, p.Speed, DefaultMaxSpeed)
	}
}

func TestInitializeUnmeasurableViewport(t *testing.T) {
	a := New(WithRand(rand.New(rand.NewSource(1))))
	rec := canvas.NewRecorder(10, 10)
	a.Initialize(rec, func() (float64, float64) { return math.NaN(), -5 })

	w, h := a.Size()
	assert.Zero(t, w)
	assert.Zero(t, h)
	assert.True(t, a.RenderFrame())

	a = New()
	a.Initialize(rec, nil)
	w, h = a.Size()
	assert.Zero(t, w)
	assert.Zero(t, h)
}

func TestRenderFrameWithoutSurface(t *testing.T) {
	a := New()
	a.Initialize(nil, fixedViewport(100, 100))
	assert.False(t, a.RenderFrame())
	assert.Zero(t, a.Frames())
}

func TestRenderFrameOrder(t *testing.T) {
	a, rec := newMounted(t, 400, 300, WithParticleCount(3))
	a.SetPointer(120, 80)
	require.True(t, a.RenderFrame())

	ops := rec.Ops()
	require.Len(t, ops, 2+3+2)

	sky := ops[0]
	assert.Equal(t, canvas.OpFillRect, sky.Kind)
	assert.Equal(t, canvas.Rect{W: 400, H: 300}, sky.Rect)
	assert.Equal(t, Sky, sky.Paint.Color)
	assert.Nil(t, sky.Paint.Gradient)

	glow := ops[1]
	assert.Equal(t, canvas.OpFillRect, glow.Kind)
	assert.InDelta(t, 180, glow.Rect.Y, 1e-9)
	assert.InDelta(t, 120, glow.Rect.H, 1e-9)
	require.NotNil(t, glow.Paint.Gradient)
	assert.Equal(t, Glow, glow.Paint.At(0, 300))
	assert.Zero(t, glow.Paint.At(0, 180).A)

	for _, op := range ops[2:5] {
		assert.Equal(t, canvas.OpFillCircle, op.Kind)
		c := op.Paint.Color
		assert.True(t, c == BrightStar || c == DimStar, "unexpected star color %v", c)
	}

	tail := ops[5]
	assert.Equal(t, canvas.OpStrokeLine, tail.Kind)
	assert.InDelta(t, 120, tail.DX0, 1e-9)
	assert.InDelta(t, 80, tail.DY0, 1e-9)
	// Rotated by 45 degrees the tail points straight up from the pointer.
	assert.InDelta(t, 120, tail.DX1, 1e-9)
	assert.InDelta(t, 80-cursorTail*math.Sqrt2, tail.DY1, 1e-9)
	require.NotNil(t, tail.Stroke.Paint.Gradient)
	assert.Equal(t, CursorHead, tail.Stroke.Paint.At(0, 0))
	assert.Equal(t, CursorTail.A, tail.Stroke.Paint.At(-cursorTail, -cursorTail).A)

	point := ops[6]
	assert.Equal(t, canvas.OpFillCircle, point.Kind)
	assert.Equal(t, float64(cursorRadius), point.Radius)
	assert.InDelta(t, 120, point.DX0, 1e-9)
	assert.InDelta(t, 80, point.DY0, 1e-9)

	assert.Zero(t, rec.Depth(), "transform stack must be balanced")
	assert.Equal(t, uint64(1), a.Frames())
}

func TestParticlesStayInBounds(t *testing.T) {
	a, _ := newMounted(t, 200, 100, WithMaxSpeed(7))
	for i := 0; i < 500; i++ {
		require.True(t, a.RenderFrame())
		for _, p := range a.Particles() {
			require.GreaterOrEqual(t, p.Y, 0.0)
			require.LessOrEqual(t, p.Y, 100.0)
		}
	}
}

func TestParticleWrapsToTop(t *testing.T) {
	a, _ := newMounted(t, 200, 100, WithParticleCount(1))
	a.particles[0] = Particle{X: 50, Y: 99.9, Size: 1, Speed: 0.25}

	require.True(t, a.RenderFrame())
	p := a.Particles()[0]
	assert.Zero(t, p.Y)
	assert.GreaterOrEqual(t, p.X, 0.0)
	assert.Less(t, p.X, 200.0)

	require.True(t, a.RenderFrame())
	assert.InDelta(t, 0.25, a.Particles()[0].Y, 1e-9)
}

func TestParticleOnBoundaryDoesNotWrap(t *testing.T) {
	a, _ := newMounted(t, 200, 100, WithParticleCount(1))
	a.particles[0] = Particle{X: 50, Y: 100, Size: 1, Speed: 0}

	require.True(t, a.RenderFrame())
	assert.Equal(t, Particle{X: 50, Y: 100, Size: 1, Speed: 0}, a.Particles()[0])
}

func TestResizeKeepsParticles(t *testing.T) {
	w, h := 800.0, 600.0
	a := New(WithRand(rand.New(rand.NewSource(7))))
	rec := canvas.NewRecorder(0, 0)
	a.Initialize(rec, func() (float64, float64) { return w, h })

	before := a.Particles()
	w, h = 300, 200
	a.Resize()

	gotW, gotH := a.Size()
	assert.Equal(t, 300.0, gotW)
	assert.Equal(t, 200.0, gotH)
	rw, rh := rec.Size()
	assert.Equal(t, 300.0, rw)
	assert.Equal(t, 200.0, rh)
	assert.Equal(t, before, a.Particles(), "resize must not rescale or regenerate particles")

	rec.Reset()
	require.True(t, a.RenderFrame())
	assert.Equal(t, canvas.Rect{W: 300, H: 200}, rec.Ops()[0].Rect)
	for _, p := range a.Particles() {
		assert.LessOrEqual(t, p.Y, 200.0)
	}
}

func TestResizeBeforeInitialize(t *testing.T) {
	a := New()
	assert.NotPanics(t, a.Resize)
}

func TestFlickerIsEvenOdds(t *testing.T) {
	a, rec := newMounted(t, 100, 100)
	const frames = 40
	for i := 0; i < frames; i++ {
		require.True(t, a.RenderFrame())
	}

	bright, dim := 0, 0
	for _, op := range rec.Ops() {
		if op.Kind != canvas.OpFillCircle || op.Radius == cursorRadius {
			continue
		}
		switch op.Paint.Color {
		case BrightStar:
			bright++
		case DimStar:
			dim++
		}
	}
	total := float64(bright + dim)
	require.Equal(t, float64(frames*DefaultParticleCount), total)
	assert.InDelta(t, 0.5, float64(bright)/total, 0.03)
}

func TestFlickerIsReproducible(t *testing.T) {
	colors := func() []canvas.Color {
		a, rec := newMounted(t, 100, 100, WithParticleCount(16))
		a.RenderFrame()
		var out []canvas.Color
		for _, op := range rec.Ops() {
			if op.Kind == canvas.OpFillCircle {
				out = append(out, op.Paint.Color)
			}
		}
		return out
	}
	assert.Equal(t, colors(), colors())
}

func TestTeardown(t *testing.T) {
	a, rec := newMounted(t, 100, 100)
	require.True(t, a.RenderFrame())
	n := len(rec.Ops())

	a.Teardown()
	a.Teardown()
	assert.True(t, a.Stopped())
	assert.False(t, a.RenderFrame())
	assert.Len(t, rec.Ops(), n, "no drawing after teardown")
	assert.Equal(t, uint64(1), a.Frames())
}

func TestPointer(t *testing.T) {
	a := New()
	assert.Equal(t, Pointer{}, a.Pointer())
	a.SetPointer(3, 4)
	assert.Equal(t, Pointer{X: 3, Y: 4}, a.Pointer())
}

func TestOverlayDrawnLast(t *testing.T) {
	var gotW, gotH float64
	a, rec := newMounted(t, 50, 40, WithParticleCount(0), WithOverlay(func(s Surface, w, h float64) {
		gotW, gotH = w, h
		s.FillRect(canvas.Rect{W: 1, H: 1}, canvas.Solid(canvas.White))
	}))
	require.True(t, a.RenderFrame())

	ops := rec.Ops()
	assert.Equal(t, canvas.White, ops[len(ops)-1].Paint.Color)
	assert.Equal(t, 50.0, gotW)
	assert.Equal(t, 40.0, gotH)
}

func TestFrameObserver(t *testing.T) {
	var seen []uint64
	a, _ := newMounted(t, 10, 10, WithFrameObserver(func(frame uint64, took time.Duration) {
		seen = append(seen, frame)
		assert.GreaterOrEqual(t, took, time.Duration(0))
	}))
	for i := 0; i < 3; i++ {
		require.True(t, a.RenderFrame())
	}
	a.Teardown()
	assert.False(t, a.RenderFrame())
	assert.Equal(t, []uint64{1, 2, 3}, seen)
}

func TestRun(t *testing.T) {
	t.Run("one frame per tick until ticks close", func(t *testing.T) {
		a, _ := newMounted(t, 10, 10)
		ticks := make(chan time.Time, 5)
		for i := 0; i < 5; i++ {
			ticks <- time.Now()
		}
		close(ticks)

		require.NoError(t, a.Run(context.Background(), ticks))
		assert.Equal(t, uint64(5), a.Frames())
	})

	t.Run("stops on teardown", func(t *testing.T) {
		a, _ := newMounted(t, 10, 10)
		ticks := make(chan time.Time)
		done := make(chan error, 1)
		go func() { done <- a.Run(context.Background(), ticks) }()

		ticks <- time.Now()
		a.Teardown()
		select {
		case ticks <- time.Now():
		case <-time.After(time.Second):
		}

		select {
		case err := <-done:
			require.NoError(t, err)
		case <-time.After(time.Second):
			t.Fatal("Run did not return after teardown")
		}
	})

	t.Run("stops on context cancel", func(t *testing.T) {
		a, _ := newMounted(t, 10, 10)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := a.Run(ctx, make(chan time.Time))
		require.ErrorIs(t, err, context.Canceled)
		assert.Zero(t, a.Frames())
	})

	t.Run("unmounted animator returns at once", func(t *testing.T) {
		ticks := make(chan time.Time, 1)
		ticks <- time.Now()
		require.NoError(t, New().Run(context.Background(), ticks))
	})
}
