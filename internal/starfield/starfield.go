// Package starfield renders the animated backdrop of the page: drifting,
// flickering background stars over a black sky, a blue glow along the
// bottom edge and a shooting-star cursor that follows the pointer.
//
// An Animator owns all of its state (particles, surface size, pointer) for
// the duration of a mount. Hosts forward viewport and pointer events into it
// and call RenderFrame once per display refresh until RenderFrame reports
// that the animator was torn down.
package starfield

import (
	"context"
	"math"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/dhruvywuvy/ursa-minor/internal/canvas"
)

const (
	cursorTail   = 20
	cursorRadius = 2
	cursorAngle  = math.Pi / 4
	flickerOdds  = 0.5
)

// Scene colors: sky, bottom glow, the two flicker shades of a particle and
// the cursor glyph.
var (
	Sky        = canvas.Black
	Glow       = canvas.RGBA(0, 191, 255, 0.15)
	BrightStar = canvas.MustHex("#FFFFFF")
	DimStar    = canvas.MustHex("#333333")

	CursorHead  = canvas.RGBA(248, 248, 248, 0.8)
	CursorTail  = canvas.RGBA(16, 156, 226, 0)
	CursorPoint = canvas.Black
)

// Surface is the drawing target of the animator. Resize matches the
// surface to the host viewport.
type Surface interface {
	canvas.Canvas
	Resize(w, h float64)
}

// Viewport reports the current host viewport size. Hosts that cannot
// measure the viewport return zeros.
type Viewport func() (w, h float64)

// Particle is one background star.
type Particle struct {
	X, Y  float64
	Size  float64
	Speed float64
}

// Pointer is the last known pointer position in surface pixels.
type Pointer struct {
	X, Y float64
}

// Animator drives the background animation for one mount.
type Animator struct {
	opts options

	mu        sync.Mutex
	surface   Surface
	viewport  Viewport
	width     float64
	height    float64
	particles []Particle
	frames    uint64

	pointer atomic.Pointer[Pointer]
	stopped atomic.Bool
}

// New returns an animator that has not been mounted yet.
func New(opts ...Option) *Animator {
	o := options{
		count:            DefaultParticleCount,
		maxSize:          DefaultMaxSize,
		maxSpeed:         DefaultMaxSpeed,
		gradientFraction: DefaultGradientFraction,
		log:              zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	a := &Animator{opts: o}
	a.pointer.Store(&Pointer{})
	return a
}

// Initialize sizes the surface to the viewport and generates the particle
// set. A nil surface leaves the animator unmounted; RenderFrame then
// reports false and the host stops scheduling frames.
func (a *Animator) Initialize(surface Surface, viewport Viewport) {
	if surface == nil {
		a.opts.log.Debug().Msg("no drawing surface, background disabled")
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	a.surface = surface
	a.viewport = viewport
	a.resizeLocked()

	rng := a.opts.rng
	a.particles = make([]Particle, a.opts.count)
	for i := range a.particles {
		a.particles[i] = Particle{
			X:     rng.Float64() * a.width,
			Y:     rng.Float64() * a.height,
			Size:  rng.Float64() * a.opts.maxSize,
			Speed: rng.Float64() * a.opts.maxSpeed,
		}
	}
	a.opts.log.Debug().
		Int("particles", len(a.particles)).
		Float64("width", a.width).
		Float64("height", a.height).
		Msg("starfield initialized")
}

// Resize re-measures the viewport and resizes the surface. Particles keep
// their positions; those now outside the surface wrap on their next move.
func (a *Animator) Resize() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.surface == nil {
		return
	}
	a.resizeLocked()
}

func (a *Animator) resizeLocked() {
	var w, h float64
	if a.viewport != nil {
		w, h = a.viewport()
	}
	a.width, a.height = sanitize(w), sanitize(h)
	a.surface.Resize(a.width, a.height)
}

func sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// SetPointer records the latest pointer position. Safe to call from any
// goroutine.
func (a *Animator) SetPointer(x, y float64) {
	a.pointer.Store(&Pointer{X: x, Y: y})
}

// Pointer returns the latest pointer position.
func (a *Animator) Pointer() Pointer {
	return *a.pointer.Load()
}

// RenderFrame draws one frame and advances every particle. It returns false
// once the animator is torn down or was never mounted, which ends the
// host's frame chain.
func (a *Animator) RenderFrame() bool {
	if a.stopped.Load() {
		return false
	}

	start := time.Now()
	frame, ok := a.draw()
	if ok && a.opts.observer != nil {
		a.opts.observer(frame, time.Since(start))
	}
	return ok
}

func (a *Animator) draw() (uint64, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	s := a.surface
	if s == nil {
		return 0, false
	}
	w, h := a.width, a.height
	ptr := a.Pointer()

	s.FillRect(canvas.Rect{W: w, H: h}, canvas.Solid(Sky))

	glow := h * a.opts.gradientFraction
	s.FillRect(canvas.Rect{Y: h - glow, W: w, H: glow}, canvas.Linear(0, h, 0, h-glow,
		canvas.Stop{Offset: 0, Color: Glow},
		canvas.Stop{Offset: 1, Color: canvas.Transparent},
	))

	rng := a.opts.rng
	for i := range a.particles {
		p := &a.particles[i]
		color := DimStar
		if rng.Float64() > flickerOdds {
			color = BrightStar
		}
		s.FillCircle(p.X, p.Y, p.Size, canvas.Solid(color))

		p.Y += p.Speed
		if p.Y > h {
			p.Y = 0
			p.X = rng.Float64() * w
		}
	}

	s.Save()
	s.Translate(ptr.X, ptr.Y)
	s.Rotate(cursorAngle)
	s.StrokeLine(0, 0, -cursorTail, -cursorTail, canvas.Stroke{
		Width: 1,
		Paint: canvas.Linear(0, 0, -cursorTail, -cursorTail,
			canvas.Stop{Offset: 0, Color: CursorHead},
			canvas.Stop{Offset: 1, Color: CursorTail},
		),
	})
	s.FillCircle(0, 0, cursorRadius, canvas.Solid(CursorPoint))
	s.Restore()

	if a.opts.overlay != nil {
		a.opts.overlay(s, w, h)
	}

	a.frames++
	return a.frames, true
}

// Run renders one frame per tick until ctx is done, ticks is closed or the
// animator is torn down. Cancellation is checked before every frame.
func (a *Animator) Run(ctx context.Context, ticks <-chan time.Time) error {
	for {
		if a.stopped.Load() {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case _, ok := <-ticks:
			if !ok || !a.RenderFrame() {
				return nil
			}
		}
	}
}

// Teardown stops the animation. Further RenderFrame calls draw nothing and
// return false. Calling Teardown more than once is harmless.
func (a *Animator) Teardown() {
	if a.stopped.Swap(true) {
		return
	}
	a.mu.Lock()
	frames := a.frames
	a.mu.Unlock()
	a.opts.log.Debug().Uint64("frames", frames).Msg("starfield torn down")
}

// Stopped reports whether Teardown was called.
func (a *Animator) Stopped() bool {
	return a.stopped.Load()
}

// Size returns the current surface size.
func (a *Animator) Size() (w, h float64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.width, a.height
}

// Particles returns a snapshot of the particle set.
func (a *Animator) Particles() []Particle {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]Particle, len(a.particles))
	copy(out, a.particles)
	return out
}

// Frames returns how many frames were rendered.
func (a *Animator) Frames() uint64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.frames
}
