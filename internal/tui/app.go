// Package tui renders the portfolio scene in a terminal: the starfield in
// half-block sub-pixels, the constellation on top, and the hovered star's
// card as a dotted box. Mouse motion stands in for the browser pointer.
package tui

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/dhruvywuvy/ursa-minor/internal/constellation"
	"github.com/dhruvywuvy/ursa-minor/internal/portfolio"
	"github.com/dhruvywuvy/ursa-minor/internal/starfield"
)

const defaultFrameInterval = 16 * time.Millisecond // ~60 FPS

// App drives one terminal session.
type App struct {
	screen   tcell.Screen
	surface  *Surface
	animator *starfield.Animator
	layer    *constellation.Layer
	profile  portfolio.Profile
	socials  []portfolio.SocialLink
	log      zerolog.Logger

	frameInterval time.Duration
	seed          int64
	start         time.Time
	lastFrame     time.Time

	mu    sync.Mutex
	under int // star under the pointer, -1 for none
	quit  context.CancelFunc
}

// Option configures an App.
type Option func(*App)

// WithLogger sets the logger. The terminal is the display, so it should
// write to a file or io.Discard.
func WithLogger(log zerolog.Logger) Option {
	return func(a *App) { a.log = log }
}

// WithFrameInterval sets the time between frames.
func WithFrameInterval(d time.Duration) Option {
	return func(a *App) {
		if d > 0 {
			a.frameInterval = d
		}
	}
}

// WithSeed makes the starfield reproducible. Zero seeds from the clock.
func WithSeed(seed int64) Option {
	return func(a *App) { a.seed = seed }
}

// New mounts the scene on an initialized screen. The caller owns the
// screen and finalizes it after Run returns.
func New(screen tcell.Screen, opts ...Option) *App {
	a := &App{
		screen:        screen,
		profile:       portfolio.DefaultProfile(),
		socials:       portfolio.Socials(),
		log:           zerolog.Nop(),
		frameInterval: defaultFrameInterval,
		under:         -1,
	}
	for _, opt := range opts {
		opt(a)
	}
	seed := a.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	a.layer = constellation.New(portfolio.Stars(), constellation.WithLogger(a.log))
	a.surface = NewSurface(0, 0)
	a.animator = starfield.New(
		starfield.WithRand(rand.New(rand.NewSource(seed))),
		starfield.WithLogger(a.log),
		starfield.WithOverlay(a.drawOverlay),
		starfield.WithFrameObserver(a.observeFrame),
	)
	a.animator.Initialize(a.surface, a.viewport)
	a.start = time.Now()
	a.lastFrame = a.start
	return a
}

func (a *App) viewport() (float64, float64) {
	cols, rows := a.screen.Size()
	return float64(cols), float64(2 * rows)
}

// Run renders frames until ctx is cancelled or the user quits. The
// animator is torn down on return.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	a.mu.Lock()
	a.quit = cancel
	a.mu.Unlock()
	defer a.animator.Teardown()

	go a.pollEvents(ctx)

	ticker := time.NewTicker(a.frameInterval)
	defer ticker.Stop()

	err := a.animator.Run(ctx, ticker.C)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func (a *App) pollEvents(ctx context.Context) {
	for ctx.Err() == nil {
		ev := a.screen.PollEvent()
		if ev == nil {
			a.stop()
			return
		}
		if !a.HandleEvent(ev) {
			a.stop()
			return
		}
	}
}

func (a *App) stop() {
	a.mu.Lock()
	quit := a.quit
	a.mu.Unlock()
	a.animator.Teardown()
	if quit != nil {
		quit()
	}
}

// HandleEvent applies one terminal event. It returns false when the user
// asked to quit.
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q')) {
			return false
		}

	case *tcell.EventMouse:
		x, y := ev.Position()
		a.pointerMoved(x, y)

	case *tcell.EventResize:
		a.animator.Resize()
		a.screen.Sync()
		a.log.Debug().Float64("width", a.surfaceWidth()).Msg("resized")
	}
	return true
}

func (a *App) surfaceWidth() float64 {
	w, _ := a.animator.Size()
	return w
}

// pointerMoved moves the cursor glyph and emulates enter and leave events
// on the stars. A star's card counts as part of the star while visible.
func (a *App) pointerMoved(x, y int) {
	px, py := subPixel(x, y)
	a.animator.SetPointer(px, py)

	a.mu.Lock()
	defer a.mu.Unlock()

	next := a.starUnder(x, y)
	if next == a.under {
		return
	}
	if a.under >= 0 {
		if err := a.layer.OnHoverEnd(a.under); err != nil {
			a.log.Warn().Err(err).Msg("hover end")
		}
	}
	if next >= 0 {
		if err := a.layer.OnHoverStart(next); err != nil {
			a.log.Warn().Err(err).Msg("hover start")
		}
	}
	a.under = next
}

func (a *App) starUnder(x, y int) int {
	cols, rows := a.screen.Size()
	if h, ok := a.layer.Hover().Get(); ok {
		if cardBox(cols, rows, a.layer.PanelFor(h)).contains(x, y) {
			return h
		}
	}
	px, py := subPixel(x, y)
	container := sceneContainer(float64(cols), float64(2*rows))
	if i, ok := a.layer.StarAt(container, px, py, hitRadius); ok {
		return i
	}
	return -1
}

func (a *App) observeFrame(frame uint64, took time.Duration) {
	if took > a.frameInterval {
		a.log.Debug().Uint64("frame", frame).Dur("took", took).Msg("slow frame")
	}
}
