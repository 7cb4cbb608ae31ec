// Package constellation is the interactive part of the page: a fixed set
// of stars joined by glowing lines, each revealing a career card while the
// pointer rests on it.
package constellation

import (
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/dhruvywuvy/ursa-minor/internal/canvas"
	"github.com/dhruvywuvy/ursa-minor/internal/portfolio"
)

// Container size of the star layout, in pixels. Star positions are
// percentages of this box.
const (
	ContainerWidth  = 800
	ContainerHeight = 400
)

// EnterDuration is how long a card takes to grow to full size.
const EnterDuration = 200 * time.Millisecond

// Hover is the hovered star, if any. The zero value means no star.
type Hover struct {
	Index  int
	Active bool
}

// None is the state with no hovered star.
var None = Hover{}

// Get returns the hovered index and whether a star is hovered.
func (h Hover) Get() (int, bool) {
	return h.Index, h.Active
}

func (h Hover) String() string {
	if !h.Active {
		return "none"
	}
	return fmt.Sprintf("star %d", h.Index)
}

// Panel is the detail card of the hovered star.
type Panel struct {
	Index      int
	Experience portfolio.Experience
	Logo       string
	Separator  string
	LinkLabel  string
	LinkRel    string
	Anchor     portfolio.Position

	// Scale and Opacity follow the enter transition, both in [0, 1].
	Scale   float64
	Opacity float64
}

// Layer holds the constellation and its hover state. Methods are safe for
// concurrent use.
type Layer struct {
	stars []portfolio.Star
	log   zerolog.Logger

	mu        sync.Mutex
	hover     Hover
	reveal    time.Duration
	listeners map[int]func(Hover)
	nextID    int
}

// Option configures a Layer.
type Option func(*Layer)

// WithLogger sets the logger.
func WithLogger(log zerolog.Logger) Option {
	return func(l *Layer) { l.log = log }
}

// New returns a layer over stars with nothing hovered.
func New(stars []portfolio.Star, opts ...Option) *Layer {
	l := &Layer{
		stars:     append([]portfolio.Star(nil), stars...),
		log:       zerolog.Nop(),
		listeners: make(map[int]func(Hover)),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Stars returns the stars of the layer.
func (l *Layer) Stars() []portfolio.Star {
	return append([]portfolio.Star(nil), l.stars...)
}

// Len is the number of stars.
func (l *Layer) Len() int {
	return len(l.stars)
}

// Hover returns the current hover state.
func (l *Layer) Hover() Hover {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.hover
}

// OnHoverStart makes index the hovered star and restarts the card
// transition. Hovering a star while another is hovered replaces it.
func (l *Layer) OnHoverStart(index int) error {
	if err := l.check(index); err != nil {
		return err
	}

	l.mu.Lock()
	if l.hover.Active && l.hover.Index == index {
		l.mu.Unlock()
		return nil
	}
	l.hover = Hover{Index: index, Active: true}
	l.reveal = 0
	state := l.hover
	listeners := l.snapshotLocked()
	l.mu.Unlock()

	l.log.Debug().Int("star", index).Msg("hover start")
	notify(listeners, state)
	return nil
}

// OnHoverEnd clears the hover state if index is the hovered star. An end
// event for any other star is stale and ignored, so the last star entered
// keeps its card.
func (l *Layer) OnHoverEnd(index int) error {
	if err := l.check(index); err != nil {
		return err
	}

	l.mu.Lock()
	if !l.hover.Active || l.hover.Index != index {
		l.mu.Unlock()
		return nil
	}
	l.hover = None
	l.reveal = 0
	listeners := l.snapshotLocked()
	l.mu.Unlock()

	l.log.Debug().Int("star", index).Msg("hover end")
	notify(listeners, None)
	return nil
}

func (l *Layer) check(index int) error {
	if index < 0 || index >= len(l.stars) {
		return fmt.Errorf("star %d of %d: %w", index, len(l.stars), ErrUnknownStar)
	}
	return nil
}

// Subscribe registers fn to be called after every hover change. The
// returned function removes the subscription.
func (l *Layer) Subscribe(fn func(Hover)) (cancel func()) {
	l.mu.Lock()
	id := l.nextID
	l.nextID++
	l.listeners[id] = fn
	l.mu.Unlock()

	return func() {
		l.mu.Lock()
		delete(l.listeners, id)
		l.mu.Unlock()
	}
}

func (l *Layer) snapshotLocked() []func(Hover) {
	out := make([]func(Hover), 0, len(l.listeners))
	for id := 0; id < l.nextID; id++ {
		if fn, ok := l.listeners[id]; ok {
			out = append(out, fn)
		}
	}
	return out
}

func notify(listeners []func(Hover), h Hover) {
	for _, fn := range listeners {
		fn(h)
	}
}

// Advance moves the card transition forward by dt.
func (l *Layer) Advance(dt time.Duration) {
	if dt <= 0 {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.hover.Active {
		return
	}
	l.reveal += dt
	if l.reveal > EnterDuration {
		l.reveal = EnterDuration
	}
}

// Panel returns the card of the hovered star. At most one card is visible.
func (l *Layer) Panel() (Panel, bool) {
	l.mu.Lock()
	h, reveal := l.hover, l.reveal
	l.mu.Unlock()

	if !h.Active {
		return Panel{}, false
	}
	p := l.PanelFor(h.Index)
	progress := easeOut(float64(reveal) / float64(EnterDuration))
	p.Scale, p.Opacity = progress, progress
	return p, true
}

// PanelFor returns the fully revealed card of a star, regardless of hover
// state. Hosts that pre-render every card use it.
func (l *Layer) PanelFor(index int) Panel {
	s := l.stars[index]
	return Panel{
		Index:      index,
		Experience: s.Experience,
		Logo:       s.Experience.LogoOrPlaceholder(),
		Separator:  "@",
		LinkLabel:  portfolio.LinkLabel,
		LinkRel:    portfolio.LinkRel,
		Anchor:     s.Position,
		Scale:      1,
		Opacity:    1,
	}
}

// StarAt returns the star whose marker in container is nearest to (x, y)
// within radius.
func (l *Layer) StarAt(container canvas.Rect, x, y, radius float64) (int, bool) {
	best, bestD2 := -1, radius*radius
	for i, s := range l.stars {
		sx, sy := Point(container, s.Position)
		dx, dy := sx-x, sy-y
		if d2 := dx*dx + dy*dy; d2 <= bestD2 {
			best, bestD2 = i, d2
		}
	}
	return best, best >= 0
}

// Point maps a star position to a point inside container.
func Point(container canvas.Rect, p portfolio.Position) (x, y float64) {
	return container.X + container.W*p.X/100, container.Y + container.H*p.Y/100
}

// Container centers the fixed-size star container in a viewport.
func Container(viewW, viewH float64) canvas.Rect {
	return canvas.Rect{
		X: (viewW - ContainerWidth) / 2,
		Y: (viewH - ContainerHeight) / 2,
		W: ContainerWidth,
		H: ContainerHeight,
	}
}

func easeOut(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	u := 1 - t
	return 1 - u*u*u
}
