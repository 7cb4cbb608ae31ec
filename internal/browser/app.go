//go:build js && wasm

package browser

import (
	"strconv"
	"syscall/js"

	"github.com/rs/zerolog"

	"github.com/dhruvywuvy/ursa-minor/internal/constellation"
	"github.com/dhruvywuvy/ursa-minor/internal/starfield"
)

const (
	canvasID      = "starfield"
	fallbackClass = "no-wasm"
	enteringClass = "entering"
)

type listener struct {
	target js.Value
	event  string
	fn     js.Func
}

// App is one mount of the scene on the current document.
type App struct {
	animator *starfield.Animator
	layer    *constellation.Layer
	log      zerolog.Logger

	win js.Value
	doc js.Value

	listeners   []listener
	frame       js.Func
	frameID     js.Value
	unsubscribe func()
	done        chan struct{}
	mounted     bool
}

// New returns an App that drives animator and layer once mounted.
func New(animator *starfield.Animator, layer *constellation.Layer, log zerolog.Logger) *App {
	return &App{
		animator: animator,
		layer:    layer,
		log:      log,
		win:      js.Global(),
		doc:      js.Global().Get("document"),
		done:     make(chan struct{}),
	}
}

// Mount attaches the animator to the page canvas, starts the frame chain
// and wires hover events to the layer. Without a usable canvas the hover
// layer is still wired and ErrNoCanvas is returned.
func (a *App) Mount() error {
	if a.mounted {
		return ErrMounted
	}
	a.mounted = true

	a.mountLayer()
	a.on(a.win, "pagehide", func(js.Value) { a.Teardown() })

	cv, err := NewCanvas(a.doc.Call("getElementById", canvasID))
	if err != nil {
		a.log.Info().Msg("no starfield canvas, background disabled")
		return err
	}

	a.animator.Initialize(cv, a.viewport)
	a.on(a.win, "resize", func(js.Value) { a.animator.Resize() })
	a.on(a.win, "mousemove", func(ev js.Value) {
		a.animator.SetPointer(ev.Get("clientX").Float(), ev.Get("clientY").Float())
	})

	a.frame = js.FuncOf(func(js.Value, []js.Value) any {
		if a.animator.RenderFrame() {
			a.frameID = a.win.Call("requestAnimationFrame", a.frame)
		}
		return nil
	})
	a.frameID = a.win.Call("requestAnimationFrame", a.frame)

	a.doc.Get("body").Get("classList").Call("remove", fallbackClass)
	a.log.Info().Msg("starfield mounted")
	return nil
}

func (a *App) viewport() (float64, float64) {
	w, h := a.win.Get("innerWidth"), a.win.Get("innerHeight")
	if w.Type() != js.TypeNumber || h.Type() != js.TypeNumber {
		return 0, 0
	}
	return w.Float(), h.Float()
}

func (a *App) mountLayer() {
	stars := a.doc.Call("querySelectorAll", "[data-star]")
	for i := 0; i < stars.Length(); i++ {
		el := stars.Index(i)
		index, err := strconv.Atoi(el.Get("dataset").Get("star").String())
		if err != nil {
			continue
		}
		a.on(el, "mouseenter", func(js.Value) {
			if err := a.layer.OnHoverStart(index); err != nil {
				a.log.Warn().Err(err).Msg("hover start")
			}
		})
		a.on(el, "mouseleave", func(js.Value) {
			if err := a.layer.OnHoverEnd(index); err != nil {
				a.log.Warn().Err(err).Msg("hover end")
			}
		})
	}
	a.unsubscribe = a.layer.Subscribe(a.showPanel)
}

// showPanel makes the hovered star's card the only visible card.
func (a *App) showPanel(h constellation.Hover) {
	panels := a.doc.Call("querySelectorAll", "[data-panel]")
	want, active := h.Get()
	for i := 0; i < panels.Length(); i++ {
		el := panels.Index(i)
		index, err := strconv.Atoi(el.Get("dataset").Get("panel").String())
		visible := err == nil && active && index == want
		el.Set("hidden", !visible)
		if visible {
			el.Get("classList").Call("add", enteringClass)
		} else {
			el.Get("classList").Call("remove", enteringClass)
		}
	}
}

func (a *App) on(target js.Value, event string, fn func(ev js.Value)) {
	cb := js.FuncOf(func(_ js.Value, args []js.Value) any {
		ev := js.Undefined()
		if len(args) > 0 {
			ev = args[0]
		}
		fn(ev)
		return nil
	})
	target.Call("addEventListener", event, cb)
	a.listeners = append(a.listeners, listener{target: target, event: event, fn: cb})
}

// Teardown stops the frame chain, removes every listener and releases the
// Go callbacks. Done is closed afterwards.
func (a *App) Teardown() {
	select {
	case <-a.done:
		return
	default:
	}

	a.animator.Teardown()
	if a.frameID.Truthy() {
		a.win.Call("cancelAnimationFrame", a.frameID)
	}
	if a.unsubscribe != nil {
		a.unsubscribe()
	}
	for _, l := range a.listeners {
		l.target.Call("removeEventListener", l.event, l.fn)
		l.fn.Release()
	}
	a.listeners = nil
	if a.frame.Truthy() {
		a.frame.Release()
	}

	a.log.Info().Uint64("frames", a.animator.Frames()).Msg("starfield unmounted")
	close(a.done)
}

// Done is closed after Teardown.
func (a *App) Done() <-chan struct{} {
	return a.done
}
