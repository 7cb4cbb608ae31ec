//go:build js && wasm

package browser

import (
	"math"
	"strconv"
	"syscall/js"

	"github.com/dhruvywuvy/ursa-minor/internal/canvas"
)

// Canvas draws on a CanvasRenderingContext2D.
type Canvas struct {
	el  js.Value
	ctx js.Value

	w, h float64
}

// NewCanvas wraps the 2D context of el. It returns ErrNoCanvas when el is
// not a canvas element or has no 2D context.
func NewCanvas(el js.Value) (*Canvas, error) {
	if !el.Truthy() || el.Get("getContext").Type() != js.TypeFunction {
		return nil, ErrNoCanvas
	}
	ctx := el.Call("getContext", "2d")
	if !ctx.Truthy() {
		return nil, ErrNoCanvas
	}
	return &Canvas{el: el, ctx: ctx, w: el.Get("width").Float(), h: el.Get("height").Float()}, nil
}

func (c *Canvas) Size() (float64, float64) { return c.w, c.h }

// Resize sets the backing store size of the canvas element, which also
// clears it and resets the context state.
func (c *Canvas) Resize(w, h float64) {
	c.w, c.h = w, h
	c.el.Set("width", int(w))
	c.el.Set("height", int(h))
}

func (c *Canvas) FillRect(r canvas.Rect, p canvas.Paint) {
	c.ctx.Set("fillStyle", c.style(p))
	c.ctx.Call("fillRect", r.X, r.Y, r.W, r.H)
}

func (c *Canvas) FillCircle(cx, cy, radius float64, p canvas.Paint) {
	if radius <= 0 {
		return
	}
	c.ctx.Call("beginPath")
	c.ctx.Call("arc", cx, cy, radius, 0, 2*math.Pi)
	c.ctx.Set("fillStyle", c.style(p))
	c.ctx.Call("fill")
}

func (c *Canvas) StrokeLine(x0, y0, x1, y1 float64, s canvas.Stroke) {
	if s.Blur > 0 {
		c.ctx.Call("save")
		c.ctx.Set("filter", "blur("+strconv.FormatFloat(s.Blur, 'f', -1, 64)+"px)")
		defer c.ctx.Call("restore")
	}
	c.ctx.Call("beginPath")
	c.ctx.Call("moveTo", x0, y0)
	c.ctx.Call("lineTo", x1, y1)
	c.ctx.Set("lineWidth", s.Width)
	c.ctx.Set("strokeStyle", c.style(s.Paint))
	c.ctx.Call("stroke")
}

func (c *Canvas) Save()                    { c.ctx.Call("save") }
func (c *Canvas) Restore()                 { c.ctx.Call("restore") }
func (c *Canvas) Translate(dx, dy float64) { c.ctx.Call("translate", dx, dy) }
func (c *Canvas) Rotate(rad float64)       { c.ctx.Call("rotate", rad) }

func (c *Canvas) style(p canvas.Paint) any {
	g := p.Gradient
	if g == nil {
		return p.Color.CSS()
	}
	grad := c.ctx.Call("createLinearGradient", g.X0, g.Y0, g.X1, g.Y1)
	for _, s := range g.Stops {
		grad.Call("addColorStop", s.Offset, s.Color.CSS())
	}
	return grad
}
