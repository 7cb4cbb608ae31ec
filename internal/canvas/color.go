package canvas

import (
	"fmt"
	"strconv"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is an 8-bit RGB color with a straight alpha in [0, 1].
type Color struct {
	R, G, B uint8
	A       float64
}

var (
	Black       = RGB(0, 0, 0)
	White       = RGB(255, 255, 255)
	Transparent = RGBA(0, 0, 0, 0)
)

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// RGBA returns a color with the given alpha, clamped to [0, 1].
func RGBA(r, g, b uint8, a float64) Color {
	return Color{R: r, G: g, B: b, A: clamp01(a)}
}

// Hex parses "#rrggbb" into an opaque color.
func Hex(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	return fromColorful(c, 1), nil
}

// MustHex is Hex for package level literals.
func MustHex(s string) Color {
	c, err := Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// WithAlpha returns c with its alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = clamp01(a)
	return c
}

// CSS formats c as a CSS rgba() value.
func (c Color) CSS() string {
	return "rgba(" + strconv.Itoa(int(c.R)) + ", " + strconv.Itoa(int(c.G)) + ", " +
		strconv.Itoa(int(c.B)) + ", " + strconv.FormatFloat(c.A, 'g', 4, 64) + ")"
}

// Over composites c on top of dst and returns an opaque result.
func (c Color) Over(dst Color) Color {
	if c.A >= 1 {
		return Color{R: c.R, G: c.G, B: c.B, A: 1}
	}
	if c.A <= 0 {
		return Color{R: dst.R, G: dst.G, B: dst.B, A: 1}
	}
	blended := dst.colorful().BlendRgb(c.colorful(), c.A)
	return fromColorful(blended, 1)
}

// Lerp interpolates between a and b in RGB space, t in [0, 1].
func Lerp(a, b Color, t float64) Color {
	t = clamp01(t)
	mixed := a.colorful().BlendRgb(b.colorful(), t)
	return fromColorful(mixed, a.A+(b.A-a.A)*t)
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

func fromColorful(c colorful.Color, a float64) Color {
	r, g, b := c.Clamped().RGB255()
	return Color{R: r, G: g, B: b, A: clamp01(a)}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
