package starfield

import (
	"math/rand"
	"time"

	"github.com/rs/zerolog"
)

const (
	DefaultParticleCount    = 239
	DefaultMaxSize          = 1.5
	DefaultMaxSpeed         = 0.3
	DefaultGradientFraction = 0.4
)

type options struct {
	count            int
	maxSize          float64
	maxSpeed         float64
	gradientFraction float64
	rng              *rand.Rand
	log              zerolog.Logger
	overlay          func(c Surface, w, h float64)
	observer         func(frame uint64, took time.Duration)
}

// Option configures an Animator.
type Option func(*options)

// WithParticleCount sets how many particles are generated on Initialize.
func WithParticleCount(n int) Option {
	return func(o *options) {
		if n >= 0 {
			o.count = n
		}
	}
}

// WithMaxSize bounds particle radii to [0, size).
func WithMaxSize(size float64) Option {
	return func(o *options) { o.maxSize = size }
}

// WithMaxSpeed bounds particle drift to [0, speed) per frame.
func WithMaxSpeed(speed float64) Option {
	return func(o *options) { o.maxSpeed = speed }
}

// WithGradientFraction sets the share of the surface height covered by the
// bottom glow.
func WithGradientFraction(f float64) Option {
	return func(o *options) {
		if f >= 0 && f <= 1 {
			o.gradientFraction = f
		}
	}
}

// WithRand injects the random source used for placement, drift and flicker.
func WithRand(rng *rand.Rand) Option {
	return func(o *options) {
		if rng != nil {
			o.rng = rng
		}
	}
}

// WithLogger sets the logger.
func WithLogger(log zerolog.Logger) Option {
	return func(o *options) { o.log = log }
}

// WithOverlay registers a function drawn on top of every frame, after the
// cursor. It runs on the render goroutine with the surface held.
func WithOverlay(fn func(s Surface, w, h float64)) Option {
	return func(o *options) { o.overlay = fn }
}

// WithFrameObserver registers a function called after every rendered frame
// with the frame number and the time spent drawing it. It runs after the
// surface is released.
func WithFrameObserver(fn func(frame uint64, took time.Duration)) Option {
	return func(o *options) { o.observer = fn }
}
