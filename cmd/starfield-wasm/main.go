//go:build js && wasm

// Command starfield-wasm runs the animated background and the constellation
// hover layer inside the page. Build with GOOS=js GOARCH=wasm into
// static/starfield.wasm.
package main

import (
	"errors"
	"math/rand"
	"os"
	"time"

	"github.com/dhruvywuvy/ursa-minor/internal/browser"
	"github.com/dhruvywuvy/ursa-minor/internal/constellation"
	"github.com/dhruvywuvy/ursa-minor/internal/logging"
	"github.com/dhruvywuvy/ursa-minor/internal/portfolio"
	"github.com/dhruvywuvy/ursa-minor/internal/starfield"
)

// logLevel can be overridden with -ldflags "-X main.logLevel=debug".
var logLevel = "info"

func main() {
	log, err := logging.NewOrInfo(logLevel, logging.FormatConsole, os.Stdout)
	if err != nil {
		log.Warn().Err(err).Str("level", logLevel).Msg("bad log level, using info")
	}

	animator := starfield.New(
		starfield.WithRand(rand.New(rand.NewSource(time.Now().UnixNano()))),
		starfield.WithLogger(log),
	)
	layer := constellation.New(portfolio.Stars(), constellation.WithLogger(log))

	app := browser.New(animator, layer, log)
	if err := app.Mount(); err != nil && !errors.Is(err, browser.ErrNoCanvas) {
		log.Error().Err(err).Msg("mount failed")
		return
	}

	<-app.Done()
}
