// Package browser mounts the scene on a page: it draws the starfield on the
// page's <canvas> through CanvasRenderingContext2D and drives the
// constellation from DOM hover events. Everything except the error values
// requires GOOS=js GOARCH=wasm.
package browser

import "errors"

var (
	// ErrNoCanvas is returned by Mount when the page has no starfield
	// canvas or the canvas has no 2D context. The page then renders
	// without the animated background.
	ErrNoCanvas = errors.New("browser: no 2d canvas")

	// ErrMounted is returned when mounting an App twice.
	ErrMounted = errors.New("browser: already mounted")
)
