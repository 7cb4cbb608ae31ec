// Package logging builds the zerolog logger shared by the hosts.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// Format selects the log encoding.
type Format string

const (
	FormatAuto    Format = "auto"
	FormatJSON    Format = "json"
	FormatConsole Format = "console"
)

// New returns a logger writing to out at the given level. With FormatAuto,
// output is human readable when out is a terminal and JSON otherwise.
func New(level string, format Format, out io.Writer) (zerolog.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), err
	}
	if out == nil {
		out = os.Stdout
	}

	switch format {
	case FormatConsole:
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen}
	case FormatJSON:
	case FormatAuto, "":
		if isTerminal(out) {
			out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen}
		}
	default:
		return zerolog.Nop(), fmt.Errorf("unknown log format: %s", format)
	}

	return zerolog.New(out).Level(lvl).With().Timestamp().Logger(), nil
}

// ParseLevel accepts debug, info, warn/warning, error and disabled,
// case-insensitive. Empty means info.
func ParseLevel(level string) (zerolog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "", "info":
		return zerolog.InfoLevel, nil
	case "debug":
		return zerolog.DebugLevel, nil
	case "warn", "warning":
		return zerolog.WarnLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	case "disabled", "off":
		return zerolog.Disabled, nil
	default:
		return zerolog.NoLevel, fmt.Errorf("unknown log level: %s", level)
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// NewOrInfo is New for hosts that must keep running with a bad setting:
// on error it returns an info level logger in the requested format (console
// when the format is unknown) together with the error.
func NewOrInfo(level string, format Format, out io.Writer) (zerolog.Logger, error) {
	log, err := New(level, format, out)
	if err == nil {
		return log, nil
	}
	if _, lerr := ParseLevel(level); lerr == nil {
		format = FormatConsole
	}
	fallback, ferr := New("info", format, out)
	if ferr != nil {
		fallback, _ = New("info", FormatConsole, out)
	}
	return fallback, err
}
