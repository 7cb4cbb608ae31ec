package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	. "github.com/smartystreets/goconvey/convey"
)

func TestParseLevel(t *testing.T) {
	Convey("Given level names", t, func() {
		cases := map[string]zerolog.Level{
			"":         zerolog.InfoLevel,
			"info":     zerolog.InfoLevel,
			" DEBUG ":  zerolog.DebugLevel,
			"warning":  zerolog.WarnLevel,
			"warn":     zerolog.WarnLevel,
			"error":    zerolog.ErrorLevel,
			"disabled": zerolog.Disabled,
		}
		for name, want := range cases {
			got, err := ParseLevel(name)
			So(err, ShouldBeNil)
			So(got, ShouldEqual, want)
		}

		Convey("Then an unknown level is rejected", func() {
			_, err := ParseLevel("loud")
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "loud")
		})
	})
}

func TestNew(t *testing.T) {
	Convey("Given a buffer as output", t, func() {
		var buf bytes.Buffer

		Convey("When the format is auto", func() {
			log, err := New("info", FormatAuto, &buf)
			So(err, ShouldBeNil)
			log.Info().Str("component", "web").Msg("listening")

			Convey("Then records are JSON", func() {
				var rec map[string]any
				So(json.Unmarshal(buf.Bytes(), &rec), ShouldBeNil)
				So(rec["message"], ShouldEqual, "listening")
				So(rec["component"], ShouldEqual, "web")
				So(rec["level"], ShouldEqual, "info")
			})
		})

		Convey("When the level is warn", func() {
			log, err := New("warn", FormatJSON, &buf)
			So(err, ShouldBeNil)
			log.Info().Msg("hidden")
			log.Warn().Msg("shown")

			Convey("Then lower levels are dropped", func() {
				So(buf.String(), ShouldNotContainSubstring, "hidden")
				So(buf.String(), ShouldContainSubstring, "shown")
			})
		})

		Convey("When the format is console", func() {
			log, err := New("info", FormatConsole, &buf)
			So(err, ShouldBeNil)
			log.Info().Msg("hello")

			Convey("Then the output is not JSON", func() {
				So(buf.String(), ShouldContainSubstring, "hello")
				So(json.Valid(buf.Bytes()), ShouldBeFalse)
			})
		})

		Convey("When the format is unknown", func() {
			_, err := New("info", Format("xml"), &buf)
			So(err, ShouldNotBeNil)
		})

		Convey("When the level is unknown", func() {
			_, err := New("chatty", FormatJSON, &buf)
			So(err, ShouldNotBeNil)
		})
	})
}

func TestNewOrInfo(t *testing.T) {
	Convey("Given a buffer as output", t, func() {
		var buf bytes.Buffer

		Convey("When the level is unknown", func() {
			log, err := NewOrInfo("chatty", FormatJSON, &buf)
			So(err, ShouldNotBeNil)
			log.Debug().Msg("dropped")
			log.Info().Msg("kept")

			Convey("Then the logger falls back to info in the same format", func() {
				So(buf.String(), ShouldNotContainSubstring, "dropped")
				var rec map[string]any
				So(json.Unmarshal(buf.Bytes(), &rec), ShouldBeNil)
				So(rec["message"], ShouldEqual, "kept")
			})
		})

		Convey("When the format is unknown", func() {
			log, err := NewOrInfo("debug", Format("xml"), &buf)
			So(err, ShouldNotBeNil)
			log.Info().Msg("still logging")

			Convey("Then the logger writes console output", func() {
				So(buf.String(), ShouldContainSubstring, "still logging")
				So(json.Valid(buf.Bytes()), ShouldBeFalse)
			})
		})

		Convey("When the settings are valid", func() {
			log, err := NewOrInfo("debug", FormatJSON, &buf)
			So(err, ShouldBeNil)
			log.Debug().Msg("verbose")
			So(buf.String(), ShouldContainSubstring, "verbose")
		})
	})
}
