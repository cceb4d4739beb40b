package config

import (
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/riordanpawley/customalert/internal/alert"
)

// ValidationError reports a config field holding an unusable value
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid config %s: %s", e.Field, e.Reason)
}

// Validate checks the values the UI depends on. BottomInsetRows of zero is
// valid; it only means nothing reserves the bottom edge.
func (c *Config) Validate() error {
	switch {
	case c.Animation.DurationMs < 0:
		return &ValidationError{Field: "animation.durationMs", Reason: "must not be negative"}
	case c.Animation.Damping < 0:
		return &ValidationError{Field: "animation.damping", Reason: "must not be negative"}
	case c.Animation.FPS < 1 || c.Animation.FPS > 240:
		return &ValidationError{Field: "animation.fps", Reason: "must be between 1 and 240"}
	case c.Display.UnitsPerColumn <= 0:
		return &ValidationError{Field: "display.unitsPerColumn", Reason: "must be positive"}
	case c.Display.UnitsPerRow <= 0:
		return &ValidationError{Field: "display.unitsPerRow", Reason: "must be positive"}
	case c.Display.BottomInsetRows < 0:
		return &ValidationError{Field: "display.bottomInsetRows", Reason: "must not be negative"}
	case c.Display.ToastSeconds < 0:
		return &ValidationError{Field: "display.toastSeconds", Reason: "must not be negative"}
	}

	// The card needs its border, side padding and a three column interior
	cols := int(math.Round(alert.CardWidth / c.Display.UnitsPerColumn))
	padX := max(int(alert.CardPadding/c.Display.UnitsPerColumn), 1)
	if cols < 2+2*padX+3 {
		return &ValidationError{Field: "display.unitsPerColumn", Reason: "too coarse for the alert card"}
	}

	if _, err := ParseLevel(c.Log.Level); err != nil {
		return &ValidationError{Field: "log.level", Reason: err.Error()}
	}
	return nil
}

// ParseLevel maps a level name onto a slog level
func ParseLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", name)
	}
	return level, nil
}
