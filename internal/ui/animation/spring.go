// Package animation interpolates the alert's row offset between the
// discrete targets the alert controller emits.
package animation

import (
	"math"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"github.com/riordanpawley/customalert/internal/config"
)

// Settling thresholds, in rows and rows per frame
const (
	settleDistance = 0.01
	settleVelocity = 0.01
)

// FrameMsg advances a running animation by one frame
type FrameMsg struct {
	ID int
}

// Spring moves a position toward a target with a damped spring. The zero
// value is not usable; call New.
type Spring struct {
	id       int
	spring   harmonica.Spring
	fps      int
	disabled bool

	pos    float64
	vel    float64
	target float64
	moving bool
}

var lastID int64

// New builds a spring from config. The response time is DurationMs: the
// angular frequency is 2π over the duration in seconds.
func New(cfg config.AnimationConfig) *Spring {
	fps := max(cfg.FPS, 1)
	seconds := float64(cfg.DurationMs) / 1000
	disabled := cfg.Disabled || seconds <= 0

	var s harmonica.Spring
	if !disabled {
		s = harmonica.NewSpring(harmonica.FPS(fps), 2*math.Pi/seconds, cfg.Damping)
	}

	return &Spring{
		id:       int(atomic.AddInt64(&lastID, 1)),
		spring:   s,
		fps:      fps,
		disabled: disabled,
	}
}

// Snap jumps straight to pos and stops any motion
func (s *Spring) Snap(pos float64) {
	s.pos = pos
	s.vel = 0
	s.target = pos
	s.moving = false
}

// SetTarget starts moving toward target. It returns the command that drives
// the next frame, or nil when no frame is needed.
func (s *Spring) SetTarget(target float64) tea.Cmd {
	if s.disabled {
		s.Snap(target)
		return nil
	}
	if target == s.target && !s.moving {
		return nil
	}

	s.target = target
	if s.moving {
		// Already ticking; the pending frame picks up the new target
		return nil
	}
	s.moving = true
	return s.tick()
}

// Target returns the position the spring is heading to
func (s *Spring) Target() float64 {
	return s.target
}

// Position returns the current interpolated position
func (s *Spring) Position() float64 {
	return s.pos
}

// Rows returns the position rounded to whole rows
func (s *Spring) Rows() int {
	return int(math.Round(s.pos))
}

// Animating reports whether frames are still being scheduled
func (s *Spring) Animating() bool {
	return s.moving
}

// Step advances one frame and settles once close enough to the target
func (s *Spring) Step() {
	s.pos, s.vel = s.spring.Update(s.pos, s.vel, s.target)
	if math.Abs(s.pos-s.target) < settleDistance && math.Abs(s.vel) < settleVelocity {
		s.Snap(s.target)
	}
}

// Update handles this spring's frame messages. Frames from other springs
// are ignored.
func (s *Spring) Update(msg tea.Msg) tea.Cmd {
	frame, ok := msg.(FrameMsg)
	if !ok || frame.ID != s.id || !s.moving {
		return nil
	}

	s.Step()
	if !s.moving {
		return nil
	}
	return s.tick()
}

func (s *Spring) tick() tea.Cmd {
	id := s.id
	return tea.Tick(time.Second/time.Duration(s.fps), func(time.Time) tea.Msg {
		return FrameMsg{ID: id}
	})
}
