// Package overlay contains the modal dialogs drawn over the demo screen and
// the stack that routes input to the topmost one.
package overlay

import tea "github.com/charmbracelet/bubbletea"

// Overlay represents a modal overlay component.
//
// A Size width of zero marks a full-width overlay anchored to the bottom
// edge; anything else is centered.
type Overlay interface {
	tea.Model
	Title() string
	Size() (width, height int)
}

// CloseOverlayMsg signals that the overlay should be closed
type CloseOverlayMsg struct{}

// SelectionMsg is sent when a dialog button is chosen
type SelectionMsg struct {
	Key   string
	Value any
}

// ButtonRole describes how a dialog button is presented
type ButtonRole int

const (
	RoleDefault ButtonRole = iota
	RoleCancel
	RoleDestructive
)

// Button is a labelled dialog button
type Button struct {
	Label string
	Role  ButtonRole
}

func (r ButtonRole) String() string {
	switch r {
	case RoleDefault:
		return "default"
	case RoleCancel:
		return "cancel"
	case RoleDestructive:
		return "destructive"
	default:
		return "unknown"
	}
}
