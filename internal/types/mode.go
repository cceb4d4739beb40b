// Package types contains shared types used across the application.
package types

// Mode represents which surface currently receives input
type Mode int

const (
	ModeMenu Mode = iota
	ModeAlert
	ModeDialog
	ModeSheet
	ModeHelp
)

// String returns the string representation of the mode
func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "MENU"
	case ModeAlert:
		return "ALERT"
	case ModeDialog:
		return "DIALOG"
	case ModeSheet:
		return "SHEET"
	case ModeHelp:
		return "HELP"
	default:
		return "UNKNOWN"
	}
}
