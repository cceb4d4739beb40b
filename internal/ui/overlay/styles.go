package overlay

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/customalert/internal/ui/styles"
)

// Styles holds all overlay-specific styles
type Styles struct {
	// Overlay is the base overlay container style
	Overlay lipgloss.Style
	// Sheet is the container of bottom-anchored overlays
	Sheet lipgloss.Style
	// Title is the overlay title style
	Title lipgloss.Style
	// Message is the dialog body text
	Message lipgloss.Style
	// MenuItem is the default menu item style
	MenuItem lipgloss.Style
	// MenuItemActive is the highlighted/selected menu item style
	MenuItemActive lipgloss.Style
	// MenuKey is the key column of the help reference
	MenuKey lipgloss.Style
	// Destructive is a destructive button label
	Destructive lipgloss.Style
	// DestructiveActive is a highlighted destructive button label
	DestructiveActive lipgloss.Style
	// Separator is the style for divider lines
	Separator lipgloss.Style
	// Footer is the style for overlay footer text
	Footer lipgloss.Style
}

// New creates a new Styles instance using the Catppuccin Macchiato theme
func New() *Styles {
	return &Styles{
		Overlay: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(styles.Surface2).
			Background(styles.Base).
			Padding(1, 2),

		Sheet: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(styles.Surface2).
			Background(styles.Mantle).
			Padding(0, 2),

		Title: lipgloss.NewStyle().
			Foreground(styles.Text).
			Bold(true).
			MarginBottom(1),

		Message: lipgloss.NewStyle().
			Foreground(styles.Subtext1),

		MenuItem: lipgloss.NewStyle().
			Foreground(styles.Text),

		MenuItemActive: lipgloss.NewStyle().
			Foreground(styles.Blue).
			Bold(true),

		MenuKey: lipgloss.NewStyle().
			Foreground(styles.Yellow).
			Bold(true),

		Destructive: lipgloss.NewStyle().
			Foreground(styles.Maroon),

		DestructiveActive: lipgloss.NewStyle().
			Foreground(styles.Red).
			Bold(true),

		Separator: lipgloss.NewStyle().
			Foreground(styles.Surface1),

		Footer: lipgloss.NewStyle().
			Foreground(styles.Subtext0).
			MarginTop(1),
	}
}

// button returns the label style for a button given its role and highlight
func (s *Styles) button(role ButtonRole, active bool) lipgloss.Style {
	switch {
	case role == RoleDestructive && active:
		return s.DestructiveActive
	case role == RoleDestructive:
		return s.Destructive
	case active:
		return s.MenuItemActive
	default:
		return s.MenuItem
	}
}
