package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles holds all the UI styles
type Styles struct {
	// Screen
	Screen       lipgloss.Style
	ScreenHeader lipgloss.Style

	// Menu buttons
	MenuButton       lipgloss.Style
	MenuButtonActive lipgloss.Style
	MenuIcon         lipgloss.Style

	// Custom alert card
	Card        lipgloss.Style
	CardTitle   lipgloss.Style
	CardMessage lipgloss.Style

	// ActionButton renders one of the card's two capsules. Focused buttons
	// are drawn bold and underlined.
	ActionButton func(slot int, focused bool) lipgloss.Style

	// Status bar
	StatusBar  lipgloss.Style
	StatusMode lipgloss.Style
	StatusHint lipgloss.Style
	StatusInfo lipgloss.Style

	// Overlays
	Overlay          lipgloss.Style
	OverlayTitle     lipgloss.Style
	MenuItem         lipgloss.Style
	MenuItemActive   lipgloss.Style
	MenuItemDisabled lipgloss.Style
	MenuKey          lipgloss.Style
	Separator        lipgloss.Style

	// Toasts
	ToastInfo    lipgloss.Style
	ToastSuccess lipgloss.Style
	ToastWarning lipgloss.Style
	ToastError   lipgloss.Style
}

// New creates a new Styles instance with Catppuccin Macchiato theme
func New() *Styles {
	return &Styles{
		Screen: lipgloss.NewStyle().
			Background(Base),

		ScreenHeader: lipgloss.NewStyle().
			Foreground(Subtext0).
			Bold(true).
			MarginBottom(1),

		MenuButton: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Surface1).
			Foreground(Blue).
			Padding(0, 2),

		MenuButtonActive: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Lavender).
			Foreground(Lavender).
			Bold(true).
			Padding(0, 2),

		MenuIcon: lipgloss.NewStyle().
			Foreground(Blue),

		Card: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Overlay0).
			Background(Text).
			Foreground(Base),

		CardTitle: lipgloss.NewStyle().
			Foreground(Crust).
			Background(Text).
			Bold(true),

		CardMessage: lipgloss.NewStyle().
			Foreground(Mantle).
			Background(Text),

		ActionButton: func(slot int, focused bool) lipgloss.Style {
			color := ActionColors[min(max(slot, 0), len(ActionColors)-1)]
			style := lipgloss.NewStyle().
				Foreground(Base).
				Background(color).
				Bold(true).
				Align(lipgloss.Center)
			if focused {
				style = style.Underline(true).Foreground(Crust)
			}
			return style
		},

		StatusBar: lipgloss.NewStyle().
			Background(Surface0).
			Foreground(Subtext0).
			Padding(0, 1),

		StatusMode: lipgloss.NewStyle().
			Background(Blue).
			Foreground(Base).
			Bold(true).
			Padding(0, 1),

		StatusHint: lipgloss.NewStyle().
			Foreground(Overlay1),

		StatusInfo: lipgloss.NewStyle().
			Foreground(Subtext0),

		Overlay: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Surface2).
			Background(Base).
			Padding(1, 2),

		OverlayTitle: lipgloss.NewStyle().
			Foreground(Text).
			Bold(true).
			MarginBottom(1),

		MenuItem: lipgloss.NewStyle().
			Foreground(Text),

		MenuItemActive: lipgloss.NewStyle().
			Foreground(Blue).
			Bold(true),

		MenuItemDisabled: lipgloss.NewStyle().
			Foreground(Overlay0),

		MenuKey: lipgloss.NewStyle().
			Foreground(Yellow).
			Bold(true),

		Separator: lipgloss.NewStyle().
			Foreground(Surface1),

		ToastInfo: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Blue).
			Foreground(Blue).
			Padding(0, 1),

		ToastSuccess: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Green).
			Foreground(Green).
			Padding(0, 1),

		ToastWarning: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Yellow).
			Foreground(Yellow).
			Padding(0, 1),

		ToastError: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Red).
			Foreground(Red).
			Padding(0, 1),
	}
}
