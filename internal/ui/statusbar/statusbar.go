package statusbar

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/customalert/internal/types"
	"github.com/riordanpawley/customalert/internal/ui/styles"
)

// StatusBar represents the status bar at the bottom of the TUI
type StatusBar struct {
	mode     types.Mode
	width    int
	styles   *styles.Styles
	bindings []key.Binding
}

// New creates a new StatusBar with the given mode, width, styles and the
// key bindings active in that mode
func New(mode types.Mode, width int, styles *styles.Styles, bindings []key.Binding) StatusBar {
	return StatusBar{
		mode:     mode,
		width:    width,
		styles:   styles,
		bindings: bindings,
	}
}

// Render renders the status bar as a string
func (sb StatusBar) Render() string {
	// Mode badge
	modeBadge := sb.styles.StatusMode.Render(sb.mode.String())

	hints := GetHints(sb.bindings, sb.styles)

	// Combine mode badge and hints with separator
	var content string
	if hints != "" {
		separator := sb.styles.StatusHint.Render(" │ ")
		content = lipgloss.JoinHorizontal(lipgloss.Left, modeBadge, separator, hints)
	} else {
		content = modeBadge
	}

	// Apply status bar style and fill width
	return sb.styles.StatusBar.Width(sb.width).MaxHeight(1).Render(content)
}

// GetHints renders the short help line for the given bindings. Disabled
// bindings are skipped.
func GetHints(bindings []key.Binding, s *styles.Styles) string {
	if len(bindings) == 0 {
		return ""
	}

	h := help.New()
	h.ShortSeparator = "  "
	h.Styles.ShortKey = s.StatusInfo
	h.Styles.ShortDesc = s.StatusHint
	h.Styles.ShortSeparator = s.StatusHint
	return h.ShortHelpView(bindings)
}
