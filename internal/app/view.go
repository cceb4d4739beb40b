package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/customalert/internal/ui/overlay"
	"github.com/riordanpawley/customalert/internal/ui/statusbar"
	"github.com/riordanpawley/customalert/internal/ui/toast"
)

// View renders the application
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	height := m.contentHeight()
	content, _ := m.renderMenu(m.width, height)

	// Native dialogs dim the screen behind them
	if current := m.overlayStack.Current(); current != nil {
		content = overlay.Dim(content, m.styles.MenuItemDisabled.Render)
		framed := overlay.Frame(current, m.overlayStyles, m.width)
		x, y := overlay.Place(current, framed, m.width, height)
		lines := overlay.Clip(strings.Split(framed, "\n"), x, m.width)
		content = overlay.SpliceOverlay(content, lines, x, y)
	}

	content = m.customAlert.Render(content, m.width, height, m.spring.Rows(), m.insetRows())

	// Toasts in the bottom-right corner
	if toastView := toast.New(m.styles).Render(m.toasts, m.width); toastView != "" {
		lines := strings.Split(toastView, "\n")
		x := m.width - lipgloss.Width(toastView)
		content = overlay.SpliceOverlay(content, lines, x, height-len(lines))
	}

	mode := m.Mode()
	sb := statusbar.New(mode, m.width, m.styles, m.keys.hintsFor(mode))

	return lipgloss.JoinVertical(lipgloss.Left, content, sb.Render())
}
