package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// menuItem is one of the screen's trigger buttons
type menuItem struct {
	label string
	icon  string
}

var menuItems = []menuItem{
	{label: "Show Custom Alert", icon: "▶"},
	{label: "Show Alert", icon: "▶"},
	{label: "Show Confirmation Dialog", icon: "▶"},
}

const (
	itemCustomAlert = iota
	itemAlert
	itemSheet
)

// buttonSpan is the screen area covered by a menu button
type buttonSpan struct {
	top, left, width, height int
}

func (b buttonSpan) contains(x, y int) bool {
	return x >= b.left && x < b.left+b.width && y >= b.top && y < b.top+b.height
}

// renderMenu draws the trigger buttons centered in a width x height area
// and reports where each one landed
func (m Model) renderMenu(width, height int) (string, []buttonSpan) {
	labelWidth := 0
	for _, item := range menuItems {
		labelWidth = max(labelWidth, lipgloss.Width(item.icon+" "+item.label))
	}

	buttons := make([]string, len(menuItems))
	for i, item := range menuItems {
		style := m.styles.MenuButton
		if i == m.cursor {
			style = m.styles.MenuButtonActive
		}
		label := m.styles.MenuIcon.Render(item.icon) + " " + item.label
		buttons[i] = style.Width(labelWidth + 4).Render(label)
	}
	block := lipgloss.JoinVertical(lipgloss.Center, buttons...)

	blockWidth := lipgloss.Width(block)
	blockHeight := lipgloss.Height(block)
	top := max((height-blockHeight)/2, 0)
	left := max((width-blockWidth)/2, 0)

	spans := make([]buttonSpan, len(buttons))
	row := top
	for i, b := range buttons {
		h := lipgloss.Height(b)
		spans[i] = buttonSpan{top: row, left: left, width: lipgloss.Width(b), height: h}
		row += h
	}

	view := lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, block)
	return fitHeight(view, height), spans
}

// fitHeight pads or trims view to exactly height lines
func fitHeight(view string, height int) string {
	if height <= 0 {
		return ""
	}
	lines := strings.Split(view, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
