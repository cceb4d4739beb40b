package overlay

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Frame renders an overlay inside its container. Overlays reporting a zero
// width are drawn as a sheet spanning hostWidth; others get a bordered box
// of their reported size. The overlay's title heads the content.
func Frame(o Overlay, s *Styles, hostWidth int) string {
	body := o.View()
	if title := o.Title(); title != "" {
		body = lipgloss.JoinVertical(lipgloss.Left, s.Title.Render(title), body)
	}

	width, height := o.Size()
	if width == 0 {
		// Border is drawn outside Width
		return s.Sheet.Width(max(hostWidth-2, 0)).Render(body)
	}
	return s.Overlay.Width(width).Height(height).Render(body)
}

// Place reports where a framed overlay of the given size goes in a
// width x height area: sheets sit on the bottom edge, everything else is
// centered.
func Place(o Overlay, framed string, width, height int) (x, y int) {
	lines := strings.Count(framed, "\n") + 1
	if w, _ := o.Size(); w == 0 {
		return 0, height - lines
	}
	return (width - lipgloss.Width(framed)) / 2, (height - lines) / 2
}
