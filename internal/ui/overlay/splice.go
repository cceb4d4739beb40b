package overlay

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// SpliceOverlay draws overlayLines on top of view with the top-left corner
// at (x, y), measured in terminal cells. Lines falling outside the view are
// dropped, and negative x clips the overlay's left edge. Styling on either
// side of the overlay is preserved.
func SpliceOverlay(view string, overlayLines []string, x, y int) string {
	if len(overlayLines) == 0 {
		return view
	}

	viewLines := strings.Split(view, "\n")

	for i, line := range overlayLines {
		row := y + i
		if row < 0 || row >= len(viewLines) {
			continue
		}

		if x < 0 {
			line = ansi.TruncateLeft(line, -x, "")
		}
		col := max(x, 0)
		lineWidth := ansi.StringWidth(line)
		if lineWidth == 0 {
			continue
		}

		viewLine := viewLines[row]
		viewWidth := ansi.StringWidth(viewLine)

		var b strings.Builder

		// Prefix: pad short lines so the overlay lands at its column
		if col > 0 {
			b.WriteString(ansi.Truncate(viewLine, col, ""))
			if viewWidth < col {
				b.WriteString(strings.Repeat(" ", col-viewWidth))
			}
		}
		b.WriteString("\x1b[0m")
		b.WriteString(line)
		b.WriteString("\x1b[0m")

		// Suffix: whatever the overlay did not cover
		if end := col + lineWidth; end < viewWidth {
			b.WriteString(ansi.TruncateLeft(viewLine, end, ""))
		}

		viewLines[row] = b.String()
	}

	return strings.Join(viewLines, "\n")
}

// Clip cuts overlay lines placed at column x so they end by column width
func Clip(lines []string, x, width int) []string {
	limit := max(width-x, 0)
	clipped := make([]string, len(lines))
	for i, line := range lines {
		clipped[i] = ansi.Truncate(line, limit, "")
	}
	return clipped
}

// Dim renders every line of view in the given style after stripping its
// existing styling. Used as a backdrop behind modal dialogs; render has the
// shape of lipgloss.Style.Render.
func Dim(view string, render func(...string) string) string {
	lines := strings.Split(view, "\n")
	for i, line := range lines {
		lines[i] = render(ansi.Strip(line))
	}
	return strings.Join(lines, "\n")
}
