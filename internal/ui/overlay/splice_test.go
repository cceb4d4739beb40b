package overlay

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestSpliceOverlay_Basic(t *testing.T) {
	view := "..........\n..........\n.........."

	got := SpliceOverlay(view, []string{"AB", "CD"}, 3, 1)
	lines := strings.Split(ansi.Strip(got), "\n")

	assert.Equal(t, "..........", lines[0])
	assert.Equal(t, "...AB.....", lines[1])
	assert.Equal(t, "...CD.....", lines[2])
}

func TestSpliceOverlay_DropsRowsOutsideView(t *testing.T) {
	view := "....\n...."

	below := SpliceOverlay(view, []string{"XX", "YY"}, 0, 2)
	assert.Equal(t, view, below, "an overlay pushed below the view leaves it untouched")

	partial := SpliceOverlay(view, []string{"XX", "YY"}, 0, 1)
	lines := strings.Split(ansi.Strip(partial), "\n")
	assert.Equal(t, "....", lines[0])
	assert.Equal(t, "XX..", lines[1])

	above := SpliceOverlay(view, []string{"XX", "YY"}, 0, -1)
	lines = strings.Split(ansi.Strip(above), "\n")
	assert.Equal(t, "YY..", lines[0])
	assert.Equal(t, "....", lines[1])
}

func TestSpliceOverlay_NegativeX(t *testing.T) {
	got := SpliceOverlay("......", []string{"ABCD"}, -2, 0)
	assert.Equal(t, "CD....", ansi.Strip(got))
}

func TestSpliceOverlay_PadsShortLines(t *testing.T) {
	got := SpliceOverlay("ab", []string{"XY"}, 4, 0)
	assert.Equal(t, "ab  XY", ansi.Strip(got))
}

func TestSpliceOverlay_PreservesStyledSuffix(t *testing.T) {
	view := "\x1b[31mredredred\x1b[0m"
	got := SpliceOverlay(view, []string{"X"}, 1, 0)

	assert.Equal(t, "rXdredred", ansi.Strip(got))
	assert.Equal(t, 9, ansi.StringWidth(got))
}

func TestSpliceOverlay_Empty(t *testing.T) {
	assert.Equal(t, "abc", SpliceOverlay("abc", nil, 0, 0))
}

func TestDim(t *testing.T) {
	got := Dim("\x1b[1mone\x1b[0m\ntwo", func(s ...string) string { return "<" + strings.Join(s, "") + ">" })
	assert.Equal(t, "<one>\n<two>", got)
}

func TestDim_WithStyleRender(t *testing.T) {
	style := lipgloss.NewStyle().Faint(true)

	got := Dim("\x1b[1mone\x1b[0m\ntwo", style.Render)

	lines := strings.Split(got, "\n")
	assert.Len(t, lines, 2)
	assert.Equal(t, "one", ansi.Strip(lines[0]))
	assert.Equal(t, "two", ansi.Strip(lines[1]))
}

func TestClip(t *testing.T) {
	lines := []string{"ABCDEF", "\x1b[1mGHIJKL\x1b[0m"}

	clipped := Clip(lines, 6, 10)
	assert.Equal(t, "ABCD", clipped[0])
	assert.Equal(t, "GHIJ", ansi.Strip(clipped[1]))

	assert.Equal(t, lines[0], Clip(lines, 0, 10)[0], "fits already")
	assert.Equal(t, "", Clip(lines, 12, 10)[0], "starts past the edge")

	// Negative x keeps width-x columns so the splice leaves width visible
	assert.Equal(t, "ABCDE", Clip(lines, -2, 3)[0])
	assert.Equal(t, "ABCDEF", lines[0], "input is not modified")
}
