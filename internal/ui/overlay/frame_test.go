package overlay

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestFrame_CenteredDialog(t *testing.T) {
	dialog := NewAlertDialog("Hey dude!", "Wish to cancel this operation?")

	framed := Frame(dialog, New(), 100)

	assert.Contains(t, framed, "Hey dude!")
	assert.Contains(t, framed, "Wish to cancel this operation?")
	// 52 wide box plus its border
	assert.Equal(t, 54, lipgloss.Width(framed))

	x, y := Place(dialog, framed, 100, 40)
	assert.Equal(t, (100-54)/2, x)
	assert.Equal(t, (40-lipgloss.Height(framed))/2, y)
}

func TestFrame_SheetSpansHost(t *testing.T) {
	sheet := NewActionSheet("Hey there 👋", "That the message!", Button{Label: "Cancel"}, Button{Label: "Continue"})

	framed := Frame(sheet, New(), 80)

	assert.Contains(t, framed, "That the message!")
	for _, line := range strings.Split(framed, "\n") {
		assert.Equal(t, 80, lipgloss.Width(line))
	}

	x, y := Place(sheet, framed, 80, 30)
	assert.Equal(t, 0, x)
	assert.Equal(t, 30-lipgloss.Height(framed), y, "sheet sits on the bottom edge")
}
