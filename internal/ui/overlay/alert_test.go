package overlay

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runAlertKey(t *testing.T, dialog *AlertDialog, msg tea.KeyMsg) (SelectionMsg, bool) {
	t.Helper()
	_, cmd := dialog.Update(msg)
	if cmd == nil {
		return SelectionMsg{}, false
	}
	sel, ok := cmd().(SelectionMsg)
	require.True(t, ok, "expected SelectionMsg")
	return sel, true
}

func TestNewAlertDialog(t *testing.T) {
	dialog := NewAlertDialog("Hey dude!", "Wish to cancel this operation?")

	assert.Equal(t, "Hey dude!", dialog.Title())
	assert.Equal(t, "Wish to cancel this operation?", dialog.message)
	assert.Equal(t, 0, dialog.Selected(), "cancel should be selected by default")
	assert.Equal(t, RoleCancel, dialog.buttons[0].Role)
	assert.Equal(t, RoleDestructive, dialog.buttons[1].Role)
	assert.NotNil(t, dialog.styles)
	assert.Nil(t, dialog.Init())
}

func TestAlertDialog_Size(t *testing.T) {
	dialog := NewAlertDialog("Title", "Single line message")
	width, height := dialog.Size()
	assert.Equal(t, 52, width)
	assert.GreaterOrEqual(t, height, 6)

	multi := NewAlertDialog("Title", "one\ntwo\nthree")
	_, multiHeight := multi.Size()
	assert.Equal(t, height+2, multiHeight)
}

func TestAlertDialog_EnterChoosesSelected(t *testing.T) {
	dialog := NewAlertDialog("Title", "Message")

	sel, ok := runAlertKey(t, dialog, tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, ok)
	assert.Equal(t, "cancel", sel.Key)
	assert.Equal(t, AlertResult{Index: 0, Label: "Cancel", Role: RoleCancel}, sel.Value)

	_, ok = runAlertKey(t, dialog, tea.KeyMsg{Type: tea.KeyRight})
	assert.False(t, ok)
	assert.Equal(t, 1, dialog.Selected())

	sel, ok = runAlertKey(t, dialog, tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, ok)
	assert.Equal(t, "continue", sel.Key)
	assert.Equal(t, RoleDestructive, sel.Value.(AlertResult).Role)
}

func TestAlertDialog_EscapeCancels(t *testing.T) {
	dialog := NewAlertDialog("Title", "Message")
	dialog.Update(tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, 1, dialog.Selected())

	sel, ok := runAlertKey(t, dialog, tea.KeyMsg{Type: tea.KeyEscape})
	require.True(t, ok)
	assert.Equal(t, "cancel", sel.Key)
}

func TestAlertDialog_Navigation(t *testing.T) {
	tests := []struct {
		name string
		keys []tea.KeyMsg
		want int
	}{
		{"right", []tea.KeyMsg{{Type: tea.KeyRight}}, 1},
		{"l", []tea.KeyMsg{{Type: tea.KeyRunes, Runes: []rune{'l'}}}, 1},
		{"right then left", []tea.KeyMsg{{Type: tea.KeyRight}, {Type: tea.KeyLeft}}, 0},
		{"tab then shift+tab", []tea.KeyMsg{{Type: tea.KeyTab}, {Type: tea.KeyShiftTab}}, 0},
		{"h stays", []tea.KeyMsg{{Type: tea.KeyRunes, Runes: []rune{'h'}}}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dialog := NewAlertDialog("Title", "Message")
			for _, k := range tt.keys {
				dialog.Update(k)
			}
			assert.Equal(t, tt.want, dialog.Selected())
		})
	}
}

func TestAlertDialog_IgnoresOtherKeys(t *testing.T) {
	dialog := NewAlertDialog("Title", "Message")
	_, ok := runAlertKey(t, dialog, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	assert.False(t, ok)
}

func TestAlertDialog_View(t *testing.T) {
	dialog := NewAlertDialog("Title", "Wish to cancel this operation?")
	view := dialog.View()

	assert.Contains(t, view, "Wish to cancel this operation?")
	assert.Contains(t, view, "Cancel")
	assert.Contains(t, view, "Continue")
	assert.Contains(t, view, "Esc")

	empty := NewAlertDialog("Title", "")
	assert.False(t, strings.HasPrefix(empty.View(), "\n"))
}
