package app

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/riordanpawley/customalert/internal/types"
	"github.com/riordanpawley/customalert/internal/ui/overlay"
	"github.com/riordanpawley/customalert/internal/ui/statusbar"
)

// KeyMap defines the menu key bindings. Dialogs and the custom alert
// handle their own keys; their hints are listed in hintsFor.
type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Choose    key.Binding
	Shortcut  key.Binding
	Help      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

// DefaultKeyMap is the built-in key binding set
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k", "shift+tab"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j", "tab"),
		key.WithHelp("↓/j", "down"),
	),
	Choose: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter", "show"),
	),
	Shortcut: key.NewBinding(
		key.WithKeys("1", "2", "3"),
		key.WithHelp("1-3", "show directly"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "keys"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q"),
		key.WithHelp("q", "quit"),
	),
	ForceQuit: key.NewBinding(
		key.WithKeys("ctrl+c"),
	),
}

// hintsFor returns the bindings shown in the status bar for a mode
func (k KeyMap) hintsFor(mode types.Mode) []key.Binding {
	switch mode {
	case types.ModeAlert:
		return []key.Binding{
			statusbar.Binding("←/→", "focus"),
			statusbar.Binding("enter", "choose"),
			statusbar.Binding("1/2", "pick"),
		}
	case types.ModeDialog:
		return []key.Binding{
			statusbar.Binding("←/→", "switch"),
			statusbar.Binding("enter", "choose"),
			statusbar.Binding("esc", "cancel"),
		}
	case types.ModeSheet:
		return []key.Binding{
			statusbar.Binding("↑/↓", "move"),
			statusbar.Binding("enter", "choose"),
			statusbar.Binding("esc", "dismiss"),
		}
	case types.ModeHelp:
		return []key.Binding{
			statusbar.Binding("j/k", "scroll"),
			statusbar.Binding("esc", "close"),
		}
	default:
		return []key.Binding{k.Up, k.Down, k.Choose, k.Shortcut, k.Help, k.Quit}
	}
}

// helpGroups lists every surface's bindings for the key reference
func (k KeyMap) helpGroups() []overlay.HelpGroup {
	return []overlay.HelpGroup{
		{Name: "Menu", Bindings: k.hintsFor(types.ModeMenu)},
		{Name: "Custom alert", Bindings: k.hintsFor(types.ModeAlert)},
		{Name: "Alert", Bindings: k.hintsFor(types.ModeDialog)},
		{Name: "Confirmation dialog", Bindings: k.hintsFor(types.ModeSheet)},
		{Name: "Anywhere", Bindings: []key.Binding{statusbar.Binding("ctrl+c", "quit")}},
	}
}
