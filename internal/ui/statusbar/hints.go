package statusbar

import "github.com/charmbracelet/bubbles/key"

// Binding builds a help-only binding for surfaces that handle keys
// themselves, such as the overlays.
func Binding(keys, desc string) key.Binding {
	return key.NewBinding(key.WithKeys(keys), key.WithHelp(keys, desc))
}
