package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/riordanpawley/customalert/internal/alert"
)

// alertChoiceMsg reports which custom alert button was activated
type alertChoiceMsg struct {
	action alert.Action
	label  string
}

// toastTickMsg expires old toasts
type toastTickMsg time.Time

func toastTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return toastTickMsg(t)
	})
}

// outbox collects messages raised by callbacks that cannot return a
// command themselves
type outbox struct {
	msgs []tea.Msg
}

func (o *outbox) post(msg tea.Msg) {
	o.msgs = append(o.msgs, msg)
}

// drain turns the queued messages into commands and empties the outbox
func (o *outbox) drain() tea.Cmd {
	if len(o.msgs) == 0 {
		return nil
	}

	cmds := make([]tea.Cmd, len(o.msgs))
	for i, msg := range o.msgs {
		msg := msg
		cmds[i] = func() tea.Msg { return msg }
	}
	o.msgs = nil
	return tea.Batch(cmds...)
}
