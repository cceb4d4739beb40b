package overlay

import tea "github.com/charmbracelet/bubbletea"

// Stack holds the open dialogs. Only the top one sees input and only the
// top one is drawn; closing it uncovers the one below.
type Stack struct {
	overlays []Overlay
}

// NewStack returns a stack with no dialog open
func NewStack() *Stack {
	return &Stack{}
}

// Push opens a dialog on top and returns its Init command
func (s *Stack) Push(o Overlay) tea.Cmd {
	s.overlays = append(s.overlays, o)
	return o.Init()
}

// Pop closes the top dialog and returns it, or nil when nothing is open
func (s *Stack) Pop() Overlay {
	top := s.Current()
	if top != nil {
		s.overlays = s.overlays[:len(s.overlays)-1]
	}
	return top
}

// Current is the dialog receiving input, or nil
func (s *Stack) Current() Overlay {
	if len(s.overlays) == 0 {
		return nil
	}
	return s.overlays[len(s.overlays)-1]
}

// IsEmpty reports whether no dialog is open
func (s *Stack) IsEmpty() bool {
	return len(s.overlays) == 0
}

// Update routes msg to the top dialog. CloseOverlayMsg pops it instead.
func (s *Stack) Update(msg tea.Msg) tea.Cmd {
	top := s.Current()
	if top == nil {
		return nil
	}

	if _, ok := msg.(CloseOverlayMsg); ok {
		s.Pop()
		return nil
	}

	next, cmd := top.Update(msg)
	// A dialog may hand back a replacement model
	if o, ok := next.(Overlay); ok {
		s.overlays[len(s.overlays)-1] = o
	}
	return cmd
}
