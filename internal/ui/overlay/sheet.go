package overlay

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// ActionSheet is a confirmation dialog anchored to the bottom edge. It lists
// its actions vertically and can be dismissed without choosing.
type ActionSheet struct {
	title   string
	message string
	actions []Button
	styles  *Styles
	cursor  int
}

// SheetResult represents the outcome of an action sheet
type SheetResult struct {
	Index     int
	Label     string
	Dismissed bool
}

// NewActionSheet creates an action sheet offering the given actions
func NewActionSheet(title, message string, actions ...Button) *ActionSheet {
	return &ActionSheet{
		title:   title,
		message: message,
		actions: actions,
		styles:  New(),
	}
}

// Init initializes the sheet
func (s *ActionSheet) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (s *ActionSheet) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q":
			return s, func() tea.Msg {
				return SelectionMsg{Key: "dismiss", Value: SheetResult{Index: -1, Dismissed: true}}
			}

		case "up", "k", "shift+tab":
			if s.cursor > 0 {
				s.cursor--
			}
			return s, nil

		case "down", "j", "tab":
			if s.cursor < len(s.actions)-1 {
				s.cursor++
			}
			return s, nil

		case "enter", " ":
			if len(s.actions) == 0 {
				return s, nil
			}
			index := s.cursor
			label := s.actions[index].Label
			return s, func() tea.Msg {
				return SelectionMsg{
					Key:   strings.ToLower(label),
					Value: SheetResult{Index: index, Label: label},
				}
			}
		}
	}

	return s, nil
}

// View renders the sheet body
func (s *ActionSheet) View() string {
	var b strings.Builder

	if s.message != "" {
		b.WriteString(s.styles.Message.Render(s.message))
		b.WriteString("\n")
	}

	for i, action := range s.actions {
		b.WriteString(s.styles.Separator.Render(strings.Repeat("─", 24)))
		b.WriteString("\n")

		prefix := "  "
		if i == s.cursor {
			prefix = "▸ "
		}
		b.WriteString(s.styles.button(action.Role, i == s.cursor).Render(prefix + action.Label))
		b.WriteString("\n")
	}

	b.WriteString(s.styles.Footer.Render("↑ ↓: Move • Enter: Choose • Esc: Dismiss"))

	return b.String()
}

// Title returns the sheet title
func (s *ActionSheet) Title() string {
	return s.title
}

// Size reports a zero width so the host anchors the sheet to the bottom edge
func (s *ActionSheet) Size() (width, height int) {
	return 0, 2*len(s.actions) + 4
}

// Cursor returns the index of the highlighted action
func (s *ActionSheet) Cursor() int {
	return s.cursor
}
