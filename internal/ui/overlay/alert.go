package overlay

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// AlertDialog is the system-style alert: a title, a message and a cancel
// button next to a destructive one
type AlertDialog struct {
	title    string
	message  string
	buttons  [2]Button
	styles   *Styles
	selected int
}

// AlertResult represents the button chosen in an alert dialog
type AlertResult struct {
	Index int
	Label string
	Role  ButtonRole
}

// NewAlertDialog creates an alert with a "Cancel" button and a destructive
// "Continue" button. Cancel is selected initially.
func NewAlertDialog(title, message string) *AlertDialog {
	return &AlertDialog{
		title:   title,
		message: message,
		buttons: [2]Button{
			{Label: "Cancel", Role: RoleCancel},
			{Label: "Continue", Role: RoleDestructive},
		},
		styles: New(),
	}
}

// Init initializes the dialog
func (a *AlertDialog) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (a *AlertDialog) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			// Escape always picks the cancel button
			return a, a.choose(0)

		case "enter", " ":
			return a, a.choose(a.selected)

		case "left", "h", "shift+tab":
			a.selected = 0
			return a, nil

		case "right", "l", "tab":
			a.selected = 1
			return a, nil
		}
	}

	return a, nil
}

func (a *AlertDialog) choose(index int) tea.Cmd {
	b := a.buttons[index]
	return func() tea.Msg {
		return SelectionMsg{
			Key:   strings.ToLower(b.Label),
			Value: AlertResult{Index: index, Label: b.Label, Role: b.Role},
		}
	}
}

// View renders the dialog
func (a *AlertDialog) View() string {
	var b strings.Builder

	if a.message != "" {
		b.WriteString(a.styles.Message.Render(a.message))
		b.WriteString("\n\n")
	}

	labels := make([]string, len(a.buttons))
	for i, btn := range a.buttons {
		label := "[ " + btn.Label + " ]"
		labels[i] = a.styles.button(btn.Role, i == a.selected).Render(label)
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, labels[0], "    ", labels[1]))
	b.WriteString("\n")

	footer := a.styles.Footer.Render("← → / Tab: Switch • Enter: Choose • Esc: Cancel")
	b.WriteString("\n")
	b.WriteString(footer)

	return b.String()
}

// Title returns the dialog title
func (a *AlertDialog) Title() string {
	return a.title
}

// Size returns the dialog dimensions
func (a *AlertDialog) Size() (width, height int) {
	// message + blank + buttons + blank + footer + padding
	messageLines := len(strings.Split(a.message, "\n"))
	return 52, messageLines + 6
}

// Selected returns the index of the highlighted button
func (a *AlertDialog) Selected() int {
	return a.selected
}
