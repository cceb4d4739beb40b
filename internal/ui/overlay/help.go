package overlay

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/customalert/internal/ui/styles"
)

// HelpGroup is a titled set of key bindings
type HelpGroup struct {
	Name     string
	Bindings []key.Binding
}

// HelpOverlay displays a scrollable keybinding reference
type HelpOverlay struct {
	styles     *Styles
	groups     []HelpGroup
	scroll     int
	viewHeight int
}

// helpViewHeight is the number of content lines shown at once
const helpViewHeight = 16

// NewHelpOverlay creates a help overlay listing the given groups.
// Disabled bindings and bindings without help text are left out.
func NewHelpOverlay(groups ...HelpGroup) *HelpOverlay {
	return &HelpOverlay{
		styles:     New(),
		groups:     groups,
		viewHeight: helpViewHeight,
	}
}

// Init initializes the overlay
func (h *HelpOverlay) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (h *HelpOverlay) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return h, nil
	}

	switch keyMsg.String() {
	case "esc", "q", "?":
		return h, func() tea.Msg { return CloseOverlayMsg{} }
	case "j", "down":
		h.scroll = min(h.scroll+1, h.maxScroll())
	case "k", "up":
		h.scroll = max(h.scroll-1, 0)
	case "g":
		h.scroll = 0
	case "G":
		h.scroll = h.maxScroll()
	}
	return h, nil
}

// lines renders every group without scrolling applied
func (h *HelpOverlay) lines() []string {
	heading := lipgloss.NewStyle().Foreground(styles.Blue).Bold(true)

	var lines []string
	for _, group := range h.groups {
		var entries []string
		for _, b := range group.Bindings {
			help := b.Help()
			if !b.Enabled() || help.Key == "" {
				continue
			}
			entries = append(entries, "  "+h.styles.MenuKey.Render(help.Key)+"  "+h.styles.MenuItem.Render(help.Desc))
		}
		if len(entries) == 0 {
			continue
		}
		if len(lines) > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, heading.Render(group.Name+":"))
		lines = append(lines, entries...)
	}
	return lines
}

func (h *HelpOverlay) maxScroll() int {
	return max(0, len(h.lines())-h.viewHeight)
}

// View renders the visible part of the reference
func (h *HelpOverlay) View() string {
	lines := h.lines()
	h.scroll = min(h.scroll, h.maxScroll())

	end := min(h.scroll+h.viewHeight, len(lines))
	result := strings.Join(lines[h.scroll:end], "\n")

	if h.maxScroll() > 0 {
		hint := h.styles.Footer.Render("[j/k to scroll, g/G to jump, esc to close]")
		result += "\n" + hint
	}
	return result
}

// Title returns the overlay title
func (h *HelpOverlay) Title() string {
	return "Keys"
}

// Size returns the overlay dimensions
func (h *HelpOverlay) Size() (width, height int) {
	return 44, min(len(h.lines()), h.viewHeight) + 2
}

// Scroll returns the index of the first visible line
func (h *HelpOverlay) Scroll() int {
	return h.scroll
}
