// Package customalert draws an alert.Controller as a card over terminal
// content and routes keyboard and mouse activations to its two buttons.
package customalert

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/customalert/internal/alert"
	"github.com/riordanpawley/customalert/internal/ui/overlay"
	"github.com/riordanpawley/customalert/internal/ui/styles"
)

// cellRect is a button's position in cells, relative to the card's top-left
type cellRect struct {
	x, y, w, h int
}

func (r cellRect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

// card is one rendering of the alert card
type card struct {
	view    string
	width   int
	height  int
	buttons [2]cellRect
}

// Overlay renders an alert card over host content. It reads the
// controller's flag on every call and never writes it.
type Overlay struct {
	ctrl   *alert.Controller
	scale  Scale
	styles *styles.Styles
	focus  alert.Action
}

// New creates a renderer for the given controller
func New(ctrl *alert.Controller, scale Scale, s *styles.Styles) *Overlay {
	return &Overlay{
		ctrl:   ctrl,
		scale:  scale,
		styles: s,
		focus:  alert.Primary,
	}
}

// Controller returns the wrapped controller
func (o *Overlay) Controller() *alert.Controller {
	return o.ctrl
}

// Focus returns the button that enter activates
func (o *Overlay) Focus() alert.Action {
	return o.focus
}

// TargetRows is the controller's offset for a host of the given size,
// converted to rows
func (o *Overlay) TargetRows(width, height, insetRows int) int {
	return o.scale.Rows(o.ctrl.Offset(o.scale.Geometry(width, height, insetRows)))
}

// CardSize returns the card's size in cells. The width depends only on the
// scale, never on the host.
func (o *Overlay) CardSize() (width, height int) {
	c := o.build()
	return c.width, c.height
}

// Card renders the card on its own
func (o *Overlay) Card() string {
	return o.build().view
}

func (o *Overlay) build() card {
	spec := o.ctrl.Spec()

	cardWidth := o.scale.Columns(alert.CardWidth)
	padX := padding(alert.CardPadding, o.scale.UnitsPerColumn, 1)
	padY := padding(alert.CardPadding, o.scale.UnitsPerRow, 0)
	spacing := padding(alert.StackSpacing, o.scale.UnitsPerRow, 0)

	// Border takes one cell on each side
	inner := max(cardWidth-2-2*padX, 3)
	buttonWidth := min(o.scale.Columns(alert.ButtonWidth), (inner-1)/2)
	gap := inner - 2*buttonWidth
	if gap > 2 {
		gap = 2
	}

	title := o.styles.CardTitle.
		Width(inner).
		Align(lipgloss.Center).
		Render(spec.Title)
	message := o.styles.CardMessage.
		Width(inner).
		Align(lipgloss.Center).
		Render(spec.Message)

	primary := o.styles.ActionButton(int(alert.Primary), o.focus == alert.Primary).
		Width(buttonWidth).
		Render(spec.Label(alert.Primary))
	secondary := o.styles.ActionButton(int(alert.Secondary), o.focus == alert.Secondary).
		Width(buttonWidth).
		Render(spec.Label(alert.Secondary))
	row := lipgloss.JoinHorizontal(lipgloss.Top, primary, strings.Repeat(" ", gap), secondary)
	rowLeft := (inner - lipgloss.Width(row)) / 2
	row = lipgloss.PlaceHorizontal(inner, lipgloss.Center, row)

	parts := []string{title}
	parts = append(parts, spacer(spacing)...)
	parts = append(parts, message)
	parts = append(parts, spacer(spacing)...)
	parts = append(parts, row)

	view := o.styles.Card.
		Padding(padY, padX).
		Width(cardWidth - 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, parts...))

	rowY := 1 + padY + lipgloss.Height(title) + spacing + lipgloss.Height(message) + spacing
	left := 1 + padX + rowLeft
	buttonHeight := lipgloss.Height(primary)

	return card{
		view:   view,
		width:  lipgloss.Width(view),
		height: lipgloss.Height(view),
		buttons: [2]cellRect{
			{x: left, y: rowY, w: buttonWidth, h: buttonHeight},
			{x: left + buttonWidth + gap, y: rowY, w: buttonWidth, h: buttonHeight},
		},
	}
}

func spacer(rows int) []string {
	out := make([]string, rows)
	for i := range out {
		out[i] = ""
	}
	return out
}

// origin returns the card's top-left cell: centered on both axes, then
// pushed down by offsetRows
func origin(c card, width, height, offsetRows int) (x, y int) {
	return (width - c.width) / 2, (height-c.height)/2 + offsetRows
}

// Render draws the card over content, which is width x height cells,
// translated down by offsetRows. A card that is hidden and already at its
// hidden offset is not drawn.
func (o *Overlay) Render(content string, width, height, offsetRows, insetRows int) string {
	if !o.ctrl.Visible() && offsetRows >= o.TargetRows(width, height, insetRows) {
		return content
	}

	c := o.build()
	x, y := origin(c, width, height, offsetRows)

	lines := overlay.Clip(strings.Split(c.view, "\n"), x, width)
	return overlay.SpliceOverlay(content, lines, x, y)
}

// ButtonAt hit-tests a cell against the card's buttons
func (o *Overlay) ButtonAt(x, y, width, height, offsetRows int) (alert.Action, bool) {
	c := o.build()
	ox, oy := origin(c, width, height, offsetRows)

	for i, r := range c.buttons {
		if r.contains(x-ox, y-oy) {
			return alert.Action(i), true
		}
	}
	return alert.Primary, false
}

// Covers reports whether a cell lies on the card
func (o *Overlay) Covers(x, y, width, height, offsetRows int) bool {
	c := o.build()
	ox, oy := origin(c, width, height, offsetRows)
	return cellRect{x: ox, y: oy, w: c.width, h: c.height}.contains(x, y)
}

// Activate focuses the action and runs its callback once
func (o *Overlay) Activate(a alert.Action) {
	o.focus = a
	o.ctrl.Activate(a)
}

// HandleKey moves focus or activates a button. It reports whether the key
// was consumed; nothing is consumed while the alert is hidden.
func (o *Overlay) HandleKey(msg tea.KeyMsg) bool {
	if !o.ctrl.Visible() {
		return false
	}

	switch msg.String() {
	case "left", "h", "shift+tab":
		o.focus = alert.Primary
	case "right", "l", "tab":
		o.focus = alert.Secondary
	case "enter", " ":
		o.Activate(o.focus)
	case "1":
		o.Activate(alert.Primary)
	case "2":
		o.Activate(alert.Secondary)
	default:
		return false
	}
	return true
}
