// Package app contains the demo screen model and TEA implementation.
//
// The screen owns three visibility flags, one per way of presenting a
// dialog. Its buttons and the dialogs' callbacks write the flags; the
// custom alert only reads its flag, and the screen animates every change
// of that flag with a spring.
package app

import (
	"fmt"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/key"
	"github.com/riordanpawley/customalert/internal/alert"
	"github.com/riordanpawley/customalert/internal/config"
	"github.com/riordanpawley/customalert/internal/types"
	"github.com/riordanpawley/customalert/internal/ui/animation"
	"github.com/riordanpawley/customalert/internal/ui/customalert"
	"github.com/riordanpawley/customalert/internal/ui/overlay"
	"github.com/riordanpawley/customalert/internal/ui/styles"
	"github.com/riordanpawley/customalert/internal/ui/toast"
)

// Re-export Mode type and constants for convenience
type Mode = types.Mode

const (
	ModeMenu   = types.ModeMenu
	ModeAlert  = types.ModeAlert
	ModeDialog = types.ModeDialog
	ModeSheet  = types.ModeSheet
	ModeHelp   = types.ModeHelp
)

// Re-export Toast type and constants for convenience
type Toast = types.Toast
type ToastLevel = types.ToastLevel

const (
	ToastInfo    = types.ToastInfo
	ToastSuccess = types.ToastSuccess
	ToastWarning = types.ToastWarning
	ToastError   = types.ToastError
)

// statusRows is the height of the status bar under the content area
const statusRows = 1

// Model is the main application state
type Model struct {
	// Visibility flags owned by the screen
	showCustomAlert *alert.Flag
	showAlert       *alert.Flag
	showSheet       *alert.Flag

	// Custom alert
	customAlert  *customalert.Overlay
	spring       *animation.Spring
	alertVisible bool // flag value the spring was last aimed for

	// Dialogs
	overlayStack  *overlay.Stack
	overlayStyles *overlay.Styles

	// Menu
	cursor int
	keys   KeyMap

	// Toasts
	toasts []Toast

	// Terminal size
	width  int
	height int

	styles *styles.Styles
	config *config.Config
	outbox *outbox
	logger *slog.Logger
}

// New creates a new application model with the given config
func New(cfg *config.Config) Model {
	logger := slog.Default()
	st := styles.New()
	out := &outbox{}

	showCustomAlert := alert.NewFlag(false)

	// Both callbacks close the card, the way the trigger opened it
	var ctrl *alert.Controller
	dismiss := func(a alert.Action) func() {
		return func() {
			showCustomAlert.Toggle()
			out.post(alertChoiceMsg{action: a, label: ctrl.Spec().Label(a)})
		}
	}

	ctrl = alert.New(showCustomAlert, alert.Spec{
		Title:          cfg.Alert.Title,
		Message:        cfg.Alert.Message,
		PrimaryLabel:   cfg.Alert.PrimaryLabel,
		SecondaryLabel: cfg.Alert.SecondaryLabel,
		OnPrimary:      dismiss(alert.Primary),
		OnSecondary:    dismiss(alert.Secondary),
	})

	return Model{
		showCustomAlert: showCustomAlert,
		showAlert:       alert.NewFlag(false),
		showSheet:       alert.NewFlag(false),
		customAlert:     customalert.New(ctrl, customalert.ScaleFrom(cfg.Display), st),
		spring:          animation.New(cfg.Animation),
		overlayStack:    overlay.NewStack(),
		overlayStyles:   overlay.New(),
		keys:            DefaultKeyMap,
		toasts:          []Toast{},
		styles:          st,
		config:          cfg,
		outbox:          out,
		logger:          logger,
	}
}

// Init returns the initial command for the application
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		cmd := m.syncAlert(true)
		return m, cmd

	case animation.FrameMsg:
		return m, m.spring.Update(msg)

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			return m, tea.Quit
		}
		return m.afterInput(m.handleKey(msg))

	case tea.MouseMsg:
		return m.afterInput(m.handleMouse(msg))

	// Overlay messages
	case overlay.CloseOverlayMsg:
		m.closeDialog()
		return m, nil

	case overlay.SelectionMsg:
		return m.handleSelection(msg)

	case alertChoiceMsg:
		m.logger.Info("custom alert action", "action", msg.action.String(), "label", msg.label)
		return m, m.addToast(ToastInfo, fmt.Sprintf("Custom alert: %s", msg.label))

	case toastTickMsg:
		m.toasts = toast.Active(m.toasts, time.Time(msg))
		if len(m.toasts) > 0 {
			return m, toastTick()
		}
		return m, nil
	}

	return m, nil
}

// afterInput animates any change the input made to the custom alert flag
// and delivers messages posted by its callbacks
func (m Model) afterInput(model tea.Model, cmd tea.Cmd) (tea.Model, tea.Cmd) {
	next := model.(Model)
	animate := next.syncAlert(false)
	return next, tea.Batch(cmd, animate, next.outbox.drain())
}

// syncAlert points the spring at the offset for the current flag value.
// A flag change animates; a resize while idle snaps.
func (m *Model) syncAlert(resized bool) tea.Cmd {
	if m.width == 0 || m.height == 0 {
		return nil
	}

	target := float64(m.customAlert.TargetRows(m.width, m.contentHeight(), m.insetRows()))
	visible := m.showCustomAlert.Get()

	if visible != m.alertVisible {
		m.alertVisible = visible
		m.logger.Debug("custom alert flag changed", "visible", visible, "targetRows", target)
		return m.spring.SetTarget(target)
	}
	if m.spring.Animating() {
		return m.spring.SetTarget(target)
	}
	if resized || target != m.spring.Target() {
		m.spring.Snap(target)
	}
	return nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The custom alert is modal for the keyboard
	if m.showCustomAlert.Get() {
		m.customAlert.HandleKey(msg)
		return m, nil
	}

	if !m.overlayStack.IsEmpty() {
		return m, m.overlayStack.Update(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		return m, m.overlayStack.Push(overlay.NewHelpOverlay(m.keys.helpGroups()...))

	case key.Matches(msg, m.keys.Up):
		m.cursor = (m.cursor + len(menuItems) - 1) % len(menuItems)

	case key.Matches(msg, m.keys.Down):
		m.cursor = (m.cursor + 1) % len(menuItems)

	case key.Matches(msg, m.keys.Choose):
		return m.trigger(m.cursor)

	case key.Matches(msg, m.keys.Shortcut):
		m.cursor = int(msg.Runes[0] - '1')
		return m.trigger(m.cursor)
	}

	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if !m.overlayStack.IsEmpty() {
		return m, nil
	}

	if m.showCustomAlert.Get() {
		rows := m.spring.Rows()
		if a, ok := m.customAlert.ButtonAt(msg.X, msg.Y, m.width, m.contentHeight(), rows); ok {
			m.customAlert.Activate(a)
			return m, nil
		}
		if m.customAlert.Covers(msg.X, msg.Y, m.width, m.contentHeight(), rows) {
			return m, nil
		}
	}

	// The trigger buttons stay clickable around the card
	_, spans := m.renderMenu(m.width, m.contentHeight())
	for i, span := range spans {
		if span.contains(msg.X, msg.Y) {
			m.cursor = i
			return m.trigger(i)
		}
	}
	return m, nil
}

// trigger runs the action of a menu button
func (m Model) trigger(item int) (tea.Model, tea.Cmd) {
	switch item {
	case itemCustomAlert:
		m.showCustomAlert.Toggle()
		return m, nil

	case itemAlert:
		m.showAlert.Toggle()
		m.logger.Debug("system alert flag changed", "visible", m.showAlert.Get())
		if m.showAlert.Get() {
			return m, m.overlayStack.Push(overlay.NewAlertDialog(m.config.SystemAlert.Title, m.config.SystemAlert.Message))
		}

	case itemSheet:
		m.showSheet.Toggle()
		m.logger.Debug("confirmation dialog flag changed", "visible", m.showSheet.Get())
		if m.showSheet.Get() {
			return m, m.overlayStack.Push(overlay.NewActionSheet(m.config.Sheet.Title, m.config.Sheet.Message,
				overlay.Button{Label: "Cancel"},
				overlay.Button{Label: "Continue"},
			))
		}
	}

	return m, nil
}

// handleSelection reacts to a choice made in a dialog and closes it
func (m Model) handleSelection(msg overlay.SelectionMsg) (tea.Model, tea.Cmd) {
	m.closeDialog()

	switch result := msg.Value.(type) {
	case overlay.AlertResult:
		m.logger.Info("system alert action", "label", result.Label, "role", result.Role.String())
		level := ToastInfo
		if result.Role == overlay.RoleDestructive {
			level = ToastWarning
		}
		return m, m.addToast(level, fmt.Sprintf("Alert: %s", result.Label))

	case overlay.SheetResult:
		if result.Dismissed {
			m.logger.Info("confirmation dialog dismissed")
			return m, nil
		}
		m.logger.Info("confirmation dialog action", "label", result.Label)
		return m, m.addToast(ToastSuccess, fmt.Sprintf("Confirmation: %s", result.Label))
	}

	return m, nil
}

// closeDialog pops the top dialog and clears the flag that presented it
func (m *Model) closeDialog() {
	switch m.overlayStack.Pop().(type) {
	case *overlay.AlertDialog:
		m.showAlert.Set(false)
	case *overlay.ActionSheet:
		m.showSheet.Set(false)
	}
}

// Mode reports which surface receives keyboard input
func (m Model) Mode() Mode {
	if m.showCustomAlert.Get() {
		return ModeAlert
	}
	switch m.overlayStack.Current().(type) {
	case *overlay.AlertDialog:
		return ModeDialog
	case *overlay.ActionSheet:
		return ModeSheet
	case *overlay.HelpOverlay:
		return ModeHelp
	}
	return ModeMenu
}

// addToast queues a notification and starts the expiry ticker
func (m *Model) addToast(level ToastLevel, message string) tea.Cmd {
	lifetime := time.Duration(m.config.Display.ToastSeconds) * time.Second
	if lifetime <= 0 {
		return nil
	}
	m.toasts = append(m.toasts, types.NewToast(level, message, time.Now(), lifetime))
	return toastTick()
}

// contentHeight is the area above the status bar
func (m Model) contentHeight() int {
	return max(m.height-statusRows, 0)
}

func (m Model) insetRows() int {
	return m.config.Display.BottomInsetRows
}
