// Package alert computes the placement of a two-action alert card that
// slides in from below the host content.
//
// The Controller holds no visibility state of its own. Every call reads the
// host's Flag, so the result always reflects the flag and geometry of the
// current render. Animating between successive offsets is left to the host.
package alert

// Default button labels. They are presentational; neither slot carries
// cancel or confirm semantics.
const (
	DefaultPrimaryLabel   = "Cancel"
	DefaultSecondaryLabel = "Continue"
)

// Action identifies one of the two button slots
type Action int

const (
	Primary Action = iota
	Secondary
)

func (a Action) String() string {
	switch a {
	case Primary:
		return "primary"
	case Secondary:
		return "secondary"
	default:
		return "unknown"
	}
}

// State is the visibility state selected by the flag
type State int

const (
	Hidden State = iota
	Shown
)

func (s State) String() string {
	if s == Shown {
		return "shown"
	}
	return "hidden"
}

// Spec is the content and callbacks of one alert. The host may supply a new
// Spec on any render pass.
type Spec struct {
	Title          string
	Message        string
	PrimaryLabel   string
	SecondaryLabel string
	OnPrimary      func()
	OnSecondary    func()
}

// Label returns the button label for an action, falling back to the defaults
func (s Spec) Label(a Action) string {
	if a == Secondary {
		if s.SecondaryLabel != "" {
			return s.SecondaryLabel
		}
		return DefaultSecondaryLabel
	}
	if s.PrimaryLabel != "" {
		return s.PrimaryLabel
	}
	return DefaultPrimaryLabel
}

// Controller resolves a Spec and a shared visibility Flag into a card layout
type Controller struct {
	visible *Flag
	spec    Spec
}

// New creates a controller reading the given flag
func New(visible *Flag, spec Spec) *Controller {
	return &Controller{
		visible: visible,
		spec:    spec,
	}
}

// SetSpec replaces the content and callbacks
func (c *Controller) SetSpec(spec Spec) {
	c.spec = spec
}

// Spec returns the current content and callbacks
func (c *Controller) Spec() Spec {
	return c.spec
}

// Visible reports the current flag value
func (c *Controller) Visible() bool {
	return c.visible.Get()
}

// State returns Shown when the flag is set and Hidden otherwise
func (c *Controller) State() State {
	if c.visible.Get() {
		return Shown
	}
	return Hidden
}

// Offset returns the card's vertical translation for the given geometry
func (c *Controller) Offset(g Geometry) float64 {
	return Offset(c.visible.Get(), g.Height, g.BottomInset)
}

// Layout places the card for the given geometry and measured part heights
func (c *Controller) Layout(g Geometry, m Metrics) Layout {
	return layoutCard(g, c.Offset(g), m)
}

// Activate runs the callback bound to the action exactly once. A missing
// callback is a no-op. The flag is left alone; closing the alert is the
// callback's job.
func (c *Controller) Activate(a Action) {
	var fn func()
	switch a {
	case Primary:
		fn = c.spec.OnPrimary
	case Secondary:
		fn = c.spec.OnSecondary
	}
	if fn != nil {
		fn()
	}
}
