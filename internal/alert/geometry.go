package alert

// Card metrics in layout units. The card width is fixed regardless of the
// host width.
const (
	CardWidth     = 340.0
	CardPadding   = 20.0
	StackSpacing  = 20.0
	ButtonWidth   = 140.0
	CornerRadius  = 30.0
	ShadowRadius  = 44.4
	ShadowOpacity = 0.2
)

// Geometry is the measured host content area in layout units
type Geometry struct {
	Width       float64
	Height      float64
	BottomInset float64
}

// Rect is an axis-aligned frame in layout units
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Contains reports whether the point lies inside the rect
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Offset returns the vertical translation of the card: zero when visible,
// otherwise far enough to push it below the content area and its bottom
// inset. Negative measurements count as zero.
func Offset(visible bool, height, bottomInset float64) float64 {
	if visible {
		return 0
	}
	return max(height, 0) + max(bottomInset, 0)
}

// Layout is the resolved placement of the card for one render
type Layout struct {
	Offset    float64
	Card      Rect
	Title     Rect
	Message   Rect
	Primary   Rect
	Secondary Rect
}

// ButtonFrame returns the frame of the given action's button
func (l Layout) ButtonFrame(a Action) Rect {
	if a == Secondary {
		return l.Secondary
	}
	return l.Primary
}

// Metrics are the measured heights of the card's stacked parts
type Metrics struct {
	Title   float64
	Message float64
	Button  float64
}

// CardHeight is the full card height: padding, the three stacked parts and
// the spacing between them.
func (m Metrics) CardHeight() float64 {
	return 2*CardPadding + m.Title + StackSpacing + m.Message + StackSpacing + m.Button
}

// layoutCard centers the card in the host frame, then translates it down by
// offset.
func layoutCard(g Geometry, offset float64, m Metrics) Layout {
	cardHeight := m.CardHeight()
	card := Rect{
		X:      (g.Width - CardWidth) / 2,
		Y:      (g.Height-cardHeight)/2 + offset,
		Width:  CardWidth,
		Height: cardHeight,
	}

	inner := CardWidth - 2*CardPadding
	y := card.Y + CardPadding

	title := Rect{X: card.X + CardPadding, Y: y, Width: inner, Height: m.Title}
	y += m.Title + StackSpacing

	message := Rect{X: card.X + CardPadding, Y: y, Width: inner, Height: m.Message}
	y += m.Message + StackSpacing

	// Button row is centered inside the padded box; the gap comes from
	// whatever is left after two fixed-width buttons.
	gap := max(inner-2*ButtonWidth, 0) / 3
	rowX := card.X + CardPadding + gap

	primary := Rect{X: rowX, Y: y, Width: ButtonWidth, Height: m.Button}
	secondary := Rect{X: rowX + ButtonWidth + gap, Y: y, Width: ButtonWidth, Height: m.Button}

	return Layout{
		Offset:    offset,
		Card:      card,
		Title:     title,
		Message:   message,
		Primary:   primary,
		Secondary: secondary,
	}
}
