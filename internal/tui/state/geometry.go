package state

const (
	DefaultCardTextLines   = 4
	DefaultCardMarginLines = 1

	// headerLines is the status row plus the row reserved below the cards.
	headerLines = 2
)

// Geometry holds the viewport size and the per-card line budget.
type Geometry struct {
	Width           int
	Height          int
	CardTextLines   int
	CardMarginLines int
}

func NewGeometry(width, height, margin int) Geometry {
	return Geometry{
		Width:           width,
		Height:          height,
		CardTextLines:   DefaultCardTextLines,
		CardMarginLines: margin,
	}
}

func (g Geometry) TextLines() int {
	if g.CardTextLines < 1 {
		return 1
	}
	return g.CardTextLines
}

func (g Geometry) MarginLines() int {
	if g.CardMarginLines < 0 {
		return 0
	}
	return g.CardMarginLines
}

// CardHeight is never zero so callers can divide by it.
func (g Geometry) CardHeight() int {
	return g.TextLines() + g.MarginLines()
}

// BodyHeight is the number of rows available to cards.
func (g Geometry) BodyHeight() int {
	if g.Height <= headerLines {
		return 0
	}
	return g.Height - headerLines
}

// MaxVisibleCards counts the last, possibly partial, card as visible.
func (g Geometry) MaxVisibleCards() int {
	return g.BodyHeight()/g.CardHeight() + 1
}

func (g Geometry) Degenerate() bool {
	return g.Width <= 0 || g.Height <= headerLines
}
