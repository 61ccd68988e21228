package state

import "fmt"

// Anchor says which edge of the window stays put while the selection moves.
type Anchor int

const (
	AnchorTop Anchor = iota
	AnchorBottom
	AnchorCenter
)

func (a Anchor) String() string {
	switch a {
	case AnchorTop:
		return "free:t"
	case AnchorBottom:
		return "free:b"
	case AnchorCenter:
		return "center"
	default:
		return fmt.Sprintf("anchor(%d)", int(a))
	}
}

// Mode picks the variant a session starts in.
type Mode string

const (
	ModeFree   Mode = "free"
	ModeCenter Mode = "center"
)

// Window is the selected index plus the visible range [First, Last).
// First and Last are only meaningful for the top and bottom anchored
// variants; a centered window derives its range from Selected on every
// render, see Bounds.
type Window struct {
	Anchor   Anchor
	Selected int
	First    int
	Last     int
}

func TopAnchored(selected, first, last int) Window {
	return Window{Anchor: AnchorTop, Selected: selected, First: first, Last: last}
}

func BottomAnchored(selected, first, last int) Window {
	return Window{Anchor: AnchorBottom, Selected: selected, First: first, Last: last}
}

func Centered(selected int) Window {
	return Window{Anchor: AnchorCenter, Selected: selected}
}

// NewWindow builds the startup window with the selection on the first item.
func NewWindow(mode Mode, itemCount, maxVisible int) Window {
	if mode == ModeCenter {
		return Centered(0)
	}
	return TopAnchored(0, 0, min(max(maxVisible, 0), max(itemCount, 0)))
}

// Bounds resolves the visible range for rendering.
func (w Window) Bounds(itemCount, maxVisible int) (int, int) {
	if w.Anchor == AnchorCenter {
		return CenteredWindow(itemCount, w.Selected, maxVisible)
	}
	return w.First, w.Last
}

// Valid reports whether w satisfies 0 <= first <= selected < last <= itemCount
// and last-first <= maxVisible. An empty list only accepts the zero range.
func (w Window) Valid(itemCount, maxVisible int) bool {
	first, last := w.Bounds(itemCount, maxVisible)
	if itemCount <= 0 {
		return w.Selected == 0 && first == 0 && last == 0
	}
	if first < 0 || first > w.Selected || w.Selected >= last || last > itemCount {
		return false
	}
	return last-first <= maxVisible
}

func (w Window) String() string {
	return fmt.Sprintf("%s(%d, %d, %d)", w.Anchor, w.Selected, w.First, w.Last)
}

// Advance moves the selection one item down. Calls on the last item (or an
// empty list) return w unchanged, which keeps Selected below itemCount for
// every variant.
func Advance(w Window, itemCount, maxVisible int) Window {
	if itemCount <= 0 || w.Selected >= itemCount-1 {
		return w
	}
	c := w.Selected + 1
	t, b := w.First, w.Last
	switch w.Anchor {
	case AnchorBottom:
		if b <= c {
			diff := c - b + 1
			return BottomAnchored(c, t+diff, b+diff)
		}
		return BottomAnchored(c, t, b)
	case AnchorTop:
		if b <= c {
			// Only a single-card window gets here: the selection left the
			// window entirely, so slide it far enough to contain c.
			diff := c - b + 1
			return BottomAnchored(c, t+diff, b+diff)
		}
		if c == b-1 {
			return BottomAnchored(c, t, b)
		}
		return TopAnchored(c, t, b)
	default:
		return Centered(c)
	}
}

// Retreat moves the selection one item up, stopping at zero.
func Retreat(w Window, itemCount, maxVisible int) Window {
	if itemCount <= 0 {
		return w
	}
	c := max(w.Selected-1, 0)
	t, b := w.First, w.Last
	switch w.Anchor {
	case AnchorTop:
		if t > c {
			diff := t - c
			return TopAnchored(c, t-diff, b-diff)
		}
		return TopAnchored(c, t, b)
	case AnchorBottom:
		if t > c {
			diff := t - c
			return TopAnchored(c, t-diff, b-diff)
		}
		if c == t {
			return TopAnchored(c, t, b)
		}
		return BottomAnchored(c, t, b)
	default:
		return Centered(c)
	}
}

// Refit reshapes w after the item count or the viewport changed, keeping the
// anchor variant and the selection (clamped into the list).
func Refit(w Window, itemCount, maxVisible int) Window {
	if itemCount <= 0 {
		return Window{Anchor: w.Anchor}
	}
	sel := ClampCursor(w.Selected, itemCount)
	if w.Anchor == AnchorCenter {
		return Centered(sel)
	}
	size := min(max(maxVisible, 1), itemCount)

	switch w.Anchor {
	case AnchorBottom:
		last := min(max(w.Last, sel+1), itemCount)
		first := last - size
		if first < 0 {
			first = 0
			last = size
		}
		if first > sel {
			first = sel
			last = first + size
		}
		return BottomAnchored(sel, first, last)
	default:
		first := min(max(w.First, 0), sel)
		if sel >= first+size {
			first = sel - size + 1
		}
		if first+size > itemCount {
			first = itemCount - size
		}
		return TopAnchored(sel, first, first+size)
	}
}
