package view

import (
	"time"

	"github.com/charmbracelet/x/ansi"

	"github.com/glabrego/reddit-cli/internal/reddit"
	"github.com/glabrego/reddit-cli/internal/tui/state"
	tuitheme "github.com/glabrego/reddit-cli/internal/tui/theme"
)

const (
	headerRow = 1
	bodyRow   = 2
	barCol    = 1
	textCol   = 2
)

// Placement puts styled text at a 1-based (Col, Row) cell.
type Placement struct {
	Col  int
	Row  int
	Text string
}

// Frame is one full-screen redraw, in drawing order.
type Frame []Placement

type FrameInput struct {
	Window    state.Window
	Posts     []reddit.Post
	Geometry  state.Geometry
	Subreddit string
	Now       time.Time
}

// RenderFrame lays out the header, the cards of the visible window and the
// selection bar. Every placement lies inside the viewport; text is cut at the
// right edge.
func RenderFrame(in FrameInput, th tuitheme.Theme) Frame {
	g := in.Geometry
	if g.Width < 1 || g.Height < 1 {
		return nil
	}

	count := len(in.Posts)
	first, last := in.Window.Bounds(count, g.MaxVisibleCards())
	frame := Frame{{
		Col:  barCol,
		Row:  headerRow,
		Text: ansi.Truncate(Header(in.Subreddit, in.Window.Anchor, in.Window.Selected, first, last, th), g.Width, ""),
	}}

	first = min(max(first, 0), count)
	last = min(max(last, first), count)
	if first == last || g.Degenerate() {
		return frame
	}
	body := g.BodyHeight()

	lines := cardBlock(in, first, last, th)
	offset := 0
	if len(lines) > body {
		if in.Window.Anchor == state.AnchorBottom {
			offset = len(lines) - body
			lines = lines[offset:]
		} else {
			lines = lines[:body]
		}
	}

	if g.Width >= textCol {
		for i, line := range lines {
			if line == "" {
				continue
			}
			frame = append(frame, Placement{
				Col:  textCol,
				Row:  bodyRow + i,
				Text: ansi.Truncate(line, g.Width-textCol+1, ""),
			})
		}
	}

	sel := in.Window.Selected
	if sel < first || sel >= last {
		return frame
	}
	top := (sel-first)*g.CardHeight() - offset
	for i := 0; i < g.TextLines(); i++ {
		pos := top + i
		if pos < 0 || pos >= len(lines) {
			continue
		}
		frame = append(frame, Placement{Col: barCol, Row: bodyRow + pos, Text: th.Highlight.Render(" ")})
	}
	return frame
}

// cardBlock builds the lines of cards [first, last) separated by margin rows.
func cardBlock(in FrameInput, first, last int, th tuitheme.Theme) []string {
	g := in.Geometry
	textLines := g.TextLines()
	margin := g.MarginLines()
	lines := make([]string, 0, (last-first)*g.CardHeight())
	for i := first; i < last; i++ {
		card := CardLines(in.Posts[i], i, in.Subreddit, in.Now, th)
		for j := 0; j < textLines; j++ {
			if j < len(card) {
				lines = append(lines, card[j])
			} else {
				lines = append(lines, "")
			}
		}
		if i < last-1 {
			for j := 0; j < margin; j++ {
				lines = append(lines, "")
			}
		}
	}
	return lines
}
