package view

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"

	"github.com/glabrego/reddit-cli/internal/reddit"
	"github.com/glabrego/reddit-cli/internal/tui/state"
	tuitheme "github.com/glabrego/reddit-cli/internal/tui/theme"
)

var frameNow = time.Date(2026, 2, 11, 16, 0, 0, 0, time.UTC)

func makePosts(n int) []reddit.Post {
	posts := make([]reddit.Post, n)
	for i := range posts {
		posts[i] = reddit.Post{
			ID:          fmt.Sprintf("p%d", i),
			Title:       fmt.Sprintf("Post %d", i+1),
			URL:         fmt.Sprintf("https://example.com/%d", i+1),
			Score:       10 * i,
			CreatedAt:   frameNow.Add(-3 * time.Hour),
			NumComments: i,
			Author:      "ferris",
			Subreddit:   "rust",
		}
	}
	return posts
}

func renderTestFrame(w state.Window, posts []reddit.Post, width, height int) Frame {
	return RenderFrame(FrameInput{
		Window:    w,
		Posts:     posts,
		Geometry:  state.NewGeometry(width, height, 1),
		Subreddit: "rust",
		Now:       frameNow,
	}, tuitheme.Default())
}

func textAt(f Frame, col, row int) (string, bool) {
	for _, p := range f {
		if p.Col == col && p.Row == row {
			return stripANSI(p.Text), true
		}
	}
	return "", false
}

func barRows(f Frame) []int {
	var rows []int
	for _, p := range f {
		if p.Col == barCol && p.Row != headerRow {
			rows = append(rows, p.Row)
		}
	}
	return rows
}

func assertRows(t *testing.T, got []int, from, to int) {
	t.Helper()
	if len(got) != to-from+1 {
		t.Fatalf("expected bar rows %d..%d, got %v", from, to, got)
	}
	for i, row := range got {
		if row != from+i {
			t.Fatalf("expected bar rows %d..%d, got %v", from, to, got)
		}
	}
}

func TestRenderFrame_EmptyListRendersHeaderOnly(t *testing.T) {
	f := renderTestFrame(state.NewWindow(state.ModeFree, 0, 5), nil, 80, 24)
	if len(f) != 1 {
		t.Fatalf("expected header only, got %d placements", len(f))
	}
	if got, _ := textAt(f, 1, 1); got != "r/rust mode=free:t index=0 top=0 bottom=0" {
		t.Fatalf("unexpected header: %q", got)
	}
}

func TestRenderFrame_TopAnchoredPinsContentToTop(t *testing.T) {
	f := renderTestFrame(state.TopAnchored(0, 0, 5), makePosts(50), 80, 24)

	if got, _ := textAt(f, textCol, 2); got != "1. Post 1" {
		t.Fatalf("expected first card at row 2, got %q", got)
	}
	if got, _ := textAt(f, textCol, 3); got != "https://example.com/1" {
		t.Fatalf("unexpected link row: %q", got)
	}
	if _, ok := textAt(f, textCol, 6); ok {
		t.Fatal("expected margin row 6 to stay blank")
	}
	if got, _ := textAt(f, textCol, 7); got != "2. Post 2" {
		t.Fatalf("expected second card at row 7, got %q", got)
	}
	if got, _ := textAt(f, textCol, 22); got != "5. Post 5" {
		t.Fatalf("expected fifth card title at row 22, got %q", got)
	}
	if got, _ := textAt(f, textCol, 23); got != "https://example.com/5" {
		t.Fatalf("expected fifth card cut after row 23, got %q", got)
	}
	for _, p := range f {
		if p.Row > 23 {
			t.Fatalf("placement below the body: %+v", p)
		}
	}
	assertRows(t, barRows(f), 2, 5)
}

func TestRenderFrame_BottomAnchoredPinsContentToBottom(t *testing.T) {
	f := renderTestFrame(state.BottomAnchored(5, 1, 6), makePosts(50), 80, 24)

	if got, _ := textAt(f, 1, 1); got != "r/rust mode=free:b index=5 top=1 bottom=6" {
		t.Fatalf("unexpected header: %q", got)
	}
	if got, _ := textAt(f, textCol, 2); !strings.HasPrefix(got, "10 pts") {
		t.Fatalf("expected overflow dropped from the top, row 2 = %q", got)
	}
	if got, _ := textAt(f, textCol, 20); got != "6. Post 6" {
		t.Fatalf("expected selected card title at row 20, got %q", got)
	}
	if got, _ := textAt(f, textCol, 23); !strings.HasPrefix(got, "by u/ferris") {
		t.Fatalf("expected last card byline on row 23, got %q", got)
	}
	assertRows(t, barRows(f), 20, 23)
}

func TestRenderFrame_CenteredWindow(t *testing.T) {
	f := renderTestFrame(state.Centered(10), makePosts(20), 80, 24)

	if got, _ := textAt(f, 1, 1); got != "r/rust mode=center index=10 top=8 bottom=13" {
		t.Fatalf("unexpected header: %q", got)
	}
	if got, _ := textAt(f, textCol, 2); got != "9. Post 9" {
		t.Fatalf("expected window to start at post 9, got %q", got)
	}
	assertRows(t, barRows(f), 12, 15)
}

func TestRenderFrame_ViewportSmallerThanCard(t *testing.T) {
	f := renderTestFrame(state.TopAnchored(0, 0, 1), makePosts(3), 80, 4)
	for _, p := range f {
		if p.Row > 4 {
			t.Fatalf("placement outside viewport: %+v", p)
		}
	}
	if got, _ := textAt(f, textCol, 3); got != "https://example.com/1" {
		t.Fatalf("expected card cut after two rows, got %q", got)
	}
	assertRows(t, barRows(f), 2, 3)
}

func TestRenderFrame_SelectedRowsClippedFromBottomWindow(t *testing.T) {
	f := renderTestFrame(state.BottomAnchored(1, 1, 3), makePosts(3), 80, 6)
	// Two cards make 9 lines; only the trailing 4 stay, all from card 2.
	if got, _ := textAt(f, textCol, 2); got != "3. Post 3" {
		t.Fatalf("unexpected first visible row: %q", got)
	}
	if rows := barRows(f); len(rows) != 0 {
		t.Fatalf("expected selected card to be clipped away, got bar rows %v", rows)
	}
}

func TestRenderFrame_NeverLeavesViewport(t *testing.T) {
	posts := makePosts(12)
	windows := []state.Window{
		state.TopAnchored(0, 0, 5),
		state.TopAnchored(3, 3, 8),
		state.BottomAnchored(7, 3, 8),
		state.BottomAnchored(11, 7, 12),
		state.Centered(6),
		state.Centered(11),
	}
	for width := 1; width <= 40; width += 3 {
		for height := 1; height <= 30; height++ {
			for _, w := range windows {
				g := state.NewGeometry(width, height, 1)
				w = state.Refit(w, len(posts), g.MaxVisibleCards())
				for _, p := range renderTestFrame(w, posts, width, height) {
					if p.Row < 1 || p.Row > height || p.Col < 1 || p.Col > width {
						t.Fatalf("%dx%d %v: placement out of bounds: %+v", width, height, w, p)
					}
					if end := p.Col - 1 + ansi.StringWidth(p.Text); end > width {
						t.Fatalf("%dx%d %v: text runs past the right edge: %+v", width, height, w, p)
					}
				}
			}
		}
	}
}

func TestRenderFrame_ZeroViewport(t *testing.T) {
	if f := renderTestFrame(state.TopAnchored(0, 0, 1), makePosts(1), 0, 0); f != nil {
		t.Fatalf("expected no placements, got %+v", f)
	}
}
