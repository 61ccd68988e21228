package view

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	tuitheme "github.com/glabrego/reddit-cli/internal/tui/theme"

	"github.com/glabrego/reddit-cli/internal/reddit"
)

// CardLines lays out the four text lines of one post: title, link, score
// line and byline. index is the post's position in the listing.
func CardLines(post reddit.Post, index int, subreddit string, now time.Time, th tuitheme.Theme) []string {
	collection := post.Subreddit
	if collection == "" {
		collection = subreddit
	}

	title := th.CardTitle.Render(fmt.Sprintf("%d. %s", index+1, strings.TrimSpace(post.Title)))

	link := post.URL
	if post.IsSelf || link == "" {
		link = "self." + collection
	}

	score := th.Meta.Render(fmt.Sprintf("%s pts", humanize.Comma(int64(post.Score)))) +
		" " + th.VoteGlyph(post.Vote) + " " +
		th.Meta.Render(fmt.Sprintf("%s - %s comments", RelativeTimeLabel(now, post.CreatedAt), humanize.Comma(int64(post.NumComments))))

	byline := fmt.Sprintf("%s %s %s %s %s %s",
		th.Meta.Render("by"),
		th.Author.Render("u/"+post.Author),
		th.Meta.Render("in"),
		th.Subreddit.Render("r/"+collection),
		th.RenderNSFW(post.NSFW),
		th.RenderFlair(post.Flair),
	)

	return []string{title, th.Link.Render(link), score, byline}
}

func RelativeTimeLabel(now, then time.Time) string {
	if now.IsZero() {
		now = time.Now()
	}
	if then.IsZero() {
		return "unknown"
	}
	if then.After(now) {
		return "just now"
	}
	d := now.Sub(then)
	if d < time.Minute {
		return "just now"
	}
	if d < time.Hour {
		n := int(d / time.Minute)
		if n == 1 {
			return "1 minute ago"
		}
		return fmt.Sprintf("%d minutes ago", n)
	}
	if d < 24*time.Hour {
		n := int(d / time.Hour)
		if n == 1 {
			return "1 hour ago"
		}
		return fmt.Sprintf("%d hours ago", n)
	}
	n := int(d / (24 * time.Hour))
	if n == 1 {
		return "1 day ago"
	}
	return fmt.Sprintf("%d days ago", n)
}
