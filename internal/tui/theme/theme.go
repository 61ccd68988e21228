package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/glabrego/reddit-cli/internal/reddit"
)

type Theme struct {
	Title     lipgloss.Style
	MetaLabel lipgloss.Style
	MetaValue lipgloss.Style

	CardTitle lipgloss.Style
	Link      lipgloss.Style
	Meta      lipgloss.Style
	VoteUp    lipgloss.Style
	VoteDown  lipgloss.Style
	VoteNone  lipgloss.Style
	Author    lipgloss.Style
	Subreddit lipgloss.Style
	NSFW      lipgloss.Style
	Flair     lipgloss.Style
	Highlight lipgloss.Style
}

func Default() Theme {
	cpMauve := lipgloss.Color("#cba6f7")
	cpRed := lipgloss.Color("#f38ba8")
	cpYellow := lipgloss.Color("#f9e2af")
	cpGreen := lipgloss.Color("#a6e3a1")
	cpBlue := lipgloss.Color("#89b4fa")
	cpPink := lipgloss.Color("#f5c2e7")
	cpText := lipgloss.Color("#cdd6f4")
	cpSubtext1 := lipgloss.Color("#bac2de")
	cpOverlay1 := lipgloss.Color("#7f849c")
	cpCrust := lipgloss.Color("#11111b")

	return Theme{
		Title:     lipgloss.NewStyle().Bold(true).Foreground(cpMauve),
		MetaLabel: lipgloss.NewStyle().Foreground(cpOverlay1),
		MetaValue: lipgloss.NewStyle().Foreground(cpSubtext1),

		CardTitle: lipgloss.NewStyle().Bold(true).Foreground(cpText),
		Link:      lipgloss.NewStyle().Underline(true).Foreground(cpBlue),
		Meta:      lipgloss.NewStyle().Foreground(cpText),
		VoteUp:    lipgloss.NewStyle().Foreground(cpGreen),
		VoteDown:  lipgloss.NewStyle().Foreground(cpRed),
		VoteNone:  lipgloss.NewStyle().Foreground(cpText),
		Author:    lipgloss.NewStyle().Foreground(cpGreen),
		Subreddit: lipgloss.NewStyle().Foreground(cpYellow),
		NSFW:      lipgloss.NewStyle().Background(cpRed).Foreground(cpCrust),
		Flair:     lipgloss.NewStyle().Foreground(cpPink),
		Highlight: lipgloss.NewStyle().Background(cpText),
	}
}

// VoteGlyph renders +, - or o for an upvoted, downvoted or neutral post.
func (t Theme) VoteGlyph(vote reddit.Vote) string {
	switch vote {
	case reddit.VoteUp:
		return t.VoteUp.Render("+")
	case reddit.VoteDown:
		return t.VoteDown.Render("-")
	default:
		return t.VoteNone.Render("o")
	}
}

// RenderNSFW returns "" for safe posts so the card line keeps its spacing.
func (t Theme) RenderNSFW(nsfw bool) string {
	if !nsfw {
		return ""
	}
	return t.NSFW.Render("NSFW")
}

func (t Theme) RenderFlair(flair string) string {
	if flair == "" {
		return ""
	}
	return t.Flair.Render("[" + flair + "]")
}
