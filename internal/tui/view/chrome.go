package view

import (
	"fmt"

	"github.com/glabrego/reddit-cli/internal/tui/state"
	tuitheme "github.com/glabrego/reddit-cli/internal/tui/theme"
)

// Header is the status row: subreddit, window variant, selection and bounds.
func Header(subreddit string, anchor state.Anchor, selected, first, last int, th tuitheme.Theme) string {
	return fmt.Sprintf("%s %s",
		th.Title.Render("r/"+subreddit),
		th.MetaValue.Render(fmt.Sprintf("mode=%s index=%d top=%d bottom=%d", anchor, selected, first, last)),
	)
}
