package actions

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/glabrego/reddit-cli/internal/reddit"
)

const loadTimeout = 15 * time.Second

type Service interface {
	Load(ctx context.Context, subreddit string, limit int) ([]reddit.Post, error)
}

type LoadSuccessMsg struct {
	Posts    []reddit.Post
	Duration time.Duration
}

type LoadErrorMsg struct {
	Err      error
	Duration time.Duration
}

// LoadCmd fetches the listing once, falling back to the cache inside the
// service when the remote side is unreachable.
func LoadCmd(service Service, subreddit string, limit int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()
		start := time.Now()

		posts, err := service.Load(ctx, subreddit, limit)
		if err != nil {
			return LoadErrorMsg{Err: err, Duration: time.Since(start)}
		}
		return LoadSuccessMsg{Posts: posts, Duration: time.Since(start)}
	}
}
