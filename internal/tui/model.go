package tui

import (
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/glabrego/reddit-cli/internal/reddit"
	tuiactions "github.com/glabrego/reddit-cli/internal/tui/actions"
	"github.com/glabrego/reddit-cli/internal/tui/state"
	tuitheme "github.com/glabrego/reddit-cli/internal/tui/theme"
	"github.com/glabrego/reddit-cli/internal/tui/view"
)

type Options struct {
	Subreddit string
	PostLimit int
	Mode      state.Mode
	Margin    int
	Logger    *log.Logger
}

type Model struct {
	service   tuiactions.Service
	posts     []reddit.Post
	window    state.Window
	geometry  state.Geometry
	subreddit string
	limit     int
	theme     tuitheme.Theme
	keys      tuiactions.KeyMap
	nowFn     func() time.Time
	logger    *log.Logger
	err       error
}

// NewModel starts on the first post of posts. A nil service skips the
// startup fetch and shows posts as given.
func NewModel(service tuiactions.Service, posts []reddit.Post, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	geometry := state.NewGeometry(0, 0, opts.Margin)
	seed := append([]reddit.Post(nil), posts...)
	return Model{
		service:   service,
		posts:     seed,
		window:    state.NewWindow(opts.Mode, len(seed), geometry.MaxVisibleCards()),
		geometry:  geometry,
		subreddit: opts.Subreddit,
		limit:     opts.PostLimit,
		theme:     tuitheme.Default(),
		keys:      tuiactions.DefaultKeyMap(),
		nowFn:     time.Now,
		logger:    logger,
	}
}

func (m Model) Init() tea.Cmd {
	if m.service == nil {
		return nil
	}
	return tuiactions.LoadCmd(m.service, m.subreddit, m.limit)
}

// Err is the startup fetch failure, if any.
func (m Model) Err() error {
	return m.err
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.geometry.Width = msg.Width
		m.geometry.Height = msg.Height
		m.window = state.Refit(m.window, len(m.posts), m.geometry.MaxVisibleCards())
		m.logger.Debug("resize", "width", msg.Width, "height", msg.Height, "window", m.window.String())
		return m, nil
	case tuiactions.LoadSuccessMsg:
		m.posts = msg.Posts
		m.err = nil
		m.window = state.Refit(m.window, len(m.posts), m.geometry.MaxVisibleCards())
		m.logger.Info("listing ready", "posts", len(m.posts), "duration", msg.Duration)
		return m, nil
	case tuiactions.LoadErrorMsg:
		m.err = msg.Err
		m.logger.Error("listing unavailable", "err", msg.Err, "duration", msg.Duration)
		return m, nil
	case tea.KeyMsg:
		return m.navigate(m.keys.Decode(msg))
	}
	return m, nil
}

func (m Model) navigate(cmd tuiactions.Command) (tea.Model, tea.Cmd) {
	count := len(m.posts)
	maxVisible := m.geometry.MaxVisibleCards()
	switch cmd {
	case tuiactions.Quit:
		m.logger.Info("quit", "window", m.window.String())
		return m, tea.Quit
	case tuiactions.Next:
		m.window = state.Advance(m.window, count, maxVisible)
	case tuiactions.Previous:
		m.window = state.Retreat(m.window, count, maxVisible)
	}
	m.logger.Debug("navigate", "command", cmd.String(), "window", m.window.String())
	return m, nil
}

func (m Model) View() string {
	frame := view.RenderFrame(view.FrameInput{
		Window:    m.window,
		Posts:     m.posts,
		Geometry:  m.geometry,
		Subreddit: m.subreddit,
		Now:       m.nowFn(),
	}, m.theme)
	return view.Compose(frame, m.geometry.Width, m.geometry.Height)
}
