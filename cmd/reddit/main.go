package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/glabrego/reddit-cli/internal/app"
	"github.com/glabrego/reddit-cli/internal/config"
	"github.com/glabrego/reddit-cli/internal/reddit"
	"github.com/glabrego/reddit-cli/internal/storage"
	"github.com/glabrego/reddit-cli/internal/telemetry"
	"github.com/glabrego/reddit-cli/internal/tui"
	"github.com/glabrego/reddit-cli/internal/tui/platform"
	"github.com/glabrego/reddit-cli/internal/tui/state"
)

var version = "0.1.0"

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	logger, logCloser, err := telemetry.NewLogger(cfg.LogPath, cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger init error: %v", err)
	}
	defer logCloser.Close()

	repo, err := storage.NewRepository(cfg.DBPath)
	if err != nil {
		log.Fatalf("storage init error: %v", err)
	}
	defer repo.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := repo.Init(ctx); err != nil {
		log.Fatalf("storage schema error: %v", err)
	}
	if err := repo.CheckWritable(ctx); err != nil {
		log.Fatalf("storage write check failed (%v). Verify REDDIT_DB_PATH is writable: %s", err, cfg.DBPath)
	}

	deviceID, err := app.DeviceID(ctx, repo)
	if err != nil {
		log.Fatalf("device id error: %v", err)
	}

	client := reddit.NewClient(cfg.APIBaseURL, cfg.AuthURL, reddit.Credentials{
		ClientID:  cfg.ClientID,
		DeviceID:  deviceID,
		UserAgent: platform.UserAgent(platform.OSRelease(), deviceID, version),
	}, nil)
	service := app.NewService(client, repo, logger)

	logger.Info("starting",
		"version", version,
		"subreddit", cfg.Subreddit,
		"api", cfg.APIBaseURL,
		"db", cfg.DBPath,
		"limit", cfg.PostLimit,
		"scroll_mode", cfg.ScrollMode,
		"card_margin", cfg.Margin(),
	)

	cacheLoadStart := time.Now()
	posts, err := service.ListCached(ctx, cfg.Subreddit, cfg.PostLimit)
	if err != nil {
		log.Fatalf("cannot load cached posts: %v", err)
	}
	logger.Info("cache loaded", "posts", len(posts), "duration", time.Since(cacheLoadStart))

	model := tui.NewModel(service, posts, tui.Options{
		Subreddit: cfg.Subreddit,
		PostLimit: cfg.PostLimit,
		Mode:      state.Mode(cfg.ScrollMode),
		Margin:    cfg.Margin(),
		Logger:    logger,
	})

	program := tea.NewProgram(model, tea.WithAltScreen())
	final, err := program.Run()
	if err != nil {
		log.Fatalf("tui error: %v", err)
	}
	if m, ok := final.(tui.Model); ok && m.Err() != nil {
		fmt.Fprintf(os.Stderr, "warning: could not load r/%s (%v)\n", cfg.Subreddit, m.Err())
	}
}
