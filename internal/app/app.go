package app

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/glabrego/reddit-cli/internal/reddit"
	"github.com/glabrego/reddit-cli/internal/storage"
)

const DefaultPostLimit = 50

type RedditClient interface {
	Hot(ctx context.Context, subreddit string, total int) ([]reddit.Post, error)
}

type Repository interface {
	SavePosts(ctx context.Context, subreddit string, posts []reddit.Post) error
	ListPosts(ctx context.Context, subreddit string, limit int) ([]reddit.Post, error)
}

type SettingsStore interface {
	GetSetting(ctx context.Context, key string) (string, bool, error)
	SetSetting(ctx context.Context, key, value string) error
}

type Service struct {
	client RedditClient
	repo   Repository
	logger *log.Logger
}

func NewService(client RedditClient, repo Repository, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Service{client: client, repo: repo, logger: logger}
}

// Refresh fetches the hot listing, stores it, and returns it in display order.
func (s *Service) Refresh(ctx context.Context, subreddit string, limit int) ([]reddit.Post, error) {
	posts, err := s.client.Hot(ctx, subreddit, limit)
	if err != nil {
		return nil, fmt.Errorf("fetch hot posts from reddit: %w", err)
	}
	if err := s.repo.SavePosts(ctx, subreddit, posts); err != nil {
		return nil, fmt.Errorf("save posts to cache: %w", err)
	}
	return posts, nil
}

func (s *Service) ListCached(ctx context.Context, subreddit string, limit int) ([]reddit.Post, error) {
	posts, err := s.repo.ListPosts(ctx, subreddit, limit)
	if err != nil {
		return nil, fmt.Errorf("load posts from cache: %w", err)
	}
	return posts, nil
}

// Load is the startup fetch: the remote listing when reachable, otherwise
// whatever the cache holds. It only fails when neither source works.
func (s *Service) Load(ctx context.Context, subreddit string, limit int) ([]reddit.Post, error) {
	posts, err := s.Refresh(ctx, subreddit, limit)
	if err == nil {
		s.logger.Info("loaded listing", "subreddit", subreddit, "source", "remote", "posts", len(posts))
		return posts, nil
	}
	s.logger.Warn("remote listing unavailable, using cache", "subreddit", subreddit, "err", err)

	cached, cacheErr := s.ListCached(ctx, subreddit, limit)
	if cacheErr != nil {
		return nil, fmt.Errorf("%w (cache fallback: %v)", err, cacheErr)
	}
	s.logger.Info("loaded listing", "subreddit", subreddit, "source", "cache", "posts", len(cached))
	return cached, nil
}

// DeviceID returns the persisted device id, creating one on first use.
func DeviceID(ctx context.Context, store SettingsStore) (string, error) {
	id, ok, err := store.GetSetting(ctx, storage.SettingDeviceID)
	if err != nil {
		return "", fmt.Errorf("load device id: %w", err)
	}
	if ok && id != "" {
		return id, nil
	}
	id = uuid.NewString()
	if err := store.SetSetting(ctx, storage.SettingDeviceID, id); err != nil {
		return "", fmt.Errorf("save device id: %w", err)
	}
	return id, nil
}
