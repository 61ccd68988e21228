package config

import (
	"os"
	"path/filepath"
	"testing"
)

func clearRedditEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"REDDIT_CONFIG", "REDDIT_CLIENT_ID", "REDDIT_SUBREDDIT", "REDDIT_AUTH_URL",
		"REDDIT_API_BASE_URL", "REDDIT_DB_PATH", "REDDIT_LOG_PATH", "REDDIT_LOG_LEVEL",
		"REDDIT_POST_LIMIT", "REDDIT_SCROLL_MODE", "REDDIT_CARD_MARGIN",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadFromEnv_UsesDefaults(t *testing.T) {
	clearRedditEnv(t)
	t.Setenv("REDDIT_CLIENT_ID", "client-123")
	t.Setenv("HOME", "/home/tester")

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv returned error: %v", err)
	}

	if cfg.APIBaseURL != defaultAPIBaseURL {
		t.Fatalf("unexpected API base URL: %s", cfg.APIBaseURL)
	}
	if cfg.AuthURL != defaultAuthURL {
		t.Fatalf("unexpected auth URL: %s", cfg.AuthURL)
	}
	if cfg.Subreddit != "rust" {
		t.Fatalf("unexpected subreddit: %s", cfg.Subreddit)
	}
	if cfg.DBPath != "reddit.db" {
		t.Fatalf("unexpected DB path: %s", cfg.DBPath)
	}
	if cfg.LogPath != filepath.Join("/home/tester", ".config", "reddit-cli", "reddit-cli.log") {
		t.Fatalf("unexpected log path: %s", cfg.LogPath)
	}
	if cfg.PostLimit != 50 || cfg.ScrollMode != "free" || cfg.Margin() != 1 || cfg.LogLevel != "info" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadFromEnv_MissingClientID(t *testing.T) {
	clearRedditEnv(t)

	_, err := LoadFromEnv()
	if err == nil {
		t.Fatal("expected error for missing client id")
	}
}

func TestLoadFromEnv_InvalidNumber(t *testing.T) {
	clearRedditEnv(t)
	t.Setenv("REDDIT_CLIENT_ID", "client-123")
	t.Setenv("REDDIT_POST_LIMIT", "lots")

	if _, err := LoadFromEnv(); err == nil {
		t.Fatal("expected error for non-numeric post limit")
	}
}

func TestLoadFromEnv_FileWithEnvOverrides(t *testing.T) {
	clearRedditEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := "client_id: from-file\nsubreddit: golang\npost_limit: 25\nscroll_mode: center\ncard_margin: 0\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("REDDIT_CONFIG", path)
	t.Setenv("REDDIT_SUBREDDIT", "programming")
	t.Setenv("REDDIT_LOG_PATH", LogDisabled)

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv returned error: %v", err)
	}
	if cfg.ClientID != "from-file" {
		t.Fatalf("expected client id from file, got %s", cfg.ClientID)
	}
	if cfg.Subreddit != "programming" {
		t.Fatalf("expected env to override subreddit, got %s", cfg.Subreddit)
	}
	if cfg.PostLimit != 25 || cfg.ScrollMode != "center" {
		t.Fatalf("unexpected file values: %+v", cfg)
	}
	if cfg.Margin() != 0 {
		t.Fatalf("expected explicit zero margin to be kept, got %d", cfg.Margin())
	}
}

func TestLoadFromEnv_MissingConfigFile(t *testing.T) {
	clearRedditEnv(t)
	t.Setenv("REDDIT_CONFIG", filepath.Join(t.TempDir(), "nope.yaml"))

	if _, err := LoadFromEnv(); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestValidate(t *testing.T) {
	margin := func(n int) *int { return &n }
	valid := Config{
		ClientID:   "client-123",
		Subreddit:  "rust",
		AuthURL:    defaultAuthURL,
		APIBaseURL: defaultAPIBaseURL,
		DBPath:     "reddit.db",
		LogLevel:   "info",
		PostLimit:  50,
		ScrollMode: "free",
		CardMargin: margin(1),
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "trailing slash", mutate: func(c *Config) { c.APIBaseURL += "/" }},
		{name: "subreddit path", mutate: func(c *Config) { c.Subreddit = "r/rust" }},
		{name: "scroll mode", mutate: func(c *Config) { c.ScrollMode = "sideways" }},
		{name: "log level", mutate: func(c *Config) { c.LogLevel = "loud" }},
		{name: "post limit", mutate: func(c *Config) { c.PostLimit = 501 }},
		{name: "margin", mutate: func(c *Config) { c.CardMargin = margin(4) }},
	}
	for _, tc := range cases {
		cfg := valid
		tc.mutate(&cfg)
		if err := cfg.Validate(); err == nil {
			t.Fatalf("%s: expected validation error", tc.name)
		}
	}
}
