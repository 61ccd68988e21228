package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	defaultAPIBaseURL = "https://oauth.reddit.com"
	defaultAuthURL    = "https://www.reddit.com/api/v1/access_token"
	defaultSubreddit  = "rust"
	defaultPostLimit  = 50
	maxPostLimit      = 500
	maxCardMargin     = 3

	// LogDisabled as LogPath turns file logging off.
	LogDisabled = "-"
)

// Config holds runtime settings for the CLI app.
type Config struct {
	ClientID   string `yaml:"client_id"`
	Subreddit  string `yaml:"subreddit"`
	AuthURL    string `yaml:"auth_url"`
	APIBaseURL string `yaml:"api_base_url"`
	DBPath     string `yaml:"db_path"`
	LogPath    string `yaml:"log_path"`
	LogLevel   string `yaml:"log_level"`
	PostLimit  int    `yaml:"post_limit"`
	ScrollMode string `yaml:"scroll_mode"`
	CardMargin *int   `yaml:"card_margin"`
}

// LoadFromEnv reads REDDIT_CONFIG (a YAML file) when set and lets the
// REDDIT_* environment variables override it.
func LoadFromEnv() (Config, error) {
	var cfg Config
	if path := os.Getenv("REDDIT_CONFIG"); path != "" {
		fileCfg, err := LoadFile(path)
		if err != nil {
			return Config{}, err
		}
		cfg = fileCfg
	}

	overrideString(&cfg.ClientID, "REDDIT_CLIENT_ID")
	overrideString(&cfg.Subreddit, "REDDIT_SUBREDDIT")
	overrideString(&cfg.AuthURL, "REDDIT_AUTH_URL")
	overrideString(&cfg.APIBaseURL, "REDDIT_API_BASE_URL")
	overrideString(&cfg.DBPath, "REDDIT_DB_PATH")
	overrideString(&cfg.LogPath, "REDDIT_LOG_PATH")
	overrideString(&cfg.LogLevel, "REDDIT_LOG_LEVEL")
	overrideString(&cfg.ScrollMode, "REDDIT_SCROLL_MODE")
	if err := overrideInt(&cfg.PostLimit, "REDDIT_POST_LIMIT"); err != nil {
		return Config{}, err
	}
	if v := os.Getenv("REDDIT_CARD_MARGIN"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("REDDIT_CARD_MARGIN must be a number: %s", v)
		}
		cfg.CardMargin = &n
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func LoadFile(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config file: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config file %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Subreddit == "" {
		c.Subreddit = defaultSubreddit
	}
	if c.AuthURL == "" {
		c.AuthURL = defaultAuthURL
	}
	if c.APIBaseURL == "" {
		c.APIBaseURL = defaultAPIBaseURL
	}
	if c.DBPath == "" {
		c.DBPath = "reddit.db"
	}
	if c.LogPath == "" {
		c.LogPath = defaultLogPath()
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.PostLimit == 0 {
		c.PostLimit = defaultPostLimit
	}
	if c.ScrollMode == "" {
		c.ScrollMode = "free"
	}
	if c.CardMargin == nil {
		margin := 1
		c.CardMargin = &margin
	}
}

// Margin is the number of blank rows between cards.
func (c Config) Margin() int {
	if c.CardMargin == nil {
		return 1
	}
	return *c.CardMargin
}

func (c Config) Validate() error {
	if c.ClientID == "" {
		return errors.New("REDDIT_CLIENT_ID is required")
	}
	if c.Subreddit == "" {
		return errors.New("Subreddit is required")
	}
	if strings.ContainsAny(c.Subreddit, "/ ") {
		return fmt.Errorf("Subreddit must be a bare name: %s", c.Subreddit)
	}
	if c.APIBaseURL == "" {
		return errors.New("APIBaseURL is required")
	}
	if c.APIBaseURL[len(c.APIBaseURL)-1] == '/' {
		return fmt.Errorf("APIBaseURL must not end with '/': %s", c.APIBaseURL)
	}
	if c.AuthURL == "" {
		return errors.New("AuthURL is required")
	}
	if c.DBPath == "" {
		return errors.New("DBPath is required")
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("LogLevel must be debug, info, warn or error: %s", c.LogLevel)
	}
	if c.PostLimit < 1 || c.PostLimit > maxPostLimit {
		return fmt.Errorf("PostLimit must be between 1 and %d: %d", maxPostLimit, c.PostLimit)
	}
	if c.ScrollMode != "free" && c.ScrollMode != "center" {
		return fmt.Errorf("ScrollMode must be free or center: %s", c.ScrollMode)
	}
	if m := c.Margin(); m < 0 || m > maxCardMargin {
		return fmt.Errorf("CardMargin must be between 0 and %d: %d", maxCardMargin, m)
	}
	return nil
}

func defaultLogPath() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return LogDisabled
	}
	return filepath.Join(home, ".config", "reddit-cli", "reddit-cli.log")
}

func overrideString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func overrideInt(dst *int, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%s must be a number: %s", key, v)
	}
	*dst = n
	return nil
}
