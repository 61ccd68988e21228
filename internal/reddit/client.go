package reddit

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	installedClientGrant = "https://oauth.reddit.com/grants/installed_client"
	maxPageSize          = 100
	tokenExpirySlack     = 60 * time.Second
)

// Vote is the current user's vote on a post. App-only sessions always see
// VoteNone, but the listing carries the field either way.
type Vote int

const (
	VoteNone Vote = iota
	VoteUp
	VoteDown
)

// Post is the subset of submission fields the viewer displays.
type Post struct {
	ID          string
	Name        string
	Title       string
	URL         string
	Permalink   string
	IsSelf      bool
	Score       int
	Vote        Vote
	CreatedAt   time.Time
	NumComments int
	Author      string
	Subreddit   string
	NSFW        bool
	Flair       string
}

type postData struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Title         string  `json:"title"`
	URL           string  `json:"url"`
	Permalink     string  `json:"permalink"`
	IsSelf        bool    `json:"is_self"`
	Score         int     `json:"score"`
	Likes         *bool   `json:"likes"`
	CreatedUTC    float64 `json:"created_utc"`
	NumComments   int     `json:"num_comments"`
	Author        string  `json:"author"`
	Subreddit     string  `json:"subreddit"`
	Over18        bool    `json:"over_18"`
	LinkFlairText *string `json:"link_flair_text"`
}

type listing struct {
	Data struct {
		After    string `json:"after"`
		Children []struct {
			Kind string   `json:"kind"`
			Data postData `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

type accessToken struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// Credentials identify an installed app using application-only OAuth.
type Credentials struct {
	ClientID  string
	DeviceID  string
	UserAgent string
}

// Client talks to the Reddit API. It caches its access token and is not safe
// for concurrent use.
type Client struct {
	baseURL string
	authURL string
	creds   Credentials
	http    *http.Client
	nowFn   func() time.Time

	token     string
	expiresAt time.Time
}

func NewClient(baseURL, authURL string, creds Credentials, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		authURL: authURL,
		creds:   creds,
		http:    httpClient,
		nowFn:   time.Now,
	}
}

func (c *Client) Authenticate(ctx context.Context) error {
	form := make(url.Values)
	form.Set("grant_type", installedClientGrant)
	form.Set("device_id", c.creds.DeviceID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.authURL, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.SetBasicAuth(c.creds.ClientID, "")
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", c.creds.UserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("authenticate request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return fmt.Errorf("authentication failed: invalid client id")
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("authenticate failed with status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var tok accessToken
	if err := json.NewDecoder(resp.Body).Decode(&tok); err != nil {
		return fmt.Errorf("decode token response: %w", err)
	}
	if tok.AccessToken == "" {
		return fmt.Errorf("authenticate failed: empty access token")
	}
	c.token = tok.AccessToken
	c.expiresAt = c.nowFn().Add(time.Duration(tok.ExpiresIn) * time.Second)
	return nil
}

func (c *Client) ensureToken(ctx context.Context) error {
	if c.token != "" && c.nowFn().Before(c.expiresAt.Add(-tokenExpirySlack)) {
		return nil
	}
	return c.Authenticate(ctx)
}

// ListHot fetches one page of the subreddit's hot listing and returns the
// cursor for the next page, empty when the listing is exhausted.
func (c *Client) ListHot(ctx context.Context, subreddit string, limit int, after string) ([]Post, string, error) {
	if limit < 1 || limit > maxPageSize {
		limit = 25
	}
	if err := c.ensureToken(ctx); err != nil {
		return nil, "", err
	}

	q := make(url.Values)
	q.Set("limit", strconv.Itoa(limit))
	q.Set("raw_json", "1")
	if after != "" {
		q.Set("after", after)
	}

	req, err := c.newRequest(ctx, http.MethodGet, "/r/"+url.PathEscape(subreddit)+"/hot?"+q.Encode())
	if err != nil {
		return nil, "", err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("list hot posts request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		c.token = ""
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, "", fmt.Errorf("list hot posts failed with status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var l listing
	if err := json.NewDecoder(resp.Body).Decode(&l); err != nil {
		return nil, "", fmt.Errorf("decode listing response: %w", err)
	}

	posts := make([]Post, 0, len(l.Data.Children))
	for _, child := range l.Data.Children {
		if child.Kind != "t3" {
			continue
		}
		posts = append(posts, child.Data.toPost())
	}
	return posts, l.Data.After, nil
}

// Hot walks the hot listing until total posts were collected or the listing
// runs out.
func (c *Client) Hot(ctx context.Context, subreddit string, total int) ([]Post, error) {
	posts := make([]Post, 0, max(total, 0))
	after := ""
	for len(posts) < total {
		page, next, err := c.ListHot(ctx, subreddit, min(total-len(posts), maxPageSize), after)
		if err != nil {
			return nil, err
		}
		posts = append(posts, page...)
		if next == "" || len(page) == 0 {
			break
		}
		after = next
	}
	if len(posts) > total {
		posts = posts[:total]
	}
	return posts, nil
}

func (c *Client) newRequest(ctx context.Context, method, path string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("User-Agent", c.creds.UserAgent)
	req.Header.Set("Accept", "application/json")
	return req, nil
}

func (d postData) toPost() Post {
	p := Post{
		ID:          d.ID,
		Name:        d.Name,
		Title:       d.Title,
		URL:         d.URL,
		Permalink:   d.Permalink,
		IsSelf:      d.IsSelf,
		Score:       d.Score,
		NumComments: d.NumComments,
		Author:      d.Author,
		Subreddit:   d.Subreddit,
		NSFW:        d.Over18,
	}
	if d.Likes != nil {
		if *d.Likes {
			p.Vote = VoteUp
		} else {
			p.Vote = VoteDown
		}
	}
	if d.CreatedUTC > 0 {
		sec := int64(d.CreatedUTC)
		p.CreatedAt = time.Unix(sec, 0).UTC()
	}
	if d.LinkFlairText != nil {
		p.Flair = strings.TrimSpace(*d.LinkFlairText)
	}
	return p
}
