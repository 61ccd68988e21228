package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/glabrego/reddit-cli/internal/reddit"
)

const SettingDeviceID = "device_id"

type Repository struct {
	db *sql.DB
}

func NewRepository(path string) (*Repository, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	return &Repository{db: db}, nil
}

func (r *Repository) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}

func (r *Repository) Init(ctx context.Context) error {
	const schema = `
CREATE TABLE IF NOT EXISTS posts (
  subreddit TEXT NOT NULL,
  rank INTEGER NOT NULL,
  id TEXT NOT NULL,
  name TEXT NOT NULL,
  title TEXT NOT NULL,
  url TEXT NOT NULL,
  permalink TEXT NOT NULL,
  is_self INTEGER NOT NULL,
  score INTEGER NOT NULL,
  vote INTEGER NOT NULL,
  created_at TEXT NOT NULL,
  num_comments INTEGER NOT NULL,
  author TEXT NOT NULL,
  post_subreddit TEXT NOT NULL,
  nsfw INTEGER NOT NULL,
  flair TEXT NOT NULL,
  fetched_at TEXT NOT NULL,
  PRIMARY KEY (subreddit, rank)
);
CREATE TABLE IF NOT EXISTS settings (
  key TEXT PRIMARY KEY,
  value TEXT NOT NULL
);
`
	_, err := r.db.ExecContext(ctx, schema)
	if err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// CheckWritable fails early when the database file is read-only.
func (r *Repository) CheckWritable(ctx context.Context) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `INSERT OR REPLACE INTO settings (key, value) VALUES ('__write_probe', '1')`); err != nil {
		return fmt.Errorf("write probe: %w", err)
	}
	return nil
}

// SavePosts replaces the cached listing of subreddit, keeping the order of
// posts as the display order.
func (r *Repository) SavePosts(ctx context.Context, subreddit string, posts []reddit.Post) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM posts WHERE subreddit = ?`, subreddit); err != nil {
		return fmt.Errorf("clear cached listing: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
INSERT INTO posts (
  subreddit, rank, id, name, title, url, permalink, is_self, score, vote,
  created_at, num_comments, author, post_subreddit, nsfw, flair, fetched_at
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`)
	if err != nil {
		return fmt.Errorf("prepare save statement: %w", err)
	}
	defer stmt.Close()

	now := time.Now().UTC().Format(time.RFC3339Nano)
	for i, post := range posts {
		_, err := stmt.ExecContext(
			ctx,
			subreddit,
			i,
			post.ID,
			post.Name,
			post.Title,
			post.URL,
			post.Permalink,
			post.IsSelf,
			post.Score,
			int(post.Vote),
			post.CreatedAt.UTC().Format(time.RFC3339Nano),
			post.NumComments,
			post.Author,
			post.Subreddit,
			post.NSFW,
			post.Flair,
			now,
		)
		if err != nil {
			return fmt.Errorf("save post %s: %w", post.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

func (r *Repository) ListPosts(ctx context.Context, subreddit string, limit int) ([]reddit.Post, error) {
	if limit < 1 {
		limit = 50
	}

	rows, err := r.db.QueryContext(ctx, `
SELECT id, name, title, url, permalink, is_self, score, vote, created_at,
       num_comments, author, post_subreddit, nsfw, flair
FROM posts
WHERE subreddit = ?
ORDER BY rank ASC
LIMIT ?
`, subreddit, limit)
	if err != nil {
		return nil, fmt.Errorf("query posts: %w", err)
	}
	defer rows.Close()

	posts := make([]reddit.Post, 0, limit)
	for rows.Next() {
		var post reddit.Post
		var vote int
		var createdAt string
		if err := rows.Scan(
			&post.ID,
			&post.Name,
			&post.Title,
			&post.URL,
			&post.Permalink,
			&post.IsSelf,
			&post.Score,
			&vote,
			&createdAt,
			&post.NumComments,
			&post.Author,
			&post.Subreddit,
			&post.NSFW,
			&post.Flair,
		); err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		post.Vote = reddit.Vote(vote)
		post.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parse post created_at %q: %w", createdAt, err)
		}
		posts = append(posts, post)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}

	return posts, nil
}

// GetSetting returns ok=false when key was never stored.
func (r *Repository) GetSetting(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("query setting %s: %w", key, err)
	}
	return value, true, nil
}

func (r *Repository) SetSetting(ctx context.Context, key, value string) error {
	_, err := r.db.ExecContext(ctx, `
INSERT INTO settings (key, value) VALUES (?, ?)
ON CONFLICT(key) DO UPDATE SET value=excluded.value
`, key, value)
	if err != nil {
		return fmt.Errorf("save setting %s: %w", key, err)
	}
	return nil
}
