package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/glabrego/reddit-cli/internal/reddit"
	"github.com/glabrego/reddit-cli/internal/storage"
)

func TestIntegration_LoadCachesAndServesOffline(t *testing.T) {
	var offlineMode atomic.Bool
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if offlineMode.Load() {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		if r.URL.Path == "/api/v1/access_token" {
			_, _ = w.Write([]byte(`{"access_token":"tok","token_type":"bearer","expires_in":3600}`))
			return
		}
		_, _ = w.Write([]byte(`{"data":{"after":"","children":[
			{"kind":"t3","data":{"id":"x","title":"First","subreddit":"rust","created_utc":1770000000}},
			{"kind":"t3","data":{"id":"y","title":"Second","subreddit":"rust","created_utc":1770000500}}
		]}}`))
	}))
	defer ts.Close()

	repo, err := storage.NewRepository(filepath.Join(t.TempDir(), "reddit-integration.db"))
	if err != nil {
		t.Fatalf("NewRepository returned error: %v", err)
	}
	t.Cleanup(func() { _ = repo.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := repo.Init(ctx); err != nil {
		t.Fatalf("Init returned error: %v", err)
	}

	deviceID, err := DeviceID(ctx, repo)
	if err != nil {
		t.Fatalf("DeviceID returned error: %v", err)
	}
	client := reddit.NewClient(ts.URL, ts.URL+"/api/v1/access_token", reddit.Credentials{
		ClientID:  "client",
		DeviceID:  deviceID,
		UserAgent: "test",
	}, ts.Client())
	svc := NewService(client, repo, nil)

	posts, err := svc.Load(ctx, "rust", 50)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(posts) != 2 || posts[0].ID != "x" {
		t.Fatalf("unexpected remote posts: %+v", posts)
	}

	offlineMode.Store(true)
	offline := NewService(reddit.NewClient(ts.URL, ts.URL+"/api/v1/access_token", reddit.Credentials{ClientID: "client"}, ts.Client()), repo, nil)
	posts, err = offline.Load(ctx, "rust", 50)
	if err != nil {
		t.Fatalf("offline Load returned error: %v", err)
	}
	if len(posts) != 2 || posts[0].ID != "x" || posts[1].ID != "y" {
		t.Fatalf("expected cached posts in listing order, got %+v", posts)
	}
}
