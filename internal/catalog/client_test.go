package catalog

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const playlistJSON = `{
	"name": "Rainy Daze",
	"external_urls": {"spotify": "https://open.spotify.com/playlist/abc123"},
	"images": [{"url": "https://i.scdn.co/image/cover"}],
	"tracks": {"items": [
		{"track": {"name": "Track One", "artists": [{"name": "Artist One"}], "album": {"images": [{"url": "https://i.scdn.co/image/a1"}]}, "preview_url": "https://p.scdn.co/mp3/t1"}},
		{"track": {"name": "Track Two", "artists": [{"name": "Artist Two"}], "album": {"images": []}, "preview_url": null}}
	]}
}`

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	client := &Client{baseURL: srv.URL, httpClient: srv.Client()}
	return client, srv
}

func TestPlaylist(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/playlists/abc123" {
				t.Errorf("unexpected path %s", r.URL.Path)
			}
			w.Write([]byte(playlistJSON))
		})
		defer srv.Close()

		pl, err := client.Playlist(context.Background(), "abc123")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if pl.Name != "Rainy Daze" {
			t.Errorf("expected name Rainy Daze, got %s", pl.Name)
		}
		if pl.URL != "https://open.spotify.com/playlist/abc123" {
			t.Errorf("unexpected URL %s", pl.URL)
		}
		if pl.Image != "https://i.scdn.co/image/cover" {
			t.Errorf("unexpected image %s", pl.Image)
		}
		if len(pl.Tracks) != 2 {
			t.Fatalf("expected 2 tracks, got %d", len(pl.Tracks))
		}
		if pl.Tracks[0].Artist != "Artist One" || pl.Tracks[0].PreviewURL != "https://p.scdn.co/mp3/t1" {
			t.Errorf("unexpected first track %+v", pl.Tracks[0])
		}
	})

	t.Run("Absent Fields Stay Empty", func(t *testing.T) {
		client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(playlistJSON))
		})
		defer srv.Close()

		pl, err := client.Playlist(context.Background(), "abc123")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		second := pl.Tracks[1]
		if second.Image != "" {
			t.Errorf("expected empty album image, got %s", second.Image)
		}
		if second.PreviewURL != "" {
			t.Errorf("expected empty preview URL, got %s", second.PreviewURL)
		}
	})

	t.Run("Caps Tracks At Six", func(t *testing.T) {
		var items []string
		for i := 0; i < 10; i++ {
			items = append(items, fmt.Sprintf(`{"track": {"name": "Track %d", "artists": [], "album": {"images": []}, "preview_url": null}}`, i))
		}
		body := fmt.Sprintf(`{"name": "Big", "external_urls": {"spotify": "u"}, "images": [], "tracks": {"items": [%s]}}`, strings.Join(items, ","))

		client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(body))
		})
		defer srv.Close()

		pl, err := client.Playlist(context.Background(), "big")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(pl.Tracks) != 6 {
			t.Errorf("expected 6 tracks, got %d", len(pl.Tracks))
		}
		if pl.Image != "" {
			t.Errorf("expected empty cover image, got %s", pl.Image)
		}
	})

	t.Run("Unresolved Identifier", func(t *testing.T) {
		client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"error": {"status": 404, "message": "Not found."}}`))
		})
		defer srv.Close()

		if _, err := client.Playlist(context.Background(), "dead"); err == nil {
			t.Error("expected error for unresolved playlist identifier")
		}
	})
}
