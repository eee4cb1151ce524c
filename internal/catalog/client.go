// Package catalog fetches playlist metadata from the Spotify Web API.
//
// Response types based on https://developer.spotify.com/documentation/web-api/reference/
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"golang.org/x/oauth2/clientcredentials"
)

const (
	defaultBaseURL  = "https://api.spotify.com/v1"
	defaultTokenURL = "https://accounts.spotify.com/api/token"
)

// maxTracks caps how many playlist entries a fetch returns.
const maxTracks = 6

// Playlist is the subset of playlist metadata the app renders.
type Playlist struct {
	ID     string
	Name   string
	URL    string
	Image  string // empty when the playlist has no cover art
	Tracks []Track
}

// Track is a single playlist entry reduced to display fields. Image and
// PreviewURL are empty when the upstream record has none.
type Track struct {
	Name       string
	Artist     string
	Image      string
	PreviewURL string
}

type image struct {
	URL string `json:"url"`
}

type playlistResponse struct {
	Name         string `json:"name"`
	ExternalURLs struct {
		Spotify string `json:"spotify"`
	} `json:"external_urls"`
	Images []image `json:"images"`
	Tracks struct {
		Items []struct {
			Track struct {
				Name    string `json:"name"`
				Artists []struct {
					Name string `json:"name"`
				} `json:"artists"`
				Album struct {
					Images []image `json:"images"`
				} `json:"album"`
				PreviewURL *string `json:"preview_url"`
			} `json:"track"`
		} `json:"items"`
	} `json:"tracks"`
}

// Client fetches playlists using the client-credentials grant. The
// oauth2 transport acquires and refreshes the app token as needed.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient builds a catalog client for the given app credentials.
func NewClient(ctx context.Context, clientID, clientSecret string) *Client {
	conf := &clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     defaultTokenURL,
	}
	return &Client{
		baseURL:    defaultBaseURL,
		httpClient: conf.Client(ctx),
	}
}

// Playlist fetches playlist metadata and up to the first 6 tracks. An
// identifier that does not resolve upstream is an error; callers decide
// how to degrade.
func (c *Client) Playlist(ctx context.Context, playlistID string) (*Playlist, error) {
	endpoint := fmt.Sprintf("%s/playlists/%s", c.baseURL, playlistID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("catalog returned status %d: %s", resp.StatusCode, string(body))
	}

	var data playlistResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	playlist := &Playlist{
		ID:   playlistID,
		Name: data.Name,
		URL:  data.ExternalURLs.Spotify,
	}
	if len(data.Images) > 0 {
		playlist.Image = data.Images[0].URL
	}

	for i, item := range data.Tracks.Items {
		if i == maxTracks {
			break
		}
		track := Track{Name: item.Track.Name}
		if len(item.Track.Artists) > 0 {
			track.Artist = item.Track.Artists[0].Name
		}
		if len(item.Track.Album.Images) > 0 {
			track.Image = item.Track.Album.Images[0].URL
		}
		if item.Track.PreviewURL != nil {
			track.PreviewURL = *item.Track.PreviewURL
		}
		playlist.Tracks = append(playlist.Tracks, track)
	}

	return playlist, nil
}
