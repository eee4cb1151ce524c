// Package weather calls the OpenWeatherMap current-conditions API and
// normalizes its free-text descriptions to canonical labels.
package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// ErrCityNotFound is returned when the provider reports a non-200 embedded
// status code for the requested city.
var ErrCityNotFound = errors.New("city not found")

// Current is the normalized view of a current-conditions response.
type Current struct {
	City        string
	Temperature float64 // Celsius
	Condition   string  // raw provider text, not yet normalized
	Icon        string
}

// Client calls the current-weather endpoint with metric units.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a weather client for the given endpoint and API key.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// providerCode is the status code embedded in the response body. The
// provider emits a JSON number on success and a quoted string on errors,
// so both forms must decode.
type providerCode int

func (p *providerCode) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("unexpected cod value %s: %w", string(b), err)
	}
	*p = providerCode(n)
	return nil
}

type currentResponse struct {
	Cod  providerCode `json:"cod"`
	Name string       `json:"name"`
	Main struct {
		Temp float64 `json:"temp"`
	} `json:"main"`
	Weather []struct {
		Main string `json:"main"`
		Icon string `json:"icon"`
	} `json:"weather"`
}

// CurrentByCity fetches current conditions for a city. Success is signaled
// by the embedded cod field, not the transport status code; any non-200
// value maps to ErrCityNotFound.
func (c *Client) CurrentByCity(ctx context.Context, city string) (*Current, error) {
	q := url.Values{}
	q.Set("q", city)
	q.Set("appid", c.apiKey)
	q.Set("units", "metric")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	var data currentResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if data.Cod != 200 {
		return nil, ErrCityNotFound
	}

	cur := &Current{City: data.Name, Temperature: data.Main.Temp}
	if len(data.Weather) > 0 {
		cur.Condition = data.Weather[0].Main
		cur.Icon = data.Weather[0].Icon
	}
	return cur, nil
}
