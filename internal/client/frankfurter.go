package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/wayout-app/backend/internal/domain"
)

const defaultFrankfurterBaseURL = "https://api.frankfurter.app"

// Frankfurter fetches exchange rates relative to a base currency.
// The service requires no API key.
type Frankfurter struct {
	baseURL string
	httpc   *http.Client
}

// NewFrankfurter constructs a rate fetcher. An empty baseURL uses the public
// API; tests point it at an httptest server.
func NewFrankfurter(baseURL string) *Frankfurter {
	if baseURL == "" {
		baseURL = defaultFrankfurterBaseURL
	}
	return &Frankfurter{
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: 30 * time.Second},
	}
}

type frankfurterResponse struct {
	Base  string             `json:"base"`
	Rates map[string]float64 `json:"rates"`
}

// Latest returns the rate map for the given base currency. The base itself
// is included in the map with rate 1, matching how conversions consume it.
func (f *Frankfurter) Latest(ctx context.Context, base string) (map[string]float64, error) {
	endpoint := f.baseURL + "/latest?from=" + url.QueryEscape(base)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("client.Frankfurter.Latest: %w", err)
	}

	resp, err := f.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("client.Frankfurter.Latest: %w: %v", domain.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("client.Frankfurter.Latest: %w: %s", domain.ErrUpstream, resp.Status)
	}

	var out frankfurterResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("client.Frankfurter.Latest: %w: %v", domain.ErrUpstream, err)
	}

	rates := make(map[string]float64, len(out.Rates)+1)
	for code, rate := range out.Rates {
		rates[code] = rate
	}
	rates[base] = 1
	return rates, nil
}
