package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/samber/lo"

	"github.com/wayout-app/backend/internal/domain"
)

const defaultUnsplashBaseURL = "https://api.unsplash.com"

// Unsplash searches stock photos by free-text query.
type Unsplash struct {
	accessKey string
	baseURL   string
	httpc     *http.Client
}

// NewUnsplash constructs a photo searcher. An empty baseURL uses the public
// API; tests point it at an httptest server.
func NewUnsplash(accessKey, baseURL string) *Unsplash {
	if baseURL == "" {
		baseURL = defaultUnsplashBaseURL
	}
	return &Unsplash{
		accessKey: accessKey,
		baseURL:   baseURL,
		httpc:     &http.Client{Timeout: 30 * time.Second},
	}
}

type unsplashPhoto struct {
	URLs struct {
		Regular string `json:"regular"`
	} `json:"urls"`
}

type unsplashSearchResponse struct {
	Results []unsplashPhoto `json:"results"`
}

// Search returns the regular-size photo URLs for one page of results.
// Results with no usable URL are dropped.
func (u *Unsplash) Search(ctx context.Context, query string, page, perPage int) ([]string, error) {
	q := url.Values{}
	q.Set("query", query)
	q.Set("page", strconv.Itoa(page))
	q.Set("per_page", strconv.Itoa(perPage))
	q.Set("client_id", u.accessKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.baseURL+"/search/photos?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("client.Unsplash.Search: %w", err)
	}

	resp, err := u.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("client.Unsplash.Search: %w: %v", domain.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("client.Unsplash.Search: %w: %s", domain.ErrUpstream, resp.Status)
	}

	var out unsplashSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("client.Unsplash.Search: %w: %v", domain.ErrUpstream, err)
	}

	urls := lo.FilterMap(out.Results, func(r unsplashPhoto, _ int) (string, bool) {
		return r.URLs.Regular, r.URLs.Regular != ""
	})
	return urls, nil
}
