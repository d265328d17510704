package data_access

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/erickmeikoki/Box/errs"
	"github.com/erickmeikoki/Box/models"
)

// TMDBClient talks to the external movie metadata provider. Failures
// surface as typed errors and are never retried.
type TMDBClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewTMDBClient(apiKey, baseURL string) *TMDBClient {
	return &TMDBClient{
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

// FetchMovie returns the full record for a TMDB id, credits included.
func (c *TMDBClient) FetchMovie(ctx context.Context, tmdbID int) (*models.TMDBMovieDetail, error) {
	params := url.Values{}
	params.Set("append_to_response", "credits")

	var detail models.TMDBMovieDetail
	if err := c.get(ctx, fmt.Sprintf("/movie/%d", tmdbID), params, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

// Search proxies the search endpoint when a query is present and the
// discover endpoint otherwise, matching the frontend's browse-vs-search
// behavior.
func (c *TMDBClient) Search(ctx context.Context, query string, page int, withGenres string) (*models.TMDBSearchResponse, error) {
	endpoint := "/discover/movie"
	params := url.Values{}
	if query != "" {
		endpoint = "/search/movie"
		params.Set("query", query)
	}
	if page > 0 {
		params.Set("page", strconv.Itoa(page))
	}
	if withGenres != "" {
		params.Set("with_genres", withGenres)
	}

	var resp models.TMDBSearchResponse
	if err := c.get(ctx, endpoint, params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *TMDBClient) Similar(ctx context.Context, tmdbID int) (*models.TMDBSearchResponse, error) {
	var resp models.TMDBSearchResponse
	if err := c.get(ctx, fmt.Sprintf("/movie/%d/similar", tmdbID), url.Values{}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *TMDBClient) Trending(ctx context.Context) (*models.TMDBSearchResponse, error) {
	var resp models.TMDBSearchResponse
	if err := c.get(ctx, "/trending/movie/week", url.Values{}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *TMDBClient) get(ctx context.Context, endpoint string, params url.Values, out interface{}) error {
	params.Set("api_key", c.apiKey)
	params.Set("language", "en-US")
	reqURL := fmt.Sprintf("%s%s?%s", c.baseURL, endpoint, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return errs.Upstream(fmt.Sprintf("building TMDB request: %v", err))
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return errs.Upstream(fmt.Sprintf("TMDB request failed: %v", err))
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return errs.Upstream("invalid TMDB API key")
	case resp.StatusCode == http.StatusNotFound:
		return errs.ErrMovieNotFound
	case resp.StatusCode == http.StatusTooManyRequests:
		return errs.Upstream("TMDB rate limit exceeded")
	default:
		var tmdbErr models.TMDBErrorResponse
		if json.NewDecoder(resp.Body).Decode(&tmdbErr) == nil && tmdbErr.StatusMessage != "" {
			return errs.Upstream(fmt.Sprintf("TMDB error: %s", tmdbErr.StatusMessage))
		}
		return errs.Upstream(fmt.Sprintf("TMDB returned status %d", resp.StatusCode))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errs.Upstream(fmt.Sprintf("decoding TMDB response: %v", err))
	}
	return nil
}
