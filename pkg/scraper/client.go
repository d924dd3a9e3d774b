package scraper

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

// DefaultBaseURL is the students schedule page of Lviv Polytechnic.
const DefaultBaseURL = "http://www.lp.edu.ua/students_schedule"

// Query parameters the schedule page filters on.
const (
	InstituteParam = "institutecode_selective"
	GroupParam     = "edugrupabr_selective"
	allValue       = "All"
)

// Options configures a Client. Zero values fall back to defaults.
type Options struct {
	BaseURL  string
	Timeout  time.Duration
	Interval time.Duration // minimum pause between requests; 0 disables pacing
}

// Client handles HTTP requests to the lp.edu.ua schedule pages
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient creates a new scraper client
func NewClient(opts Options) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}

	limit := rate.Inf
	if opts.Interval > 0 {
		limit = rate.Every(opts.Interval)
	}

	return &Client{
		baseURL: opts.BaseURL,
		httpClient: &http.Client{
			Timeout: opts.Timeout,
		},
		limiter: rate.NewLimiter(limit, 1),
	}
}

// URL builds the schedule page address for an institute and group.
// Empty values select every institute or group.
func (c *Client) URL(institute, group string) string {
	if institute == "" {
		institute = allValue
	}
	if group == "" {
		group = allValue
	}
	query := url.Values{}
	query.Set(InstituteParam, institute)
	query.Set(GroupParam, group)
	return c.baseURL + "?" + query.Encode()
}

// Get fetches the given URL and returns the HTTP response
func (c *Client) Get(ctx context.Context, pageURL string) (*http.Response, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, err
	}

	// Add expected headers
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", pageURL, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, fmt.Errorf("unexpected status code %d when fetching %s", resp.StatusCode, pageURL)
	}

	return resp, nil
}
