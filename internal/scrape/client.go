package scrape

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// RollFetcher fetches the advocates roll. *Client implements it; tests and
// the CLI can substitute their own.
type RollFetcher interface {
	FetchRoll(ctx context.Context) (Result, error)
}

var _ RollFetcher = (*Client)(nil)

// Client downloads and parses the published roll.
type Client struct {
	source    *url.URL
	http      *http.Client
	userAgent string
}

const (
	DefaultSourceURL = "https://www.judiciary.go.ug/print_all_advocates.php"
	defaultUserAgent = "roster/0.1"
	requestTimeout   = 60 * time.Second
)

// NewClient builds a Client for the given roll URL. An empty URL uses
// DefaultSourceURL and an empty userAgent the built-in one.
func NewClient(sourceURL, userAgent string) (*Client, error) {
	source, err := parseSourceURL(sourceURL)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(userAgent) == "" {
		userAgent = defaultUserAgent
	}
	return &Client{
		source: source,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: userAgent,
	}, nil
}

// Source returns the roll URL the client reads from.
func (c *Client) Source() string {
	if c == nil || c.source == nil {
		return ""
	}
	return c.source.String()
}

// FetchRoll downloads the roll page and parses every advocate row.
func (c *Client) FetchRoll(ctx context.Context) (Result, error) {
	if c == nil {
		return Result{}, fmt.Errorf("client is nil")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.source.String(), nil)
	if err != nil {
		return Result{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "text/html")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return Result{}, fmt.Errorf("roll %s returned status %d", c.source.String(), resp.StatusCode)
	}
	return Parse(resp.Body)
}

func parseSourceURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = DefaultSourceURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse source_url %q: %w", raw, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse source_url %q: missing host", raw)
	}
	u.Fragment = ""
	return u, nil
}
