// Package showcase serves a portfolio's public GitHub repositories: a REST
// client with ETag-aware caching, a periodic refresher, and a hub pushing
// fresh snapshots to websocket subscribers.
package showcase

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"sync"
	"time"
)

const defaultAPIBase = "https://api.github.com"

// Repo is one public repository as served by the GitHub REST API, trimmed to
// the fields the showcase displays.
type Repo struct {
	Name        string    `json:"name"`
	FullName    string    `json:"full_name"`
	Description string    `json:"description"`
	HTMLURL     string    `json:"html_url"`
	Language    string    `json:"language"`
	Stars       int       `json:"stargazers_count"`
	Forks       int       `json:"forks_count"`
	Fork        bool      `json:"fork"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Client fetches a user's public repositories with ETag caching: when GitHub
// answers 304 Not Modified, the previous result is returned without spending
// rate limit on the body.
type Client struct {
	mu sync.Mutex

	httpClient *http.Client
	apiBase    string
	user       string

	etag   string
	cached []Repo
}

// NewClient creates a client for the given GitHub user.
//
// Parameters:
//   - user: the GitHub login whose repositories are fetched
//   - options: optional ClientBuilderOption functions
//
// Returns:
//   - *Client: the client
func NewClient(user string, options ...ClientBuilderOption) *Client {
	if user == "" {
		panic("user is required")
	}
	c := &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		apiBase:    defaultAPIBase,
		user:       user,
	}
	for _, opt := range options {
		opt(c)
	}
	return c
}

// Fetch returns the user's public repositories, forks excluded, sorted by
// stars descending. A 304 response serves the cached snapshot.
//
// Parameters:
//   - ctx: the request context
//
// Returns:
//   - []Repo: the repositories
//   - error: error if the request or decode fails
func (c *Client) Fetch(ctx context.Context) ([]Repo, error) {
	c.mu.Lock()
	etag := c.etag
	c.mu.Unlock()

	url := fmt.Sprintf("%s/users/%s/repos?per_page=100&sort=updated", c.apiBase, c.user)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	if etag != "" {
		req.Header.Set("If-None-Match", etag)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch repos for %s: %w", c.user, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotModified {
		c.mu.Lock()
		defer c.mu.Unlock()
		return append([]Repo(nil), c.cached...), nil
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("github responded %d: %s", resp.StatusCode, body)
	}

	var raw []Repo
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode repos: %w", err)
	}

	repos := make([]Repo, 0, len(raw))
	for _, r := range raw {
		if r.Fork {
			continue
		}
		repos = append(repos, r)
	}
	sort.SliceStable(repos, func(i, j int) bool {
		return repos[i].Stars > repos[j].Stars
	})

	c.mu.Lock()
	c.etag = resp.Header.Get("ETag")
	c.cached = append([]Repo(nil), repos...)
	c.mu.Unlock()

	return repos, nil
}

// Cached returns the last successful snapshot without a network round trip.
//
// Returns:
//   - []Repo: the cached repositories, possibly empty
func (c *Client) Cached() []Repo {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Repo(nil), c.cached...)
}
