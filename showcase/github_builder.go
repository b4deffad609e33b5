package showcase

import "net/http"

// ClientBuilderOption is a function that modifies the client configuration.
type ClientBuilderOption func(*Client)

// WithHTTPClient sets the underlying HTTP client.
//
// Parameters:
//   - httpClient: the HTTP client to use
//
// Returns:
//   - ClientBuilderOption: the option function
func WithHTTPClient(httpClient *http.Client) ClientBuilderOption {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithAPIBase overrides the GitHub API base URL, mainly for tests.
//
// Parameters:
//   - base: the API base URL without a trailing slash
//
// Returns:
//   - ClientBuilderOption: the option function
func WithAPIBase(base string) ClientBuilderOption {
	return func(c *Client) {
		if base != "" {
			c.apiBase = base
		}
	}
}
