package gen

import (
	"fmt"

	http "github.com/bogdanfinn/fhttp"
	tls_client "github.com/bogdanfinn/tls-client"
	"github.com/bogdanfinn/tls-client/profiles"

	"github.com/Clemens865/microlabs/internal/config"
)

// HTTPDoer is the transport surface the client needs. Satisfied by
// tls_client.HttpClient and by test mocks.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Generator is the call surface apps depend on, so tests can inject a
// mock client.
type Generator interface {
	Generate(req Request) (*Result, error)
}

// Client issues generation requests to the remote endpoint. It holds no
// mutable state beyond its configuration; a Generate call is a single
// request/response exchange with no retries.
type Client struct {
	httpClient       HTTPDoer
	creds            *config.Credentials
	baseURL          string
	model            string
	refusalThreshold int
}

// Ensure Client implements Generator
var _ Generator = (*Client)(nil)

// ClientOption is a function that configures the client
type ClientOption func(*Client)

// WithModel sets the default model for the client
func WithModel(model string) ClientOption {
	return func(c *Client) {
		if model != "" {
			c.model = model
		}
	}
}

// WithBaseURL overrides the API base URL
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		if baseURL != "" {
			c.baseURL = baseURL
		}
	}
}

// WithHTTPClient injects a transport, primarily for tests
func WithHTTPClient(doer HTTPDoer) ClientOption {
	return func(c *Client) {
		c.httpClient = doer
	}
}

// WithRefusalThreshold tunes the refusal length heuristic
func WithRefusalThreshold(n int) ClientOption {
	return func(c *Client) {
		if n > 0 {
			c.refusalThreshold = n
		}
	}
}

// NewClient creates a new generation client. The credential store is
// required; an empty key inside it only fails at Generate time, before
// any network call.
func NewClient(creds *config.Credentials, opts ...ClientOption) (*Client, error) {
	if creds == nil {
		return nil, fmt.Errorf("credentials store is required")
	}

	client := &Client{
		creds:            creds,
		baseURL:          DefaultBaseURL,
		model:            DefaultModel,
		refusalThreshold: DefaultRefusalThreshold,
	}

	for _, opt := range opts {
		opt(client)
	}

	if client.httpClient == nil {
		options := []tls_client.HttpClientOption{
			tls_client.WithTimeoutSeconds(300),
			tls_client.WithClientProfile(profiles.Chrome_120),
			tls_client.WithNotFollowRedirects(),
		}

		httpClient, err := tls_client.NewHttpClient(tls_client.NewNoopLogger(), options...)
		if err != nil {
			return nil, fmt.Errorf("failed to create HTTP client: %w", err)
		}
		client.httpClient = httpClient
	}

	return client, nil
}

// Model returns the client's default model
func (c *Client) Model() string {
	return c.model
}
