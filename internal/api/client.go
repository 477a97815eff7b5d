// Package api implements the HTTP client for the assistants backend.
package api

import (
	"net/http"
	"time"

	"github.com/diogo/procchat/internal/config"
	"github.com/diogo/procchat/internal/errors"
)

// Endpoint paths and headers of the backend.
const (
	PathAssistants = "/assistants/"
	PathChat       = "/chat/"

	HeaderAssistantID = "assistant-id"
)

// Client talks to the assistants backend.
type Client struct {
	baseURL    string
	userID     string
	httpClient *http.Client
}

// ClientOption is a function that configures the client
type ClientOption func(*Client)

// WithUserID sets the user identifier sent with chat requests.
func WithUserID(userID string) ClientOption {
	return func(c *Client) {
		if userID != "" {
			c.userID = userID
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithTimeout sets a request timeout. Zero means no timeout, which is the
// default: an exchange runs to completion or failure.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// NewClient creates a new Client for the given base URL.
func NewClient(baseURL string, opts ...ClientOption) (*Client, error) {
	base := config.NormalizeBaseURL(baseURL)
	if base == "" {
		return nil, errors.ErrNoBaseURL
	}

	client := &Client{
		baseURL:    base,
		userID:     config.DefaultUserID,
		httpClient: &http.Client{},
	}

	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

// BaseURL returns the normalized base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// UserID returns the user identifier sent with chat requests.
func (c *Client) UserID() string {
	return c.userID
}
