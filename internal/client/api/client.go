package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sportlane/shopclient/pkg/api"
)

// ClientType is sent on every request so the backend can tell client
// flavors apart.
const ClientType = "mobile-app"

// TokenSource supplies fresh access tokens for authenticated requests
// and is told about 401 responses that slipped past the pre-emptive
// expiry check. The session guard implements it.
type TokenSource interface {
	// Token returns an access token fresh enough to use
	Token(ctx context.Context) (string, error)

	// Unauthorized reports a 401 observed on an authenticated request
	Unauthorized(ctx context.Context)
}

// StatusError is a non-2xx response decoded from the error envelope
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("request failed with status %d", e.StatusCode)
	}
	return fmt.Sprintf("server error (%d): %s", e.StatusCode, e.Message)
}

// Client is the HTTP client for the storefront backend
type Client struct {
	httpClient *http.Client
	baseURL    string
	tokens     TokenSource
}

// NewClient creates a new API client. A token source must be attached
// with SetTokenSource before authenticated endpoints are used.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Carry the Authorization header across redirects
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// SetTokenSource attaches the session guard. Set once during wiring;
// the client and the guard reference each other, so this cannot happen
// in the constructor.
func (c *Client) SetTokenSource(tokens TokenSource) {
	c.tokens = tokens
}

// doRequest performs an unauthenticated request
func (c *Client) doRequest(ctx context.Context, method, path string, query url.Values, body, result interface{}) error {
	return c.send(ctx, method, path, query, "", body, result, false)
}

// doAuthRequest performs a request with a guard-supplied bearer token
func (c *Client) doAuthRequest(ctx context.Context, method, path string, query url.Values, body, result interface{}) error {
	if c.tokens == nil {
		return fmt.Errorf("no token source configured")
	}
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return fmt.Errorf("failed to obtain access token: %w", err)
	}
	return c.send(ctx, method, path, query, token, body, result, true)
}

// doTokenRequest performs a request with an explicit bearer credential.
// Used by the refresh exchange, where the refresh token itself is the
// bearer and must not be routed through the token source.
func (c *Client) doTokenRequest(ctx context.Context, method, path, token string, body, result interface{}) error {
	return c.send(ctx, method, path, nil, token, body, result, false)
}

func (c *Client) send(ctx context.Context, method, path string, query url.Values, token string, body, result interface{}, guarded bool) error {
	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("x-client-type", ClientType)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Safety net for clock skew: a pre-emptively "fresh" token the
		// server still rejected means the session is gone.
		if resp.StatusCode == http.StatusUnauthorized && guarded {
			c.tokens.Unauthorized(ctx)
		}

		statusErr := &StatusError{StatusCode: resp.StatusCode}
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Message != "" {
			statusErr.Message = errResp.Message
		}
		return statusErr
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
