package inversiesdk

import (
	"context"
	"net/http"
	"strings"
	"time"
)

// SDKClient talks to an Inversie server. It covers the public endpoints and
// creates authenticated Sessions.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewSDKClient creates a client for the server at baseURL.
func NewSDKClient(baseURL string) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Login exchanges email and PIN for a Session.
func (c *SDKClient) Login(ctx context.Context, email, pin string) (*Session, error) {
	var out LoginResponse
	err := c.call(ctx, http.MethodPost, "/api/auth/login", "",
		LoginRequest{Email: email, PIN: pin}, &out, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &Session{client: c, token: out.Token, ExpiresAt: out.ExpiresAt, User: out.User}, nil
}

// NewSession wraps an existing token, for example one kept by a previous
// process. Nothing is validated until the first call.
func (c *SDKClient) NewSession(token string) *Session {
	return &Session{client: c, token: token}
}

// GetLiveness checks if the service is alive.
func (c *SDKClient) GetLiveness(ctx context.Context) (*HealthResponse, error) {
	var health HealthResponse
	if err := c.call(ctx, http.MethodGet, "/livez", "", nil, &health, http.StatusOK); err != nil {
		return nil, err
	}
	return &health, nil
}

// GetReadiness checks if the service can reach its database.
func (c *SDKClient) GetReadiness(ctx context.Context) (*HealthResponse, error) {
	var health HealthResponse
	if err := c.call(ctx, http.MethodGet, "/readyz", "", nil, &health, http.StatusOK); err != nil {
		return nil, err
	}
	return &health, nil
}

// GetIndex returns the API description served at /api.
func (c *SDKClient) GetIndex(ctx context.Context) (*IndexResponse, error) {
	var idx IndexResponse
	if err := c.call(ctx, http.MethodGet, "/api", "", nil, &idx, http.StatusOK); err != nil {
		return nil, err
	}
	return &idx, nil
}
