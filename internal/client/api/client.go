// Package api implements the HTTP client for the user-directory service.
// Every call attaches the fixed api key and, when a token is available,
// a bearer credential. Calls are attempted exactly once; there are no
// retries and no client-side timeouts beyond the transport's defaults.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/Ragul-Ragavendran-R/user-management-app/internal/models"
)

const (
	apiKeyHeader = "x-api-key"
	authHeader   = "Authorization"
)

// TokenFunc returns the current session token, or "" when logged out.
type TokenFunc func() string

// Client talks to the directory service over JSON/HTTP.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	token      TokenFunc
}

// New constructs a Client. token may be nil for unauthenticated use;
// if httpClient is nil, http.DefaultClient is used.
func New(baseURL, apiKey string, token TokenFunc, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		apiKey:     apiKey,
		token:      token,
	}
}

// Login exchanges credentials for a bearer token. Persisting the token
// is the caller's responsibility, as an explicit step.
func (c *Client) Login(ctx context.Context, creds models.Credentials) (string, error) {
	var out struct {
		Token string `json:"token"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/login", creds, &out); err != nil {
		return "", err
	}
	return out.Token, nil
}

// ListUsers fetches up to perPage records in one call.
func (c *Client) ListUsers(ctx context.Context, perPage int) ([]models.User, error) {
	var out struct {
		Data []models.User `json:"data"`
	}
	path := "/api/users?per_page=" + strconv.Itoa(perPage)
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

// CreateUser submits a draft record and returns the server's echo,
// merged over the draft so fields the server ignores are preserved.
func (c *Client) CreateUser(ctx context.Context, draft models.User) (models.User, error) {
	var echo models.User
	if err := c.do(ctx, http.MethodPost, "/api/users", draft, &echo); err != nil {
		return models.User{}, err
	}
	created := draft.Merge(echo)
	if echo.ID != "" {
		created.ID = echo.ID
	}
	return created, nil
}

// UpdateUser submits a partial record for id and returns the merged echo.
func (c *Client) UpdateUser(ctx context.Context, id string, patch models.User) (models.User, error) {
	var echo models.User
	if err := c.do(ctx, http.MethodPut, "/api/users/"+id, patch, &echo); err != nil {
		return models.User{}, err
	}
	return patch.Merge(echo), nil
}

// DeleteUser removes the record with the given id. Success is signaled
// by status code alone.
func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/users/"+id, nil, nil)
}

// do performs one request. A non-2xx status yields an *APIError carrying
// the body's error text when present; a transport failure yields a
// *TransportError.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(apiKeyHeader, c.apiKey)
	if c.token != nil {
		if t := c.token(); t != "" {
			req.Header.Set(authHeader, "Bearer "+t)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return transportErr(method+" "+path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errBody struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&errBody)
		return &APIError{Status: resp.StatusCode, Message: errBody.Error}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
