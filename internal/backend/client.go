// Package backend is a typed wrapper around the cardapio REST service.
// Every domain resource lives behind that service; this application keeps
// only session and cart state locally. Calls carry the caller's bearer
// token, failures are mapped to a small error taxonomy and never retried.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// ErrUnauthorized is returned when the backend rejects the bearer token.
// Callers must treat it as a session invalidation, not a transient error.
var ErrUnauthorized = errors.New("backend: authorization rejected")

// APIError carries a validation or business failure message surfaced by
// the backend. The view layer shows Message as-is.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend: %d: %s", e.Status, e.Message)
}

// Client groups the method-per-endpoint services of the remote contract.
type Client struct {
	baseURL string
	http    *http.Client

	Auth   *AuthService
	Menu   *MenuService
	Orders *OrderService
	Users  *UserService
}

// New creates a Client for the service at baseURL.
func New(baseURL string) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
	}
	c.Auth = &AuthService{c}
	c.Menu = &MenuService{c}
	c.Orders = &OrderService{c}
	c.Users = &UserService{c}
	return c
}

// do issues one request and decodes the response into out (skipped when
// out is nil). token may be empty for the public auth endpoints.
func (c *Client) do(ctx context.Context, token, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("backend: encode request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("backend: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("backend: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	// Only 401 invalidates the session. A 403 is a role denial against a
	// live token and surfaces as a business failure, view state untouched.
	if resp.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	if resp.StatusCode >= 400 {
		return &APIError{Status: resp.StatusCode, Message: errorMessage(resp.Body, resp.StatusCode)}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("backend: decode response: %w", err)
	}
	return nil
}

// errorMessage pulls the backend's message out of an error body. The
// service is inconsistent about the field name, so both are tried.
func errorMessage(body io.Reader, status int) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	_ = json.NewDecoder(body).Decode(&payload)
	if payload.Message != "" {
		return payload.Message
	}
	if payload.Error != "" {
		return payload.Error
	}
	return http.StatusText(status)
}
