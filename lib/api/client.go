// Copyright 2026 The Raildesk Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ErrUnauthorized is returned when the backend rejects the request
// with HTTP 401. Callers treat this as an expired or missing session
// and direct the user back to "raildesk login".
var ErrUnauthorized = errors.New("unauthorized: session expired or not logged in")

// Error is a non-2xx response from the booking backend. The body is
// kept verbatim for diagnostics; the backend's error envelopes are
// free-form and not worth modeling.
type Error struct {
	// Op is the logical operation that failed (e.g. "create booking").
	Op string
	// Status is the HTTP status code.
	Status int
	// Body is the raw response body, truncated to errorBodyLimit.
	Body string
}

func (e *Error) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s: HTTP %d", e.Op, e.Status)
	}
	return fmt.Sprintf("%s: HTTP %d: %s", e.Op, e.Status, e.Body)
}

// Client is a typed HTTP client for the booking backend. The zero
// value is not usable; construct with New.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

// DefaultTimeout bounds every request when the caller's context
// carries no deadline of its own.
const DefaultTimeout = 30 * time.Second

// New creates a Client for the backend at baseURL (e.g.
// "http://localhost:8080/api/v1"). A trailing slash on baseURL is
// tolerated. The token may be empty for unauthenticated calls (login,
// register); set it later with SetToken.
func New(baseURL, token string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
	}
}

// NewForTesting creates a Client with a custom transport. Tests use
// this to redirect requests to an httptest.Server.
func NewForTesting(transport http.RoundTripper, token string) *Client {
	return &Client{
		httpClient: &http.Client{Transport: transport},
		baseURL:    "http://raildesk.test/api/v1",
		token:      token,
	}
}

// SetToken replaces the bearer token attached to subsequent requests.
// Called after a successful login on a client constructed without one.
func (client *Client) SetToken(token string) {
	client.token = token
}

// SetTimeout overrides the per-request timeout. Configuration files
// can raise it for slow deployments.
func (client *Client) SetTimeout(timeout time.Duration) {
	if timeout > 0 {
		client.httpClient.Timeout = timeout
	}
}

// BaseURL returns the backend base URL this client was configured with.
func (client *Client) BaseURL() string {
	return client.baseURL
}

// do issues a request with the bearer token attached and returns the
// response. Non-2xx statuses are converted to errors here so the
// per-endpoint methods only deal with decoding success bodies: 401
// maps to ErrUnauthorized, everything else to *Error.
func (client *Client) do(ctx context.Context, op, method, path string, query url.Values, body any) (*http.Response, error) {
	endpoint := client.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("%s: encoding request: %w", op, err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	request, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if client.token != "" {
		request.Header.Set("Authorization", "Bearer "+client.token)
	}

	response, err := client.httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if response.StatusCode == http.StatusUnauthorized {
		response.Body.Close()
		return nil, fmt.Errorf("%s: %w", op, ErrUnauthorized)
	}
	if response.StatusCode < 200 || response.StatusCode > 299 {
		defer response.Body.Close()
		return nil, &Error{Op: op, Status: response.StatusCode, Body: errorBody(response.Body)}
	}
	return response, nil
}

// getJSON issues a GET and decodes the response body into result.
func (client *Client) getJSON(ctx context.Context, op, path string, query url.Values, result any) error {
	response, err := client.do(ctx, op, http.MethodGet, path, query, nil)
	if err != nil {
		return err
	}
	defer response.Body.Close()
	if err := decodeResponse(response.Body, result); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// sendJSON issues a request with a JSON body and optionally decodes
// the response into result (pass nil to discard the body).
func (client *Client) sendJSON(ctx context.Context, op, method, path string, query url.Values, body, result any) error {
	response, err := client.do(ctx, op, method, path, query, body)
	if err != nil {
		return err
	}
	defer response.Body.Close()
	if result == nil {
		return nil
	}
	if err := decodeResponse(response.Body, result); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
