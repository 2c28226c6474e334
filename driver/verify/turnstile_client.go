// Package verify wraps the Cloudflare Turnstile siteverify API.
package verify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultEndpoint = "https://challenges.cloudflare.com/turnstile/v0/siteverify"

type DriverError struct {
	Op  string
	Err string
}

func (e *DriverError) Error() string {
	return e.Op + ": " + e.Err
}

// Result is the verification outcome. ErrorCodes is populated when the
// token was rejected.
type Result struct {
	Success    bool
	ErrorCodes []string
}

type Client struct {
	secret     string
	endpoint   string
	httpClient *http.Client
}

func NewClient(secret string) *Client {
	return &Client{
		secret:     secret,
		endpoint:   defaultEndpoint,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// NewClientWithEndpoint allows pointing at a test server.
func NewClientWithEndpoint(secret, endpoint string) *Client {
	c := NewClient(secret)
	c.endpoint = endpoint
	return c
}

// Verify submits the token to the siteverify endpoint. A transport or
// decode failure is an error; a rejected token is a Result with
// Success=false, not an error.
func (c *Client) Verify(ctx context.Context, token, remoteIP string) (*Result, error) {
	form := url.Values{}
	form.Set("secret", c.secret)
	form.Set("response", token)
	if remoteIP != "" {
		form.Set("remoteip", remoteIP)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, &DriverError{Op: "Verify", Err: err.Error()}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &DriverError{Op: "Verify", Err: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &DriverError{
			Op:  "Verify",
			Err: fmt.Sprintf("unexpected status %d", resp.StatusCode),
		}
	}

	var payload struct {
		Success    bool     `json:"success"`
		ErrorCodes []string `json:"error-codes"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, &DriverError{Op: "Verify", Err: err.Error()}
	}

	return &Result{
		Success:    payload.Success,
		ErrorCodes: payload.ErrorCodes,
	}, nil
}
