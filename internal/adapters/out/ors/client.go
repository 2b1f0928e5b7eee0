// Package ors talks to an OpenRouteService-compatible API for geocoding and
// routing-matrix distances. Calls are never retried; every transport failure
// or non-2xx answer becomes errs.UpstreamUnavailableError.
package ors

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"parcel/internal/pkg/errs"
)

const (
	DefaultProfile = "driving-car"
	DefaultTimeout = 10 * time.Second

	// maxErrorBody bounds how much of an error response ends up in the error text.
	maxErrorBody = 512
)

// Config holds the connection settings shared by Geocoder and Router.
type Config struct {
	BaseURL string
	APIKey  string
	// Profile is the routing profile used in /v2/matrix/{profile}.
	Profile string
	// Country restricts geocoding results (boundary.country), e.g. "CO".
	Country string
	Timeout time.Duration
}

// StatusError is the cause attached to UpstreamUnavailableError for non-2xx answers.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("status %d: %s", e.Code, e.Body)
}

type client struct {
	session *http.Client
	cfg     Config
	service string
}

func newClient(cfg Config, session *http.Client, service string) client {
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if cfg.Profile == "" {
		cfg.Profile = DefaultProfile
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if session == nil {
		session = &http.Client{Timeout: cfg.Timeout}
	}
	return client{session: session, cfg: cfg, service: service}
}

func (c client) newRequest(ctx context.Context, method, url string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	if c.cfg.APIKey != "" {
		req.Header.Set("Authorization", c.cfg.APIKey)
	}
	req.Header.Set("Accept", "application/json")

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return req, nil
}

// do sends req and returns the response only for 2xx answers. The caller
// closes the body.
func (c client) do(req *http.Request) (*http.Response, error) {
	ctx, cancel := context.WithTimeout(req.Context(), c.cfg.Timeout)
	resp, err := c.session.Do(req.WithContext(ctx))
	if err != nil {
		cancel()
		return nil, c.unavailable(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		resp.Body.Close()
		cancel()
		return nil, c.unavailable(&StatusError{
			Code: resp.StatusCode,
			Body: strings.TrimSpace(string(b)),
		})
	}

	resp.Body = cancelOnClose{ReadCloser: resp.Body, cancel: cancel}
	return resp, nil
}

func (c client) unavailable(cause error) error {
	return errs.NewUpstreamUnavailableErrorWithCause(c.service, cause)
}

type cancelOnClose struct {
	io.ReadCloser
	cancel context.CancelFunc
}

func (c cancelOnClose) Close() error {
	defer c.cancel()
	return c.ReadCloser.Close()
}
