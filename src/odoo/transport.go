// Copyright (c) 2026 serxoz All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package odoo

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/serxoz/odoors/src/internal/helper/gc"
)

// Transport is the boundary the client sends envelopes through. It posts a
// JSON body and returns the raw JSON response body. Implementations must
// report any network, HTTP, or read failure as an error; classification into
// [TransportError] happens in the client.
//
// The default implementation is [HTTPTransport]; tests inject their own.
type Transport interface {
	Post(ctx context.Context, url string, body []byte) ([]byte, error)
}

// HTTPTransport posts JSON over HTTP(S) using a lazily-built, reusable
// http.Client. TLS configuration, redirects, and connection reuse are
// delegated to net/http.
//
// Thread Safety: Safe for concurrent use.
type HTTPTransport struct {
	// Timeout is the per-request timeout applied to the underlying client.
	Timeout time.Duration
	// Version is the application version used to construct the User-Agent.
	Version string
	// UserAgent overrides the constructed User-Agent string when non-empty.
	UserAgent string

	mu     sync.Mutex
	client *http.Client
}

// NewHTTPTransport creates an HTTP transport with a default timeout of
// 10 seconds and the provided application version.
func NewHTTPTransport(version string) *HTTPTransport {
	return &HTTPTransport{
		Timeout: 10 * time.Second,
		Version: version,
	}
}

// GetUserAgent returns the User-Agent string, constructing it from the
// version if no custom value is set.
func (t *HTTPTransport) GetUserAgent() string {
	if t.UserAgent != "" {
		return t.UserAgent
	}
	return fmt.Sprintf("odoors/%s (+https://github.com/serxoz/odoors)", t.Version)
}

// Client returns an http.Client configured with the current timeout,
// creating or updating it as needed.
//
// Thread Safety: Safe for concurrent use.
func (t *HTTPTransport) Client() *http.Client {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.client == nil {
		t.client = &http.Client{Timeout: t.Timeout}
		return t.client
	}

	if t.client.Timeout != t.Timeout {
		t.client.Timeout = t.Timeout
	}

	return t.client
}

// Post sends body as a JSON POST to url and returns the response body. The
// body is read through a pooled buffer to keep allocation pressure low on
// large record sets.
//
// A non-2xx status is an error: the server reports application failures
// inside the JSON envelope, so anything else is a transport fault.
func (t *HTTPTransport) Post(ctx context.Context, url string, body []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", t.GetUserAgent())

	resp, err := t.Client().Do(req)
	if err != nil {
		return nil, err
	}

	// Get a buffer from the pool
	buf := gc.Default.Get()
	if _, err := buf.ReadFrom(resp.Body); err != nil {
		resp.Body.Close()
		buf.Reset()
		gc.Default.Put(buf)
		return nil, err
	}
	resp.Body.Close()

	data := append([]byte(nil), buf.Bytes()...)
	buf.Reset()
	gc.Default.Put(buf)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}

	return data, nil
}
