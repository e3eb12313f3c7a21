// Copyright (c) 2026 serxoz All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package odoo_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/serxoz/odoors/src/odoo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPTransportHeaders(t *testing.T) {
	var gotContentType, gotUserAgent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		gotUserAgent = r.Header.Get("User-Agent")
		w.Write([]byte(`{"result": true}`))
	}))
	defer srv.Close()

	transport := odoo.NewHTTPTransport("1.3.3.7-testing")
	body, err := transport.Post(context.Background(), srv.URL, []byte(`{}`))
	require.NoError(t, err)

	assert.JSONEq(t, `{"result": true}`, string(body))
	assert.Equal(t, "application/json", gotContentType)
	assert.Contains(t, gotUserAgent, "odoors/1.3.3.7-testing")
}

func TestHTTPTransportCustomUserAgent(t *testing.T) {
	transport := odoo.NewHTTPTransport("0.1.0")
	assert.Contains(t, transport.GetUserAgent(), "odoors/0.1.0")

	transport.UserAgent = "integration-suite/2"
	assert.Equal(t, "integration-suite/2", transport.GetUserAgent())
}

func TestHTTPTransportNon2xxStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	defer srv.Close()

	transport := odoo.NewHTTPTransport("test")
	_, err := transport.Post(context.Background(), srv.URL, []byte(`{}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestHTTPTransportContextCancellation(t *testing.T) {
	blocked := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-blocked
	}))
	defer srv.Close()
	defer close(blocked)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	transport := odoo.NewHTTPTransport("test")
	_, err := transport.Post(ctx, srv.URL, []byte(`{}`))
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestHTTPTransportClientReuse(t *testing.T) {
	transport := odoo.NewHTTPTransport("test")

	first := transport.Client()
	second := transport.Client()
	assert.Same(t, first, second, "the underlying http.Client must be reused")

	transport.Timeout = 3 * time.Second
	third := transport.Client()
	assert.Equal(t, 3*time.Second, third.Timeout)
}
