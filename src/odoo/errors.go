// Copyright (c) 2026 serxoz All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package odoo

import (
	"errors"
	"fmt"
)

// ErrUnauthenticated is returned when an operation that requires a logged-in
// session is invoked before [Client.Login] has succeeded. It is detected
// locally and no network request is issued.
//
// Use [errors.Is] to test for it.
var ErrUnauthenticated = errors.New("odoo: client is not authenticated, call Login first")

// TransportError reports a failure at the HTTP boundary: connection errors,
// timeouts, non-2xx statuses, or a response body that is not valid JSON.
//
// It wraps the underlying cause, which can be recovered with [errors.Unwrap].
type TransportError struct {
	// URL is the endpoint the request was sent to.
	URL string
	// Err is the underlying cause.
	Err error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	return fmt.Sprintf("odoo: transport failure for %s: %v", e.URL, e.Err)
}

// Unwrap returns the underlying cause.
func (e *TransportError) Unwrap() error { return e.Err }

// AuthError reports a rejected authenticate call: unknown database, bad
// credentials, or a transport failure during login. The session remains
// unauthenticated when it is returned.
type AuthError struct {
	// Database is the database name the login was attempted against.
	Database string
	// Login is the user login that was rejected.
	Login string
	// Err is the underlying cause (a *RemoteError, *TransportError, or
	// *DecodeError).
	Err error
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	return fmt.Sprintf("odoo: authentication failed for %q on database %q: %v", e.Login, e.Database, e.Err)
}

// Unwrap returns the underlying cause.
func (e *AuthError) Unwrap() error { return e.Err }

// RemoteErrorData carries the structured payload the server attaches to an
// error response. All fields are surfaced verbatim and never interpreted.
type RemoteErrorData struct {
	Name      string `json:"name,omitempty"`
	Debug     string `json:"debug,omitempty"`
	Message   string `json:"message,omitempty"`
	Arguments []any  `json:"arguments,omitempty"`
}

// RemoteError is a server-reported failure: the response envelope carried an
// error object instead of a result. The server's message is passed through
// untouched.
type RemoteError struct {
	Code    int              `json:"code,omitempty"`
	Message string           `json:"message,omitempty"`
	Data    *RemoteErrorData `json:"data,omitempty"`
}

// Error implements the error interface. It prefers the detailed data message
// when the server provides one.
func (e *RemoteError) Error() string {
	if e.Data != nil && e.Data.Message != "" {
		return fmt.Sprintf("odoo: remote error %d: %s: %s", e.Code, e.Message, e.Data.Message)
	}
	return fmt.Sprintf("odoo: remote error %d: %s", e.Code, e.Message)
}

// DecodeError reports a response that could not be coerced into the caller's
// declared result type, or a malformed envelope (both result and error
// present, or neither). Fields using [Nullable] never produce this for
// themselves.
type DecodeError struct {
	// Err is the underlying cause.
	Err error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("odoo: decoding response: %v", e.Err)
}

// Unwrap returns the underlying cause.
func (e *DecodeError) Unwrap() error { return e.Err }
