// Copyright (c) 2026 serxoz All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package odoo

import (
	"context"
	"errors"
	"strings"
)

// Endpoint path suffixes appended to the configured host. The generic RPC
// dispatcher and the bootstrap discovery call live at distinct paths on the
// same server.
const (
	// PathJSONRPC is the default path for all RPC calls.
	PathJSONRPC = "jsonrpc"
	// PathStart is the path used only by the [Client.Start] discovery call.
	PathStart = "start"
)

// Client is an authenticated-session handle to a remote server.
//
// A Client starts unauthenticated: only [Client.Start] and [Client.Login]
// are usable. After a successful Login it carries the numeric user id and
// the credential, which stamp every subsequent model call. The session state
// is written exactly once, on login, and never mutated afterwards, so a
// logged-in Client is safe for concurrent calls.
type Client struct {
	host     string
	database string
	uid      uint32
	password string

	transport Transport
}

// New creates a client for the given host and database. It performs no
// network I/O and always succeeds. The database may be empty for pre-login
// bootstrap calls against demo servers.
//
// Parameters:
//   - host: Base URL of the remote server, e.g. "https://demo.odoo.com"
//   - database: Tenant database name
//
// Returns:
//   - *Client: New unauthenticated client
func New(host, database string) *Client {
	return &Client{
		host:      strings.TrimRight(host, "/"),
		database:  database,
		transport: NewHTTPTransport(defaultVersion),
	}
}

// defaultVersion is stamped into the User-Agent of the default transport.
// The cmd package overrides it via [Client.SetTransport] with the real
// build version.
var defaultVersion = "dev"

// SetTransport replaces the transport used for all calls. Pass a custom
// implementation to control timeouts, TLS, or to fake the server in tests.
// It must be called before the client is shared between goroutines.
func (c *Client) SetTransport(t Transport) {
	if t != nil {
		c.transport = t
	}
}

// NewAndLogin creates a client and immediately authenticates it.
//
// On failure the partially-constructed client is discarded and only the
// error is returned; a partially-authenticated session is never handed to
// the caller.
//
// Parameters:
//   - ctx: Context for cancellation and timeouts
//   - host: Base URL of the remote server
//   - database: Tenant database name
//   - login: User login
//   - password: User password
//
// Returns:
//   - *Client: Authenticated client
//   - error: Whatever [Client.Login] failed with
func NewAndLogin(ctx context.Context, host, database, login, password string) (*Client, error) {
	c := New(host, database)
	if _, err := c.Login(ctx, login, password); err != nil {
		return nil, err
	}
	return c, nil
}

// Host returns the configured base URL.
func (c *Client) Host() string { return c.host }

// Database returns the configured database name.
func (c *Client) Database() string { return c.database }

// UID returns the authenticated user id and whether login has succeeded.
func (c *Client) UID() (uint32, bool) { return c.uid, c.authenticated() }

// authenticated reports whether a login has succeeded on this client.
func (c *Client) authenticated() bool { return c.password != "" }

// Start issues the no-argument discovery call to the "common" service. Demo
// servers answer with bootstrap hints such as a suggested host, database,
// user, and password, which can be fed straight into [NewAndLogin].
//
// It does not require authentication and fails with a *TransportError when
// the network call fails or the response is not a string-keyed mapping.
func (c *Client) Start(ctx context.Context) (map[string]string, error) {
	resp, err := c.send(ctx, NewRequest(ServiceCommon, "start"), PathStart)
	if err != nil {
		return nil, err
	}

	values := make(map[string]string)
	if err := resp.Decode(&values); err != nil {
		// A start endpoint that answers with anything but string hints is a
		// broken boundary, not a caller-side type mismatch.
		return nil, &TransportError{URL: c.host + "/" + PathStart, Err: err}
	}
	return values, nil
}

// Login authenticates against the configured database and stores the
// returned user id and the password as the session credential. The client
// state is mutated only on success.
//
// Parameters:
//   - ctx: Context for cancellation and timeouts
//   - login: User login
//   - password: User password
//
// Returns:
//   - uint32: The non-zero numeric user id
//   - error: An *AuthError wrapping the remote rejection or transport failure
func (c *Client) Login(ctx context.Context, login, password string) (uint32, error) {
	req := NewRequest(ServiceCommon, "authenticate", c.database, login, password, "")

	resp, err := c.send(ctx, req, PathJSONRPC)
	if err != nil {
		return 0, &AuthError{Database: c.database, Login: login, Err: err}
	}

	// Bad credentials come back as a false result, which fails to decode as
	// an unsigned id and is reported as a rejection.
	var uid uint32
	if err := resp.Decode(&uid); err != nil {
		return 0, &AuthError{Database: c.database, Login: login, Err: err}
	}
	if uid == 0 {
		return 0, &AuthError{Database: c.database, Login: login, Err: errors.New("server returned user id 0")}
	}

	c.uid = uid
	c.password = password
	return uid, nil
}

// Call invokes method on model through the generic "object" dispatcher and
// decodes the result into result, which must be a non-nil pointer or nil to
// discard the payload.
//
// The envelope carries (database, uid, password, model, method, args) as
// positional parameters with a null envelope method, per the dispatcher
// convention. args is passed through untouched; it is usually a positional
// []any itself.
//
// It fails fast with [ErrUnauthenticated], issuing no network request, when
// called before a successful [Client.Login].
func (c *Client) Call(ctx context.Context, model, method string, args any, result any) error {
	if !c.authenticated() {
		return ErrUnauthenticated
	}

	req := NewRequest(ServiceObject, "", c.database, c.uid, c.password, model, method, args)

	resp, err := c.send(ctx, req, PathJSONRPC)
	if err != nil {
		return err
	}
	if result == nil {
		return nil
	}
	return resp.Decode(result)
}

// SearchOptions narrows a [Client.SearchRead] call. The zero value requests
// every field with the server's default paging.
type SearchOptions struct {
	// Fields restricts the returned columns; empty means all fields.
	Fields []string
	// Limit caps the number of returned records when non-nil. A nil Limit is
	// omitted from the request entirely, which the server distinguishes from
	// an explicit value.
	Limit *uint32
	// Offset skips that many records when non-nil; omitted when nil.
	Offset *uint32
}

// Uint32 returns a pointer to v, for use in [SearchOptions] literals.
func Uint32(v uint32) *uint32 { return &v }

// SearchRead filters model by domain and reads matching records in one
// round trip, decoding them into result (normally a pointer to a slice of
// record structs, whose fields may opt into [Nullable]).
//
// domain is an opaque filter expression understood by the server, passed
// through untouched, e.g.:
//
//	[]any{[]any{"id", ">", 2}}
//
// It fails fast with [ErrUnauthenticated] before login.
func (c *Client) SearchRead(ctx context.Context, model string, domain any, opts SearchOptions, result any) error {
	if !c.authenticated() {
		return ErrUnauthenticated
	}

	fields := opts.Fields
	if fields == nil {
		fields = []string{}
	}

	values := map[string]any{"fields": fields}
	if opts.Limit != nil {
		values["limit"] = *opts.Limit
	}
	if opts.Offset != nil {
		values["offset"] = *opts.Offset
	}

	req := NewRequest(ServiceObject, "",
		c.database, c.uid, c.password, model, "search_read", []any{domain}, values)

	resp, err := c.send(ctx, req, PathJSONRPC)
	if err != nil {
		return err
	}
	if result == nil {
		return nil
	}
	return resp.Decode(result)
}

// Search returns the ids of the records of model matching domain.
func (c *Client) Search(ctx context.Context, model string, domain any) ([]int64, error) {
	var ids []int64
	if err := c.Call(ctx, model, "search", []any{domain}, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// Read fetches the given fields of the records of model identified by ids,
// decoding them into result. An empty fields slice reads all fields.
func (c *Client) Read(ctx context.Context, model string, ids []int64, fields []string, result any) error {
	if fields == nil {
		fields = []string{}
	}
	return c.Call(ctx, model, "read", []any{ids, fields}, result)
}

// Create inserts a new record of model with the given values and returns
// its id.
func (c *Client) Create(ctx context.Context, model string, values map[string]any) (int64, error) {
	var id int64
	if err := c.Call(ctx, model, "create", []any{values}, &id); err != nil {
		return 0, err
	}
	return id, nil
}

// Write updates the records of model identified by ids with values and
// returns the server's success flag.
func (c *Client) Write(ctx context.Context, model string, ids []int64, values map[string]any) (bool, error) {
	var ok bool
	if err := c.Call(ctx, model, "write", []any{ids, values}, &ok); err != nil {
		return false, err
	}
	return ok, nil
}

// send is the shared transport boundary: it serializes the envelope, POSTs
// it to {host}/{path}, and classifies the outcome. Connection failures and
// non-JSON bodies become *TransportError, a server-reported error becomes
// *RemoteError, and an envelope violating the result/error exclusivity
// invariant becomes *DecodeError.
func (c *Client) send(ctx context.Context, req *Request, path string) (*Response, error) {
	url := c.host + "/" + path

	payload, err := req.Encode()
	if err != nil {
		return nil, &TransportError{URL: url, Err: err}
	}

	body, err := c.transport.Post(ctx, url, payload)
	if err != nil {
		return nil, &TransportError{URL: url, Err: err}
	}

	resp, err := DecodeResponse(body)
	if err != nil {
		var remoteErr *RemoteError
		var decodeErr *DecodeError
		switch {
		case errors.As(err, &remoteErr):
			return nil, remoteErr
		case errors.As(err, &decodeErr):
			return nil, decodeErr
		default:
			// Not JSON at all: the transport handed us garbage.
			return nil, &TransportError{URL: url, Err: err}
		}
	}

	return resp, nil
}
