// Copyright (c) 2026 serxoz All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package odoo

import (
	"bytes"
	"encoding/json"
	"errors"
	"sync/atomic"
)

// Services the remote dispatcher exposes. Session and meta calls go through
// "common"; model calls go through "object".
const (
	// ServiceCommon routes session and meta calls (authenticate, start).
	ServiceCommon = "common"
	// ServiceObject routes model calls through the generic execute dispatcher.
	ServiceObject = "object"
)

// requestID allocates correlation ids for outgoing requests. The server does
// not assign meaning to the value; an incrementing counter keeps captures
// readable.
var requestID atomic.Int64

// nextRequestID returns the next request correlation id, starting at 1.
func nextRequestID() int64 { return requestID.Add(1) }

// Request is the outbound JSON-RPC envelope.
//
// Params is a strictly ordered positional argument list; the remote
// dispatcher binds by position only, so the contents depend on the
// service/method pair (see [NewRequest]). Method is null for object calls,
// where the remote method name travels as the fifth positional parameter
// instead.
type Request struct {
	Service string  `json:"service"`
	Method  *string `json:"method"`
	Params  []any   `json:"params"`
	ID      int64   `json:"id"`
}

// NewRequest builds a request envelope for the given service with a fresh
// correlation id. Pass an empty method for object-dispatcher calls; it is
// then encoded as JSON null.
//
// The params are kept in the exact order given. Callers are responsible for
// matching the positional convention of the target service:
//
//	common/authenticate: database, login, password, ""
//	object (method null): database, uid, password, model, method, args...
func NewRequest(service, method string, params ...any) *Request {
	req := &Request{
		Service: service,
		Params:  params,
		ID:      nextRequestID(),
	}
	if method != "" {
		req.Method = &method
	}
	if req.Params == nil {
		req.Params = []any{}
	}
	return req
}

// Encode serializes the envelope to its wire form.
func (r *Request) Encode() ([]byte, error) {
	return json.Marshal(r)
}

// Response is the inbound JSON-RPC envelope. Exactly one of Result and Error
// is meaningful; [Response.Decode] enforces this.
type Response struct {
	Result json.RawMessage `json:"result,omitempty"`
	Error  *RemoteError    `json:"error,omitempty"`
	ID     int64           `json:"id,omitempty"`
}

// errMalformedEnvelope reports a response where the result/error exclusivity
// invariant does not hold.
var errMalformedEnvelope = errors.New("response envelope must carry exactly one of result and error")

// DecodeResponse parses a raw response body into a [Response] and validates
// the envelope invariant: a *RemoteError when the server reported a failure,
// a *DecodeError when the envelope shape is invalid. A body that is not JSON
// at all is returned as a plain error so the caller can classify it as a
// transport fault.
func DecodeResponse(body []byte) (*Response, error) {
	var resp Response
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, err
	}
	if resp.Error != nil {
		if resp.Result != nil && !bytes.Equal(resp.Result, []byte("null")) {
			return nil, &DecodeError{Err: errMalformedEnvelope}
		}
		return nil, resp.Error
	}
	if resp.Result == nil {
		return nil, &DecodeError{Err: errMalformedEnvelope}
	}
	return &resp, nil
}

// Decode unmarshals the result payload into out, which must be a non-nil
// pointer. A type mismatch between the payload and the target is reported as
// a *DecodeError; fields declared as [Nullable] absorb their own mismatches
// instead.
func (r *Response) Decode(out any) error {
	if err := json.Unmarshal(r.Result, out); err != nil {
		return &DecodeError{Err: err}
	}
	return nil
}
