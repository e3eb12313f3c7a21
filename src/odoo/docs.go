// Copyright (c) 2026 serxoz All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package odoo implements a typed client for the [Odoo] JSON-RPC interface.
// It provides capabilities to:
//   - Authenticate a user session against a database and stamp every
//     subsequent call with the session identity.
//   - Issue method calls against named remote models (search, read,
//     search_read, create, write) through the generic object dispatcher.
//   - Decode loosely-typed results into caller-supplied structs, including
//     the server's convention of encoding "no value" as the literal false
//     via the opt-in [Nullable] field type.
//
// All network-touching operations take a context for cancellation and
// timeouts; the HTTP boundary is behind the [Transport] interface so tests
// and callers can substitute their own.
//
// [Odoo]: https://www.odoo.com/documentation/master/developer/reference/external_api.html
package odoo
