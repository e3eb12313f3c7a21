// Copyright (c) 2026 serxoz All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package gc provides reusable byte buffer pooling to reduce garbage collection overhead.
// It abstracts the [bytebufferpool] library to provide a consistent interface for
// buffer management across the application, particularly when reading JSON-RPC
// response bodies, where large search_read record sets would otherwise allocate
// a fresh slice per call.
//
// [bytebufferpool]: https://github.com/valyala/bytebufferpool
package gc
