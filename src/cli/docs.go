// Copyright (c) 2026 serxoz All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package cli provides the command-line interface for the odoors client.
// It implements a Cobra-based CLI that supports session bootstrap and login,
// model search-read with table or JSON output, and raw method calls including
// create and write. The package handles config file loading (YAML or JSON),
// flag/file precedence, context cancellation, and integrates with the logger
// package for human-readable and structured output.
package cli
