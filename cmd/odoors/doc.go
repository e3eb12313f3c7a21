// Copyright (c) 2026 serxoz All rights reserved.
// Use of this source code is governed by a BSD 3-Clause
// license that can be found in the LICENSE file.

// odoors is a command-line client for the Odoo JSON-RPC interface.
//
// # Installation
//
// Install with Go 1.25.5 or later:
//
//	go install github.com/serxoz/odoors/cmd/odoors@latest
//
// # Usage
//
//	odoors [COMMAND] [FLAGS]
//
// # Commands
//
//	start        Fetch bootstrap hints from a demo server
//	login        Authenticate and print the user id
//	search-read  Filter and read records of a model in one round trip
//	call         Invoke an arbitrary model method
//	create       Create a record and print its id
//	write        Update records and print the success flag
//
// # Flags
//
//	-c, --config     Config file, YAML or JSON (host, database, login, password)
//	    --host       Base URL of the remote server
//	    --database   Database name
//	    --login      User login
//	    --password   User password
//	    --timeout    Request timeout in seconds (default 10)
//	    --json       Emit data output as JSON
//
// # Examples
//
// Bootstrap a demo session and list partners:
//
//	odoors --host https://demo.odoo.com start
//	odoors -c demo.yaml search-read res.partner --fields name,email --limit 5
//
// Raw method call:
//
//	odoors -c demo.yaml call res.partner search --args '[[["id", ">", 2]]]'
//
// Create then update a record:
//
//	odoors -c demo.yaml create res.partner --values '{"name": "Test"}'
//	odoors -c demo.yaml write res.partner 42 --values '{"name": "Renamed"}'
package main
