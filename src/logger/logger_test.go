// Copyright (c) 2026 serxoz All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"sync"
	"testing"

	"github.com/serxoz/odoors/src/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCLILogger(t *testing.T) {
	tests := []struct {
		name     string
		testFunc func(t *testing.T)
	}{
		{
			name: "Printf",
			testFunc: func(t *testing.T) {
				var buf bytes.Buffer
				log := logger.NewCLILogger()
				log.SetOutput(&buf)

				log.Printf("logged in as %s", "admin")

				assert.Contains(t, buf.String(), "logged in as admin")
			},
		},
		{
			name: "Println",
			testFunc: func(t *testing.T) {
				var buf bytes.Buffer
				log := logger.NewCLILogger()
				log.SetOutput(&buf)

				log.Println("session", "ready")

				assert.Contains(t, buf.String(), "session ready")
			},
		},
		{
			name: "SetOutput redirects",
			testFunc: func(t *testing.T) {
				var buf1, buf2 bytes.Buffer
				log := logger.NewCLILogger()

				log.SetOutput(&buf1)
				log.Println("first")
				log.SetOutput(&buf2)
				log.Println("second")

				assert.Contains(t, buf1.String(), "first")
				assert.NotContains(t, buf1.String(), "second")
				assert.Contains(t, buf2.String(), "second")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, tt.testFunc)
	}
}

func TestJSONLogger(t *testing.T) {
	tests := []struct {
		name     string
		testFunc func(t *testing.T)
	}{
		{
			name: "Printf emits JSON line",
			testFunc: func(t *testing.T) {
				var buf bytes.Buffer
				log := logger.NewJSONLogger(&buf, false)

				log.Printf("uid %d", 7)

				var entry map[string]any
				require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
				assert.Equal(t, "info", entry["level"])
				assert.Equal(t, "uid 7", entry["message"])
			},
		},
		{
			name: "Println emits JSON line",
			testFunc: func(t *testing.T) {
				var buf bytes.Buffer
				log := logger.NewJSONLogger(&buf, false)

				log.Println("done")

				var entry map[string]any
				require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
				assert.Equal(t, "done", entry["message"])
			},
		},
		{
			name: "silent suppresses output",
			testFunc: func(t *testing.T) {
				var buf bytes.Buffer
				log := logger.NewJSONLogger(&buf, true)

				log.Printf("hidden")
				log.Println("also hidden")

				assert.Zero(t, buf.Len())
			},
		},
		{
			name: "nil writer discards",
			testFunc: func(t *testing.T) {
				log := logger.NewJSONLogger(nil, false)

				// Must not panic.
				log.Printf("dropped")
			},
		},
		{
			name: "SetOutput with nil falls back to discard",
			testFunc: func(t *testing.T) {
				var buf bytes.Buffer
				log := logger.NewJSONLogger(&buf, false)

				log.SetOutput(nil)
				log.Println("dropped")

				assert.Zero(t, buf.Len())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, tt.testFunc)
	}
}

func TestJSONLoggerConcurrent(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewJSONLogger(&buf, false)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			log.Printf("call %d", n)
		}(i)
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 16)
	for _, line := range lines {
		var entry map[string]any
		assert.NoError(t, json.Unmarshal([]byte(line), &entry))
	}
}
