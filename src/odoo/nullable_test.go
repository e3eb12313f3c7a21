// Copyright (c) 2026 serxoz All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package odoo_test

import (
	"encoding/json"
	"testing"

	"github.com/serxoz/odoors/src/odoo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNullableUnmarshal(t *testing.T) {
	type product struct {
		ID   int64                 `json:"id"`
		Name string                `json:"name"`
		Code odoo.Nullable[string] `json:"default_code"`
	}

	tests := []struct {
		name      string
		body      string
		wantValid bool
		wantCode  string
	}{
		{
			name:      "false decodes to absent",
			body:      `{"id": 1, "name": "Desk", "default_code": false}`,
			wantValid: false,
		},
		{
			name:      "string decodes to present",
			body:      `{"id": 2, "name": "Chair", "default_code": "FURN-001"}`,
			wantValid: true,
			wantCode:  "FURN-001",
		},
		{
			name:      "missing field stays absent",
			body:      `{"id": 3, "name": "Lamp"}`,
			wantValid: false,
		},
		{
			name: "mismatched shape decodes to absent rather than failing",
			// The adapter swallows any decode failure, not only false; a
			// nested object is read as absence (see the type's doc).
			body:      `{"id": 4, "name": "Shelf", "default_code": {"unexpected": true}}`,
			wantValid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p product
			require.NoError(t, json.Unmarshal([]byte(tt.body), &p))

			code, ok := p.Code.Get()
			assert.Equal(t, tt.wantValid, ok)
			if tt.wantValid {
				assert.Equal(t, tt.wantCode, code)
			}
		})
	}
}

func TestNullableNumericAndBool(t *testing.T) {
	// false must decode to absent for any non-boolean target type, and a
	// well-typed value must survive untouched.
	var qty odoo.Nullable[int]
	require.NoError(t, json.Unmarshal([]byte("false"), &qty))
	assert.False(t, qty.Valid)

	require.NoError(t, json.Unmarshal([]byte("12"), &qty))
	assert.True(t, qty.Valid)
	assert.Equal(t, 12, qty.Value)

	// A Nullable[bool] field cannot distinguish a genuine false from
	// absence; both decode to a valid false here because bool accepts the
	// literal. Fields that mean boolean false must not opt in.
	var flag odoo.Nullable[bool]
	require.NoError(t, json.Unmarshal([]byte("false"), &flag))
	assert.True(t, flag.Valid)
	assert.False(t, flag.Value)
}

func TestNullableMarshal(t *testing.T) {
	assert.Equal(t, "false", mustMarshal(t, odoo.Nullable[string]{}))
	assert.Equal(t, `"FURN-001"`, mustMarshal(t, odoo.Some("FURN-001")))
	assert.Equal(t, "7", mustMarshal(t, odoo.Some(7)))
}

func TestNullableAccessors(t *testing.T) {
	absent := odoo.Nullable[string]{}
	assert.Equal(t, "fallback", absent.Or("fallback"))
	assert.Nil(t, absent.Ptr())

	present := odoo.Some("value")
	assert.Equal(t, "value", present.Or("fallback"))
	require.NotNil(t, present.Ptr())
	assert.Equal(t, "value", *present.Ptr())
}

func mustMarshal(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return string(data)
}
