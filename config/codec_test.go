// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatOf(t *testing.T) {
	testCases := []struct {
		path     string
		expected Format
	}{
		{path: "config.json", expected: JSON},
		{path: "/opt/brrcs/config.JSON", expected: JSON},
		{path: "config", expected: JSON},
		{path: "config.yaml", expected: YAML},
		{path: "C:/BRRCS/config.YML", expected: YAML},
	}

	for _, tc := range testCases {
		t.Run(tc.path, func(t *testing.T) {
			require.Equal(t, tc.expected, FormatOf(tc.path))
		})
	}
}

func TestDecode(t *testing.T) {
	testCases := []struct {
		name      string
		format    Format
		input     string
		expected  Map
		expectErr bool
	}{
		{
			name:   "json document",
			format: JSON,
			input:  `{"app_name": "BRRCS", "gui": {"width": 1024, "dark": false}, "tags": ["a", null]}`,
			expected: Map{
				"app_name": "BRRCS",
				"gui":      map[string]any{"width": float64(1024), "dark": false},
				"tags":     []any{"a", nil},
			},
		},
		{
			name:   "json with comments and trailing commas",
			format: JSON,
			input: `{
	// shown in the title bar
	"app_name": "BRRCS", /* inline */
	"output": {"dir": "out",},
}`,
			expected: Map{
				"app_name": "BRRCS",
				"output":   map[string]any{"dir": "out"},
			},
		},
		{
			name:      "invalid json",
			format:    JSON,
			input:     `hello`,
			expectErr: true,
		},
		{
			name:      "truncated json",
			format:    JSON,
			input:     `{"app_name": "BRRCS"`,
			expectErr: true,
		},
		{
			name:      "json top level sequence",
			format:    JSON,
			input:     `[1, 2, 3]`,
			expectErr: true,
		},
		{
			name:      "json top level null",
			format:    JSON,
			input:     `null`,
			expectErr: true,
		},
		{
			name:   "yaml document",
			format: YAML,
			input:  "app_name: BRRCS\ngui:\n  width: 1024\n",
			expected: Map{
				"app_name": "BRRCS",
				"gui":      map[string]any{"width": 1024},
			},
		},
		{
			name:      "yaml scalar",
			format:    YAML,
			input:     "hello",
			expectErr: true,
		},
		{
			name:      "empty yaml",
			format:    YAML,
			input:     "",
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := Decode(tc.format, []byte(tc.input))
			if tc.expectErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.expected, m)
		})
	}
}

func TestEncode(t *testing.T) {
	t.Run("json is indented with four spaces", func(t *testing.T) {
		b, err := Encode(JSON, Map{
			"output": map[string]any{"dir": "a&b"},
		})
		require.NoError(t, err)
		require.Equal(t, "{\n    \"output\": {\n        \"dir\": \"a&b\"\n    }\n}\n", string(b))
	})

	for _, f := range []Format{JSON, YAML} {
		t.Run(f.String()+" decodes back to the same document", func(t *testing.T) {
			m := Map{
				"app_name": "BRRCS",
				"version":  "1.0.0",
				"gui": map[string]any{
					"title": "Barangay Records",
					"dark":  true,
				},
				"templates": map[string]any{
					"names": []any{"clearance", "certificate"},
				},
				"logging": nil,
			}

			b, err := Encode(f, m)
			require.NoError(t, err)

			decoded, err := Decode(f, b)
			require.NoError(t, err)
			require.Equal(t, m, decoded)
		})
	}
}
