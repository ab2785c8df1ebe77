// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package slogfield

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/z5labs/brrcs/config/key"

	"github.com/stretchr/testify/require"
)

func TestJsonHandler(t *testing.T) {
	testCases := []struct {
		name     string
		attr     slog.Attr
		field    string
		expected any
	}{
		{
			name:     "file",
			attr:     File("/opt/brrcs/config.json"),
			field:    "config_file",
			expected: "/opt/brrcs/config.json",
		},
		{
			name:     "key",
			attr:     Key(key.Chain{key.Name("gui"), key.Name("theme")}),
			field:    "config_key",
			expected: "gui.theme",
		},
		{
			name:     "error",
			attr:     Error(errors.New("boom")),
			field:    "error",
			expected: "boom",
		},
		{
			name:     "strings",
			attr:     Strings("missing", []string{"gui", "output"}),
			field:    "missing",
			expected: []any{"gui", "output"},
		},
		{
			name:     "int",
			attr:     Int("size", 3),
			field:    "size",
			expected: float64(3),
		},
		{
			name:     "bool",
			attr:     Bool("loaded", true),
			field:    "loaded",
			expected: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := slog.New(slog.NewJSONHandler(&buf, nil))
			log.Info("test", tc.attr)

			var record map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
			require.Equal(t, tc.expected, record[tc.field])
		})
	}
}
