// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package slogfield standardizes the attribute keys used across brrcs logs.
package slogfield

import (
	"log/slog"

	"github.com/z5labs/brrcs/config/key"
)

// Any returns an slog.Attr for the supplied value.
func Any(k string, value any) slog.Attr {
	return slog.Any(k, value)
}

// Bool returns an slog.Attr for a bool.
func Bool(k string, value bool) slog.Attr {
	return slog.Bool(k, value)
}

// Error returns an slog.Attr for a error.
func Error(err error) slog.Attr {
	return slog.Any("error", err)
}

// String returns an slog.Attr for a string.
func String(k, value string) slog.Attr {
	return slog.String(k, value)
}

// Strings returns an slog.Attr for a slice of strings.
func Strings(k string, values []string) slog.Attr {
	return slog.Any(k, values)
}

// Int returns an slog.Attr for a int.
func Int(k string, n int) slog.Attr {
	return slog.Int(k, n)
}

// File returns the slog.Attr for the location of a configuration file.
func File(path string) slog.Attr {
	return slog.String("config_file", path)
}

// Key returns the slog.Attr for a dotted configuration path.
func Key(k key.Keyer) slog.Attr {
	return slog.String("config_key", k.Key())
}
