// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

import (
	"log/slog"

	"github.com/spf13/afero"
)

// Option configures a [Store].
type Option func(*Store)

// Path fixes the location of the configuration file. Without it the
// Store uses [DefaultPath].
func Path(path string) Option {
	return func(s *Store) {
		s.path = path
	}
}

// FileSystem replaces the operating system file system the Store reads
// from and writes to.
func FileSystem(fs afero.Fs) Option {
	return func(s *Store) {
		s.fs = fs
	}
}

// LogHandler sets the slog.Handler the Store reports failures through.
func LogHandler(h slog.Handler) Option {
	return func(s *Store) {
		s.log = slog.New(h)
	}
}

// OnConflict sets how [Store.Set] treats non-mapping values found
// part way along a dotted path. The default is [FailOnConflict].
func OnConflict(p ConflictPolicy) Option {
	return func(s *Store) {
		s.policy = p
	}
}

// RequiredKeys replaces the top-level keys checked by [Store.Validate].
func RequiredKeys(keys ...string) Option {
	return func(s *Store) {
		s.required = keys
	}
}
