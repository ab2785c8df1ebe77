// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/z5labs/brrcs/config/key"
	"github.com/z5labs/brrcs/internal/slogfield"
	"github.com/z5labs/brrcs/internal/try"

	"github.com/spf13/afero"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// DefaultFileName is the name of the configuration file looked up next to the executable.
const DefaultFileName = "config.json"

const instrumentationName = "github.com/z5labs/brrcs/config"

// DefaultRequiredKeys returns the top-level keys every records office
// configuration must contain.
func DefaultRequiredKeys() []string {
	return []string{"app_name", "version", "database", "templates", "output", "gui"}
}

// DefaultPath resolves [DefaultFileName] in the directory holding the
// running executable, so the result does not depend on the working directory.
func DefaultPath() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return "", err
	}
	return filepath.Join(filepath.Dir(exe), DefaultFileName), nil
}

// Store holds the configuration document and persists it to a single file.
type Store struct {
	path     string
	fs       afero.Fs
	log      *slog.Logger
	policy   ConflictPolicy
	required []string

	doc    Map
	loaded bool
}

// New returns an empty, unloaded Store.
func New(opts ...Option) *Store {
	s := &Store{
		fs:       afero.NewOsFs(),
		log:      slog.Default(),
		policy:   FailOnConflict,
		required: DefaultRequiredKeys(),
		doc:      make(Map),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the location the Store loads from and saves to.
func (s *Store) Path() (string, error) {
	if s.path != "" {
		return s.path, nil
	}
	return DefaultPath()
}

// Loaded reports whether a Load has ever succeeded.
func (s *Store) Loaded() bool {
	return s.loaded
}

// Document returns the live in-memory document.
func (s *Store) Document() Map {
	return s.doc
}

// Load reads and parses the configuration file, replacing the in-memory
// document. On failure the previous document is kept and the error is
// one of [NotFoundError], [MalformedDataError] or [LoadError].
func (s *Store) Load(ctx context.Context) (_ Map, err error) {
	ctx, span := otel.Tracer(instrumentationName).Start(ctx, "Store.Load")
	defer span.End()
	defer recordError(span, &err)

	path, err := s.Path()
	if err != nil {
		s.log.ErrorContext(ctx, "failed to resolve configuration file location", slogfield.Error(err))
		return nil, LoadError{Cause: err}
	}

	b, err := s.readFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		s.log.ErrorContext(ctx, "configuration file not found", slogfield.File(path))
		return nil, NotFoundError{Path: path, Cause: err}
	}
	if err != nil {
		s.log.ErrorContext(ctx, "failed to read configuration file", slogfield.File(path), slogfield.Error(err))
		return nil, LoadError{Path: path, Cause: err}
	}

	doc, err := Decode(FormatOf(path), b)
	if err != nil {
		s.log.ErrorContext(ctx, "invalid configuration file", slogfield.File(path), slogfield.Error(err))
		return nil, MalformedDataError{Path: path, Cause: err}
	}

	s.doc = doc
	s.loaded = true
	s.log.InfoContext(ctx, "configuration loaded", slogfield.File(path))
	return s.doc, nil
}

func (s *Store) readFile(path string) (_ []byte, err error) {
	f, err := s.fs.Open(path)
	if err != nil {
		return nil, err
	}
	defer try.Close(&err, f)

	return io.ReadAll(f)
}

// Get returns the value at the dotted path, or def if the path is empty,
// absent or passes through a value which is not a mapping.
func (s *Store) Get(path string, def any) any {
	v, ok := s.doc.Lookup(key.Parse(path))
	if !ok {
		return def
	}
	return v
}

// Lookup is a typed [Store.Get]. It also returns def when the value found
// is not a T. JSON numbers are float64.
func Lookup[T any](s *Store, path string, def T) T {
	v, ok := s.Get(path, def).(T)
	if !ok {
		return def
	}
	return v
}

// Set assigns v at the dotted path, creating intermediate mappings as
// needed. Values which are not mappings found part way along the path
// are handled according to the Store's [ConflictPolicy].
func (s *Store) Set(path string, v any) error {
	k := key.Parse(path)
	err := s.doc.set(k, v, s.policy)
	if err != nil {
		s.log.Error(
			"failed to set configuration value",
			slogfield.Key(k),
			slogfield.String("on_conflict", s.policy.String()),
			slogfield.Error(err),
		)
		return err
	}
	return nil
}

// Save writes the in-memory document to the configuration file. The
// document is written to a temporary file in the same directory which
// then replaces the target, so a crash never leaves a partial file.
// Failures are returned as [WriteError].
func (s *Store) Save(ctx context.Context) (err error) {
	ctx, span := otel.Tracer(instrumentationName).Start(ctx, "Store.Save")
	defer span.End()
	defer recordError(span, &err)

	path, err := s.Path()
	if err != nil {
		s.log.ErrorContext(ctx, "failed to resolve configuration file location", slogfield.Error(err))
		return WriteError{Cause: err}
	}

	b, err := Encode(FormatOf(path), s.doc)
	if err != nil {
		s.log.ErrorContext(ctx, "failed to encode configuration", slogfield.File(path), slogfield.Error(err))
		return WriteError{Path: path, Cause: err}
	}

	err = writeFileAtomic(s.fs, path, b)
	if err != nil {
		s.log.ErrorContext(ctx, "failed to save configuration", slogfield.File(path), slogfield.Error(err))
		return WriteError{Path: path, Cause: err}
	}

	s.log.InfoContext(ctx, "configuration saved", slogfield.File(path))
	return nil
}

func writeFileAtomic(fsys afero.Fs, path string, b []byte) (err error) {
	perm := fs.FileMode(0o644)
	if fi, serr := fsys.Stat(path); serr == nil {
		perm = fi.Mode().Perm()
	}

	f, err := afero.TempFile(fsys, filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			_ = fsys.Remove(tmp)
		}
	}()

	_, err = f.Write(b)
	if err == nil {
		err = f.Sync()
	}
	try.Close(&err, f)
	if err != nil {
		return err
	}

	err = fsys.Chmod(tmp, perm)
	if err != nil {
		return err
	}
	return fsys.Rename(tmp, path)
}

// Validate checks that every required top-level key is present. Only
// presence is checked, not the type or shape of the values.
func (s *Store) Validate() error {
	var missing []string
	for _, k := range s.required {
		if _, ok := s.doc[k]; !ok {
			missing = append(missing, k)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	s.log.Error("missing required configuration keys", slogfield.Strings("missing", missing))
	return MissingKeysError{Keys: missing}
}

// Valid reports whether [Store.Validate] succeeds.
func (s *Store) Valid() bool {
	return s.Validate() == nil
}

// Unmarshal decodes the whole document into v, matching struct fields by
// their `config` tag.
func (s *Store) Unmarshal(v any) error {
	return Unmarshal(s.doc, v)
}

// UnmarshalKey decodes the value at the dotted path into v. If the path
// is absent v is left untouched.
func (s *Store) UnmarshalKey(path string, v any) error {
	val, ok := s.doc.Lookup(key.Parse(path))
	if !ok {
		return nil
	}
	return Unmarshal(val, v)
}

func recordError(span trace.Span, err *error) {
	if *err == nil {
		return
	}
	span.RecordError(*err)
	span.SetStatus(codes.Error, (*err).Error())
}
