// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package brrcs

import (
	"context"
	"errors"
	"fmt"

	"github.com/z5labs/brrcs/config"
	"github.com/z5labs/brrcs/internal/try"
	"github.com/z5labs/brrcs/lifecycle"
)

// App represents the entry point for user specific code.
type App interface {
	Run(context.Context) error
}

// AppFunc is a functional implementation of the App interface.
type AppFunc func(context.Context) error

// Run implements the App interface.
func (f AppFunc) Run(ctx context.Context) error {
	return f(ctx)
}

// AppBuilder builds an App from the loaded configuration.
type AppBuilder[T any] interface {
	Build(ctx context.Context, store *config.Store, cfg T) (App, error)
}

// AppBuilderFunc is a functional implementation of
// the AppBuilder interface.
type AppBuilderFunc[T any] func(context.Context, *config.Store, T) (App, error)

// Build implements the AppBuilder interface.
func (f AppBuilderFunc[T]) Build(ctx context.Context, store *config.Store, cfg T) (App, error) {
	return f(ctx, store, cfg)
}

// Run loads and validates the store, decodes it into T, builds the
// [App] and runs it. A panic raised while building or running the App
// is returned as an error.
//
// The context given to the builder carries a [lifecycle.Context]. Hooks
// registered on it with OnPostRun are run once the App returns.
func Run[T any](ctx context.Context, store *config.Store, builder AppBuilder[T]) (err error) {
	defer try.Recover(&err)

	lc := &lifecycle.Context{}
	ctx = lifecycle.NewContext(ctx, lc)

	_, err = store.Load(ctx)
	if err != nil {
		return ConfigLoadError{Cause: err}
	}

	err = store.Validate()
	if err != nil {
		return ConfigInvalidError{Cause: err}
	}

	var cfg T
	err = store.Unmarshal(&cfg)
	if err != nil {
		return ConfigUnmarshalError{Cause: err}
	}

	app, err := builder.Build(ctx, store, cfg)
	if err != nil {
		return AppBuildError{Cause: err}
	}

	defer postRun(ctx, lc, &err)

	err = app.Run(ctx)
	if err != nil {
		return AppRunError{Cause: err}
	}
	return nil
}

func postRun(ctx context.Context, lc *lifecycle.Context, err *error) {
	hookErr := lc.PostRun().Run(ctx)
	if hookErr == nil {
		return
	}
	*err = errors.Join(*err, PostRunError{Cause: hookErr})
}

// ConfigLoadError
type ConfigLoadError struct {
	Cause error
}

// Error implements the [builtin.error] interface.
func (e ConfigLoadError) Error() string {
	return fmt.Sprintf("failed to load config: %s", e.Cause)
}

// Unwrap implements the implicit interface used by [errors.Is] and [errors.As].
func (e ConfigLoadError) Unwrap() error {
	return e.Cause
}

// ConfigInvalidError
type ConfigInvalidError struct {
	Cause error
}

// Error implements the [builtin.error] interface.
func (e ConfigInvalidError) Error() string {
	return fmt.Sprintf("invalid config: %s", e.Cause)
}

// Unwrap implements the implicit interface used by [errors.Is] and [errors.As].
func (e ConfigInvalidError) Unwrap() error {
	return e.Cause
}

// ConfigUnmarshalError
type ConfigUnmarshalError struct {
	Cause error
}

// Error implements the [builtin.error] interface.
func (e ConfigUnmarshalError) Error() string {
	return fmt.Sprintf("failed to unmarshal config into custom type: %s", e.Cause)
}

// Unwrap implements the implicit interface used by [errors.Is] and [errors.As].
func (e ConfigUnmarshalError) Unwrap() error {
	return e.Cause
}

// AppBuildError
type AppBuildError struct {
	Cause error
}

// Error implements the [builtin.error] interface.
func (e AppBuildError) Error() string {
	return fmt.Sprintf("failed to build app: %s", e.Cause)
}

// Unwrap implements the implicit interface used by [errors.Is] and [errors.As].
func (e AppBuildError) Unwrap() error {
	return e.Cause
}

// AppRunError
type AppRunError struct {
	Cause error
}

// Error implements the [builtin.error] interface.
func (e AppRunError) Error() string {
	return fmt.Sprintf("failed to run app: %s", e.Cause)
}

// Unwrap implements the implicit interface used by [errors.Is] and [errors.As].
func (e AppRunError) Unwrap() error {
	return e.Cause
}

// PostRunError
type PostRunError struct {
	Cause error
}

// Error implements the [builtin.error] interface.
func (e PostRunError) Error() string {
	return fmt.Sprintf("post run hook failed: %s", e.Cause)
}

// Unwrap implements the implicit interface used by [errors.Is] and [errors.As].
func (e PostRunError) Unwrap() error {
	return e.Cause
}
