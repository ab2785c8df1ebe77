// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package lifecycle lets an application register work to run once
// [brrcs.Run] has finished running it.
package lifecycle

import (
	"context"
	"errors"

	"github.com/z5labs/brrcs/config"
)

// Hook is an action run relative to the application's execution.
type Hook interface {
	Run(context.Context) error
}

// HookFunc is a func variant of the [Hook] interface.
type HookFunc func(context.Context) error

// Run implements the [Hook] interface.
func (f HookFunc) Run(ctx context.Context) error {
	return f(ctx)
}

type hooks []Hook

// Run calls every hook, even after one fails, and joins their errors.
func (hs hooks) Run(ctx context.Context) error {
	var errs []error
	for _, h := range hs {
		err := h.Run(ctx)
		if err != nil {
			errs = append(errs, err)
		}
	}
	switch len(errs) {
	case 0:
		return nil
	case 1:
		return errs[0]
	default:
		return errors.Join(errs...)
	}
}

// MultiHook runs the given hooks in order.
func MultiHook(hs ...Hook) Hook {
	return hooks(hs)
}

// SaveConfig returns a Hook which writes the store back to its file,
// keeping any settings changed while the application ran.
func SaveConfig(store *config.Store) Hook {
	return HookFunc(store.Save)
}

// Context collects the hooks registered while the application is built.
type Context struct {
	postRun hooks
}

// OnPostRun registers h to run after the application returns,
// whether it failed or not.
func (c *Context) OnPostRun(h Hook) {
	c.postRun = append(c.postRun, h)
}

// PostRun returns every hook registered with [Context.OnPostRun].
func (c *Context) PostRun() Hook {
	return c.postRun
}

type contextKey struct{}

// NewContext returns a copy of parent carrying c.
func NewContext(parent context.Context, c *Context) context.Context {
	return context.WithValue(parent, contextKey{}, c)
}

// FromContext returns the Context carried by ctx, if any.
func FromContext(ctx context.Context) (*Context, bool) {
	c, ok := ctx.Value(contextKey{}).(*Context)
	return c, ok
}
