// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package brrcs starts the records office application around its configuration.
//
// Startup follows a fixed order: the [config.Store] is loaded, its required
// keys are validated, the document is decoded into the application's typed
// configuration and, finally, the application is built with the store
// injected and run. Any failure before the application runs aborts startup:
//
//	store := config.New()
//	err := brrcs.Run(ctx, store, brrcs.AppBuilderFunc[settings.Config](
//	    func(ctx context.Context, store *config.Store, cfg settings.Config) (brrcs.App, error) {
//	        return newMainWindow(store, cfg), nil
//	    },
//	))
//
// The store is passed down explicitly rather than kept in a package level
// variable, so every collaborator that reads or adjusts settings receives
// the same instance from the caller that loaded it.
package brrcs
