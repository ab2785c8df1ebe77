// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package config manages the records office configuration document.
//
// The document is a tree of mappings whose leaves are strings, numbers,
// booleans, nulls and sequences. It lives in a single file next to the
// running executable, conventionally named config.json, and is addressed
// with dotted paths such as "database.path".
//
// # Lifecycle
//
// A [Store] starts empty. The application calls [Store.Load] once at startup;
// a failed load is meant to abort startup. After that, collaborators read
// settings with [Store.Get] or [Lookup], adjust them with [Store.Set] and
// optionally persist them with [Store.Save]:
//
//	store := config.New()
//	if _, err := store.Load(ctx); err != nil {
//	    return err
//	}
//	if err := store.Validate(); err != nil {
//	    return err
//	}
//	dir := config.Lookup(store, "output.dir", "output")
//
// # Errors
//
// Load reports [NotFoundError], [MalformedDataError] or [LoadError]. Get never
// fails; an absent path yields the caller supplied default. Set and Save log
// their failures and return them so the application can warn and carry on
// with the in-memory values.
//
// # Concurrency
//
// A Store performs no locking. Callers sharing one between goroutines must
// provide their own mutual exclusion.
package config
