// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

import (
	"fmt"
	"strings"
)

// NotFoundError is returned by [Store.Load] when the configuration file does not exist.
type NotFoundError struct {
	Path  string
	Cause error
}

// Error implements the [builtin.error] interface.
func (e NotFoundError) Error() string {
	return fmt.Sprintf("configuration file not found: %s", e.Path)
}

// Unwrap implements the implicit interface used by [errors.Is] and [errors.As].
func (e NotFoundError) Unwrap() error {
	return e.Cause
}

// MalformedDataError is returned by [Store.Load] when the configuration
// file can not be parsed or its top level is not a mapping.
type MalformedDataError struct {
	Path  string
	Cause error
}

// Error implements the [builtin.error] interface.
func (e MalformedDataError) Error() string {
	return fmt.Sprintf("invalid configuration file %s: %s", e.Path, e.Cause)
}

// Unwrap implements the implicit interface used by [errors.Is] and [errors.As].
func (e MalformedDataError) Unwrap() error {
	return e.Cause
}

// LoadError covers every other failure while loading the configuration file.
type LoadError struct {
	Path  string
	Cause error
}

// Error implements the [builtin.error] interface.
func (e LoadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("failed to load configuration: %s", e.Cause)
	}
	return fmt.Sprintf("failed to load configuration from %s: %s", e.Path, e.Cause)
}

// Unwrap implements the implicit interface used by [errors.Is] and [errors.As].
func (e LoadError) Unwrap() error {
	return e.Cause
}

// WriteError is returned by [Store.Save] when the document could not be persisted.
// The in-memory document is unaffected.
type WriteError struct {
	Path  string
	Cause error
}

// Error implements the [builtin.error] interface.
func (e WriteError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("failed to save configuration: %s", e.Cause)
	}
	return fmt.Sprintf("failed to save configuration to %s: %s", e.Path, e.Cause)
}

// Unwrap implements the implicit interface used by [errors.Is] and [errors.As].
func (e WriteError) Unwrap() error {
	return e.Cause
}

// EmptyKeyChainError
type EmptyKeyChainError struct {
	Value any
}

// Error implements the [builtin.error] interface.
func (e EmptyKeyChainError) Error() string {
	return fmt.Sprintf("attempted to set value to an empty key chain: %v", e.Value)
}

// UnexpectedKeyValueTypeError represents the situation when a dotted path
// descends through a value which is not a mapping.
type UnexpectedKeyValueTypeError struct {
	Key          string
	ExpectedType string
}

// Error implements the [builtin.error] interface.
func (e UnexpectedKeyValueTypeError) Error() string {
	return fmt.Sprintf("expected key value to be a %s: %s", e.ExpectedType, e.Key)
}

// MissingKeysError is returned by [Store.Validate] and lists every
// required top-level key absent from the document.
type MissingKeysError struct {
	Keys []string
}

// Error implements the [builtin.error] interface.
func (e MissingKeysError) Error() string {
	return fmt.Sprintf("missing required configuration keys: %s", strings.Join(e.Keys, ", "))
}
