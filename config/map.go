// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

import (
	"fmt"
	"strings"

	"github.com/z5labs/brrcs/config/key"
)

// ConflictPolicy decides what happens when a dotted path being set
// passes through an existing value which is not a mapping.
type ConflictPolicy int

const (
	// FailOnConflict rejects the write and leaves the existing value in place.
	FailOnConflict ConflictPolicy = iota

	// OverwriteOnConflict replaces the existing value with a new mapping.
	OverwriteOnConflict
)

// String implements the [fmt.Stringer] interface.
func (p ConflictPolicy) String() string {
	switch p {
	case OverwriteOnConflict:
		return "overwrite"
	default:
		return "error"
	}
}

// ParseConflictPolicy is the inverse of [ConflictPolicy.String].
func ParseConflictPolicy(s string) (ConflictPolicy, error) {
	switch strings.ToLower(s) {
	case "error":
		return FailOnConflict, nil
	case "overwrite":
		return OverwriteOnConflict, nil
	default:
		return FailOnConflict, fmt.Errorf("unknown conflict policy: %q", s)
	}
}

// Map is the in-memory configuration document.
type Map map[string]any

// Lookup descends into m one segment of k at a time. It reports false if k
// is empty, a segment is absent or an intermediate value is not a mapping.
func (m Map) Lookup(k key.Keyer) (any, bool) {
	chain := key.Flatten(k)
	if len(chain) == 0 {
		return nil, false
	}

	var cur any = map[string]any(m)
	for _, seg := range chain {
		node, ok := asMap(cur)
		if !ok {
			return nil, false
		}
		cur, ok = node[seg.Key()]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

// Set assigns v at k, creating intermediate mappings as needed.
// It refuses to replace intermediate values which are not mappings.
func (m Map) Set(k key.Keyer, v any) error {
	return m.set(key.Flatten(k), v, FailOnConflict)
}

func (m Map) set(chain key.Chain, v any, policy ConflictPolicy) error {
	if len(chain) == 0 {
		return EmptyKeyChainError{Value: v}
	}

	node := map[string]any(m)
	last := len(chain) - 1
	for i, seg := range chain[:last] {
		name := seg.Key()

		old, ok := node[name]
		if !ok {
			sub := make(map[string]any)
			node[name] = sub
			node = sub
			continue
		}

		sub, ok := asMap(old)
		if !ok {
			if policy != OverwriteOnConflict {
				return UnexpectedKeyValueTypeError{
					Key:          chain[:i+1].Key(),
					ExpectedType: "map[string]any",
				}
			}
			sub = make(map[string]any)
			node[name] = sub
		}
		node = sub
	}

	node[chain[last].Key()] = v
	return nil
}

func asMap(v any) (map[string]any, bool) {
	switch x := v.(type) {
	case map[string]any:
		return x, x != nil
	case Map:
		return x, x != nil
	default:
		return nil, false
	}
}
