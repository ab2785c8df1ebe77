// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package key provides types for addressing values in a nested configuration document.
package key

import (
	"strings"
)

// Separator joins the segments of a dotted path.
const Separator = "."

// Keyer is a common interface all value key types must implement.
type Keyer interface {
	Key() string
}

// Name represents a single segment of a dotted path.
type Name string

// Key implements the [Keyer] interface.
func (k Name) Key() string {
	return string(k)
}

// Chain represents nested keys, outermost first.
type Chain []Keyer

// Key implements the [Keyer] interface.
func (k Chain) Key() string {
	ss := make([]string, len(k))
	for i := 0; i < len(k); i++ {
		ss[i] = k[i].Key()
	}
	return strings.Join(ss, Separator)
}

// Parse splits a dotted path like "database.path" into a [Chain].
// The empty path parses to an empty Chain. Empty segments, e.g. "a..b",
// are kept as empty names.
func Parse(path string) Chain {
	if path == "" {
		return Chain{}
	}
	segs := strings.Split(path, Separator)
	chain := make(Chain, len(segs))
	for i, seg := range segs {
		chain[i] = Name(seg)
	}
	return chain
}

// Flatten expands any nested Chains in k into a single Chain of Names.
func Flatten(k Keyer) Chain {
	switch x := k.(type) {
	case Chain:
		var out Chain
		for _, sub := range x {
			out = append(out, Flatten(sub)...)
		}
		return out
	default:
		return Chain{k}
	}
}
