// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// Format identifies how the configuration document is serialized on disk.
type Format int

const (
	// JSON is the default format. Comments and trailing commas are
	// accepted when reading but are not preserved by Save.
	JSON Format = iota

	// YAML is selected for files ending in .yaml or .yml.
	YAML
)

// String implements the [fmt.Stringer] interface.
func (f Format) String() string {
	switch f {
	case YAML:
		return "yaml"
	default:
		return "json"
	}
}

// FormatOf picks the Format for the given file name based on its extension.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML
	default:
		return JSON
	}
}

var errNotMapping = errors.New("top level of the configuration document must be a mapping")

// Decode parses b into a document.
func Decode(f Format, b []byte) (Map, error) {
	var v any
	switch f {
	case YAML:
		err := yaml.Unmarshal(b, &v)
		if err != nil {
			return nil, err
		}
	default:
		err := json.Unmarshal(jsonc.ToJSON(b), &v)
		if err != nil {
			return nil, err
		}
	}

	m, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: got %T", errNotMapping, v)
	}
	return Map(m), nil
}

// Encode serializes m. JSON output is indented with four spaces and
// terminated by a newline.
func Encode(f Format, m Map) ([]byte, error) {
	switch f {
	case YAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(4)
		err := enc.Encode(map[string]any(m))
		if err != nil {
			return nil, err
		}
		err = enc.Close()
		if err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "    ")
		err := enc.Encode(map[string]any(m))
		if err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}
}
