// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/z5labs/brrcs/config"
	"github.com/z5labs/brrcs/config/key"
	"github.com/z5labs/brrcs/internal/slogfield"
	"github.com/z5labs/brrcs/settings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// KeyNotFoundError is returned by get when nothing is stored at the path.
type KeyNotFoundError struct {
	Path string
}

// Error implements the [builtin.error] interface.
func (e KeyNotFoundError) Error() string {
	return fmt.Sprintf("no configuration value at: %q", e.Path)
}

// FileExistsError is returned by init when it would replace an
// existing configuration file.
type FileExistsError struct {
	Path string
}

// Error implements the [builtin.error] interface.
func (e FileExistsError) Error() string {
	return fmt.Sprintf("configuration file already exists: %s (use --force to replace it)", e.Path)
}

func (a *app) getCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <path>",
		Short: "Print the value stored at a dotted path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, span := a.startSpan(cmd)
			defer span.End()

			_, err := a.store.Load(ctx)
			if err != nil {
				return err
			}

			v, ok := a.store.Document().Lookup(key.Parse(args[0]))
			if !ok {
				return KeyNotFoundError{Path: args[0]}
			}
			return printValue(cmd.OutOrStdout(), v)
		},
	}
}

func (a *app) setCommand() *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "set <path> <value>",
		Short: "Store a value at a dotted path and save the file",
		Long: `Store a value at a dotted path and save the file.

The value is parsed as JSON when it is valid JSON, so numbers, booleans,
arrays and objects keep their type. Anything else is stored as a string.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, span := a.startSpan(cmd)
			defer span.End()

			_, err := a.store.Load(ctx)
			if err != nil {
				return err
			}

			err = a.store.Set(args[0], parseValue(args[1], raw))
			if err != nil {
				return err
			}

			err = a.store.Save(ctx)
			if err != nil {
				a.log.WarnContext(
					ctx,
					"configuration was changed but could not be saved",
					slogfield.Key(key.Parse(args[0])),
					slogfield.Error(err),
				)
				return err
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&raw, "string", false, "store the value as a string without parsing it as JSON")
	return cmd
}

func (a *app) validateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check that every required top-level key is present",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, span := a.startSpan(cmd)
			defer span.End()

			_, err := a.store.Load(ctx)
			if err != nil {
				return err
			}

			err = a.store.Validate()
			if err != nil {
				return err
			}

			path, _ := a.store.Path()
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s is valid\n", path)
			return err
		},
	}
}

func (a *app) showCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the whole configuration document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := parseOutputFormat(output)
			if err != nil {
				return err
			}

			ctx, span := a.startSpan(cmd)
			defer span.End()

			_, err = a.store.Load(ctx)
			if err != nil {
				return err
			}

			b, err := config.Encode(format, a.store.Document())
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(b)
			return err
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "json", "output format: json or yaml")
	return cmd
}

func (a *app) initCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, span := a.startSpan(cmd)
			defer span.End()

			path, err := a.store.Path()
			if err != nil {
				return err
			}

			exists, err := afero.Exists(a.opts.fs, path)
			if err != nil {
				return err
			}
			if exists && !force {
				return FileExistsError{Path: path}
			}

			err = a.opts.fs.MkdirAll(filepath.Dir(path), 0o755)
			if err != nil {
				return err
			}

			for k, v := range settings.Default() {
				err = a.store.Set(k, v)
				if err != nil {
					return err
				}
			}

			err = a.store.Save(ctx)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "wrote default configuration to %s\n", path)
			return err
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "replace an existing configuration file")
	return cmd
}

func parseValue(s string, raw bool) any {
	if raw {
		return s
	}

	var v any
	err := json.Unmarshal([]byte(s), &v)
	if err != nil {
		return s
	}
	return v
}

func parseOutputFormat(s string) (config.Format, error) {
	switch strings.ToLower(s) {
	case "json":
		return config.JSON, nil
	case "yaml", "yml":
		return config.YAML, nil
	default:
		return config.JSON, fmt.Errorf("unknown output format: %q", s)
	}
}

// printValue prints strings as is and everything else as indented JSON.
func printValue(w io.Writer, v any) error {
	if s, ok := v.(string); ok {
		_, err := fmt.Fprintln(w, s)
		return err
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	err := enc.Encode(v)
	if err != nil {
		return err
	}
	_, err = buf.WriteTo(w)
	return err
}
