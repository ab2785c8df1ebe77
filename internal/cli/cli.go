// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package cli implements the brrcs-config command line.
package cli

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/z5labs/brrcs/config"
	"github.com/z5labs/brrcs/internal/logging"
	"github.com/z5labs/brrcs/internal/telemetry"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const (
	serviceName         = "brrcs-config"
	envPrefix           = "BRRCS"
	instrumentationName = "github.com/z5labs/brrcs/internal/cli"
)

// Option configures the command line.
type Option func(*options)

type options struct {
	fs      afero.Fs
	stdout  io.Writer
	stderr  io.Writer
	version string
}

// FileSystem sets the file system the configuration file lives on.
func FileSystem(fs afero.Fs) Option {
	return func(o *options) {
		o.fs = fs
	}
}

// Output sets where command results are printed.
func Output(w io.Writer) Option {
	return func(o *options) {
		o.stdout = w
	}
}

// ErrOutput sets where logs, traces and error messages are printed.
func ErrOutput(w io.Writer) Option {
	return func(o *options) {
		o.stderr = w
	}
}

// Version is reported by --version and attached to exported traces.
func Version(v string) Option {
	return func(o *options) {
		o.version = v
	}
}

// Execute runs the command line described by args. Any tracer provider
// installed by --trace is flushed before Execute returns.
func Execute(ctx context.Context, args []string, opts ...Option) (err error) {
	a := newApp(opts...)
	defer func() {
		if a.shutdown == nil {
			return
		}
		serr := a.shutdown(context.WithoutCancel(ctx))
		if serr != nil {
			err = errors.Join(err, serr)
		}
	}()

	cmd := a.command()
	cmd.SetArgs(args)
	return cmd.ExecuteContext(ctx)
}

type app struct {
	opts options
	v    *viper.Viper

	log      *slog.Logger
	store    *config.Store
	shutdown telemetry.ShutdownFunc
}

func newApp(opts ...Option) *app {
	o := options{
		fs:      afero.NewOsFs(),
		stdout:  os.Stdout,
		stderr:  os.Stderr,
		version: "dev",
	}
	for _, opt := range opts {
		opt(&o)
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return &app{
		opts: o,
		v:    v,
	}
}

func (a *app) command() *cobra.Command {
	cmd := &cobra.Command{
		Use:               serviceName,
		Short:             "Inspect and edit the BRRCS configuration file",
		Version:           a.opts.version,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}
	cmd.SetOut(a.opts.stdout)
	cmd.SetErr(a.opts.stderr)

	flags := cmd.PersistentFlags()
	flags.String("config", "", "configuration file (defaults to config.json next to the executable)")
	flags.String("log-level", "warn", "minimum level logged: debug, info, warn or error")
	flags.String("log-format", string(logging.Text), "log format: text or json")
	flags.String("on-conflict", config.FailOnConflict.String(), "how set treats non-mapping values along a path: error or overwrite")
	flags.Bool("trace", false, "print traces of configuration file access")

	// only fails for a nil flag set
	_ = a.v.BindPFlags(flags)

	cmd.AddCommand(
		a.getCommand(),
		a.setCommand(),
		a.validateCommand(),
		a.showCommand(),
		a.initCommand(),
	)
	return cmd
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	lvl, err := logging.ParseLevel(a.v.GetString("log-level"))
	if err != nil {
		return err
	}
	format, err := logging.ParseFormat(a.v.GetString("log-format"))
	if err != nil {
		return err
	}
	policy, err := config.ParseConflictPolicy(a.v.GetString("on-conflict"))
	if err != nil {
		return err
	}

	h := logging.NewHandler(cmd.ErrOrStderr(), lvl, format)
	a.log = slog.New(h)

	if a.v.GetBool("trace") {
		shutdown, err := telemetry.Local(cmd.ErrOrStderr(), serviceName, a.opts.version)
		if err != nil {
			return err
		}
		a.shutdown = shutdown
	}

	storeOpts := []config.Option{
		config.FileSystem(a.opts.fs),
		config.LogHandler(h),
		config.OnConflict(policy),
	}
	if path := a.v.GetString("config"); path != "" {
		storeOpts = append(storeOpts, config.Path(path))
	}
	a.store = config.New(storeOpts...)
	return nil
}

func (a *app) startSpan(cmd *cobra.Command) (context.Context, trace.Span) {
	return otel.Tracer(instrumentationName).Start(cmd.Context(), cmd.Name())
}
