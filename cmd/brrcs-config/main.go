// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Command brrcs-config inspects and edits the BRRCS configuration file.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/z5labs/brrcs/internal/cli"
)

// set at build time with -ldflags "-X main.version=..."
var version = "dev"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)

	err := cli.Execute(ctx, os.Args[1:], cli.Version(version))
	cancel()
	if err != nil {
		os.Exit(1)
	}
}
