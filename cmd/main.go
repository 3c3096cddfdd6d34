// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package main is the entry point for the schemalint CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/dacolabs/schemalint/cmd/internal"
	"github.com/dacolabs/schemalint/internal/commands"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := internal.Run(ctx, os.Getenv)
	stop()
	if err != nil && !commands.IsReported(err) {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
	}
	os.Exit(commands.ExitCode(err))
}
