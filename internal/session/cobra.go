// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package session

import (
	"errors"

	"github.com/spf13/cobra"
)

// FromCommand extracts the Context from a cobra.Command's context.
// Returns nil if no Context is stored.
func FromCommand(cmd *cobra.Command) *Context {
	return From(cmd.Context())
}

// RequireFromCommand extracts the Context from a cobra.Command's context,
// returning an error if not found.
func RequireFromCommand(cmd *cobra.Command) (*Context, error) {
	ctx := FromCommand(cmd)
	if ctx == nil {
		return nil, errors.New("project configuration not loaded")
	}
	return ctx, nil
}

// PreRunLoad returns a PersistentPreRunE function that loads the project
// configuration and stores it in the command's context. The file is taken
// from the --config flag when the command has one.
func PreRunLoad(getenv func(string) string) func(cmd *cobra.Command, _ []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		explicit, _ := cmd.Flags().GetString("config")

		ctx, err := Load(cmd.Context(), Locate(explicit, getenv))
		if err != nil {
			return err
		}
		cmd.SetContext(ctx)
		return nil
	}
}
