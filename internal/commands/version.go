// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/dacolabs/schemalint/internal/version"
)

type versionOptions struct {
	short  bool
	output string
}

func newVersionCmd() *cobra.Command {
	opts := &versionOptions{}

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show the schemalint version",
		Example: `  # Show full build information
  schemalint version

  # Only the version number
  schemalint version --short`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVersion(cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.short, "short", "s", false, "Print only the version number")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "text", "Output format (text, json)")

	return cmd
}

func runVersion(w io.Writer, opts *versionOptions) error {
	switch {
	case opts.short:
		_, err := fmt.Fprintln(w, version.Short())
		return err
	case opts.output == "json":
		return printJSON(w, version.Current())
	case opts.output == "text":
		_, err := fmt.Fprintln(w, version.Info())
		return err
	default:
		return fmt.Errorf("%w: unknown output format %q", ErrUsage, opts.output)
	}
}
