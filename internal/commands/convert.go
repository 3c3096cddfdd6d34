// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dacolabs/schemalint/internal/naming"
	"github.com/dacolabs/schemalint/internal/session"
)

type convertOptions struct {
	caseName string
	acronyms string
	all      bool
}

func newConvertCmd() *cobra.Command {
	opts := &convertOptions{}

	cmd := &cobra.Command{
		Use:   "convert <identifier>...",
		Short: "Preview how identifiers are renamed",
		Long: `Show how identifiers are split into words and rendered in a naming
convention, exactly as fix mode would rename them. Without --case the
convention from the config file is used.`,
		Example: `  # Convert to the configured convention
  schemalint convert CustomerID emailAddress

  # Convert to kebab-case
  schemalint convert --case kebab HTTPServer

  # Show every convention
  schemalint convert --all user_id`,
		Args: minimumArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := session.RequireFromCommand(cmd)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("case") {
				opts.caseName = sc.Config.Case
			}
			if !cmd.Flags().Changed("acronyms") {
				opts.acronyms = sc.Config.Acronyms
			}
			return runConvert(cmd.OutOrStdout(), args, opts)
		},
	}

	cmd.Flags().StringVar(&opts.caseName, "case", string(naming.Snake), "Target naming convention ("+strings.Join(naming.Names(), ", ")+")")
	cmd.Flags().StringVar(&opts.acronyms, "acronyms", naming.AcronymsSplit, "Acronym handling when splitting names (split or keep)")
	cmd.Flags().BoolVarP(&opts.all, "all", "a", false, "Show the identifier in every convention")

	return cmd
}

func runConvert(w io.Writer, ids []string, opts *convertOptions) error {
	policy, err := naming.ParseAcronymPolicy(opts.acronyms)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	engine := naming.NewEngine(naming.WithAcronymPolicy(policy))

	conventions := naming.Conventions()
	if !opts.all {
		conv, err := naming.ParseConvention(opts.caseName)
		if err != nil {
			return err
		}
		conventions = []naming.Convention{conv}
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	header := []string{"IDENTIFIER", "WORDS"}
	for _, c := range conventions {
		header = append(header, strings.ToUpper(c.String()))
	}
	_, _ = fmt.Fprintln(tw, strings.Join(header, "\t"))

	for _, id := range ids {
		words, err := engine.Tokenize(id)
		if err != nil {
			_ = tw.Flush()
			return err
		}
		row := []string{id, strings.Join(words, " ")}
		for _, c := range conventions {
			out, err := engine.Convert(id, c)
			if err != nil {
				_ = tw.Flush()
				return err
			}
			row = append(row, out)
		}
		_, _ = fmt.Fprintln(tw, strings.Join(row, "\t"))
	}

	return tw.Flush()
}

// minimumArgs is cobra.MinimumNArgs reporting a usage error.
func minimumArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.MinimumNArgs(n)(cmd, args); err != nil {
			return fmt.Errorf("%w: %v", ErrUsage, err)
		}
		return nil
	}
}
