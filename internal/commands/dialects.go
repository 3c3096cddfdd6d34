// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dacolabs/schemalint/internal/dialect"
	"github.com/dacolabs/schemalint/internal/prompts"
)

type dialectsOptions struct {
	output string
}

func newDialectsCmd() *cobra.Command {
	opts := &dialectsOptions{}

	cmd := &cobra.Command{
		Use:   "dialects",
		Short: "List schema dialects",
		Long:  `List the known schema dialects with their type and mode counts. Planned dialects are listed but cannot be used for validation yet.`,
		Example: `  # List dialects in table format
  schemalint dialects

  # List dialects as JSON
  schemalint dialects -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDialects(cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "table", "Output format (table, json, yaml)")

	return cmd
}

func runDialects(w io.Writer, opts *dialectsOptions) error {
	registry := dialect.Builtin(dialect.Options{})
	infos := make([]dialect.Info, 0, len(registry))
	for _, name := range registry.Available() {
		infos = append(infos, registry[name].Info())
	}

	switch opts.output {
	case "json":
		return printJSON(w, infos)
	case "yaml":
		return printYAML(w, infos)
	case "table":
		return printDialectsTable(w, infos)
	default:
		return fmt.Errorf("%w: unknown output format %q", ErrUsage, opts.output)
	}
}

func printDialectsTable(w io.Writer, infos []dialect.Info) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "NAME\tSTATUS\tTYPES\tMODES\tREQUIRED")

	for _, info := range infos {
		status := "supported"
		if !info.Supported {
			status = "planned"
		}
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%s\n",
			info.Name, status, len(info.Types), len(info.Modes), strings.Join(info.RequiredAttrs, ", "))
	}

	return tw.Flush()
}

func newDialectsDescribeCmd() *cobra.Command {
	opts := &dialectsOptions{}

	cmd := &cobra.Command{
		Use:   "describe <name>",
		Short: "Show the types, modes and attributes of a dialect",
		Example: `  # Describe BigQuery
  schemalint dialects describe bigquery

  # As YAML
  schemalint dialects describe hive -o yaml`,
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDialectsDescribe(cmd.OutOrStdout(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "text", "Output format (text, json, yaml)")

	return cmd
}

func runDialectsDescribe(w io.Writer, name string, opts *dialectsOptions) error {
	registry := dialect.Builtin(dialect.Options{})
	d, ok := registry[name]
	if !ok {
		return fmt.Errorf("%w '%s'. Known dialects: %s", dialect.ErrUnknownDialect, name, strings.Join(registry.Available(), ", "))
	}
	info := d.Info()

	switch opts.output {
	case "json":
		return printJSON(w, info)
	case "yaml":
		return printYAML(w, info)
	case "text":
	default:
		return fmt.Errorf("%w: unknown output format %q", ErrUsage, opts.output)
	}

	status := "supported"
	if !info.Supported {
		status = "planned (not available for validation)"
	}
	prompts.PrintResult(w, []prompts.ResultField{
		{Label: "Name", Value: info.Name},
		{Label: "Status", Value: status},
		{Label: "Required attributes", Value: strings.Join(info.RequiredAttrs, ", ")},
		{Label: "Optional attributes", Value: strings.Join(info.OptionalAttrs, ", ")},
		{Label: "Modes", Value: strings.Join(info.Modes, ", ")},
		{Label: "Types", Value: strings.Join(info.Types, ", ")},
	}, "")
	return nil
}

func printJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func printYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	defer func() { _ = enc.Close() }()
	return enc.Encode(v)
}

// exactArgs is cobra.ExactArgs reporting a usage error.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return fmt.Errorf("%w: %v", ErrUsage, err)
		}
		return nil
	}
}
