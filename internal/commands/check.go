// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/dacolabs/schemalint/internal/check"
	"github.com/dacolabs/schemalint/internal/config"
	"github.com/dacolabs/schemalint/internal/dialect"
	"github.com/dacolabs/schemalint/internal/naming"
	"github.com/dacolabs/schemalint/internal/prompts"
	"github.com/dacolabs/schemalint/internal/report"
	"github.com/dacolabs/schemalint/internal/session"
	"github.com/dacolabs/schemalint/internal/validate"
)

type checkOptions struct {
	dialect            string
	caseName           string
	mode               string
	fileType           string
	pathRegex          string
	acronyms           string
	requireDescription bool
	requiredFields     string
	requiredPosition   string
	format             string
	jobs               int
	interactive        bool
}

func newCheckCmd() *cobra.Command {
	opts := &checkOptions{}
	defaults := config.Default()

	cmd := &cobra.Command{
		Use:   "schemalint [paths...]",
		Short: "Validate table schema files against dialect and naming rules",
		Long: `Validate table schema files (BigQuery JSON or YAML schemas) against the
structural rules of a dialect and a field naming convention.

Paths may be files, globs or directories. Directories are scanned recursively
for files with the --file-type extension whose path matches --path-regex.
Without paths the working directory is scanned.

In fix mode field names are rewritten to the convention in place; all other
attributes, their order and formatting are kept.

Exit codes: 0 no violations, 1 violations or failed files, 2 configuration
error or unreadable file.`,
		Example: `  # Lint every JSON schema under the working directory
  schemalint

  # Lint specific files with camelCase field names
  schemalint --case camel schemas/orders.json schemas/customers.json

  # Fix names in place, asking before each file is rewritten
  schemalint --mode fix -i schemas/

  # Only scan YAML schemas below a folder, report as JSON
  schemalint --file-type yaml --path-regex '^warehouse/' --format json

  # Require audit columns at the end of every schema
  schemalint --required-fields insert_date,update_date --required-position end`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := session.RequireFromCommand(cmd)
			if err != nil {
				return err
			}
			return runCheck(cmd, sc, opts, args)
		},
	}

	cmd.Flags().StringVar(&opts.dialect, "dialect", defaults.Dialect, "Schema dialect ("+strings.Join(dialect.Builtin(dialect.Options{}).Available(), ", ")+")")
	cmd.Flags().StringVar(&opts.caseName, "case", defaults.Case, "Field naming convention ("+strings.Join(naming.Names(), ", ")+")")
	cmd.Flags().StringVar(&opts.mode, "mode", defaults.Mode, "Validation mode (lint or fix)")
	cmd.Flags().StringVar(&opts.fileType, "file-type", defaults.FileType, "File extension to scan for in directories")
	cmd.Flags().StringVar(&opts.pathRegex, "path-regex", "", "Only scan files whose path matches this regular expression")
	cmd.Flags().StringVar(&opts.acronyms, "acronyms", defaults.Acronyms, "Acronym handling when splitting names (split or keep)")
	cmd.Flags().BoolVar(&opts.requireDescription, "require-description", false, "Require a non-empty description on every field")
	cmd.Flags().StringVar(&opts.requiredFields, "required-fields", "", "Comma-separated top-level field names every schema must contain")
	cmd.Flags().StringVar(&opts.requiredPosition, "required-position", defaults.RequiredPosition, "Where required fields must appear (any, beginning, end)")
	cmd.Flags().StringVar(&opts.format, "format", defaults.Format, "Report format (text or json)")
	cmd.Flags().IntVarP(&opts.jobs, "jobs", "j", defaults.Jobs, "Number of files checked concurrently")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "Ask before rewriting each file in fix mode")

	return cmd
}

// resolveConfig applies flags that were set explicitly on top of cfg.
func resolveConfig(flags *pflag.FlagSet, cfg config.Config, opts *checkOptions) *config.Config {
	overrides := map[string]func(){
		"dialect":             func() { cfg.Dialect = opts.dialect },
		"case":                func() { cfg.Case = opts.caseName },
		"mode":                func() { cfg.Mode = opts.mode },
		"file-type":           func() { cfg.FileType = opts.fileType },
		"path-regex":          func() { cfg.PathRegex = opts.pathRegex },
		"acronyms":            func() { cfg.Acronyms = opts.acronyms },
		"require-description": func() { cfg.RequireDescription = opts.requireDescription },
		"required-fields":     func() { cfg.RequiredFields = validate.ParseNames(opts.requiredFields) },
		"required-position":   func() { cfg.RequiredPosition = opts.requiredPosition },
		"format":              func() { cfg.Format = opts.format },
		"jobs":                func() { cfg.Jobs = opts.jobs },
	}
	flags.Visit(func(f *pflag.Flag) {
		if apply, ok := overrides[f.Name]; ok {
			apply()
		}
	})
	return &cfg
}

// checkSetup is everything a run needs, built from a validated config.
type checkSetup struct {
	validator *validate.Validator
	mode      validate.Mode
	filter    check.Filter
	format    report.Format
	jobs      int
}

func newCheckSetup(cfg *config.Config) (*checkSetup, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	policy, err := naming.ParseAcronymPolicy(cfg.Acronyms)
	if err != nil {
		return nil, err
	}
	registry := dialect.Builtin(dialect.Options{
		Engine:             naming.NewEngine(naming.WithAcronymPolicy(policy)),
		RequireDescription: cfg.RequireDescription,
	})
	d, err := registry.Get(cfg.Dialect)
	if err != nil {
		return nil, err
	}
	conv, err := naming.ParseConvention(cfg.Case)
	if err != nil {
		return nil, err
	}
	mode, err := validate.ParseMode(cfg.Mode)
	if err != nil {
		return nil, err
	}
	pos, err := validate.ParsePosition(cfg.RequiredPosition)
	if err != nil {
		return nil, err
	}
	format, err := report.ParseFormat(cfg.Format)
	if err != nil {
		return nil, err
	}

	filter := check.Filter{FileType: cfg.FileType}
	if cfg.PathRegex != "" {
		if filter.PathRegex, err = regexp.Compile(cfg.PathRegex); err != nil {
			return nil, err
		}
	}

	return &checkSetup{
		validator: validate.New(d, conv, validate.WithRequiredFields(cfg.RequiredFields, pos)),
		mode:      mode,
		filter:    filter,
		format:    format,
		jobs:      cfg.Jobs,
	}, nil
}

func runCheck(cmd *cobra.Command, sc *session.Context, opts *checkOptions, args []string) error {
	ctx := cmd.Context()
	log := zerolog.Ctx(ctx)

	cfg := resolveConfig(cmd.Flags(), *sc.Config, opts)
	setup, err := newCheckSetup(cfg)
	if err != nil {
		return err
	}
	if opts.interactive && setup.mode != validate.Fix {
		return fmt.Errorf("%w: --interactive requires --mode fix", ErrUsage)
	}

	paths, err := check.Discover(args, setup.filter)
	if err != nil {
		return err
	}
	log.Info().Int("files", len(paths)).Str("dialect", cfg.Dialect).Str("case", cfg.Case).Str("mode", cfg.Mode).Msg("checking schemas")
	if len(paths) == 0 {
		log.Warn().Msg("no schema files found")
		return nil
	}

	runOpts := check.Options{
		Validator: setup.validator,
		Mode:      setup.mode,
		Jobs:      setup.jobs,
	}
	if opts.interactive {
		runOpts.Confirm = prompts.ConfirmRewrite
	}

	agg := report.NewAggregator()
	if err := check.NewRunner(runOpts).Run(ctx, paths, agg); err != nil {
		return err
	}

	out, err := agg.Render(setup.format)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprint(cmd.OutOrStdout(), out)

	if rewritten := agg.Rewritten(); len(rewritten) > 0 && setup.format == report.FormatText {
		fields := make([]prompts.ResultField, 0, len(rewritten))
		for _, path := range rewritten {
			fields = append(fields, prompts.ResultField{Label: "Rewritten", Value: path})
		}
		prompts.PrintResult(cmd.ErrOrStderr(), fields, fmt.Sprintf("%d of %d files fixed", len(rewritten), agg.FileCount()))
	}

	code := agg.ExitCode()
	log.Info().Int("files", agg.FileCount()).Int("violations", len(agg.Violations())).Int("exitCode", code).Msg("check finished")
	if code != report.ExitClean {
		return &exitError{code: code}
	}
	return nil
}
