// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dacolabs/schemalint/internal/config"
	"github.com/dacolabs/schemalint/internal/dialect"
	"github.com/dacolabs/schemalint/internal/prompts"
	"github.com/dacolabs/schemalint/internal/validate"
)

type initOptions struct {
	answers        prompts.InitAnswers
	nonInteractive bool
	force          bool
}

func newInitCmd() *cobra.Command {
	defaults := config.Default()
	opts := &initOptions{
		answers: prompts.InitAnswers{
			Dialect:          defaults.Dialect,
			Case:             defaults.Case,
			Mode:             defaults.Mode,
			FileType:         defaults.FileType,
			RequiredPosition: defaults.RequiredPosition,
		},
	}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a .schemalint.yaml config file",
		Long: `Create a .schemalint.yaml configuration file in the current directory.
Values in the file become the defaults of every schemalint run; flags still
override them.`,
		Example: `  # Interactive mode
  schemalint init

  # Non-interactive
  schemalint init --case camel --non-interactive
  schemalint init --required-fields insert_date,update_date --required-position end --non-interactive`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, opts)
		},
	}

	a := &opts.answers
	cmd.Flags().StringVarP(&a.Dialect, "dialect", "d", a.Dialect, "Schema dialect")
	cmd.Flags().StringVarP(&a.Case, "case", "c", a.Case, "Field naming convention")
	cmd.Flags().StringVarP(&a.Mode, "mode", "m", a.Mode, "Default mode (lint or fix)")
	cmd.Flags().StringVar(&a.FileType, "file-type", a.FileType, "File extension to scan for in directories")
	cmd.Flags().StringVar(&a.PathRegex, "path-regex", "", "Only scan files whose path matches this regular expression")
	cmd.Flags().StringVar(&a.RequiredFields, "required-fields", "", "Comma-separated top-level field names every schema must contain")
	cmd.Flags().StringVar(&a.RequiredPosition, "required-position", a.RequiredPosition, "Where required fields must appear (any, beginning, end)")
	cmd.Flags().BoolVar(&opts.nonInteractive, "non-interactive", false, "Run without prompts")
	cmd.Flags().BoolVarP(&opts.force, "force", "f", false, "Overwrite an existing config file")

	return cmd
}

func runInit(cmd *cobra.Command, opts *initOptions) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	// Check that the current directory isn't already initialized
	cfgPath := filepath.Join(cwd, config.FileName)
	if _, err := os.Stat(cfgPath); err == nil && !opts.force {
		return errors.New(config.FileName + " already exists; use --force to overwrite")
	}

	if !opts.nonInteractive {
		if err := prompts.RunInitForm(&opts.answers, dialect.Builtin(dialect.Options{}).Supported()); err != nil {
			return err
		}
	}

	a := opts.answers
	cfg := config.Default()
	cfg.Dialect = a.Dialect
	cfg.Case = a.Case
	cfg.Mode = a.Mode
	cfg.FileType = strings.TrimPrefix(a.FileType, ".")
	cfg.PathRegex = a.PathRegex
	cfg.RequiredFields = validate.ParseNames(a.RequiredFields)
	cfg.RequiredPosition = a.RequiredPosition

	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := cfg.Save(cfgPath); err != nil {
		return fmt.Errorf("config file couldn't be saved: %w", err)
	}

	fields := []prompts.ResultField{
		{Label: "Dialect", Value: cfg.Dialect},
		{Label: "Case", Value: cfg.Case},
		{Label: "Mode", Value: cfg.Mode},
		{Label: "File type", Value: cfg.FileType},
	}
	if cfg.PathRegex != "" {
		fields = append(fields, prompts.ResultField{Label: "Path regex", Value: cfg.PathRegex})
	}
	if len(cfg.RequiredFields) > 0 {
		fields = append(fields, prompts.ResultField{
			Label: "Required fields",
			Value: strings.Join(cfg.RequiredFields, ", ") + " (" + cfg.RequiredPosition + ")",
		})
	}
	prompts.PrintResult(cmd.OutOrStdout(), fields, "Created "+config.FileName)
	return nil
}
