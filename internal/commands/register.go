// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package commands contains all CLI command definitions.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dacolabs/schemalint/internal/logging"
	"github.com/dacolabs/schemalint/internal/session"
)

// EnvLogLevel names the environment variable that sets the log level.
const EnvLogLevel = "SCHEMALINT_LOG_LEVEL"

type globalOptions struct {
	configPath string
	logLevel   string
	verbose    bool
}

// NewRootCmd creates and returns the root command for the CLI. getenv is
// the only way commands read the environment.
func NewRootCmd(getenv func(string) string) *cobra.Command {
	global := &globalOptions{}
	loadSession := session.PreRunLoad(getenv)

	rootCmd := newCheckCmd()
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if err := setupLogger(cmd, global, getenv); err != nil {
			return err
		}
		return loadSession(cmd, args)
	}
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	})

	rootCmd.PersistentFlags().StringVar(&global.configPath, "config", "", "Path to config file (default: $"+session.EnvConfig+" or ./.schemalint.yaml)")
	rootCmd.PersistentFlags().StringVar(&global.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVarP(&global.verbose, "verbose", "v", false, "Log file processing details (same as --log-level debug)")

	registerInitCmd(rootCmd)
	registerDialectsCmd(rootCmd)
	registerConvertCmd(rootCmd)
	registerVersionCmd(rootCmd)

	return rootCmd
}

// setupLogger stores a logger in the command context. The level comes from
// --log-level, then --verbose, then the environment.
func setupLogger(cmd *cobra.Command, global *globalOptions, getenv func(string) string) error {
	name := global.logLevel
	if name == "" && global.verbose {
		name = "debug"
	}
	if name == "" && getenv != nil {
		name = getenv(EnvLogLevel)
	}

	level, err := logging.ParseLevel(name)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	logger := logging.New(cmd.ErrOrStderr(), level)
	cmd.SetContext(logger.WithContext(cmd.Context()))
	return nil
}

func registerInitCmd(parent *cobra.Command) {
	parent.AddCommand(newInitCmd())
}

func registerDialectsCmd(parent *cobra.Command) {
	cmd := newDialectsCmd()
	cmd.AddCommand(newDialectsDescribeCmd())
	parent.AddCommand(cmd)
}

func registerConvertCmd(parent *cobra.Command) {
	parent.AddCommand(newConvertCmd())
}

func registerVersionCmd(parent *cobra.Command) {
	parent.AddCommand(newVersionCmd())
}
