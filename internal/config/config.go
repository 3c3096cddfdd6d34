// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package config handles the schemalint project configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/dacolabs/schemalint/internal/dialect"
	"github.com/dacolabs/schemalint/internal/naming"
	"github.com/dacolabs/schemalint/internal/report"
	"github.com/dacolabs/schemalint/internal/validate"
)

// CurrentConfigVersion is the current version of the config file format.
const CurrentConfigVersion = 1

// FileName is the config file looked up in the working directory.
const FileName = ".schemalint.yaml"

// ErrInvalid indicates a configuration value that cannot be used.
var ErrInvalid = errors.New("invalid configuration")

// Config represents the .schemalint.yaml file. Command-line flags override
// any value set here.
type Config struct {
	Version            int      `yaml:"version"`
	Dialect            string   `yaml:"dialect,omitempty"`
	Case               string   `yaml:"case,omitempty"`
	Mode               string   `yaml:"mode,omitempty"`
	FileType           string   `yaml:"fileType,omitempty"`
	PathRegex          string   `yaml:"pathRegex,omitempty"`
	Acronyms           string   `yaml:"acronyms,omitempty"`
	RequireDescription bool     `yaml:"requireDescription,omitempty"`
	RequiredFields     []string `yaml:"requiredFields,omitempty"`
	RequiredPosition   string   `yaml:"requiredPosition,omitempty"`
	Jobs               int      `yaml:"jobs,omitempty"`
	Format             string   `yaml:"format,omitempty"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Version:          CurrentConfigVersion,
		Dialect:          "bigquery",
		Case:             string(naming.Snake),
		Mode:             string(validate.Lint),
		FileType:         "json",
		Acronyms:         naming.AcronymsSplit,
		RequiredPosition: string(validate.Anywhere),
		Jobs:             1,
		Format:           string(report.FormatText),
	}
}

// Load reads a Config from a file path. Values the file leaves out keep their
// defaults.
func Load(path string) (*Config, error) {
	f, err := os.Open(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	cfg := Default()
	cfg.Version = 0
	if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the Config to a file path.
func (c *Config) Save(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	return enc.Encode(c)
}

// Validate checks the configuration for supported versions and valid values.
// Every error wraps ErrInvalid.
func (c *Config) Validate() error {
	if c.Version != CurrentConfigVersion {
		return fmt.Errorf("%w: unsupported config version %d", ErrInvalid, c.Version)
	}

	if _, err := dialect.Builtin(dialect.Options{}).Get(c.Dialect); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if _, err := naming.ParseConvention(c.Case); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if _, err := validate.ParseMode(c.Mode); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if _, err := naming.ParseAcronymPolicy(c.Acronyms); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if _, err := validate.ParsePosition(c.RequiredPosition); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if _, err := report.ParseFormat(c.Format); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if _, err := regexp.Compile(c.PathRegex); err != nil {
		return fmt.Errorf("%w: invalid path regex: %v", ErrInvalid, err)
	}
	if c.FileType == "" {
		return fmt.Errorf("%w: file type cannot be empty", ErrInvalid)
	}
	if c.Jobs < 1 {
		return fmt.Errorf("%w: jobs must be at least 1, got %d", ErrInvalid, c.Jobs)
	}
	return nil
}
