// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package session provides project configuration loading for CLI commands.
package session

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dacolabs/schemalint/internal/config"
)

var (
	// ErrConfigNotFound indicates an explicitly requested config file does not exist.
	ErrConfigNotFound = errors.New("config file not found")

	// ErrInvalidConfig indicates the config file exists but is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// EnvConfig names the environment variable that points at a config file.
const EnvConfig = "SCHEMALINT_CONFIG"

// contextKey is used to store Context in context.Context.
type contextKey struct{}

// Context holds the resolved project configuration.
type Context struct {
	// Config is the file configuration, or the defaults when no file was found.
	Config *config.Config

	// ConfigPath is the file Config was read from. Empty when defaults are used.
	ConfigPath string
}

// Locate returns the config file to read: explicit if set, then the file
// named by the environment, then config.FileName in the working directory if
// it exists. An empty result means no config file.
func Locate(explicit string, getenv func(string) string) string {
	if explicit != "" {
		return explicit
	}
	if getenv != nil {
		if p := getenv(EnvConfig); p != "" {
			return p
		}
	}
	if _, err := os.Stat(config.FileName); err == nil {
		return config.FileName
	}
	return ""
}

// Load reads the config file at path, or the defaults when path is empty, and
// returns a new context.Context with the Context stored in it.
func Load(ctx context.Context, path string) (context.Context, error) {
	cfg := config.Default()
	if path != "" {
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}

		var err error
		cfg, err = config.Load(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
		}
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
		}
	}

	return context.WithValue(ctx, contextKey{}, &Context{
		Config:     cfg,
		ConfigPath: path,
	}), nil
}

// From extracts the Context from a context.Context.
// Returns nil if no Context is stored.
func From(ctx context.Context) *Context {
	if sc, ok := ctx.Value(contextKey{}).(*Context); ok {
		return sc
	}
	return nil
}
