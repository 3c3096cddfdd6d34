// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"errors"
	"fmt"

	"github.com/dacolabs/schemalint/internal/check"
	"github.com/dacolabs/schemalint/internal/config"
	"github.com/dacolabs/schemalint/internal/dialect"
	"github.com/dacolabs/schemalint/internal/naming"
	"github.com/dacolabs/schemalint/internal/report"
	"github.com/dacolabs/schemalint/internal/session"
)

// ErrUsage indicates invalid flags or arguments.
var ErrUsage = errors.New("invalid usage")

// exitError ends a run whose outcome was already reported with a non-zero code.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

// configErrors abort a run before any schema file is read.
var configErrors = []error{
	ErrUsage,
	config.ErrInvalid,
	session.ErrConfigNotFound,
	session.ErrInvalidConfig,
	naming.ErrUnknownConvention,
	dialect.ErrUnknownDialect,
	dialect.ErrUnsupportedDialect,
	check.ErrDiscover,
}

// ExitCode maps an error returned by the root command to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return report.ExitClean
	}

	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	for _, target := range configErrors {
		if errors.Is(err, target) {
			return report.ExitConfigError
		}
	}
	return report.ExitViolations
}

// IsReported reports whether err only carries an exit code and needs no
// message of its own.
func IsReported(err error) bool {
	var ee *exitError
	return errors.As(err, &ee)
}
