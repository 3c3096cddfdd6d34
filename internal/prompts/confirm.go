// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package prompts

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"
)

// ConfirmRewrite asks whether the renamed fields of a schema file may be
// written back.
func ConfirmRewrite(ctx context.Context, path string, renamed int) (bool, error) {
	noun := "fields"
	if renamed == 1 {
		noun = "field"
	}

	ok := true
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Rewrite %s?", path)).
				Description(fmt.Sprintf("%d %s will be renamed.", renamed, noun)).
				Affirmative("Yes").
				Negative("No, keep file").
				Value(&ok),
		),
	).WithTheme(Theme()).RunWithContext(ctx)
	if err != nil {
		return false, err
	}
	return ok, nil
}
