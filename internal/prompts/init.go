// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package prompts

import (
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/dacolabs/schemalint/internal/naming"
)

// InitAnswers holds the values collected by the init form.
type InitAnswers struct {
	Dialect          string
	Case             string
	Mode             string
	FileType         string
	PathRegex        string
	RequiredFields   string
	RequiredPosition string
}

// RunInitForm runs the interactive form for the init command.
// It fills a with user input, using its current values as defaults.
func RunInitForm(a *InitAnswers, dialects []string) error {
	dialectOptions := make([]huh.Option[string], 0, len(dialects))
	for _, d := range dialects {
		dialectOptions = append(dialectOptions, huh.NewOption(d, d))
	}

	caseOptions := make([]huh.Option[string], 0, len(naming.Conventions()))
	for _, c := range naming.Conventions() {
		caseOptions = append(caseOptions, huh.NewOption(c.DisplayName(), string(c)))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Dialect").
				Options(dialectOptions...).
				Value(&a.Dialect),
			huh.NewSelect[string]().
				Title("Field naming convention").
				Options(caseOptions...).
				Height(6).
				Value(&a.Case),
			huh.NewSelect[string]().
				Title("Default mode").
				Options(
					huh.NewOption("Lint (report only)", "lint"),
					huh.NewOption("Fix (rename fields in place)", "fix"),
				).
				Value(&a.Mode),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Schema file extension").
				Placeholder("json").
				Validate(requiredValidator("file extension")).
				Value(&a.FileType),
			huh.NewInput().
				Title("Path filter (regular expression, optional)").
				Placeholder("^schemas/").
				Validate(regexValidator).
				Value(&a.PathRegex),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Required top-level field names (comma separated, optional)").
				Placeholder("insert_date,update_date").
				Value(&a.RequiredFields),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Position of required field names").
				Options(
					huh.NewOption("Anywhere", "any"),
					huh.NewOption("At the beginning", "beginning"),
					huh.NewOption("At the end", "end"),
				).
				Value(&a.RequiredPosition),
		).WithHideFunc(func() bool { return !a.HasRequiredFields() }),
	).WithTheme(Theme()).Run()
}

// HasRequiredFields reports whether any required field name was entered.
func (a *InitAnswers) HasRequiredFields() bool {
	return strings.TrimSpace(a.RequiredFields) != ""
}
