// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package report

import (
	"fmt"
	"strings"

	json "github.com/goccy/go-json"
)

// Process exit codes.
const (
	ExitClean       = 0
	ExitViolations  = 1
	ExitConfigError = 2
)

// Format selects how a report is rendered.
type Format string

// Supported report formats.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// ParseFormat resolves a report format by name.
func ParseFormat(name string) (Format, error) {
	switch f := Format(name); f {
	case FormatText, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("unknown report format %q (supported: %s, %s)", name, FormatText, FormatJSON)
	}
}

// Failure is a file that could not be processed.
type Failure struct {
	Err error
	// Code is the exit code the failure escalates the run to.
	Code int
}

type fileReport struct {
	path       string
	violations []Violation
	failure    *Failure
	rewritten  bool
}

// Aggregator accumulates the outcome of a run, grouped by file in the order
// files were first seen. It is not safe for concurrent use.
type Aggregator struct {
	files []*fileReport
	index map[string]*fileReport
}

// NewAggregator creates an empty Aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{index: make(map[string]*fileReport)}
}

// AddFile registers a file so it is listed even when nothing is recorded for it.
func (a *Aggregator) AddFile(path string) {
	a.file(path)
}

func (a *Aggregator) file(path string) *fileReport {
	if fr, ok := a.index[path]; ok {
		return fr
	}
	fr := &fileReport{path: path}
	a.index[path] = fr
	a.files = append(a.files, fr)
	return fr
}

// Record adds a violation under its file.
func (a *Aggregator) Record(v Violation) {
	fr := a.file(v.File)
	fr.violations = append(fr.violations, v)
}

// RecordFailure marks a file as failed. A later failure for the same file
// replaces the earlier one.
func (a *Aggregator) RecordFailure(path string, err error, code int) {
	a.file(path).failure = &Failure{Err: err, Code: code}
}

// MarkRewritten notes that fixes were written back to the file.
func (a *Aggregator) MarkRewritten(path string) {
	a.file(path).rewritten = true
}

// Violations returns all recorded violations in report order.
func (a *Aggregator) Violations() []Violation {
	var out []Violation
	for _, fr := range a.files {
		out = append(out, fr.violations...)
	}
	return out
}

// Rewritten returns the files that had fixes written back, in report order.
func (a *Aggregator) Rewritten() []string {
	var out []string
	for _, fr := range a.files {
		if fr.rewritten {
			out = append(out, fr.path)
		}
	}
	return out
}

// FileCount returns the number of files seen.
func (a *Aggregator) FileCount() int {
	return len(a.files)
}

// HasFailures reports whether any violation or file failure was recorded.
func (a *Aggregator) HasFailures() bool {
	for _, fr := range a.files {
		if len(fr.violations) > 0 || fr.failure != nil {
			return true
		}
	}
	return false
}

// ExitCode is ExitClean when nothing was recorded, otherwise the highest code
// among file failures and ExitViolations. In fix mode violations that were
// fixed still count: the code tells whether anything had to change.
func (a *Aggregator) ExitCode() int {
	code := ExitClean
	for _, fr := range a.files {
		if len(fr.violations) > 0 {
			code = max(code, ExitViolations)
		}
		if fr.failure != nil {
			code = max(code, fr.failure.Code, ExitViolations)
		}
	}
	return code
}

// Render formats the report.
func (a *Aggregator) Render(format Format) (string, error) {
	switch format {
	case FormatText, "":
		return a.renderText(), nil
	case FormatJSON:
		return a.renderJSON()
	default:
		return "", fmt.Errorf("unknown report format %q", format)
	}
}

func (a *Aggregator) renderText() string {
	var sb strings.Builder
	for _, fr := range a.files {
		if fr.failure != nil {
			fmt.Fprintf(&sb, "%s: %v\n", fr.path, fr.failure.Err)
		}
		for _, v := range fr.violations {
			sb.WriteString(v.String())
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

type jsonFile struct {
	Path       string      `json:"path"`
	Violations []Violation `json:"violations"`
	Error      string      `json:"error,omitempty"`
	Rewritten  bool        `json:"rewritten,omitempty"`
}

type jsonReport struct {
	Files      []jsonFile `json:"files"`
	Violations int        `json:"violations"`
	Failures   int        `json:"failures"`
	ExitCode   int        `json:"exitCode"`
}

func (a *Aggregator) renderJSON() (string, error) {
	out := jsonReport{
		Files:    make([]jsonFile, 0, len(a.files)),
		ExitCode: a.ExitCode(),
	}
	for _, fr := range a.files {
		jf := jsonFile{
			Path:       fr.path,
			Violations: fr.violations,
			Rewritten:  fr.rewritten,
		}
		if jf.Violations == nil {
			jf.Violations = []Violation{}
		}
		if fr.failure != nil {
			jf.Error = fr.failure.Err.Error()
			out.Failures++
		}
		out.Violations += len(fr.violations)
		out.Files = append(out.Files, jf)
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data) + "\n", nil
}
