// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package check

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dacolabs/schemalint/internal/dialect"
	"github.com/dacolabs/schemalint/internal/naming"
	"github.com/dacolabs/schemalint/internal/report"
	"github.com/dacolabs/schemalint/internal/validate"
)

const (
	cleanSchema = `[{"name": "customer_id", "type": "STRING", "mode": "REQUIRED"}]`
	dirtySchema = `[
  {"name": "customer_table", "type": "RECORD", "mode": "NULLABLE", "fields": [
    {"name": "CustomerID", "type": "STRING", "mode": "NULLABLE"}
  ]},
  {"name": "emailAddress", "type": "STRING", "mode": "NULLABLE"}
]`
)

func newRunner(t *testing.T, mode validate.Mode, jobs int, confirm ConfirmFunc) *Runner {
	t.Helper()
	d, err := dialect.Builtin(dialect.Options{}).Get("bigquery")
	require.NoError(t, err)
	return NewRunner(Options{
		Validator: validate.New(d, naming.Snake),
		Mode:      mode,
		Jobs:      jobs,
		Confirm:   confirm,
	})
}

func TestRunner_Lint(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"clean.json": cleanSchema,
		"dirty.json": dirtySchema,
	})
	clean := filepath.Join(root, "clean.json")
	dirty := filepath.Join(root, "dirty.json")

	agg := report.NewAggregator()
	require.NoError(t, newRunner(t, validate.Lint, 1, nil).Run(context.Background(), []string{dirty, clean}, agg))

	out, err := agg.Render(report.FormatText)
	require.NoError(t, err)
	assert.Equal(t,
		dirty+": Field customer_table.CustomerID: Field name 'CustomerID' does not follow snake_case. Expected: customer_id\n"+
			dirty+": Field emailAddress: Field name 'emailAddress' does not follow snake_case. Expected: email_address\n",
		out)
	assert.Equal(t, report.ExitViolations, agg.ExitCode())

	content, err := os.ReadFile(dirty) //nolint:gosec // test file path
	require.NoError(t, err)
	assert.Equal(t, dirtySchema, string(content))
}

func TestRunner_FixRewritesAndConverges(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"clean.json": cleanSchema,
		"dirty.json": dirtySchema,
	})
	clean := filepath.Join(root, "clean.json")
	dirty := filepath.Join(root, "dirty.json")

	agg := report.NewAggregator()
	require.NoError(t, newRunner(t, validate.Fix, 1, nil).Run(context.Background(), []string{clean, dirty}, agg))

	assert.Equal(t, report.ExitViolations, agg.ExitCode())
	assert.Equal(t, []string{dirty}, agg.Rewritten())

	content, err := os.ReadFile(dirty) //nolint:gosec // test file path
	require.NoError(t, err)
	assert.Contains(t, string(content), `"name": "customer_id"`)
	assert.Contains(t, string(content), `"name": "email_address"`)

	cleanContent, err := os.ReadFile(clean) //nolint:gosec // test file path
	require.NoError(t, err)
	assert.Equal(t, cleanSchema, string(cleanContent), "clean files are not rewritten")

	again := report.NewAggregator()
	require.NoError(t, newRunner(t, validate.Lint, 1, nil).Run(context.Background(), []string{dirty}, again))
	assert.Equal(t, report.ExitClean, again.ExitCode())
}

func TestRunner_FixDeclined(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{"dirty.json": dirtySchema})
	dirty := filepath.Join(root, "dirty.json")

	var asked []string
	confirm := func(_ context.Context, path string, renamed int) (bool, error) {
		asked = append(asked, path)
		assert.Equal(t, 2, renamed)
		return false, nil
	}

	agg := report.NewAggregator()
	require.NoError(t, newRunner(t, validate.Fix, 1, confirm).Run(context.Background(), []string{dirty}, agg))
	assert.Equal(t, []string{dirty}, asked)
	assert.Empty(t, agg.Rewritten())

	content, err := os.ReadFile(dirty) //nolint:gosec // test file path
	require.NoError(t, err)
	assert.Equal(t, dirtySchema, string(content))
}

func TestRunner_ConfirmError(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{"dirty.json": dirtySchema})

	boom := errors.New("prompt aborted")
	confirm := func(context.Context, string, int) (bool, error) { return false, boom }

	err := newRunner(t, validate.Fix, 1, confirm).Run(context.Background(), []string{filepath.Join(root, "dirty.json")}, report.NewAggregator())
	assert.ErrorIs(t, err, boom)
}

func TestRunner_FailuresAreIsolated(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"broken.json": `[{"name": `,
		"clean.json":  cleanSchema,
	})
	broken := filepath.Join(root, "broken.json")
	clean := filepath.Join(root, "clean.json")
	missing := filepath.Join(root, "missing.json")

	agg := report.NewAggregator()
	require.NoError(t, newRunner(t, validate.Lint, 1, nil).Run(context.Background(), []string{broken, clean, missing}, agg))

	assert.Equal(t, 3, agg.FileCount())
	assert.Equal(t, report.ExitConfigError, agg.ExitCode())

	out, err := agg.Render(report.FormatText)
	require.NoError(t, err)
	assert.Contains(t, out, broken+": invalid schema document")
	assert.Contains(t, out, missing+": cannot read schema file")
	assert.NotContains(t, out, clean)
}

func TestRunner_ParallelKeepsInputOrder(t *testing.T) {
	root := t.TempDir()
	var paths []string
	for _, name := range []string{"e.json", "a.json", "d.json", "b.json", "c.json"} {
		writeFiles(t, root, map[string]string{name: `[{"name": "BadName", "type": "STRING", "mode": "NULLABLE"}]`})
		paths = append(paths, filepath.Join(root, name))
	}

	agg := report.NewAggregator()
	require.NoError(t, newRunner(t, validate.Lint, 4, nil).Run(context.Background(), paths, agg))

	violations := agg.Violations()
	require.Len(t, violations, len(paths))
	for i, v := range violations {
		assert.Equal(t, paths[i], v.File)
	}
}

func TestRunner_LogsStates(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{"dirty.json": dirtySchema})

	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
	ctx := logger.WithContext(context.Background())

	require.NoError(t, newRunner(t, validate.Fix, 1, nil).Run(ctx, []string{filepath.Join(root, "dirty.json")}, report.NewAggregator()))

	out := buf.String()
	for _, s := range []State{Loaded, Checked, Reported, Rewritten} {
		assert.Contains(t, out, `"state":"`+string(s)+`"`)
	}
	// nested fields are counted
	assert.Contains(t, out, `"fields":3`)
}

func TestRunner_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := newRunner(t, validate.Lint, 1, nil).Run(ctx, []string{"a.json"}, report.NewAggregator())
	assert.ErrorIs(t, err, context.Canceled)
}
