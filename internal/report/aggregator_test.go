// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package report

import (
	"errors"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViolation_String(t *testing.T) {
	v := Violation{
		File:    "schemas/customers.json",
		Field:   "customer_table.CustomerID",
		Kind:    KindNaming,
		Message: "Field name 'CustomerID' does not follow snake_case. Expected: customer_id",
	}
	assert.Equal(t, "schemas/customers.json: Field customer_table.CustomerID: Field name 'CustomerID' does not follow snake_case. Expected: customer_id", v.String())

	doc := Violation{File: "a.json", Kind: KindRequiredFields, Message: "Missing required field names: id"}
	assert.Equal(t, "a.json: Missing required field names: id", doc.String())
}

func TestAggregator_Empty(t *testing.T) {
	a := NewAggregator()
	assert.False(t, a.HasFailures())
	assert.Equal(t, ExitClean, a.ExitCode())

	out, err := a.Render(FormatText)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestAggregator_GroupsByFirstSeenFile(t *testing.T) {
	a := NewAggregator()
	a.AddFile("b.json")
	a.AddFile("a.json")
	a.Record(Violation{File: "a.json", Field: "x", Message: "one"})
	a.Record(Violation{File: "b.json", Field: "y", Message: "two"})
	a.Record(Violation{File: "a.json", Field: "z", Message: "three"})

	out, err := a.Render(FormatText)
	require.NoError(t, err)
	assert.Equal(t, "b.json: Field y: two\na.json: Field x: one\na.json: Field z: three\n", out)
	assert.Equal(t, 2, a.FileCount())
	assert.Len(t, a.Violations(), 3)
}

func TestAggregator_ExitCode(t *testing.T) {
	tests := []struct {
		name   string
		record func(a *Aggregator)
		want   int
	}{
		{"clean files", func(a *Aggregator) { a.AddFile("a.json") }, ExitClean},
		{"violation", func(a *Aggregator) {
			a.Record(Violation{File: "a.json", Message: "m"})
		}, ExitViolations},
		{"parse failure", func(a *Aggregator) {
			a.RecordFailure("a.json", errors.New("Invalid JSON"), ExitViolations)
		}, ExitViolations},
		{"unreadable file escalates", func(a *Aggregator) {
			a.Record(Violation{File: "a.json", Message: "m"})
			a.RecordFailure("b.json", errors.New("no such file"), ExitConfigError)
		}, ExitConfigError},
		{"failure code never below violations", func(a *Aggregator) {
			a.RecordFailure("a.json", errors.New("boom"), ExitClean)
		}, ExitViolations},
		{"rewritten only", func(a *Aggregator) { a.MarkRewritten("a.json") }, ExitClean},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewAggregator()
			tt.record(a)
			assert.Equal(t, tt.want, a.ExitCode())
			assert.Equal(t, tt.want != ExitClean, a.HasFailures())
		})
	}
}

func TestAggregator_RenderTextFailures(t *testing.T) {
	a := NewAggregator()
	a.RecordFailure("bad.json", errors.New("Invalid JSON: unexpected end"), ExitViolations)
	a.Record(Violation{File: "ok.json", Field: "id", Message: "Missing required attribute 'mode'"})

	out, err := a.Render(FormatText)
	require.NoError(t, err)
	assert.Equal(t, "bad.json: Invalid JSON: unexpected end\nok.json: Field id: Missing required attribute 'mode'\n", out)
}

func TestAggregator_RenderJSON(t *testing.T) {
	a := NewAggregator()
	a.AddFile("clean.json")
	a.Record(Violation{
		File:         "fixed.json",
		Field:        "emailAddress",
		Kind:         KindNaming,
		Message:      "Field name 'emailAddress' does not follow snake_case. Expected: email_address",
		SuggestedFix: "email_address",
	})
	a.MarkRewritten("fixed.json")
	a.RecordFailure("broken.json", errors.New("Invalid JSON"), ExitViolations)

	out, err := a.Render(FormatJSON)
	require.NoError(t, err)

	var got struct {
		Files []struct {
			Path       string      `json:"path"`
			Violations []Violation `json:"violations"`
			Error      string      `json:"error"`
			Rewritten  bool        `json:"rewritten"`
		} `json:"files"`
		Violations int `json:"violations"`
		Failures   int `json:"failures"`
		ExitCode   int `json:"exitCode"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))

	require.Len(t, got.Files, 3)
	assert.Equal(t, "clean.json", got.Files[0].Path)
	assert.Empty(t, got.Files[0].Violations)
	assert.Equal(t, "fixed.json", got.Files[1].Path)
	assert.True(t, got.Files[1].Rewritten)
	assert.Equal(t, "email_address", got.Files[1].Violations[0].SuggestedFix)
	assert.Equal(t, "Invalid JSON", got.Files[2].Error)
	assert.Equal(t, 1, got.Violations)
	assert.Equal(t, 1, got.Failures)
	assert.Equal(t, ExitViolations, got.ExitCode)
	assert.Contains(t, out, `"violations": []`)
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("json")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	_, err = ParseFormat("xml")
	assert.Error(t, err)

	_, err = NewAggregator().Render("xml")
	assert.Error(t, err)
}
