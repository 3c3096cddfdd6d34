// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"customer_id", []string{"customer", "id"}},
		{"CustomerID", []string{"customer", "id"}},
		{"customerId", []string{"customer", "id"}},
		{"emailAddress", []string{"email", "address"}},
		{"EMAIL_ADDRESS", []string{"email", "address"}},
		{"email-address", []string{"email", "address"}},
		{"Email Address", []string{"email", "address"}},
		{"HTTPServer", []string{"http", "server"}},
		{"parseHTTPResponse", []string{"parse", "http", "response"}},
		{"id2", []string{"id2"}},
		{"address2", []string{"address2"}},
		{"ID2Name", []string{"id2", "name"}},
		{"address2Line", []string{"address2", "line"}},
		{"__leading__trailing__", []string{"leading", "trailing"}},
		{"price$", []string{"price"}},
		{"flatcase", []string{"flatcase"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Default.Tokenize(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTokenize_InvalidIdentifier(t *testing.T) {
	for _, input := range []string{"", "___", "- -"} {
		_, err := Default.Tokenize(input)
		assert.ErrorIs(t, err, ErrInvalidIdentifier, "Tokenize(%q)", input)
	}
}

func TestTokenize_KeepRunPolicy(t *testing.T) {
	engine := NewEngine(WithAcronymPolicy(KeepRun{}))

	tests := []struct {
		input string
		want  []string
	}{
		{"HTTPServer", []string{"httpserver"}},
		{"customerID", []string{"customer", "id"}},
		{"user_name", []string{"user", "name"}},
	}

	for _, tt := range tests {
		got, err := engine.Tokenize(tt.input)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "Tokenize(%q)", tt.input)
	}
}

func TestRender(t *testing.T) {
	words := []string{"customer", "id"}

	tests := []struct {
		convention Convention
		want       string
	}{
		{Snake, "customer_id"},
		{Camel, "customerId"},
		{Pascal, "CustomerId"},
		{Upper, "CUSTOMER_ID"},
		{Kebab, "customer-id"},
		{Train, "Customer-Id"},
		{Flat, "customerid"},
		{Cobol, "CUSTOMER-ID"},
		{Title, "Customer Id"},
	}

	for _, tt := range tests {
		t.Run(string(tt.convention), func(t *testing.T) {
			assert.Equal(t, tt.want, Render(words, tt.convention))
		})
	}
}

func TestMatches(t *testing.T) {
	tests := []struct {
		id         string
		convention Convention
		want       bool
	}{
		{"customer_id", Snake, true},
		{"CustomerID", Snake, false},
		{"customerId", Camel, true},
		{"customerID", Camel, false},
		{"CustomerId", Pascal, true},
		{"CUSTOMER_ID", Upper, true},
		{"customer-id", Kebab, true},
		{"Customer-Id", Train, true},
		{"customerid", Flat, true},
		{"customer_id", Flat, false},
		{"CUSTOMER-ID", Cobol, true},
		{"Customer Id", Title, true},
		{"customer id", Title, false},
	}

	for _, tt := range tests {
		got, err := Default.Matches(tt.id, tt.convention)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "Matches(%q, %s)", tt.id, tt.convention)
	}
}

func TestMatches_EmptyIdentifier(t *testing.T) {
	_, err := Default.Matches("", Snake)
	assert.ErrorIs(t, err, ErrInvalidIdentifier)
}

// Identifiers built from multi-letter words, already written in a convention,
// survive tokenize then render unchanged.
func TestRoundTrip_Identity(t *testing.T) {
	wordSets := [][]string{
		{"customer", "id"},
		{"email", "address"},
		{"order", "date", "utc"},
		{"id2", "name"},
		{"address2", "line"},
		{"total"},
	}

	for _, words := range wordSets {
		for _, c := range Conventions() {
			id := Render(words, c)
			ok, err := Default.Matches(id, c)
			require.NoError(t, err)
			assert.True(t, ok, "Matches(%q, %s)", id, c)

			tokens, err := Default.Tokenize(id)
			require.NoError(t, err)
			assert.Equal(t, id, Render(tokens, c), "round trip of %q in %s", id, c)
		}
	}
}

// Converting between any two conventions and back is lossless for word-based
// identifiers. flatcase drops word boundaries, so it only round-trips to itself.
func TestRoundTrip_BetweenConventions(t *testing.T) {
	wordSets := [][]string{
		{"customer", "id"},
		{"shipping", "address", "line"},
		{"created", "at"},
	}

	for _, words := range wordSets {
		for _, from := range Conventions() {
			if from == Flat {
				continue
			}
			for _, to := range Conventions() {
				if to == Flat {
					continue
				}
				id := Render(words, from)
				converted, err := Default.Convert(id, to)
				require.NoError(t, err)
				back, err := Default.Convert(converted, from)
				require.NoError(t, err)
				assert.Equal(t, id, back, "%s -> %s -> %s", from, to, from)
			}
		}
	}
}

func TestConvert(t *testing.T) {
	tests := []struct {
		id         string
		convention Convention
		want       string
	}{
		{"CustomerID", Snake, "customer_id"},
		{"emailAddress", Snake, "email_address"},
		{"order_date", Camel, "orderDate"},
		{"HTTPServer", Kebab, "http-server"},
		{"customer_id", Title, "Customer Id"},
		{"customer_id", Cobol, "CUSTOMER-ID"},
		// single-letter words read back as an acronym, so the result settles on
		// the stable spelling
		{"a_b_c", Camel, "aBc"},
	}

	for _, tt := range tests {
		got, err := Default.Convert(tt.id, tt.convention)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "Convert(%q, %s)", tt.id, tt.convention)

		ok, err := Default.Matches(got, tt.convention)
		require.NoError(t, err)
		assert.True(t, ok, "Convert(%q, %s) = %q does not match", tt.id, tt.convention, got)
	}
}

func TestParseConvention(t *testing.T) {
	for _, name := range Names() {
		c, err := ParseConvention(name)
		require.NoError(t, err)
		assert.Equal(t, name, c.String())
	}

	_, err := ParseConvention("screaming")
	assert.ErrorIs(t, err, ErrUnknownConvention)
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "snake_case", Snake.DisplayName())
	assert.Equal(t, "Title Case", Title.DisplayName())
	assert.Equal(t, "weird", Convention("weird").DisplayName())
}

func TestParseAcronymPolicy(t *testing.T) {
	p, err := ParseAcronymPolicy("keep")
	require.NoError(t, err)
	assert.Equal(t, KeepRun{}, p)

	p, err = ParseAcronymPolicy("")
	require.NoError(t, err)
	assert.Equal(t, SplitBeforeLast{}, p)

	_, err = ParseAcronymPolicy("dictionary")
	assert.Error(t, err)
}
