// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package naming tokenizes identifiers into words and renders them in one of
// nine naming conventions.
package naming

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ErrUnknownConvention indicates a convention name that is not supported.
var ErrUnknownConvention = errors.New("unknown naming convention")

// Convention is a naming-style grammar for identifiers.
type Convention string

// Supported conventions.
const (
	Snake  Convention = "snake"
	Camel  Convention = "camel"
	Pascal Convention = "pascal"
	Upper  Convention = "upper"
	Kebab  Convention = "kebab"
	Train  Convention = "train"
	Flat   Convention = "flat"
	Cobol  Convention = "cobol"
	Title  Convention = "title"
)

var conventions = []Convention{Snake, Camel, Pascal, Upper, Kebab, Train, Flat, Cobol, Title}

var displayNames = map[Convention]string{
	Snake:  "snake_case",
	Camel:  "camelCase",
	Pascal: "PascalCase",
	Upper:  "UPPER_CASE",
	Kebab:  "kebab-case",
	Train:  "Train-Case",
	Flat:   "flatcase",
	Cobol:  "COBOL-CASE",
	Title:  "Title Case",
}

// Conventions returns all supported conventions in their canonical order.
func Conventions() []Convention {
	out := make([]Convention, len(conventions))
	copy(out, conventions)
	return out
}

// Names returns the names of all supported conventions.
func Names() []string {
	names := make([]string, len(conventions))
	for i, c := range conventions {
		names[i] = string(c)
	}
	return names
}

// ParseConvention resolves a convention by name.
func ParseConvention(name string) (Convention, error) {
	c := Convention(name)
	if _, ok := displayNames[c]; !ok {
		return "", fmt.Errorf("%w %q (supported: %s)", ErrUnknownConvention, name, strings.Join(Names(), ", "))
	}
	return c, nil
}

// DisplayName returns the convention written in its own style, e.g. "camelCase".
func (c Convention) DisplayName() string {
	if name, ok := displayNames[c]; ok {
		return name
	}
	return string(c)
}

func (c Convention) String() string {
	return string(c)
}

// Render joins lowercase words according to the convention.
func Render(words []string, c Convention) string {
	switch c {
	case Snake:
		return joinMapped(words, "_", strings.ToLower)
	case Camel:
		var sb strings.Builder
		for i, w := range words {
			if i == 0 {
				sb.WriteString(strings.ToLower(w))
				continue
			}
			sb.WriteString(capitalize(w))
		}
		return sb.String()
	case Pascal:
		return joinMapped(words, "", capitalize)
	case Upper:
		return joinMapped(words, "_", strings.ToUpper)
	case Kebab:
		return joinMapped(words, "-", strings.ToLower)
	case Train:
		return joinMapped(words, "-", capitalize)
	case Flat:
		return joinMapped(words, "", strings.ToLower)
	case Cobol:
		return joinMapped(words, "-", strings.ToUpper)
	case Title:
		return joinMapped(words, " ", capitalize)
	default:
		return strings.Join(words, "")
	}
}

func joinMapped(words []string, sep string, fn func(string) string) string {
	parts := make([]string, len(words))
	for i, w := range words {
		parts[i] = fn(w)
	}
	return strings.Join(parts, sep)
}

func capitalize(w string) string {
	r, size := utf8.DecodeRuneInString(w)
	if r == utf8.RuneError {
		return w
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(w[size:])
}
