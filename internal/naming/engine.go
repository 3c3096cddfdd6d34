// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package naming

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrInvalidIdentifier indicates an identifier with no words in it.
var ErrInvalidIdentifier = errors.New("invalid identifier")

// maxConvertPasses bounds the re-rendering done by Convert. Two passes settle
// every input seen in practice; the extra ones are headroom.
const maxConvertPasses = 4

// AcronymPolicy decides where a run of uppercase letters that is directly
// followed by a lowercase letter is split, as in "HTTPServer".
type AcronymPolicy interface {
	// SplitUpperRun returns the offset in run where the next word starts.
	// Returning 0 or len(run) keeps the run in the current word.
	SplitUpperRun(run []rune) int
}

// SplitBeforeLast starts a new word at the last uppercase letter of the run:
// "HTTPServer" becomes "http", "server".
type SplitBeforeLast struct{}

// SplitUpperRun implements AcronymPolicy.
func (SplitBeforeLast) SplitUpperRun(run []rune) int { return len(run) - 1 }

// KeepRun never splits inside a run: "HTTPServer" becomes "httpserver".
type KeepRun struct{}

// SplitUpperRun implements AcronymPolicy.
func (KeepRun) SplitUpperRun(run []rune) int { return len(run) }

// Acronym policy names accepted by ParseAcronymPolicy.
const (
	AcronymsSplit = "split"
	AcronymsKeep  = "keep"
)

// ParseAcronymPolicy resolves an acronym policy by name.
func ParseAcronymPolicy(name string) (AcronymPolicy, error) {
	switch name {
	case AcronymsSplit, "":
		return SplitBeforeLast{}, nil
	case AcronymsKeep:
		return KeepRun{}, nil
	default:
		return nil, fmt.Errorf("unknown acronym policy %q (supported: %s, %s)", name, AcronymsSplit, AcronymsKeep)
	}
}

// Engine tokenizes and renders identifiers. It holds no mutable state and is
// safe for concurrent use.
type Engine struct {
	acronyms AcronymPolicy
}

// Option configures an Engine.
type Option func(*Engine)

// WithAcronymPolicy sets how uppercase runs are split.
func WithAcronymPolicy(p AcronymPolicy) Option {
	return func(e *Engine) {
		if p != nil {
			e.acronyms = p
		}
	}
}

// NewEngine creates an Engine. The default acronym policy is SplitBeforeLast.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{acronyms: SplitBeforeLast{}}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Default is an Engine with the default acronym policy.
var Default = NewEngine()

// Tokenize splits id into lowercase words.
//
// Words break at lowercase-to-uppercase and digit-to-uppercase transitions and
// at any rune that is neither a letter nor a digit. Letters and digits next to
// each other stay in one word, so "id2" is a single word. A run of uppercase
// letters followed by a lowercase letter is split by the acronym policy.
func (e *Engine) Tokenize(id string) ([]string, error) {
	runes := []rune(id)
	var words []string
	var cur []rune

	flush := func() {
		if len(cur) > 0 {
			words = append(words, strings.ToLower(string(cur)))
			cur = cur[:0:0]
		}
	}

	for i, r := range runes {
		switch {
		case unicode.IsUpper(r):
			if i > 0 && len(cur) > 0 {
				prev := runes[i-1]
				if unicode.IsLower(prev) || unicode.IsDigit(prev) {
					flush()
				}
			}
			cur = append(cur, r)
		case unicode.IsLetter(r):
			if start := upperRunStart(cur); len(cur)-start >= 2 {
				at := e.acronyms.SplitUpperRun(cur[start:])
				if at > 0 && at < len(cur)-start {
					cut := start + at
					rest := append([]rune(nil), cur[cut:]...)
					cur = cur[:cut]
					flush()
					cur = rest
				}
			}
			cur = append(cur, r)
		case unicode.IsDigit(r):
			cur = append(cur, r)
		default:
			flush()
		}
	}
	flush()

	if len(words) == 0 {
		return nil, fmt.Errorf("%w: %q contains no words", ErrInvalidIdentifier, id)
	}
	return words, nil
}

// upperRunStart returns the index where the trailing run of uppercase letters
// in word begins, or len(word) if word does not end in an uppercase letter.
func upperRunStart(word []rune) int {
	i := len(word)
	for i > 0 && unicode.IsUpper(word[i-1]) {
		i--
	}
	return i
}

// Matches reports whether id is already written in convention c.
func (e *Engine) Matches(id string, c Convention) (bool, error) {
	words, err := e.Tokenize(id)
	if err != nil {
		return false, err
	}
	return Render(words, c) == id, nil
}

// Convert rewrites id in convention c. The result always satisfies Matches:
// when rendering is not stable for an identifier (runs of single-letter words
// read back as acronyms) it is re-rendered until it is.
func (e *Engine) Convert(id string, c Convention) (string, error) {
	words, err := e.Tokenize(id)
	if err != nil {
		return "", err
	}
	out := Render(words, c)
	for range maxConvertPasses {
		words, err = e.Tokenize(out)
		if err != nil {
			return "", err
		}
		next := Render(words, c)
		if next == out {
			break
		}
		out = next
	}
	return out, nil
}
