// Package search implements the real-time worker lookup core: term
// normalization, tiered fuzzy ranking, bounded TTL caching, query debouncing,
// and performance monitoring.
package search

import (
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	// MinTermLength is the minimum query length processed by the subsystem.
	// Shorter queries short-circuit to an empty result set.
	MinTermLength = 3
	// MaxTermLength is the maximum accepted query length after trimming.
	MaxTermLength = 100
)

var (
	// ErrTermTooShort is returned for queries under MinTermLength.
	ErrTermTooShort = errors.New("search term too short")
	// ErrTermTooLong is returned for queries over MaxTermLength.
	ErrTermTooLong = errors.New("search term too long")
)

var (
	disallowedChars = regexp.MustCompile(`[^a-z0-9@.\- ]+`)
	whitespaceRuns  = regexp.MustCompile(`\s+`)
)

// Term is a validated, normalized search query.
type Term struct {
	value string
}

// NewTerm validates and normalizes a raw query string.
// Length bounds are in characters, not bytes, so accented names typed on a
// tablet keyboard count the same as ASCII. Validation applies to the
// trimmed input; the stored value is normalized with Normalize.
func NewTerm(raw string) (Term, error) {
	trimmed := strings.TrimSpace(raw)
	runes := utf8.RuneCountInString(trimmed)
	if runes < MinTermLength {
		return Term{}, ErrTermTooShort
	}
	if runes > MaxTermLength {
		return Term{}, ErrTermTooLong
	}

	normalized := Normalize(trimmed)
	if len(normalized) < MinTermLength {
		return Term{}, ErrTermTooShort
	}

	return Term{value: normalized}, nil
}

// String returns the normalized term value.
func (t Term) String() string {
	return t.value
}

// IsZero reports whether the term is the zero value (not produced by NewTerm).
func (t Term) IsZero() bool {
	return t.value == ""
}

// Normalize lower-cases s, strips characters outside [a-z0-9@.\- ], and
// collapses whitespace runs into single spaces.
func Normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = disallowedChars.ReplaceAllString(s, "")
	s = whitespaceRuns.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
