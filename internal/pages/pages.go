// Package pages understands the page naming convention of scanned issues:
// <prefix>_<volume>_<section>_<index>, with a zero-padded three digit index.
// Even indices are left pages, odd indices are right pages.
package pages

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	separator  = "_"
	indexToken = 3
	minTokens  = indexToken + 1
)

// ErrNonConforming reports a basename that does not follow the convention.
var ErrNonConforming = errors.New("filename does not follow <prefix>_<volume>_<section>_<index>")

// Name is a parsed page basename (no extension).
type Name struct {
	Tokens []string
	Index  int
}

// Parse splits base on underscores and reads the fourth token as the page
// index. Tokens after the fourth are preserved.
func Parse(base string) (Name, error) {
	tokens := strings.Split(base, separator)
	if len(tokens) < minTokens {
		return Name{}, fmt.Errorf("%q: %w", base, ErrNonConforming)
	}
	idx, err := strconv.Atoi(tokens[indexToken])
	if err != nil {
		return Name{}, fmt.Errorf("%q: index %q: %w", base, tokens[indexToken], ErrNonConforming)
	}
	return Name{Tokens: tokens, Index: idx}, nil
}

// IsRight reports whether the page is an odd-indexed right page.
func (n Name) IsRight() bool {
	return n.Index%2 != 0
}

// HasLeftSibling reports whether a merge with a preceding left page applies.
// Index 1 opens a sequence and has no left page.
func (n Name) HasLeftSibling() bool {
	return n.IsRight() && n.Index > 1
}

// LeftSibling returns the basename of the preceding even page.
func (n Name) LeftSibling() string {
	return n.withIndex(fmt.Sprintf("%03d", n.Index-1))
}

// Spread returns the basename of the merged two-page spread.
func (n Name) Spread() string {
	return n.withIndex(fmt.Sprintf("%03d-%03d", n.Index-1, n.Index))
}

// String returns the basename with the index token as parsed.
func (n Name) String() string {
	return strings.Join(n.Tokens, separator)
}

func (n Name) withIndex(token string) string {
	tokens := make([]string, len(n.Tokens))
	copy(tokens, n.Tokens)
	tokens[indexToken] = token
	return strings.Join(tokens, separator)
}
