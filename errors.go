package variantcss

import (
	"errors"
	"fmt"
)

// Token boundary errors surfaced by the splitter. Leading, trailing, and
// doubled colons are hard errors rather than silently tolerated; the
// decision is pinned by the splitter boundary tests.
var (
	// ErrEmptySegment reports an empty variant segment (leading or doubled
	// colon) in a token.
	ErrEmptySegment = errors.New("empty variant segment")
	// ErrEmptyBaseClass reports a token whose final segment is empty
	// (trailing colon or empty token).
	ErrEmptyBaseClass = errors.New("empty base class")
	// ErrInvalidToken reports a token containing a NUL byte.
	ErrInvalidToken = errors.New("token contains NUL byte")
)

// UnknownVariantError reports a segment that resolves to no standard,
// custom, or breakpoint variant.
type UnknownVariantError struct {
	Name string
}

func (e *UnknownVariantError) Error() string {
	return fmt.Sprintf("unknown variant %q", e.Name)
}

// InvalidCombinationError reports a violated cross-variant rule: mutual
// exclusion, cardinality, combinability, or dependency satisfaction.
type InvalidCombinationError struct {
	Reason string
}

func (e *InvalidCombinationError) Error() string {
	return fmt.Sprintf("invalid variant combination: %s", e.Reason)
}

// InvalidCustomVariantNameError reports a registration rejected by the
// name-format rule: lowercase alphanumerics and internal hyphens only.
type InvalidCustomVariantNameError struct {
	Name string
}

func (e *InvalidCustomVariantNameError) Error() string {
	return fmt.Sprintf("invalid custom variant name %q: must be lowercase alphanumeric with internal hyphens", e.Name)
}

// InvalidSelectorError reports a custom variant selector fragment that does
// not lex as CSS selector text.
type InvalidSelectorError struct {
	Name     string
	Selector string
	Reason   string
}

func (e *InvalidSelectorError) Error() string {
	return fmt.Sprintf("invalid selector %q for variant %q: %s", e.Selector, e.Name, e.Reason)
}
