package variantcss

import (
	"sort"
	"strings"
)

// sortCanonical returns the variants in canonical rendering order: priority
// descending, ties broken by the token's left-to-right order (stable sort).
// This single ordering function drives selector text, media-query
// selection, and conflict reporting; it is pinned by the determinism test.
func sortCanonical(variants []ParsedVariant) []ParsedVariant {
	ordered := make([]ParsedVariant, len(variants))
	copy(ordered, variants)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].def.weight() > ordered[j].def.weight()
	})
	return ordered
}

// ComposeSelector renders a validated combination and base class into a CSS
// selector, the surfaced media query, and any shadowed media queries.
//
// The base class renders as ".{base}". Each variant's "&"-placeholder
// pattern is then applied in canonical order, substituting the selector
// built so far, so pseudo-class fragments attach after the base and
// ancestor fragments land in front of it:
//
//	sm:dark:hover:btn  →  ".dark .btn:hover" + "(min-width:640px)"
//
// Only the first non-empty media query in canonical order is surfaced;
// queries carried by later variants are reported as shadowed so callers can
// flag the limitation.
func ComposeSelector(variants []ParsedVariant, base string) (selector, mediaQuery string, shadowed []string) {
	ordered := sortCanonical(variants)

	selector = "." + base
	for _, v := range ordered {
		selector = applyPattern(v.def.Selector, selector)
	}

	for _, v := range ordered {
		if v.def.MediaQuery == "" {
			continue
		}
		if mediaQuery == "" {
			mediaQuery = v.def.MediaQuery
		} else {
			shadowed = append(shadowed, v.def.MediaQuery)
		}
	}

	return selector, mediaQuery, shadowed
}

// applyPattern substitutes the selector built so far into a variant
// pattern. A pattern without "&" is joined after the current selector,
// inserting a single space only when neither side already carries one.
func applyPattern(pattern, current string) string {
	if containsPlaceholder(pattern) {
		return strings.ReplaceAll(pattern, "&", current)
	}
	return joinFragments(current, pattern)
}

// joinFragments concatenates two selector fragments with at most one
// delimiting space between them.
func joinFragments(left, right string) string {
	if left == "" {
		return right
	}
	if right == "" {
		return left
	}
	if strings.HasSuffix(left, " ") || strings.HasPrefix(right, " ") ||
		strings.HasPrefix(right, ":") || strings.HasPrefix(right, ".") ||
		strings.HasPrefix(right, "[") {
		return left + right
	}
	return left + " " + right
}
