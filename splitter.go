package variantcss

import "strings"

// SplitToken splits a compound token into its variant names and base class.
//
// A ':' separates segments only at bracket/paren nesting depth zero, so
// arbitrary values like "bg-[10px:20px]" survive intact. The final segment
// is always the base class; everything before it is a variant name in
// left-to-right order. A token with no top-level colon yields a nil variant
// list and the whole token as base class.
//
// Empty segments are hard errors: a leading or doubled colon returns
// ErrEmptySegment, a trailing colon or empty token returns ErrEmptyBaseClass.
func SplitToken(token string) (variants []string, base string, err error) {
	if strings.IndexByte(token, 0) >= 0 {
		return nil, "", ErrInvalidToken
	}

	var segments []string
	depth := 0
	start := 0

	for i := 0; i < len(token); i++ {
		switch token[i] {
		case '(', '[':
			depth++
		case ')', ']':
			// Tolerate unbalanced closers; depth never goes negative so a
			// stray ')' cannot turn later colons into non-separators.
			if depth > 0 {
				depth--
			}
		case ':':
			if depth == 0 {
				segments = append(segments, token[start:i])
				start = i + 1
			}
		}
	}
	segments = append(segments, token[start:])

	base = segments[len(segments)-1]
	variants = segments[:len(segments)-1]

	for _, v := range variants {
		if v == "" {
			return nil, "", ErrEmptySegment
		}
	}
	if base == "" {
		return nil, "", ErrEmptyBaseClass
	}
	if len(variants) == 0 {
		variants = nil
	}

	return variants, base, nil
}
