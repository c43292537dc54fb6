package variantcss

import (
	"errors"
	"io"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// validateSelectorFragment lexes a custom-variant selector fragment and
// rejects text that could break the composed rule: declaration braces,
// semicolons, at-rules, and anything the CSS lexer chokes on. The "&"
// placeholder is substituted with a class selector before lexing so the
// fragment is checked in the shape it will actually be emitted.
func validateSelectorFragment(fragment string) error {
	if strings.TrimSpace(fragment) == "" {
		return errors.New("selector fragment is empty")
	}

	probe := strings.ReplaceAll(fragment, "&", ".x")
	lexer := css.NewLexer(parse.NewInputString(probe))

	for {
		tt, _ := lexer.Next()
		switch tt {
		case css.ErrorToken:
			if err := lexer.Err(); err != nil && err != io.EOF {
				return err
			}
			return nil
		case css.LeftBraceToken, css.RightBraceToken:
			return errors.New("selector fragment must not contain braces")
		case css.SemicolonToken:
			return errors.New("selector fragment must not contain semicolons")
		case css.AtKeywordToken:
			return errors.New("selector fragment must not contain at-rules")
		}
	}
}

// containsPlaceholder reports whether a selector fragment uses the "&"
// placeholder.
func containsPlaceholder(selector string) bool {
	return strings.Contains(selector, "&")
}
