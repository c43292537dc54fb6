package report

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCaretIndicator(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		column int
		want   string
	}{
		{name: "column one", line: "bogus:x", column: 1, want: "^"},
		{name: "mid line", line: "ok bogus:x", column: 4, want: "   ^"},
		{name: "tab prefix keeps tabs", line: "\tbogus:x", column: 2, want: "\t^"},
		{name: "zero column falls back", line: "bogus:x", column: 0, want: "^"},
		{name: "column past end", line: "ab", column: 10, want: "  ^"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, buildCaretIndicator(tt.line, tt.column))
		})
	}
}

func TestPluralizeCount(t *testing.T) {
	assert.Equal(t, "1 issue", pluralizeCount(1, "issue", "issues"))
	assert.Equal(t, "2 issues", pluralizeCount(2, "issue", "issues"))
	assert.Equal(t, "0 issues", pluralizeCount(0, "issue", "issues"))
}

func TestWriteJSON(t *testing.T) {
	issues := []Issue{
		{
			FromLinter:  Linter,
			Text:        `unknown variant "bogus"`,
			Severity:    SeverityError,
			SourceLines: []string{"bogus:x"},
			Pos:         IssuePos{Filename: "tokens.txt", Line: 3, Column: 1},
		},
		{
			FromLinter: Linter,
			Text:       "shadowed media query",
			Severity:   SeverityWarning,
			Pos:        IssuePos{Filename: "tokens.txt", Line: 7, Column: 1},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, issues, 12, 2))

	var output JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &output))

	assert.Equal(t, "1.0", output.Version)
	assert.Equal(t, 12, output.Summary.TokensChecked)
	assert.Equal(t, 2, output.Summary.FilesScanned)
	assert.Equal(t, 2, output.Summary.TotalIssues)
	assert.Equal(t, 1, output.Summary.Errors)
	assert.Equal(t, 1, output.Summary.Warnings)

	require.Len(t, output.Issues, 2)
	assert.Equal(t, "tokens.txt", output.Issues[0].File)
	assert.Equal(t, 3, output.Issues[0].Line)
	assert.Equal(t, "bogus:x", output.Issues[0].Source)
	assert.Empty(t, output.Issues[1].Source)
}

func TestPrintIssuesSortsByPosition(t *testing.T) {
	var buf bytes.Buffer
	reporter := &Reporter{w: &buf, printLinterName: true}

	reporter.PrintIssues([]Issue{
		{FromLinter: Linter, Text: "second", Pos: IssuePos{Filename: "b.txt", Line: 1, Column: 1}},
		{FromLinter: Linter, Text: "first", Pos: IssuePos{Filename: "a.txt", Line: 9, Column: 1}},
		{FromLinter: Linter, Text: "third", Pos: IssuePos{Filename: "b.txt", Line: 4, Column: 1}},
	})

	out := buf.String()
	first := bytes.Index([]byte(out), []byte("first"))
	second := bytes.Index([]byte(out), []byte("second"))
	third := bytes.Index([]byte(out), []byte("third"))
	require.GreaterOrEqual(t, first, 0)
	assert.Less(t, first, second)
	assert.Less(t, second, third)
	assert.Contains(t, out, "a.txt:9:1:")
	assert.Contains(t, out, "(variantcss)")
}

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	reporter := &Reporter{w: &buf}

	reporter.PrintSummary(nil)
	assert.Contains(t, buf.String(), "0 issues.")

	buf.Reset()
	reporter.PrintSummary([]Issue{
		{Severity: SeverityError},
		{Severity: SeverityWarning},
	})
	assert.Contains(t, buf.String(), "2 issues (1 error, 1 warning)")
}
