// Package report formats token-resolution diagnostics for terminals and
// tooling. Issues follow the golangci-lint shape so editors and CI
// integrations that already parse that format work unchanged.
package report

// Issue is a single diagnostic for one token occurrence.
type Issue struct {
	FromLinter  string   `json:"FromLinter"`  // "variantcss"
	Text        string   `json:"Text"`        // `unknown variant "bogus"`
	Severity    string   `json:"Severity"`    // "error" or "warning"
	SourceLines []string `json:"SourceLines"` // offending token lines
	Pos         IssuePos `json:"Pos"`
}

// IssuePos is the location of an issue inside a token-list file.
type IssuePos struct {
	Filename string `json:"Filename"`
	Line     int    `json:"Line"`
	Column   int    `json:"Column"` // 1-based
}

// Severity levels.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// Linter is the FromLinter tag on every issue this tool emits.
const Linter = "variantcss"
