package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/yacobolo/variantcss"
	"github.com/yacobolo/variantcss/internal/report"
)

var checkCmd = &cobra.Command{
	Use:   "check <glob>...",
	Short: "Check token-list files for unresolvable tokens",
	Long: `Read token-list files (one token per line, '#' comments) matched by
the given glob patterns and resolve every token. Unresolvable tokens are
reported as errors in golangci-lint format; combinations whose extra media
queries are shadowed are reported as warnings.`,
	Args: cobra.MinimumNArgs(1),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(_ *cobra.Command, args []string) error {
		return runCheck(args)
	},
}

func init() {
	f := checkCmd.Flags()
	f.Bool("strict", false, "Exit 1 on any issue, warnings included (CI mode)")
	f.String("format", "text", "Output format: text|json")
	f.Bool("print-lines", true, "Show source lines with issues")
	f.Bool("print-linter-name", true, "Show (variantcss) suffix on issues")
}

func runCheck(patterns []string) error {
	registry, err := buildRegistry()
	if err != nil {
		return err
	}
	resolver := variantcss.NewResolver(registry)

	files, err := expandGlobPatterns(patterns)
	if err != nil {
		return fmt.Errorf("expanding patterns: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("no files match %s", strings.Join(patterns, ", "))
	}

	var issues []report.Issue
	tokensChecked := 0
	for _, path := range files {
		lines, err := readTokenFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		for _, line := range lines {
			tokensChecked++
			issues = append(issues, checkToken(resolver, line)...)
		}
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)
	if !quiet {
		format := getStringWithFallback("format", "check.format", "text")
		if format == "json" {
			if err := report.WriteJSON(os.Stdout, issues, tokensChecked, len(files)); err != nil {
				return err
			}
		} else {
			reporter := report.NewReporter(os.Stdout, report.Options{
				UseColors:       getBoolWithFallback("color", "color", false),
				PrintLines:      getBoolWithFallback("print-lines", "check.print-lines", true),
				PrintLinterName: getBoolWithFallback("print-linter-name", "check.print-linter-name", true),
			})
			reporter.PrintIssues(issues)
			reporter.PrintSummary(issues)
		}
	}

	// Exit code gating: strict fails on any issue, default only on errors.
	strict := getBoolWithFallback("strict", "check.strict", false)
	if strict && len(issues) > 0 {
		os.Exit(1)
	}
	for _, issue := range issues {
		if issue.Severity == report.SeverityError {
			os.Exit(1)
		}
	}

	return nil
}

// checkToken resolves one token occurrence and converts failures and
// shadowed media queries into issues.
func checkToken(resolver *variantcss.Resolver, line tokenLine) []report.Issue {
	result := resolver.Resolve(line.Token)

	pos := report.IssuePos{
		Filename: line.File,
		Line:     line.Line,
		Column:   line.Column,
	}

	if !result.Success {
		return []report.Issue{{
			FromLinter:  report.Linter,
			Text:        result.Combination.ErrorMessage,
			Severity:    report.SeverityError,
			SourceLines: []string{line.Text},
			Pos:         pos,
		}}
	}

	var issues []report.Issue
	if len(result.ShadowedMediaQueries) > 0 {
		issues = append(issues, report.Issue{
			FromLinter: report.Linter,
			Text: fmt.Sprintf("token %q surfaces only %q; shadowed media queries: %s",
				line.Token, result.MediaQuery, strings.Join(result.ShadowedMediaQueries, ", ")),
			Severity:    report.SeverityWarning,
			SourceLines: []string{line.Text},
			Pos:         pos,
		})
	}
	return issues
}
