package main

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

// tokenLine is one token occurrence inside a token-list file.
type tokenLine struct {
	Token  string
	File   string
	Line   int
	Column int    // 1-based start of the token
	Text   string // full line for diagnostics
}

var (
	// gitignore caching
	gitIgnoreCache *ignore.GitIgnore
	gitIgnoreOnce  sync.Once
)

// loadGitIgnore loads the .gitignore file once (thread-safe).
// Gracefully degrades if .gitignore doesn't exist.
func loadGitIgnore() *ignore.GitIgnore {
	gitIgnoreOnce.Do(func() {
		gi, err := ignore.CompileIgnoreFile(".gitignore")
		if err != nil {
			gitIgnoreCache = nil
			return
		}
		gitIgnoreCache = gi
	})
	return gitIgnoreCache
}

// shouldSkipFile reports whether a matched file is gitignored. Only
// relative paths are checked; absolute paths (like /tmp/...) are outside
// the project and not subject to its .gitignore.
func shouldSkipFile(path string) bool {
	if !filepath.IsAbs(path) {
		gi := loadGitIgnore()
		if gi != nil && gi.MatchesPath(path) {
			return true
		}
	}
	return false
}

// expandGlobPatterns expands glob patterns to deduplicated file paths,
// filtering directories and gitignored files.
func expandGlobPatterns(patterns []string) ([]string, error) {
	var allFiles []string
	seen := make(map[string]bool)

	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, err
		}

		for _, match := range matches {
			if seen[match] {
				continue
			}
			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}
			if !shouldSkipFile(match) {
				allFiles = append(allFiles, match)
				seen[match] = true
			}
		}
	}

	return allFiles, nil
}

// readTokenFile parses a token-list file: one token per line, blank lines
// and '#' comments skipped. Inline comments after a token are ignored.
func readTokenFile(path string) ([]tokenLine, error) {
	// #nosec G304 - path comes from user-supplied glob patterns
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var tokens []tokenLine
	scanner := bufio.NewScanner(file)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := scanner.Text()

		content := line
		if idx := strings.Index(content, "#"); idx >= 0 {
			content = content[:idx]
		}
		token := strings.TrimSpace(content)
		if token == "" {
			continue
		}

		tokens = append(tokens, tokenLine{
			Token:  token,
			File:   path,
			Line:   lineNum,
			Column: strings.Index(line, token) + 1,
			Text:   line,
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return tokens, nil
}
