package walker

import (
	"bufio"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// ignoreStack layers glob pattern sets as the walk descends: one pseudo set
// for caller-supplied excludes at the bottom, then one set per .gitignore
// found on the way down. Patterns are popped when their directory is left.
type ignoreStack struct {
	stack [][]string
}

func (s *ignoreStack) push(patterns []string) bool {
	if len(patterns) == 0 {
		return false
	}
	s.stack = append(s.stack, patterns)
	return true
}

func (s *ignoreStack) pop() {
	if len(s.stack) > 0 {
		s.stack = s.stack[:len(s.stack)-1]
	}
}

// match reports whether any pattern on the stack matches the entry, tried
// against both its root-relative path and its bare name.
func (s *ignoreStack) match(name, relPath string) bool {
	for _, patterns := range s.stack {
		for _, pattern := range patterns {
			if ok, err := doublestar.Match(pattern, relPath); err == nil && ok {
				return true
			}
			if ok, err := doublestar.Match(pattern, name); err == nil && ok {
				return true
			}
		}
	}
	return false
}

// loadGitignorePatterns parses a .gitignore file into glob patterns. Blank
// lines and comments are skipped, trailing slashes trimmed. Negation
// patterns are skipped; supporting them needs full git semantics and the
// walk errs on the side of ignoring less.
func loadGitignorePatterns(path string) []string {
	file, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer file.Close()

	var patterns []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "!") {
			continue
		}
		patterns = append(patterns, strings.TrimSuffix(line, "/"))
	}
	if err := scanner.Err(); err != nil {
		slog.Debug("error reading .gitignore", "path", path, "error", err)
	}
	return patterns
}

// pushGitignore loads dir's .gitignore onto the stack if present, reporting
// whether a set was pushed so the caller can pop it on the way out.
func (s *ignoreStack) pushGitignore(dir string) bool {
	path := filepath.Join(dir, ".gitignore")
	if _, err := os.Stat(path); err != nil {
		return false
	}
	patterns := loadGitignorePatterns(path)
	if s.push(patterns) {
		slog.Debug("loaded .gitignore", "path", path, "patterns", len(patterns))
		return true
	}
	return false
}
