// Package walker enumerates the files of a directory tree in deterministic
// order, applying the ignore rules the statistics engine expects: built-in
// directory and file exclusions, hidden-entry filtering, caller excludes and
// stacked .gitignore patterns.
package walker

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// defaultIgnoredDirs are never descended into unless ignoring is disabled.
var defaultIgnoredDirs = map[string]bool{
	".git":         true,
	".hg":          true,
	".svn":         true,
	".idea":        true,
	".vscode":      true,
	".cursor":      true,
	"node_modules": true,
	"dist":         true,
	"build":        true,
	"out":          true,
	".next":        true,
	".nuxt":        true,
	".cache":       true,
	"coverage":     true,
	"__pycache__":  true,
	".venv":        true,
	"venv":         true,
}

// defaultIgnoredFiles are skipped by lowercased exact name.
var defaultIgnoredFiles = map[string]bool{
	".ds_store": true,
}

// defaultIgnoredPatterns skip the tool's own generated reports and logs so a
// rescan does not count its previous output.
var defaultIgnoredPatterns = []string{
	"project-stats-report*.html",
	"project-stats*.log",
	"*_stats_report*.html",
	"*.log",
}

// Options controls one walk.
type Options struct {
	// NoIgnore disables the built-in directory, file and pattern exclusions
	// and .gitignore handling. Hidden-entry filtering still applies.
	NoIgnore bool

	// IncludeHidden also visits dot-prefixed files and directories.
	IncludeHidden bool

	// UseGitignore layers .gitignore patterns found during descent on top of
	// the built-in rules. Ineffective when NoIgnore is set.
	UseGitignore bool

	// SkipVendor skips paths go-enry recognizes as vendored or generated
	// third-party material.
	SkipVendor bool

	// Excludes are caller-supplied glob patterns matched against each
	// entry's relative path and bare name.
	Excludes []string
}

// VisitFunc receives one file per call. relPath is slash-separated and
// relative to the walk root. Returning false stops the walk.
type VisitFunc func(absPath, relPath string, size int64) bool

// Walk enumerates the files under root in sorted order, depth-first. The
// root itself must be a readable directory; unreadable subdirectories are
// logged and skipped.
func Walk(root string, opts Options, visit VisitFunc) error {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return err
	}
	if _, err := os.Stat(absRoot); err != nil {
		return err
	}

	ignore := &ignoreStack{}
	if !opts.NoIgnore {
		ignore.push(opts.Excludes)
	}

	walkDir(absRoot, "", opts, ignore, visit)
	return nil
}

// walkDir returns false once visit asked to stop.
func walkDir(dir, rel string, opts Options, ignore *ignoreStack, visit VisitFunc) bool {
	useGitignore := opts.UseGitignore && !opts.NoIgnore
	if useGitignore {
		if ignore.pushGitignore(dir) {
			defer ignore.pop()
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		slog.Debug("skipping unreadable directory", "path", dir, "error", err)
		return true
	}

	for _, entry := range entries {
		name := entry.Name()
		entryRel := name
		if rel != "" {
			entryRel = rel + "/" + name
		}

		if !opts.IncludeHidden && strings.HasPrefix(name, ".") {
			continue
		}

		if entry.IsDir() {
			if !opts.NoIgnore {
				if defaultIgnoredDirs[name] {
					continue
				}
				if ignore.match(name, entryRel) {
					continue
				}
			}
			if opts.SkipVendor && enry.IsVendor(entryRel+"/") {
				continue
			}
			if !walkDir(filepath.Join(dir, name), entryRel, opts, ignore, visit) {
				return false
			}
			continue
		}

		if !opts.NoIgnore {
			if shouldIgnoreFile(name) {
				continue
			}
			if ignore.match(name, entryRel) {
				continue
			}
		}
		if opts.SkipVendor && enry.IsVendor(entryRel) {
			continue
		}

		var size int64
		if info, err := entry.Info(); err == nil {
			size = info.Size()
		}

		if !visit(filepath.Join(dir, name), entryRel, size) {
			return false
		}
	}

	return true
}

// shouldIgnoreFile applies the built-in name and pattern exclusions to a
// lowercased file name.
func shouldIgnoreFile(name string) bool {
	low := strings.ToLower(name)
	if defaultIgnoredFiles[low] {
		return true
	}
	for _, pattern := range defaultIgnoredPatterns {
		if ok, _ := filepath.Match(pattern, low); ok {
			return true
		}
	}
	return false
}
