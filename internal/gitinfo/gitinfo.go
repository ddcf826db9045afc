// Package gitinfo reads repository metadata for the scanned tree so reports
// can record which revision the statistics describe.
package gitinfo

import (
	"log/slog"
	"regexp"

	"github.com/go-git/go-git/v5"
)

// Info contains git repository information
type Info struct {
	Branch    string `json:"branch,omitempty" yaml:"branch,omitempty"`
	Commit    string `json:"commit,omitempty" yaml:"commit,omitempty"`
	IsDirty   bool   `json:"is_dirty" yaml:"is_dirty"`
	RemoteURL string `json:"remote_url,omitempty" yaml:"remote_url,omitempty"`
}

// Lookup retrieves repository information for the given path. It returns nil
// when the path is not inside a git repository; a scan never fails because
// git metadata is unavailable.
func Lookup(path string) *Info {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		slog.Debug("no git repository", "path", path, "error", err)
		return nil
	}

	info := &Info{}

	head, err := repo.Head()
	if err == nil {
		info.Commit = head.Hash().String()[:7]
		if head.Name().IsBranch() {
			info.Branch = head.Name().Short()
		} else {
			info.Branch = "HEAD" // detached
		}
	}

	// Status is the expensive part; skip silently when it fails.
	if worktree, err := repo.Worktree(); err == nil {
		if status, err := worktree.Status(); err == nil {
			info.IsDirty = !status.IsClean()
		}
	}

	if cfg, err := repo.Config(); err == nil {
		if origin := cfg.Remotes["origin"]; origin != nil && len(origin.URLs) > 0 {
			info.RemoteURL = sanitizeRemoteURL(origin.URLs[0])
		}
	}

	return info
}

var credentialsRe = regexp.MustCompile(`^(https?://)[^/@]+@`)

// sanitizeRemoteURL removes embedded credentials (tokens, user:password)
// from HTTP(S) remote URLs so they never end up in a report.
func sanitizeRemoteURL(url string) string {
	return credentialsRe.ReplaceAllString(url, "$1")
}
