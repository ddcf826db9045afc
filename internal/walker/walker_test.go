package walker

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	return root
}

func collect(t *testing.T, root string, opts Options) []string {
	t.Helper()
	var seen []string
	err := Walk(root, opts, func(absPath, relPath string, size int64) bool {
		seen = append(seen, relPath)
		return true
	})
	require.NoError(t, err)
	return seen
}

func TestWalk_DefaultIgnores(t *testing.T) {
	root := buildTree(t, map[string]string{
		"main.go":               "package main\n",
		"node_modules/lib.js":   "x",
		".git/config":           "x",
		"__pycache__/a.pyc":     "x",
		"sub/tool.py":           "x = 1\n",
		"debug.log":             "noise",
		".DS_Store":             "x",
		"project-stats-run.log": "noise",
	})

	seen := collect(t, root, Options{})
	assert.ElementsMatch(t, []string{"main.go", "sub/tool.py"}, seen)
}

func TestWalk_NoIgnoreKeepsEverythingVisible(t *testing.T) {
	root := buildTree(t, map[string]string{
		"main.go":             "package main\n",
		"node_modules/lib.js": "x",
		"debug.log":           "noise",
		".hidden":             "x",
	})

	seen := collect(t, root, Options{NoIgnore: true})
	assert.ElementsMatch(t, []string{"main.go", "node_modules/lib.js", "debug.log"}, seen,
		"hidden entries stay filtered even with ignoring disabled")
}

func TestWalk_IncludeHidden(t *testing.T) {
	root := buildTree(t, map[string]string{
		"visible.txt":     "x",
		".hidden.txt":     "x",
		".config/app.yml": "x",
	})

	seen := collect(t, root, Options{IncludeHidden: true})
	assert.ElementsMatch(t, []string{"visible.txt", ".hidden.txt", ".config/app.yml"}, seen)
}

func TestWalk_SortedDeterministicOrder(t *testing.T) {
	root := buildTree(t, map[string]string{
		"b.txt":     "x",
		"a.txt":     "x",
		"sub/c.txt": "x",
	})

	seen := collect(t, root, Options{})
	assert.Equal(t, []string{"a.txt", "b.txt", "sub/c.txt"}, seen)
}

func TestWalk_UserExcludes(t *testing.T) {
	root := buildTree(t, map[string]string{
		"keep.go":          "x",
		"drop.gen.go":      "x",
		"assets/big.bin":   "x",
		"assets/small.txt": "x",
	})

	seen := collect(t, root, Options{Excludes: []string{"*.gen.go", "assets/big.bin"}})
	assert.ElementsMatch(t, []string{"keep.go", "assets/small.txt"}, seen)
}

func TestWalk_GitignoreStack(t *testing.T) {
	root := buildTree(t, map[string]string{
		".gitignore":     "*.tmp\n",
		"top.tmp":        "x",
		"keep.txt":       "x",
		"sub/.gitignore": "local.txt\n",
		"sub/local.txt":  "x",
		"sub/other.txt":  "x",
		"peer/local.txt": "x",
	})

	seen := collect(t, root, Options{UseGitignore: true, IncludeHidden: true})
	assert.ElementsMatch(t,
		[]string{".gitignore", "keep.txt", "sub/.gitignore", "sub/other.txt", "peer/local.txt"},
		seen,
		"sub's patterns must not leak into peer directories")
}

func TestWalk_GitignoreCommentsAndNegations(t *testing.T) {
	root := buildTree(t, map[string]string{
		".gitignore": "# comment\n\nbuild2/\n!keep.me\n",
		"build2/a":   "x",
		"keep.me":    "x",
	})

	seen := collect(t, root, Options{UseGitignore: true, IncludeHidden: true})
	assert.ElementsMatch(t, []string{".gitignore", "keep.me"}, seen)
}

func TestWalk_StopEndsEarly(t *testing.T) {
	root := buildTree(t, map[string]string{
		"a.txt": "x",
		"b.txt": "x",
		"c.txt": "x",
	})

	var seen []string
	err := Walk(root, Options{}, func(absPath, relPath string, size int64) bool {
		seen = append(seen, relPath)
		return len(seen) < 2
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt", "b.txt"}, seen)
}

func TestWalk_SizeReported(t *testing.T) {
	root := buildTree(t, map[string]string{"data.txt": "12345"})

	var got int64
	err := Walk(root, Options{}, func(absPath, relPath string, size int64) bool {
		got = size
		return true
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), got)
}

func TestWalk_MissingRoot(t *testing.T) {
	err := Walk(filepath.Join(t.TempDir(), "nope"), Options{}, func(string, string, int64) bool {
		return true
	})
	assert.Error(t, err)
}
