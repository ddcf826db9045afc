package stats

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HatsuSumi/project-stats/internal/assets"
	"github.com/HatsuSumi/project-stats/internal/lang"
)

func writeFile(t *testing.T, dir, name string, data []byte) (absPath string, size int64) {
	t.Helper()
	absPath = filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(absPath, data, 0644))
	return absPath, int64(len(data))
}

func feedFile(t *testing.T, a *Analyzer, dir, name string, data []byte) {
	t.Helper()
	abs, size := writeFile(t, dir, name, data)
	a.ProcessFile(abs, name, size)
}

func TestAnalyzer_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	a := NewAnalyzer(dir, Options{})

	feedFile(t, a, dir, "main.js", []byte(
		"// header comment\n"+
			"const url = \"http://x // not a comment\";\n"+
			"let n = 1;\n"))
	feedFile(t, a, dir, "tool.py", []byte(
		"\"\"\"Module docstring.\"\"\"\n"+
			"x = 1  # inline comment\n"))
	feedFile(t, a, dir, "settings.ini", []byte(
		"; generated, do not edit\n"+
			"[core]\n"+
			"key=value\n"))

	res := a.Result()

	require.Contains(t, res.CodeStats, lang.JavaScript)
	require.Contains(t, res.CodeStats, lang.Python)
	require.Contains(t, res.CodeStats, lang.INI)

	assert.Equal(t, 2, res.CodeStats[lang.JavaScript].CodeLines,
		"comment line contributes zero, string with // survives")
	assert.Equal(t, 1, res.CodeStats[lang.Python].CodeLines,
		"docstring and inline comment contribute zero")
	assert.Equal(t, 2, res.CodeStats[lang.INI].CodeLines,
		"semicolon line contributes zero")

	assert.Equal(t, 5, res.TotalCodeLines())
	assert.Equal(t, 3, res.TotalCodeFiles())
	assert.Equal(t, 3, res.TotalFiles)
}

func TestAnalyzer_BinaryFileExcludedFromCodeStats(t *testing.T) {
	dir := t.TempDir()
	a := NewAnalyzer(dir, Options{})

	feedFile(t, a, dir, "data.txt", []byte("text\x00with a NUL\n"))
	feedFile(t, a, dir, "plain.txt", []byte("just text\n"))

	res := a.Result()
	assert.Equal(t, 1, res.TotalFiles, "NUL-bearing file must not count as text")
}

func TestAnalyzer_AssetAccounting(t *testing.T) {
	dir := t.TempDir()
	a := NewAnalyzer(dir, Options{CountAssets: true, Detail: true})

	png := []byte{0x89, 'P', 'N', 'G', 0, 0, 0, 0}
	feedFile(t, a, dir, "logo.png", png)
	feedFile(t, a, dir, "scene.fbx.bak", []byte{0x00, 0x01})
	feedFile(t, a, dir, "main.go", []byte("package main\n"))

	res := a.Result()

	require.Contains(t, res.AssetStats, assets.Image)
	assert.Equal(t, 1, res.AssetStats[assets.Image].Files)
	assert.Equal(t, int64(len(png)), res.AssetStats[assets.Image].Bytes)

	require.Contains(t, res.AssetStats, assets.Backup)
	assert.Equal(t, 1, res.AssetSubCounts[assets.Backup][".fbx.bak"],
		"backup sub-kind keeps the original extension")

	assert.NotContains(t, res.AssetStats, assets.Model3D,
		"backup wins over the 3-D model category")

	assert.Equal(t, 2, res.AssetTotalFiles, "code files are not assets")
	assert.Equal(t, int64(len(png)+2), res.AssetTotalBytes)
}

func TestAnalyzer_DetailExtensionCounts(t *testing.T) {
	dir := t.TempDir()
	a := NewAnalyzer(dir, Options{Detail: true})

	feedFile(t, a, dir, "a.js", []byte("let a = 1;\n"))
	feedFile(t, a, dir, "b.mjs", []byte("let b = 2;\n"))

	res := a.Result()
	require.Contains(t, res.TagExtCounts, lang.JavaScript)
	assert.Equal(t, 1, res.TagExtCounts[lang.JavaScript][".js"])
	assert.Equal(t, 1, res.TagExtCounts[lang.JavaScript][".mjs"])
}

func TestAnalyzer_FileListSorted(t *testing.T) {
	dir := t.TempDir()
	a := NewAnalyzer(dir, Options{NeedFileList: true})

	feedFile(t, a, dir, "zeta.txt", []byte("z\n"))
	feedFile(t, a, dir, "alpha.txt", []byte("a\n"))

	res := a.Result()
	assert.Equal(t, []string{"alpha.txt", "zeta.txt"}, res.FileList)
}

func TestAnalyzer_StopReturnsPartialResult(t *testing.T) {
	dir := t.TempDir()
	a := NewAnalyzer(dir, Options{})

	feedFile(t, a, dir, "one.py", []byte("x = 1\n"))
	a.Stop()
	assert.True(t, a.Stopped())
	feedFile(t, a, dir, "two.py", []byte("y = 2\nz = 3\n"))

	res := a.Result()
	assert.Equal(t, 1, res.CodeStats[lang.Python].Files,
		"files after Stop are ignored")
	assert.Equal(t, 1, res.TotalCodeLines())
}

func TestAnalyzer_ProgressCallback(t *testing.T) {
	dir := t.TempDir()
	var seen []string
	a := NewAnalyzer(dir, Options{Progress: func(name string) {
		seen = append(seen, name)
	}})

	feedFile(t, a, dir, "a.py", []byte("x = 1\n"))
	feedFile(t, a, dir, "b.py", []byte("y = 2\n"))

	assert.Equal(t, []string{"a.py", "b.py"}, seen)
}

func TestAnalyzer_UnreadableFileSkippedSilently(t *testing.T) {
	dir := t.TempDir()
	a := NewAnalyzer(dir, Options{})

	// A path that does not exist sniffs as binary and never reaches the
	// code statistics.
	a.ProcessFile(filepath.Join(dir, "missing.py"), "missing.py", 0)

	res := a.Result()
	assert.Equal(t, 0, res.TotalFiles)
	assert.Empty(t, res.CodeStats)
}
