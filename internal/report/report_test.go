package report

import (
	"bytes"
	"encoding/json"
	"os"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HatsuSumi/project-stats/internal/assets"
	"github.com/HatsuSumi/project-stats/internal/gitinfo"
	"github.com/HatsuSumi/project-stats/internal/lang"
	"github.com/HatsuSumi/project-stats/internal/stats"
)

func sampleResult() *stats.Result {
	return &stats.Result{
		Root:       "/project",
		TotalFiles: 5,
		FileCounts: map[lang.Tag]int{
			lang.JavaScript: 3,
			lang.Python:     2,
		},
		CodeStats: map[lang.Tag]*stats.CodeStat{
			lang.JavaScript: {Files: 3, CodeLines: 300, CodeChars: 9000},
			lang.Python:     {Files: 2, CodeLines: 100, CodeChars: 3000},
		},
		AssetStats: map[assets.Category]*stats.AssetStat{
			assets.Image: {Files: 4, Bytes: 2048},
			assets.Audio: {Files: 1, Bytes: 4096},
		},
		AssetTotalFiles: 5,
		AssetTotalBytes: 6144,
	}
}

func TestBuildCodeRows(t *testing.T) {
	rows := BuildCodeRows(sampleResult())
	require.Len(t, rows, 2)

	assert.Equal(t, lang.JavaScript, rows[0].Tag, "sorted by lines descending")
	assert.Equal(t, lang.Python, rows[1].Tag)
	assert.Equal(t, 100.0, rows[0].LinePct+rows[1].LinePct)
	assert.Equal(t, 75.0, rows[0].LinePct)
	assert.Equal(t, 75.0, rows[0].CharPct)
}

func TestBuildAssetRows(t *testing.T) {
	rows := BuildAssetRows(sampleResult())
	require.Len(t, rows, 2)
	assert.Equal(t, assets.Audio, rows[0].Category, "sorted by bytes descending")
	assert.Equal(t, assets.Image, rows[1].Category)
}

func TestBuildFileCountRows(t *testing.T) {
	rows := BuildFileCountRows(sampleResult())
	require.Len(t, rows, 2)
	assert.Equal(t, lang.JavaScript, rows[0].Tag)
	assert.Equal(t, 3, rows[0].Count)
}

func TestRenderText(t *testing.T) {
	var buf bytes.Buffer
	err := RenderText(&buf, sampleResult(), TextOptions{Assets: true})
	require.NoError(t, err)
	out := buf.String()

	assert.Contains(t, out, "File type statistics:")
	assert.Contains(t, out, "JavaScript: 3")
	assert.Contains(t, out, "Total text files: 5")
	assert.Contains(t, out, "Code statistics")
	assert.Contains(t, out, "300 lines")
	assert.Contains(t, out, "( 75.0%)")
	assert.Contains(t, out, "[+] Total: 5 files, 400 lines of code, 12,000 chars")
	assert.Contains(t, out, "Total asset files: 5, total size 6.00 KB")
	assert.NotContains(t, out, "\x1b[", "no ANSI codes without color")
}

func TestRenderText_GitAndLicenses(t *testing.T) {
	var buf bytes.Buffer
	opts := TextOptions{
		Git: &gitinfo.Info{Branch: "main", Commit: "abc1234", IsDirty: true},
	}
	require.NoError(t, RenderText(&buf, sampleResult(), opts))

	assert.Contains(t, buf.String(), "Git: main @ abc1234 (dirty)")
}

func TestRenderText_FileList(t *testing.T) {
	res := sampleResult()
	res.FileList = []string{"a.js", "sub/b.py"}

	var buf bytes.Buffer
	require.NoError(t, RenderText(&buf, res, TextOptions{ListFiles: true}))

	assert.Contains(t, buf.String(), "File list (relative to project root)")
	assert.Contains(t, buf.String(), "sub/b.py")
}

func TestRenderMarkdown(t *testing.T) {
	out := RenderMarkdown(sampleResult())

	assert.True(t, strings.HasPrefix(out, "## 📊 Project size"))
	assert.Contains(t, out, "- **Total files**: 10")
	assert.Contains(t, out, "- **Total code lines**: 400")
	assert.Contains(t, out, "  - JavaScript: 300 lines (75.0%)")
	assert.Contains(t, out, "### Assets")
	assert.Contains(t, out, "- **Total asset size**: 6.00 KB")
}

func TestRenderMarkdown_NoAssetSectionWithoutAssets(t *testing.T) {
	res := sampleResult()
	res.AssetStats = nil
	res.AssetTotalFiles = 0
	res.AssetTotalBytes = 0

	out := RenderMarkdown(res)
	assert.NotContains(t, out, "### Assets")
}

func TestRenderHTML(t *testing.T) {
	doc, err := RenderHTML(sampleResult(), &gitinfo.Info{Branch: "main", Commit: "abc1234"})
	require.NoError(t, err)

	assert.Contains(t, doc, "<!DOCTYPE html>")
	assert.NotContains(t, doc, "__JSON_DATA__", "placeholder must be replaced")

	// The injected payload must be valid JSON.
	m := regexp.MustCompile(`const DATA = (\{.*\});`).FindStringSubmatch(doc)
	require.NotNil(t, m, "embedded data assignment not found")

	var data map[string]any
	require.NoError(t, json.Unmarshal([]byte(m[1]), &data))
	assert.Equal(t, "/project", data["root"])
	assert.Equal(t, float64(10), data["total_files"])
	assert.Equal(t, "main", data["git_branch"])
}

func TestWritePDF(t *testing.T) {
	path := t.TempDir() + "/report.pdf"
	require.NoError(t, WritePDF(sampleResult(), nil, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Greater(t, len(data), 5)
	assert.Equal(t, "%PDF-", string(data[:5]))
}
