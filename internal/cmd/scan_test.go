package cmd

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HatsuSumi/project-stats/internal/config"
	"github.com/HatsuSumi/project-stats/internal/lang"
	"github.com/HatsuSumi/project-stats/internal/report"
	"github.com/HatsuSumi/project-stats/internal/stats"
)

func resetScanOpts(t *testing.T) {
	t.Helper()
	saved := scanOpts
	t.Cleanup(func() { scanOpts = saved })
	scanOpts = scanFlags{}
}

func TestApplyConfigDefaults_FillsUnsetFlags(t *testing.T) {
	resetScanOpts(t)

	cfg := &config.ScanConfig{
		Options: config.ScanOptions{Assets: true, Detail: true},
		Output:  config.ScanOutput{HTML: "report.html", Log: "scan.log"},
	}
	applyConfigDefaults(scanCmd, cfg)

	assert.True(t, scanOpts.assets)
	assert.True(t, scanOpts.detail)
	assert.False(t, scanOpts.listFiles)
	assert.Equal(t, "report.html", scanOpts.htmlPath)
	assert.Equal(t, "", scanOpts.pdfPath)
	assert.Equal(t, "scan.log", scanOpts.logPath)
}

func TestApplyConfigDefaults_FlagTakesPrecedence(t *testing.T) {
	resetScanOpts(t)

	require.NoError(t, scanCmd.Flags().Set("assets", "false"))
	t.Cleanup(func() {
		scanCmd.Flags().Lookup("assets").Changed = false
	})

	cfg := &config.ScanConfig{Options: config.ScanOptions{Assets: true}}
	applyConfigDefaults(scanCmd, cfg)

	assert.False(t, scanOpts.assets)
}

func TestApplyConfigDefaults_KeepsExplicitOutputPaths(t *testing.T) {
	resetScanOpts(t)
	scanOpts.htmlPath = "mine.html"

	cfg := &config.ScanConfig{Output: config.ScanOutput{HTML: "theirs.html"}}
	applyConfigDefaults(scanCmd, cfg)

	assert.Equal(t, "mine.html", scanOpts.htmlPath)
}

func sampleScanReport() *scanReport {
	res := &stats.Result{
		Root:       "/proj",
		TotalFiles: 2,
		FileCounts: map[lang.Tag]int{lang.Go: 2},
		CodeStats: map[lang.Tag]*stats.CodeStat{
			lang.Go: {Files: 2, CodeLines: 10, CodeChars: 200},
		},
	}
	return &scanReport{res: res, text: report.TextOptions{}}
}

func TestScanReport_ToJSON(t *testing.T) {
	data, err := json.Marshal(sampleScanReport().ToJSON())
	require.NoError(t, err)

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &doc))

	result, ok := doc["result"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(2), result["total_files"])
	_, hasGit := doc["git"]
	assert.False(t, hasGit, "empty git info should be omitted")
}

func TestScanReport_ToText(t *testing.T) {
	var buf bytes.Buffer
	sampleScanReport().ToText(&buf)
	out := buf.String()

	assert.Contains(t, out, "Project: /proj")
	assert.Contains(t, out, "Total text files: 2")
	assert.Contains(t, out, "lines of code")
}
