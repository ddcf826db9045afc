package report

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/HatsuSumi/project-stats/internal/assets"
	"github.com/HatsuSumi/project-stats/internal/gitinfo"
	"github.com/HatsuSumi/project-stats/internal/lang"
	"github.com/HatsuSumi/project-stats/internal/stats"
)

//go:embed templates/report.html
var htmlTemplate string

const jsonPlaceholder = "__JSON_DATA__"

// htmlData is the JSON payload injected into the dashboard template.
type htmlData struct {
	Root            string           `json:"root"`
	GitBranch       string           `json:"git_branch,omitempty"`
	GitCommit       string           `json:"git_commit,omitempty"`
	GitDirty        bool             `json:"git_dirty"`
	TotalFiles      int              `json:"total_files"`
	TotalCodeFiles  int              `json:"total_code_files"`
	TotalCodeLines  int              `json:"total_code_lines"`
	TotalCodeChars  int              `json:"total_code_chars"`
	TotalAssetFiles int              `json:"total_asset_files"`
	TotalAssetBytes int64            `json:"total_asset_bytes"`
	FileCounts      map[string]int   `json:"file_counts"`
	CodeStats       []htmlCodeStat   `json:"code_stats"`
	AssetStats      []htmlAssetStat  `json:"asset_stats"`
}

type htmlCodeStat struct {
	Name  string `json:"name"`
	Files int    `json:"files"`
	Lines int    `json:"lines"`
	Chars int    `json:"chars"`
}

type htmlAssetStat struct {
	Name  string `json:"name"`
	Files int    `json:"files"`
	Bytes int64  `json:"bytes"`
}

// RenderHTML produces the self-contained dashboard document for res.
func RenderHTML(res *stats.Result, git *gitinfo.Info) (string, error) {
	data := htmlData{
		Root:            res.Root,
		TotalFiles:      res.TotalFiles + res.AssetTotalFiles,
		TotalCodeFiles:  res.TotalCodeFiles(),
		TotalCodeLines:  res.TotalCodeLines(),
		TotalCodeChars:  res.TotalCodeChars(),
		TotalAssetFiles: res.AssetTotalFiles,
		TotalAssetBytes: res.AssetTotalBytes,
		FileCounts:      make(map[string]int, len(res.FileCounts)),
	}
	if git != nil {
		data.GitBranch = git.Branch
		data.GitCommit = git.Commit
		data.GitDirty = git.IsDirty
	}

	for _, row := range BuildFileCountRows(res) {
		data.FileCounts[lang.FileLabel(row.Tag)] = row.Count
	}
	for _, row := range BuildCodeRows(res) {
		data.CodeStats = append(data.CodeStats, htmlCodeStat{
			Name:  lang.CodeLabel(row.Tag),
			Files: row.Stat.Files,
			Lines: row.Stat.CodeLines,
			Chars: row.Stat.CodeChars,
		})
	}
	for _, row := range BuildAssetRows(res) {
		data.AssetStats = append(data.AssetStats, htmlAssetStat{
			Name:  assets.Label(row.Category),
			Files: row.Stat.Files,
			Bytes: row.Stat.Bytes,
		})
	}

	payload, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("encoding report data: %w", err)
	}

	return strings.Replace(htmlTemplate, jsonPlaceholder, string(payload), 1), nil
}

// WriteHTML renders the dashboard and writes it to path.
func WriteHTML(res *stats.Result, git *gitinfo.Info, path string) error {
	doc, err := RenderHTML(res, git)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		return fmt.Errorf("writing HTML report: %w", err)
	}
	return nil
}
