// Package report renders a scan Result as terminal text, Markdown, a
// self-contained HTML dashboard or a PDF summary. All renderers share the
// same sorted row views so every format shows the same ordering.
package report

import (
	"sort"

	"github.com/HatsuSumi/project-stats/internal/assets"
	"github.com/HatsuSumi/project-stats/internal/lang"
	"github.com/HatsuSumi/project-stats/internal/stats"
)

// CodeRow is one language line of the code table, with its share of the
// total lines and characters already normalized to sum to 100.0.
type CodeRow struct {
	Tag     lang.Tag
	Stat    *stats.CodeStat
	LinePct float64
	CharPct float64
}

// BuildCodeRows sorts code stats by line count descending, tag ascending,
// and attaches normalized percentages.
func BuildCodeRows(res *stats.Result) []CodeRow {
	rows := make([]CodeRow, 0, len(res.CodeStats))
	for tag, st := range res.CodeStats {
		rows = append(rows, CodeRow{Tag: tag, Stat: st})
	}
	sort.Slice(rows, func(a, b int) bool {
		if rows[a].Stat.CodeLines != rows[b].Stat.CodeLines {
			return rows[a].Stat.CodeLines > rows[b].Stat.CodeLines
		}
		return rows[a].Tag < rows[b].Tag
	})

	lineValues := make([]float64, len(rows))
	charValues := make([]float64, len(rows))
	for i, row := range rows {
		lineValues[i] = float64(row.Stat.CodeLines)
		charValues[i] = float64(row.Stat.CodeChars)
	}
	linePcts := stats.NormalizePercentages(lineValues, float64(res.TotalCodeLines()))
	charPcts := stats.NormalizePercentages(charValues, float64(res.TotalCodeChars()))
	for i := range rows {
		rows[i].LinePct = linePcts[i]
		rows[i].CharPct = charPcts[i]
	}

	return rows
}

// FileCountRow is one language line of the file-type table.
type FileCountRow struct {
	Tag   lang.Tag
	Count int
}

// BuildFileCountRows sorts file counts by count descending, tag ascending,
// dropping empty entries.
func BuildFileCountRows(res *stats.Result) []FileCountRow {
	rows := make([]FileCountRow, 0, len(res.FileCounts))
	for tag, count := range res.FileCounts {
		if count <= 0 {
			continue
		}
		rows = append(rows, FileCountRow{Tag: tag, Count: count})
	}
	sort.Slice(rows, func(a, b int) bool {
		if rows[a].Count != rows[b].Count {
			return rows[a].Count > rows[b].Count
		}
		return rows[a].Tag < rows[b].Tag
	})
	return rows
}

// AssetRow is one category line of the asset table.
type AssetRow struct {
	Category assets.Category
	Stat     *stats.AssetStat
}

// BuildAssetRows sorts asset stats by byte size descending, category
// ascending.
func BuildAssetRows(res *stats.Result) []AssetRow {
	rows := make([]AssetRow, 0, len(res.AssetStats))
	for category, st := range res.AssetStats {
		rows = append(rows, AssetRow{Category: category, Stat: st})
	}
	sort.Slice(rows, func(a, b int) bool {
		if rows[a].Stat.Bytes != rows[b].Stat.Bytes {
			return rows[a].Stat.Bytes > rows[b].Stat.Bytes
		}
		return rows[a].Category < rows[b].Category
	})
	return rows
}

// sortedSubCounts flattens a sub-kind count map, count descending, key
// ascending.
type subCount struct {
	Key   string
	Count int
}

func sortedSubCounts(m map[string]int) []subCount {
	rows := make([]subCount, 0, len(m))
	for key, count := range m {
		rows = append(rows, subCount{Key: key, Count: count})
	}
	sort.Slice(rows, func(a, b int) bool {
		if rows[a].Count != rows[b].Count {
			return rows[a].Count > rows[b].Count
		}
		return rows[a].Key < rows[b].Key
	})
	return rows
}
