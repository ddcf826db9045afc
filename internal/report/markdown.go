package report

import (
	"fmt"
	"strings"

	"github.com/HatsuSumi/project-stats/internal/assets"
	"github.com/HatsuSumi/project-stats/internal/lang"
	"github.com/HatsuSumi/project-stats/internal/stats"
)

// RenderMarkdown produces the statistics as a Markdown fragment suitable for
// pasting into a README.
func RenderMarkdown(res *stats.Result) string {
	var b strings.Builder

	b.WriteString("## 📊 Project size\n\n")
	b.WriteString("### File statistics\n\n")

	totalAll := res.TotalFiles + res.AssetTotalFiles
	fmt.Fprintf(&b, "- **Total files**: %s\n", FmtInt(totalAll))
	for _, row := range BuildFileCountRows(res) {
		fmt.Fprintf(&b, "  - %s: %d\n", lang.FileLabel(row.Tag), row.Count)
	}

	b.WriteString("\n### Code size\n\n")

	rows := BuildCodeRows(res)
	fmt.Fprintf(&b, "- **Total code lines**: %s (excluding blank lines and comments)\n",
		FmtInt(res.TotalCodeLines()))
	for _, row := range rows {
		fmt.Fprintf(&b, "  - %s: %s lines (%s)\n",
			lang.CodeLabel(row.Tag), FmtInt(row.Stat.CodeLines), strings.TrimSpace(FmtPct(row.LinePct)))
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "- **Total characters**: %s (excluding comments)\n", FmtInt(res.TotalCodeChars()))
	for _, row := range rows {
		fmt.Fprintf(&b, "  - %s: %s chars (%s)\n",
			lang.CodeLabel(row.Tag), FmtInt(row.Stat.CodeChars), strings.TrimSpace(FmtPct(row.CharPct)))
	}

	if res.AssetTotalFiles > 0 {
		b.WriteString("\n### Assets\n\n")
		fmt.Fprintf(&b, "- **Total asset files**: %d\n", res.AssetTotalFiles)
		fmt.Fprintf(&b, "- **Total asset size**: %s\n", FmtBytes(res.AssetTotalBytes))
		for _, row := range BuildAssetRows(res) {
			fmt.Fprintf(&b, "  - %s: %d files, %s\n",
				assets.Label(row.Category), row.Stat.Files, FmtBytes(row.Stat.Bytes))
		}
	}

	return b.String()
}
