package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/HatsuSumi/project-stats/internal/assets"
	"github.com/HatsuSumi/project-stats/internal/gitinfo"
	"github.com/HatsuSumi/project-stats/internal/lang"
	"github.com/HatsuSumi/project-stats/internal/license"
	"github.com/HatsuSumi/project-stats/internal/stats"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	ruleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	totalStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("78"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))
)

// TextOptions selects the sections and styling of the text report.
type TextOptions struct {
	Detail    bool
	ListFiles bool
	Assets    bool

	// Color applies terminal styling; leave false when writing to a file or
	// a non-terminal stream.
	Color bool

	Git      *gitinfo.Info
	Licenses []license.Match
}

type textRenderer struct {
	w    io.Writer
	opts TextOptions
}

// RenderText writes the human-readable report for res to w.
func RenderText(w io.Writer, res *stats.Result, opts TextOptions) error {
	r := &textRenderer{w: w, opts: opts}
	r.projectInfo(res)
	r.fileTypes(res)
	r.styleBreakdown(res)
	r.fileList(res)
	r.assetStats(res)
	r.codeStats(res)
	return nil
}

func (r *textRenderer) styled(style lipgloss.Style, text string) string {
	if !r.opts.Color {
		return text
	}
	return style.Render(text)
}

func (r *textRenderer) emit(line string) {
	fmt.Fprintln(r.w, line)
}

func (r *textRenderer) blank() {
	fmt.Fprintln(r.w)
}

func (r *textRenderer) rule(ch string) {
	r.emit(r.styled(ruleStyle, strings.Repeat(ch, 80)))
}

func (r *textRenderer) header(title string) {
	r.rule("=")
	r.emit(r.styled(headerStyle, title))
	r.rule("=")
}

func (r *textRenderer) projectInfo(res *stats.Result) {
	r.emit(r.styled(dimStyle, "Project: "+res.Root))
	if g := r.opts.Git; g != nil {
		line := fmt.Sprintf("Git: %s @ %s", g.Branch, g.Commit)
		if g.IsDirty {
			line += " (dirty)"
		}
		r.emit(r.styled(dimStyle, line))
	}
	for _, m := range r.opts.Licenses {
		r.emit(r.styled(dimStyle,
			fmt.Sprintf("License: %s (confidence %.2f, %s)", m.License, m.Confidence, m.File)))
	}
	r.blank()
}

func (r *textRenderer) fileTypes(res *stats.Result) {
	r.emit(r.styled(headerStyle, "File type statistics:"))
	r.rule("-")

	for _, row := range BuildFileCountRows(res) {
		r.emit(fmt.Sprintf("   %s: %d", lang.FileLabel(row.Tag), row.Count))
	}
	r.emit(fmt.Sprintf("   Total text files: %d", res.TotalFiles))
}

// styleBreakdown merges the stylesheet dialects into one per-extension view,
// the only extension table busy enough to be worth printing.
func (r *textRenderer) styleBreakdown(res *stats.Result) {
	if !r.opts.Detail {
		return
	}

	merged := make(map[string]int)
	total := 0
	for _, tag := range []lang.Tag{lang.CSS, lang.SCSS, lang.Less} {
		for ext, count := range res.TagExtCounts[tag] {
			merged[ext] += count
			total += count
		}
	}
	if total == 0 {
		return
	}

	r.blank()
	r.emit(r.styled(headerStyle, "Extension breakdown:"))
	r.rule("-")
	r.emit(fmt.Sprintf("   Stylesheets (CSS/SCSS/Less): %d", total))
	for _, sub := range sortedSubCounts(merged) {
		r.emit(fmt.Sprintf("      %s: %d", sub.Key, sub.Count))
	}
}

func (r *textRenderer) fileList(res *stats.Result) {
	if !r.opts.ListFiles || len(res.FileList) == 0 {
		return
	}

	r.blank()
	r.header("--- File list (relative to project root)")
	r.emit("Root: " + res.Root)
	r.emit(fmt.Sprintf("Files: %d", len(res.FileList)))
	r.rule("-")
	for _, path := range res.FileList {
		r.emit(path)
	}
}

func (r *textRenderer) assetStats(res *stats.Result) {
	if !r.opts.Assets {
		return
	}

	r.blank()
	r.header("[+] Asset / non-code file statistics")
	r.blank()

	for _, row := range BuildAssetRows(res) {
		r.emit(fmt.Sprintf("   %-16s: %6d files, %12s",
			assets.Label(row.Category), row.Stat.Files, FmtBytes(row.Stat.Bytes)))
		if r.opts.Detail {
			for _, sub := range sortedSubCounts(res.AssetSubCounts[row.Category]) {
				r.emit(fmt.Sprintf("      %s: %d", sub.Key, sub.Count))
			}
		}
	}

	r.blank()
	r.emit(fmt.Sprintf("   [+] Total asset files: %d, total size %s",
		res.AssetTotalFiles, FmtBytes(res.AssetTotalBytes)))
	r.emit(fmt.Sprintf("   [+] Total project files (incl. assets): %d",
		res.TotalFiles+res.AssetTotalFiles))
}

func (r *textRenderer) codeStats(res *stats.Result) {
	r.blank()
	r.header("--- Code statistics (excluding blank lines and comments)")
	r.blank()

	rows := BuildCodeRows(res)
	for _, row := range rows {
		r.emit(fmt.Sprintf("   %-10s: %4d files, %8s lines (%s), %10s chars (%s)",
			lang.CodeLabel(row.Tag), row.Stat.Files,
			FmtInt(row.Stat.CodeLines), FmtPct(row.LinePct),
			FmtInt(row.Stat.CodeChars), FmtPct(row.CharPct)))
	}

	r.blank()
	r.emit(r.styled(totalStyle, fmt.Sprintf("   [+] Total: %d files, %s lines of code, %s chars",
		res.TotalCodeFiles(), FmtInt(res.TotalCodeLines()), FmtInt(res.TotalCodeChars()))))
}
