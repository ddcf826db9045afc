package stats

import (
	"github.com/HatsuSumi/project-stats/internal/assets"
	"github.com/HatsuSumi/project-stats/internal/lang"
)

// CodeStat aggregates the code metrics of one language tag. Lines and chars
// are counted after comment stripping; blank lines are excluded from both.
type CodeStat struct {
	Files     int `json:"files" yaml:"files"`
	CodeLines int `json:"code_lines" yaml:"code_lines"`
	CodeChars int `json:"code_chars" yaml:"code_chars"`
}

// AssetStat aggregates one asset category. Bytes sums on-disk sizes; a file
// whose size cannot be read contributes 0.
type AssetStat struct {
	Files int   `json:"files" yaml:"files"`
	Bytes int64 `json:"bytes" yaml:"bytes"`
}

// Result is the snapshot produced by one scan. It is handed to the caller
// only after the scan finishes or is cancelled and must be treated as
// read-only from then on.
type Result struct {
	Root string `json:"root" yaml:"root"`

	// TotalFiles counts text files only; binary files never enter the
	// per-tag counts.
	TotalFiles int                    `json:"total_files" yaml:"total_files"`
	FileCounts map[lang.Tag]int       `json:"file_counts" yaml:"file_counts"`
	CodeStats  map[lang.Tag]*CodeStat `json:"code_stats" yaml:"code_stats"`

	AssetStats      map[assets.Category]*AssetStat `json:"asset_stats,omitempty" yaml:"asset_stats,omitempty"`
	AssetTotalFiles int                            `json:"asset_total_files" yaml:"asset_total_files"`
	AssetTotalBytes int64                          `json:"asset_total_bytes" yaml:"asset_total_bytes"`

	// Detail breakdowns, filled only when requested.
	TagExtCounts   map[lang.Tag]map[string]int        `json:"tag_ext_counts,omitempty" yaml:"tag_ext_counts,omitempty"`
	AssetSubCounts map[assets.Category]map[string]int `json:"asset_sub_counts,omitempty" yaml:"asset_sub_counts,omitempty"`

	// FileList holds the relative paths of every traversed file, sorted,
	// filled only when requested.
	FileList []string `json:"file_list,omitempty" yaml:"file_list,omitempty"`
}

// TotalCodeFiles sums the file counts of every code stat.
func (r *Result) TotalCodeFiles() int {
	n := 0
	for _, st := range r.CodeStats {
		n += st.Files
	}
	return n
}

// TotalCodeLines sums the stripped line counts of every code stat.
func (r *Result) TotalCodeLines() int {
	n := 0
	for _, st := range r.CodeStats {
		n += st.CodeLines
	}
	return n
}

// TotalCodeChars sums the stripped character counts of every code stat.
func (r *Result) TotalCodeChars() int {
	n := 0
	for _, st := range r.CodeStats {
		n += st.CodeChars
	}
	return n
}
