// Package stats implements the scanning engine: per-file classification,
// comment stripping, counting and aggregation into a Result.
package stats

import (
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync/atomic"

	"github.com/HatsuSumi/project-stats/internal/assets"
	"github.com/HatsuSumi/project-stats/internal/lang"
	"github.com/HatsuSumi/project-stats/internal/sniff"
	"github.com/HatsuSumi/project-stats/internal/strip"
)

// Options configures one Analyzer.
type Options struct {
	// CountAssets also classifies every file through the asset chain and
	// accumulates per-category counts and byte sizes.
	CountAssets bool

	// Detail accumulates per-extension and per-sub-kind breakdowns.
	Detail bool

	// NeedFileList records the relative path of every traversed file.
	NeedFileList bool

	// Progress, when set, is called with the base name of each file before
	// it is processed. It runs inline on the scanning goroutine and must be
	// cheap and non-blocking.
	Progress func(name string)
}

// Analyzer accumulates statistics file by file. It is single-threaded: one
// file is fully processed before the next. The only cross-goroutine entry
// point is Stop, which flips an atomic flag polled once per file.
type Analyzer struct {
	opts    Options
	res     *Result
	files   []string
	stopped atomic.Bool
}

// NewAnalyzer returns an Analyzer that aggregates into a fresh Result rooted
// at root.
func NewAnalyzer(root string, opts Options) *Analyzer {
	return &Analyzer{
		opts: opts,
		res: &Result{
			Root:       root,
			FileCounts: make(map[lang.Tag]int),
			CodeStats:  make(map[lang.Tag]*CodeStat),
		},
	}
}

// Stop requests cooperative cancellation. The scan finishes the file in
// flight, then returns the partial result accumulated so far. Safe to call
// from any goroutine, any number of times.
func (a *Analyzer) Stop() {
	a.stopped.Store(true)
}

// Stopped reports whether Stop has been called. Callers driving the scan
// check it before handing the Analyzer each file.
func (a *Analyzer) Stopped() bool {
	return a.stopped.Load()
}

// ProcessFile folds one file into the running statistics. absPath is used
// for I/O, relPath (slash-separated) for the file list, size for asset byte
// accounting. Unreadable or undecodable files are skipped from the affected
// statistic without failing the scan.
func (a *Analyzer) ProcessFile(absPath, relPath string, size int64) {
	if a.stopped.Load() {
		return
	}

	if a.opts.Progress != nil {
		a.opts.Progress(filepath.Base(absPath))
	}

	if a.opts.NeedFileList {
		a.files = append(a.files, filepath.ToSlash(relPath))
	}

	if !sniff.IsBinary(absPath) {
		a.processText(absPath)
	}

	if a.opts.CountAssets {
		a.processAsset(absPath, size)
	}
}

func (a *Analyzer) processText(absPath string) {
	tag := lang.Detect(absPath)
	a.res.FileCounts[tag]++
	a.res.TotalFiles++

	if a.opts.Detail {
		if a.res.TagExtCounts == nil {
			a.res.TagExtCounts = make(map[lang.Tag]map[string]int)
		}
		byExt := a.res.TagExtCounts[tag]
		if byExt == nil {
			byExt = make(map[string]int)
			a.res.TagExtCounts[tag] = byExt
		}
		byExt[extOrNoExt(absPath)]++
	}

	if !lang.CodeEligible(tag) {
		return
	}

	data, err := os.ReadFile(absPath)
	if err != nil {
		slog.Debug("skipping unreadable file", "path", absPath, "error", err)
		return
	}

	stripped := strip.ForTag(tag, DecodeText(data))
	lines, chars := CountCode(stripped)

	st := a.res.CodeStats[tag]
	if st == nil {
		st = &CodeStat{}
		a.res.CodeStats[tag] = st
	}
	st.Files++
	st.CodeLines += lines
	st.CodeChars += chars
}

func (a *Analyzer) processAsset(absPath string, size int64) {
	kind, ok := assets.Detect(absPath)
	if !ok {
		return
	}
	if size < 0 {
		size = 0
	}

	if a.res.AssetStats == nil {
		a.res.AssetStats = make(map[assets.Category]*AssetStat)
	}
	st := a.res.AssetStats[kind.Category]
	if st == nil {
		st = &AssetStat{}
		a.res.AssetStats[kind.Category] = st
	}
	st.Files++
	st.Bytes += size
	a.res.AssetTotalFiles++
	a.res.AssetTotalBytes += size

	if a.opts.Detail {
		if a.res.AssetSubCounts == nil {
			a.res.AssetSubCounts = make(map[assets.Category]map[string]int)
		}
		bySub := a.res.AssetSubCounts[kind.Category]
		if bySub == nil {
			bySub = make(map[string]int)
			a.res.AssetSubCounts[kind.Category] = bySub
		}
		bySub[kind.Sub]++
	}
}

// Result finalizes and returns the accumulated snapshot. Call it once, after
// the last ProcessFile.
func (a *Analyzer) Result() *Result {
	if a.opts.NeedFileList {
		sort.Strings(a.files)
		a.res.FileList = a.files
	}
	return a.res
}

func extOrNoExt(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return assets.NoExtension
	}
	return ext
}
