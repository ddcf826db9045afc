package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"log/slog"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/HatsuSumi/project-stats/internal/config"
	"github.com/HatsuSumi/project-stats/internal/gitinfo"
	"github.com/HatsuSumi/project-stats/internal/license"
	"github.com/HatsuSumi/project-stats/internal/progress"
	"github.com/HatsuSumi/project-stats/internal/report"
	"github.com/HatsuSumi/project-stats/internal/stats"
	"github.com/HatsuSumi/project-stats/internal/walker"
)

var settings *config.Settings

// scanFlags are the scan command's behavior and output switches. Values left
// at their zero value may still be enabled by the project config file.
type scanFlags struct {
	assets        bool
	detail        bool
	listFiles     bool
	noIgnore      bool
	includeHidden bool
	skipVendor    bool
	licenses      bool

	markdownPath string
	htmlPath     string
	pdfPath      string
	logPath      string

	format string
	output string
}

var scanOpts scanFlags

var scanCmd = &cobra.Command{
	Use:   "scan [path]",
	Short: "Scan a project directory and report code and asset statistics",
	Long: `Scan walks a project directory, classifies every file by type, strips
comments and blank lines from source files, and reports per-language file,
line, and character counts. With --assets it also groups non-code files into
asset categories with byte totals.

Scan options can also be set in a .project-stats.yml file at the project
root; command-line flags take precedence.

Examples:
  project-stats scan /path/to/project
  project-stats scan --assets --detail /path/to/project
  project-stats scan --exclude vendor,node_modules /path/to/project
  project-stats scan --exclude "**/__tests__/**" --exclude "*.log" /path/to/project
  project-stats scan --html report.html --pdf report.pdf /path/to/project
  project-stats scan -f json -o stats.json /path/to/project`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)

	// Initialize settings with defaults and environment variables
	settings = config.LoadSettings()

	verbose := settings.Verbose
	logLevel := settings.LogLevel.String()
	logFormat := settings.LogFormat
	logFile := settings.LogFile

	scanCmd.Flags().BoolVar(&scanOpts.assets, "assets", false, "Also classify and count non-code asset files")
	scanCmd.Flags().BoolVar(&scanOpts.detail, "detail", false, "Show per-extension and per-sub-kind breakdowns")
	scanCmd.Flags().BoolVar(&scanOpts.listFiles, "list-files", false, "List every scanned file relative to the project root")
	scanCmd.Flags().BoolVar(&scanOpts.noIgnore, "no-ignore", false, "Disable built-in exclusions and .gitignore handling")
	scanCmd.Flags().BoolVar(&scanOpts.includeHidden, "include-hidden", false, "Also scan dot-prefixed files and directories")
	scanCmd.Flags().BoolVar(&scanOpts.skipVendor, "skip-vendor", false, "Skip vendored and generated third-party paths")
	scanCmd.Flags().BoolVar(&scanOpts.licenses, "licenses", false, "Detect the project license")
	scanCmd.Flags().BoolVarP(&settings.Verbose, "verbose", "v", verbose, "Show progress while scanning")

	// Exclude patterns - support multiple flags or comma-separated values
	scanCmd.Flags().StringSliceVar(&settings.ExcludePatterns, "exclude", settings.ExcludePatterns, "Patterns to exclude (supports glob patterns, can be specified multiple times)")

	// Report files written in addition to the main output
	scanCmd.Flags().StringVar(&scanOpts.markdownPath, "markdown", "", "Write a Markdown report to this file")
	scanCmd.Flags().StringVar(&scanOpts.htmlPath, "html", "", "Write an HTML report with charts to this file")
	scanCmd.Flags().StringVar(&scanOpts.pdfPath, "pdf", "", "Write a PDF report to this file")
	scanCmd.Flags().StringVar(&scanOpts.logPath, "log", "", "Write the plain-text report to this file as well")

	setupOutputFlags(scanCmd, &scanOpts.format, &scanOpts.output)

	// Logging flags - use defaults from environment variables
	scanCmd.Flags().String("log-level", logLevel, "Log level: debug, info, warn, error")
	scanCmd.Flags().String("log-format", logFormat, "Log format: text or json")
	scanCmd.Flags().String("log-file", logFile, "Log file path (default: stderr)")
}

// configureLogging sets up logging based on command flags
func configureLogging(cmd *cobra.Command) *slog.Logger {
	logLevel, _ := cmd.Flags().GetString("log-level")
	logFormat, _ := cmd.Flags().GetString("log-format")
	logFile, _ := cmd.Flags().GetString("log-file")

	if level, err := config.ParseLogLevel(logLevel); err == nil {
		settings.LogLevel = level
	}
	settings.LogFormat = logFormat
	settings.LogFile = logFile

	logger := settings.ConfigureLogger()
	slog.SetDefault(logger)
	return logger
}

// resolveScanPath resolves and validates the scan path from args
func resolveScanPath(args []string, logger *slog.Logger) string {
	path := "."
	if len(args) > 0 {
		path = args[0]
	}

	path = strings.TrimSpace(path)
	absPath, err := filepath.Abs(path)
	if err != nil {
		logger.Error("Invalid path", "error", err)
		os.Exit(1)
	}

	fileInfo, err := os.Stat(absPath)
	if os.IsNotExist(err) {
		logger.Error("Path does not exist", "path", absPath)
		os.Exit(1)
	}
	if !fileInfo.IsDir() {
		logger.Error("Path is not a directory", "path", absPath)
		os.Exit(1)
	}
	return absPath
}

// applyConfigDefaults fills scan options from the project config file.
// A flag explicitly set on the command line always wins.
func applyConfigDefaults(cmd *cobra.Command, cfg *config.ScanConfig) {
	boolOpts := []struct {
		flag   string
		target *bool
		value  bool
	}{
		{"assets", &scanOpts.assets, cfg.Options.Assets},
		{"detail", &scanOpts.detail, cfg.Options.Detail},
		{"list-files", &scanOpts.listFiles, cfg.Options.ListFiles},
		{"no-ignore", &scanOpts.noIgnore, cfg.Options.NoIgnore},
		{"include-hidden", &scanOpts.includeHidden, cfg.Options.IncludeHidden},
		{"skip-vendor", &scanOpts.skipVendor, cfg.Options.SkipVendor},
		{"licenses", &scanOpts.licenses, cfg.Options.Licenses},
	}
	for _, opt := range boolOpts {
		if !cmd.Flags().Changed(opt.flag) && opt.value {
			*opt.target = opt.value
		}
	}

	if scanOpts.htmlPath == "" {
		scanOpts.htmlPath = cfg.Output.HTML
	}
	if scanOpts.pdfPath == "" {
		scanOpts.pdfPath = cfg.Output.PDF
	}
	if scanOpts.logPath == "" {
		scanOpts.logPath = cfg.Output.Log
	}
}

func runScan(cmd *cobra.Command, args []string) {
	logger := configureLogging(cmd)
	absPath := resolveScanPath(args, logger)

	// Handle special case: -o - means stdout
	if scanOpts.output == "-" {
		scanOpts.output = ""
	}

	fileCfg, err := config.LoadConfig(absPath)
	if err != nil {
		logger.Error("Invalid project config", "file", config.ConfigFileName, "error", err)
		os.Exit(1)
	}
	applyConfigDefaults(cmd, fileCfg)
	excludes := fileCfg.MergeExcludes(settings.ExcludePatterns)

	logger.Debug("Starting scan",
		"path", absPath,
		"exclude_patterns", excludes,
		"assets", scanOpts.assets,
		"detail", scanOpts.detail)

	reporter := progress.New(settings.Verbose, progress.NewSimpleHandler(os.Stderr))

	analyzer := stats.NewAnalyzer(absPath, stats.Options{
		CountAssets:  scanOpts.assets,
		Detail:       scanOpts.detail,
		NeedFileList: scanOpts.listFiles,
		Progress:     reporter.FileProcessing,
	})

	// Ctrl-C stops the walk after the current file; partial results are
	// still reported.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		<-sigCh
		analyzer.Stop()
	}()

	reporter.ScanStart(absPath, excludes)
	start := time.Now()

	err = walker.Walk(absPath, walker.Options{
		NoIgnore:      scanOpts.noIgnore,
		IncludeHidden: scanOpts.includeHidden,
		UseGitignore:  !scanOpts.noIgnore,
		SkipVendor:    scanOpts.skipVendor,
		Excludes:      excludes,
	}, func(abs, rel string, size int64) bool {
		analyzer.ProcessFile(abs, rel, size)
		return !analyzer.Stopped()
	})
	if err != nil {
		logger.Error("Failed to scan", "error", err)
		os.Exit(1)
	}

	res := analyzer.Result()
	reporter.ScanComplete(res.TotalFiles+res.AssetTotalFiles, time.Since(start))
	if analyzer.Stopped() {
		fmt.Fprintln(os.Stderr, "Scan interrupted, reporting partial results.")
	}

	out := &scanReport{
		res: res,
		git: gitinfo.Lookup(absPath),
		text: report.TextOptions{
			Detail:    scanOpts.detail,
			ListFiles: scanOpts.listFiles,
			Assets:    scanOpts.assets,
			Color:     scanOpts.output == "" && isatty.IsTerminal(os.Stdout.Fd()),
		},
	}
	if scanOpts.licenses {
		out.licenses = license.DetectInDirectory(absPath)
	}
	out.text.Git = out.git
	out.text.Licenses = out.licenses

	OutputToFile(out, scanOpts.format, scanOpts.output)
	writeSideReports(out, reporter, logger)
}

// writeSideReports writes the report files requested in addition to the
// main output. A failed report file aborts; earlier files stay written.
func writeSideReports(out *scanReport, reporter *progress.Progress, logger *slog.Logger) {
	write := func(path, kind string, fn func() error) {
		if path == "" {
			return
		}
		reporter.FileWriting(path)
		if err := fn(); err != nil {
			logger.Error("Failed to write report", "kind", kind, "path", path, "error", err)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "%s report written to %s\n", kind, path)
	}

	write(scanOpts.markdownPath, "Markdown", func() error {
		return os.WriteFile(scanOpts.markdownPath, []byte(report.RenderMarkdown(out.res)), 0644)
	})
	write(scanOpts.htmlPath, "HTML", func() error {
		return report.WriteHTML(out.res, out.git, scanOpts.htmlPath)
	})
	write(scanOpts.pdfPath, "PDF", func() error {
		return report.WritePDF(out.res, out.git, scanOpts.pdfPath)
	})
	write(scanOpts.logPath, "Text", func() error {
		var buf bytes.Buffer
		plain := out.text
		plain.Color = false
		if err := report.RenderText(&buf, out.res, plain); err != nil {
			return err
		}
		return os.WriteFile(scanOpts.logPath, buf.Bytes(), 0644)
	})
}

// scanReport adapts a scan result to the Outputter interface.
type scanReport struct {
	res      *stats.Result
	git      *gitinfo.Info
	licenses []license.Match
	text     report.TextOptions
}

// scanEnvelope is the JSON/YAML document for a scan.
type scanEnvelope struct {
	Result   *stats.Result   `json:"result" yaml:"result"`
	Git      *gitinfo.Info   `json:"git,omitempty" yaml:"git,omitempty"`
	Licenses []license.Match `json:"licenses,omitempty" yaml:"licenses,omitempty"`
}

func (s *scanReport) ToJSON() interface{} {
	return scanEnvelope{Result: s.res, Git: s.git, Licenses: s.licenses}
}

func (s *scanReport) ToText(w io.Writer) {
	_ = report.RenderText(w, s.res, s.text)
}
