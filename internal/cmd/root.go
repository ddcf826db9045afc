package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "project-stats",
	Short: "Code and asset statistics for project directories",
	Long: `project-stats walks a project directory and reports file-type counts,
lines of code and character counts per language (comments and blank lines
stripped), and optionally asset statistics grouped by category.

Reports can be printed to the terminal or written as JSON, YAML, Markdown,
HTML, or PDF.`,
	Version: "1.0.0",
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
