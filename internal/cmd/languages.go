package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/HatsuSumi/project-stats/internal/lang"
)

var languagesFormat string

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List recognized file types and their extensions",
	Long: `Languages lists every file type the scanner recognizes by extension,
together with the extensions mapped to it and whether its files contribute
to code statistics.`,
	Run: runLanguages,
}

func init() {
	rootCmd.AddCommand(languagesCmd)
	setupFormatFlag(languagesCmd, &languagesFormat)
}

// languageList adapts the language table to the Outputter interface.
type languageList struct {
	descriptors []lang.Descriptor
}

func (l *languageList) ToJSON() interface{} {
	return map[string]interface{}{
		"languages": l.descriptors,
		"count":     len(l.descriptors),
	}
}

func (l *languageList) ToText(w io.Writer) {
	fmt.Fprintf(w, "%-14s %-10s %s\n", "TYPE", "CODE STATS", "EXTENSIONS")
	for _, d := range l.descriptors {
		code := "no"
		if d.CodeStats {
			code = "yes"
		}
		fmt.Fprintf(w, "%-14s %-10s %s\n", d.Tag, code, strings.Join(d.Extensions, " "))
	}
	fmt.Fprintf(w, "\n%d file types\n", len(l.descriptors))
}

func runLanguages(cmd *cobra.Command, args []string) {
	Output(&languageList{descriptors: lang.Descriptors()}, languagesFormat)
}
