package main

import (
	"fmt"

	"github.com/resxtools/resxkit/pkg/resx"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newInfoCmd())
}

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <file>",
		Short: "Show a document's format fingerprint",
		Long: `The info command reports the formatting conventions a document uses:
byte-order marker, line-ending convention, inferred indentation, and
entry count. These are the conventions every edit reproduces.

Example:
  resxctl info Strings.resx`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(args[0])
		},
	}
}

func runInfo(path string) error {
	fp, err := resx.SniffFile(path)
	if err != nil {
		return fmt.Errorf("failed to inspect document: %w", err)
	}
	entries, err := resx.EntriesFile(path)
	if err != nil {
		return fmt.Errorf("failed to read entries: %w", err)
	}
	if jsonOut {
		return printJSON(struct {
			resx.Fingerprint
			Entries int `json:"entries"`
		}{fp, len(entries)})
	}
	printInfo("File:         %s\n", path)
	printInfo("Marker:       %v\n", fp.HasMarker)
	printInfo("Line ending:  %s\n", endingName(fp.LineEnding))
	printInfo("Indent unit:  %q\n", fp.IndentUnit)
	printInfo("Entries:      %d\n", len(entries))
	return nil
}

func endingName(le string) string {
	if le == "\r\n" {
		return "crlf"
	}
	return "lf"
}
