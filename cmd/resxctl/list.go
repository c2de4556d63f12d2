package main

import (
	"fmt"

	"github.com/resxtools/resxkit/pkg/resx"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newListCmd())
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <file>",
		Short: "List entries in document order",
		Long: `The list command prints every entry of a resource table in document
order, one per line, with its ordinal index.

Example:
  resxctl list Strings.resx
  resxctl list Strings.de-DE.resx --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(args[0])
		},
	}
}

func runList(path string) error {
	printVerbose("Reading document: %s\n", path)
	entries, err := resx.EntriesFile(path)
	if err != nil {
		return fmt.Errorf("failed to read document: %w", err)
	}
	if jsonOut {
		return printJSON(entries)
	}
	for i, e := range entries {
		printInfo("%4d  %s = %s\n", i, e.Key, e.Value)
	}
	return nil
}
