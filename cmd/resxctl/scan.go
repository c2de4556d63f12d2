package main

import (
	"fmt"

	"github.com/resxtools/resxkit/pkg/bundle"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newScanCmd())
}

func newScanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scan <directory>",
		Short: "Group .resx files into locale bundles",
		Long: `The scan command walks a directory tree and groups .resx files into
locale-variant bundles by filename suffix: Strings.resx and
Strings.de-DE.resx form one group with locales "default" and "de-DE".

Example:
  resxctl scan ./src --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(args[0])
		},
	}
}

func runScan(root string) error {
	printVerbose("Scanning %s\n", root)
	groups, err := bundle.Scan(root)
	if err != nil {
		return fmt.Errorf("failed to scan directory: %w", err)
	}
	if jsonOut {
		return printJSON(groups)
	}
	for _, g := range groups {
		printInfo("%s (%s)\n", g.Name, g.Directory)
		for _, f := range g.Files {
			printInfo("  %-12s %s\n", f.Locale, f.Path)
		}
	}
	return nil
}
