package main

import (
	"fmt"

	"github.com/resxtools/resxkit/pkg/resx"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newRemoveCmd())
}

func newRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <file> <key>...",
		Short: "Remove entries",
		Long: `The remove command deletes whole entry elements along with the
whitespace separating them from their neighbors, and reports the
ordinal index each entry occupied so it can be re-inserted at the same
position later.

Example:
  resxctl remove Strings.resx Obsolete
  resxctl remove Strings.resx KeyA KeyB KeyC`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRemove(args[0], args[1:])
		},
	}
}

func runRemove(path string, keys []string) error {
	printVerbose("Removing %d key(s) from %s\n", len(keys), path)
	ordinals, err := resx.RemoveFileEntries(path, keys)
	if err != nil {
		return fmt.Errorf("failed to remove keys: %w", err)
	}
	if jsonOut {
		return printJSON(ordinals)
	}
	for _, k := range keys {
		if ord, ok := ordinals[k]; ok {
			printInfo("Removed %q (was at index %d)\n", k, ord)
		} else {
			printInfo("Key %q not present, nothing removed\n", k)
		}
	}
	return nil
}
