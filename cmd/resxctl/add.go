package main

import (
	"fmt"

	"github.com/resxtools/resxkit/pkg/resx"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newAddCmd())
}

func newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <file> <key> [value]",
		Short: "Append a new entry",
		Long: `The add command appends a new entry at the end of the table, indented
to match existing entries. The value defaults to empty. Fails when the
key already exists.

Example:
  resxctl add Strings.resx NewKey
  resxctl add Strings.resx Greeting "Hello"`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			value := ""
			if len(args) == 3 {
				value = args[2]
			}
			return runAdd(args[0], args[1], value)
		},
	}
}

func runAdd(path, key, value string) error {
	printVerbose("Appending %q to %s\n", key, path)
	if err := resx.AddFileEntry(path, key, value); err != nil {
		return fmt.Errorf("failed to add key: %w", err)
	}
	printInfo("Added %q\n", key)
	return nil
}
