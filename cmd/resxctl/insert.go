package main

import (
	"fmt"
	"strconv"

	"github.com/resxtools/resxkit/pkg/resx"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newInsertCmd())
}

func newInsertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "insert <file> <key> <value> <index>",
		Short: "Insert a new entry at an ordinal position",
		Long: `The insert command creates a new entry at the given 0-based position
among existing entries. An index past the end appends. Fails when the
key already exists.

Example:
  resxctl insert Strings.resx Greeting "Hello" 0`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := strconv.Atoi(args[3])
			if err != nil {
				return fmt.Errorf("invalid index %q: %w", args[3], err)
			}
			return runInsert(args[0], args[1], args[2], index)
		},
	}
}

func runInsert(path, key, value string, index int) error {
	printVerbose("Inserting %q at index %d in %s\n", key, index, path)
	if err := resx.InsertFileEntry(path, key, value, index); err != nil {
		return fmt.Errorf("failed to insert key: %w", err)
	}
	printInfo("Inserted %q at index %d\n", key, index)
	return nil
}
