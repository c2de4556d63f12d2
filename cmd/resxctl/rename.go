package main

import (
	"fmt"

	"github.com/resxtools/resxkit/pkg/resx"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newRenameCmd())
}

func newRenameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rename <file> <old-key> <new-key>",
		Short: "Rename an entry key",
		Long: `The rename command changes the name attribute of one entry. The
entry's value and every other byte of the file stay untouched.

Example:
  resxctl rename Strings.resx OldName NewName`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRename(args[0], args[1], args[2])
		},
	}
}

func runRename(path, oldKey, newKey string) error {
	printVerbose("Renaming %q to %q in %s\n", oldKey, newKey, path)
	if err := resx.RenameFileKey(path, oldKey, newKey); err != nil {
		return fmt.Errorf("failed to rename key: %w", err)
	}
	printInfo("Renamed %q to %q\n", oldKey, newKey)
	return nil
}
