package main

import (
	"fmt"

	"github.com/resxtools/resxkit/pkg/resx"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newSetCmd())
}

func newSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <file> <key> <value>",
		Short: "Set the value of one entry",
		Long: `The set command rewrites the value of an existing entry in place.
Everything else in the file stays byte-identical. Setting a key that
does not exist is a no-op; use add or insert to create entries.

Example:
  resxctl set Strings.resx WelcomeMessage "Hello there"`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSet(args[0], args[1], args[2])
		},
	}
}

func runSet(path, key, value string) error {
	printVerbose("Updating %q in %s\n", key, path)
	if err := resx.UpdateFileValue(path, key, value); err != nil {
		return fmt.Errorf("failed to update value: %w", err)
	}
	printInfo("Updated %q\n", key)
	return nil
}
