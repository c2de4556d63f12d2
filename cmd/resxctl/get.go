package main

import (
	"fmt"
	"os"

	"github.com/resxtools/resxkit/pkg/resx"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newGetCmd())
}

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <file> <key>",
		Short: "Get the value of one entry",
		Long: `The get command prints the value of a single entry.

Example:
  resxctl get Strings.resx WelcomeMessage`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(args[0], args[1])
		},
	}
}

func runGet(path, key string) error {
	doc, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to open document: %w", err)
	}
	value, err := resx.Lookup(doc, key)
	if err != nil {
		return fmt.Errorf("failed to get %q: %w", key, err)
	}
	if jsonOut {
		return printJSON(map[string]string{key: value})
	}
	fmt.Fprintln(os.Stdout, value)
	return nil
}
