package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/resxtools/resxkit/pkg/watch"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newWatchCmd())
}

func newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch <directory>",
		Short: "Report .resx changes in a directory until interrupted",
		Long: `The watch command subscribes to filesystem notifications for .resx
files directly inside a directory and prints each affected path. Only
one directory is watched at a time.

Example:
  resxctl watch ./src/Resources`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(args[0])
		},
	}
}

func runWatch(dir string) error {
	w := watch.New()
	defer w.Close()

	if err := w.Watch(dir, func(path string) {
		printInfo("changed: %s\n", path)
	}); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	printVerbose("Watching %s\n", dir)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	<-sig
	return nil
}
