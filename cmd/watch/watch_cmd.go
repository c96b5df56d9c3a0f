// Package watch re-estimates the include search paths whenever the source
// tree changes on disk.
package watch

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/embedhq/incpath/estimator"
	"github.com/embedhq/incpath/resolve"
)

var rootPath string

// WatchCmd represents the watch command
var WatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-estimate include paths whenever the source tree changes.",
	Long: `Re-estimate include paths whenever the source tree changes.

Watches the tree for changes to C sources, headers and assembly files and
prints a fresh classification after each change. Stop with Ctrl+C.

Example:
  incpath watch -r ./middleware/lwip`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		if err := printEstimate(cmd, rootPath); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "\nWatching %s\n", rootPath)
		fmt.Fprintln(cmd.OutOrStdout(), "Press Ctrl+C to stop")

		return watchAndRerun(ctx, rootPath, func() {
			fmt.Fprintf(cmd.OutOrStdout(), "\n=== %s ===\n", time.Now().Format("15:04:05"))
			if err := printEstimate(cmd, rootPath); err != nil {
				log.Error("estimation failed", "err", err)
			}
		})
	},
}

func init() {
	WatchCmd.Flags().StringVarP(&rootPath, "root", "r", ".", "Source tree root folder")
}

func printEstimate(cmd *cobra.Command, root string) error {
	result, err := estimator.Run(root)
	if err != nil {
		return fmt.Errorf("failed to estimate include paths: %w", err)
	}
	printClassification(cmd, result.Classification)
	return nil
}

func printClassification(cmd *cobra.Command, classification resolve.Classification) {
	out := cmd.OutOrStdout()

	printSection(out, "Mandatory paths:", classification.Mandatory)
	printSection(out, "Optional paths:", classification.Optional)

	if len(classification.Ambiguous) > 0 {
		fmt.Fprintln(out, "\nAmbiguous paths:")
		fmt.Fprintln(out, "------------------------")
		for _, ambiguous := range classification.Ambiguous {
			fmt.Fprintf(out, "%s (alternatives: %v)\n", ambiguous.Path, ambiguous.Alternatives)
		}
	}
	printSection(out, "Non-existing includes:", classification.NonExisting)
}

func printSection(out io.Writer, title string, paths []string) {
	if len(paths) == 0 {
		return
	}
	fmt.Fprintln(out, "\n"+title)
	fmt.Fprintln(out, "------------------------")
	for _, path := range paths {
		fmt.Fprintln(out, path)
	}
}
