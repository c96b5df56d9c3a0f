// Package coverage reports how well a CMSIS pack description covers the
// sources and headers actually present in the pack.
package coverage

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	pdsc "github.com/embedhq/incpath/coverage"
)

var packPath string

// CoverageCmd represents the coverage command
var CoverageCmd = &cobra.Command{
	Use:   "coverage",
	Short: "Show *.pdsc description coverage for a CMSIS pack.",
	Long: `Show *.pdsc description coverage for a CMSIS pack.

Compares the pack's *.pdsc description against the source tree on disk:
which headers are visible through the declared include paths, and which
source files the description lists.

Example:
  incpath coverage -p ./components/ARM.mbedTLS.1.6.0`,
	RunE: func(cmd *cobra.Command, args []string) error {
		report, err := pdsc.Check(packPath)
		if err != nil {
			return fmt.Errorf("failed to check description coverage: %w", err)
		}
		printReport(cmd.OutOrStdout(), report)
		return nil
	},
}

func init() {
	CoverageCmd.Flags().StringVarP(&packPath, "pack", "p", ".", "Pack folder containing the *.pdsc file")
}

func printReport(out io.Writer, report *pdsc.Report) {
	fmt.Fprintf(out, "Pack: %s\n\n", report.PackName)

	fmt.Fprintf(out, "Number of all header files: %d\n", report.HeaderCount)
	fmt.Fprintf(out, "Header files visible via pdsc include paths: %d\n", len(report.VisibleHeaders))
	fmt.Fprintf(out, "Header files visibility: %3.1f %%\n\n", report.HeaderVisibility())

	fmt.Fprintf(out, "Number of all source files: %d\n", report.SourceCount)
	fmt.Fprintf(out, "Source files described in pdsc: %d\n", len(report.DescribedSources))
	fmt.Fprintf(out, "Source description coverage: %3.1f %%\n\n", report.SourceCoverage())

	fmt.Fprintf(out, "Combined headers + sources description coverage: %3.1f %%\n", report.CombinedCoverage())

	printList(out, "Include paths in *.pdsc:", report.IncludePaths)
	printList(out, "Headers not visible via pdsc include paths:", report.HiddenHeaders)
	printList(out, "Sources not described in pdsc:", report.UndescribedSources)
}

func printList(out io.Writer, title string, lines []string) {
	if len(lines) == 0 {
		return
	}
	fmt.Fprintf(out, "\n%s\n", title)
	fmt.Fprintln(out, "------------------------")
	for _, line := range lines {
		fmt.Fprintln(out, line)
	}
}
