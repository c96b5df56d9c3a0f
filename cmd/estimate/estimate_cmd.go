package estimate

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/embedhq/incpath/cmd/estimate/formatters"
	"github.com/embedhq/incpath/estimator"
	"github.com/embedhq/incpath/pathutil"
	"github.com/embedhq/incpath/resolve"
)

var rootPath string
var outputFormat string
var outputDir string
var copyToClipboard bool
var quiet bool

// EstimateCmd represents the estimate command
var EstimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Estimate the include search paths a source tree needs to build.",
	Long: `Estimate the include search paths a source tree needs to build.

Scans the tree for #include "..." directives, maps each one to the header
files present on disk, and classifies the derived search paths as mandatory,
optional, ambiguous or non-existing.

Examples:
  incpath estimate -r ./middleware/lwip
  incpath estimate -r . -f yaml
  incpath estimate -r . -f json -o reports`,
	RunE: func(cmd *cobra.Command, args []string) error {
		started := time.Now()

		result, err := estimator.Run(rootPath)
		if err != nil {
			return fmt.Errorf("failed to estimate include paths: %w", err)
		}

		if !quiet {
			printClassification(cmd, result.Classification)
		}

		formatter, err := formatters.NewFormatter(outputFormat)
		if err != nil {
			return err
		}
		report := formatters.BuildReport(result)
		output, err := formatter.Format(report)
		if err != nil {
			return fmt.Errorf("failed to format report: %w", err)
		}

		if outputDir != "" {
			reportPath, err := writeReport(output)
			if err != nil {
				return err
			}
			log.Info("report written", "path", reportPath)
		} else if quiet || outputFormat != formatters.OutputFormatText.String() {
			fmt.Fprintln(cmd.OutOrStdout(), output)
		}

		if copyToClipboard {
			if err := clipboard.WriteAll(output); err != nil {
				return fmt.Errorf("failed to copy to clipboard: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Report copied to your clipboard.")
		}

		log.Debug("estimation finished",
			"files", len(result.Tree.Files),
			"occurrences", len(result.Occurrences),
			"elapsed", time.Since(started))
		return nil
	},
}

func init() {
	EstimateCmd.Flags().StringVarP(&rootPath, "root", "r", ".", "Source tree root folder")
	EstimateCmd.Flags().StringVarP(&outputFormat, "format", "f", formatters.OutputFormatText.String(),
		fmt.Sprintf("Report format (%s, %s, %s)", formatters.OutputFormatText, formatters.OutputFormatJSON, formatters.OutputFormatYAML))
	EstimateCmd.Flags().StringVarP(&outputDir, "output", "o", "", "Directory to write the report file into (default: print to stdout)")
	EstimateCmd.Flags().BoolVarP(&copyToClipboard, "clipboard", "b", false, "Automatically copy the report to clipboard")
	EstimateCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Suppress the console classification summary")
}

// printClassification prints the classified paths to the console in the
// traditional section layout.
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

// writeReport writes the formatted report into the output directory using
// the traditional timestamped file name.
func writeReport(output string) (string, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}
	target := pathutil.Base(pathutil.Normalize(rootPath))
	if target == "." || target == "" {
		target = "tree"
	}
	stamp := time.Now().Format("2006-01-02_15-04-05")
	format := formatters.OutputFormat(outputFormat)
	name := fmt.Sprintf("%s_%s_include_report%s", stamp, target, format.Extension())
	reportPath := filepath.Join(outputDir, name)
	if err := os.WriteFile(reportPath, []byte(output), 0o644); err != nil {
		return "", fmt.Errorf("failed to write report: %w", err)
	}
	return reportPath, nil
}
