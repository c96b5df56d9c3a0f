package cmd

import (
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	coveragecmd "github.com/embedhq/incpath/cmd/coverage"
	"github.com/embedhq/incpath/cmd/estimate"
	"github.com/embedhq/incpath/cmd/graphcmd"
	"github.com/embedhq/incpath/cmd/watch"
)

// version is set via build-time ldflags
var version = "dev"

// buildDate is set via build-time ldflags
var buildDate = "unknown"

// commit is set via build-time ldflags
var commit = "unknown"

// verbose enables debug logging
var verbose bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "incpath",
	Short: "Estimate C/C++ include search paths from raw source trees",
	Long: `Incpath scans a source tree for #include "..." directives and estimates
the include search paths (-I flags) a build of that tree needs, classifying
each path as mandatory, optional, ambiguous or non-existing. No build files
are required, only the sources themselves.

Use 'incpath --help' to see all available commands, or 'incpath <command> --help'
for detailed information about a specific command.`,
	Version: version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			charmlog.SetLevel(charmlog.DebugLevel)
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	// Register subcommands
	rootCmd.AddCommand(estimate.EstimateCmd)
	rootCmd.AddCommand(graphcmd.GraphCmd)
	rootCmd.AddCommand(coveragecmd.CoverageCmd)
	rootCmd.AddCommand(watch.WatchCmd)

	// Initialize annotations for version template
	if rootCmd.Annotations == nil {
		rootCmd.Annotations = make(map[string]string)
	}
	rootCmd.Annotations["buildDate"] = buildDate
	rootCmd.Annotations["commit"] = commit

	// Update version field dynamically (in case it was set via ldflags)
	rootCmd.Version = version

	// Customize version template to show additional build info
	rootCmd.SetVersionTemplate(`{{with .Name}}{{printf "%s " .}}{{end}}{{printf "version %s" .Version}}
Build date: {{printf "%s" (index .Annotations "buildDate")}}
Commit: {{printf "%s" (index .Annotations "commit")}}
`)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}
