// Package graphcmd renders the file-to-header include graph of a source
// tree.
package graphcmd

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/embedhq/incpath/estimator"
	"github.com/embedhq/incpath/includegraph"
)

var rootPath string
var outputFormat string

// GraphCmd represents the graph command
var GraphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Render the include dependency graph of a source tree.",
	Long: `Render the include dependency graph of a source tree.

Every resolved quoted include contributes an edge from the including file to
the header it resolves to; ambiguous includes contribute one edge per
candidate. External includes are left out.

Examples:
  incpath graph -r ./middleware/lwip
  incpath graph -r . -f mermaid`,
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := estimator.Run(rootPath)
		if err != nil {
			return fmt.Errorf("failed to analyze source tree: %w", err)
		}

		g, err := includegraph.Build(result.Outcomes)
		if err != nil {
			return fmt.Errorf("failed to build include graph: %w", err)
		}

		output, err := formatGraph(g, outputFormat)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), output)
		return nil
	},
}

func init() {
	GraphCmd.Flags().StringVarP(&rootPath, "root", "r", ".", "Source tree root folder")
	GraphCmd.Flags().StringVarP(&outputFormat, "format", "f", "dot", "Output format (dot, json, mermaid)")
}

func formatGraph(g includegraph.Graph, format string) (string, error) {
	switch format {
	case "dot":
		return formatDOT(g)
	case "mermaid":
		return formatMermaid(g)
	case "json":
		return formatJSON(g)
	default:
		return "", fmt.Errorf("unknown format: %s (valid options: dot, json, mermaid)", format)
	}
}

func formatDOT(g includegraph.Graph) (string, error) {
	edges, err := includegraph.Edges(g)
	if err != nil {
		return "", err
	}
	vertices, err := includegraph.Vertices(g)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString("digraph includes {\n")
	sb.WriteString("  rankdir=LR;\n")
	sb.WriteString("  node [shape=box];\n\n")
	for _, vertex := range vertices {
		fmt.Fprintf(&sb, "  \"%s\";\n", vertex)
	}
	sb.WriteString("\n")
	for _, edge := range edges {
		fmt.Fprintf(&sb, "  \"%s\" -> \"%s\";\n", edge[0], edge[1])
	}
	sb.WriteString("}")
	return sb.String(), nil
}

func formatMermaid(g includegraph.Graph) (string, error) {
	edges, err := includegraph.Edges(g)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString("graph LR\n")
	for _, edge := range edges {
		fmt.Fprintf(&sb, "  %s --> %s\n", mermaidID(edge[0]), mermaidID(edge[1]))
	}
	return strings.TrimRight(sb.String(), "\n"), nil
}

// mermaidID wraps a path in a labeled node so separators do not break the
// mermaid syntax.
func mermaidID(path string) string {
	id := strings.NewReplacer("/", "_", ".", "_", "-", "_").Replace(path)
	return fmt.Sprintf("%s[\"%s\"]", id, path)
}

func formatJSON(g includegraph.Graph) (string, error) {
	edges, err := includegraph.Edges(g)
	if err != nil {
		return "", err
	}

	adjacency := make(map[string][]string)
	for _, edge := range edges {
		adjacency[edge[0]] = append(adjacency[edge[0]], edge[1])
	}
	for _, targets := range adjacency {
		sort.Strings(targets)
	}
	data, err := json.MarshalIndent(adjacency, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
