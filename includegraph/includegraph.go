// Package includegraph derives a file-to-header dependency graph from the
// resolution outcomes. Vertices are tree-relative paths; an edge connects an
// including file to every header its occurrences resolved to. External
// includes have no vertex in the tree and are left out.
package includegraph

import (
	"errors"
	"fmt"
	"sort"

	graphlib "github.com/dominikbraun/graph"

	"github.com/embedhq/incpath/pathutil"
	"github.com/embedhq/incpath/resolve"
)

// Graph is a directed include graph over tree-relative path strings.
type Graph = graphlib.Graph[string, string]

// Build constructs the include graph from resolution outcomes. Ambiguous
// occurrences contribute one edge per candidate, mirroring the alternatives
// the classification retains.
func Build(outcomes []resolve.Outcome) (Graph, error) {
	g := graphlib.New(graphlib.StringHash, graphlib.Directed())

	for _, outcome := range outcomes {
		if outcome.Kind != resolve.Resolved {
			continue
		}
		source := outcome.Occurrence.File
		if err := addVertex(g, source); err != nil {
			return nil, err
		}
		bare := pathutil.Base(pathutil.Normalize(outcome.Occurrence.Token))
		for _, candidate := range outcome.Candidates {
			header := pathutil.Descend(candidate.HeaderFolder, bare)
			if err := addVertex(g, header); err != nil {
				return nil, err
			}
			err := g.AddEdge(source, header)
			if err != nil && !errors.Is(err, graphlib.ErrEdgeAlreadyExists) {
				return nil, fmt.Errorf("adding edge %s -> %s: %w", source, header, err)
			}
		}
	}
	return g, nil
}

func addVertex(g Graph, path string) error {
	err := g.AddVertex(path)
	if err != nil && !errors.Is(err, graphlib.ErrVertexAlreadyExists) {
		return fmt.Errorf("adding vertex %s: %w", path, err)
	}
	return nil
}

// Edges flattens the graph into sorted (source, header) pairs for formatting.
func Edges(g Graph) ([][2]string, error) {
	adjacency, err := g.AdjacencyMap()
	if err != nil {
		return nil, fmt.Errorf("reading adjacency map: %w", err)
	}
	var edges [][2]string
	for source, targets := range adjacency {
		for target := range targets {
			edges = append(edges, [2]string{source, target})
		}
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i][0] != edges[j][0] {
			return edges[i][0] < edges[j][0]
		}
		return edges[i][1] < edges[j][1]
	})
	return edges, nil
}

// Vertices lists every vertex of the graph, sorted.
func Vertices(g Graph) ([]string, error) {
	adjacency, err := g.AdjacencyMap()
	if err != nil {
		return nil, fmt.Errorf("reading adjacency map: %w", err)
	}
	vertices := make([]string, 0, len(adjacency))
	for vertex := range adjacency {
		vertices = append(vertices, vertex)
	}
	sort.Strings(vertices)
	return vertices, nil
}
