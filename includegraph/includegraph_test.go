package includegraph

import (
	"testing"

	"github.com/embedhq/incpath/includes"
	"github.com/embedhq/incpath/resolve"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func outcome(file, token string, kind resolve.OutcomeKind, candidates ...resolve.Candidate) resolve.Outcome {
	return resolve.Outcome{
		Occurrence: includes.Occurrence{File: file, Token: token},
		Kind:       kind,
		Candidates: candidates,
	}
}

func TestBuild_FileToHeaderEdges(t *testing.T) {
	outcomes := []resolve.Outcome{
		outcome("src/main.c", "foo.h", resolve.Resolved,
			resolve.Candidate{SearchRoot: "inc", HeaderFolder: "inc"}),
		outcome("src/main.c", "../inc/bar.h", resolve.Resolved,
			resolve.Candidate{SearchRoot: ".", HeaderFolder: "inc"}),
	}

	g, err := Build(outcomes)
	require.NoError(t, err)

	edges, err := Edges(g)
	require.NoError(t, err)
	assert.Equal(t, [][2]string{
		{"src/main.c", "inc/bar.h"},
		{"src/main.c", "inc/foo.h"},
	}, edges)
}

func TestBuild_AmbiguousOccurrenceFansOut(t *testing.T) {
	outcomes := []resolve.Outcome{
		outcome("src/main.c", "config.h", resolve.Resolved,
			resolve.Candidate{SearchRoot: "app", HeaderFolder: "app"},
			resolve.Candidate{SearchRoot: "drivers", HeaderFolder: "drivers"},
		),
	}

	g, err := Build(outcomes)
	require.NoError(t, err)

	edges, err := Edges(g)
	require.NoError(t, err)
	assert.Equal(t, [][2]string{
		{"src/main.c", "app/config.h"},
		{"src/main.c", "drivers/config.h"},
	}, edges)
}

func TestBuild_SkipsExternalAndNonExisting(t *testing.T) {
	outcomes := []resolve.Outcome{
		outcome("src/main.c", "stdio.h", resolve.External),
		outcome("src/main.c", "../gone/x.h", resolve.NonExisting),
	}

	g, err := Build(outcomes)
	require.NoError(t, err)

	vertices, err := Vertices(g)
	require.NoError(t, err)
	assert.Empty(t, vertices)
}

func TestBuild_DuplicateIncludesCollapse(t *testing.T) {
	occ := outcome("src/main.c", "foo.h", resolve.Resolved,
		resolve.Candidate{SearchRoot: "inc", HeaderFolder: "inc"})
	g, err := Build([]resolve.Outcome{occ, occ})
	require.NoError(t, err)

	edges, err := Edges(g)
	require.NoError(t, err)
	assert.Len(t, edges, 1)
}

func TestVertices_Sorted(t *testing.T) {
	outcomes := []resolve.Outcome{
		outcome("z/b.c", "a.h", resolve.Resolved,
			resolve.Candidate{SearchRoot: "a", HeaderFolder: "a"}),
	}
	g, err := Build(outcomes)
	require.NoError(t, err)

	vertices, err := Vertices(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"a/a.h", "z/b.c"}, vertices)
}
