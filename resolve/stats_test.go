package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildStats_Categories(t *testing.T) {
	outcomes := []Outcome{
		resolvedOutcome("src/a.c", "util.h", Candidate{SearchRoot: "inc", HeaderFolder: "inc", Local: false}),
		resolvedOutcome("inc/b.c", "util.h", Candidate{SearchRoot: "inc", HeaderFolder: "inc", Local: true}),
		resolvedOutcome("src/c.c", "config.h",
			Candidate{SearchRoot: "a", HeaderFolder: "a", Local: false},
			Candidate{SearchRoot: "b", HeaderFolder: "b", Local: false},
		),
		{Occurrence: occurrence("src/d.c", "../gone/x.h"), Kind: NonExisting},
		{Occurrence: occurrence("src/d.c", "stdio.h"), Kind: External},
	}

	stats := BuildStats(outcomes)

	assert.Equal(t, map[string]int{
		"mandatory":    1,
		"optional":     1,
		"ambiguous":    1,
		"non_existing": 1,
		"external":     1,
	}, stats.ByCategory)
	assert.Equal(t, 4, stats.Internal)
	assert.Equal(t, 1, stats.External)
	assert.Equal(t, 1, stats.System)
}

func TestBuildStats_IncludeCountsMostFrequentFirst(t *testing.T) {
	outcomes := []Outcome{
		{Occurrence: occurrence("a.c", "common.h"), Kind: External},
		{Occurrence: occurrence("b.c", "common.h"), Kind: External},
		{Occurrence: occurrence("c.c", "common.h"), Kind: External},
		{Occurrence: occurrence("a.c", "rare.h"), Kind: External},
		{Occurrence: occurrence("a.c", "also_rare.h"), Kind: External},
	}

	stats := BuildStats(outcomes)

	assert.Equal(t, []IncludeCount{
		{Token: "common.h", Count: 3},
		{Token: "also_rare.h", Count: 1},
		{Token: "rare.h", Count: 1},
	}, stats.ByInclude)
}

func TestBuildStats_HeaderFolderTally(t *testing.T) {
	outcomes := []Outcome{
		resolvedOutcome("src/a.c", "u.h", Candidate{SearchRoot: "inc", HeaderFolder: "inc", Local: false}),
		resolvedOutcome("src/b.c", "v.h", Candidate{SearchRoot: "inc", HeaderFolder: "inc", Local: false}),
		resolvedOutcome("src/c.c", "w.h", Candidate{SearchRoot: "lib", HeaderFolder: "lib", Local: false}),
	}

	stats := BuildStats(outcomes)

	assert.Equal(t, map[string]int{"inc": 2, "lib": 1}, stats.ByHeaderFolder)
}

func TestBuildStats_EmptyOutcomes(t *testing.T) {
	stats := BuildStats(nil)

	assert.Empty(t, stats.ByCategory)
	assert.Empty(t, stats.ByInclude)
	assert.Zero(t, stats.Internal)
	assert.Zero(t, stats.External)
}
