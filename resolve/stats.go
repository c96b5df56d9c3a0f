package resolve

import (
	"sort"

	"github.com/embedhq/incpath/includes"
)

// IncludeCount is one include token with its occurrence count.
type IncludeCount struct {
	Token string `json:"token" yaml:"token"`
	Count int    `json:"count" yaml:"count"`
}

// Stats are pure occurrence tallies over the resolution outcomes. Building
// them never fails and involves no resolution logic.
type Stats struct {
	// ByCategory counts occurrences per classification category, keyed by
	// the category's report spelling, with externals under "external".
	ByCategory map[string]int `json:"by_category" yaml:"by_category"`
	// ByInclude counts occurrences per raw include token, most frequent
	// first (ties by token).
	ByInclude []IncludeCount `json:"by_include" yaml:"by_include"`
	// ByHeaderFolder counts resolved occurrences per header folder.
	ByHeaderFolder map[string]int `json:"by_header_folder" yaml:"by_header_folder"`
	// Internal, External and System tally occurrences by include type.
	// System overlaps the other two: it flags tokens on the known system
	// header list.
	Internal int `json:"internal" yaml:"internal"`
	External int `json:"external" yaml:"external"`
	System   int `json:"system" yaml:"system"`
}

// BuildStats tallies all resolution outcomes.
func BuildStats(outcomes []Outcome) *Stats {
	stats := &Stats{
		ByCategory:     make(map[string]int),
		ByHeaderFolder: make(map[string]int),
	}
	tokenCounts := make(map[string]int)

	for _, outcome := range outcomes {
		token := outcome.Occurrence.Token
		tokenCounts[token]++
		if includes.IsSystem(token) {
			stats.System++
		}

		switch outcome.Kind {
		case External:
			stats.External++
			stats.ByCategory["external"]++
		case NonExisting:
			stats.Internal++
			stats.ByCategory[CategoryNonExisting.String()]++
		case Resolved:
			stats.Internal++
			stats.ByCategory[occurrenceCategory(outcome).String()]++
			for _, candidate := range outcome.Candidates {
				stats.ByHeaderFolder[candidate.HeaderFolder]++
			}
		}
	}

	stats.ByInclude = make([]IncludeCount, 0, len(tokenCounts))
	for token, count := range tokenCounts {
		stats.ByInclude = append(stats.ByInclude, IncludeCount{Token: token, Count: count})
	}
	sort.Slice(stats.ByInclude, func(i, j int) bool {
		a, b := stats.ByInclude[i], stats.ByInclude[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return a.Token < b.Token
	})
	return stats
}

// occurrenceCategory is the category a resolved occurrence contributes on its
// own, before the global most-restrictive merge.
func occurrenceCategory(outcome Outcome) Category {
	if len(outcome.Candidates) > 1 {
		return CategoryAmbiguous
	}
	if outcome.Candidates[0].Local {
		return CategoryOptional
	}
	return CategoryMandatory
}
