package resolve

import "sort"

// Category is the classification of a search-root (or, for non-existing
// entries, of an unresolvable include). The order encodes restrictiveness:
// when occurrences disagree about the same search-root, the most restrictive
// category wins, so the merge is independent of processing order.
type Category int

const (
	CategoryOptional Category = iota
	CategoryMandatory
	CategoryNonExisting
	CategoryAmbiguous
)

// String returns the report spelling of the category.
func (c Category) String() string {
	switch c {
	case CategoryOptional:
		return "optional"
	case CategoryMandatory:
		return "mandatory"
	case CategoryNonExisting:
		return "non_existing"
	case CategoryAmbiguous:
		return "ambiguous"
	}
	return "unknown"
}

// AmbiguousPath is a search-root that some occurrence could resolve through
// in more than one way. Alternatives lists every root of that occurrence's
// candidate set (the entry's own path included), for human disambiguation.
type AmbiguousPath struct {
	Path         string   `json:"path" yaml:"path"`
	Alternatives []string `json:"alternatives" yaml:"alternatives"`
}

// Classification is the final output of the core: disjoint sets of
// search-root strings plus the includes for which no consistent search-root
// exists. All paths are POSIX-style and relative to the tree root, sorted.
type Classification struct {
	Mandatory   []string        `json:"mandatory" yaml:"mandatory"`
	Optional    []string        `json:"optional" yaml:"optional"`
	Ambiguous   []AmbiguousPath `json:"ambiguous" yaml:"ambiguous"`
	NonExisting []string        `json:"non_existing" yaml:"non_existing"`
}

// Classify folds all per-occurrence outcomes into the global classification.
//
// A single-candidate occurrence marks its root mandatory, or optional when
// the including file already sits in the header's folder. A multi-candidate
// occurrence marks every one of its roots ambiguous and retains the full
// alternative set. An internal occurrence with no candidates contributes its
// raw token to the non-existing set. External occurrences contribute nothing.
//
// When occurrences disagree about one root, the most restrictive category
// wins: ambiguous > non_existing > mandatory > optional.
func Classify(outcomes []Outcome) Classification {
	categories := make(map[string]Category)
	alternatives := make(map[string]map[string]bool)
	nonExisting := make(map[string]bool)

	raise := func(root string, category Category) {
		if current, ok := categories[root]; !ok || category > current {
			categories[root] = category
		}
	}

	for _, outcome := range outcomes {
		switch outcome.Kind {
		case External:
			// Cannot be associated with any header in the tree.
		case NonExisting:
			nonExisting[outcome.Occurrence.Token] = true
		case Resolved:
			if len(outcome.Candidates) == 1 {
				candidate := outcome.Candidates[0]
				if candidate.Local {
					raise(candidate.SearchRoot, CategoryOptional)
				} else {
					raise(candidate.SearchRoot, CategoryMandatory)
				}
				continue
			}
			for _, candidate := range outcome.Candidates {
				raise(candidate.SearchRoot, CategoryAmbiguous)
				if alternatives[candidate.SearchRoot] == nil {
					alternatives[candidate.SearchRoot] = make(map[string]bool)
				}
				for _, alternative := range outcome.Candidates {
					alternatives[candidate.SearchRoot][alternative.SearchRoot] = true
				}
			}
		}
	}

	var classification Classification
	for root, category := range categories {
		switch category {
		case CategoryMandatory:
			classification.Mandatory = append(classification.Mandatory, root)
		case CategoryOptional:
			classification.Optional = append(classification.Optional, root)
		case CategoryAmbiguous:
			classification.Ambiguous = append(classification.Ambiguous, AmbiguousPath{
				Path:         root,
				Alternatives: sortedKeys(alternatives[root]),
			})
		}
	}
	classification.NonExisting = sortedKeys(nonExisting)

	sort.Strings(classification.Mandatory)
	sort.Strings(classification.Optional)
	sort.Slice(classification.Ambiguous, func(i, j int) bool {
		return classification.Ambiguous[i].Path < classification.Ambiguous[j].Path
	})
	return classification
}

func sortedKeys(set map[string]bool) []string {
	if len(set) == 0 {
		return nil
	}
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
