// Package resolve contains the core of the estimator: mapping each include
// occurrence to the set of search-root directories that would make it
// resolve, and merging those per-occurrence requirements into the global
// mandatory / optional / ambiguous / non-existing classification.
package resolve

import (
	"sort"

	"github.com/embedhq/incpath/catalog"
	"github.com/embedhq/incpath/pathutil"
)

// HeaderIndex maps each bare header filename to the sorted set of folders,
// anywhere in the tree, that contain a file with that name. More than one
// folder per name is the root cause of ambiguity and is preserved as-is.
// The index is built once per run and never mutated afterwards, so it can be
// shared across concurrent resolutions without locking.
type HeaderIndex map[string][]string

// BuildHeaderIndex indexes every header file of the tree by bare filename.
func BuildHeaderIndex(tree *catalog.SourceTree) HeaderIndex {
	folders := make(map[string]map[string]bool)
	for _, f := range tree.Files {
		if f.Kind != catalog.HeaderFile {
			continue
		}
		name := pathutil.Base(f.Path)
		if folders[name] == nil {
			folders[name] = make(map[string]bool)
		}
		folders[name][f.Folder()] = true
	}

	index := make(HeaderIndex, len(folders))
	for name, set := range folders {
		sorted := make([]string, 0, len(set))
		for folder := range set {
			sorted = append(sorted, folder)
		}
		sort.Strings(sorted)
		index[name] = sorted
	}
	return index
}

// FoldersFor returns the folders containing a header with the given bare
// filename. The result is nil when the name appears nowhere in the tree,
// which is how an include is identified as external.
func (ix HeaderIndex) FoldersFor(name string) []string {
	return ix[name]
}
