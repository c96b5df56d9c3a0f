// Package estimator wires the pipeline together: catalog the tree, extract
// include occurrences, resolve each one against the header index, and fold
// the outcomes into the final classification and statistics.
//
// The catalog and the header index are built up-front because resolution
// needs global knowledge of every header location; after that, per-file
// extraction and resolution run in parallel over the read-only index, with a
// single merge point before classification.
package estimator

import (
	"runtime"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/embedhq/incpath/catalog"
	"github.com/embedhq/incpath/includes"
	"github.com/embedhq/incpath/resolve"
)

// Result is the complete, immutable output of one estimation run.
type Result struct {
	Tree           *catalog.SourceTree
	Occurrences    []includes.Occurrence
	Outcomes       []resolve.Outcome
	Classification resolve.Classification
	Stats          *resolve.Stats

	// InternalIncludes and ExternalIncludes split the distinct include
	// tokens by whether their bare filename matches a header in the tree.
	// SystemIncludes lists the distinct tokens found on the known system
	// header list. SourcesWithMain lists .c/.cpp files defining main().
	InternalIncludes []string
	ExternalIncludes []string
	SystemIncludes   []string
	SourcesWithMain  []string

	Elapsed time.Duration
}

// Run scans root and estimates its include paths.
func Run(root string) (*Result, error) {
	tree, err := catalog.Scan(root)
	if err != nil {
		return nil, err
	}
	return RunTree(tree, catalog.Reader(root))
}

// fileScan is the per-file extraction and resolution result. Collecting one
// per file, in catalog order, keeps the merged output deterministic without
// a shared accumulator.
type fileScan struct {
	occurrences []includes.Occurrence
	outcomes    []resolve.Outcome
	hasMain     bool
}

// RunTree estimates include paths for an already-cataloged tree, reading file
// content through reader. Files that cannot be read are skipped; resolution
// anomalies are classification outcomes, never errors.
func RunTree(tree *catalog.SourceTree, reader catalog.ContentReader) (*Result, error) {
	started := time.Now()
	index := resolve.BuildHeaderIndex(tree)

	scans := make([]fileScan, len(tree.Files))
	var group errgroup.Group
	group.SetLimit(runtime.GOMAXPROCS(0))
	for i, file := range tree.Files {
		group.Go(func() error {
			text, err := reader(file.Path)
			if err != nil {
				// The file disappeared between catalog and read;
				// treat it as empty rather than aborting the run.
				return nil
			}
			occurrences := includes.Extract(file.Path, text)
			scan := fileScan{occurrences: occurrences}
			for _, occ := range occurrences {
				scan.outcomes = append(scan.outcomes, resolve.Resolve(occ, index))
			}
			if file.IsMainCandidate() && includes.HasMainFunction(text) {
				scan.hasMain = true
			}
			scans[i] = scan
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	result := &Result{Tree: tree}
	for i, scan := range scans {
		result.Occurrences = append(result.Occurrences, scan.occurrences...)
		result.Outcomes = append(result.Outcomes, scan.outcomes...)
		if scan.hasMain {
			result.SourcesWithMain = append(result.SourcesWithMain, tree.Files[i].Path)
		}
	}

	result.Classification = resolve.Classify(result.Outcomes)
	result.Stats = resolve.BuildStats(result.Outcomes)
	result.InternalIncludes, result.ExternalIncludes, result.SystemIncludes = splitIncludes(result.Outcomes)
	result.Elapsed = time.Since(started)
	return result, nil
}

// splitIncludes lists the distinct include tokens by type, sorted.
func splitIncludes(outcomes []resolve.Outcome) (internal, external, system []string) {
	internalSet := make(map[string]bool)
	externalSet := make(map[string]bool)
	systemSet := make(map[string]bool)
	for _, outcome := range outcomes {
		token := outcome.Occurrence.Token
		if outcome.Kind == resolve.External {
			externalSet[token] = true
		} else {
			internalSet[token] = true
		}
		if includes.IsSystem(token) {
			systemSet[token] = true
		}
	}
	return sortedSet(internalSet), sortedSet(externalSet), sortedSet(systemSet)
}

func sortedSet(set map[string]bool) []string {
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
