package resolve

import (
	"github.com/embedhq/incpath/includes"
	"github.com/embedhq/incpath/pathutil"
)

// OutcomeKind states how a single include occurrence resolved.
type OutcomeKind int

const (
	// External: the bare filename matches no header in the tree. The
	// occurrence produces no search-root candidate and is excluded from
	// the classification entirely.
	External OutcomeKind = iota
	// Resolved: one or more candidate search-roots were derived.
	Resolved
	// NonExisting: the header exists in the tree by name, but no folder
	// satisfies the relative path arithmetic of this particular
	// reference.
	NonExisting
)

// Candidate is one search-root that would make an occurrence resolve.
type Candidate struct {
	// SearchRoot is the directory, relative to the tree root, that must
	// be on the include search path. "." denotes the tree root itself.
	SearchRoot string
	// HeaderFolder is the folder of the header this candidate resolves
	// to.
	HeaderFolder string
	// Local reports that the including file sits in the header's own
	// folder, so a compiler finds the header implicitly by proximity.
	Local bool
}

// Outcome is the resolution result for one include occurrence.
type Outcome struct {
	Occurrence includes.Occurrence
	Kind       OutcomeKind
	Candidates []Candidate
}

// Resolve computes the candidate search-roots for a single include
// occurrence. It is a pure function of the occurrence and the header index:
// the same inputs always yield the same candidate set, independent of
// processing order.
func Resolve(occ includes.Occurrence, index HeaderIndex) Outcome {
	segments := pathutil.Split(pathutil.Normalize(occ.Token))
	bare := segments[len(segments)-1]
	relative := segments[:len(segments)-1]

	folders := index.FoldersFor(bare)
	if len(folders) == 0 {
		return Outcome{Occurrence: occ, Kind: External}
	}

	upCount := 0
	for upCount < len(relative) && relative[upCount] == ".." {
		upCount++
	}
	descent := relative[upCount:]
	for _, segment := range descent {
		if segment == ".." {
			// A ".." after a named segment makes the relative
			// arithmetic unreliable; no consistent search-root can
			// be derived from such a reference.
			return Outcome{Occurrence: occ, Kind: NonExisting}
		}
	}

	includerFolder := pathutil.Dir(occ.File)

	var candidates []Candidate
	for _, folder := range folders {
		if upCount == 0 {
			if candidate, ok := matchTrailing(folder, descent, includerFolder); ok {
				candidates = append(candidates, candidate)
			}
			continue
		}
		if candidate, ok := matchUpLevel(folder, descent, upCount, includerFolder); ok {
			candidates = append(candidates, candidate)
		}
	}

	if len(candidates) == 0 {
		return Outcome{Occurrence: occ, Kind: NonExisting}
	}
	return Outcome{Occurrence: occ, Kind: Resolved, Candidates: candidates}
}

// matchTrailing handles references without up-level segments: the header
// folder must end with the relative directory portion literally, and the
// search-root is that folder with the portion stripped.
func matchTrailing(headerFolder string, descent []string, includerFolder string) (Candidate, bool) {
	folderSegments := pathutil.Split(headerFolder)
	if len(descent) > len(folderSegments) {
		return Candidate{}, false
	}
	trailing := folderSegments[len(folderSegments)-len(descent):]
	for i, segment := range descent {
		if trailing[i] != segment {
			return Candidate{}, false
		}
	}
	return Candidate{
		SearchRoot:   pathutil.Join(folderSegments[:len(folderSegments)-len(descent)]...),
		HeaderFolder: headerFolder,
		Local:        includerFolder == headerFolder,
	}, true
}

// matchUpLevel handles references with leading "../" segments: the
// search-root is found by walking up from the including file's own folder
// one level per "..", and the location reached by descending the remaining
// portion must equal the header folder for the match to hold. A walk that
// underflows the tree root discards the candidate.
func matchUpLevel(headerFolder string, descent []string, upCount int, includerFolder string) (Candidate, bool) {
	root, ok := pathutil.Ascend(includerFolder, upCount)
	if !ok {
		return Candidate{}, false
	}
	if pathutil.Descend(root, descent...) != headerFolder {
		return Candidate{}, false
	}
	return Candidate{
		SearchRoot:   root,
		HeaderFolder: headerFolder,
		Local:        includerFolder == headerFolder,
	}, true
}
