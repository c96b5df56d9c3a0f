package coverage

import (
	"path"
	"sort"

	"github.com/embedhq/incpath/catalog"
	"github.com/embedhq/incpath/estimator"
)

// Report is the description-coverage result for one pack.
type Report struct {
	PackName string `json:"pack" yaml:"pack"`

	// Header visibility: headers on disk reachable through the declared
	// include paths, either directly or via an include token found in the
	// sources.
	HeaderCount    int      `json:"header_count" yaml:"header_count"`
	VisibleHeaders []string `json:"visible_headers" yaml:"visible_headers"`
	HiddenHeaders  []string `json:"hidden_headers" yaml:"hidden_headers"`

	// Source description: sources on disk against sources the description
	// lists.
	SourceCount        int      `json:"source_count" yaml:"source_count"`
	DescribedSources   []string `json:"described_sources" yaml:"described_sources"`
	UndescribedSources []string `json:"undescribed_sources" yaml:"undescribed_sources"`

	IncludePaths []string    `json:"include_paths" yaml:"include_paths"`
	Components   []Component `json:"components" yaml:"components"`
	Bundles      []Bundle    `json:"bundles,omitempty" yaml:"bundles,omitempty"`
	Examples     []string    `json:"examples,omitempty" yaml:"examples,omitempty"`
}

// HeaderVisibility is the percentage of headers reachable through the
// declared include paths.
func (r *Report) HeaderVisibility() float64 {
	return percentage(len(r.VisibleHeaders), r.HeaderCount)
}

// SourceCoverage is the percentage of on-disk sources the description lists.
func (r *Report) SourceCoverage() float64 {
	return percentage(len(r.DescribedSources), r.SourceCount)
}

// CombinedCoverage merges header visibility and source description into one
// percentage.
func (r *Report) CombinedCoverage() float64 {
	return percentage(len(r.VisibleHeaders)+len(r.DescribedSources), r.HeaderCount+r.SourceCount)
}

func percentage(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return float64(part) / float64(whole) * 100
}

// Check runs the coverage analysis for the pack rooted at dir: it scans the
// tree, loads the *.pdsc description, and compares the two.
func Check(dir string) (*Report, error) {
	description, err := Load(dir)
	if err != nil {
		return nil, err
	}
	result, err := estimator.Run(dir)
	if err != nil {
		return nil, err
	}
	return Compare(description, result), nil
}

// Compare builds the coverage report from an already-parsed description and
// an estimation result for the same tree.
func Compare(description *Description, result *estimator.Result) *Report {
	report := &Report{
		PackName:     description.Name,
		IncludePaths: description.IncludePaths,
		Components:   description.Components,
		Bundles:      description.Bundles,
		Examples:     description.Examples,
	}

	headers := result.Tree.HeaderFiles()
	report.HeaderCount = len(headers)

	tokens := make(map[string]bool)
	for _, occ := range result.Occurrences {
		tokens[occ.Token] = true
	}

	visible := make(map[string]bool)
	for _, includePath := range description.IncludePaths {
		// Headers sitting directly in the declared folder.
		for _, header := range headers {
			if path.Dir(header) == path.Clean(includePath) {
				visible[header] = true
			}
		}
		// Headers reachable by appending an include token to the
		// declared folder; up-level tokens resolve via path.Clean and
		// are discarded when they escape the tree.
		for token := range tokens {
			candidate := path.Clean(path.Join(includePath, token))
			if result.Tree.HasHeader(candidate) {
				visible[candidate] = true
			}
		}
	}
	for _, header := range headers {
		if visible[header] {
			report.VisibleHeaders = append(report.VisibleHeaders, header)
		} else {
			report.HiddenHeaders = append(report.HiddenHeaders, header)
		}
	}

	described := make(map[string]bool, len(description.Sources))
	for _, source := range description.Sources {
		described[source] = true
	}
	for _, file := range result.Tree.Files {
		if file.Kind == catalog.HeaderFile {
			continue
		}
		report.SourceCount++
		if described[file.Path] {
			report.DescribedSources = append(report.DescribedSources, file.Path)
		} else {
			report.UndescribedSources = append(report.UndescribedSources, file.Path)
		}
	}

	sort.Strings(report.VisibleHeaders)
	sort.Strings(report.HiddenHeaders)
	sort.Strings(report.DescribedSources)
	sort.Strings(report.UndescribedSources)
	return report
}
