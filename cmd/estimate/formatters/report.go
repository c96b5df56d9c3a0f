// Package formatters renders an estimation result in the supported output
// formats. All paths in a report are POSIX-style so reports compare equal
// across platforms.
package formatters

import (
	"github.com/embedhq/incpath/estimator"
	"github.com/embedhq/incpath/pathutil"
	"github.com/embedhq/incpath/resolve"
)

// Report is the serializable view of an estimation result.
type Report struct {
	Root           string                 `json:"root" yaml:"root"`
	Classification resolve.Classification `json:"include_paths" yaml:"include_paths"`
	Stats          *resolve.Stats         `json:"statistics" yaml:"statistics"`

	CommonPrefix     string   `json:"common_prefix" yaml:"common_prefix"`
	InternalIncludes []string `json:"internal_includes" yaml:"internal_includes"`
	ExternalIncludes []string `json:"external_includes" yaml:"external_includes"`
	SystemIncludes   []string `json:"system_includes" yaml:"system_includes"`

	CSourceFiles   []string `json:"c_source_files" yaml:"c_source_files"`
	HeaderFiles    []string `json:"header_files" yaml:"header_files"`
	HeaderFolders  []string `json:"header_folders" yaml:"header_folders"`
	CSourceFolders []string `json:"c_source_folders" yaml:"c_source_folders"`

	SourcesWithMain []string `json:"sources_with_main,omitempty" yaml:"sources_with_main,omitempty"`
}

// BuildReport assembles the report view from a pipeline result. Execution
// time is deliberately left out so that identical trees produce identical
// reports.
func BuildReport(result *estimator.Result) Report {
	classified := make([]string, 0,
		len(result.Classification.Mandatory)+
			len(result.Classification.Optional)+
			len(result.Classification.Ambiguous))
	classified = append(classified, result.Classification.Mandatory...)
	classified = append(classified, result.Classification.Optional...)
	for _, ambiguous := range result.Classification.Ambiguous {
		classified = append(classified, ambiguous.Path)
	}

	return Report{
		Root:             result.Tree.Root,
		Classification:   result.Classification,
		Stats:            result.Stats,
		CommonPrefix:     pathutil.CommonPrefix(classified),
		InternalIncludes: result.InternalIncludes,
		ExternalIncludes: result.ExternalIncludes,
		SystemIncludes:   result.SystemIncludes,
		CSourceFiles:     result.Tree.CSourceFiles(),
		HeaderFiles:      result.Tree.HeaderFiles(),
		HeaderFolders:    result.Tree.HeaderFolders(),
		CSourceFolders:   result.Tree.CSourceFolders(),
		SourcesWithMain:  result.SourcesWithMain,
	}
}
