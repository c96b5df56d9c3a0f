// Package coverage cross-references a CMSIS package description (*.pdsc)
// against the source tree it describes: how many of the headers on disk are
// visible through the description's include paths, and how many of the
// sources on disk the description lists.
package coverage

import (
	"encoding/xml"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"

	"github.com/embedhq/incpath/pathutil"
)

// Component identifies one component declared in the description.
type Component struct {
	Class   string `xml:"Cclass,attr" json:"class" yaml:"class"`
	Group   string `xml:"Cgroup,attr" json:"group" yaml:"group"`
	Sub     string `xml:"Csub,attr" json:"sub,omitempty" yaml:"sub,omitempty"`
	Version string `xml:"Cversion,attr" json:"version,omitempty" yaml:"version,omitempty"`
}

// Bundle identifies one bundle of components.
type Bundle struct {
	Name    string `xml:"Cbundle,attr" json:"name" yaml:"name"`
	Class   string `xml:"Cclass,attr" json:"class" yaml:"class"`
	Version string `xml:"Cversion,attr" json:"version,omitempty" yaml:"version,omitempty"`
}

// Description is the parsed content of a *.pdsc file, reduced to what the
// coverage check needs. All paths are normalized.
type Description struct {
	Name         string
	IncludePaths []string
	Sources      []string
	Components   []Component
	Bundles      []Bundle
	Examples     []string
}

type pdscFile struct {
	Category string `xml:"category,attr"`
	Name     string `xml:"name,attr"`
}

type pdscComponent struct {
	Component
	Files []pdscFile `xml:"files>file"`
}

type pdscBundle struct {
	Bundle
	Components []pdscComponent `xml:"component"`
}

type pdscExample struct {
	Name string `xml:"name,attr"`
}

type pdscPackage struct {
	Name       string `xml:"name"`
	Components struct {
		Components []pdscComponent `xml:"component"`
		Bundles    []pdscBundle    `xml:"bundle"`
	} `xml:"components"`
	Examples []pdscExample `xml:"examples>example"`
}

// Find locates the *.pdsc file in dir (non-recursive). A pack carries exactly
// one; the first match in name order is returned.
func Find(dir string) (string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*.pdsc"))
	if err != nil {
		return "", fmt.Errorf("globbing for pdsc in %s: %w", dir, err)
	}
	if len(matches) == 0 {
		return "", fmt.Errorf("no *.pdsc file found in %s", dir)
	}
	sort.Strings(matches)
	return matches[0], nil
}

// Parse extracts include paths, sources, components, bundles and examples
// from pdsc content. Include paths come from the folder portion of files with
// category "header" and verbatim from files with category "include".
func Parse(data []byte) (*Description, error) {
	var pkg pdscPackage
	if err := xml.Unmarshal(data, &pkg); err != nil {
		return nil, fmt.Errorf("parsing pdsc: %w", err)
	}

	description := &Description{Name: pkg.Name}
	includePaths := make(map[string]bool)
	sources := make(map[string]bool)

	components := pkg.Components.Components
	for _, bundle := range pkg.Components.Bundles {
		description.Bundles = append(description.Bundles, bundle.Bundle)
		components = append(components, bundle.Components...)
	}
	for _, component := range components {
		description.Components = append(description.Components, component.Component)
		for _, file := range component.Files {
			name := pathutil.Normalize(file.Name)
			switch file.Category {
			case "header":
				includePaths[pathutil.Dir(name)] = true
			case "include":
				includePaths[path.Clean(name)] = true
			case "source":
				sources[name] = true
			}
		}
	}
	for _, example := range pkg.Examples {
		description.Examples = append(description.Examples, example.Name)
	}

	description.IncludePaths = sortedSet(includePaths)
	description.Sources = sortedSet(sources)
	return description, nil
}

// Load finds and parses the pack description in dir.
func Load(dir string) (*Description, error) {
	pdscPath, err := Find(dir)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(pdscPath)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", pdscPath, err)
	}
	description, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", pdscPath, err)
	}
	if description.Name == "" {
		description.Name = pathutil.Base(pathutil.Normalize(pdscPath))
	}
	return description, nil
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
