// Package catalog scans a source tree and produces the immutable file catalog
// the rest of the pipeline works from. Scanning is the only phase that touches
// the file system; everything downstream operates on the catalog snapshot.
package catalog

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/embedhq/incpath/pathutil"
)

// ErrScan marks a failed catalog scan: the root is missing, unreadable, or
// not a directory. It is the only fatal error the pipeline produces.
var ErrScan = errors.New("scan failed")

// FileKind classifies a cataloged source file by extension.
type FileKind int

const (
	// HeaderFile is a .h file.
	HeaderFile FileKind = iota
	// CSourceFile is a .c file.
	CSourceFile
	// OtherSource is a recognized non-header, non-.c source file
	// (.cpp, .asm, .s, .S).
	OtherSource
)

// SourceFile is one cataloged file. Path is relative to the tree root, in the
// canonical forward-slash form. Immutable once cataloged.
type SourceFile struct {
	Path string
	Kind FileKind
}

// Folder returns the file's containing folder, "." for files at the root.
func (f SourceFile) Folder() string {
	return pathutil.Dir(f.Path)
}

// SourceTree is the catalog of one scanned root: the root path and every
// recognized source file below it, sorted by path.
type SourceTree struct {
	Root  string
	Files []SourceFile
}

// kindForExt maps recognized extensions to file kinds. Matching is
// case-sensitive so that .s and .S are both recognized while .H is not,
// mirroring the extension list the estimator has always used.
var kindForExt = map[string]FileKind{
	".h":   HeaderFile,
	".c":   CSourceFile,
	".cpp": OtherSource,
	".asm": OtherSource,
	".s":   OtherSource,
	".S":   OtherSource,
}

// Scan walks root and catalogs every recognized source file. The walk is
// read-only. Scan fails with an error wrapping ErrScan when root does not
// exist or is not a directory.
func Scan(root string) (*SourceTree, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("%w: cannot access root %s: %v", ErrScan, root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: root %s is not a directory", ErrScan, root)
	}

	tree := &SourceTree{Root: pathutil.Normalize(root)}
	err = filepath.WalkDir(root, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return nil
		}
		kind, ok := kindForExt[filepath.Ext(p)]
		if !ok {
			return nil
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		tree.Files = append(tree.Files, SourceFile{
			Path: pathutil.Normalize(rel),
			Kind: kind,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: walking %s: %v", ErrScan, root, err)
	}

	sort.Slice(tree.Files, func(i, j int) bool { return tree.Files[i].Path < tree.Files[j].Path })
	return tree, nil
}

// HeaderFiles returns the paths of all header files, sorted.
func (t *SourceTree) HeaderFiles() []string {
	return t.filesOfKind(HeaderFile)
}

// CSourceFiles returns the paths of all .c files, sorted.
func (t *SourceTree) CSourceFiles() []string {
	return t.filesOfKind(CSourceFile)
}

func (t *SourceTree) filesOfKind(kind FileKind) []string {
	var paths []string
	for _, f := range t.Files {
		if f.Kind == kind {
			paths = append(paths, f.Path)
		}
	}
	return paths
}

// HeaderFolders returns every folder containing at least one header file,
// sorted.
func (t *SourceTree) HeaderFolders() []string {
	return t.foldersOfKind(HeaderFile)
}

// CSourceFolders returns every folder containing at least one .c file,
// sorted.
func (t *SourceTree) CSourceFolders() []string {
	return t.foldersOfKind(CSourceFile)
}

func (t *SourceTree) foldersOfKind(kind FileKind) []string {
	seen := make(map[string]bool)
	for _, f := range t.Files {
		if f.Kind == kind {
			seen[f.Folder()] = true
		}
	}
	folders := make([]string, 0, len(seen))
	for folder := range seen {
		folders = append(folders, folder)
	}
	sort.Strings(folders)
	return folders
}

// HasHeader reports whether a header file exists at the given tree-relative
// path. Paths are compared in normalized form.
func (t *SourceTree) HasHeader(path string) bool {
	path = pathutil.Normalize(path)
	for _, f := range t.Files {
		if f.Kind == HeaderFile && f.Path == path {
			return true
		}
	}
	return false
}

// IsMainCandidate reports whether the file kind can define a program entry
// point (.c or .cpp).
func (f SourceFile) IsMainCandidate() bool {
	return f.Kind == CSourceFile || strings.HasSuffix(f.Path, ".cpp")
}
