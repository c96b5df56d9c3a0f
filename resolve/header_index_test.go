package resolve

import (
	"testing"

	"github.com/embedhq/incpath/catalog"
	"github.com/stretchr/testify/assert"
)

func headerTree(paths ...string) *catalog.SourceTree {
	tree := &catalog.SourceTree{Root: "."}
	for _, p := range paths {
		tree.Files = append(tree.Files, catalog.SourceFile{Path: p, Kind: catalog.HeaderFile})
	}
	return tree
}

func TestBuildHeaderIndex_SingleLocation(t *testing.T) {
	index := BuildHeaderIndex(headerTree("inc/foo.h", "inc/bar.h"))

	assert.Equal(t, []string{"inc"}, index.FoldersFor("foo.h"))
	assert.Equal(t, []string{"inc"}, index.FoldersFor("bar.h"))
}

func TestBuildHeaderIndex_DuplicateNamesKeepAllFolders(t *testing.T) {
	index := BuildHeaderIndex(headerTree("drivers/config.h", "app/config.h"))

	assert.Equal(t, []string{"app", "drivers"}, index.FoldersFor("config.h"))
}

func TestBuildHeaderIndex_RootFolderIsDot(t *testing.T) {
	index := BuildHeaderIndex(headerTree("top.h"))

	assert.Equal(t, []string{"."}, index.FoldersFor("top.h"))
}

func TestBuildHeaderIndex_IgnoresNonHeaders(t *testing.T) {
	tree := headerTree("inc/foo.h")
	tree.Files = append(tree.Files,
		catalog.SourceFile{Path: "src/foo.c", Kind: catalog.CSourceFile},
		catalog.SourceFile{Path: "boot/foo.S", Kind: catalog.OtherSource},
	)
	index := BuildHeaderIndex(tree)

	assert.Nil(t, index.FoldersFor("foo.c"))
	assert.Nil(t, index.FoldersFor("foo.S"))
}

func TestFoldersFor_UnknownName(t *testing.T) {
	index := BuildHeaderIndex(headerTree("inc/foo.h"))

	assert.Nil(t, index.FoldersFor("missing.h"))
}
