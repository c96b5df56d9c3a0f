package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTree creates the given files (path -> content) under a temp dir and
// returns the root.
func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for path, content := range files {
		full := filepath.Join(root, filepath.FromSlash(path))
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte(content), 0o644))
	}
	return root
}

func TestScan_ClassifiesByExtension(t *testing.T) {
	root := writeTree(t, map[string]string{
		"src/main.c":      "",
		"inc/foo.h":       "",
		"startup/boot.S":  "",
		"startup/init.s":  "",
		"lib/vendor.cpp":  "",
		"lib/legacy.asm":  "",
		"README.md":       "ignored",
		"scripts/gen.py":  "ignored",
		"docs/notes.txt":  "ignored",
		"inc/sub/bar.h":   "",
		"src/drivers/u.c": "",
	})

	tree, err := Scan(root)
	require.NoError(t, err)

	assert.Len(t, tree.Files, 8)
	assert.Equal(t, []string{"inc/foo.h", "inc/sub/bar.h"}, tree.HeaderFiles())
	assert.Equal(t, []string{"src/drivers/u.c", "src/main.c"}, tree.CSourceFiles())
}

func TestScan_FilesSortedByPath(t *testing.T) {
	root := writeTree(t, map[string]string{
		"z.c": "",
		"a.c": "",
		"m.h": "",
	})

	tree, err := Scan(root)
	require.NoError(t, err)

	var paths []string
	for _, f := range tree.Files {
		paths = append(paths, f.Path)
	}
	assert.Equal(t, []string{"a.c", "m.h", "z.c"}, paths)
}

func TestScan_DerivedFolders(t *testing.T) {
	root := writeTree(t, map[string]string{
		"inc/foo.h":     "",
		"inc/sub/bar.h": "",
		"src/main.c":    "",
		"top.c":         "",
		"top.h":         "",
	})

	tree, err := Scan(root)
	require.NoError(t, err)

	assert.Equal(t, []string{".", "inc", "inc/sub"}, tree.HeaderFolders())
	assert.Equal(t, []string{".", "src"}, tree.CSourceFolders())
}

func TestScan_MissingRoot(t *testing.T) {
	_, err := Scan(filepath.Join(t.TempDir(), "does-not-exist"))
	assert.ErrorIs(t, err, ErrScan)
}

func TestScan_RootIsFile(t *testing.T) {
	root := writeTree(t, map[string]string{"only.c": ""})
	_, err := Scan(filepath.Join(root, "only.c"))
	assert.ErrorIs(t, err, ErrScan)
}

func TestSourceFile_Folder(t *testing.T) {
	assert.Equal(t, "src/drivers", SourceFile{Path: "src/drivers/uart.c"}.Folder())
	assert.Equal(t, ".", SourceFile{Path: "main.c"}.Folder())
}

func TestHasHeader(t *testing.T) {
	root := writeTree(t, map[string]string{"inc/foo.h": "", "src/main.c": ""})
	tree, err := Scan(root)
	require.NoError(t, err)

	assert.True(t, tree.HasHeader("inc/foo.h"))
	assert.False(t, tree.HasHeader("inc/missing.h"))
	assert.False(t, tree.HasHeader("src/main.c"))
}

func TestReader_ServesTreeRelativePaths(t *testing.T) {
	root := writeTree(t, map[string]string{"src/main.c": "#include \"foo.h\"\n"})

	read := Reader(root)
	content, err := read("src/main.c")
	require.NoError(t, err)
	assert.Equal(t, "#include \"foo.h\"\n", string(content))

	_, err = read("src/missing.c")
	assert.Error(t, err)
}
