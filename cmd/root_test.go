package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_RegistersSubcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, sub := range rootCmd.Commands() {
		names[sub.Name()] = true
	}

	assert.True(t, names["estimate"])
	assert.True(t, names["graph"])
	assert.True(t, names["coverage"])
	assert.True(t, names["watch"])
}

func TestRootCmd_VersionTemplate(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"--version"})
	defer rootCmd.SetArgs(nil)

	require.NoError(t, rootCmd.Execute())

	assert.Contains(t, out.String(), "incpath version")
	assert.Contains(t, out.String(), "Build date:")
	assert.Contains(t, out.String(), "Commit:")
}
