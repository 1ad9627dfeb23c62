package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCommand(t *testing.T) {
	orig := Version
	t.Cleanup(func() { Version = orig })
	Version = "v1.2.3"

	out, err := executeRoot(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "casenorm v1.2.3")
	assert.Contains(t, out, "Commit: ")

	out, err = executeRoot(t, "", "version", "--short")
	require.NoError(t, err)
	assert.Equal(t, "v1.2.3\n", out)
}

func TestRootCommand_RegistersSubcommands(t *testing.T) {
	root := newRootCmd()
	for _, name := range []string{"normalize", "version"} {
		sub, _, err := root.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, sub.Name())
	}
}
