package filex

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureSubDir(t *testing.T) {
	orig, err := os.Getwd()
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.Chdir(orig) })

	tmp := t.TempDir()
	require.NoError(t, os.Chdir(tmp))

	got, err := EnsureSubDir("data")
	require.NoError(t, err)

	info, err := os.Stat(got)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	// macOS tempdirs resolve through symlinks, compare the suffix only.
	assert.Equal(t, "data", filepath.Base(got))

	// Existing directory is fine.
	again, err := EnsureSubDir("data")
	require.NoError(t, err)
	assert.Equal(t, got, again)
}
