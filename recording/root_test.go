package recording

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/heaths/recorded-tests/testmode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectRootPrefersManifestDir(t *testing.T) {
	t.Setenv(ManifestDirEnvVar, "/somewhere/else")
	root, err := ProjectRoot("/not/a/real/file.go")
	require.NoError(t, err)
	assert.Equal(t, "/somewhere/else", root)
}

func TestProjectRootMakesManifestDirAbsolute(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv(ManifestDirEnvVar, "fixtures")

	root, err := ProjectRoot("rows_test.go")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(root), root)
	assert.Equal(t, "fixtures", filepath.Base(root))

	c, err := Build(testmode.Playback, "widgets::store", "rows_test.go", "lists")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(c.RecordingsDir()), c.RecordingsDir())
}

func TestProjectRootWalksUpFromFile(t *testing.T) {
	t.Setenv(ManifestDirEnvVar, "")
	root := makeProject(t)

	found, err := ProjectRoot(filepath.Join(root, "store", "sql", "rows_test.go"))
	require.NoError(t, err)
	assert.Equal(t, root, found)

	found, err = ProjectRoot(filepath.Join(root, "store"))
	require.NoError(t, err)
	assert.Equal(t, root, found)
}

func TestProjectRootFollowsSymlinks(t *testing.T) {
	t.Setenv(ManifestDirEnvVar, "")
	root := makeProject(t)
	link := filepath.Join(t.TempDir(), "link")
	if err := os.Symlink(filepath.Join(root, "store"), link); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	found, err := ProjectRoot(filepath.Join(link, "sql", "rows_test.go"))
	require.NoError(t, err)
	assert.Equal(t, root, found)
}

func TestProjectRootResolvesRelativePaths(t *testing.T) {
	t.Setenv(ManifestDirEnvVar, "")
	root := makeProject(t)
	chdir(t, filepath.Join(root, "store", "sql"))

	found, err := ProjectRoot("rows_test.go")
	require.NoError(t, err)
	assert.Equal(t, root, found)
}

func TestProjectRootFailsForMissingFile(t *testing.T) {
	t.Setenv(ManifestDirEnvVar, "")
	_, err := ProjectRoot(filepath.Join(t.TempDir(), "missing", "x_test.go"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot canonicalize")
}

func TestProjectRootFailsWithoutManifest(t *testing.T) {
	t.Setenv(ManifestDirEnvVar, "")
	dir := t.TempDir()
	if _, err := findProjectRoot(dir); err == nil {
		t.Skip("temporary directory is inside a Go module")
	}
	_, err := ProjectRoot(dir)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoProjectRoot))
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}
