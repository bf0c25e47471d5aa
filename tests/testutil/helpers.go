// Package testutil provides shared test helpers used across integration
// and unit test packages.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// RepoRoot returns the absolute path to the repository root by walking
// up from the current working directory. It fails the test if the
// working directory cannot be determined.
func RepoRoot(t *testing.T) string {
	t.Helper()
	dir, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(dir, "..", ".."))
}

// Fixture returns the path of a file under the repository's fixtures
// directory.
func Fixture(t *testing.T, name string) string {
	t.Helper()
	return filepath.Join(RepoRoot(t), "fixtures", name)
}

// ReadFixture loads a fixture file, failing the test on error.
func ReadFixture(t *testing.T, name string) []byte {
	t.Helper()
	data, err := os.ReadFile(Fixture(t, name))
	require.NoError(t, err)
	return data
}
