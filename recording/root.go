package recording

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// ManifestDirEnvVar, if set, names the project root directly and skips discovery.
const ManifestDirEnvVar = "RECORDED_TESTS_MANIFEST_DIR"

// ManifestFile marks the root of a project.
const ManifestFile = "go.mod"

// ErrNoProjectRoot is returned when no ancestor of a test's source file contains ManifestFile.
var ErrNoProjectRoot = errors.New("no " + ManifestFile + " found in any parent directory")

// ProjectRoot returns the directory that recordings paths are anchored to.
//
// A relative filePath or ManifestDirEnvVar is resolved against the working directory, which go
// test sets to the directory of the package under test.
func ProjectRoot(filePath string) (string, error) {
	if dir := manifestDir(); dir.IsDefined() && dir.StringValue() != "" {
		abs, err := filepath.Abs(dir.StringValue())
		if err != nil {
			return "", fmt.Errorf("cannot resolve %s=%q: %w", ManifestDirEnvVar, dir.StringValue(), err)
		}
		return abs, nil
	}
	return findProjectRoot(filePath)
}

func manifestDir() ldvalue.OptionalString {
	if v, ok := os.LookupEnv(ManifestDirEnvVar); ok {
		return ldvalue.NewOptionalString(v)
	}
	return ldvalue.OptionalString{}
}

func findProjectRoot(filePath string) (string, error) {
	abs, err := filepath.Abs(filePath)
	if err != nil {
		return "", fmt.Errorf("cannot resolve %q: %w", filePath, err)
	}
	canonical, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", fmt.Errorf("cannot canonicalize %q: %w", filePath, err)
	}

	dir := canonical
	if info, err := os.Stat(canonical); err != nil || !info.IsDir() {
		dir = filepath.Dir(canonical)
	}
	for {
		if info, err := os.Stat(filepath.Join(dir, ManifestFile)); err == nil && !info.IsDir() {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%w (starting from %s)", ErrNoProjectRoot, canonical)
		}
		dir = parent
	}
}
