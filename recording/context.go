package recording

import (
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/heaths/recorded-tests/testmode"
)

// ModuleSeparator separates the segments of a module path.
const ModuleSeparator = "::"

// RecordingsLeaf is the last path segment of every recordings directory.
const RecordingsLeaf = "data"

// TestContext describes how a single recorded test should run. A new one is built at the start
// of every test and is never shared with another test.
//
// TestContext embeds the testing.TB of the running test, so it can be passed directly to the
// assert and require packages.
type TestContext struct {
	testing.TB
	mode          testmode.Mode
	name          string
	recordingsDir string
}

// Build computes the context for a test. The recordings directory is the project root,
// followed by every segment of modulePath except the first, followed by RecordingsLeaf.
//
// filePath is the source file that declares the test; it is only used to find the project root
// when the manifest directory variable is not set. An error means the environment is
// misconfigured and the test cannot meaningfully continue.
func Build(mode testmode.Mode, modulePath, filePath, testName string) (*TestContext, error) {
	root, err := ProjectRoot(filePath)
	if err != nil {
		return nil, err
	}
	return &TestContext{
		mode:          mode,
		name:          testName,
		recordingsDir: RecordingsDir(root, modulePath),
	}, nil
}

// New is like Build, but reports a configuration error by failing t immediately. If t is nil it
// panics instead.
func New(t testing.TB, mode testmode.Mode, modulePath, filePath, testName string) *TestContext {
	if t != nil {
		t.Helper()
	}
	c, err := Build(mode, modulePath, filePath, testName)
	if err != nil {
		err = fmt.Errorf("cannot create test context for %s: %w", testName, err)
		if t == nil {
			panic(err)
		}
		t.Fatal(err)
		return nil
	}
	c.TB = t
	return c
}

// RecordingsDir joins the module path segments after the first onto root, then appends
// RecordingsLeaf. It depends on nothing else.
func RecordingsDir(root, modulePath string) string {
	parts := []string{root}
	segments := strings.Split(modulePath, ModuleSeparator)
	for _, s := range segments[1:] {
		if s != "" {
			parts = append(parts, s)
		}
	}
	parts = append(parts, RecordingsLeaf)
	return filepath.Join(parts...)
}

// TestMode returns the mode the test runs in.
func (c *TestContext) TestMode() testmode.Mode {
	return c.mode
}

// TestName returns the simple name of the test function.
func (c *TestContext) TestName() string {
	return c.name
}

// RecordingsDir returns the directory that holds recordings for the test. The directory is
// computed, not created.
func (c *TestContext) RecordingsDir() string {
	return c.recordingsDir
}

func (c *TestContext) String() string {
	return fmt.Sprintf("%s (%s, %s)", c.name, c.mode, c.recordingsDir)
}
