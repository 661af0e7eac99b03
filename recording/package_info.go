// Package recording builds the TestContext handed to each recorded test: the active test
// mode, the test's name, and the directory where its recordings live.
//
// Recordings directories are laid out by package. A test in package example.com/widgets/store
// keeps its recordings under <project root>/store/data, where the project root is the
// directory holding go.mod (or the directory named by RECORDED_TESTS_MANIFEST_DIR).
package recording
