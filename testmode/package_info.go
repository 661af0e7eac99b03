// Package testmode defines the modes a recorded test suite can run in and resolves the
// active mode from the AZURE_TEST_MODE environment variable.
//
// The mode is available in three ways:
//
// 1. Current resolves the variable once per process at run time.
//
// 2. Build is a constant chosen at compile time by one of the build tags test_mode_playback,
// test_mode_record or test_mode_live. "recorded-tests -tags" prints the tag for the current
// environment, so that "go test -tags $(recorded-tests -tags)" keeps both in step.
//
// 3. The generator bakes the mode it was run under into the tests it emits.
package testmode
