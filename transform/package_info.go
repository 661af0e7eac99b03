// Package transform turns test bodies marked with a //recorded:test directive into go test
// functions.
//
// A test body is an ordinary function in a _test.go file:
//
//	//recorded:test live
//	func listsWidgets(ctx *recording.TestContext) error {
//		...
//	}
//
// It may take no parameters or a single *recording.TestContext, and may return nothing
// (synchronous) or an error (asynchronous). Generate emits a TestListsWidgets function that
// skips the test unless the generation-time mode is live, builds the context, and calls the
// body. Inspect reports every directive that cannot be honoured as a Diagnostic, so a bad
// directive fails go generate rather than the test run.
package transform
