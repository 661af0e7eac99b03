// Package recorded runs tests that receive a recording.TestContext.
//
// Generated tests (see the recorded-tests command) call Await for asynchronous bodies and
// refer to LiveOnlyReason when they skip. Suites that do not use the generator can call Run or
// RunAsync from an ordinary TestXxx function instead:
//
//	func TestRows(t *testing.T) {
//		recorded.Run(t, func(ctx *recording.TestContext) {
//			require.DirExists(ctx, ctx.RecordingsDir())
//		}, recorded.LiveOnly())
//	}
package recorded
