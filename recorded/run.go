package recorded

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/heaths/recorded-tests/recording"
	"github.com/heaths/recorded-tests/testmode"
)

// LiveOnlyReason is reported for live-only tests that are skipped because the mode is not Live.
const LiveOnlyReason = "test requires " + testmode.EnvVar + "=live"

// Option customizes Run and RunAsync.
type Option func(*options)

type options struct {
	liveOnly bool
	mode     *testmode.Mode
}

// LiveOnly skips the test unless the mode is Live.
func LiveOnly() Option {
	return func(o *options) { o.liveOnly = true }
}

// WithMode overrides the mode, which otherwise is testmode.Current().
func WithMode(m testmode.Mode) Option {
	return func(o *options) { o.mode = &m }
}

// Run is the run-time counterpart of a generated recorded test: it decides whether to skip,
// builds a TestContext for t and calls body.
//
// Unlike generated tests, the live-only check happens each time the test runs.
func Run(t *testing.T, body func(*recording.TestContext), opts ...Option) {
	t.Helper()
	c := start(t, opts)
	body(c)
}

// RunAsync is like Run for a body that is scheduled as a task with Await.
func RunAsync(t *testing.T, body func(*recording.TestContext) error, opts ...Option) {
	t.Helper()
	c := start(t, opts)
	Await(t, func() error { return body(c) })
}

func start(t *testing.T, opts []Option) *recording.TestContext {
	t.Helper()
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	mode := testmode.Current()
	if o.mode != nil {
		mode = *o.mode
	}
	if o.liveOnly && mode < testmode.Live {
		t.Skip(LiveOnlyReason)
	}

	// Skip start, Run or RunAsync to reach the test function itself.
	pc, file, _, ok := runtime.Caller(2)
	if !ok {
		t.Fatal("cannot determine the caller of the recorded test")
	}
	root, err := recording.ProjectRoot(file)
	if err != nil {
		t.Fatal(err)
	}
	modulePath, err := recording.ModulePath(
		recording.PackageOfFunc(runtime.FuncForPC(pc).Name()),
		filepath.Join(root, recording.ManifestFile),
	)
	if err != nil {
		t.Fatal(err)
	}
	return recording.New(t, mode, modulePath, file, t.Name())
}
