package recorded

import (
	"fmt"
	"runtime/debug"
	"testing"

	"golang.org/x/sync/errgroup"
)

// Await runs an asynchronous test body as a single task and waits for it to finish. A returned
// error, or a panic inside the task, fails the test.
//
// The task runs on its own goroutine, so it must not call t.FailNow (or require.*) directly;
// report failures by returning an error or with non-fatal assertions. Cancellation and
// timeouts are left to the go test runner.
func Await(t testing.TB, task func() error) {
	t.Helper()
	var g errgroup.Group
	g.Go(func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("unexpected panic in test: %+v\n%s", r, string(debug.Stack()))
			}
		}()
		return task()
	})
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}
}
