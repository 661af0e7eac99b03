package example

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/heaths/recorded-tests/recording"
	"github.com/heaths/recorded-tests/testmode"

	"github.com/stretchr/testify/assert"
)

//go:generate go run github.com/heaths/recorded-tests

//recorded:test
func itWorks(ctx *recording.TestContext) {
	assert.Equal(ctx, uint64(4), Add(2, 2))
}

// addsWithoutContext does not need a test context, so none is built.
//
//recorded:test
func addsWithoutContext() error {
	if sum := Add(40, 2); sum != 42 {
		return fmt.Errorf("expected 40 + 2 to be 42, got %d", sum)
	}
	return nil
}

//recorded:test live
func itWorksAsync(ctx *recording.TestContext) error {
	assert.Equal(ctx, testmode.Live, ctx.TestMode())
	assert.Equal(ctx, "itWorksAsync", ctx.TestName())

	i := uint64(0)
	done := make(chan uint64)
	go func(i uint64) {
		done <- Add(i, 1)
	}(i)
	assert.Equal(ctx, uint64(1), <-done)
	assert.Equal(ctx, uint64(0), i)
	return nil
}

//recorded:test
func recordsUnderPackage(ctx *recording.TestContext) {
	assert.True(ctx, strings.HasSuffix(ctx.RecordingsDir(), filepath.Join("example", "data")), ctx.RecordingsDir())
	assert.Equal(ctx, "recordsUnderPackage", ctx.TestName())
}
