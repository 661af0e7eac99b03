package logging

import (
	"bytes"
	"errors"
	"regexp"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCapture(t *testing.T) {
	var c Capture
	c.Printf("parsed %d files", 3)
	c.Printf("wrote %s", "recorded_gen_test.go")

	transcript := c.Transcript()
	require.Len(t, transcript, 2)
	assert.Equal(t, "parsed 3 files", transcript[0].Line)
	assert.Equal(t, "wrote recorded_gen_test.go", transcript[1].Line)
	assert.False(t, transcript[0].At.IsZero())
}

func TestCaptureSplitsLines(t *testing.T) {
	var c Capture
	c.Printf("unexpected panic: %v\n%s\n", errors.New("boom"), "goroutine 1 [running]:")

	transcript := c.Transcript()
	require.Len(t, transcript, 2)
	assert.Equal(t, "unexpected panic: boom", transcript[0].Line)
	assert.Equal(t, "goroutine 1 [running]:", transcript[1].Line)
	assert.Equal(t, transcript[0].At, transcript[1].At)
}

func TestCaptureTranscriptIsACopy(t *testing.T) {
	var c Capture
	c.Printf("first")
	transcript := c.Transcript()
	c.Printf("second")
	assert.Len(t, transcript, 1)
	assert.Len(t, c.Transcript(), 2)
}

func TestCaptureConcurrentUse(t *testing.T) {
	var c Capture
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c.Printf("message %d", i)
		}(i)
	}
	wg.Wait()
	assert.Len(t, c.Transcript(), 10)
}

func TestTranscriptPrint(t *testing.T) {
	var c Capture
	c.Printf("hello")
	var buf bytes.Buffer
	c.Transcript().Print(&buf, "    DEBUG ")
	assert.Regexp(t, regexp.MustCompile(`^    DEBUG \[\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}\.\d{3}\] hello\n$`), buf.String())
}

func TestDiscard(t *testing.T) {
	assert.NotPanics(t, func() { Discard.Printf("ignored %d", 1) })
}
