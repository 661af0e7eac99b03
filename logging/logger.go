package logging

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

const timestampFormat = "2006-01-02 15:04:05.000"

// Logger is the minimal logging interface used throughout recorded-tests. *log.Logger
// satisfies it.
type Logger interface {
	Printf(format string, args ...interface{})
}

// Discard drops everything logged to it.
var Discard Logger = discard{}

type discard struct{}

func (discard) Printf(string, ...interface{}) {}

// Entry is one line of captured debug output.
type Entry struct {
	At   time.Time
	Line string
}

// Transcript is the debug output captured while generating one package.
type Transcript []Entry

// Capture holds debug output in memory until the generator knows whether the package it
// belongs to failed. Messages spanning several lines become one entry per line so that
// stack traces stay readable when printed. It is safe for concurrent use.
type Capture struct {
	mu      sync.Mutex
	entries Transcript
}

func (c *Capture) Printf(format string, args ...interface{}) {
	now := time.Now()
	text := strings.TrimSuffix(fmt.Sprintf(format, args...), "\n")

	c.mu.Lock()
	defer c.mu.Unlock()
	for _, line := range strings.Split(text, "\n") {
		c.entries = append(c.entries, Entry{At: now, Line: line})
	}
}

// Transcript returns a copy of everything captured so far.
func (c *Capture) Transcript() Transcript {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append(Transcript(nil), c.entries...)
}

// Print writes each entry on its own line after indent and a timestamp.
func (t Transcript) Print(w io.Writer, indent string) {
	for _, e := range t {
		fmt.Fprintf(w, "%s[%s] %s\n", indent, e.At.Format(timestampFormat), e.Line)
	}
}
