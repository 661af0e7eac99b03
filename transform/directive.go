package transform

import (
	"fmt"
	"go/ast"
	"strings"
)

// Directive marks a function as a recorded test. It may be followed by the tag "live".
const Directive = "//recorded:test"

// LiveTag marks a test that only runs in live mode.
const LiveTag = "live"

type directive struct {
	comment  *ast.Comment
	liveOnly bool
}

// parseDirective reports whether c is a directive comment and, if so, parses its arguments.
func parseDirective(c *ast.Comment) (directive, bool, error) {
	rest, ok := strings.CutPrefix(c.Text, Directive)
	if !ok {
		return directive{}, false, nil
	}
	if rest != "" && rest[0] != ' ' && rest[0] != '\t' {
		// Some other directive such as //recorded:testdata.
		return directive{}, false, nil
	}
	d := directive{comment: c}
	switch args := strings.Fields(rest); {
	case len(args) == 0:
	case len(args) == 1 && args[0] == LiveTag:
		d.liveOnly = true
	default:
		return d, true, fmt.Errorf("malformed directive arguments %q: expected nothing or %q", strings.TrimSpace(rest), LiveTag)
	}
	return d, true, nil
}
