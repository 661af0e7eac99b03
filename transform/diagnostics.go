package transform

import (
	"fmt"
	"go/token"
	"sort"
	"strings"
)

// Diagnostic describes one recorded test that cannot be generated.
type Diagnostic struct {
	Pos     token.Position
	Message string
}

func (d Diagnostic) Error() string {
	return fmt.Sprintf("%s: %s", d.Pos, d.Message)
}

// Diagnostics is the error returned by Inspect. It holds every problem found, in source order.
type Diagnostics []Diagnostic

func (d Diagnostics) Error() string {
	lines := make([]string, 0, len(d))
	for _, diag := range d {
		lines = append(lines, diag.Error())
	}
	return strings.Join(lines, "\n")
}

func (d *Diagnostics) add(pos token.Position, format string, args ...interface{}) {
	*d = append(*d, Diagnostic{Pos: pos, Message: fmt.Sprintf(format, args...)})
}

func (d Diagnostics) err() error {
	if len(d) == 0 {
		return nil
	}
	sort.SliceStable(d, func(i, j int) bool {
		a, b := d[i].Pos, d[j].Pos
		if a.Filename != b.Filename {
			return a.Filename < b.Filename
		}
		return a.Offset < b.Offset
	})
	return d
}
