package transform

import (
	"bytes"
	"fmt"
	"go/format"
	"strconv"
	"strings"
	"text/template"

	"github.com/heaths/recorded-tests/testmode"
)

const (
	recordedPackage = "github.com/heaths/recorded-tests/recorded"
	testmodePackage = "github.com/heaths/recorded-tests/testmode"
)

// Options control how Generate renders a package's tests.
type Options struct {
	// ModulePath is passed to recording.New for every test; see recording.ModulePath.
	ModulePath string

	// Mode is baked into the generated tests. Live-only tests are skipped unconditionally when
	// it is lower than testmode.Live.
	Mode testmode.Mode

	// Command, if set, is recorded in the header as the command that produced the file.
	Command string
}

// FormatError is returned when the generated source cannot be formatted. Source holds the
// unformatted code.
type FormatError struct {
	Err    error
	Source string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("formatting generated code: %v", e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

var fileTemplate = template.Must(template.New("file").Parse(`// Code generated by recorded-tests with {{.EnvVar}}={{.Mode}}; DO NOT EDIT.
{{- if .Command}}
//
//	{{.Command}}
{{- end}}

package {{.Package}}
{{if .Imports}}
import (
{{- range .Imports}}
	{{.}}
{{- end}}
)
{{end}}
{{- range .Tests}}
{{range .Doc}}
{{.}}
{{- end}}
func {{.Name}}({{.T}} *{{$.Testing}}.T) {
{{- range .Statements}}
	{{.}}
{{- end}}
}
{{end}}`))

type fileData struct {
	EnvVar  string
	Mode    testmode.Mode
	Command string
	Package string
	Imports []string
	Testing string
	Tests   []wrapperData
}

type wrapperData struct {
	Doc        []string
	Name       string
	T          string
	Statements []string
}

// Generate renders the test functions for pkg. Each generated TestXxx skips live-only tests
// when opts.Mode is not Live, builds a TestContext if the body takes one, and calls the body,
// through recorded.Await if the body is asynchronous.
func Generate(pkg *Package, opts Options) ([]byte, error) {
	taken := make(map[string]bool, len(pkg.names))
	for name := range pkg.names {
		taken[name] = true
	}
	for _, t := range pkg.Tests {
		harness, binding := localNames(t)
		taken[harness] = true
		if binding != "" {
			taken[binding] = true
		}
	}

	imports := newImportSet(taken)
	data := fileData{
		EnvVar:  testmode.EnvVar,
		Mode:    opts.Mode,
		Command: opts.Command,
		Package: pkg.Name,
	}
	if len(pkg.Tests) > 0 {
		data.Testing = imports.use("testing", "testing")
	}

	for _, t := range pkg.Tests {
		harness, binding := localNames(t)
		w := wrapperData{
			Doc:  t.Doc,
			Name: t.Wrapper,
			T:    harness,
		}
		if t.LiveOnly && opts.Mode < testmode.Live {
			w.Statements = append(w.Statements,
				fmt.Sprintf("%s.Skip(%s.LiveOnlyReason)", w.T, imports.use("recorded", recordedPackage)))
		}

		var args string
		if c := t.Context; c != nil {
			deref := ""
			if c.ByValue {
				deref = "*"
			}
			w.Statements = append(w.Statements, fmt.Sprintf("%s := %s%s.New(%s, %s.%s, %s, %s, %s)",
				binding,
				deref,
				imports.use("recording", RecordingPackage),
				w.T,
				imports.use("testmode", testmodePackage),
				modeIdent(opts.Mode),
				strconv.Quote(opts.ModulePath),
				strconv.Quote(t.File),
				strconv.Quote(t.Name),
			))
			args = binding
		}

		switch {
		case !t.Async:
			w.Statements = append(w.Statements, fmt.Sprintf("%s(%s)", t.Name, args))
		case args == "":
			w.Statements = append(w.Statements,
				fmt.Sprintf("%s.Await(%s, %s)", imports.use("recorded", recordedPackage), w.T, t.Name))
		default:
			w.Statements = append(w.Statements, fmt.Sprintf("%s.Await(%s, func() error { return %s(%s) })",
				imports.use("recorded", recordedPackage), w.T, t.Name, args))
		}
		data.Tests = append(data.Tests, w)
	}
	data.Imports = imports.specs()

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, &FormatError{Err: err, Source: buf.String()}
	}
	return formatted, nil
}

// localNames picks the wrapper's *testing.T parameter and context variable. Neither may shadow
// the body, and the parameter may not shadow the context.
func localNames(t Test) (harness, binding string) {
	if t.Context != nil {
		binding = t.Context.Name
		for binding == t.Name {
			binding += "_"
		}
	}
	harness = "t"
	if harness == binding || harness == t.Name {
		harness = "tb"
	}
	for harness == binding || harness == t.Name {
		harness += "_"
	}
	return harness, binding
}

func modeIdent(m testmode.Mode) string {
	s := m.String()
	return strings.ToUpper(s[:1]) + s[1:]
}

type importSet struct {
	taken   map[string]bool
	aliases map[string]string // import path to local name
	order   []string
}

func newImportSet(taken map[string]bool) *importSet {
	return &importSet{taken: taken, aliases: make(map[string]string)}
}

// use returns the local name for path, choosing an alias if name is already declared.
func (s *importSet) use(name, path string) string {
	if alias, ok := s.aliases[path]; ok {
		return alias
	}
	alias := name
	for s.taken[alias] {
		alias += "_"
	}
	s.taken[alias] = true
	s.aliases[path] = alias
	s.order = append(s.order, path)
	return alias
}

// specs returns the import lines, standard library first.
func (s *importSet) specs() []string {
	var std, other []string
	for _, path := range s.order {
		spec := strconv.Quote(path)
		if alias := s.aliases[path]; alias != pathBase(path) {
			spec = alias + " " + spec
		}
		if strings.Contains(strings.SplitN(path, "/", 2)[0], ".") {
			other = append(other, spec)
		} else {
			std = append(std, spec)
		}
	}
	if len(std) > 0 && len(other) > 0 {
		std = append(std, "")
	}
	return append(std, other...)
}

func pathBase(path string) string {
	return path[strings.LastIndex(path, "/")+1:]
}
