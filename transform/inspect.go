package transform

import (
	"go/ast"
	"go/token"
	"go/types"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// RecordingPackage is the import path of the package that declares the context type.
const RecordingPackage = "github.com/heaths/recorded-tests/recording"

const contextTypeName = "TestContext"

// Package is the set of recorded tests found in one Go package.
type Package struct {
	Name  string
	Tests []Test

	// Identifiers declared at package level, which generated imports must not shadow.
	names map[string]bool
}

// Test is a function marked with Directive. The function itself is the test body; the
// generator wraps it in a TestXxx function that go test can discover.
type Test struct {
	Name     string
	Wrapper  string
	File     string // base name of the declaring file
	Pos      token.Position
	Doc      []string // doc comment lines, without the directive
	LiveOnly bool
	Async    bool          // the body returns an error and runs as a task
	Context  *ContextParam // nil if the body takes no parameter
}

// ContextParam describes the context parameter of a test body.
type ContextParam struct {
	Name    string // name bound in the generated test
	ByValue bool
}

// Inspect finds every function marked with Directive in files and validates its shape. All
// files are expected to come from one directory; the directives must all be in _test.go files
// of a single package.
//
// If any directive is invalid, the error is a Diagnostics listing every problem.
func Inspect(fset *token.FileSet, files []*ast.File) (*Package, error) {
	var diags Diagnostics
	pkg := &Package{names: make(map[string]bool)}

	for _, f := range files {
		found := make(map[*ast.Comment]directive)
		malformed := make(map[*ast.Comment]bool)
		for _, group := range f.Comments {
			for _, c := range group.List {
				d, ok, err := parseDirective(c)
				if !ok {
					continue
				}
				found[c] = d
				if err != nil {
					malformed[c] = true
					diags.add(fset.Position(c.Pos()), "%s", err)
				}
			}
		}
		if len(found) == 0 {
			continue
		}

		filename := fset.Position(f.Package).Filename
		if !strings.HasSuffix(filename, "_test.go") {
			for c := range found {
				if !malformed[c] {
					diags.add(fset.Position(c.Pos()), "%s is only valid in _test.go files", Directive)
				}
			}
			continue
		}
		if pkg.Name == "" {
			pkg.Name = f.Name.Name
		} else if pkg.Name != f.Name.Name {
			diags.add(fset.Position(f.Name.Pos()),
				"recorded tests in packages %s and %s cannot share a generated file", pkg.Name, f.Name.Name)
			continue
		}

		for _, decl := range f.Decls {
			fn, ok := decl.(*ast.FuncDecl)
			if !ok || fn.Doc == nil {
				continue
			}
			var ds []directive
			var doc []string
			for _, c := range fn.Doc.List {
				if d, ok := found[c]; ok {
					ds = append(ds, d)
					delete(found, c)
					continue
				}
				doc = append(doc, c.Text)
			}
			switch {
			case len(ds) == 0:
				continue
			case len(ds) > 1:
				diags.add(fset.Position(ds[1].comment.Pos()), "%s repeated", Directive)
				continue
			case malformed[ds[0].comment]:
				continue
			}
			if t, ok := inspectFunc(fset, f, fn, ds[0], &diags); ok {
				t.Doc = trimDoc(doc)
				pkg.Tests = append(pkg.Tests, t)
			}
		}

		for c := range found {
			if !malformed[c] {
				diags.add(fset.Position(c.Pos()), "%s is only valid on functions", Directive)
			}
		}
	}

	for _, f := range files {
		if f.Name.Name == pkg.Name {
			collectNames(f, pkg.names)
		}
	}
	wrappers := make(map[string]string)
	for _, t := range pkg.Tests {
		if pkg.names[t.Wrapper] {
			diags.add(t.Pos, "generated test %s collides with an existing declaration", t.Wrapper)
		} else if other, dup := wrappers[t.Wrapper]; dup {
			diags.add(t.Pos, "generated test %s would wrap both %s and %s", t.Wrapper, other, t.Name)
		}
		wrappers[t.Wrapper] = t.Name
	}

	if err := diags.err(); err != nil {
		return nil, err
	}
	return pkg, nil
}

func inspectFunc(fset *token.FileSet, file *ast.File, fn *ast.FuncDecl, d directive, diags *Diagnostics) (Test, bool) {
	pos := fset.Position(fn.Name.Pos())
	name := fn.Name.Name

	switch {
	case fn.Recv != nil:
		diags.add(pos, "%s is only valid on functions, not methods", Directive)
		return Test{}, false
	case fn.Type.TypeParams != nil && fn.Type.TypeParams.NumFields() > 0:
		diags.add(pos, "generic function %s cannot be a recorded test", name)
		return Test{}, false
	case fn.Body == nil:
		diags.add(pos, "function %s has no body", name)
		return Test{}, false
	case name == "init" || name == "main" || name == "_":
		diags.add(pos, "%s cannot be a recorded test", name)
		return Test{}, false
	}
	if prefix, ok := goTestPrefix(name); ok {
		diags.add(pos, "name %s collides with go test discovery of %s functions", name, prefix)
		return Test{}, false
	}

	t := Test{
		Name:     name,
		Wrapper:  wrapperName(name),
		File:     filepath.Base(pos.Filename),
		Pos:      pos,
		LiveOnly: d.liveOnly,
	}
	ok := true

	switch params := fn.Type.Params; params.NumFields() {
	case 0:
	case 1:
		field := params.List[0]
		byValue, isContext := contextType(file, field.Type)
		if !isContext {
			diags.add(fset.Position(field.Type.Pos()),
				"first parameter must be *recording.TestContext from %s, not %s", RecordingPackage, types.ExprString(field.Type))
			ok = false
			break
		}
		bind := "ctx"
		if len(field.Names) == 1 && field.Names[0].Name != "_" {
			bind = field.Names[0].Name
		}
		t.Context = &ContextParam{Name: bind, ByValue: byValue}
	default:
		diags.add(fset.Position(params.Pos()), "at most one parameter is allowed, of type *recording.TestContext")
		ok = false
	}

	switch results := fn.Type.Results; {
	case results == nil || results.NumFields() == 0:
	case results.NumFields() == 1 && isErrorType(results.List[0].Type):
		t.Async = true
	default:
		diags.add(fset.Position(results.Pos()), "results must be empty or a single error")
		ok = false
	}

	return t, ok
}

// contextType reports whether expr names the context type, either by its simple name or
// qualified with the name file imports the recording package as.
func contextType(file *ast.File, expr ast.Expr) (byValue, ok bool) {
	byValue = true
	if star, isStar := expr.(*ast.StarExpr); isStar {
		expr = star.X
		byValue = false
	}
	switch e := expr.(type) {
	case *ast.Ident:
		return byValue, e.Name == contextTypeName
	case *ast.SelectorExpr:
		x, isIdent := e.X.(*ast.Ident)
		return byValue, isIdent && e.Sel.Name == contextTypeName && importsRecordingAs(file, x.Name)
	}
	return false, false
}

func importsRecordingAs(file *ast.File, name string) bool {
	for _, spec := range file.Imports {
		path, err := strconv.Unquote(spec.Path.Value)
		if err != nil || path != RecordingPackage {
			continue
		}
		if spec.Name == nil {
			return name == "recording"
		}
		if spec.Name.Name == name {
			return true
		}
	}
	return false
}

func isErrorType(expr ast.Expr) bool {
	id, ok := expr.(*ast.Ident)
	return ok && id.Name == "error"
}

// goTestPrefix reports whether go test would already treat name as a test, benchmark, fuzz
// target or example.
func goTestPrefix(name string) (string, bool) {
	for _, prefix := range []string{"Test", "Benchmark", "Fuzz", "Example"} {
		rest, ok := strings.CutPrefix(name, prefix)
		if !ok {
			continue
		}
		if r, _ := utf8.DecodeRuneInString(rest); rest == "" || !unicode.IsLower(r) {
			return prefix, true
		}
	}
	return "", false
}

func wrapperName(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	return "Test" + string(unicode.ToUpper(r)) + name[size:]
}

func collectNames(f *ast.File, names map[string]bool) {
	for _, decl := range f.Decls {
		switch d := decl.(type) {
		case *ast.FuncDecl:
			if d.Recv == nil {
				names[d.Name.Name] = true
			}
		case *ast.GenDecl:
			for _, spec := range d.Specs {
				switch s := spec.(type) {
				case *ast.TypeSpec:
					names[s.Name.Name] = true
				case *ast.ValueSpec:
					for _, n := range s.Names {
						names[n.Name] = true
					}
				}
			}
		}
	}
}

// trimDoc drops the empty comment lines that separated the directive from the doc text.
func trimDoc(doc []string) []string {
	for len(doc) > 0 && strings.TrimSpace(doc[len(doc)-1]) == "//" {
		doc = doc[:len(doc)-1]
	}
	return doc
}
