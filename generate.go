package main

import (
	"bytes"
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"runtime/debug"
	"sort"
	"strings"

	"github.com/heaths/recorded-tests/logging"
	"github.com/heaths/recorded-tests/recording"
	"github.com/heaths/recorded-tests/testmode"
	"github.com/heaths/recorded-tests/transform"

	"golang.org/x/mod/modfile"
)

const generatedPrefix = "// Code generated by " + commandName

var errStale = errors.New("generated file is out of date; run go generate")

type generator struct {
	params      commandParams
	mode        testmode.Mode
	logger      GenerateLogger
	debugLogger logging.Logger
}

// Run generates the tests of every directory in g.params and returns the outcome for each.
func (g *generator) Run() Results {
	var results Results
	g.debugLogger.Printf("Generating %s=%s tests for %d package(s)", testmode.EnvVar, g.mode, len(g.params.dirs))
	for _, dir := range g.params.dirs {
		results.add(g.runPackage(dir))
	}
	return results
}

func (g *generator) runPackage(dir string) (result PackageResult) {
	result = PackageResult{Dir: dir, Output: filepath.Join(dir, g.params.output)}
	var captured logging.Capture

	g.logger.PackageStarted(dir)
	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("unexpected panic while generating: %+v\n%s", r, string(debug.Stack()))
			result.Errors = append(result.Errors, err)
			g.logger.PackageError(dir, err)
		}
		g.logger.PackageFinished(dir, len(result.Errors) > 0, captured.Transcript())
	}()

	if err := g.generatePackage(dir, &result, &captured); err != nil {
		result.Errors = append(result.Errors, err)
		g.logger.PackageError(dir, err)
	}
	return result
}

func (g *generator) generatePackage(dir string, result *PackageResult, debugLogger logging.Logger) error {
	fset := token.NewFileSet()
	files, err := parseDir(fset, dir, g.params.output)
	if err != nil {
		return err
	}
	debugLogger.Printf("Parsed %d files in %s", len(files), dir)

	pkg, err := transform.Inspect(fset, files)
	if err != nil {
		return err
	}
	result.Tests = len(pkg.Tests)

	if len(pkg.Tests) == 0 {
		debugLogger.Printf("No %s directives found", transform.Directive)
		return g.removeStale(result.Output, debugLogger)
	}

	modulePath, err := modulePathOf(dir)
	if err != nil {
		return err
	}
	debugLogger.Printf("Module path is %s; mode is %s", modulePath, g.mode)

	src, err := transform.Generate(pkg, transform.Options{
		ModulePath: modulePath,
		Mode:       g.mode,
		Command:    g.params.commandLine(),
	})
	if err != nil {
		return err
	}
	for _, t := range pkg.Tests {
		g.logger.TestGenerated(dir, t, t.LiveOnly && g.mode < testmode.Live)
	}

	if g.params.check {
		existing, err := os.ReadFile(result.Output)
		if err != nil || !bytes.Equal(existing, src) {
			return fmt.Errorf("%s: %w", result.Output, errStale)
		}
		debugLogger.Printf("%s is up to date", result.Output)
		return nil
	}
	debugLogger.Printf("Writing %s", result.Output)
	return os.WriteFile(result.Output, src, 0o644)
}

// removeStale deletes a file this command generated earlier for tests that no longer exist.
func (g *generator) removeStale(path string, debugLogger logging.Logger) error {
	existing, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	} else if err != nil {
		return err
	}
	if !bytes.HasPrefix(existing, []byte(generatedPrefix)) {
		return nil
	}
	if g.params.check {
		return fmt.Errorf("%s: %w", path, errStale)
	}
	debugLogger.Printf("Removing %s", path)
	return os.Remove(path)
}

// parseDir parses the Go files go build would consider in dir, except the generated output.
func parseDir(fset *token.FileSet, dir, output string) ([]*ast.File, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || name == output || !strings.HasSuffix(name, ".go") ||
			strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".") {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	var files []*ast.File
	for _, name := range names {
		f, err := parser.ParseFile(fset, filepath.Join(dir, name), nil, parser.ParseComments)
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	return files, nil
}

// modulePathOf returns the recording module path for the package in dir.
func modulePathOf(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	if abs, err = filepath.EvalSymlinks(abs); err != nil {
		return "", err
	}
	root, err := recording.ProjectRoot(abs)
	if err != nil {
		return "", err
	}
	goMod := filepath.Join(root, recording.ManifestFile)
	data, err := os.ReadFile(goMod)
	if err != nil {
		return "", err
	}
	module := modfile.ModulePath(data)
	rel, err := filepath.Rel(root, abs)
	if err != nil {
		return "", err
	}
	importPath := module
	if rel != "." {
		importPath += "/" + filepath.ToSlash(rel)
	}
	return recording.ModulePath(importPath, goMod)
}
