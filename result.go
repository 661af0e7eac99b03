package main

import (
	"fmt"
)

type Results struct {
	Packages []PackageResult
	Failures []PackageResult
}

type PackageResult struct {
	Dir    string
	Output string
	Tests  int
	Errors []error
}

func (r Results) OK() bool {
	return len(r.Failures) == 0
}

func (r *Results) add(result PackageResult) {
	r.Packages = append(r.Packages, result)
	if len(result.Errors) > 0 {
		r.Failures = append(r.Failures, result)
	}
}

func (r Results) TestCount() int {
	n := 0
	for _, p := range r.Packages {
		n += p.Tests
	}
	return n
}

func printResults(results Results) {
	if results.OK() {
		fmt.Printf("Generated %d recorded test(s) in %d package(s)\n", results.TestCount(), len(results.Packages))
		return
	}
	fmt.Printf("FAILED: %d of %d package(s):\n", len(results.Failures), len(results.Packages))
	for _, f := range results.Failures {
		fmt.Printf("  %s\n", f.Dir)
	}
}
