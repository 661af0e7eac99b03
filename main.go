// Command recorded-tests generates go test functions for test bodies marked with a
// //recorded:test directive. Add this line to a _test.go file of each package that has
// recorded tests:
//
//	//go:generate go run github.com/heaths/recorded-tests
//
// The test mode is read from AZURE_TEST_MODE when the command runs and is baked into the
// generated file. Regenerate after changing it, or use -check in CI to detect a file that was
// generated for another mode.
//
// With -tags the command only validates AZURE_TEST_MODE and prints the build tag that selects
// the same mode for testmode.Build:
//
//	go test -tags "$(go run github.com/heaths/recorded-tests -tags)" ./...
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/heaths/recorded-tests/logging"
	"github.com/heaths/recorded-tests/testmode"
)

func main() {
	var params commandParams
	if !params.Read(os.Args) {
		os.Exit(1)
	}

	mode, err := testmode.Resolve(os.LookupEnv)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if params.printTags {
		fmt.Println(testmode.Tag(mode))
		return
	}

	mainDebugLogger := logging.Discard
	if params.debugAll {
		mainDebugLogger = log.New(os.Stdout, "", log.LstdFlags)
	}

	g := &generator{
		params:      params,
		mode:        mode,
		debugLogger: mainDebugLogger,
		logger: &ConsoleGenerateLogger{
			Out:                  os.Stdout,
			DebugOutputOnFailure: params.debug || params.debugAll,
			DebugOutputOnSuccess: params.debugAll,
		},
	}
	results := g.Run()
	fmt.Println()
	printResults(results)
	if !results.OK() {
		os.Exit(1)
	}
}
