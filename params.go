package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/alessio/shellescape"
)

const commandName = "recorded-tests"

const defaultOutputFile = "recorded_gen_test.go"

type commandParams struct {
	dirs      []string
	output    string
	check     bool
	printTags bool
	debug     bool
	debugAll  bool
}

func (c *commandParams) Read(args []string) bool {
	fs := flag.NewFlagSet(commandName, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: %s [flags] [package directory ...]\n", commandName)
		fs.PrintDefaults()
	}
	fs.StringVar(&c.output, "o", defaultOutputFile, "name of the generated file in each package directory")
	fs.BoolVar(&c.check, "check", false, "fail if a generated file is missing or out of date instead of writing it")
	fs.BoolVar(&c.printTags, "tags", false, "print the build tag for the current test mode and exit")
	fs.BoolVar(&c.debug, "debug", false, "enable debug logging for packages that fail")
	fs.BoolVar(&c.debugAll, "debug-all", false, "enable debug logging for all packages")

	if err := fs.Parse(args[1:]); err != nil {
		return false
	}
	if c.output == "" || strings.ContainsAny(c.output, `/\`) || !strings.HasSuffix(c.output, "_test.go") {
		fmt.Fprintln(os.Stderr, "-o must be a file name ending in _test.go")
		fs.Usage()
		return false
	}
	c.dirs = fs.Args()
	if len(c.dirs) == 0 {
		c.dirs = []string{"."}
	}
	return true
}

// commandLine reproduces the invocation for the header of generated files.
func (c *commandParams) commandLine() string {
	var b commandBuilder
	b.add(commandName)
	if c.output != defaultOutputFile {
		b.add("-o", c.output)
	}
	return b.String()
}

type commandBuilder []string

func (b *commandBuilder) add(args ...string) {
	for _, a := range args {
		*b = append(*b, shellescape.Quote(a))
	}
}

func (b commandBuilder) String() string {
	return strings.Join(b, " ")
}
