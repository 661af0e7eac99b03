package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/heaths/recorded-tests/logging"
	"github.com/heaths/recorded-tests/testmode"
	"github.com/heaths/recorded-tests/transform"

	"github.com/fatih/color"
)

type ConsoleGenerateLogger struct {
	Out                  io.Writer
	DebugOutputOnFailure bool
	DebugOutputOnSuccess bool
}

var (
	failedColor  = color.New(color.FgRed, color.Bold)
	skippedColor = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed)
)

func (c *ConsoleGenerateLogger) PackageStarted(dir string) {
	fmt.Fprintf(c.Out, "[%s]\n", dir)
}

func (c *ConsoleGenerateLogger) PackageError(dir string, err error) {
	for _, line := range strings.Split(err.Error(), "\n") {
		errorColor.Fprintf(c.Out, "  %s\n", line)
	}
}

func (c *ConsoleGenerateLogger) TestGenerated(dir string, test transform.Test, skipped bool) {
	if skipped {
		skippedColor.Fprintf(c.Out, "  SKIPPED: %s (unless %s=live)\n", test.Wrapper, testmode.EnvVar)
		return
	}
	fmt.Fprintf(c.Out, "  %s\n", test.Wrapper)
}

func (c *ConsoleGenerateLogger) PackageFinished(dir string, failed bool, debugOutput logging.Transcript) {
	if failed {
		failedColor.Fprintf(c.Out, "  FAILED: %s\n", dir)
	}
	if len(debugOutput) > 0 &&
		((failed && c.DebugOutputOnFailure) || (!failed && c.DebugOutputOnSuccess)) {
		debugOutput.Print(c.Out, "    DEBUG ")
	}
}
