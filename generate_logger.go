package main

import (
	"github.com/heaths/recorded-tests/logging"
	"github.com/heaths/recorded-tests/transform"
)

// GenerateLogger reports progress as each package directory is processed.
type GenerateLogger interface {
	PackageStarted(dir string)
	PackageError(dir string, err error)
	TestGenerated(dir string, test transform.Test, skipped bool)
	PackageFinished(dir string, failed bool, debugOutput logging.Transcript)
}

type nullGenerateLogger struct{}

func (n nullGenerateLogger) PackageStarted(string)                            {}
func (n nullGenerateLogger) PackageError(string, error)                       {}
func (n nullGenerateLogger) TestGenerated(string, transform.Test, bool)       {}
func (n nullGenerateLogger) PackageFinished(string, bool, logging.Transcript) {}

