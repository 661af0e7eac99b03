package testmode

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// EnvVar is the environment variable that selects the test mode.
const EnvVar = "AZURE_TEST_MODE"

// Resolve reads EnvVar through lookup, which has the same contract as os.LookupEnv. An unset
// variable yields Default. A value that is not a supported mode is an error: falling back
// silently could run tests against live services nobody asked for.
func Resolve(lookup func(string) (string, bool)) (Mode, error) {
	value := optionalEnv(lookup, EnvVar)
	if !value.IsDefined() {
		return Default, nil
	}
	m, err := Parse(value.StringValue())
	if err != nil {
		return Default, fmt.Errorf("%s=%q not supported: %w", EnvVar, strings.ToLower(value.StringValue()), err)
	}
	return m, nil
}

// MustResolve is like Resolve using the process environment, but panics on an unsupported value.
func MustResolve() Mode {
	m, err := Resolve(os.LookupEnv)
	if err != nil {
		panic(err)
	}
	return m
}

var current = sync.OnceValue(MustResolve)

// Current returns the mode for this process. It is resolved on first use and never again.
func Current() Mode {
	return current()
}

func optionalEnv(lookup func(string) (string, bool), name string) ldvalue.OptionalString {
	if lookup == nil {
		return ldvalue.OptionalString{}
	}
	if v, ok := lookup(name); ok {
		return ldvalue.NewOptionalString(v)
	}
	return ldvalue.OptionalString{}
}
