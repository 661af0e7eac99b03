package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadDefaults(t *testing.T) {
	var p commandParams
	assert.True(t, p.Read([]string{commandName}))
	assert.Equal(t, []string{"."}, p.dirs)
	assert.Equal(t, defaultOutputFile, p.output)
	assert.False(t, p.check)
	assert.Equal(t, commandName, p.commandLine())
}

func TestReadFlags(t *testing.T) {
	var p commandParams
	assert.True(t, p.Read([]string{commandName, "-check", "-o", "my recorded_test.go", "a", "b"}))
	assert.True(t, p.check)
	assert.Equal(t, []string{"a", "b"}, p.dirs)
	assert.Equal(t, "recorded-tests -o 'my recorded_test.go'", p.commandLine())
}

func TestReadRejectsBadOutput(t *testing.T) {
	for _, output := range []string{"", "gen.go", "sub/gen_test.go"} {
		var p commandParams
		assert.False(t, p.Read([]string{commandName, "-o", output}), output)
	}
}
