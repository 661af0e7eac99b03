package dotted

import (
	"testing"

	"github.com/heaths/recorded-tests/recorded"
	"github.com/heaths/recorded-tests/recording"
	"github.com/heaths/recorded-tests/testmode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunRecordsUnderDottedDirectory(t *testing.T) {
	t.Setenv(recording.ManifestDirEnvVar, "")
	root, err := recording.ProjectRoot(".")
	require.NoError(t, err)

	recorded.Run(t, func(ctx *recording.TestContext) {
		assert.Equal(ctx, recording.RecordingsDir(root, "recorded-tests::example::dotted.pkg"), ctx.RecordingsDir())
	}, recorded.WithMode(testmode.Playback))
}
