package testmode

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAcceptsAnyCase(t *testing.T) {
	for _, m := range All() {
		for _, s := range []string{m.String(), strings.ToUpper(m.String()), strings.ToUpper(m.String()[:1]) + m.String()[1:]} {
			t.Run(s, func(t *testing.T) {
				parsed, err := Parse(s)
				require.NoError(t, err)
				assert.Equal(t, m, parsed)
			})
		}
	}
	parsed, err := Parse("PlAyBaCk")
	require.NoError(t, err)
	assert.Equal(t, Playback, parsed)
}

func TestParseRejectsUnsupportedValues(t *testing.T) {
	for _, s := range []string{"", "replay", "lives", " live", "record\n", "0"} {
		t.Run(s, func(t *testing.T) {
			_, err := Parse(s)
			require.Error(t, err)
			var pe *ParseError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, s, pe.Value)
			assert.Equal(t, "provided string was not 'playback', 'record', or 'live'", err.Error())
		})
	}
}

func TestStringRoundTrip(t *testing.T) {
	for _, m := range All() {
		parsed, err := Parse(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, parsed)
	}
}

func TestTextRoundTrip(t *testing.T) {
	type config struct {
		Mode Mode `json:"mode"`
	}
	for _, m := range All() {
		data, err := json.Marshal(config{Mode: m})
		require.NoError(t, err)
		assert.JSONEq(t, `{"mode":"`+m.String()+`"}`, string(data))

		var c config
		require.NoError(t, json.Unmarshal(data, &c))
		assert.Equal(t, m, c.Mode)
	}

	var m Mode
	assert.Error(t, m.UnmarshalText([]byte("bogus")))
	_, err := Mode(7).MarshalText()
	assert.Error(t, err)
}

func TestOrdering(t *testing.T) {
	assert.True(t, Playback < Record)
	assert.True(t, Record < Live)
	assert.True(t, Playback < Live)
	assert.Equal(t, Playback, Default)

	var zero Mode
	assert.Equal(t, Playback, zero)
}

func TestTag(t *testing.T) {
	assert.Equal(t, "test_mode_playback", Tag(Playback))
	assert.Equal(t, "test_mode_record", Tag(Record))
	assert.Equal(t, "test_mode_live", Tag(Live))
}

func TestStringOfUnknownMode(t *testing.T) {
	assert.Equal(t, "Mode(9)", Mode(9).String())
}
