package testmode

import (
	"fmt"
	"strings"
)

// Mode selects whether tests replay recorded interactions, record new ones, or run against
// live services. Modes are ordered: Playback < Record < Live. The zero value is Playback.
type Mode int

const (
	Playback Mode = iota
	Record
	Live
)

// Default is the mode used when AZURE_TEST_MODE is not set.
const Default = Playback

var modeNames = [...]string{
	Playback: "playback",
	Record:   "record",
	Live:     "live",
}

// All returns every supported mode in ascending order.
func All() []Mode {
	return []Mode{Playback, Record, Live}
}

func (m Mode) String() string {
	if m < Playback || m > Live {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modeNames[m]
}

// ParseError is returned by Parse for anything other than "playback", "record", or "live".
type ParseError struct {
	Value string
}

func (e *ParseError) Error() string {
	return "provided string was not 'playback', 'record', or 'live'"
}

// Parse converts a mode name to a Mode. Matching is case-insensitive.
func Parse(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "playback":
		return Playback, nil
	case "record":
		return Record, nil
	case "live":
		return Live, nil
	}
	return Default, &ParseError{Value: s}
}

func (m Mode) MarshalText() ([]byte, error) {
	if m < Playback || m > Live {
		return nil, fmt.Errorf("invalid test mode %d", int(m))
	}
	return []byte(modeNames[m]), nil
}

func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Tag returns the build tag that selects m as the value of Build.
func Tag(m Mode) string {
	return "test_mode_" + m.String()
}
