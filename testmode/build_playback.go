//go:build !test_mode_record && !test_mode_live

package testmode

// Build is the mode selected at compile time with the test_mode_* build tags.
const Build = Playback
