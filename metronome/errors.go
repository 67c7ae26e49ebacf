package metronome

import "github.com/pkg/errors"

var (
	// ErrInvalidParameter is returned by setters when a value is outside its
	// allowed range. The previous value stays in effect.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrPlayback wraps audio sink failures. Playback errors are never fatal;
	// the clock keeps ticking and playback resumes if the sink recovers.
	ErrPlayback = errors.New("playback failed")
)
