package metronome

import "time"

// Sample identifies which click sound a beat event should produce.
type Sample int

const (
	SamplePlain Sample = iota
	SampleAccent
	SampleOffBeat
)

func (s Sample) String() string {
	switch s {
	case SamplePlain:
		return "plain"
	case SampleAccent:
		return "accent"
	case SampleOffBeat:
		return "offbeat"
	}
	return "unknown"
}

// BeatEvent is the classified result of one tick, created by the sequencer
// and consumed once by the dispatcher.
type BeatEvent struct {
	// When is the tick's scheduled target time, not the wall-clock moment the
	// timer actually fired.
	When   time.Time
	Sample Sample
	// Beat is the position within the bar, -1 for off-beat clicks.
	Beat int
	Gain float64
}
