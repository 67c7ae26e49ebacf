package metronome

import (
	"sync/atomic"
	"time"
)

// Dispatcher consumes classified beat events. Dispatch must not block; it is
// called from the timing goroutine.
type Dispatcher interface {
	Dispatch(BeatEvent)
}

// Sequencer turns raw clock ticks into beat events. It owns the bar position:
// the index of the next beat to fire, advanced only on beat ticks.
type Sequencer struct {
	settings *Settings
	out      Dispatcher
	pos      atomic.Int64
}

func NewSequencer(settings *Settings, out Dispatcher) *Sequencer {
	return &Sequencer{settings: settings, out: out}
}

// OnTick classifies one tick and emits it. Bar length, accent mode and volume
// are read here, at the tick, so a settings change applies from the next tick
// onward. Off-beat ticks leave the bar position untouched.
func (s *Sequencer) OnTick(at time.Time, offBeat bool) {
	gain := s.settings.Volume()

	if offBeat {
		s.out.Dispatch(BeatEvent{When: at, Sample: SampleOffBeat, Beat: -1, Gain: gain})
		return
	}

	bar := s.settings.BarLength()
	pos := int(s.pos.Load())
	if pos >= bar {
		// Bar shrank below the pending position; this tick is the first beat
		// of a fresh bar under the new length.
		pos = 0
	}

	sample := SamplePlain
	if pos == 0 && s.settings.Accent() {
		sample = SampleAccent
	}

	next := pos + 1
	if next >= bar {
		next = 0
	}
	s.pos.Store(int64(next))

	s.out.Dispatch(BeatEvent{When: at, Sample: sample, Beat: pos, Gain: gain})
}

// Reset rewinds the bar position so the next beat is the first of a bar.
// Called on start; guarantees the first audible beat after a (re)start is
// accented.
func (s *Sequencer) Reset() {
	s.pos.Store(0)
}

// Position returns the index of the next beat to fire.
func (s *Sequencer) Position() int {
	return int(s.pos.Load())
}
