package metronome

import (
	"math"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
)

const (
	MinTempo  = 20.0
	MaxTempo  = 400.0
	MinBar    = 1
	MaxBar    = 16
	MinVolume = 0.0
	MaxVolume = 1.0

	DefaultTempo  = 120.0
	DefaultBar    = 4
	DefaultVolume = 1.0
)

// Settings holds the metronome parameters shared between the control surface
// and the timing goroutine. Each field is an independent atomic: the clock and
// sequencer read a field once per tick, and a write becomes visible at the
// next tick, never mid-tick.
type Settings struct {
	bpm      atomic.Uint64 // float64 bits
	bar      atomic.Int64
	volume   atomic.Uint64 // float64 bits
	accent   atomic.Bool
	offBeats atomic.Bool
}

// NewSettings returns settings at the defaults: 120 BPM, 4 beats per bar,
// full volume, accented first beats, no off-beats.
func NewSettings() *Settings {
	s := &Settings{}
	s.bpm.Store(math.Float64bits(DefaultTempo))
	s.bar.Store(DefaultBar)
	s.volume.Store(math.Float64bits(DefaultVolume))
	s.accent.Store(true)
	return s
}

func (s *Settings) BPM() float64 {
	return math.Float64frombits(s.bpm.Load())
}

func (s *Settings) SetBPM(bpm float64) error {
	if bpm < MinTempo || bpm > MaxTempo || math.IsNaN(bpm) {
		return errors.Wrapf(ErrInvalidParameter, "tempo %v out of range [%v, %v]", bpm, MinTempo, MaxTempo)
	}
	s.bpm.Store(math.Float64bits(bpm))
	return nil
}

// Interval is the duration of one beat at the current tempo.
func (s *Settings) Interval() time.Duration {
	return time.Duration(float64(time.Minute) / s.BPM())
}

func (s *Settings) BarLength() int {
	return int(s.bar.Load())
}

func (s *Settings) SetBarLength(n int) error {
	if n < MinBar || n > MaxBar {
		return errors.Wrapf(ErrInvalidParameter, "bar length %d out of range [%d, %d]", n, MinBar, MaxBar)
	}
	s.bar.Store(int64(n))
	return nil
}

func (s *Settings) Volume() float64 {
	return math.Float64frombits(s.volume.Load())
}

func (s *Settings) SetVolume(v float64) error {
	if v < MinVolume || v > MaxVolume || math.IsNaN(v) {
		return errors.Wrapf(ErrInvalidParameter, "volume %v out of range [%v, %v]", v, MinVolume, MaxVolume)
	}
	s.volume.Store(math.Float64bits(v))
	return nil
}

func (s *Settings) Accent() bool {
	return s.accent.Load()
}

func (s *Settings) SetAccent(on bool) {
	s.accent.Store(on)
}

func (s *Settings) OffBeats() bool {
	return s.offBeats.Load()
}

func (s *Settings) SetOffBeats(on bool) {
	s.offBeats.Store(on)
}
