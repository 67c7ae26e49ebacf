// Package audio is the beep-backed click sink: three buffered click sounds
// played as independent one-shots through the speaker, each scaled by the
// gain carried on the beat event.
package audio

import (
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"
	"github.com/pkg/errors"

	"github.com/dimfu/pulse/metronome"
)

const sampleRate = beep.SampleRate(44100)

// Sink plays one-shot clicks through the speaker. It keeps one decoded
// buffer per click kind; every shot gets a fresh streamer so overlapping
// clicks mix instead of cutting each other off.
type Sink struct {
	mu      sync.RWMutex
	buffers map[metronome.Sample]*beep.Buffer
	format  beep.Format
}

// NewSink initializes the speaker with a 10ms buffer and builds the three
// synthesized clicks. Call Close when done.
func NewSink() (*Sink, error) {
	format := beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/100)); err != nil {
		return nil, errors.Wrap(err, "initializing speaker")
	}

	clickSamples := sampleRate.N(clickLen * time.Millisecond)
	buffers := make(map[metronome.Sample]*beep.Buffer)
	for sample, freq := range map[metronome.Sample]float64{
		metronome.SamplePlain:   plainFreq,
		metronome.SampleAccent:  accentFreq,
		metronome.SampleOffBeat: offBeatFreq,
	} {
		buffer := beep.NewBuffer(format)
		buffer.Append(newClick(sampleRate, freq, clickSamples))
		buffers[sample] = buffer
	}

	return &Sink{buffers: buffers, format: format}, nil
}

// PlayOneShot submits one click to the speaker and returns without waiting
// for it to finish.
func (s *Sink) PlayOneShot(sample metronome.Sample, gain float64) error {
	s.mu.RLock()
	buffer := s.buffers[sample]
	s.mu.RUnlock()

	if buffer == nil {
		return errors.Errorf("no sound loaded for %s click", sample)
	}

	shot := buffer.Streamer(0, buffer.Len())
	// effects.Gain multiplies by 1+Gain, so gain 0 is silence and 1 is the
	// sample as recorded.
	speaker.Play(&effects.Gain{Streamer: shot, Gain: gain - 1})
	return nil
}

// Close stops everything currently sounding.
func (s *Sink) Close() {
	speaker.Clear()
}
