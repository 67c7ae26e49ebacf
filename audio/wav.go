package audio

import (
	"os"

	"github.com/faiface/beep"
	"github.com/faiface/beep/wav"
	"github.com/pkg/errors"

	"github.com/dimfu/pulse/metronome"
)

// LoadWAV replaces the built-in sound for one click kind with a wav file,
// resampled into the sink's format if the rates differ.
func (s *Sink) LoadWAV(sample metronome.Sample, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "opening %s click", sample)
	}
	defer f.Close()

	streamer, format, err := wav.Decode(f)
	if err != nil {
		return errors.Wrapf(err, "decoding %s click", sample)
	}
	defer streamer.Close()

	var src beep.Streamer = streamer
	if format.SampleRate != sampleRate {
		src = beep.Resample(4, format.SampleRate, sampleRate, streamer)
	}

	buffer := beep.NewBuffer(s.format)
	buffer.Append(src)

	s.mu.Lock()
	s.buffers[sample] = buffer
	s.mu.Unlock()
	return nil
}
