package audio

import (
	"math"

	"github.com/faiface/beep"
)

// Click pitches. The accent sits a fifth above the plain click and the
// off-beat a fourth below it, so the three are easy to tell apart at speed.
const (
	accentFreq  = 1567.98 // G6
	plainFreq   = 1046.50 // C6
	offBeatFreq = 783.99  // G5
)

const clickLen = 40 // milliseconds

// clickGenerator streams a short sine burst with an exponential decay
// envelope: a woodblock-ish tick with no wav asset behind it. The stream ends
// after the configured number of samples.
type clickGenerator struct {
	sr      beep.SampleRate
	freq    float64
	pos     int
	samples int
}

func newClick(sr beep.SampleRate, freq float64, samples int) *clickGenerator {
	return &clickGenerator{sr: sr, freq: freq, samples: samples}
}

func (g *clickGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.samples {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.samples {
			break
		}
		t := float64(g.pos) / float64(g.sr)

		// Fast attack over the first millisecond avoids a DC pop, then the
		// tail decays to silence well inside the click length.
		attack := math.Min(t/0.001, 1.0)
		envelope := attack * math.Exp(-t*120)

		sample := envelope * 0.8 * math.Sin(2*math.Pi*g.freq*t)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
		n++
	}
	return n, true
}

func (g *clickGenerator) Err() error {
	return nil
}
