package main

import (
	"math"

	"github.com/eiannone/keyboard"

	"github.com/dimfu/pulse/metronome"
)

// runControls reads keys until a quit key closes the quit channel. Stepping
// past a limit leaves the setting at its current value; the core's setters
// reject out-of-range values and the step is simply dropped.
func runControls(m *metronome.Metronome, quit chan<- struct{}) error {
	if err := keyboard.Open(); err != nil {
		return err
	}
	defer keyboard.Close()

	for {
		char, key, err := keyboard.GetKey()
		if err != nil {
			return err
		}

		switch {
		case key == keyboard.KeyEsc || key == keyboard.KeyCtrlC || char == 'q':
			close(quit)
			return nil
		case key == keyboard.KeySpace:
			if m.Running() {
				m.Stop()
			} else {
				m.Start()
			}
		case char == '+' || char == '=':
			m.SetBPM(m.BPM() + tempoStep)
		case char == '-' || char == '_':
			m.SetBPM(m.BPM() - tempoStep)
		case char == ']':
			m.SetBarLength(m.BarLength() + 1)
		case char == '[':
			m.SetBarLength(m.BarLength() - 1)
		case key == keyboard.KeyArrowUp:
			m.SetVolume(roundVolume(m.Volume() + volumeStep))
		case key == keyboard.KeyArrowDown:
			m.SetVolume(roundVolume(m.Volume() - volumeStep))
		case char == 'a':
			m.SetAccent(!m.Accent())
		case char == 'o':
			m.SetOffBeats(!m.OffBeats())
		}
	}
}

// roundVolume keeps repeated float steps from drifting off the 5% grid.
func roundVolume(v float64) float64 {
	return math.Round(v*100) / 100
}
