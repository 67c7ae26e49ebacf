package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/gosuri/uilive"

	"github.com/dimfu/pulse/metronome"
)

// runDisplay renders a live status line until done closes. Beat highlights
// come from the metronome's observer feed; a slow terminal only drops frames,
// it never touches timing.
func runDisplay(m *metronome.Metronome, done <-chan struct{}) {
	w := uilive.New()
	w.Start()
	defer w.Stop()

	refresh := time.NewTicker(200 * time.Millisecond)
	defer refresh.Stop()

	current := -1
	for {
		select {
		case <-done:
			return
		case ev := <-m.Events():
			if ev.Beat >= 0 {
				current = ev.Beat
			}
		case <-refresh.C:
			// settings may have changed without a beat firing
		}
		if !m.Running() {
			current = -1
		}
		render(w, m, current)
	}
}

func render(w *uilive.Writer, m *metronome.Metronome, current int) {
	state := "stopped"
	if m.Running() {
		state = "playing"
	}

	var dots strings.Builder
	for i := 0; i < m.BarLength(); i++ {
		if i > 0 {
			dots.WriteByte(' ')
		}
		if i == current {
			dots.WriteString("●")
		} else {
			dots.WriteString("○")
		}
	}

	flags := ""
	if !m.Accent() {
		flags += "  no accent"
	}
	if m.OffBeats() {
		flags += "  off-beats"
	}

	fmt.Fprintf(w, "%s  %.0f bpm  %d/bar  vol %.0f%%%s\n%s\n%s\n",
		state, m.BPM(), m.BarLength(), m.Volume()*100, flags, dots.String(), keyHelp)
}
