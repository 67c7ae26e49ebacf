// Package metronome implements the click-scheduling core: a drift-free tempo
// clock, a bar-position sequencer and a non-blocking click dispatcher, all
// driven by atomically shared settings so tempo, bar length and volume can be
// changed from any goroutine while playback runs.
package metronome

// Metronome wires the clock, sequencer and dispatcher around one shared
// Settings value and exposes the synchronous control surface.
type Metronome struct {
	settings *Settings
	seq      *Sequencer
	clock    *Clock
	disp     *ClickDispatcher
	events   chan BeatEvent
}

// fanout sits between the sequencer and the click dispatcher: every event
// goes to audio, and to the observer channel if there is room. A slow
// observer drops events rather than delaying dispatch.
type fanout struct {
	m *Metronome
}

func (f fanout) Dispatch(ev BeatEvent) {
	f.m.disp.Dispatch(ev)
	select {
	case f.m.events <- ev:
	default:
	}
}

// New builds a stopped metronome at default settings, playing into sink.
// onPlaybackErr may be nil; see NewClickDispatcher.
func New(sink Sink, onPlaybackErr func(error)) *Metronome {
	m := &Metronome{
		settings: NewSettings(),
		events:   make(chan BeatEvent, 16),
	}
	m.disp = NewClickDispatcher(sink, onPlaybackErr)
	m.seq = NewSequencer(m.settings, fanout{m})
	m.clock = NewClock(m.settings, m.seq)
	return m
}

// Start begins playback from the top of a bar: the first click is accented
// and fires immediately. No-op when already running.
func (m *Metronome) Start() {
	if m.clock.Running() {
		return
	}
	m.seq.Reset()
	m.clock.Start()
}

// Stop halts playback. When Stop returns no further beat will fire.
func (m *Metronome) Stop() {
	m.clock.Stop()
}

func (m *Metronome) Running() bool {
	return m.clock.Running()
}

// Events is a best-effort feed of dispatched beats for front-ends. Events are
// dropped when the reader lags; audio dispatch is unaffected.
func (m *Metronome) Events() <-chan BeatEvent {
	return m.events
}

func (m *Metronome) BPM() float64 { return m.settings.BPM() }

func (m *Metronome) SetBPM(bpm float64) error { return m.settings.SetBPM(bpm) }

func (m *Metronome) BarLength() int { return m.settings.BarLength() }

func (m *Metronome) SetBarLength(n int) error { return m.settings.SetBarLength(n) }

func (m *Metronome) Volume() float64 { return m.settings.Volume() }

func (m *Metronome) SetVolume(v float64) error { return m.settings.SetVolume(v) }

func (m *Metronome) Accent() bool { return m.settings.Accent() }

func (m *Metronome) SetAccent(on bool) { m.settings.SetAccent(on) }

func (m *Metronome) OffBeats() bool { return m.settings.OffBeats() }

func (m *Metronome) SetOffBeats(on bool) { m.settings.SetOffBeats(on) }
