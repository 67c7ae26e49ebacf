package metronome

import (
	"log"

	"github.com/pkg/errors"
)

// Sink accepts one-shot playback requests. Implementations own device I/O and
// mixing; the core only cares about success or failure.
type Sink interface {
	PlayOneShot(sample Sample, gain float64) error
}

// ClickDispatcher realizes beat events as playback requests. Each event is
// submitted on its own goroutine so a slow or wedged sink never delays the
// clock, and overlapping shots never queue behind each other.
type ClickDispatcher struct {
	sink  Sink
	onErr func(error)
}

// NewClickDispatcher wires a dispatcher to a sink. onErr receives wrapped
// ErrPlayback values; nil means log and keep going. Playback failure is never
// fatal, the worst case is a silent tick.
func NewClickDispatcher(sink Sink, onErr func(error)) *ClickDispatcher {
	if onErr == nil {
		onErr = func(err error) { log.Printf("%v", err) }
	}
	return &ClickDispatcher{sink: sink, onErr: onErr}
}

func (d *ClickDispatcher) Dispatch(ev BeatEvent) {
	go func() {
		if err := d.sink.PlayOneShot(ev.Sample, ev.Gain); err != nil {
			d.onErr(errors.Wrapf(ErrPlayback, "%s click: %v", ev.Sample, err))
		}
	}()
}
