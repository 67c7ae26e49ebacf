package metronome

import (
	"sync"
	"time"
)

// TickHandler receives clock ticks. OnTick runs on the timing goroutine and
// must return quickly.
type TickHandler interface {
	OnTick(at time.Time, offBeat bool)
}

// Clock produces ticks spaced by the current beat interval on its own
// goroutine. Tick n targets base + n*step rather than lastTick + step, so
// scheduling overhead never accumulates into drift: an overdue tick fires
// immediately and later ticks realign to the grid. When the tempo or the
// off-beats mode changes, the grid is rebased at the next tick boundary so
// the already-scheduled tick keeps its time and all later spacing uses the
// new interval.
type Clock struct {
	settings *Settings
	handler  TickHandler

	mu      sync.Mutex
	running bool
	cancel  chan struct{}
	done    chan struct{}
}

func NewClock(settings *Settings, handler TickHandler) *Clock {
	return &Clock{settings: settings, handler: handler}
}

// Start launches the timing goroutine. The first tick fires at the start
// instant itself. No-op when already running.
func (c *Clock) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.running {
		return
	}
	c.running = true
	c.cancel = make(chan struct{})
	c.done = make(chan struct{})
	go c.run(c.cancel, c.done)
}

// Stop cancels the pending tick and waits for the timing goroutine to exit.
// After Stop returns no further tick is delivered, even if one was due the
// instant Stop was called.
func (c *Clock) Stop() {
	c.mu.Lock()
	if !c.running {
		c.mu.Unlock()
		return
	}
	c.running = false
	close(c.cancel)
	done := c.done
	c.mu.Unlock()
	<-done
}

func (c *Clock) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.running
}

func (c *Clock) run(cancel <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	base := time.Now()
	step := c.step(c.settings.OffBeats())
	count := 0
	offBeat := false
	target := base

	timer := time.NewTimer(time.Until(target))
	defer timer.Stop()

	for {
		select {
		case <-cancel:
			return
		case <-timer.C:
		}
		// A stop racing the timer wins: no ghost beat after Stop returns.
		select {
		case <-cancel:
			return
		default:
		}

		c.handler.OnTick(target, offBeat)

		off := c.settings.OffBeats()
		if next := c.step(off); next != step {
			base = target
			count = 0
			step = next
		}
		if off {
			offBeat = !offBeat
		} else {
			offBeat = false
		}
		count++
		target = base.Add(time.Duration(count) * step)
		timer.Reset(time.Until(target))
	}
}

// step is the spacing between consecutive ticks: the beat interval, halved
// when off-beat clicks are interleaved.
func (c *Clock) step(offBeats bool) time.Duration {
	iv := c.settings.Interval()
	if offBeats {
		return iv / 2
	}
	return iv
}
