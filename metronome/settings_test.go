package metronome

import (
	"errors"
	"testing"
	"time"
)

func TestSettingsDefaults(t *testing.T) {
	s := NewSettings()

	if got := s.BPM(); got != DefaultTempo {
		t.Errorf("default tempo = %v, want %v", got, DefaultTempo)
	}
	if got := s.BarLength(); got != DefaultBar {
		t.Errorf("default bar length = %v, want %v", got, DefaultBar)
	}
	if got := s.Volume(); got != DefaultVolume {
		t.Errorf("default volume = %v, want %v", got, DefaultVolume)
	}
	if !s.Accent() {
		t.Error("accent should default to on")
	}
	if s.OffBeats() {
		t.Error("off-beats should default to off")
	}
}

func TestSetBPMValidation(t *testing.T) {
	s := NewSettings()

	if err := s.SetBPM(240); err != nil {
		t.Fatalf("SetBPM(240) failed: %v", err)
	}
	if got := s.BPM(); got != 240 {
		t.Errorf("BPM = %v, want 240", got)
	}

	for _, bpm := range []float64{0, -10, 19.9, 400.1, 10000} {
		err := s.SetBPM(bpm)
		if !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("SetBPM(%v) error = %v, want ErrInvalidParameter", bpm, err)
		}
		if got := s.BPM(); got != 240 {
			t.Errorf("rejected SetBPM(%v) changed tempo to %v", bpm, got)
		}
	}
}

func TestInterval(t *testing.T) {
	s := NewSettings()

	cases := []struct {
		bpm  float64
		want time.Duration
	}{
		{120, 500 * time.Millisecond},
		{60, time.Second},
		{240, 250 * time.Millisecond},
	}
	for _, c := range cases {
		if err := s.SetBPM(c.bpm); err != nil {
			t.Fatalf("SetBPM(%v) failed: %v", c.bpm, err)
		}
		if got := s.Interval(); got != c.want {
			t.Errorf("Interval at %v bpm = %v, want %v", c.bpm, got, c.want)
		}
	}
}

func TestSetBarLengthValidation(t *testing.T) {
	s := NewSettings()

	if err := s.SetBarLength(7); err != nil {
		t.Fatalf("SetBarLength(7) failed: %v", err)
	}

	for _, n := range []int{0, -1, 17} {
		err := s.SetBarLength(n)
		if !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("SetBarLength(%v) error = %v, want ErrInvalidParameter", n, err)
		}
		if got := s.BarLength(); got != 7 {
			t.Errorf("rejected SetBarLength(%v) changed bar length to %v", n, got)
		}
	}
}

func TestSetVolumeValidation(t *testing.T) {
	s := NewSettings()

	for _, v := range []float64{0, 0.5, 1} {
		if err := s.SetVolume(v); err != nil {
			t.Errorf("SetVolume(%v) failed: %v", v, err)
		}
		if got := s.Volume(); got != v {
			t.Errorf("Volume = %v, want %v", got, v)
		}
	}

	for _, v := range []float64{-0.01, 1.01, 5} {
		if err := s.SetVolume(v); !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("SetVolume(%v) error = %v, want ErrInvalidParameter", v, err)
		}
	}
}

func TestToggles(t *testing.T) {
	s := NewSettings()

	s.SetAccent(false)
	if s.Accent() {
		t.Error("accent should be off")
	}
	s.SetOffBeats(true)
	if !s.OffBeats() {
		t.Error("off-beats should be on")
	}
}
