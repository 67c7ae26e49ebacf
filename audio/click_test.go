package audio

import (
	"math"
	"testing"
)

func TestClickGeneratorRange(t *testing.T) {
	total := int(sampleRate) / 25 // 40ms
	g := newClick(sampleRate, plainFreq, total)

	buf := make([][2]float64, total)
	n, ok := g.Stream(buf)
	if !ok || n != total {
		t.Fatalf("Stream = (%d, %v), want (%d, true)", n, ok, total)
	}

	for i := 0; i < n; i++ {
		if buf[i][0] < -1 || buf[i][0] > 1 {
			t.Fatalf("sample %d out of range: %v", i, buf[i][0])
		}
		if buf[i][0] != buf[i][1] {
			t.Fatalf("sample %d channels differ: %v vs %v", i, buf[i][0], buf[i][1])
		}
	}
}

func TestClickGeneratorDecaysToSilence(t *testing.T) {
	total := int(sampleRate) / 25
	g := newClick(sampleRate, accentFreq, total)

	buf := make([][2]float64, total)
	g.Stream(buf)

	// the tail must be inaudible so back-to-back clicks don't smear
	for i := total * 9 / 10; i < total; i++ {
		if math.Abs(buf[i][0]) > 0.05 {
			t.Fatalf("tail sample %d still audible: %v", i, buf[i][0])
		}
	}

	var peak float64
	for i := range buf {
		peak = math.Max(peak, math.Abs(buf[i][0]))
	}
	if peak < 0.1 {
		t.Errorf("click peak %v too quiet to hear", peak)
	}
}

func TestClickGeneratorEnds(t *testing.T) {
	total := 100
	g := newClick(sampleRate, offBeatFreq, total)

	buf := make([][2]float64, 64)
	n1, ok1 := g.Stream(buf)
	n2, ok2 := g.Stream(buf)
	if !ok1 || !ok2 || n1+n2 != total {
		t.Fatalf("streamed %d+%d samples, want %d in total", n1, n2, total)
	}

	if n, ok := g.Stream(buf); n != 0 || ok {
		t.Errorf("exhausted generator returned (%d, %v), want (0, false)", n, ok)
	}
}
