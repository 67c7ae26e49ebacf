package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"

	"github.com/dimfu/pulse/audio"
	"github.com/dimfu/pulse/metronome"
)

var (
	tempo    = flag.Float64("tempo", metronome.DefaultTempo, "beats per minute")
	bar      = flag.Int("bar", metronome.DefaultBar, "beats per bar, the first one is accented")
	volume   = flag.Float64("volume", metronome.DefaultVolume, "click volume between 0 and 1")
	offBeats = flag.Bool("offbeats", false, "also click on the half-beat")

	preset     = flag.String("preset", "", "start from a saved preset")
	savePreset = flag.String("save", "", "save the given settings as a preset and exit")
	delPreset  = flag.String("delete", "", "delete a saved preset and exit")
	listPreset = flag.Bool("list", false, "list saved presets and exit")

	accentWav  = flag.String("accent-sound", "", "wav file replacing the accent click")
	plainWav   = flag.String("plain-sound", "", "wav file replacing the plain click")
	offBeatWav = flag.String("offbeat-sound", "", "wav file replacing the off-beat click")
)

func main() {
	flag.Parse()

	pm, err := NewPresetManager(UserHomeDir() + presetFileName)
	if err != nil {
		log.Fatalf("%v", err)
	}
	if done, err := runPresetCommand(pm); done {
		if err != nil {
			log.Fatalf("%v", err)
		}
		return
	}

	if *preset != "" {
		p := pm.Get(*preset)
		if p == nil {
			log.Fatalf("preset `%v` not found", *preset)
		}
		*tempo, *bar, *volume, *offBeats = p.Tempo, p.Bar, p.Volume, p.OffBeats
	}

	sink, err := audio.NewSink()
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer sink.Close()

	for sample, path := range map[metronome.Sample]string{
		metronome.SampleAccent:  *accentWav,
		metronome.SamplePlain:   *plainWav,
		metronome.SampleOffBeat: *offBeatWav,
	} {
		if path == "" {
			continue
		}
		if err := sink.LoadWAV(sample, path); err != nil {
			log.Fatalf("%v", err)
		}
	}

	m := metronome.New(sink, func(err error) {
		log.Printf("%v", err)
	})
	if err := applySettings(m); err != nil {
		log.Fatalf("%v", err)
	}
	m.SetOffBeats(*offBeats)
	m.Start()

	quit := make(chan struct{})
	go func() {
		if err := runControls(m, quit); err != nil {
			log.Printf("keyboard input unavailable: %v", err)
		}
	}()

	done := make(chan struct{})
	if isatty.IsTerminal(os.Stdout.Fd()) {
		go runDisplay(m, done)
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	select {
	case <-sig:
	case <-quit:
	}
	close(done)
	m.Stop()
}

func applySettings(m *metronome.Metronome) error {
	if err := m.SetBPM(*tempo); err != nil {
		return err
	}
	if err := m.SetBarLength(*bar); err != nil {
		return err
	}
	return m.SetVolume(*volume)
}

// runPresetCommand handles the preset management flags. It reports whether
// the invocation was a preset command, in which case main exits afterwards.
func runPresetCommand(pm *PresetManager) (bool, error) {
	switch {
	case *listPreset:
		for _, p := range pm.Presets {
			fmt.Printf("%v\t%v bpm, %v/bar, volume %v, offbeats %v\n",
				p.Key, p.Tempo, p.Bar, p.Volume, p.OffBeats)
		}
		return true, nil
	case *delPreset != "":
		return true, pm.Delete(*delPreset)
	case *savePreset != "":
		return true, pm.Create(Preset{
			Key:      *savePreset,
			Tempo:    *tempo,
			Bar:      *bar,
			Volume:   *volume,
			OffBeats: *offBeats,
		})
	}
	return false, nil
}
