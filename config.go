package main

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
)

// Preset is one saved metronome setup, keyed by name.
type Preset struct {
	Key      string  `json:"key"`
	Tempo    float64 `json:"tempo"`
	Bar      int     `json:"bar"`
	Volume   float64 `json:"volume"`
	OffBeats bool    `json:"offbeats,omitempty"`
}

type PresetManager struct {
	Presets    []Preset
	ConfigPath string
}

// NewPresetManager loads the preset file at path, creating it on first use.
func NewPresetManager(path string) (*PresetManager, error) {
	pm := &PresetManager{ConfigPath: path}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return nil, errors.Wrap(err, "opening preset file")
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, errors.Wrap(err, "reading preset file")
	}

	if info.Size() > 0 {
		if err := json.NewDecoder(f).Decode(&pm.Presets); err != nil {
			return nil, errors.Wrap(err, "decoding preset file")
		}
	}
	return pm, nil
}

func (pm *PresetManager) Get(key string) *Preset {
	for i := range pm.Presets {
		if pm.Presets[i].Key == key {
			return &pm.Presets[i]
		}
	}
	return nil
}

func (pm *PresetManager) Create(p Preset) error {
	if pm.Get(p.Key) != nil {
		return errors.Errorf("preset `%v` already exists", p.Key)
	}
	pm.Presets = append(pm.Presets, p)
	return pm.write()
}

func (pm *PresetManager) Delete(key string) error {
	for i, p := range pm.Presets {
		if p.Key == key {
			pm.Presets = append(pm.Presets[:i], pm.Presets[i+1:]...)
			return pm.write()
		}
	}
	return errors.Errorf("preset `%v` not found", key)
}

func (pm *PresetManager) write() error {
	out, err := json.Marshal(pm.Presets)
	if err != nil {
		return errors.Wrap(err, "encoding presets")
	}
	if err := os.WriteFile(pm.ConfigPath, out, 0644); err != nil {
		return errors.Wrap(err, "writing preset file")
	}
	return nil
}
