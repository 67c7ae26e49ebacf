package main

const (
	presetFileName = ".pulse.json"

	tempoStep  = 5.0
	volumeStep = 0.05
)

const keyHelp = "space start/stop  +/- tempo  [/] bar  up/down volume  a accent  o off-beats  q quit"
