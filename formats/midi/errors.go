package midi

import "errors"

var (
	ErrNoSoundFont = errors.New("no SoundFont loaded for MIDI synthesis")
)
