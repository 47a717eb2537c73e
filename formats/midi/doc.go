// SPDX-License-Identifier: EPL-2.0

// Package midi provides standard MIDI file playback by software
// synthesis.
//
// This package uses github.com/sinshu/go-meltysynth to render MIDI
// events through an SF2 SoundFont. Unlike the sample-based decoders,
// a MIDI file carries no audio of its own: a SoundFont must be loaded
// and assigned to the Decoder before Decode is called.
//
//	sf2, _ := os.Open("general.sf2")
//	soundFont, err := midi.LoadSoundFont(sf2)
//	sf2.Close()
//
//	decoder := midi.Decoder{SoundFont: soundFont}
//	file, _ := os.Open("song.mid")
//	source, err := decoder.Decode(file)
//
// # Output Format
//
//   - Sample format: float32 in range [-1.0, 1.0]
//   - Channels: 2 (stereo)
//   - Sample rate: 44.1kHz (resample downstream if needed)
//
// The source reports io.EOF once the rendered time reaches the MIDI
// file's length.
package midi
