// SPDX-License-Identifier: EPL-2.0

package player

// Format identifies the container/codec of a loaded music asset.
type Format int

const (
	FormatNone Format = iota
	FormatWAV         // also covers AIFF (FORM container)
	FormatOGG
	FormatFLAC
	FormatMIDI
	FormatMP3
	FormatMOD
)

func (f Format) String() string {
	switch f {
	case FormatWAV:
		return "WAVE"
	case FormatOGG:
		return "OGG"
	case FormatFLAC:
		return "FLAC"
	case FormatMIDI:
		return "MIDI"
	case FormatMP3:
		return "MP3"
	case FormatMOD:
		return "MOD"
	default:
		return "NONE"
	}
}

// Fading reports the fade transition of the currently playing music.
type Fading int

const (
	NoFading Fading = iota
	FadingIn
	FadingOut
)

func (f Fading) String() string {
	switch f {
	case FadingIn:
		return "fading in"
	case FadingOut:
		return "fading out"
	default:
		return "no fading"
	}
}
