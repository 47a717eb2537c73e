// SPDX-License-Identifier: EPL-2.0

package musmix

import (
	"io"

	"github.com/ik5/musmix/player"
)

// Re-exported so callers of the package-level API don't need to import
// the player package for its types.
type (
	Player     = player.Player
	Music      = player.Music
	DeviceSpec = player.DeviceSpec
	Format     = player.Format
	Fading     = player.Fading
)

// MaxVolume is the maximum music volume.
const MaxVolume = player.MaxVolume

const (
	FormatNone = player.FormatNone
	FormatWAV  = player.FormatWAV
	FormatOGG  = player.FormatOGG
	FormatFLAC = player.FormatFLAC
	FormatMIDI = player.FormatMIDI
	FormatMP3  = player.FormatMP3
	FormatMOD  = player.FormatMOD
)

const (
	NoFading  = player.NoFading
	FadingIn  = player.FadingIn
	FadingOut = player.FadingOut
)

// defaultPlayer backs the package-level functions. Applications that
// need more than one playback slot create their own player.Player.
var defaultPlayer = player.New()

// Default returns the Player behind the package-level functions.
func Default() *Player { return defaultPlayer }

// OpenAudio binds the default player to the audio device the host
// opened.
func OpenAudio(dev DeviceSpec) error { return defaultPlayer.Open(dev) }

// CloseAudio halts playback on the default player and forgets the
// device.
func CloseAudio() { defaultPlayer.Close() }

// Load loads a music file, guessing its format from the filename
// extension first and the stream contents second.
func Load(path string) (*Music, error) { return defaultPlayer.Load(path) }

// LoadReader loads music from r, sniffing its format.
func LoadReader(r io.ReadSeeker, takeOwnership bool) (*Music, error) {
	return defaultPlayer.LoadReader(r, takeOwnership)
}

// LoadReaderType is LoadReader with an explicit format hint; FormatNone
// means sniff.
func LoadReaderType(r io.ReadSeeker, format Format, takeOwnership bool) (*Music, error) {
	return defaultPlayer.LoadReaderType(r, format, takeOwnership)
}

// Free releases m, waiting out an in-progress fade-out first.
func Free(m *Music) { defaultPlayer.Free(m) }

// Play starts m. loops of 0 or 1 plays the track once, a higher count
// plays it that many additional times, and a negative count loops
// forever.
func Play(m *Music, loops int) error { return defaultPlayer.Play(m, loops) }

// FadeIn starts m with a linear fade-in lasting ms milliseconds.
func FadeIn(m *Music, loops, ms int) error { return defaultPlayer.FadeIn(m, loops, ms) }

// FadeInPos is FadeIn with an initial position in seconds.
func FadeInPos(m *Music, loops, ms int, position float64) error {
	return defaultPlayer.FadeInPos(m, loops, ms, position)
}

// FadeOut fades the current music to silence over ms milliseconds and
// then halts it.
func FadeOut(ms int) bool { return defaultPlayer.FadeOut(ms) }

// Halt stops the current music immediately.
func Halt() { defaultPlayer.Halt() }

// Pause freezes playback; Resume continues it.
func Pause()  { defaultPlayer.Pause() }
func Resume() { defaultPlayer.Resume() }

// Paused reports whether playback is paused.
func Paused() bool { return defaultPlayer.Paused() }

// Playing reports whether music is loaded into the playing slot.
func Playing() bool { return defaultPlayer.Playing() }

// GetFading reports the fade transition of the current music.
func GetFading() Fading { return defaultPlayer.Fading() }

// SetVolume sets the music volume, clamped to [0, MaxVolume], and
// returns the previous value. A negative v is a pure query.
func SetVolume(v int) int { return defaultPlayer.SetVolume(v) }

// SetPosition seeks the current music to the given offset in seconds.
func SetPosition(seconds float64) error { return defaultPlayer.SetPosition(seconds) }

// Rewind seeks the current music back to its beginning.
func Rewind() error { return defaultPlayer.Rewind() }

// SetSoundFonts loads an SF2 SoundFont and enables the MIDI decoder.
func SetSoundFonts(path string) error { return defaultPlayer.SetSoundFonts(path) }

// HookFinished registers fn to be called whenever music stops. See
// player.Player.HookFinished for the reentrancy contract.
func HookFinished(fn func()) { defaultPlayer.HookFinished(fn) }

// Mix is the per-callback mixing entry point for the default player.
func Mix(out []float32) { defaultPlayer.Mix(out) }

// MixInto is Mix for int16 little-endian byte buffers.
func MixInto(out []byte) { defaultPlayer.MixInto(out) }
