// SPDX-License-Identifier: EPL-2.0

package player

import (
	"fmt"
	"os"
	"sync"

	"github.com/ik5/musmix/audio"
	"github.com/ik5/musmix/formats/aiff"
	"github.com/ik5/musmix/formats/flac"
	"github.com/ik5/musmix/formats/midi"
	"github.com/ik5/musmix/formats/mp3"
	"github.com/ik5/musmix/formats/vorbis"
	"github.com/ik5/musmix/formats/wav"
	"github.com/ik5/musmix/utils"
)

// MaxVolume is the maximum music volume.
const MaxVolume = 128

// DeviceSpec describes the audio device the host opened. The Player
// never touches audio hardware itself; it only needs the callback
// cadence to convert fade durations into step counts, and the output
// format to adapt decoded streams.
type DeviceSpec struct {
	SampleRate   int // Hz
	Channels     int // interleaved channels per frame
	BufferFrames int // frames per mix callback
}

type decoderInfo struct {
	key     string
	canSeek bool
}

// decoderTable maps format tags to registry keys. MOD deliberately
// has no entry: it is sniffable but has no compiled-in decoder.
var decoderTable = map[Format]decoderInfo{
	FormatWAV:  {"wav", true},
	FormatOGG:  {"ogg vorbis", false},
	FormatFLAC: {"flac", false},
	FormatMIDI: {"midi", false},
	FormatMP3:  {"mp3", false},
}

// Player owns at most one currently playing Music and mediates all
// transport operations against it. Control calls may come from any
// goroutine; Mix is expected to be driven by a single audio callback
// goroutine. One lock guards the whole slot.
type Player struct {
	mu   sync.Mutex
	cond *sync.Cond

	registry  *audio.Registry
	decoders  []string
	dev       DeviceSpec
	msPerStep int

	current *Music
	active  bool
	loops   int
	volume  int

	finished func()

	scratch []float32 // MixInto conversion buffer
}

// New creates a Player. Open must be called before timing-dependent
// operations (loading, playing, fading) are available.
func New() *Player {
	p := &Player{volume: MaxVolume}
	p.cond = sync.NewCond(&p.mu)
	return p
}

// Open derives the fade-timing constant from the device the host
// opened and resets the playback slot. It registers the built-in
// decoders: WAVE, AIFF, OGG, FLAC, MP3 and MIDI (MIDI additionally
// needs SetSoundFonts before loads succeed).
func (p *Player) Open(dev DeviceSpec) error {
	if dev.SampleRate <= 0 || dev.BufferFrames <= 0 {
		return ErrInvalidDeviceSpec
	}
	if dev.Channels <= 0 {
		dev.Channels = 2
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.dev = dev
	p.msPerStep = dev.BufferFrames * 1000 / dev.SampleRate
	if p.msPerStep == 0 {
		p.msPerStep = 1
	}

	p.registry = audio.NewRegistry()
	p.registry.Register("wav", wav.Decoder{})
	p.registry.Register("aiff", aiff.Decoder{})
	p.registry.Register("ogg vorbis", vorbis.Decoder{})
	p.registry.Register("flac", flac.Decoder{})
	p.registry.Register("mp3", mp3.Decoder{})
	p.registry.Register("midi", midi.Decoder{})
	p.decoders = []string{"WAVE", "AIFF", "OGG", "FLAC", "MP3", "MIDI"}

	p.current = nil
	p.active = true
	p.volume = MaxVolume

	return nil
}

// Close halts playback and forgets the device. Loaded Music handles
// remain valid to Free.
func (p *Player) Close() {
	p.Halt()

	p.mu.Lock()
	p.decoders = nil
	p.msPerStep = 0
	p.mu.Unlock()
}

// SetSoundFonts loads an SF2 SoundFont and enables the MIDI decoder.
func (p *Player) SetSoundFonts(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening soundfont %q: %w", path, err)
	}
	defer f.Close()

	sf, err := midi.LoadSoundFont(f)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.registry == nil {
		return ErrDeviceNotOpened
	}
	p.registry.Register("midi", midi.Decoder{SoundFont: sf})
	return nil
}

// NumDecoders reports how many decoders the Player was opened with.
func (p *Player) NumDecoders() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.decoders)
}

// Decoder returns the name of the i-th decoder, or "" when i is out
// of range.
func (p *Player) Decoder(i int) string {
	p.mu.Lock()
	defer p.mu.Unlock()
	if i < 0 || i >= len(p.decoders) {
		return ""
	}
	return p.decoders[i]
}

// Decoders returns the decoder names.
func (p *Player) Decoders() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.decoders))
	copy(out, p.decoders)
	return out
}

func (p *Player) stepMs() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.msPerStep
}

func (p *Player) deviceSpec() DeviceSpec {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.dev
}

// Play starts m. loops of 0 or 1 plays the track once, a higher count
// plays it that many additional times, and a negative count loops
// forever until halted.
func (p *Player) Play(m *Music, loops int) error {
	return p.FadeInPos(m, loops, 0, 0)
}

// FadeIn starts m with a linear fade-in lasting ms milliseconds.
func (p *Player) FadeIn(m *Music, loops, ms int) error {
	return p.FadeInPos(m, loops, ms, 0)
}

// FadeInPos starts m with a fade-in and an initial position in
// seconds. If other music is playing it is halted first; if that
// music is mid fade-out, FadeInPos waits for the fade to resolve
// rather than cutting it short. A failed position seek is reported
// but playback continues from the top of the track.
func (p *Player) FadeInPos(m *Music, loops, ms int, position float64) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.msPerStep == 0 {
		return ErrDeviceNotOpened
	}
	if m == nil {
		return ErrNilMusic
	}

	if ms > 0 {
		m.fading = FadingIn
	} else {
		m.fading = NoFading
	}
	m.fadeStep = 0
	m.fadeSteps = ms / p.msPerStep

	// An outgoing fade-out finishes on its own schedule
	for p.current != nil && p.current.fading == FadingOut {
		p.cond.Wait()
	}

	p.active = true
	if loops == 1 {
		// loops is the number of times to play the track
		loops = 0
	}
	p.loops = loops

	return p.playLocked(m, position)
}

func (p *Player) playLocked(m *Music, position float64) error {
	if p.current != nil {
		p.haltLocked()
	}
	p.current = m

	if m.backend == nil {
		p.current = nil
		return ErrUnknownMusicType
	}

	// Initial volume: a fade-in starts from silence
	if m.fading == FadingIn {
		m.backend.setVolume(0)
	} else {
		m.backend.setVolume(p.volume)
	}

	if err := m.backend.start(); err != nil {
		p.current = nil
		return err
	}

	if position > 0 {
		if err := m.backend.seek(position); err != nil {
			// Reported, but playback proceeds from position 0
			return err
		}
	}

	return nil
}

// Halt stops the current music immediately and fires the finished
// hook.
func (p *Player) Halt() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.current != nil {
		p.haltLocked()
		if p.finished != nil {
			p.finished()
		}
	}
}

func (p *Player) haltLocked() {
	m := p.current
	if m == nil {
		return
	}
	m.backend.stop()
	m.fading = NoFading
	p.current = nil
	p.cond.Broadcast()
}

// FadeOut fades the current music to silence over ms milliseconds and
// then halts it. ms<=0 halts immediately. The return value reports
// whether there was anything to fade or halt.
func (p *Player) FadeOut(ms int) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.msPerStep == 0 {
		return false
	}

	if ms <= 0 {
		// Just halt immediately
		if p.current == nil {
			return false
		}
		p.haltLocked()
		if p.finished != nil {
			p.finished()
		}
		return true
	}

	if p.current == nil {
		return false
	}

	m := p.current
	steps := (ms + p.msPerStep - 1) / p.msPerStep
	if m.fading == NoFading || m.fadeSteps <= 0 {
		m.fadeStep = 0
	} else {
		// Remap elapsed progress into the new total so the ramp stays
		// continuous instead of restarting
		var step int
		if m.fading == FadingOut {
			step = m.fadeStep
		} else {
			step = m.fadeSteps - m.fadeStep + 1
		}
		m.fadeStep = step * steps / m.fadeSteps
	}
	m.fading = FadingOut
	m.fadeSteps = steps

	return true
}

// Fading reports the fade transition of the current music.
func (p *Player) Fading() Fading {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.current == nil {
		return NoFading
	}
	return p.current.fading
}

// Pause freezes playback without tearing anything down: while paused,
// Mix produces silence and fade/loop state does not advance.
func (p *Player) Pause() {
	p.mu.Lock()
	p.active = false
	p.mu.Unlock()
}

// Resume continues playback where Pause left it.
func (p *Player) Resume() {
	p.mu.Lock()
	p.active = true
	p.mu.Unlock()
}

// Paused reports whether playback is paused.
func (p *Player) Paused() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return !p.active
}

// Playing reports whether music is loaded into the playing slot and
// still has passes left. Paused music counts as playing.
func (p *Player) Playing() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.current == nil {
		return false
	}
	return p.loops != 0 || p.current.backend.active()
}

// SetPosition seeks the current music to the given offset in seconds.
// Formats without seek capability return ErrPositionUnsupported.
func (p *Player) SetPosition(seconds float64) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.current == nil {
		return ErrNotPlaying
	}
	if seconds < 0 {
		seconds = 0
	}
	return p.current.backend.seek(seconds)
}

// Rewind seeks the current music back to its beginning. Legal while
// fading; the fade state is untouched.
func (p *Player) Rewind() error {
	return p.SetPosition(0)
}

// SetVolume sets the music volume, clamped to [0, MaxVolume], and
// returns the previous value. A negative v is a pure query.
func (p *Player) SetVolume(v int) int {
	p.mu.Lock()
	defer p.mu.Unlock()

	prev := p.volume
	if v < 0 {
		return prev
	}
	if v > MaxVolume {
		v = MaxVolume
	}
	p.volume = v
	if p.current != nil {
		p.current.backend.setVolume(v)
	}
	return prev
}

// MusicFormat returns the format of m, or of the currently playing
// music when m is nil.
func (p *Player) MusicFormat(m *Music) Format {
	if m != nil {
		return m.format
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.current == nil {
		return FormatNone
	}
	return p.current.format
}

// HookFinished registers fn to be called whenever music stops,
// whether it ran out of passes, completed a fade-out, or was halted.
// fn runs with the Player's lock held, on whichever goroutine
// detected completion (usually the mixing goroutine): it must not
// call back into this Player and must not block.
func (p *Player) HookFinished(fn func()) {
	p.mu.Lock()
	p.finished = fn
	p.mu.Unlock()
}

// Mix is the per-callback mixing entry point. The host audio driver
// calls it at the device's buffer cadence with an interleaved float32
// buffer of BufferFrames*Channels samples. The buffer is filled with
// silence where no music is active. Each call is one fade step.
func (p *Player) Mix(out []float32) {
	for i := range out {
		out[i] = 0
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.mixLocked(out)
}

// MixInto is Mix for int16 little-endian byte buffers, for hosts
// whose device callback hands over raw bytes.
func (p *Player) MixInto(out []byte) {
	n := len(out) / 2
	if cap(p.scratch) < n {
		p.scratch = make([]float32, n)
	}
	buf := p.scratch[:n]

	p.Mix(buf)

	for i, s := range buf {
		v := uint16(utils.Float32ToInt16(s))
		out[2*i] = byte(v)
		out[2*i+1] = byte(v >> 8)
	}
}

func (p *Player) mixLocked(out []float32) {
	if p.current == nil || !p.active {
		return
	}
	m := p.current

	if m.fading != NoFading {
		m.fadeStep++
		if m.fadeStep < m.fadeSteps {
			var vol int
			if m.fading == FadingOut {
				vol = p.volume * (m.fadeSteps - m.fadeStep) / m.fadeSteps
			} else {
				vol = p.volume * m.fadeStep / m.fadeSteps
			}
			m.backend.setVolume(vol)
		} else {
			if m.fading == FadingOut {
				p.haltLocked()
				if p.finished != nil {
					p.finished()
				}
				return
			}
			m.fading = NoFading
			m.backend.setVolume(p.volume)
		}
	}

	if !p.haltOrLoopLocked() {
		return
	}
	p.fillLocked(out)
}

// fillLocked produces samples into out, restarting the track for a
// seamless loop when a pass ends mid-buffer. A track that yields
// nothing on a fresh pass would spin here, so two empty reads in a
// row bail out.
func (p *Player) fillLocked(out []float32) {
	stalled := false
	for len(out) > 0 && p.current != nil {
		n := p.current.backend.mix(out)
		out = out[n:]
		if len(out) == 0 {
			return
		}
		if !p.haltOrLoopLocked() {
			return
		}
		if n == 0 {
			if stalled {
				return
			}
			stalled = true
		} else {
			stalled = false
		}
	}
}

// haltOrLoopLocked restarts the track when it ended with passes
// remaining, preserving an in-progress fade; otherwise it halts and
// fires the finished hook. Reports whether music is still playing.
func (p *Player) haltOrLoopLocked() bool {
	m := p.current
	if m == nil {
		return false
	}
	if m.backend.active() {
		return true
	}

	if p.loops != 0 {
		if p.loops > 0 {
			p.loops--
		}
		// Restarting must not reset an in-progress fade
		fading := m.fading
		if err := p.playLocked(m, 0); err != nil {
			return false
		}
		m.fading = fading
		return true
	}

	p.haltLocked()
	if p.finished != nil {
		p.finished()
	}
	return false
}
