// SPDX-License-Identifier: EPL-2.0

// Package musmix provides music playback control for Go applications.
//
// The package sits between a host-opened audio device and a set of
// format decoders: the host tells it the device's sample rate, channel
// count and callback buffer size, and then drives it by calling Mix
// from the device's audio callback. Everything else -- loading,
// format detection, fades, looping, volume, seeking -- is handled here.
// The package never opens audio hardware itself.
//
// # Supported Formats
//
// The following formats are detected and decoded:
//   - WAV (PCM 16-bit) via formats/wav
//   - AIFF (PCM 16-bit) via formats/aiff
//   - Ogg Vorbis via formats/vorbis
//   - FLAC via formats/flac
//   - MP3 via formats/mp3
//   - MIDI via formats/midi (requires a SoundFont, see SetSoundFonts)
//
// MOD module files are recognized by the detector but have no
// compiled-in decoder; loading one fails.
//
// # Quick Start
//
// The package-level functions operate on a shared default player:
//
//	// Describe the device the host opened
//	err := musmix.OpenAudio(musmix.DeviceSpec{
//		SampleRate:   44100,
//		Channels:     2,
//		BufferFrames: 1024,
//	})
//
//	// Load and play a track, fading in over two seconds
//	m, err := musmix.Load("theme.ogg")
//	err = musmix.FadeIn(m, -1, 2000)
//
//	// From the audio callback, at the device's cadence:
//	musmix.Mix(buf) // buf is BufferFrames*Channels float32 samples
//
//	// Later
//	musmix.FadeOut(1000)
//	musmix.Free(m)
//
// Applications that need more than one independent playback slot can
// create their own instances with player.New.
//
// # Format Detection
//
// Load guesses the format from the filename extension and falls back
// to sniffing the first bytes of the stream; LoadReader always sniffs.
// An explicit tag can be forced with LoadReaderType.
//
// # Looping and Fades
//
// The loops argument of Play and FadeIn controls repetition: 0 and 1
// both play the track once, a higher count plays it that many
// additional times, and a negative value loops until halted. Loop
// restarts are
// seamless; when a pass ends mid-buffer the next pass fills the rest
// of the same callback buffer.
//
// Fade durations are given in milliseconds and quantized to the
// device's callback cadence. A fade-out ends in a halt; music that is
// fading out cannot be cut short by Free or by starting other music --
// both wait for the fade to resolve first.
//
// # Audio Processing
//
// Decoded streams are adapted to the device format using the audio
// subpackage: Resampler for rate conversion, MonoMixer and Upmixer for
// channel layout. These are ordinary audio.Source pipelines and can be
// used on their own:
//
//	resampler := audio.NewResampler(source, 16000)
//	mono := audio.NewMonoMixer(resampler)
//	buf := make([]float32, 4096)
//	n, err := mono.ReadSamples(buf)
//
// See the individual subpackages for more detailed documentation.
package musmix
