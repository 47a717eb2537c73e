// SPDX-License-Identifier: EPL-2.0

// Package player provides music playback control: loading, format
// sniffing, fade in/out, looping, volume, pause/resume and position,
// over the decoder packages in formats/.
//
// A Player owns at most one currently playing Music. It does not talk
// to audio hardware; the host opens a device, tells the Player its
// parameters via Open, and drives Mix (or MixInto) from the device's
// callback. Every Mix call is one fade step.
//
//	p := player.New()
//	p.Open(player.DeviceSpec{SampleRate: 44100, Channels: 2, BufferFrames: 1024})
//
//	m, err := p.Load("intro.ogg")
//	if err != nil {
//	    // Handle error
//	}
//	defer p.Free(m)
//
//	p.FadeIn(m, -1, 2000) // loop forever, 2s fade-in
//
//	// In the device callback:
//	p.Mix(buf)
//
// # Format Detection
//
// Load guesses the format from the filename extension first and only
// then sniffs the stream's magic bytes. The sniffer recognizes WAV
// and AIFF containers, Ogg Vorbis, FLAC and MIDI, applies an MPEG
// frame-sync heuristic for MP3, and falls back to MOD, which carries
// no magic. MOD has no compiled-in decoder, so loading one fails with
// ErrUnrecognizedFormat.
//
// # Looping
//
// The loops argument of Play and FadeIn controls repetition: 0 and 1
// both mean a single pass, a higher count adds that many repeats,
// and a negative count loops until halted. A loop restart inside a
// Mix call refills the rest of the buffer from the restarted track so
// there is no audible gap, and it does not reset an in-progress fade.
//
// # Concurrency
//
// All control operations and Mix serialize on one internal lock, so
// they may be called from any goroutine; Mix itself should be driven
// by a single callback goroutine. Freeing the currently playing Music
// while it fades out blocks until the fade resolves instead of
// cutting it short. The finished hook runs with the lock held on the
// goroutine that detected completion -- usually the mixing one -- and
// must neither call back into the Player nor block.
package player
