// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis audio streams.
//
// Decoding is built on github.com/jfreymuth/oggvorbis, a pure Go
// Vorbis implementation. Any bitrate, channel count, or sample rate
// the container declares is accepted.
//
// Decoder turns an Ogg Vorbis payload into an audio.Source yielding
// float32 samples in the range [-1.0, 1.0]:
//
//	file, _ := os.Open("audio.ogg")
//	source, err := vorbis.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// Multi-channel streams come out interleaved, [L0, R0, L1, R1, ...]
// for stereo. ReadSamples only fills whole frames, so a destination
// buffer whose length is not a multiple of the channel count is
// clipped down to the nearest frame boundary.
//
// Vorbis decodes natively to float32, which makes this the cheapest
// compressed format in the engine: samples pass through without a PCM
// integer conversion step.
//
// Encoding is out of scope; Vorbis tracks can be rendered to WAV
// through wav.WriteWAV16 after adaptation with the audio package.
package vorbis
