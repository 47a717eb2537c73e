// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF (Audio Interchange File Format) files.
//
// Decoding is built on github.com/go-audio/aiff. Only 16-bit PCM
// payloads are accepted, mono or multi-channel, at any sample rate.
// AIFF-C and other bit depths resolve to ErrOnlyPCM16bitSupported.
//
// Decoder turns an AIFF payload into an audio.Source yielding float32
// samples in the range [-1.0, 1.0]:
//
//	file, _ := os.Open("audio.aif")
//	source, err := aiff.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// AIFF stores samples big-endian where WAV stores them little-endian;
// the byte order never leaks past the decoder, which always emits
// normalized float32.
//
// Decode failures resolve to one of the package sentinels, so callers
// can branch with errors.Is:
//
//	_, err := aiff.Decoder{}.Decode(file)
//	if errors.Is(err, aiff.ErrNotAiffFile) {
//	    fmt.Println("Not an AIFF file")
//	}
//
// Encoding is out of scope; AIFF tracks can be rendered to WAV through
// wav.WriteWAV16 after adaptation with the audio package.
package aiff
