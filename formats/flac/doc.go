// SPDX-License-Identifier: EPL-2.0

// Package flac provides FLAC audio file decoding.
//
// This package uses github.com/mewkiz/flac to decode FLAC streams.
// The decoder returns an audio.Source that provides samples as
// float32 values normalized to the range [-1.0, 1.0], interleaved
// across channels.
//
// # Decoding FLAC Files
//
//	decoder := flac.Decoder{}
//	file, _ := os.Open("audio.flac")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// # Output Format
//
//   - Sample format: float32 in range [-1.0, 1.0]
//   - Channels: as encoded in the stream
//   - Sample rate: as encoded in the stream
//
// FLAC frames do not align with the caller's buffer size; the source
// buffers the remainder of a decoded frame internally between reads.
//
// # Limitations
//
//   - Decoding only (no FLAC encoding)
//   - Seeking is not supported; restart the decoder instead
package flac
