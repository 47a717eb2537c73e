// SPDX-License-Identifier: EPL-2.0

package audio

import "io"

// Source is a stream of interleaved float32 PCM samples in [-1, 1].
// Decoders produce Sources and the processing stages (Resampler,
// MonoMixer, Upmixer) both consume and implement it, so stages chain
// freely.
type Source interface {
	// SampleRate of the PCM stream in Hz.
	SampleRate() int
	// Channels count (e.g., 1=mono, 2=stereo).
	Channels() int
	// ReadSamples fills dst with interleaved float32 samples in [-1,1].
	// Returns number of float32 values written (not frames). When n == 0 with err == io.EOF, the stream is finished.
	ReadSamples(dst []float32) (n int, err error)

	// BufSize hints at the source's natural read granularity.
	BufSize() int

	// Close releases any resources.
	Close() error
}

// Decoder constructs a Source from an input reader. Decoders are
// stateless apart from their configuration; each Decode call yields an
// independent stream, so the same payload can be decoded again for
// loop restarts.
type Decoder interface {
	Decode(r io.Reader) (Source, error)
}
