// SPDX-License-Identifier: EPL-2.0

// Package audio provides the low-level primitives the playback engine
// is built on: the Source stream interface, the Decoder registry, and
// the adapters that reshape a decoded stream for an output device.
//
// # Sources
//
// Every decoder and processing stage implements Source, a pull-based
// stream of interleaved float32 samples:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// Stages wrap other Sources, so a track's pipeline is just a chain of
// them. ReadSamples reports io.EOF once the underlying stream is
// drained; any other error is a decoding or processing failure.
//
// Samples are normalized to [-1.0, 1.0], with 0.0 as silence. Keeping
// bit depths out of the chain avoids clipping in intermediate stages;
// conversion to the device format happens once, at the very end.
//
// # Device adaptation
//
// A decoded track rarely matches the output device, so the engine
// builds an adapter chain per track. Resampler converts the rate with
// Catmull-Rom interpolation, MonoMixer folds any channel count down to
// one by averaging, and Upmixer spreads mono across the device's
// channels:
//
//	resampled := audio.NewResampler(source, 8000) // any rate -> 8kHz
//	mono := audio.NewMonoMixer(resampled)         // N channels -> 1
//	wide := audio.NewUpmixer(mono, 2)             // 1 channel  -> 2
//
// Arbitrary layout changes go through mono: fold first, then upmix.
//
// # Decoder registry
//
// Registry decouples format detection from decoder construction:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, ok := registry.Get("wav")
//
// Registering a key again replaces the binding, which is how decoders
// with runtime configuration (such as a MIDI SoundFont) are updated.
package audio
