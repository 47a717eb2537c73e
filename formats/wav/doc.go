// SPDX-License-Identifier: EPL-2.0

// Package wav decodes and encodes WAV audio files.
//
// Only 16-bit PCM payloads are supported, mono or multi-channel, at any
// sample rate. Decoding is built on the github.com/go-audio libraries.
//
// # Decoding
//
// Decoder turns a WAV payload into an audio.Source yielding float32
// samples in the range [-1.0, 1.0]:
//
//	file, _ := os.Open("audio.wav")
//	source, err := wav.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// WAV is the only format the playback engine can seek in, so track
// position changes re-decode from the start and discard up to the
// target frame.
//
// # Encoding
//
// WriteWAV16 writes a complete mono WAV file, header included:
//
//	samples := []int16{100, -100, 200, -200}
//	file, _ := os.Create("output.wav")
//	err := wav.WriteWAV16(file, 8000, samples)
//
// # Error Handling
//
// Decode failures resolve to one of the package sentinels, so callers
// can branch with errors.Is:
//
//	_, err := wav.Decoder{}.Decode(file)
//	if errors.Is(err, wav.ErrNotWavFile) {
//	    fmt.Println("Not a WAV file")
//	}
package wav
