// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MPEG-1 Audio Layer 3 streams.
//
// Decoding is built on github.com/hajimehoshi/go-mp3. The decoder
// accepts any bitrate, constant or variable, and always yields a
// stereo stream because go-mp3 upmixes mono frames internally.
//
// Decoder turns an MP3 payload into an audio.Source yielding float32
// samples in the range [-1.0, 1.0]:
//
//	file, _ := os.Open("audio.mp3")
//	source, err := mp3.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// The sample rate comes from the stream itself, typically 44.1kHz or
// 48kHz. To feed a device with a different shape, chain the adapters
// from the audio package:
//
//	source, _ := mp3.Decoder{}.Decode(file)
//	mono := audio.NewMonoMixer(audio.NewResampler(source, 8000))
//
// Encoding is out of scope; MP3 tracks can be rendered to WAV through
// wav.WriteWAV16 after adaptation. Seeking is not supported either,
// which is why the playback engine restarts MP3 tracks instead of
// repositioning them.
package mp3
