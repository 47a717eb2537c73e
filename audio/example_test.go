// SPDX-License-Identifier: EPL-2.0

package audio_test

import (
	"fmt"
	"io"

	"github.com/ik5/musmix/audio"
	"github.com/ik5/musmix/internal/audiotest"
)

// Example_resampler converts a 44.1kHz stream to 16kHz.
func Example_resampler() {
	source := audiotest.NewSineSource(44100, 1, 44100, 440.0) // 1 second, 440Hz tone
	resampler := audio.NewResampler(source, 16000)

	fmt.Printf("Output sample rate: %d Hz\n", resampler.SampleRate())
	fmt.Printf("Channels: %d\n", resampler.Channels())

	buf := make([]float32, 4096)
	totalSamples := 0
	for {
		n, err := resampler.ReadSamples(buf)
		totalSamples += n

		if err == io.EOF {
			break
		}
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
	}

	fmt.Printf("Total samples read: %d\n", totalSamples)
	// Output:
	// Output sample rate: 16000 Hz
	// Channels: 1
	// Total samples read: 16000
}

// Example_deviceAdaptation shows the chain the playback engine builds
// to adapt a decoded stream to an output device: resample to the
// device rate, then convert the channel layout.
func Example_deviceAdaptation() {
	// A decoded track: stereo at 44.1kHz
	source := audiotest.NewSineSource(44100, 2, 44100, 440.0)

	// The device wants mono at 8kHz
	resampled := audio.NewResampler(source, 8000)
	mono := audio.NewMonoMixer(resampled)

	fmt.Printf("Sample rate: %d Hz\n", mono.SampleRate())
	fmt.Printf("Channels: %d\n", mono.Channels())

	buf := make([]float32, 4096)
	totalSamples := 0
	for {
		n, err := mono.ReadSamples(buf)
		totalSamples += n
		if err == io.EOF {
			break
		}
	}

	fmt.Printf("Total samples: %d\n", totalSamples)
	fmt.Printf("Duration: %.2f seconds\n", float64(totalSamples)/float64(mono.SampleRate()))
	// Output:
	// Sample rate: 8000 Hz
	// Channels: 1
	// Total samples: 8000
	// Duration: 1.00 seconds
}

// Example_upmixer demonstrates spreading a mono stream across a
// multi-channel device.
func Example_upmixer() {
	source := audiotest.NewConstantSource(16000, 1, 4, 0.5)
	wide := audio.NewUpmixer(source, 2)

	fmt.Printf("Channels: %d\n", wide.Channels())

	buf := make([]float32, 8)
	n, _ := wide.ReadSamples(buf)

	fmt.Printf("Samples: %v\n", buf[:n])
	// Output:
	// Channels: 2
	// Samples: [0.5 0.5 0.5 0.5 0.5 0.5 0.5 0.5]
}

// exampleDecoder is a stand-in decoder for the registry example.
type exampleDecoder struct{}

func (exampleDecoder) Decode(r io.Reader) (audio.Source, error) {
	return audiotest.NewSineSource(16000, 1, 1000, 440.0), nil
}

// Example_registry demonstrates decoder lookup by format key.
func Example_registry() {
	registry := audio.NewRegistry()
	registry.Register("wav", exampleDecoder{})

	decoder, ok := registry.Get("wav")
	if !ok {
		fmt.Println("Decoder not found")
		return
	}
	fmt.Printf("Retrieved decoder: %T\n", decoder)

	if _, ok := registry.Get("mod"); !ok {
		fmt.Println("No decoder registered for mod")
	}
	// Output:
	// Retrieved decoder: audio_test.exampleDecoder
	// No decoder registered for mod
}
