// SPDX-License-Identifier: EPL-2.0

// Package audiotest provides synthetic audio sources for tests. The
// sources satisfy the audio.Source interface without importing it.
package audiotest

import (
	"io"
	"math"
)

// Waveform computes the sample value for a frame index and channel.
type Waveform func(frame, channel int) float32

// MockSource generates deterministic audio from a Waveform. It ends
// after a fixed number of frames, reporting io.EOF together with the
// final samples.
type MockSource struct {
	sampleRate int
	channels   int
	frames     int // total frames to generate
	read       int // frames generated so far
	waveform   Waveform
}

// NewMockSource creates a source producing totalFrames frames of
// interleaved audio from waveform.
func NewMockSource(sampleRate, channels, totalFrames int, waveform Waveform) *MockSource {
	return &MockSource{
		sampleRate: sampleRate,
		channels:   channels,
		frames:     totalFrames,
		waveform:   waveform,
	}
}

// NewSilentSource generates all-zero samples.
func NewSilentSource(sampleRate, channels, totalFrames int) *MockSource {
	return NewMockSource(sampleRate, channels, totalFrames, func(frame, channel int) float32 {
		return 0
	})
}

// NewSineSource generates a sine tone at the given frequency.
func NewSineSource(sampleRate, channels, totalFrames int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, totalFrames, func(frame, channel int) float32 {
		t := float64(frame) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

// NewConstantSource generates a fixed sample value on every channel.
func NewConstantSource(sampleRate, channels, totalFrames int, value float32) *MockSource {
	return NewMockSource(sampleRate, channels, totalFrames, func(frame, channel int) float32 {
		return value
	})
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) BufSize() int    { return 4096 }
func (m *MockSource) Close() error    { return nil }

// Reset rewinds the source so it can be read again.
func (m *MockSource) Reset() {
	m.read = 0
}

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.read >= m.frames {
		return 0, io.EOF
	}

	want := len(dst) / m.channels
	if left := m.frames - m.read; want > left {
		want = left
	}

	for f := 0; f < want; f++ {
		for c := 0; c < m.channels; c++ {
			dst[f*m.channels+c] = m.waveform(m.read+f, c)
		}
	}
	m.read += want

	n := want * m.channels
	if m.read >= m.frames {
		return n, io.EOF
	}
	return n, nil
}
