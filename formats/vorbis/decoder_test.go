// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"bytes"
	"io"
	"math"
	"testing"
)

// mockOggReader stands in for oggvorbis.Reader during tests. Like the
// real reader it returns the number of float32 values written and only
// fills whole frames.
type mockOggReader struct {
	sampleRate int
	channels   int
	samples    []float32
	offset     int
	failReads  bool
}

func (m *mockOggReader) SampleRate() int { return m.sampleRate }
func (m *mockOggReader) Channels() int   { return m.channels }

func (m *mockOggReader) Read(buf []float32) (int, error) {
	if m.failReads {
		return 0, io.ErrUnexpectedEOF
	}

	if m.offset >= len(m.samples) {
		return 0, io.EOF
	}

	n := (len(buf) / m.channels) * m.channels
	if rest := len(m.samples) - m.offset; n > rest {
		n = rest
	}

	copy(buf, m.samples[m.offset:m.offset+n])
	m.offset += n

	if m.offset >= len(m.samples) {
		return n, io.EOF
	}

	return n, nil
}

func mockOggSource(samples []float32, channels int) *stream {
	return &stream{
		r:    &mockOggReader{sampleRate: 44100, channels: channels, samples: samples},
		rate: 44100,
		chs:  channels,
	}
}

func TestDecoder_RejectsInvalidInput(t *testing.T) {
	t.Parallel()

	for _, data := range [][]byte{nil, []byte("This is not Ogg Vorbis data")} {
		if _, err := (Decoder{}).Decode(bytes.NewReader(data)); err == nil {
			t.Errorf("Decode(%q) error = nil, want error", data)
		}
	}
}

func TestSource_Metadata(t *testing.T) {
	t.Parallel()

	src := mockOggSource(make([]float32, 100), 2)

	if src.SampleRate() != 44100 {
		t.Errorf("SampleRate() = %d, want 44100", src.SampleRate())
	}
	if src.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", src.Channels())
	}
	if src.BufSize() <= 0 {
		t.Errorf("BufSize() = %d, want positive value", src.BufSize())
	}
	if err := src.Close(); err != nil {
		t.Errorf("Close() error = %v, want nil", err)
	}
}

func TestSource_ReadSamples_PassesThrough(t *testing.T) {
	t.Parallel()

	samples := []float32{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8}
	src := mockOggSource(samples, 2)

	dst := make([]float32, len(samples))
	n, err := src.ReadSamples(dst)

	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != len(samples) {
		t.Fatalf("ReadSamples() n = %d, want %d", n, len(samples))
	}

	for i := 0; i < n; i++ {
		if math.Abs(float64(dst[i]-samples[i])) > 1e-6 {
			t.Errorf("dst[%d] = %v, want %v", i, dst[i], samples[i])
		}
	}
}

func TestSource_ReadSamples_TrimsToWholeFrames(t *testing.T) {
	t.Parallel()

	src := mockOggSource([]float32{0.1, 0.2, 0.3, 0.4, 0.5, 0.6}, 2)

	// An odd dst length would be rejected by the reader; the source
	// must clip the request to a frame boundary
	dst := make([]float32, 5)
	n, err := src.ReadSamples(dst)

	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 4 {
		t.Errorf("ReadSamples() n = %d, want 4", n)
	}
	if dst[4] != 0 {
		t.Errorf("dst[4] = %v, want untouched 0", dst[4])
	}
}

func TestSource_ReadSamples_TinyDst(t *testing.T) {
	t.Parallel()

	src := mockOggSource(make([]float32, 100), 2)

	// dst smaller than one frame cannot make progress
	n, err := src.ReadSamples(make([]float32, 1))
	if n != 0 || err != nil {
		t.Errorf("ReadSamples() = (%d, %v), want (0, nil)", n, err)
	}

	n, err = src.ReadSamples(nil)
	if n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = (%d, %v), want (0, nil)", n, err)
	}
}

func TestSource_ReadSamples_EOF(t *testing.T) {
	t.Parallel()

	src := mockOggSource([]float32{0.5, -0.5, 0.25, -0.25}, 2)
	dst := make([]float32, 4)

	n, err := src.ReadSamples(dst)
	if n != 4 || err != io.EOF {
		t.Errorf("first ReadSamples() = (%d, %v), want (4, EOF)", n, err)
	}

	n, err = src.ReadSamples(dst)
	if n != 0 || err != io.EOF {
		t.Errorf("second ReadSamples() = (%d, %v), want (0, EOF)", n, err)
	}
}

func TestSource_ReadSamples_ChunkedReads(t *testing.T) {
	t.Parallel()

	samples := make([]float32, 1000)
	for i := range samples {
		samples[i] = float32(i) / 1000
	}

	src := mockOggSource(samples, 2)
	dst := make([]float32, 64)
	read := 0

	for {
		n, err := src.ReadSamples(dst)
		read += n

		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
		if n == 0 {
			t.Fatal("ReadSamples() returned 0 samples without EOF")
		}
	}

	if read != len(samples) {
		t.Errorf("total samples read = %d, want %d", read, len(samples))
	}
}

func TestSource_ReadSamples_PropagatesErrors(t *testing.T) {
	t.Parallel()

	src := &stream{
		r:    &mockOggReader{sampleRate: 44100, channels: 1, failReads: true},
		rate: 44100,
		chs:  1,
	}

	if _, err := src.ReadSamples(make([]float32, 10)); err == nil {
		t.Error("ReadSamples() error = nil, want error")
	}
}

func BenchmarkSource_ReadSamples(b *testing.B) {
	samples := make([]float32, 44100)
	for i := range samples {
		samples[i] = float32(i%1000) / 1000
	}

	src := mockOggSource(samples, 2)
	dst := make([]float32, 4096)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		src.r.(*mockOggReader).offset = 0

		for {
			_, err := src.ReadSamples(dst)
			if err == io.EOF {
				break
			}
		}
	}
}
