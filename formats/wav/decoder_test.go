// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"math"
	"testing"
)

// buildPCM builds an in-memory WAV file with an arbitrary channel
// count and bit depth, which WriteWAV16 cannot produce.
func buildPCM(sampleRate, channels, bits int, samples []int16) []byte {
	buf := new(bytes.Buffer)

	byteRate := uint32(sampleRate * channels * bits / 8)
	blockAlign := uint16(channels * bits / 8)
	dataSize := uint32(len(samples) * 2)

	buf.WriteString("RIFF")
	binary.Write(buf, binary.LittleEndian, 36+dataSize)
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	binary.Write(buf, binary.LittleEndian, uint32(16))
	binary.Write(buf, binary.LittleEndian, uint16(1)) // PCM
	binary.Write(buf, binary.LittleEndian, uint16(channels))
	binary.Write(buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(buf, binary.LittleEndian, byteRate)
	binary.Write(buf, binary.LittleEndian, blockAlign)
	binary.Write(buf, binary.LittleEndian, uint16(bits))

	buf.WriteString("data")
	binary.Write(buf, binary.LittleEndian, dataSize)
	for _, s := range samples {
		binary.Write(buf, binary.LittleEndian, s)
	}

	return buf.Bytes()
}

func TestDecoder_Metadata(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		sampleRate int
		channels   int
	}{
		{"telephony mono", 8000, 1},
		{"cd stereo", 44100, 2},
		{"voip wideband", 16000, 1},
		{"studio", 48000, 2},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			data := buildPCM(tt.sampleRate, tt.channels, 16, []int16{100, 200, 300, 400, 500, 600})
			src, err := Decoder{}.Decode(bytes.NewReader(data))
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}

			if src.SampleRate() != tt.sampleRate {
				t.Errorf("SampleRate() = %d, want %d", src.SampleRate(), tt.sampleRate)
			}
			if src.Channels() != tt.channels {
				t.Errorf("Channels() = %d, want %d", src.Channels(), tt.channels)
			}
		})
	}
}

func TestDecoder_RejectsMalformedInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"empty", nil, ErrNotWavFile},
		{"not riff", []byte("this is not a WAV file at all"), ErrNotWavFile},
		{"truncated header", []byte("RIFF\x10\x00\x00\x00WAVE"), nil},
		{"wrong bit depth", buildPCM(8000, 1, 8, []int16{1, 2, 3}), ErrOnlyPCM16bitSupported},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Decoder{}.Decode(bytes.NewReader(tt.data))
			if err == nil {
				t.Fatal("Decode() error = nil, want error")
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Errorf("Decode() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestDecoder_NonSeekableReader(t *testing.T) {
	t.Parallel()

	// Strip the seek capability; Decode has to buffer the payload
	data := buildPCM(8000, 1, 16, []int16{100, -100, 200, -200})
	src, err := Decoder{}.Decode(io.MultiReader(bytes.NewReader(data)))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if src.SampleRate() != 8000 {
		t.Errorf("SampleRate() = %d, want 8000", src.SampleRate())
	}
}

func TestSource_ReadSamples_Conversion(t *testing.T) {
	t.Parallel()

	samples := []int16{0, 16384, -16384, 32767, -32768}
	data := buildPCM(8000, 1, 16, samples)

	src, err := Decoder{}.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	dst := make([]float32, len(samples))
	n, err := src.ReadSamples(dst)

	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != len(samples) {
		t.Fatalf("ReadSamples() n = %d, want %d", n, len(samples))
	}

	want := []float32{0.0, 0.5, -0.5, 32767.0 / 32768.0, -1.0}
	for i := 0; i < n; i++ {
		if math.Abs(float64(dst[i]-want[i])) > 0.001 {
			t.Errorf("dst[%d] = %v, want ~%v", i, dst[i], want[i])
		}
	}
}

func TestSource_ReadSamples_EmptyDst(t *testing.T) {
	t.Parallel()

	src, err := Decoder{}.Decode(bytes.NewReader(buildPCM(8000, 1, 16, []int16{1, 2, 3})))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	n, err := src.ReadSamples(nil)
	if n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = (%d, %v), want (0, nil)", n, err)
	}
}

func TestSource_ReadSamples_DrainsEverything(t *testing.T) {
	t.Parallel()

	total := 1000
	samples := make([]int16, total)
	for i := range samples {
		samples[i] = int16(i * 10)
	}

	src, err := Decoder{}.Decode(bytes.NewReader(buildPCM(16000, 1, 16, samples)))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	dst := make([]float32, 256)
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

	if read != total {
		t.Errorf("total samples read = %d, want %d", read, total)
	}

	// A drained source keeps reporting EOF
	n, err := src.ReadSamples(dst)
	if n != 0 || err != io.EOF {
		t.Errorf("ReadSamples() after drain = (%d, %v), want (0, EOF)", n, err)
	}
}

func TestSource_BufSize(t *testing.T) {
	t.Parallel()

	src, err := Decoder{}.Decode(bytes.NewReader(buildPCM(8000, 1, 16, make([]int16, 200))))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if got := src.BufSize(); got != 4096 {
		t.Errorf("BufSize() before first read = %d, want 4096", got)
	}

	src.ReadSamples(make([]float32, 128))

	if got := src.BufSize(); got < 128 {
		t.Errorf("BufSize() after read = %d, want >= 128", got)
	}

	if err := src.Close(); err != nil {
		t.Errorf("Close() error = %v, want nil", err)
	}
}

func BenchmarkDecoder_Decode(b *testing.B) {
	data := buildPCM(44100, 2, 16, make([]int16, 8192))

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_, _ = Decoder{}.Decode(bytes.NewReader(data))
	}
}

func BenchmarkSource_ReadSamples(b *testing.B) {
	samples := make([]int16, 44100)
	for i := range samples {
		samples[i] = int16(i % 1000)
	}
	data := buildPCM(44100, 1, 16, samples)

	dst := make([]float32, 4096)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		src, err := Decoder{}.Decode(bytes.NewReader(data))
		if err != nil {
			b.Fatal(err)
		}

		for {
			_, err := src.ReadSamples(dst)
			if err == io.EOF {
				break
			}
			if err != nil {
				b.Fatal(err)
			}
		}
	}
}
