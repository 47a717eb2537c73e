package aiff

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"
	"github.com/ik5/musmix/audio"
)

// aiffReader is an interface for aiff.Decoder to allow testing
type aiffReader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// stream adapts an aiff.Decoder to the audio.Source interface.
type stream struct {
	r    aiffReader
	rate int
	chs  int
	pcm  *goaudio.IntBuffer
}

func (s *stream) SampleRate() int { return s.rate }
func (s *stream) Channels() int   { return s.chs }
func (s *stream) Close() error    { return nil }

func (s *stream) BufSize() int {
	if s.pcm == nil {
		return 4096
	}
	return cap(s.pcm.Data)
}

func (s *stream) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	s.growPCM(len(dst))

	n, err := s.r.PCMBuffer(s.pcm)
	switch {
	case n == 0 && err != nil:
		return 0, err
	case n == 0:
		return 0, io.EOF
	}

	// Decode rejects anything but 16-bit PCM, so the scale is fixed
	for i, v := range s.pcm.Data[:n] {
		dst[i] = float32(v) / 32768.0
	}

	// A short read without an error means the SSND chunk ran out
	if err == nil && n < len(dst) {
		err = io.EOF
	}

	return n, err
}

func (s *stream) growPCM(size int) {
	if s.pcm == nil || cap(s.pcm.Data) < size {
		s.pcm = &goaudio.IntBuffer{
			Data:   make([]int, size),
			Format: s.r.Format(),
		}
		return
	}
	s.pcm.Data = s.pcm.Data[:size]
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	// go-audio needs an io.ReadSeeker; buffer non-seekable input
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading aiff data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}

	dec.ReadInfo()

	if dec.BitDepth != 16 {
		return nil, ErrOnlyPCM16bitSupported
	}

	format := dec.Format()
	if format == nil {
		return nil, ErrUnsupportedAiffLayout
	}

	return &stream{
		r:    dec,
		rate: format.SampleRate,
		chs:  format.NumChannels,
	}, nil
}
