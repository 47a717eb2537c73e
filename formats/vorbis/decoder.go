package vorbis

import (
	"fmt"
	"io"

	"github.com/ik5/musmix/audio"
	"github.com/jfreymuth/oggvorbis"
)

// oggReader is an interface for oggvorbis.Reader to allow testing
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

// stream adapts an oggvorbis.Reader to the audio.Source interface.
type stream struct {
	r    oggReader
	rate int
	chs  int
}

func (s *stream) SampleRate() int { return s.rate }
func (s *stream) Channels() int   { return s.chs }
func (s *stream) Close() error    { return nil }
func (s *stream) BufSize() int    { return 4096 }

func (s *stream) ReadSamples(dst []float32) (int, error) {
	// oggvorbis already yields interleaved float32, so samples go
	// straight into dst; the read length must be a whole number of
	// frames or the reader rejects it
	usable := (len(dst) / s.chs) * s.chs
	if usable == 0 {
		return 0, nil
	}

	return s.r.Read(dst[:usable])
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return &stream{
		r:    dec,
		rate: dec.SampleRate(),
		chs:  dec.Channels(),
	}, nil
}
