// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/ik5/musmix/audio"
)

// mp3Reader is an interface for gomp3.Decoder to allow testing
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

// stream adapts a gomp3.Decoder to the audio.Source interface.
type stream struct {
	r    mp3Reader
	rate int
	pcm  []byte
}

func (s *stream) SampleRate() int { return s.rate }
func (s *stream) Channels() int   { return 2 }
func (s *stream) Close() error    { return nil }
func (s *stream) BufSize() int    { return cap(s.pcm) / 2 } // sample capacity, not bytes

func (s *stream) ReadSamples(dst []float32) (int, error) {
	// go-mp3 emits 16-bit little-endian PCM, two bytes per sample
	need := len(dst) * 2
	if cap(s.pcm) < need {
		s.pcm = make([]byte, need)
	}
	s.pcm = s.pcm[:need]

	n, err := s.r.Read(s.pcm)
	if n == 0 {
		if err != nil {
			return 0, err
		}
		return 0, nil
	}

	samples := n / 2
	for i := 0; i < samples; i++ {
		v := int16(binary.LittleEndian.Uint16(s.pcm[2*i:]))
		dst[i] = float32(v) / 32768.0
	}

	return samples, err
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	// go-mp3 always upmixes mono frames, so the stream is stereo
	return &stream{
		r:    dec,
		rate: dec.SampleRate(),
		pcm:  make([]byte, 8192),
	}, nil
}
