// SPDX-License-Identifier: EPL-2.0

package flac

import (
	"fmt"
	"io"

	goflac "github.com/mewkiz/flac"

	"github.com/ik5/musmix/audio"
)

// source wraps mewkiz/flac Stream to implement audio.Source.
// FLAC frames are decoded one at a time and buffered as interleaved
// float32 samples between ReadSamples calls.
type source struct {
	stream     *goflac.Stream
	sampleRate int
	channels   int
	bitDepth   int

	pending []float32 // decoded but not yet consumed
	eof     bool
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) BufSize() int    { return 4096 }
func (s *source) Close() error {
	err := s.stream.Close()
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// decodeFrame parses the next FLAC frame into s.pending.
func (s *source) decodeFrame() error {
	frame, err := s.stream.ParseNext()
	if err != nil {
		if err == io.EOF {
			s.eof = true
			return io.EOF
		}
		return fmt.Errorf("%w", err)
	}

	scale := float32(int64(1) << (s.bitDepth - 1))

	blockSize := len(frame.Subframes[0].Samples)
	if cap(s.pending) < blockSize*s.channels {
		s.pending = make([]float32, 0, blockSize*s.channels)
	}
	s.pending = s.pending[:0]

	for i := 0; i < blockSize; i++ {
		for ch := 0; ch < s.channels; ch++ {
			v := frame.Subframes[ch].Samples[i]
			s.pending = append(s.pending, float32(v)/scale)
		}
	}

	return nil
}

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	written := 0
	for written < len(dst) {
		if len(s.pending) == 0 {
			if s.eof {
				break
			}
			if err := s.decodeFrame(); err != nil {
				if err == io.EOF {
					break
				}
				return written, err
			}
		}

		n := copy(dst[written:], s.pending)
		s.pending = s.pending[n:]
		written += n
	}

	if written == 0 {
		return 0, io.EOF
	}
	if s.eof && len(s.pending) == 0 {
		return written, io.EOF
	}
	return written, nil
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	stream, err := goflac.New(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	info := stream.Info
	if info == nil {
		return nil, ErrNotFlacFile
	}

	return &source{
		stream:     stream,
		sampleRate: int(info.SampleRate),
		channels:   int(info.NChannels),
		bitDepth:   int(info.BitsPerSample),
	}, nil
}
