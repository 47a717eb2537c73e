// SPDX-License-Identifier: EPL-2.0

package player

import (
	"bytes"
	"fmt"
	"io"

	"github.com/ik5/musmix/audio"
)

// backend is the playback capability set the Player drives. One
// implementation exists per loaded Music, selected at load time; the
// Player never inspects decoder state directly. All methods are
// called with the Player's lock held.
type backend interface {
	// start begins (or restarts) playback from the top of the track.
	start() error
	// stop releases the decode chain; start may be called again.
	stop()
	// active reports whether the track still has samples to produce.
	active() bool
	// setVolume sets the playback gain, 0..MaxVolume.
	setVolume(v int)
	// mix adds up to len(dst) samples into dst at the device rate and
	// channel count, returning how many were written.
	mix(dst []float32) int
	// seek repositions playback to the given offset in seconds.
	seek(seconds float64) error
	// close releases the backing data; the backend is dead afterwards.
	close() error
}

// streamBackend plays any audio.Decoder by re-decoding the buffered
// payload on every start, adapting the decoded stream to the device
// rate and channel count.
type streamBackend struct {
	data    []byte
	dec     audio.Decoder
	dev     DeviceSpec
	canSeek bool

	src    audio.Source // raw decoder output, nil when stopped
	chain  audio.Source // src adapted to the device format
	volume int
	done   bool
	tmp    []float32
}

// newStreamBackend validates the payload by performing a trial decode.
func newStreamBackend(data []byte, dec audio.Decoder, dev DeviceSpec, canSeek bool) (*streamBackend, error) {
	src, err := dec.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	src.Close()

	return &streamBackend{
		data:    data,
		dec:     dec,
		dev:     dev,
		canSeek: canSeek,
		volume:  MaxVolume,
	}, nil
}

func (b *streamBackend) start() error {
	b.stop()

	if b.data == nil {
		return ErrUnknownMusicType
	}

	src, err := b.dec.Decode(bytes.NewReader(b.data))
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	chain := src
	if chain.SampleRate() != b.dev.SampleRate {
		chain = audio.NewResampler(chain, b.dev.SampleRate)
	}
	if chain.Channels() != b.dev.Channels {
		if b.dev.Channels == 1 {
			chain = audio.NewMonoMixer(chain)
		} else {
			if chain.Channels() != 1 {
				chain = audio.NewMonoMixer(chain)
			}
			chain = audio.NewUpmixer(chain, b.dev.Channels)
		}
	}

	b.src = src
	b.chain = chain
	b.done = false
	return nil
}

func (b *streamBackend) stop() {
	if b.chain != nil {
		b.chain.Close()
	}
	b.src = nil
	b.chain = nil
	b.done = false
}

func (b *streamBackend) active() bool {
	return b.chain != nil && !b.done
}

func (b *streamBackend) setVolume(v int) {
	if v < 0 {
		v = 0
	} else if v > MaxVolume {
		v = MaxVolume
	}
	b.volume = v
}

func (b *streamBackend) mix(dst []float32) int {
	if b.chain == nil || b.done {
		return 0
	}

	if cap(b.tmp) < len(dst) {
		b.tmp = make([]float32, len(dst))
	}
	b.tmp = b.tmp[:len(dst)]

	n, err := b.chain.ReadSamples(b.tmp)
	if err != nil {
		// io.EOF and decode errors both end the track
		b.done = true
	}
	if n == 0 {
		b.done = true
		return 0
	}

	scale := float32(b.volume) / float32(MaxVolume)
	for i := 0; i < n; i++ {
		dst[i] += b.tmp[i] * scale
	}
	return n
}

func (b *streamBackend) seek(seconds float64) error {
	if !b.canSeek {
		return ErrPositionUnsupported
	}
	if err := b.start(); err != nil {
		return err
	}
	if seconds <= 0 {
		return nil
	}

	// Skip decoded output up to the requested offset, in device time.
	skip := int(seconds*float64(b.dev.SampleRate)) * b.dev.Channels
	buf := make([]float32, 1024*b.dev.Channels)
	for skip > 0 {
		want := len(buf)
		if want > skip {
			want = skip
		}
		n, err := b.chain.ReadSamples(buf[:want])
		skip -= n
		if err == io.EOF {
			b.done = true
			return nil
		}
		if err != nil {
			return fmt.Errorf("%w", err)
		}
		if n == 0 {
			return nil
		}
	}
	return nil
}

func (b *streamBackend) close() error {
	b.stop()
	b.data = nil
	return nil
}
