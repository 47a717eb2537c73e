package audio

import "fmt"

// Upmixer duplicates a mono source across a fixed number of output
// channels. It is the counterpart of MonoMixer for feeding mono
// material into a multi-channel sink.
type Upmixer struct {
	src      Source
	channels int
	tmp      []float32
}

// NewUpmixer wraps src so its samples are repeated into channels
// interleaved outputs. src must be mono; a multi-channel src is
// passed through untouched by ReadSamples.
func NewUpmixer(src Source, channels int) *Upmixer {
	return &Upmixer{
		src:      src,
		channels: channels,
		tmp:      make([]float32, 4096),
	}
}

func (u *Upmixer) SampleRate() int { return u.src.SampleRate() }
func (u *Upmixer) Channels() int   { return u.channels }
func (u *Upmixer) BufSize() int    { return u.src.BufSize() }
func (u *Upmixer) Close() error {
	err := u.src.Close()
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

func (u *Upmixer) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}
	if u.src.Channels() != 1 || u.channels == 1 {
		// Pass-through: nothing to duplicate
		return u.src.ReadSamples(dst)
	}

	if len(dst)%u.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	frames := len(dst) / u.channels

	// Grow tmp buffer if needed (but don't shrink to avoid thrashing)
	if cap(u.tmp) < frames {
		u.tmp = make([]float32, frames)
	}
	u.tmp = u.tmp[:frames]

	n, err := u.src.ReadSamples(u.tmp)
	if n == 0 {
		return 0, err
	}

	switch u.channels {
	case 2: // Stereo (most common)
		for f := 0; f < n; f++ {
			idx := f << 1
			dst[idx] = u.tmp[f]
			dst[idx+1] = u.tmp[f]
		}
	default:
		for f := 0; f < n; f++ {
			base := f * u.channels
			for c := 0; c < u.channels; c++ {
				dst[base+c] = u.tmp[f]
			}
		}
	}

	return n * u.channels, err
}
