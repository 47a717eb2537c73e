package audio

import "fmt"

// MonoMixer folds a multi-channel Source down to one channel by
// averaging each frame. A mono source passes through untouched.
type MonoMixer struct {
	src Source
	tmp []float32
}

func NewMonoMixer(src Source) *MonoMixer {
	return &MonoMixer{
		src: src,
		tmp: make([]float32, 4096),
	}
}

func (m *MonoMixer) SampleRate() int { return m.src.SampleRate() }
func (m *MonoMixer) Channels() int   { return 1 }
func (m *MonoMixer) BufSize() int    { return m.src.BufSize() }

func (m *MonoMixer) Close() error {
	if err := m.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// ReadSamples fills dst with mono samples; len(dst) is the frame
// count since the output has one sample per frame.
func (m *MonoMixer) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	channels := m.src.Channels()
	if channels == 1 {
		return m.src.ReadSamples(dst)
	}

	need := len(dst) * channels
	if cap(m.tmp) < need {
		m.tmp = make([]float32, need)
	}

	n, err := m.src.ReadSamples(m.tmp[:need])
	if n == 0 {
		return 0, err
	}
	frames := n / channels

	switch channels {
	case 2:
		for f := 0; f < frames; f++ {
			dst[f] = (m.tmp[2*f] + m.tmp[2*f+1]) * 0.5
		}
	case 4:
		for f := 0; f < frames; f++ {
			i := 4 * f
			dst[f] = (m.tmp[i] + m.tmp[i+1] + m.tmp[i+2] + m.tmp[i+3]) * 0.25
		}
	default:
		scale := 1 / float32(channels)
		for f := 0; f < frames; f++ {
			var sum float32
			for c := 0; c < channels; c++ {
				sum += m.tmp[f*channels+c]
			}
			dst[f] = sum * scale
		}
	}

	return frames, err
}
