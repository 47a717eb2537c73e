// SPDX-License-Identifier: EPL-2.0

package midi

import (
	"fmt"
	"io"
	"time"

	"github.com/sinshu/go-meltysynth/meltysynth"

	"github.com/ik5/musmix/audio"
)

// renderRate is the synthesis sample rate. Callers that need another
// rate wrap the source in an audio.Resampler.
const renderRate = 44100

// source renders a MIDI file through a SoundFont synthesizer,
// producing interleaved stereo float32 samples.
type source struct {
	sequencer *meltysynth.MidiFileSequencer
	length    time.Duration
	rendered  int // frames rendered so far

	left  []float32
	right []float32
}

func (s *source) SampleRate() int { return renderRate }
func (s *source) Channels() int   { return 2 }
func (s *source) BufSize() int    { return 4096 }
func (s *source) Close() error    { return nil }

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	totalFrames := int(s.length.Seconds()*renderRate + 0.5)
	if s.rendered >= totalFrames {
		return 0, io.EOF
	}

	frames := len(dst) / 2
	if remaining := totalFrames - s.rendered; frames > remaining {
		frames = remaining
	}

	if cap(s.left) < frames {
		s.left = make([]float32, frames)
		s.right = make([]float32, frames)
	}
	s.left = s.left[:frames]
	s.right = s.right[:frames]

	// The synthesizer always fills the buffers; silence past the end
	// of the sequence.
	s.sequencer.Render(s.left, s.right)

	for i := 0; i < frames; i++ {
		dst[2*i] = s.left[i]
		dst[2*i+1] = s.right[i]
	}

	s.rendered += frames
	if s.rendered >= totalFrames {
		return frames * 2, io.EOF
	}
	return frames * 2, nil
}

// Decoder synthesizes standard MIDI files using a SoundFont.
// SoundFont must be set before Decode is called.
type Decoder struct {
	SoundFont *meltysynth.SoundFont
}

func (d Decoder) Decode(r io.Reader) (audio.Source, error) {
	if d.SoundFont == nil {
		return nil, ErrNoSoundFont
	}

	midiFile, err := meltysynth.NewMidiFile(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	settings := meltysynth.NewSynthesizerSettings(renderRate)
	synthesizer, err := meltysynth.NewSynthesizer(d.SoundFont, settings)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	sequencer := meltysynth.NewMidiFileSequencer(synthesizer)
	sequencer.Play(midiFile, false)

	return &source{
		sequencer: sequencer,
		length:    midiFile.GetLength(),
	}, nil
}

// LoadSoundFont parses an SF2 SoundFont for use with the Decoder.
func LoadSoundFont(r io.Reader) (*meltysynth.SoundFont, error) {
	soundFont, err := meltysynth.NewSoundFont(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return soundFont, nil
}
