// SPDX-License-Identifier: EPL-2.0

package player

import (
	"bytes"
	"fmt"
	"io"
	"os"
)

// Music is a loaded music asset ready for playback. A Music belongs
// to the Player that loaded it and must be released with Free.
type Music struct {
	format  Format
	backend backend

	// fade transition over the currently playing slot; guarded by the
	// owning Player's lock while the Music is current
	fading    Fading
	fadeStep  int
	fadeSteps int
}

// Format returns the format tag resolved at load time.
func (m *Music) Format() Format { return m.format }

// Load opens path, guesses its format from the filename extension
// first and the stream contents second, and loads it.
func (p *Player) Load(path string) (*Music, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", path, err)
	}

	return p.loadReader(f, formatFromPath(path), true)
}

// LoadReader loads music from r, sniffing its format.
// If takeOwnership is true the reader is closed when loading
// completes (successfully or not); otherwise it is rewound to its
// original position on failure.
func (p *Player) LoadReader(r io.ReadSeeker, takeOwnership bool) (*Music, error) {
	return p.loadReader(r, FormatNone, takeOwnership)
}

// LoadReaderType is LoadReader with an explicit format hint;
// FormatNone means sniff.
func (p *Player) LoadReaderType(r io.ReadSeeker, format Format, takeOwnership bool) (*Music, error) {
	return p.loadReader(r, format, takeOwnership)
}

func (p *Player) loadReader(r io.ReadSeeker, format Format, takeOwnership bool) (*Music, error) {
	if r == nil {
		return nil, ErrNilReader
	}
	start, err := r.Seek(0, io.SeekCurrent)
	if err != nil {
		p.release(r, takeOwnership, 0)
		return nil, fmt.Errorf("seeking stream: %w", err)
	}

	if p.stepMs() == 0 {
		p.release(r, takeOwnership, start)
		return nil, ErrDeviceNotOpened
	}

	if format == FormatNone {
		format, err = Sniff(r)
		if err != nil {
			p.release(r, takeOwnership, start)
			return nil, err
		}
	}

	data, err := io.ReadAll(r)
	if err != nil {
		p.release(r, takeOwnership, start)
		return nil, fmt.Errorf("reading stream: %w", err)
	}

	b, err := p.newBackend(format, data)
	if err != nil {
		p.release(r, takeOwnership, start)
		return nil, err
	}

	if takeOwnership {
		if c, ok := r.(io.Closer); ok {
			c.Close()
		}
	}

	return &Music{format: format, backend: b}, nil
}

// release restores or closes the stream after a failed (or finished)
// load, per the ownership flag.
func (p *Player) release(r io.ReadSeeker, takeOwnership bool, start int64) {
	if r == nil {
		return
	}
	if takeOwnership {
		if c, ok := r.(io.Closer); ok {
			c.Close()
		}
		return
	}
	r.Seek(start, io.SeekStart)
}

// newBackend selects the decoder for format and validates data
// against it. Formats with no compiled-in decoder (MOD) fail with
// ErrUnrecognizedFormat.
func (p *Player) newBackend(format Format, data []byte) (backend, error) {
	info, ok := decoderTable[format]
	if !ok {
		return nil, ErrUnrecognizedFormat
	}

	key := info.key
	// The WAV tag covers both RIFF and FORM containers
	if format == FormatWAV && bytes.HasPrefix(data, []byte("FORM")) {
		key = "aiff"
	}

	dec, ok := p.registry.Get(key)
	if !ok {
		return nil, ErrUnrecognizedFormat
	}

	b, err := newStreamBackend(data, dec, p.deviceSpec(), info.canSeek)
	if err != nil {
		return nil, fmt.Errorf("loading %s music: %w", format, err)
	}
	return b, nil
}

// Free releases m. If m is the currently playing music it is halted
// first -- except that an in-progress fade-out is waited out rather
// than cut short, so the caller blocks until the fade resolves.
func (p *Player) Free(m *Music) {
	if m == nil {
		return
	}

	p.mu.Lock()
	for m == p.current && m.fading == FadingOut {
		p.cond.Wait()
	}
	if m == p.current {
		p.haltLocked()
	}
	p.mu.Unlock()

	m.backend.close()
}
