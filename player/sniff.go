// SPDX-License-Identifier: EPL-2.0

package player

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Sniff inspects the first 12 bytes of r and returns a best-guess
// format tag. On success the read position is restored to where it
// was before the call. The detection order is deliberate: container
// magics first, then the MP3 frame-sync heuristic, and finally MOD as
// a last resort, since MOD files carry no reliable magic.
func Sniff(r io.ReadSeeker) (Format, error) {
	start, err := r.Seek(0, io.SeekCurrent)
	if err != nil {
		return FormatNone, fmt.Errorf("seeking stream: %w", err)
	}

	var magic [12]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		return FormatNone, fmt.Errorf("reading stream header: %w", err)
	}

	if _, err := r.Seek(start, io.SeekStart); err != nil {
		return FormatNone, fmt.Errorf("restoring stream position: %w", err)
	}

	switch {
	// WAVE files start with "RIFF" xxxx "WAVE";
	// AIFF files start with "FORM" xxxx "AIFF" (same back-end)
	case bytes.Equal(magic[0:4], []byte("RIFF")) && bytes.Equal(magic[8:12], []byte("WAVE")):
		return FormatWAV, nil
	case bytes.Equal(magic[0:4], []byte("FORM")):
		return FormatWAV, nil
	case bytes.Equal(magic[0:4], []byte("OggS")):
		return FormatOGG, nil
	case bytes.Equal(magic[0:4], []byte("fLaC")):
		return FormatFLAC, nil
	case bytes.Equal(magic[0:4], []byte("MThd")):
		return FormatMIDI, nil
	case detectMP3(magic[:]):
		return FormatMP3, nil
	}

	// Assume MOD. There is no way to check whether the data really is
	// a MOD; too many tracker variants exist.
	return FormatMOD, nil
}

// detectMP3 checks for an ID3 tag or a plausible MPEG frame sync.
func detectMP3(magic []byte) bool {
	if bytes.HasPrefix(magic, []byte("ID3")) {
		return true
	}

	if (magic[0]&0xff) != 0xff || // no sync bits
		(magic[1]&0xf0) != 0xf0 ||
		(magic[2]&0xf0) == 0x00 || // bitrate is 0
		(magic[2]&0xf0) == 0xf0 || // bitrate is 15
		(magic[2]&0x0c) == 0x0c || // frequency is 3
		(magic[1]&0x06) == 0x00 { // layer is 4
		return false
	}
	return true
}

// formatFromPath maps a filename extension to a format tag,
// case-insensitively. Returns FormatNone when the extension is
// missing or unknown, in which case the caller should sniff.
func formatFromPath(path string) Format {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch ext {
	case "wav":
		return FormatWAV
	case "mid", "midi", "kar":
		return FormatMIDI
	case "ogg":
		return FormatOGG
	case "flac":
		return FormatFLAC
	case "mpg", "mpeg", "mp3", "mad":
		return FormatMP3
	default:
		return FormatNone
	}
}
