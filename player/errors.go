// SPDX-License-Identifier: EPL-2.0

package player

import "errors"

var (
	ErrDeviceNotOpened     = errors.New("audio device hasn't been opened")
	ErrInvalidDeviceSpec   = errors.New("invalid device spec")
	ErrNilMusic            = errors.New("music parameter was nil")
	ErrNilReader           = errors.New("reader is nil")
	ErrUnknownMusicType    = errors.New("can't play unknown music type")
	ErrUnrecognizedFormat  = errors.New("unrecognized music format")
	ErrNotPlaying          = errors.New("music isn't playing")
	ErrPositionUnsupported = errors.New("position not implemented for music type")
)
