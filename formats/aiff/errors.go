package aiff

import "errors"

var (
	// ErrNotAiffFile is returned when the payload lacks a FORM/AIFF header.
	ErrNotAiffFile = errors.New("not an AIFF file")

	// ErrOnlyPCM16bitSupported is returned for bit depths other than 16.
	ErrOnlyPCM16bitSupported = errors.New("only 16-bit PCM AIFF is supported")

	// ErrUnsupportedAiffLayout is returned when the decoder cannot report a format.
	ErrUnsupportedAiffLayout = errors.New("unsupported AIFF layout")
)
