package wav

import "errors"

var (
	// ErrNotWavFile is returned when the payload lacks a RIFF/WAVE header.
	ErrNotWavFile = errors.New("not a WAV file")

	// ErrUnsupportedWavLayout is returned for compressed or non-PCM layouts.
	ErrUnsupportedWavLayout = errors.New("unsupported WAV layout")

	// ErrOnlyPCM16bitSupported is returned for bit depths other than 16.
	ErrOnlyPCM16bitSupported = errors.New("only PCM 16-bit supported")

	// ErrUnsupportedWavChunks is returned when the decoder cannot report a format.
	ErrUnsupportedWavChunks = errors.New("unsupported WAV chunks")
)
