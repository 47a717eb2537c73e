package flac

import "errors"

var (
	ErrNotFlacFile = errors.New("not a FLAC file")
)
