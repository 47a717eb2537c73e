// SPDX-License-Identifier: EPL-2.0

package audio

import "sync"

// Registry maps format keys (e.g., "wav", "mp3", "ogg vorbis") to
// decoders. A playback engine registers the decoders it was built
// with and looks them up by the detected format.
type Registry struct {
	mtx    sync.RWMutex
	codecs map[string]Decoder
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]Decoder),
	}
}

// Register binds format to d, replacing any previous binding. Handy
// for re-registering a decoder with new configuration (a MIDI decoder
// gaining a SoundFont, for instance).
func (r *Registry) Register(format string, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[format] = d
}

// Get returns the decoder bound to format.
func (r *Registry) Get(format string) (Decoder, bool) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	d, ok := r.codecs[format]
	return d, ok
}
