package audio

import (
	"io"
	"sync"
	"testing"

	"github.com/ik5/musmix/internal/audiotest"
)

type stubDecoder struct {
	name string
}

func (d *stubDecoder) Decode(r io.Reader) (Source, error) {
	return audiotest.NewSilentSource(44100, 2, 100), nil
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	decoder := &stubDecoder{name: "wav"}

	registry.Register("wav", decoder)

	got, ok := registry.Get("wav")
	if !ok {
		t.Fatal("Get() failed to retrieve registered decoder")
	}
	if got != decoder {
		t.Error("Get() returned different decoder instance")
	}

	if _, ok := registry.Get("flac"); ok {
		t.Error("Get() returned ok=true for an unregistered format")
	}
}

func TestRegistry_ReRegisterReplaces(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	first := &stubDecoder{name: "first"}
	second := &stubDecoder{name: "second"}

	registry.Register("midi", first)
	registry.Register("midi", second)

	got, ok := registry.Get("midi")
	if !ok {
		t.Fatal("Get() failed after re-registration")
	}
	if got != second {
		t.Error("Get() did not return the replacement decoder")
	}
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	decoder := &stubDecoder{name: "wav"}

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			registry.Register("wav", decoder)
		}()
		go func() {
			defer wg.Done()
			registry.Get("wav")
		}()
	}
	wg.Wait()

	if _, ok := registry.Get("wav"); !ok {
		t.Error("Get() failed after concurrent operations")
	}
}
