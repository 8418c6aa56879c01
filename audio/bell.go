// Package audio provides an optional tone bell for the runtime. Audio
// is strictly best-effort: initialization failure leaves the runtime
// fully functional with the terminal bell as fallback.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(48000)

// Bell plays short notification tones through the system speaker
type Bell struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewBell creates an uninitialized bell
func NewBell() *Bell {
	return &Bell{mixer: &beep.Mixer{}}
}

// Initialize sets up the audio output. Idempotent
func (b *Bell) Initialize() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}
	speaker.Play(b.mixer)
	b.initialized = true
	return nil
}

// Ready reports whether audio output is available
func (b *Bell) Ready() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.initialized
}

// Ring plays a sine tone at the given frequency for the given
// duration. No-op when uninitialized.
func (b *Bell) Ring(freq float64, d time.Duration) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized {
		return
	}
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}
	speaker.Lock()
	b.mixer.Add(beep.Take(sampleRate.N(d), sine))
	speaker.Unlock()
}

// Cleanup silences the bell and releases streamers. Idempotent.
// beep exposes no speaker close, so clearing the mixer is the full
// teardown.
func (b *Bell) Cleanup() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized {
		return
	}
	speaker.Lock()
	b.mixer.Clear()
	speaker.Unlock()
	b.initialized = false
}
