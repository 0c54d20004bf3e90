// Package audio turns semantic game cues into synthesized terminal-friendly
// sounds. All tones are generated, no sample assets. Audio is opt-in: an
// uninitialized Dispatcher swallows every cue, so the game never depends on
// a working sound device.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/kseleznyov/gemcrush/internal/core"
)

const sampleRate = beep.SampleRate(48000)

// Dispatcher owns the speaker and mixes one-shot cue sounds into it.
type Dispatcher struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewDispatcher creates a dispatcher. Call Initialize to open the device.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker and starts the mixer.
func (d *Dispatcher) Initialize() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}

	speaker.Play(d.mixer)
	d.initialized = true
	return nil
}

// Cleanup silences the mixer. The speaker itself has no close in beep;
// clearing the mixer is enough to stop output.
func (d *Dispatcher) Cleanup() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.initialized {
		return
	}
	d.mixer.Clear()
	d.initialized = false
}

// Play dispatches one cue to its sound. Unknown cues are ignored.
func (d *Dispatcher) Play(cue core.Cue) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.initialized {
		return
	}

	switch cue {
	case core.CueSelect:
		d.oneShot(NewToneGenerator(sampleRate, 880), time.Millisecond*40)
	case core.CueSwap:
		d.oneShot(NewToneGenerator(sampleRate, 660), time.Millisecond*60)
	case core.CueSwapFail:
		d.oneShot(NewBuzzGenerator(sampleRate, 120), time.Millisecond*150)
	case core.CueMatch:
		d.oneShot(NewToneGenerator(sampleRate, 523), time.Millisecond*120)
	case core.CueCascade:
		d.oneShot(NewSweepGenerator(sampleRate, 523, 784, time.Millisecond*120), time.Millisecond*120)
	case core.CuePowerUp:
		d.oneShot(NewSweepGenerator(sampleRate, 440, 1320, time.Millisecond*250), time.Millisecond*250)
	case core.CueLevelComplete:
		notes := []float64{523, 659, 784, 1047}
		d.oneShot(NewArpeggioGenerator(sampleRate, notes, time.Millisecond*110), time.Millisecond*440)
	case core.CueGameOver:
		d.oneShot(NewSweepGenerator(sampleRate, 440, 110, time.Millisecond*500), time.Millisecond*500)
	}
}

// PlayAll dispatches every cue from a step result.
func (d *Dispatcher) PlayAll(cues []core.Cue) {
	for _, cue := range cues {
		d.Play(cue)
	}
}

// oneShot adds a time-limited streamer to the mixer. The mixer drops
// streamers when they drain, so no bookkeeping is needed.
func (d *Dispatcher) oneShot(s beep.Streamer, dur time.Duration) {
	d.mixer.Add(beep.Take(sampleRate.N(dur), s))
}
