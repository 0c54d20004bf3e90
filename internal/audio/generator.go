package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// ToneGenerator produces a fixed-frequency sine tone with a short attack
// envelope and exponential decay. Used with beep.Take for one-shot blips.
type ToneGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewToneGenerator creates a tone generator at the given frequency.
func NewToneGenerator(sr beep.SampleRate, freq float64) *ToneGenerator {
	return &ToneGenerator{
		sr:   sr,
		freq: freq,
	}
}

func (g *ToneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Quick attack so short blips don't click
		attack := math.Min(t/0.005, 1.0)
		envelope := attack * math.Exp(-t*6)

		sample := 0.25 * envelope * math.Sin(2*math.Pi*g.freq*t)
		sample += 0.08 * envelope * math.Sin(2*math.Pi*g.freq*2*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ToneGenerator) Err() error {
	return nil
}

// SweepGenerator produces a sine tone gliding from one frequency to another
// over its lifetime. Rising sweeps read as success, falling as failure.
type SweepGenerator struct {
	sr       beep.SampleRate
	from, to float64
	pos      int
	samples  int
}

// NewSweepGenerator creates a frequency sweep over the given duration.
func NewSweepGenerator(sr beep.SampleRate, from, to float64, dur time.Duration) *SweepGenerator {
	return &SweepGenerator{
		sr:      sr,
		from:    from,
		to:      to,
		samples: sr.N(dur),
	}
}

func (g *SweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		progress := math.Min(float64(g.pos)/float64(g.samples), 1.0)

		freq := g.from + (g.to-g.from)*progress
		envelope := math.Min(t/0.01, 1.0) * (1.0 - progress*0.7)

		sample := 0.22 * envelope * math.Sin(2*math.Pi*freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *SweepGenerator) Err() error {
	return nil
}

// BuzzGenerator produces a harsh low buzz for rejected actions.
type BuzzGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewBuzzGenerator creates a buzz generator at the given frequency.
func NewBuzzGenerator(sr beep.SampleRate, freq float64) *BuzzGenerator {
	return &BuzzGenerator{
		sr:   sr,
		freq: freq,
	}
}

func (g *BuzzGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Stacked harmonics for a harsh edge
		sample := 0.0
		sample += 0.3 * math.Sin(2*math.Pi*g.freq*t)
		sample += 0.15 * math.Sin(2*math.Pi*g.freq*2*t)
		sample += 0.075 * math.Sin(2*math.Pi*g.freq*3*t)

		envelope := math.Min(t/0.02, 1.0)
		sample *= envelope * 0.2

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BuzzGenerator) Err() error {
	return nil
}

// ArpeggioGenerator steps through a sequence of frequencies, one note per
// step duration. Used for the level-complete fanfare.
type ArpeggioGenerator struct {
	sr    beep.SampleRate
	notes []float64
	step  int // samples per note
	pos   int
}

// NewArpeggioGenerator creates an arpeggio over the given notes.
func NewArpeggioGenerator(sr beep.SampleRate, notes []float64, noteDur time.Duration) *ArpeggioGenerator {
	return &ArpeggioGenerator{
		sr:    sr,
		notes: notes,
		step:  sr.N(noteDur),
	}
}

func (g *ArpeggioGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		idx := g.pos / g.step
		if idx >= len(g.notes) {
			idx = len(g.notes) - 1
		}
		freq := g.notes[idx]

		notePos := g.pos % g.step
		t := float64(notePos) / float64(g.sr)
		envelope := math.Min(t/0.005, 1.0) * math.Exp(-t*10)

		sample := 0.25 * envelope * math.Sin(2*math.Pi*freq*float64(g.pos)/float64(g.sr))

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ArpeggioGenerator) Err() error {
	return nil
}
