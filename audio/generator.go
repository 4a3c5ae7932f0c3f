package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// BlipGenerator generates a short sine blip with a linear pitch glide and exponential decay
type BlipGenerator struct {
	sr       beep.SampleRate
	from, to float64 // Frequency glide in Hz
	decay    float64 // Envelope decay rate per second
	pos      int
	samples  int
}

// NewBlipGenerator creates a blip of the given duration gliding from one frequency to another
func NewBlipGenerator(sr beep.SampleRate, from, to float64, d time.Duration) *BlipGenerator {
	return &BlipGenerator{
		sr:      sr,
		from:    from,
		to:      to,
		decay:   6 / d.Seconds(),
		samples: sr.N(d),
	}
}

// Stream fills samples until the blip is exhausted
func (g *BlipGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.samples {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.samples {
			return i, true
		}
		t := float64(g.pos) / float64(g.sr)
		progress := float64(g.pos) / float64(g.samples)
		freq := g.from + (g.to-g.from)*progress

		// Short attack avoids a click at onset
		attack := math.Min(t/0.002, 1.0)
		envelope := attack * math.Exp(-t*g.decay)

		sample := 0.3 * envelope * math.Sin(2*math.Pi*freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

// Err always returns nil
func (g *BlipGenerator) Err() error {
	return nil
}

// Len returns the total sample count
func (g *BlipGenerator) Len() int {
	return g.samples
}

// cueStreamer builds the streamer for a cue
func cueStreamer(sr beep.SampleRate, c Cue) beep.Streamer {
	switch c {
	case CueToggle:
		return beep.Seq(
			NewBlipGenerator(sr, 660, 660, 25*time.Millisecond),
			NewBlipGenerator(sr, 990, 990, 35*time.Millisecond),
		)
	case CueLimit:
		return NewBlipGenerator(sr, 220, 140, 90*time.Millisecond)
	default:
		return NewBlipGenerator(sr, 880, 1100, 30*time.Millisecond)
	}
}
