package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave is the shape of a cue's oscillator.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
)

// tone is a fixed-length oscillator with a linear release so cues do not
// click when they end.
type tone struct {
	freq    float64
	slide   float64 // Hz added per second
	phase   float64
	pos     int
	total   int
	release int
	wave    Wave
	rate    beep.SampleRate
}

func newTone(c Cue, rate beep.SampleRate) *tone {
	total := rate.N(c.Duration)
	rel := total / 4
	if rel < 1 {
		rel = 1
	}
	return &tone{
		freq:    c.Freq,
		slide:   c.Slide,
		total:   total,
		release: rel,
		wave:    c.Wave,
		rate:    rate,
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.pos >= t.total {
			return i, i > 0
		}
		var v float64
		switch t.wave {
		case WaveSquare:
			v = 1
			if t.phase >= 0.5 {
				v = -1
			}
		default:
			v = math.Sin(2 * math.Pi * t.phase)
		}
		if left := t.total - t.pos; left < t.release {
			v *= float64(left) / float64(t.release)
		}
		samples[i][0] = v
		samples[i][1] = v

		f := t.freq + t.slide*float64(t.pos)/float64(t.rate)
		t.phase += f / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// Streamer renders c at rate, attenuated by volume in (0, 1].
func (c Cue) Streamer(rate beep.SampleRate) beep.Streamer {
	s := beep.Take(rate.N(c.Duration), newTone(c, rate))
	if c.Volume <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(c.Volume)}
}

// Cue is a short synthesized sound.
type Cue struct {
	Freq     float64
	Slide    float64
	Duration time.Duration
	Wave     Wave
	Volume   float64
}
