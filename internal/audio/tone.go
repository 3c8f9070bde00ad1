package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// tone is a decaying sine wave of fixed length.
type tone struct {
	freq     float64
	gain     float64
	decay    float64 // Envelope time constant in samples
	phase    float64
	position int
	length   int
	rate     beep.SampleRate
}

// NewTone creates a sine tone that starts at gain and fades out over d.
func NewTone(freq float64, d time.Duration, gain float64, rate beep.SampleRate) beep.Streamer {
	length := rate.N(d)
	return &tone{
		freq:   freq,
		gain:   gain,
		decay:  float64(length) / 4,
		length: length,
		rate:   rate,
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.position >= t.length {
			return i, i > 0
		}

		env := t.gain * math.Exp(-float64(t.position)/t.decay)
		val := env * math.Sin(2*math.Pi*t.phase)
		samples[i][0] = val
		samples[i][1] = val

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// NewBling builds the score sound: a short E6 chirp followed by a ringing A6.
func NewBling(rate beep.SampleRate) beep.Streamer {
	return beep.Seq(
		NewTone(1318.5, 70*time.Millisecond, 0.35, rate),
		NewTone(1760.0, 180*time.Millisecond, 0.3, rate),
	)
}
