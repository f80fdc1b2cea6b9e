package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep/v2"
)

// Cutoff range of the whoosh's low-pass filter, as one-pole coefficients.
const (
	whooshLow  = 0.01
	whooshHigh = 0.35
)

// Whoosh returns filtered noise lasting d. The filter opens over the sound
// when rising is true and closes when it is false. The seed makes the
// noise reproducible.
func Whoosh(sr beep.SampleRate, d time.Duration, rising bool, seed int64) beep.Streamer {
	total := sr.N(d)
	rng := rand.New(rand.NewSource(seed))
	pos := 0
	var left, right float64

	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		if pos >= total {
			return 0, false
		}
		for i := range samples {
			if pos >= total {
				return i, true
			}
			t := float64(pos) / float64(total)
			sweep := t
			if !rising {
				sweep = 1 - t
			}
			alpha := whooshLow + (whooshHigh-whooshLow)*sweep*sweep
			env := math.Sin(math.Pi * t)

			left += alpha * (rng.Float64()*2 - 1 - left)
			right += alpha * (rng.Float64()*2 - 1 - right)
			samples[i][0] = left * env
			samples[i][1] = right * env
			pos++
		}
		return len(samples), true
	})
}

// Chime returns a sine tone at freq Hz with an exponential decay over d.
func Chime(sr beep.SampleRate, d time.Duration, freq float64) beep.Streamer {
	total := sr.N(d)
	pos := 0

	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		if pos >= total {
			return 0, false
		}
		for i := range samples {
			if pos >= total {
				return i, true
			}
			t := float64(pos) / float64(sr)
			env := math.Exp(-5 * float64(pos) / float64(total))
			v := 0.3 * env * math.Sin(2*math.Pi*freq*t)
			samples[i][0] = v
			samples[i][1] = v
			pos++
		}
		return len(samples), true
	})
}
