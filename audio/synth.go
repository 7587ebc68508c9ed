package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// Wave is an oscillator shape
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a fixed-length raw wave
type oscillator struct {
	freq     float64
	phase    float64
	length   int
	position int
	wave     Wave
	rate     beep.SampleRate
}

// NewOscillator creates a streamer of duration at freq
func NewOscillator(freq float64, duration time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &oscillator{freq: freq, length: rate.N(duration), wave: wave, rate: rate}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.length {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			val = -1
			if o.phase < 0.5 {
				val = 1
			}
		case WaveSaw:
			val = 2 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release to a stream
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// NewEnvelope shapes s over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.position >= e.total {
		return 0, false
	}
	if remaining := e.total - e.position; len(samples) > remaining {
		samples = samples[:remaining]
	}
	n, ok = e.streamer.Stream(samples)

	releaseStart := e.total - e.release
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if e.release > 0 && e.position >= releaseStart {
			vol = math.Min(vol, float64(e.total-e.position)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly; zero or less is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// tone is a shaped oscillator note
func tone(freq float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, d, wave, rate), d, 5*time.Millisecond, d/2, rate)
}

// sine is a plain generator tone cut to d
func sine(freq float64, d time.Duration, rate beep.SampleRate) beep.Streamer {
	s, err := generators.SineTone(rate, freq)
	if err != nil {
		return beep.Silence(rate.N(d))
	}
	return NewEnvelope(beep.Take(rate.N(d), s), d, 5*time.Millisecond, d/3, rate)
}

// Build synthesizes cue c at the configured volume
func Build(c Cue, cfg Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	var s beep.Streamer
	switch c {
	case CueKill:
		// noise burst over a low thump
		s = beep.Mix(
			newVolume(tone(0, 180*time.Millisecond, WaveNoise, rate), 0.6),
			newVolume(tone(90, 180*time.Millisecond, WaveSine, rate), 0.4),
		)
	case CueDamage:
		s = tone(70, 300*time.Millisecond, WaveSaw, rate)
	case CueSpawn:
		s = sine(440, 60*time.Millisecond, rate)
	case CueGameOver:
		s = beep.Seq(
			tone(392, 200*time.Millisecond, WaveSquare, rate),
			tone(311.13, 200*time.Millisecond, WaveSquare, rate),
			tone(196, 500*time.Millisecond, WaveSquare, rate),
		)
	case CueRejected:
		s = tone(100, 120*time.Millisecond, WaveSaw, rate)
	case CueUpgrade:
		s = beep.Seq(
			sine(987.77, 80*time.Millisecond, rate),
			sine(1318.51, 160*time.Millisecond, rate),
		)
	case CueNoUpgrade:
		s = tone(150, 150*time.Millisecond, WaveSquare, rate)
	case CueMilestone:
		s = beep.Mix(
			newVolume(sine(880, 300*time.Millisecond, rate), 0.7),
			newVolume(sine(1760, 300*time.Millisecond, rate), 0.3),
		)
	default:
		return nil
	}
	return newVolume(s, cfg.Volumes[c]*cfg.MasterVolume)
}
