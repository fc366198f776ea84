package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves, optionally sweeping frequency
type oscillator struct {
	freq     float64
	sweep    float64 // Hz added per second
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	seed     uint32
}

// NewOscillator creates a fixed-frequency oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, 0, duration, wave, rate)
}

// NewSweep creates an oscillator whose frequency moves by sweep Hz per second
func NewSweep(freq, sweep float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		sweep:    sweep,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		seed:     0x2545f491,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			o.seed = o.seed*1664525 + 1013904223
			val = float64(o.seed)/float64(math.MaxUint32)*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		t := float64(o.position) / float64(o.rate)
		freq := math.Max(o.freq+o.sweep*t, 0)
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/sustain/release envelope over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: max(total-att-rel, 0),
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s with a linear gain; math.Log2(0) is -Inf so zero is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// tone is an oscillator shaped by an envelope
func tone(freq, sweep float64, d, attack, release time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewSweep(freq, sweep, d, wave, rate), d, attack, release, rate)
}

// NewCue synthesizes cue c at the configured volume, nil for CueNone
func NewCue(c Cue, cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	ms := time.Millisecond

	var s beep.Streamer
	switch c {
	case CueSwing:
		s = tone(0, 0, 90*ms, 5*ms, 60*ms, WaveNoise, rate)
	case CueImpact:
		s = beep.Mix(
			newVolume(tone(140, -600, 120*ms, 2*ms, 90*ms, WaveSquare, rate), 0.6),
			newVolume(tone(0, 0, 60*ms, 1*ms, 40*ms, WaveNoise, rate), 0.4),
		)
	case CueBlocked:
		s = beep.Mix(
			newVolume(tone(1200, 0, 150*ms, 1*ms, 140*ms, WaveSine, rate), 0.5),
			newVolume(tone(1800, 0, 100*ms, 1*ms, 90*ms, WaveSine, rate), 0.3),
		)
	case CueWhoosh:
		s = tone(0, 0, 140*ms, 30*ms, 90*ms, WaveNoise, rate)
	case CueHook:
		s = tone(300, 2400, 180*ms, 5*ms, 60*ms, WaveSaw, rate)
	case CueThrow:
		s = tone(500, 1500, 120*ms, 10*ms, 60*ms, WaveSine, rate)
	case CueCatch:
		s = beep.Seq(
			tone(660, 0, 60*ms, 2*ms, 30*ms, WaveSquare, rate),
			tone(990, 0, 80*ms, 2*ms, 50*ms, WaveSquare, rate),
		)
	case CueArm:
		s = beep.Seq(
			tone(880, 0, 40*ms, 1*ms, 20*ms, WaveSquare, rate),
			beep.Silence(rate.N(40*ms)),
			tone(880, 0, 40*ms, 1*ms, 20*ms, WaveSquare, rate),
		)
	case CueExplosion:
		s = beep.Mix(
			newVolume(tone(0, 0, 450*ms, 2*ms, 400*ms, WaveNoise, rate), 0.6),
			newVolume(tone(90, -120, 450*ms, 2*ms, 380*ms, WaveSine, rate), 0.5),
		)
	case CueDown:
		s = tone(440, -600, 400*ms, 5*ms, 200*ms, WaveSaw, rate)
	case CueRespawn:
		s = beep.Seq(
			tone(523.25, 0, 90*ms, 5*ms, 40*ms, WaveSine, rate),
			tone(659.25, 0, 90*ms, 5*ms, 40*ms, WaveSine, rate),
			tone(783.99, 0, 160*ms, 5*ms, 120*ms, WaveSine, rate),
		)
	case CueWarning:
		s = tone(100, 0, 150*ms, 5*ms, 60*ms, WaveSaw, rate)
	default:
		return nil
	}
	return newVolume(s, cfg.volume(c))
}
