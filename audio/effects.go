package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/ordnance/parameter"
	"github.com/lixenwraith/ordnance/vmath"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	rng      *vmath.FastRand
}

// NewOscillator creates an oscillator; noise is seeded so voices are reproducible
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate, seed uint64) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rng:      vmath.NewFastRand(seed),
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
			val = float64(o.rng.Intn(2001)-1000) / 1000
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

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/sustain/release envelope
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := max(total-att-rel, 0)

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
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
			remaining := e.totalSamples - e.position
			vol = max(float64(remaining)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps a stream with linear gain; log2(0) is -Inf so zero is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// FireSound synthesizes the firing voice for a sound id; ids pick pitch and wave
func FireSound(soundID int, volume float64, rate beep.SampleRate) beep.Streamer {
	waves := [...]WaveType{WaveSquare, WaveSaw, WaveNoise}
	wave := waves[soundID%len(waves)]
	freq := parameter.FireSoundBaseFreq + parameter.FireSoundFreqStep*float64(soundID)

	osc := NewOscillator(freq, parameter.FireSoundDuration, wave, rate, uint64(soundID)+1)
	shaped := NewEnvelope(osc, parameter.FireSoundDuration, parameter.FireSoundAttack, parameter.FireSoundRelease, rate)
	return newVolume(shaped, volume)
}

// ExplosionSound synthesizes a noise burst over a low rumble; larger ids ring longer
func ExplosionSound(explosionID int, volume float64, rate beep.SampleRate) beep.Streamer {
	duration := parameter.ExplosionSoundDuration + time.Duration(explosionID)*parameter.ExplosionDurationStep
	release := parameter.ExplosionSoundRelease + time.Duration(explosionID)*parameter.ExplosionDurationStep

	noise := NewOscillator(0, duration, WaveNoise, rate, uint64(explosionID)+101)
	noiseShaped := NewEnvelope(noise, duration, parameter.ExplosionSoundAttack, release, rate)

	rumble := NewOscillator(parameter.ExplosionRumbleFreq, duration, WaveSine, rate, 0)
	rumbleShaped := NewEnvelope(rumble, duration, parameter.ExplosionSoundAttack, release, rate)

	mixed := beep.Mix(
		newVolume(noiseShaped, 0.6),
		newVolume(rumbleShaped, 0.4),
	)
	return newVolume(mixed, volume)
}
