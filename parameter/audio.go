package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 50 * time.Millisecond

	// AudioMaxVoices caps concurrent one-shot voices in the mixer
	AudioMaxVoices = 24
)

// Fire Sounds
const (
	FireSoundDuration = 120 * time.Millisecond
	FireSoundAttack   = 2 * time.Millisecond
	FireSoundRelease  = 90 * time.Millisecond
	FireSoundBaseFreq = 220.0 // Hz, raised per sound id
	FireSoundFreqStep = 35.0  // Hz
)

// Explosion Sounds
const (
	ExplosionSoundDuration = 400 * time.Millisecond
	ExplosionSoundAttack   = 3 * time.Millisecond
	ExplosionSoundRelease  = 350 * time.Millisecond
	ExplosionRumbleFreq    = 55.0 // Hz
	ExplosionDurationStep  = 60 * time.Millisecond
)
