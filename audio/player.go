package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/ordnance/event"
	"github.com/lixenwraith/ordnance/parameter"
)

const sampleRate = beep.SampleRate(parameter.AudioSampleRate)

// Player turns sound and explosion effects into one-shot voices on a shared mixer
// Without a speaker the mixer still collects voices so tests can observe them
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
}

// NewPlayer creates an unattached player
func NewPlayer() *Player {
	return &Player{mixer: &beep.Mixer{}}
}

// Init attaches the mixer to the audio device
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Close silences all voices and detaches from the device
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		p.mixer.Clear()
		return
	}

	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Clear()
	p.initialized = false
}

// SetMuted drops new voices while muted
func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	p.muted = muted
	p.mu.Unlock()
}

// Muted reports the mute state
func (p *Player) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

// Voices returns the number of voices still playing or queued
func (p *Player) Voices() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		speaker.Lock()
		defer speaker.Unlock()
	}
	return p.mixer.Len()
}

// Handle plays one effect, returning true if a voice was queued
// Effects other than sound and explosion requests are ignored
func (p *Player) Handle(e event.Effect) bool {
	var voice beep.Streamer
	switch e.Type {
	case event.EffectSound:
		if e.SoundID < 0 {
			return false
		}
		voice = FireSound(e.SoundID, float64(e.Volume)/100, sampleRate)
	case event.EffectExplosion:
		voice = ExplosionSound(e.ExplosionID, 1.0, sampleRate)
	default:
		return false
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.muted {
		return false
	}
	if p.initialized {
		speaker.Lock()
		defer speaker.Unlock()
	}
	if p.mixer.Len() >= parameter.AudioMaxVoices {
		return false
	}
	p.mixer.Add(voice)
	return true
}

// HandleAll plays a drained batch and returns the number of voices queued
func (p *Player) HandleAll(effects []event.Effect) int {
	n := 0
	for i := range effects {
		if p.Handle(effects[i]) {
			n++
		}
	}
	return n
}
