package parameter

import "time"

// Overlay lifetimes in simulation frames
const (
	ExplosionMarkFrames   = 6
	SplashMarkFrames      = 4
	EnvironmentMarkFrames = 3
	WreckMarkFrames       = 12
)

// ArrowGlyphs draws facing in eight steps, clockwise from north
var ArrowGlyphs = [8]rune{'↑', '↗', '→', '↘', '↓', '↙', '←', '↖'}

// Sandbox pacing
const (
	SandboxFrameInterval = time.Second / 30
	SandboxBarrageSize   = 20
	SandboxSpeedStep     = 25
)
