package system

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/lixenwraith/ordnance/core"
	"github.com/lixenwraith/ordnance/engine"
	"github.com/lixenwraith/ordnance/engine/mocks"
	"github.com/lixenwraith/ordnance/event"
	"github.com/lixenwraith/ordnance/parameter"
	"github.com/lixenwraith/ordnance/world"
)

// TestSpawnValidation verifies rejected requests leave the pool untouched
func TestSpawnValidation(t *testing.T) {
	b, _ := newTestBallistics(16, 16)

	if _, err := b.Spawn(core.SideAtreides, 1, 1, 5, 5, 99, 0); !errors.Is(err, ErrNoWeapon) {
		t.Errorf("unknown type err = %v, want ErrNoWeapon", err)
	}
	if _, err := b.Spawn(core.SideAtreides, 1, 1, 16, 5, typeCannon, 0); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("off-map target err = %v, want ErrOutOfBounds", err)
	}
	if _, err := b.Spawn(core.SideAtreides, -1, 1, 5, 5, typeCannon, 0); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("off-map source err = %v, want ErrOutOfBounds", err)
	}
	if b.Pool().Active() != 0 || b.Stats().Rejected != 3 {
		t.Errorf("active %d rejected %d, want 0 and 3", b.Pool().Active(), b.Stats().Rejected)
	}
}

// TestSpawnPoolFull verifies the 151st projectile is dropped with ErrPoolFull
func TestSpawnPoolFull(t *testing.T) {
	b, _ := newTestBallistics(16, 16)
	for i := 0; i < parameter.ProjectilePoolCapacity; i++ {
		mustSpawn(t, b, core.SideAtreides, 0, 0, 15, 15, typeCannon)
	}

	var buf bytes.Buffer
	prev := log.Writer()
	log.SetOutput(&buf)
	defer log.SetOutput(prev)

	id, err := b.Spawn(core.SideAtreides, 0, 0, 15, 15, typeCannon, 0)
	if !errors.Is(err, ErrPoolFull) || id != engine.InvalidInstance {
		t.Fatalf("Spawn past capacity = %d, %v", id, err)
	}
	if !strings.Contains(buf.String(), "pool full") {
		t.Errorf("pool exhaustion not logged: %q", buf.String())
	}
	if b.Stats().Spawned != parameter.ProjectilePoolCapacity {
		t.Errorf("spawned = %d", b.Stats().Spawned)
	}

	// Landing frees slots for the next request
	runUntilIdle(t, b)
	if _, err := b.Spawn(core.SideAtreides, 0, 0, 15, 15, typeCannon, 0); err != nil {
		t.Errorf("Spawn after drain: %v", err)
	}
}

// TestSpawnSoundVariant verifies the variant picks the alternate fire sound
func TestSpawnSoundVariant(t *testing.T) {
	b, _ := newTestBallistics(16, 16)
	if _, err := b.Spawn(core.SideAtreides, 1, 1, 5, 5, typeBullet, 1); err != nil {
		t.Fatalf("Spawn: %v", err)
	}
	if _, err := b.Spawn(core.SideAtreides, 1, 1, 5, 5, typeRocket, 0); err != nil {
		t.Fatalf("Spawn: %v", err)
	}

	effects := b.Effects().Drain()
	if countEffects(effects, event.EffectSound) != 1 {
		t.Fatalf("sound effects = %d, want 1 (rocket is silent)", countEffects(effects, event.EffectSound))
	}
	e, _ := firstEffect(effects, event.EffectSound)
	if e.SoundID != 1 {
		t.Errorf("sound id = %d, want alternate 1", e.SoundID)
	}
	if e.Volume != parameter.SoundVolumeFar {
		t.Errorf("volume = %d, want far without a viewport", e.Volume)
	}
	if countEffects(effects, event.EffectHaptic) != 0 {
		t.Error("haptic without a viewport")
	}
}

// TestSpawnViewportEffects verifies sound volume and haptics follow viewport visibility
func TestSpawnViewportEffects(t *testing.T) {
	ctrl := gomock.NewController(t)
	vp := mocks.NewMockViewport(ctrl)

	src, dst := core.Tile{X: 1, Y: 1}, core.Tile{X: 9, Y: 9}
	vp.EXPECT().Contains(src).Return(true)
	vp.EXPECT().Contains(dst).Return(true)

	b := NewBallistics(BallisticsConfig{
		World:    world.NewGrid(16, 16),
		Catalog:  engine.NewCatalog(testTypes(), 100),
		Viewport: vp,
	})
	mustSpawn(t, b, core.SideAtreides, src.X, src.Y, dst.X, dst.Y, typeCannon)

	effects := b.Effects().Drain()
	sound, ok := firstEffect(effects, event.EffectSound)
	if !ok || sound.Volume != parameter.SoundVolumeNear || sound.SoundID != 2 {
		t.Errorf("sound = %+v, want near volume id 2", sound)
	}
	haptic, ok := firstEffect(effects, event.EffectHaptic)
	if !ok || haptic.Tile != dst {
		t.Errorf("haptic = %+v, want target tile", haptic)
	}
}

// TestSpawnOffscreenTarget verifies no haptic when the target is off screen
func TestSpawnOffscreenTarget(t *testing.T) {
	ctrl := gomock.NewController(t)
	vp := mocks.NewMockViewport(ctrl)
	vp.EXPECT().Contains(gomock.Any()).Return(false).Times(2)

	b := NewBallistics(BallisticsConfig{
		World:    world.NewGrid(16, 16),
		Catalog:  engine.NewCatalog(testTypes(), 100),
		Viewport: vp,
	})
	mustSpawn(t, b, core.SideAtreides, 1, 1, 9, 9, typeCannon)

	effects := b.Effects().Drain()
	if countEffects(effects, event.EffectHaptic) != 0 {
		t.Error("haptic for an off-screen target")
	}
	if e, _ := firstEffect(effects, event.EffectSound); e.Volume != parameter.SoundVolumeFar {
		t.Errorf("volume = %d, want far", e.Volume)
	}
}

// TestEffectsCarryFrame verifies effects are stamped with the tick that produced them
func TestEffectsCarryFrame(t *testing.T) {
	b, _ := newTestBallistics(16, 16)
	mustSpawn(t, b, core.SideAtreides, 1, 1, 3, 1, typeCannon)
	b.Effects().Drain()

	for b.Pool().Active() > 0 {
		b.Update()
	}
	e, ok := firstEffect(b.Effects().Drain(), event.EffectExplosion)
	if !ok || e.Frame != b.Frame() {
		t.Errorf("explosion frame = %d, want %d", e.Frame, b.Frame())
	}
}

// TestReset verifies a reset clears projectiles, effects and counters
func TestReset(t *testing.T) {
	b, _ := newTestBallistics(16, 16)
	mustSpawn(t, b, core.SideAtreides, 1, 1, 12, 12, typeCannon)
	b.Update()

	b.Reset()
	if b.Pool().Active() != 0 || b.Effects().Len() != 0 || b.Frame() != 0 || b.Stats() != (Stats{}) {
		t.Errorf("state after reset: active %d effects %d frame %d stats %+v",
			b.Pool().Active(), b.Effects().Len(), b.Frame(), b.Stats())
	}
}
