// ordnance-sandbox is a terminal firing range for the ballistics engine
//
// Keys: arrows move the cursor, f sets the firing tile, space/enter fires,
// 1-9 select a projectile type, v toggles the sound variant, b fires a barrage,
// p pauses, . steps while paused, +/- change game speed, s/l save and restore
// the projectile pool, m mutes, r resets, q/esc quits
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"sync"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/ordnance/audio"
	"github.com/lixenwraith/ordnance/catalog"
)

type options struct {
	catalogPath string
	seed        uint64
	speed       int
	width       int
	height      int
	mute        bool
}

func main() {
	var opts options
	flag.StringVar(&opts.catalogPath, "catalog", "", "Projectile catalog TOML (default: "+catalog.DefaultPath+", then embedded)")
	flag.Uint64Var(&opts.seed, "seed", 1, "Seed for map layout and visual jitter")
	flag.IntVar(&opts.speed, "speed", 0, "Game speed percent; 0 keeps the catalog value")
	flag.IntVar(&opts.width, "width", 64, "Map width in tiles")
	flag.IntVar(&opts.height, "height", 32, "Map height in tiles")
	flag.BoolVar(&opts.mute, "mute", false, "Start without audio")
	debug := flag.Bool("debug", false, "Write logs to "+logDir+"/"+logFileName)
	flag.Parse()

	if f := setupLogging(*debug); f != nil {
		defer f.Close()
	}

	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "ordnance-sandbox: %v\n", err)
		os.Exit(1)
	}
}

func run(opts options) error {
	cfg, err := catalog.LoadAuto(opts.catalogPath)
	if err != nil {
		return err
	}
	if opts.speed != 0 {
		cfg.GameSpeed = opts.speed
	}

	grid, err := buildScenario(cfg, opts.width, opts.height, opts.seed)
	if err != nil {
		return err
	}

	player := audio.NewPlayer()
	defer player.Close()
	if opts.mute {
		player.SetMuted(true)
	} else if err := player.Init(); err != nil {
		// Audio is optional
		log.Printf("audio init failed: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	fini := sync.OnceFunc(screen.Fini)
	defer fini()

	sb := newSandbox(screen, cfg, grid, player, opts.seed)
	events := make(chan tcell.Event, 16)

	g, ctx := errgroup.WithContext(context.Background())
	g.Go(func() error {
		// PollEvent returns nil once the screen is finalized
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return nil
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return nil
			}
		}
	})
	g.Go(func() error {
		defer recoverCrash(fini)
		defer fini()
		return sb.loop(ctx, events)
	})

	return g.Wait()
}
