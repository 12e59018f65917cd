package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/fishyman/audio"
	"github.com/lixenwraith/fishyman/config"
	"github.com/lixenwraith/fishyman/engine"
	"github.com/lixenwraith/fishyman/parameter"
)

var (
	configFlag = flag.String("config", "", "Path to a TOML config file, watched for changes")
	debugFlag  = flag.Bool("debug", false, "Write a debug log")
	colorFlag  = flag.String("color", "auto", "Color mode: auto, truecolor, 256")
)

func main() {
	var screen tcell.Screen

	// Panic Recovery: restore the terminal before printing the trace
	defer func() {
		if r := recover(); r != nil {
			if screen != nil {
				screen.Fini()
			}
			fmt.Fprintf(os.Stderr, "\n\x1b[31mFISHYMAN CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if logFile := setupLogging(*debugFlag || cfg.Debug.Enabled, cfg.Debug.LogDir); logFile != nil {
		defer logFile.Close()
	}
	log.Printf("fishyman starting, seed=%d fish=%d", cfg.Scene.Seed, cfg.Scene.FishCount)

	rng := cfg.Rand()
	scene := engine.NewScene(cfg.Scene(), rng)
	clock := engine.NewAnimationClock(engine.NewMonotonicTimeProvider(), parameter.MaxFrameDelta)

	player := audio.NewPlayer(cfg.AudioOptions(), rand.New(rand.NewSource(rng.Int63())))
	if err := player.Start(); err != nil {
		// Non-fatal, the scene runs without sound
		log.Printf("Audio initialization failed: %v", err)
	}
	defer player.Close()

	scene.AddListener(player)
	scene.AddListener(engine.ListenerFuncs{
		Launch: func(distance, angle float64) {
			log.Printf("launch distance=%.2f angle=%.3f", distance, angle)
		},
		Catch: func(id int, at mgl64.Vec3) {
			log.Printf("catch fish=%d at (%.2f, %.2f)", id, at.X(), at.Y())
		},
	})

	applyColorMode(*colorFlag)
	screen, err = tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	a := newApp(screen, scene, clock)

	if *configFlag != "" {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		a.onReload = func(next *config.Config) {
			scene.Retune(next.Scene())
			player.SetVolume(next.Audio.Volume)
			log.Printf("config reloaded from %s", *configFlag)
		}
		err := config.Watch(ctx, *configFlag, func(next *config.Config, err error) {
			if err != nil {
				log.Printf("config reload rejected: %v", err)
				return
			}
			a.queueReload(next)
		})
		if err != nil {
			log.Printf("config watch disabled: %v", err)
		}
	}

	a.run()
}

// applyColorMode steers tcell's color detection through its environment switches
func applyColorMode(mode string) {
	switch mode {
	case "truecolor", "true", "24bit":
		os.Setenv("COLORTERM", "truecolor")
	case "256":
		os.Setenv("TCELL_TRUECOLOR", "disable")
	}
}
