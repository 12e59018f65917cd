package main

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/fishyman/config"
	"github.com/lixenwraith/fishyman/engine"
	"github.com/lixenwraith/fishyman/parameter"
	"github.com/lixenwraith/fishyman/render"
)

const (
	hudRows  = 3
	helpLine = "space anim  c camera  enter cast  r reel  +/- distance  </> orbit  p pause  q quit"
)

// app owns the terminal frame loop
type app struct {
	screen tcell.Screen
	out    *render.TerminalOutput
	canvas *render.Canvas
	raster *render.Rasterizer

	scene *engine.Scene
	clock *engine.AnimationClock

	// onReload applies a reloaded configuration, nil when not watching
	onReload func(*config.Config)
	reloads  chan *config.Config

	hudStyle tcell.Style
}

func newApp(screen tcell.Screen, scene *engine.Scene, clock *engine.AnimationClock) *app {
	canvas := render.NewCanvas(0, 0)
	return &app{
		screen:   screen,
		out:      render.NewTerminalOutput(screen, hudRows),
		canvas:   canvas,
		raster:   render.NewRasterizer(canvas, scene.Materials()),
		scene:    scene,
		clock:    clock,
		reloads:  make(chan *config.Config, 1),
		hudStyle: tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack),
	}
}

// handleKey applies one key press, false means quit
func (a *app) handleKey(key tcell.Key, r rune) bool {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyEnter:
		a.scene.LaunchDesired()
		log.Printf("cast requested at %.1f", a.scene.DesiredDistance())
	case tcell.KeyLeft:
		a.scene.Dispatch(engine.OrbitCamera{Angle: -parameter.CameraOrbitStep})
	case tcell.KeyRight:
		a.scene.Dispatch(engine.OrbitCamera{Angle: parameter.CameraOrbitStep})
	case tcell.KeyRune:
		switch r {
		case 'q':
			return false
		case ' ':
			a.scene.Dispatch(engine.ToggleAnimation{})
		case 'c':
			a.scene.Dispatch(engine.SwitchCameraMode{})
		case 'r':
			a.scene.Dispatch(engine.ReturnToIdle{})
		case '+', '=':
			a.scene.Dispatch(engine.AdjustDesiredDistance{Delta: parameter.DistanceStep})
		case '-', '_':
			a.scene.Dispatch(engine.AdjustDesiredDistance{Delta: -parameter.DistanceStep})
		case '<', ',':
			a.scene.Dispatch(engine.OrbitCamera{Angle: -parameter.CameraOrbitStep})
		case '>', '.':
			a.scene.Dispatch(engine.OrbitCamera{Angle: parameter.CameraOrbitStep})
		case 'p':
			paused := a.clock.Toggle()
			log.Printf("clock paused=%v", paused)
		}
	}
	return true
}

// handleEvent routes one terminal event, false means quit
func (a *app) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ev.Key(), ev.Rune())
	case *tcell.EventResize:
		a.screen.Sync()
	}
	return true
}

// frame advances the clock and scene by one step and draws it
func (a *app) frame() {
	now, dt := a.clock.Tick()
	a.scene.Update(now, dt)
	a.draw()
}

func (a *app) draw() {
	w, h := a.out.CanvasSize()
	if w > 0 && h > 0 {
		a.canvas.Resize(w, h)
		a.scene.Rasterize(a.raster)
		a.out.Blit(a.canvas)
	}

	a.out.ClearHUD(a.hudStyle)
	for i, line := range a.hudLines() {
		a.out.Text(0, i, line, a.hudStyle)
	}
	a.screen.Show()
}

func (a *app) hudLines() []string {
	lines := a.scene.Status().Lines()
	if a.clock.IsPaused() {
		lines[0] += "  [paused]"
	}
	return append(lines, helpLine)
}

// queueReload hands a reloaded config to the frame loop, dropping it if one is pending
func (a *app) queueReload(cfg *config.Config) {
	select {
	case a.reloads <- cfg:
	default:
	}
}

func (a *app) run() {
	ticker := time.NewTicker(parameter.FrameUpdateInterval)
	defer ticker.Stop()

	inputCh := startInputReader(a.screen)

	for {
		select {
		case <-ticker.C:
		drainInput:
			for {
				select {
				case ev, ok := <-inputCh:
					if !ok {
						return
					}
					if !a.handleEvent(ev) {
						return
					}
				default:
					break drainInput
				}
			}

			select {
			case cfg := <-a.reloads:
				if a.onReload != nil {
					a.onReload(cfg)
				}
			default:
			}

			a.frame()
		}
	}
}

// startInputReader polls the screen on its own goroutine, the channel closes with the screen
func startInputReader(screen tcell.Screen) chan tcell.Event {
	ch := make(chan tcell.Event, parameter.InputQueueSize)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				screen.Fini()
				fmt.Fprintf(os.Stderr, "\r\n\x1b[31mEVENT POLLER CRASHED: %v\x1b[0m\r\n", r)
				fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
				os.Exit(1)
			}
		}()

		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(ch)
				return
			}
			select {
			case ch <- ev:
			default:
			}
		}
	}()
	return ch
}
