// Command fishy-snapshot runs the scene headless on a fixed clock and writes the last frame as WebP
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
	"github.com/ttacon/chalk"

	"github.com/lixenwraith/fishyman/config"
	"github.com/lixenwraith/fishyman/engine"
	"github.com/lixenwraith/fishyman/render"
)

type options struct {
	configPath string
	seconds    float64
	fps        float64
	cast       float64 // distance, zero skips the cast
	castAt     float64
	out        string
	scale      int
	width      int
	height     int
	hud        bool
}

type summary struct {
	Frames   int
	Casts    int
	Splashes int
	Catches  []int
	Status   engine.Status
	Path     string
}

func main() {
	var opts options
	flag.StringVar(&opts.configPath, "config", "", "Path to a TOML config file")
	flag.Float64Var(&opts.seconds, "seconds", 6, "Simulated seconds before the snapshot")
	flag.Float64Var(&opts.fps, "fps", 60, "Simulation steps per second")
	flag.Float64Var(&opts.cast, "cast", 0, "Cast distance, 0 disables the cast")
	flag.Float64Var(&opts.castAt, "cast-at", 1, "Simulated second at which to cast")
	flag.StringVar(&opts.out, "out", "fishyman.webp", "Output WebP path")
	flag.IntVar(&opts.scale, "scale", 4, "Integer upscale factor")
	flag.IntVar(&opts.width, "width", 160, "Canvas width in pixels")
	flag.IntVar(&opts.height, "height", 100, "Canvas height in pixels")
	flag.BoolVar(&opts.hud, "hud", true, "Overlay the status text")
	flag.Parse()

	sum, err := run(opts)
	if err != nil {
		fmt.Fprint(os.Stderr, chalk.Red, "fishy-snapshot: ", err, chalk.Reset, "\n")
		os.Exit(1)
	}
	printSummary(os.Stdout, sum)
}

// run steps a scene on a mock clock and writes the final frame
func run(opts options) (summary, error) {
	var sum summary
	if opts.fps <= 0 || opts.seconds < 0 {
		return sum, errors.Errorf("need fps > 0 and seconds >= 0, got fps=%g seconds=%g", opts.fps, opts.seconds)
	}
	if opts.width <= 0 || opts.height <= 0 {
		return sum, errors.Errorf("canvas size must be positive, got %dx%d", opts.width, opts.height)
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return sum, err
	}

	scene := engine.NewScene(cfg.Scene(), cfg.Rand())
	scene.AddListener(engine.ListenerFuncs{
		Launch: func(float64, float64) { sum.Casts++ },
		Splash: func(mgl64.Vec3) { sum.Splashes++ },
		Catch:  func(id int, _ mgl64.Vec3) { sum.Catches = append(sum.Catches, id) },
	})

	mock := engine.NewMockTimeProvider(time.Unix(0, 0))
	// Every step is exactly 1/fps, the cap never applies
	clock := engine.NewAnimationClock(mock, 0)

	step := 1 / opts.fps
	frames := int(opts.seconds * opts.fps)
	castFrame := -1
	if opts.cast > 0 {
		castFrame = int(opts.castAt * opts.fps)
	}

	for i := 0; i < frames; i++ {
		if i == castFrame {
			scene.Dispatch(engine.LaunchProjectile{Distance: opts.cast, Angle: cfg.Projectile.LaunchAngle})
		}
		mock.AdvanceSeconds(step)
		now, dt := clock.Tick()
		scene.Update(now, dt)
	}
	sum.Frames = frames
	sum.Status = scene.Status()

	canvas := render.NewCanvas(opts.width, opts.height)
	scene.Rasterize(render.NewRasterizer(canvas, scene.Materials()))

	var hud []string
	if opts.hud {
		hud = sum.Status.Lines()
	}
	img := render.Snapshot(canvas, render.SnapshotOptions{Scale: opts.scale, HUD: hud})
	if err := render.WriteWebP(opts.out, img); err != nil {
		return sum, err
	}
	sum.Path = opts.out
	return sum, nil
}

func printSummary(w io.Writer, sum summary) {
	st := sum.Status
	fmt.Fprint(w, chalk.Green, "wrote ", sum.Path, chalk.Reset, "\n")
	fmt.Fprintf(w, "frames %d  t %.2fs  state %s  camera %s\n", sum.Frames, st.Time, st.State, st.CameraMode)
	fmt.Fprintf(w, "casts %d  splashes %d\n", sum.Casts, sum.Splashes)
	if len(sum.Catches) > 0 {
		fmt.Fprint(w, chalk.Yellow, fmt.Sprintf("caught %d/%d fish %v", len(sum.Catches), st.Population, sum.Catches), chalk.Reset, "\n")
	} else {
		fmt.Fprintf(w, "caught 0/%d\n", st.Population)
	}
}
