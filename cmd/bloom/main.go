// Command bloom opens an interactive particle field. Particles drift and
// bounce around the window; moving the pointer near them makes them grow and
// shift toward the highlight color.
//
// By default the field runs in an ebiten window. Pass -term to run it in the
// terminal instead, where each cell stands for an 8x16 block of the field.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/bloom"
	"github.com/phanxgames/bloom/ebitenview"
	"github.com/phanxgames/bloom/termview"
)

type options struct {
	preset     string
	radius     float64
	showRadius bool
	shape      string
	count      int
	configPath string

	scriptPath      string
	exitAfterScript bool
	screenshotDir   string

	term     bool
	debug    bool
	debugLog string
	showFPS  bool
	width    int
	height   int
}

func main() {
	var o options
	flag.StringVar(&o.preset, "preset", "", "preset name (Fog, Bubblegum, Slime, Bubble Bath, Partially Cloudy, Explosion)")
	flag.Float64Var(&o.radius, "radius", 0, "influence radius, 20-200")
	flag.BoolVar(&o.showRadius, "show-radius", false, "draw the influence ring around the pointer")
	flag.StringVar(&o.shape, "shape", "", "particle shape: circle or square")
	flag.IntVar(&o.count, "count", 0, "particle count, 1-10000")
	flag.StringVar(&o.configPath, "config", "", "JSON config file")
	flag.StringVar(&o.scriptPath, "script", "", "JSON script driving the pointer")
	flag.BoolVar(&o.exitAfterScript, "exit-after-script", false, "quit once the script finishes")
	flag.StringVar(&o.screenshotDir, "screenshots", "screenshots", "directory for script screenshots (window mode)")
	flag.BoolVar(&o.term, "term", false, "run in the terminal")
	flag.BoolVar(&o.debug, "debug", false, "log frame timings and lifecycle events")
	flag.StringVar(&o.debugLog, "debug-log", "", "write debug output to this file instead of stderr")
	flag.BoolVar(&o.showFPS, "fps", false, "show the FPS overlay (window mode)")
	flag.IntVar(&o.width, "width", 1280, "window width")
	flag.IntVar(&o.height, "height", 800, "window height")
	flag.Parse()

	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if err := run(o, set); err != nil {
		log.Fatal(err)
	}
}

// errWindowOnly reports a window-only flag combined with -term.
var errWindowOnly = errors.New("flag needs window mode")

func run(o options, set map[string]bool) error {
	if err := checkMode(o, set); err != nil {
		return err
	}
	anim, err := newAnimator(o, set)
	if err != nil {
		return err
	}

	if o.debug {
		anim.SetDebugMode(true)
		if o.debugLog != "" {
			f, err := os.Create(o.debugLog)
			if err != nil {
				return fmt.Errorf("debug log: %w", err)
			}
			defer f.Close()
			anim.SetDebugOutput(f, bloom.DebugLogInterval)
		}
	}

	runner, err := loadScript(o.scriptPath)
	if err != nil {
		return err
	}
	if o.term {
		return runTerminal(anim, runner, o.exitAfterScript)
	}
	return runWindow(anim, runner, o)
}

// checkMode rejects window-only flags in terminal mode.
func checkMode(o options, set map[string]bool) error {
	if !o.term {
		return nil
	}
	for _, name := range []string{"fps", "screenshots", "width", "height"} {
		if set[name] {
			return fmt.Errorf("-%s with -term: %w", name, errWindowOnly)
		}
	}
	return nil
}

// loadScript reads a script file; an empty path means no script.
func loadScript(path string) (*bloom.Runner, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	runner, err := bloom.LoadScript(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return runner, nil
}

// newAnimator builds the starting config: defaults or the config file, then
// the preset, then any explicitly set flags.
func newAnimator(o options, set map[string]bool) (*bloom.Animator, error) {
	cfg := bloom.DefaultConfig()
	if o.configPath != "" {
		data, err := os.ReadFile(o.configPath)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if cfg, err = bloom.LoadConfig(data); err != nil {
			return nil, fmt.Errorf("%s: %w", o.configPath, err)
		}
	}

	anim := bloom.NewAnimator(cfg)
	if o.preset != "" {
		if err := anim.ApplyPreset(o.preset); err != nil {
			return nil, err
		}
	}

	cfg, err := applyFlags(anim.Config(), o, set)
	if err != nil {
		return nil, err
	}
	anim.Configure(cfg)
	return anim, nil
}

// applyFlags overlays the flags the user set on cfg and validates the result.
func applyFlags(cfg bloom.Config, o options, set map[string]bool) (bloom.Config, error) {
	if set["radius"] {
		cfg.InfluenceRadius = o.radius
	}
	if set["show-radius"] {
		cfg.ShowInfluenceRadius = o.showRadius
	}
	if set["count"] {
		cfg.ParticleCount = o.count
	}
	if set["shape"] {
		shape, err := bloom.ParseShape(o.shape)
		if err != nil {
			return cfg, err
		}
		cfg.Shape = shape
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func runWindow(anim *bloom.Animator, runner *bloom.Runner, o options) error {
	rc := ebitenview.DefaultRunConfig()
	rc.Width, rc.Height = o.width, o.height
	rc.ShowFPS = o.showFPS
	rc.ScreenshotDir = o.screenshotDir
	rc.ExitAfterScript = o.exitAfterScript
	rc.Script = runner
	return ebitenview.Run(anim, rc)
}

func runTerminal(anim *bloom.Animator, runner *bloom.Runner, exitAfterScript bool) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("new screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := termview.DefaultOptions()
	opts.Script = runner
	opts.ExitAfterScript = exitAfterScript
	err = termview.Run(ctx, screen, anim, opts)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
