package ebitenview

import (
	"fmt"
	"image"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/bloom"
)

const (
	radiusStep = 10
	countStep  = 100
	sizeStep   = 5
)

// presetKeys select presets in table order.
var presetKeys = []ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3,
	ebiten.KeyDigit4, ebiten.KeyDigit5, ebiten.KeyDigit6,
}

// shortcutKeys are polled every tick.
var shortcutKeys = append([]ebiten.Key{
	ebiten.KeyR, ebiten.KeyS,
	ebiten.KeyEqual, ebiten.KeyNumpadAdd,
	ebiten.KeyMinus, ebiten.KeyNumpadSubtract,
	ebiten.KeyArrowUp, ebiten.KeyArrowDown,
	ebiten.KeyBracketLeft, ebiten.KeyBracketRight,
	ebiten.KeyComma, ebiten.KeyPeriod,
	ebiten.KeyEscape,
}, presetKeys...)

// View hosts an Animator as an ebiten.Game. The field is a sub-image of the
// screen inset by the configured chrome.
type View struct {
	anim    *bloom.Animator
	cfg     RunConfig
	runner  *bloom.Runner
	surface *Surface
	input   pointerTracker
	fps     fpsOverlay

	fieldW, fieldH  int
	screenshotQueue []string
	closed          bool
	liveInput       bool // real input has taken over from the script
}

// NewView wires anim to a new View. The Animator's pointer offset is set so
// window coordinates map onto the field origin, and the Animator is started
// on the first Layout call.
func NewView(anim *bloom.Animator, cfg RunConfig) *View {
	v := &View{
		anim:   anim,
		cfg:    cfg,
		runner: cfg.Script,
	}
	v.surface = NewSurface(nil)
	v.surface.Background = cfg.FieldColor

	ox, oy := v.fieldOrigin()
	anim.SetPointerOffset(bloom.Vec2{X: -float64(ox), Y: -float64(oy)})
	anim.OnTeardown(func() { v.closed = true })

	if v.runner != nil {
		v.runner.Screenshot = v.Screenshot
	}
	return v
}

// fieldOrigin returns the top-left corner of the field in window pixels.
func (v *View) fieldOrigin() (int, int) {
	return v.cfg.ChromeWidth / 2, v.cfg.ChromeHeight / 2
}

// fieldSize returns the field size for a window of the given size. The field
// never collapses below one pixel.
func fieldSize(outsideWidth, outsideHeight, chromeWidth, chromeHeight int) (int, int) {
	return max(outsideWidth-chromeWidth, 1), max(outsideHeight-chromeHeight, 1)
}

func (v *View) fieldRect() fieldRect {
	ox, oy := v.fieldOrigin()
	return fieldRect{x: float64(ox), y: float64(oy), w: float64(v.fieldW), h: float64(v.fieldH)}
}

// Layout implements ebiten.Game. A change in window size starts or resizes
// the Animator.
func (v *View) Layout(outsideWidth, outsideHeight int) (int, int) {
	fw, fh := fieldSize(outsideWidth, outsideHeight, v.cfg.ChromeWidth, v.cfg.ChromeHeight)
	if fw != v.fieldW || fh != v.fieldH || v.anim.State() == bloom.StateUninitialized {
		v.fieldW, v.fieldH = fw, fh
		v.anim.Start(float64(fw), float64(fh))
	}
	return outsideWidth, outsideHeight
}

// Update implements ebiten.Game.
func (v *View) Update() error {
	if v.closed {
		return ebiten.Termination
	}
	for _, k := range shortcutKeys {
		if inpututil.IsKeyJustPressed(k) {
			v.handleKey(k)
		}
	}
	if v.closed {
		return ebiten.Termination
	}

	switch {
	case v.runner != nil && !v.runner.Done():
		v.runner.Step(v.anim)
	case v.runner != nil && v.cfg.ExitAfterScript:
		v.anim.Teardown()
		return ebiten.Termination
	default:
		v.trackPointer(v.input.poll())
	}

	if v.cfg.ShowFPS {
		v.fps.update(1 / float64(ebiten.TPS()))
	}
	return nil
}

// trackPointer feeds one real pointer sample to the Animator. The first call
// after a script drops the scripted pointer, so a cursor resting outside the
// field does not leave particles blooming around a stale position.
func (v *View) trackPointer(s pointerSample) {
	if !v.liveInput {
		v.liveInput = true
		if v.runner != nil {
			v.anim.PointerLeave()
			v.input.reset()
		}
	}
	v.input.apply(v.anim, s, v.fieldRect())
}

// handleKey applies a keyboard shortcut.
func (v *View) handleKey(k ebiten.Key) {
	for i, pk := range presetKeys {
		if k != pk {
			continue
		}
		presets := bloom.Presets()
		if i < len(presets) {
			if err := v.anim.ApplyPreset(presets[i].Name); err != nil {
				_, _ = fmt.Fprintf(os.Stderr, "[bloom] preset: %v\n", err)
			}
		}
		return
	}

	cfg := v.anim.Config()
	switch k {
	case ebiten.KeyR:
		cfg.ShowInfluenceRadius = !cfg.ShowInfluenceRadius
	case ebiten.KeyS:
		if cfg.Shape == bloom.ShapeCircle {
			cfg.Shape = bloom.ShapeSquare
		} else {
			cfg.Shape = bloom.ShapeCircle
		}
	case ebiten.KeyEqual, ebiten.KeyNumpadAdd:
		cfg.InfluenceRadius += radiusStep
	case ebiten.KeyMinus, ebiten.KeyNumpadSubtract:
		cfg.InfluenceRadius -= radiusStep
	case ebiten.KeyArrowUp:
		cfg.ParticleCount += countStep
	case ebiten.KeyArrowDown:
		cfg.ParticleCount -= countStep
	case ebiten.KeyBracketRight:
		cfg.MaxSize += sizeStep
	case ebiten.KeyBracketLeft:
		cfg.MaxSize -= sizeStep
	case ebiten.KeyPeriod:
		cfg.MinSize += sizeStep
	case ebiten.KeyComma:
		cfg.MinSize -= sizeStep
	case ebiten.KeyEscape:
		v.anim.Teardown()
		return
	default:
		return
	}
	v.anim.Configure(cfg.Clamp())
}

// Draw implements ebiten.Game.
func (v *View) Draw(screen *ebiten.Image) {
	if v.cfg.ChromeColor != nil {
		screen.Fill(v.cfg.ChromeColor)
	}

	ox, oy := v.fieldOrigin()
	field := screen.SubImage(image.Rect(ox, oy, ox+v.fieldW, oy+v.fieldH)).(*ebiten.Image)
	v.surface.SetTarget(field)
	v.anim.Step(v.surface)

	if v.cfg.ShowStatus {
		ebitenutil.DebugPrintAt(screen, statusText(v.anim), 8, 8)
	}
	if v.cfg.ShowFPS {
		v.fps.draw(screen)
	}
	v.flushScreenshots(screen)
}

// statusText summarizes the Animator's settings for the chrome.
func statusText(a *bloom.Animator) string {
	cfg := a.Config()
	name := a.PresetName()
	if name == "" {
		name = "custom"
	}
	ring := "off"
	if cfg.ShowInfluenceRadius {
		ring = "on"
	}
	return fmt.Sprintf("%s | %s | radius %.0f (ring %s) | %d particles\n"+
		"1-6 preset  R ring  S shape  +/- radius  Up/Down count  [/] max size  ,/. min size  Esc quit",
		name, cfg.Shape, cfg.InfluenceRadius, ring, cfg.ParticleCount)
}
