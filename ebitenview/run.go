package ebitenview

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/bloom"
)

// RunConfig holds window and host settings for Run.
type RunConfig struct {
	Title         string
	Width, Height int

	// ChromeWidth and ChromeHeight are reserved around the field. The field
	// is centered, so it starts at (ChromeWidth/2, ChromeHeight/2).
	ChromeWidth, ChromeHeight int

	// TPS is the tick rate. Zero keeps ebiten's default of 60.
	TPS int

	// ShowFPS draws the FPS/TPS overlay in the top-right corner.
	ShowFPS bool
	// ShowStatus prints the active preset and controls in the chrome.
	ShowStatus bool

	// ChromeColor fills the area around the field.
	ChromeColor color.Color
	// FieldColor fills the field on every frame. Nil clears to transparent.
	FieldColor color.Color

	// ScreenshotDir receives PNGs from screenshot script steps.
	ScreenshotDir string
	// Script, if set, drives the pointer instead of real input until it is
	// done.
	Script *bloom.Runner
	// ExitAfterScript ends the run once Script completes.
	ExitAfterScript bool
}

// DefaultRunConfig returns a 1280x800 resizable window with 100x150 chrome.
func DefaultRunConfig() RunConfig {
	return RunConfig{
		Title:         "bloom",
		Width:         1280,
		Height:        800,
		ChromeWidth:   100,
		ChromeHeight:  150,
		TPS:           ebiten.DefaultTPS,
		ShowStatus:    true,
		ChromeColor:   color.RGBA{0x0b, 0x0e, 0x17, 0xff},
		FieldColor:    color.Black,
		ScreenshotDir: "screenshots",
	}
}

// Run opens a window and animates anim until the window is closed, Escape is
// pressed or the script finishes with ExitAfterScript set. The Animator is
// torn down on return.
func Run(anim *bloom.Animator, cfg RunConfig) error {
	v := NewView(anim, cfg)
	defer anim.Teardown()

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if cfg.TPS > 0 {
		ebiten.SetTPS(cfg.TPS)
	}
	if err := ebiten.RunGame(v); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
