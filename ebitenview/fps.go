package ebitenview

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

const (
	fpsWidth    = 100
	fpsHeight   = 32
	fpsInterval = 0.5 // seconds between refreshes
)

// fpsOverlay shows the current FPS and TPS in the top-right corner. The text
// is re-rendered into a small cached image every half second.
type fpsOverlay struct {
	img     *ebiten.Image
	elapsed float64
}

// update advances the refresh timer by dt seconds.
func (o *fpsOverlay) update(dt float64) {
	o.elapsed += dt
	if o.img != nil && o.elapsed < fpsInterval {
		return
	}
	o.elapsed = 0
	if o.img == nil {
		o.img = ebiten.NewImage(fpsWidth, fpsHeight)
	}
	o.img.Clear()
	o.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(o.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
}

// draw paints the overlay onto screen.
func (o *fpsOverlay) draw(screen *ebiten.Image) {
	if o.img == nil {
		return
	}
	var op ebiten.DrawImageOptions
	op.GeoM.Translate(float64(screen.Bounds().Dx()-fpsWidth-4), 4)
	screen.DrawImage(o.img, &op)
}
