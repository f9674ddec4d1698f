package ebitenview

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/phanxgames/bloom"
)

// Surface paints Animator frames into an ebiten image. Field coordinates are
// relative to the target's bounds, so a sub-image of the screen can be used
// directly: ebiten sub-images keep their parent's coordinate space.
type Surface struct {
	dst    *ebiten.Image
	ox, oy float32

	// Background fills the field on Clear. Nil clears to transparent.
	Background color.Color
	// RingWidth is the stroke width of the influence ring.
	RingWidth float32
	// Antialias smooths shape edges.
	Antialias bool
}

// NewSurface returns a Surface drawing into dst.
func NewSurface(dst *ebiten.Image) *Surface {
	s := &Surface{RingWidth: 1, Antialias: true}
	s.SetTarget(dst)
	return s
}

// SetTarget points the Surface at a new image, e.g. after the window was
// resized and the field sub-image changed.
func (s *Surface) SetTarget(dst *ebiten.Image) {
	s.dst = dst
	if dst == nil {
		s.ox, s.oy = 0, 0
		return
	}
	origin := dst.Bounds().Min
	s.ox, s.oy = float32(origin.X), float32(origin.Y)
}

// Clear implements bloom.Surface.
func (s *Surface) Clear(_, _ float64) {
	if s.Background == nil {
		s.dst.Clear()
		return
	}
	s.dst.Fill(s.Background)
}

// FillShape implements bloom.Surface.
func (s *Surface) FillShape(shape bloom.Shape, x, y, size float64, c bloom.RGB) {
	cx, cy, r := s.ox+float32(x), s.oy+float32(y), float32(size)
	clr := c.ToRGBA()
	switch shape {
	case bloom.ShapeSquare:
		vector.DrawFilledRect(s.dst, cx-r, cy-r, 2*r, 2*r, clr, s.Antialias)
	default:
		vector.DrawFilledCircle(s.dst, cx, cy, r, clr, s.Antialias)
	}
}

// StrokeCircle implements bloom.Surface.
func (s *Surface) StrokeCircle(x, y, radius float64, c bloom.RGB) {
	vector.StrokeCircle(s.dst, s.ox+float32(x), s.oy+float32(y), float32(radius), s.RingWidth, c.ToRGBA(), s.Antialias)
}
