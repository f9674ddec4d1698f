package bloom

import "math"

const (
	// growthFactor scales hover growth: a hovered particle grows by
	// growthFactor/distance per frame.
	growthFactor = 70.0
	// decayStep is the per-frame shrink of a particle outside the radius.
	decayStep = 0.5
	// minPointerDistance floors the growth divisor for a pointer sitting
	// exactly on a particle center.
	minPointerDistance = 1e-3
)

var inf = math.Inf(1)

// Particle is one drifting dot in the field. The Animator owns particles in a
// contiguous slice; a particle has no identity beyond its slot in one
// generation.
//
// Size always lies within [MinSize, MaxSize] once UpdateSizeBounds or Grow has
// run. MousedOver, PointerDistance and Color are derived again every frame.
type Particle struct {
	X, Y   float64
	DX, DY float64

	Size    float64
	MinSize float64
	MaxSize float64
	Shape   Shape

	MousedOver      bool
	PointerDistance float64
	Color           RGB
}

// Frame is the read-only snapshot shared by every particle during one step.
type Frame struct {
	Width, Height float64
	Pointer       Vec2
	HasPointer    bool
	Radius        float64
	Base          RGB
	Highlight     RGB
}

// CheckPointerProximity records the distance to the pointer and whether the
// particle lies strictly inside the influence radius. Without a pointer the
// distance is +Inf and the particle is not hovered.
func (p *Particle) CheckPointerProximity(pointer Vec2, hasPointer bool, radius float64) {
	if !hasPointer {
		p.MousedOver = false
		p.PointerDistance = inf
		return
	}
	p.PointerDistance = math.Hypot(pointer.X-p.X, pointer.Y-p.Y)
	p.MousedOver = p.PointerDistance < radius
}

// Grow moves Size toward MaxSize while hovered, at a rate inversely
// proportional to the pointer distance, and decays it linearly toward MinSize
// otherwise.
func (p *Particle) Grow() {
	switch {
	case p.MousedOver && p.Size < p.MaxSize:
		d := max(p.PointerDistance, minPointerDistance)
		p.Size += min(p.MaxSize-p.Size, growthFactor/d)
	case !p.MousedOver && p.Size > p.MinSize:
		p.Size = max(p.MinSize, p.Size-decayStep)
	}
}

// UpdateColor interpolates between base and highlight by the particle's
// position within its size bounds. Degenerate bounds yield base.
func (p *Particle) UpdateColor(base, highlight RGB) {
	t := 0.0
	if span := p.MaxSize - p.MinSize; span > 0 {
		t = (p.Size - p.MinSize) / span
	}
	p.Color = base.Lerp(highlight, t)
}

// Move advances the particle by its velocity and flips the sign of any axis
// whose new coordinate lies outside [0, width] or [0, height]. The particle
// may sit up to one velocity step outside the field before heading back.
func (p *Particle) Move(width, height float64) {
	p.X += p.DX
	p.Y += p.DY
	if p.X < 0 || p.X > width {
		p.DX = -p.DX
	}
	if p.Y < 0 || p.Y > height {
		p.DY = -p.DY
	}
}

// UpdateSizeBounds replaces the size bounds and clamps Size into them.
func (p *Particle) UpdateSizeBounds(minSize, maxSize float64) {
	p.MinSize = minSize
	p.MaxSize = maxSize
	if p.Size > maxSize {
		p.Size = maxSize
	}
	if p.Size < minSize {
		p.Size = minSize
	}
}

// Draw paints the particle if it is hovered or has a positive size and
// reports whether anything was painted.
func (p *Particle) Draw(s Surface) bool {
	if !p.MousedOver && p.Size <= 0 {
		return false
	}
	s.FillShape(p.Shape, p.X, p.Y, p.Size, p.Color)
	return true
}

// Update runs one frame for the particle: proximity, grow, recolor, move,
// draw. Color is taken from the size after growth and before movement.
func (p *Particle) Update(s Surface, f *Frame) bool {
	p.CheckPointerProximity(f.Pointer, f.HasPointer, f.Radius)
	p.Grow()
	p.UpdateColor(f.Base, f.Highlight)
	p.Move(f.Width, f.Height)
	return p.Draw(s)
}
