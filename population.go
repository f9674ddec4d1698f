package bloom

import "math/rand/v2"

// speedRange bounds the per-axis speed of a new particle.
var speedRange = Range{0, 1}

// NewPopulation builds count particles scattered uniformly over
// [0, width) x [0, height). Each velocity component is a random sign times a
// magnitude in [0, 1). Every particle starts at minSize. All randomness comes
// from rng.
func NewPopulation(rng *rand.Rand, count int, width, height, minSize, maxSize float64, shape Shape) []Particle {
	if count < 0 {
		count = 0
	}
	xs := Range{0, width}
	ys := Range{0, height}

	particles := make([]Particle, count)
	for i := range particles {
		p := &particles[i]
		p.X = xs.Random(rng)
		p.Y = ys.Random(rng)
		p.DX = randomSign(rng) * speedRange.Random(rng)
		p.DY = randomSign(rng) * speedRange.Random(rng)
		p.Size = minSize
		p.MinSize = minSize
		p.MaxSize = maxSize
		p.Shape = shape
		p.PointerDistance = inf
	}
	return particles
}

// randomSign returns -1 or +1 with equal probability.
func randomSign(rng *rand.Rand) float64 {
	return float64(rng.IntN(2)*2 - 1)
}
