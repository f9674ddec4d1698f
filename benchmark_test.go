package bloom

import (
	"math/rand/v2"
	"testing"
)

// nopSurface discards all drawing so benchmarks measure the simulation only.
type nopSurface struct{}

func (nopSurface) Clear(float64, float64) {}
func (nopSurface) FillShape(Shape, float64, float64, float64, RGB) {}
func (nopSurface) StrokeCircle(float64, float64, float64, RGB) {}

// setupBenchAnimator creates a running Animator with n particles on a
// 1280x720 field.
func setupBenchAnimator(n int) *Animator {
	cfg := DefaultConfig()
	cfg.ParticleCount = n
	cfg.ShowInfluenceRadius = true
	a := NewAnimator(cfg)
	a.SetRand(rand.New(rand.NewPCG(1, 2)))
	a.Start(1280, 720)
	return a
}

// --- Frame Benchmarks ---

func BenchmarkStep_1000Particles_NoPointer(b *testing.B) {
	a := setupBenchAnimator(1000)
	var s nopSurface

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		a.Step(s)
	}
}

func BenchmarkStep_10000Particles_Hover(b *testing.B) {
	a := setupBenchAnimator(10000)
	var s nopSurface

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		// Sweep the pointer so particles keep growing and decaying.
		a.PointerMove(float64(i%1280), 360)
		a.Step(s)
	}
}

func BenchmarkStep_Recorder(b *testing.B) {
	a := setupBenchAnimator(1000)
	var rec Recorder
	a.PointerMove(640, 360)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		rec.Reset()
		a.Step(&rec)
	}
}

// --- Population Benchmarks ---

func BenchmarkNewPopulation_10000(b *testing.B) {
	rng := rand.New(rand.NewPCG(1, 2))

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = NewPopulation(rng, 10000, 1280, 720, 0, 35, ShapeCircle)
	}
}

func BenchmarkColorLerp(b *testing.B) {
	base, highlight := RGB{23, 32, 56}, RGB{164, 221, 219}
	var sink RGB
	for i := 0; i < b.N; i++ {
		sink = base.Lerp(highlight, float64(i%100)/100)
	}
	_ = sink
}
