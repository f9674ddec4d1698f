package bloom

import (
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"time"
)

// State is the Animator lifecycle state.
type State uint8

const (
	StateUninitialized State = iota // created, Start not called yet
	StateRunning                    // producing frames
	StateResizing                   // applying a surface resize
	StateReconfiguring              // applying a config or preset change
	StateTornDown                   // stopped for good
)

var stateNames = [...]string{"uninitialized", "running", "resizing", "reconfiguring", "torn-down"}

// String returns the lower-case state name.
func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("state(%d)", uint8(s))
}

// Animator owns the particle population, the pointer and the current Config,
// and runs one simulation step per call to Step. It is not safe for
// concurrent use: hosts call every method from their render loop, so a step
// never observes a half-applied change.
type Animator struct {
	cfg       Config
	particles []Particle
	width     float64
	height    float64

	pointer       Vec2
	hasPointer    bool
	pointerOffset Vec2

	rng        *rand.Rand
	state      State
	generation int
	frames     uint64
	preset     string

	onTeardown []func()

	debug      bool
	debugOut   io.Writer
	debugEvery uint64
}

// NewAnimator creates an Animator in the Uninitialized state. The config is
// used as given; hosts validate at their boundary.
func NewAnimator(cfg Config) *Animator {
	return &Animator{
		cfg:        cfg,
		rng:        rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		debugOut:   os.Stderr,
		debugEvery: DebugLogInterval,
	}
}

// SetRand replaces the random source used to build populations.
func (a *Animator) SetRand(rng *rand.Rand) {
	a.rng = rng
}

// SetPointerOffset sets the constant correction added to every PointerMove
// position, mapping input coordinates onto the field origin.
func (a *Animator) SetPointerOffset(offset Vec2) {
	a.pointerOffset = offset
}

// OnTeardown registers fn to run once when the Animator is torn down. Hosts
// use it to detach from their pointer and resize sources.
func (a *Animator) OnTeardown(fn func()) {
	a.onTeardown = append(a.onTeardown, fn)
}

// Start sizes the field, builds the first population and enters Running.
// Calling Start on a running Animator behaves like Resize.
func (a *Animator) Start(width, height float64) {
	a.debugCheckTornDown("Start")
	switch a.state {
	case StateTornDown:
		return
	case StateUninitialized:
		a.debugCheckConfig(a.cfg, "Start")
		a.width, a.height = width, height
		a.regenerate("start")
		a.setState(StateRunning)
	default:
		a.Resize(width, height)
	}
}

// Step runs one frame: clear the surface, update every particle in slice
// order, then stroke the influence ring if enabled and a pointer is known.
// It reports false without touching the surface unless the Animator is
// running.
func (a *Animator) Step(s Surface) bool {
	if a.state != StateRunning {
		return false
	}

	var stats debugStats
	var t0 time.Time
	if a.debug {
		t0 = time.Now()
	}

	f := Frame{
		Width:      a.width,
		Height:     a.height,
		Pointer:    a.pointer,
		HasPointer: a.hasPointer,
		Radius:     a.cfg.InfluenceRadius,
		Base:       a.cfg.BaseColor,
		Highlight:  a.cfg.HighlightColor,
	}

	s.Clear(a.width, a.height)
	for i := range a.particles {
		if a.particles[i].Update(s, &f) {
			stats.drawn++
		}
	}

	if a.debug {
		stats.updateTime = time.Since(t0)
		t0 = time.Now()
	}

	if a.cfg.ShowInfluenceRadius && a.hasPointer {
		s.StrokeCircle(a.pointer.X, a.pointer.Y, a.cfg.InfluenceRadius, a.cfg.HighlightColor)
	}

	a.frames++
	if a.debug {
		stats.ringTime = time.Since(t0)
		a.debugFrame(stats)
	}
	return true
}

// Resize changes the field size and replaces the whole population.
func (a *Animator) Resize(width, height float64) {
	a.debugCheckTornDown("Resize")
	if a.state == StateTornDown {
		return
	}
	if a.state == StateUninitialized {
		a.width, a.height = width, height
		return
	}
	a.setState(StateResizing)
	a.width, a.height = width, height
	a.regenerate("resize")
	a.setState(StateRunning)
}

// Configure installs a new snapshot. A count change rebuilds the population;
// a size-bound change alone reclamps existing particles in place; a shape
// change restyles them in place. Color, radius and ring changes need no
// structural work because they are read every frame.
func (a *Animator) Configure(cfg Config) {
	a.debugCheckTornDown("Configure")
	if a.state == StateTornDown {
		return
	}
	a.debugCheckConfig(cfg, "Configure")
	prev := a.cfg
	a.cfg = cfg
	if a.state != StateRunning {
		return
	}

	a.setState(StateReconfiguring)
	switch {
	case cfg.ParticleCount != prev.ParticleCount:
		a.regenerate("count")
	default:
		if cfg.MinSize != prev.MinSize || cfg.MaxSize != prev.MaxSize {
			for i := range a.particles {
				a.particles[i].UpdateSizeBounds(cfg.MinSize, cfg.MaxSize)
			}
			a.debugf("size bounds -> [%v, %v]", cfg.MinSize, cfg.MaxSize)
		}
		if cfg.Shape != prev.Shape {
			for i := range a.particles {
				a.particles[i].Shape = cfg.Shape
			}
			a.debugf("shape -> %v", cfg.Shape)
		}
	}
	a.setState(StateRunning)
}

// ApplyPreset replaces colors, size bounds and count with the named bundle
// and rebuilds the population.
func (a *Animator) ApplyPreset(name string) error {
	p, ok := LookupPreset(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	a.debugCheckTornDown("ApplyPreset")
	if a.state == StateTornDown {
		return nil
	}
	a.cfg = p.Apply(a.cfg)
	a.preset = p.Name
	if a.state != StateRunning {
		return nil
	}
	a.setState(StateReconfiguring)
	a.regenerate("preset " + p.Name)
	a.setState(StateRunning)
	return nil
}

// PointerMove records the pointer at (x, y) plus the pointer offset.
func (a *Animator) PointerMove(x, y float64) {
	if a.state == StateTornDown {
		return
	}
	a.pointer = Vec2{X: x + a.pointerOffset.X, Y: y + a.pointerOffset.Y}
	a.hasPointer = true
}

// PointerLeave forgets the pointer position.
func (a *Animator) PointerLeave() {
	a.hasPointer = false
}

// Teardown stops the Animator for good, drops the population and runs the
// registered teardown hooks once. Later calls are no-ops.
func (a *Animator) Teardown() {
	if a.state == StateTornDown {
		return
	}
	a.setState(StateTornDown)
	a.particles = nil
	a.hasPointer = false
	hooks := a.onTeardown
	a.onTeardown = nil
	for _, fn := range hooks {
		fn()
	}
}

// State returns the lifecycle state.
func (a *Animator) State() State {
	return a.state
}

// Config returns the current snapshot.
func (a *Animator) Config() Config {
	return a.cfg
}

// PresetName returns the last preset applied, or "" if none was.
func (a *Animator) PresetName() string {
	return a.preset
}

// Particles returns the current population. The slice is owned by the
// Animator and is replaced on every regenerate; callers must not retain it
// across calls that change the population.
func (a *Animator) Particles() []Particle {
	return a.particles
}

// Pointer returns the corrected pointer position and whether one is known.
func (a *Animator) Pointer() (Vec2, bool) {
	return a.pointer, a.hasPointer
}

// Size returns the field dimensions.
func (a *Animator) Size() (width, height float64) {
	return a.width, a.height
}

// Generation counts population rebuilds since Start.
func (a *Animator) Generation() int {
	return a.generation
}

// Frames returns the number of completed steps.
func (a *Animator) Frames() uint64 {
	return a.frames
}

// regenerate replaces the population using the current field size and config.
func (a *Animator) regenerate(reason string) {
	a.particles = NewPopulation(a.rng, a.cfg.ParticleCount, a.width, a.height,
		a.cfg.MinSize, a.cfg.MaxSize, a.cfg.Shape)
	a.generation++
	a.debugCheckPopulation()
	a.debugf("regenerate (%s): %d particles in %vx%v, generation %d",
		reason, len(a.particles), a.width, a.height, a.generation)
}

func (a *Animator) setState(s State) {
	if a.state == s {
		return
	}
	a.debugf("state %v -> %v", a.state, s)
	a.state = s
}
