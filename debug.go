package bloom

import (
	"fmt"
	"io"
	"time"
)

// DebugLogInterval is the default number of frames between stats lines.
const DebugLogInterval = 60

// debugStats holds per-frame timing and draw counts.
// Only populated when the Animator's debug mode is on.
type debugStats struct {
	updateTime time.Duration
	ringTime   time.Duration
	drawn      int
}

// SetDebugMode enables or disables debug mode. When enabled, lifecycle
// transitions and population rebuilds are logged, and frame timing stats are
// printed every DebugLogInterval frames.
func (a *Animator) SetDebugMode(enabled bool) {
	a.debug = enabled
}

// SetDebugOutput redirects debug lines, which go to stderr by default.
// every sets the frame interval between stats lines; values < 1 log every
// frame.
func (a *Animator) SetDebugOutput(w io.Writer, every int) {
	a.debugOut = w
	a.debugEvery = uint64(max(every, 1))
}

// debugFrame prints frame stats on the configured interval.
func (a *Animator) debugFrame(stats debugStats) {
	if !a.debug || a.frames%a.debugEvery != 0 {
		return
	}
	total := stats.updateTime + stats.ringTime
	_, _ = fmt.Fprintf(a.debugOut,
		"[bloom] update: %v | ring: %v | total: %v\n",
		stats.updateTime, stats.ringTime, total)
	_, _ = fmt.Fprintf(a.debugOut,
		"[bloom] particles: %d | drawn: %d | generation: %d\n",
		len(a.particles), stats.drawn, a.generation)
}

// debugf prints one lifecycle line when debug mode is on.
func (a *Animator) debugf(format string, args ...any) {
	if !a.debug {
		return
	}
	_, _ = fmt.Fprintf(a.debugOut, "[bloom] "+format+"\n", args...)
}

// debugMaxParticles is the population size above which debug mode warns.
const debugMaxParticles = 5000

// debugCheckConfig warns when a snapshot would fail Validate. Release mode
// skips the check and runs with the config as given.
func (a *Animator) debugCheckConfig(cfg Config, op string) {
	if !a.debug {
		return
	}
	if err := cfg.Validate(); err != nil {
		a.debugf("warning: %s with invalid config: %v", op, err)
	}
}

// debugCheckPopulation warns when a rebuilt population is unusually large.
func (a *Animator) debugCheckPopulation() {
	if a.debug && len(a.particles) > debugMaxParticles {
		a.debugf("warning: population %d exceeds %d", len(a.particles), debugMaxParticles)
	}
}

// debugCheckTornDown warns when a torn-down Animator is still being driven.
func (a *Animator) debugCheckTornDown(op string) {
	if a.debug && a.state == StateTornDown {
		a.debugf("warning: %s after teardown ignored", op)
	}
}
