package bloom

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in a script.
type scriptStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
	Frames int     `json:"frames,omitempty"`
	Ease   string  `json:"ease,omitempty"`

	MinSize   float64 `json:"minSize,omitempty"`
	MaxSize   float64 `json:"maxSize,omitempty"`
	Base      string  `json:"base,omitempty"`
	Highlight string  `json:"highlight,omitempty"`
}

// script is the top-level JSON structure for a script.
type script struct {
	Steps []scriptStep `json:"steps"`
}

// Runner feeds scripted pointer, resize and preset events to an Animator,
// one step per frame, for automated visual checks and demos. Positions are
// input coordinates, so the Animator's pointer offset applies to them.
//
// Supported actions: move, leave, sweep, resize, preset, bounds, colors,
// wait, screenshot.
type Runner struct {
	// Screenshot is called for screenshot steps. Hosts that cannot capture
	// frames leave it nil and the step is skipped.
	Screenshot func(label string)

	steps     []scriptStep
	cursor    int
	waitCount int
	sweep     *sweep
	done      bool
}

// LoadScript parses a JSON script and returns a Runner ready to be stepped.
func LoadScript(jsonData []byte) (*Runner, error) {
	var sc script
	if err := json.Unmarshal(jsonData, &sc); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(sc.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i, st := range sc.Steps {
		if err := st.check(); err != nil {
			return nil, fmt.Errorf("parse script: step %d: %w", i, err)
		}
	}
	return &Runner{steps: sc.Steps}, nil
}

func (st scriptStep) check() error {
	switch st.Action {
	case "move", "leave", "sweep", "wait", "screenshot":
		return nil
	case "resize":
		if st.Width <= 0 || st.Height <= 0 {
			return fmt.Errorf("resize to %vx%v", st.Width, st.Height)
		}
		return nil
	case "bounds":
		if st.MinSize < 0 || st.MinSize >= st.MaxSize {
			return fmt.Errorf("%w: bounds [%v, %v]", ErrInvalidSize, st.MinSize, st.MaxSize)
		}
		return nil
	case "colors":
		if st.Base == "" && st.Highlight == "" {
			return fmt.Errorf("colors: no base or highlight")
		}
		for _, hex := range []string{st.Base, st.Highlight} {
			if hex == "" {
				continue
			}
			if _, err := ParseHex(hex); err != nil {
				return fmt.Errorf("colors: %w", err)
			}
		}
		return nil
	case "preset":
		if _, ok := LookupPreset(st.Label); !ok {
			return fmt.Errorf("%w: %q", ErrUnknownPreset, st.Label)
		}
		return nil
	}
	return fmt.Errorf("unknown action %q", st.Action)
}

// Done reports whether all steps have been executed.
func (r *Runner) Done() bool {
	return r.done
}

// Step advances the runner by one frame. Hosts call it before Animator.Step.
func (r *Runner) Step(a *Animator) {
	if r.done {
		return
	}
	if r.sweep != nil {
		x, y, finished := r.sweep.advance()
		a.PointerMove(x, y)
		if finished {
			r.sweep = nil
		}
		r.checkDone()
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "move":
		a.PointerMove(st.X, st.Y)
	case "leave":
		a.PointerLeave()
	case "sweep":
		a.PointerMove(st.FromX, st.FromY)
		r.sweep = newSweep(st)
	case "resize":
		a.Resize(st.Width, st.Height)
	case "preset":
		_ = a.ApplyPreset(st.Label) // checked at load time
	case "bounds":
		cfg := a.Config()
		cfg.MinSize, cfg.MaxSize = st.MinSize, st.MaxSize
		a.Configure(cfg)
	case "colors":
		cfg := a.Config()
		if st.Base != "" {
			cfg.BaseColor = mustHex(st.Base)
		}
		if st.Highlight != "" {
			cfg.HighlightColor = mustHex(st.Highlight)
		}
		a.Configure(cfg)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "screenshot":
		if r.Screenshot != nil {
			r.Screenshot(st.Label)
		}
	}

	r.checkDone()
}

func (r *Runner) checkDone() {
	if r.cursor >= len(r.steps) && r.waitCount == 0 && r.sweep == nil {
		r.done = true
	}
}
