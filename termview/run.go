package termview

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/bloom"
)

// Options configures the terminal host.
type Options struct {
	// FrameInterval is the time between frames.
	FrameInterval time.Duration
	// CellWidth and CellHeight are the field units per terminal cell.
	CellWidth, CellHeight float64
	// ShowStatus reserves the top row for a status line.
	ShowStatus bool
	// Background fills the field before particles are drawn.
	Background bloom.RGB
	// Script, if set, drives the pointer one step per frame until it is
	// done; mouse input is ignored meanwhile. Screenshot steps are skipped.
	Script *bloom.Runner
	// ExitAfterScript ends the run once Script completes.
	ExitAfterScript bool
}

// DefaultOptions returns a ~60 FPS host with 8x16 cells and a status line.
func DefaultOptions() Options {
	return Options{
		FrameInterval: 16 * time.Millisecond,
		CellWidth:     DefaultCellWidth,
		CellHeight:    DefaultCellHeight,
		ShowStatus:    true,
	}
}

// host owns the Animator on the frame loop goroutine.
type host struct {
	screen  tcell.Screen
	anim    *bloom.Animator
	surface *Surface
	opts    Options
	runner  *bloom.Runner

	cols, rows int
	liveInput  bool // real input has taken over from the script
}

func newHost(screen tcell.Screen, anim *bloom.Animator, opts Options) *host {
	s := NewSurface(screen)
	if opts.CellWidth > 0 {
		s.CellWidth = opts.CellWidth
	}
	if opts.CellHeight > 0 {
		s.CellHeight = opts.CellHeight
	}
	if opts.ShowStatus {
		s.Top = 1
	}
	s.Background = toColor(opts.Background)

	// Mouse positions arrive in whole-screen cells; the status row sits above
	// the field.
	anim.SetPointerOffset(bloom.Vec2{Y: -float64(s.Top) * s.CellHeight})
	return &host{screen: screen, anim: anim, surface: s, opts: opts, runner: opts.Script}
}

// Run animates anim on an initialized screen until ctx is cancelled or the
// user quits with Esc, Ctrl-C or q. It returns ctx.Err() on cancellation and
// nil on quit. The Animator is torn down on return; the caller still owns the
// screen and must Fini it.
func Run(ctx context.Context, screen tcell.Screen, anim *bloom.Animator, opts Options) error {
	if opts.FrameInterval <= 0 {
		return fmt.Errorf("termview: frame interval %v", opts.FrameInterval)
	}
	h := newHost(screen, anim, opts)
	defer anim.Teardown()

	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.EnableFocus()
	h.resize()

	done := make(chan struct{})
	defer close(done)
	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(opts.FrameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if h.handleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			if !h.frame() {
				return nil
			}
		}
	}
}

// resize starts or resizes the Animator when the screen size changes.
func (h *host) resize() {
	cols, rows := h.screen.Size()
	if cols == h.cols && rows == h.rows && h.anim.State() != bloom.StateUninitialized {
		return
	}
	h.cols, h.rows = cols, rows
	w, fh := h.surface.FieldSize(cols, max(rows-h.surface.Top, 1))
	h.anim.Start(w, fh)
}

// frame draws one Animator step and the status line. It reports false once
// the Animator has been torn down.
func (h *host) frame() bool {
	if !h.stepScript() {
		return false
	}
	if !h.anim.Step(h.surface) {
		return h.anim.State() != bloom.StateTornDown
	}
	if h.surface.Top > 0 {
		h.drawStatus()
	}
	h.screen.Show()
	return true
}

// stepScript advances the script by one frame. Once it is done the scripted
// pointer is dropped and mouse input takes over, or the Animator is torn down
// with ExitAfterScript. It reports false when the run should end.
func (h *host) stepScript() bool {
	if h.runner == nil {
		return true
	}
	switch {
	case !h.runner.Done():
		h.runner.Step(h.anim)
	case h.opts.ExitAfterScript:
		h.anim.Teardown()
		return false
	case !h.liveInput:
		h.liveInput = true
		h.anim.PointerLeave()
	}
	return true
}

// scripted reports whether pointer input still belongs to the script.
func (h *host) scripted() bool {
	return h.runner != nil && !h.liveInput
}

func (h *host) drawStatus() {
	cfg := h.anim.Config()
	name := h.anim.PresetName()
	if name == "" {
		name = "custom"
	}
	line := fmt.Sprintf(" %s | %s | radius %.0f | %d particles | 1-6 preset  r ring  s shape  +/- radius  [/] max  ,/. min  q quit",
		name, cfg.Shape, cfg.InfluenceRadius, cfg.ParticleCount)
	st := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	col := 0
	for _, r := range line {
		if col >= h.cols {
			break
		}
		h.screen.SetContent(col, 0, r, nil, st)
		col++
	}
	for ; col < h.cols; col++ {
		h.screen.SetContent(col, 0, ' ', nil, st)
	}
}

// handleEvent applies one input event. It reports true when the user quit.
func (h *host) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.handleKey(ev)

	case *tcell.EventMouse:
		if h.scripted() {
			return false
		}
		col, row := ev.Position()
		if row < h.surface.Top {
			h.anim.PointerLeave()
			return false
		}
		h.anim.PointerMove(h.surface.CellCenter(col, row))

	case *tcell.EventFocus:
		if !ev.Focused && !h.scripted() {
			h.anim.PointerLeave()
		}

	case *tcell.EventResize:
		h.screen.Sync()
		h.resize()
	}
	return false
}

func (h *host) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		h.anim.Teardown()
		return true
	case tcell.KeyRune:
	default:
		return false
	}

	cfg := h.anim.Config()
	switch r := ev.Rune(); {
	case r == 'q':
		h.anim.Teardown()
		return true
	case r >= '1' && r <= '9':
		presets := bloom.Presets()
		if i := int(r - '1'); i < len(presets) {
			_ = h.anim.ApplyPreset(presets[i].Name) // name comes from the table
		}
		return false
	case r == 'r':
		cfg.ShowInfluenceRadius = !cfg.ShowInfluenceRadius
	case r == 's':
		if cfg.Shape == bloom.ShapeCircle {
			cfg.Shape = bloom.ShapeSquare
		} else {
			cfg.Shape = bloom.ShapeCircle
		}
	case r == '+' || r == '=':
		cfg.InfluenceRadius += 10
	case r == '-':
		cfg.InfluenceRadius -= 10
	case r == ']':
		cfg.MaxSize += 5
	case r == '[':
		cfg.MaxSize -= 5
	case r == '.':
		cfg.MinSize += 5
	case r == ',':
		cfg.MinSize -= 5
	default:
		return false
	}
	h.anim.Configure(cfg.Clamp())
	return false
}
