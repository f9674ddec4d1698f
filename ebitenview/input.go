package ebitenview

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// pointerSink receives pointer transitions. *bloom.Animator satisfies it.
type pointerSink interface {
	PointerMove(x, y float64)
	PointerLeave()
}

// pointerSample is one frame's reading of the primary pointer in window
// coordinates. ok is false when no pointer is available.
type pointerSample struct {
	x, y float64
	ok   bool
}

// fieldRect is the field area inside the window chrome.
type fieldRect struct {
	x, y, w, h float64
}

// contains reports whether (x, y) lies inside the rectangle, edges included.
func (r fieldRect) contains(x, y float64) bool {
	return x >= r.x && x <= r.x+r.w &&
		y >= r.y && y <= r.y+r.h
}

// pointerTracker turns polled pointer positions into move/leave signals.
// Moves are reported only when the position changes; a leave is reported once
// when the pointer exits the field, the window loses focus or input stops.
type pointerTracker struct {
	touchIDs []ebiten.TouchID
	inside   bool
	lastX    float64
	lastY    float64
}

// poll reads the current pointer. The first active touch wins over the mouse
// cursor.
func (t *pointerTracker) poll() pointerSample {
	if !ebiten.IsFocused() {
		return pointerSample{}
	}
	t.touchIDs = ebiten.AppendTouchIDs(t.touchIDs[:0])
	if len(t.touchIDs) > 0 {
		tx, ty := ebiten.TouchPosition(t.touchIDs[0])
		return pointerSample{x: float64(tx), y: float64(ty), ok: true}
	}
	mx, my := ebiten.CursorPosition()
	return pointerSample{x: float64(mx), y: float64(my), ok: true}
}

// apply forwards the sample to sink. Positions stay in window coordinates;
// the Animator's pointer offset maps them onto the field.
func (t *pointerTracker) apply(sink pointerSink, s pointerSample, field fieldRect) {
	if !s.ok || !field.contains(s.x, s.y) {
		if t.inside {
			t.inside = false
			sink.PointerLeave()
		}
		return
	}
	if t.inside && s.x == t.lastX && s.y == t.lastY {
		return
	}
	t.inside = true
	t.lastX, t.lastY = s.x, s.y
	sink.PointerMove(s.x, s.y)
}

// reset forgets the tracked state so the next sample inside the field is
// reported as a fresh move.
func (t *pointerTracker) reset() {
	t.inside = false
}
