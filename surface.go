package bloom

// Surface is the drawing target the Animator paints into each frame.
// Coordinates are field coordinates with the origin at the top-left.
type Surface interface {
	// Clear erases the whole field before a frame is painted.
	Clear(width, height float64)
	// FillShape paints a filled shape centered at (x, y). size is the radius
	// of a circle or the half-edge of a square.
	FillShape(shape Shape, x, y, size float64, c RGB)
	// StrokeCircle outlines a circle centered at (x, y).
	StrokeCircle(x, y, radius float64, c RGB)
}

// DrawOp identifies a recorded Surface call.
type DrawOp uint8

const (
	OpClear        DrawOp = iota // Clear
	OpFillShape                  // FillShape
	OpStrokeCircle               // StrokeCircle
)

// DrawCall is one recorded Surface call. Size holds the shape size or the
// circle radius; Width/Height are only set for OpClear.
type DrawCall struct {
	Op            DrawOp
	Shape         Shape
	X, Y          float64
	Size          float64
	Width, Height float64
	Color         RGB
}

// Recorder is a Surface that keeps every call in order. It backs headless
// runs and frame assertions in tests.
type Recorder struct {
	Calls []DrawCall
}

// Clear records an OpClear call.
func (r *Recorder) Clear(width, height float64) {
	r.Calls = append(r.Calls, DrawCall{Op: OpClear, Width: width, Height: height})
}

// FillShape records an OpFillShape call.
func (r *Recorder) FillShape(shape Shape, x, y, size float64, c RGB) {
	r.Calls = append(r.Calls, DrawCall{Op: OpFillShape, Shape: shape, X: x, Y: y, Size: size, Color: c})
}

// StrokeCircle records an OpStrokeCircle call.
func (r *Recorder) StrokeCircle(x, y, radius float64, c RGB) {
	r.Calls = append(r.Calls, DrawCall{Op: OpStrokeCircle, X: x, Y: y, Size: radius, Color: c})
}

// Reset drops recorded calls but keeps the backing array.
func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
}

// Count returns how many recorded calls have the given op.
func (r *Recorder) Count(op DrawOp) int {
	n := 0
	for i := range r.Calls {
		if r.Calls[i].Op == op {
			n++
		}
	}
	return n
}
