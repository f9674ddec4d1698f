package termview

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/bloom"
)

const (
	// DefaultCellWidth and DefaultCellHeight are the field units covered by
	// one terminal cell, roughly the pixel size of a glyph.
	DefaultCellWidth  = 8
	DefaultCellHeight = 16

	ringRune = '·'
	dotRune  = '•'
)

// Surface paints Animator frames into a tcell screen. Each cell stands for a
// CellWidth x CellHeight block of the field, so particle sizes keep their
// pixel meaning. The field starts at row Top, leaving room for a status line.
type Surface struct {
	screen tcell.Screen

	CellWidth  float64
	CellHeight float64
	Top        int
	Background tcell.Color

	cols, rows int
}

// NewSurface returns a Surface drawing into screen with default cell sizes.
func NewSurface(screen tcell.Screen) *Surface {
	return &Surface{
		screen:     screen,
		CellWidth:  DefaultCellWidth,
		CellHeight: DefaultCellHeight,
		Background: tcell.ColorBlack,
	}
}

// FieldSize converts a cell grid to field units.
func (s *Surface) FieldSize(cols, rows int) (width, height float64) {
	return float64(cols) * s.CellWidth, float64(rows) * s.CellHeight
}

// CellCenter returns the field position at the center of the given cell.
func (s *Surface) CellCenter(col, row int) (x, y float64) {
	return (float64(col) + 0.5) * s.CellWidth, (float64(row) + 0.5) * s.CellHeight
}

// Clear implements bloom.Surface.
func (s *Surface) Clear(width, height float64) {
	s.cols = int(math.Ceil(width / s.CellWidth))
	s.rows = int(math.Ceil(height / s.CellHeight))
	st := tcell.StyleDefault.Background(s.Background)
	for row := 0; row < s.rows; row++ {
		for col := 0; col < s.cols; col++ {
			s.screen.SetContent(col, s.Top+row, ' ', nil, st)
		}
	}
}

// FillShape implements bloom.Surface. Cells whose centers fall inside the
// shape take its color; a shape too small to cover any center leaves a dot in
// the cell holding its center.
func (s *Surface) FillShape(shape bloom.Shape, x, y, size float64, c bloom.RGB) {
	clr := toColor(c)
	c0, c1 := cellSpan(x-size, x+size, s.CellWidth, s.cols)
	r0, r1 := cellSpan(y-size, y+size, s.CellHeight, s.rows)

	painted := false
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			cx, cy := s.CellCenter(col, row)
			dx, dy := cx-x, cy-y
			var inside bool
			if shape == bloom.ShapeSquare {
				inside = math.Abs(dx) <= size && math.Abs(dy) <= size
			} else {
				inside = dx*dx+dy*dy <= size*size
			}
			if inside {
				s.screen.SetContent(col, s.Top+row, ' ', nil, tcell.StyleDefault.Background(clr))
				painted = true
			}
		}
	}
	if !painted {
		s.mark(x, y, dotRune, clr)
	}
}

// StrokeCircle implements bloom.Surface.
func (s *Surface) StrokeCircle(x, y, radius float64, c bloom.RGB) {
	clr := toColor(c)
	steps := max(16, int(4*math.Pi*radius/min(s.CellWidth, s.CellHeight)))
	for i := 0; i < steps; i++ {
		a := 2 * math.Pi * float64(i) / float64(steps)
		s.mark(x+radius*math.Cos(a), y+radius*math.Sin(a), ringRune, clr)
	}
}

// mark draws r in color fg at the cell holding (x, y), keeping the cell's
// background.
func (s *Surface) mark(x, y float64, r rune, fg tcell.Color) {
	if x < 0 || y < 0 {
		return
	}
	col, row := int(x/s.CellWidth), int(y/s.CellHeight)
	if col >= s.cols || row >= s.rows {
		return
	}
	_, _, st, _ := s.screen.GetContent(col, s.Top+row)
	_, bg, _ := st.Decompose()
	s.screen.SetContent(col, s.Top+row, r, nil, tcell.StyleDefault.Foreground(fg).Background(bg))
}

// cellSpan returns the inclusive cell range covering [lo, hi], clipped to n cells.
func cellSpan(lo, hi, cell float64, n int) (int, int) {
	first := max(int(math.Floor(lo/cell)), 0)
	last := min(int(math.Floor(hi/cell)), n-1)
	return first, last
}

func toColor(c bloom.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
