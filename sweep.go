package bloom

import (
	"strings"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// easings maps script names to gween easing functions.
var easings = map[string]ease.TweenFunc{
	"linear":    ease.Linear,
	"inoutquad": ease.InOutQuad,
	"outcubic":  ease.OutCubic,
	"inoutsine": ease.InOutSine,
}

// easeByName returns the named easing, falling back to linear.
func easeByName(name string) ease.TweenFunc {
	if fn, ok := easings[strings.ToLower(name)]; ok {
		return fn
	}
	return ease.Linear
}

// sweep moves a scripted pointer along a straight path, one frame per tween
// time unit.
type sweep struct {
	x, y *gween.Tween
}

func newSweep(st scriptStep) *sweep {
	frames := float32(max(st.Frames, 1))
	fn := easeByName(st.Ease)
	return &sweep{
		x: gween.New(float32(st.FromX), float32(st.ToX), frames, fn),
		y: gween.New(float32(st.FromY), float32(st.ToY), frames, fn),
	}
}

// advance moves one frame along the path.
func (s *sweep) advance() (x, y float64, finished bool) {
	vx, doneX := s.x.Update(1)
	vy, doneY := s.y.Update(1)
	return float64(vx), float64(vy), doneX && doneY
}
