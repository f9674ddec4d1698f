package bloom

import (
	"encoding/json"
	"fmt"
	"image/color"
	"math/rand/v2"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB is an opaque color with 8-bit channels in [0, 255].
type RGB struct {
	R, G, B uint8
}

// ParseHex parses a "#rrggbb" or "#rgb" color string.
func ParseHex(s string) (RGB, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return RGB{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	return fromColorful(c), nil
}

// mustHex is ParseHex for static tables. It panics on malformed input.
func mustHex(s string) RGB {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex returns the color as a "#rrggbb" string.
func (c RGB) Hex() string {
	return c.colorful().Hex()
}

// Lerp linearly interpolates each channel from c toward to by t.
// Results outside [0, 255] are clamped, so t outside [0, 1] is safe.
func (c RGB) Lerp(to RGB, t float64) RGB {
	return fromColorful(c.colorful().BlendRgb(to.colorful(), t).Clamped())
}

// ToRGBA converts to an opaque color.RGBA for drawing backends.
func (c RGB) ToRGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

func (c RGB) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

func fromColorful(c colorful.Color) RGB {
	r, g, b := c.RGB255()
	return RGB{R: r, G: g, B: b}
}

// rgbObject is the {r,g,b} JSON form of a color.
type rgbObject struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// MarshalJSON encodes the color as an {"r","g","b"} object.
func (c RGB) MarshalJSON() ([]byte, error) {
	return json.Marshal(rgbObject{R: c.R, G: c.G, B: c.B})
}

// UnmarshalJSON accepts either an {"r","g","b"} object or a hex string.
func (c *RGB) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		parsed, err := ParseHex(s)
		if err != nil {
			return err
		}
		*c = parsed
		return nil
	}
	var obj rgbObject
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("parse color: %w", err)
	}
	*c = RGB(obj)
	return nil
}

// Vec2 is a 2D point in field coordinates.
type Vec2 struct {
	X, Y float64
}

// Shape selects how a particle is painted. It has no effect on simulation.
type Shape uint8

const (
	ShapeCircle Shape = iota // filled circle, size is the radius
	ShapeSquare              // filled square, size is the half-edge
)

// String returns the lower-case shape name.
func (s Shape) String() string {
	switch s {
	case ShapeCircle:
		return "circle"
	case ShapeSquare:
		return "square"
	default:
		return fmt.Sprintf("shape(%d)", uint8(s))
	}
}

// ParseShape maps a case-insensitive name to a Shape.
func ParseShape(name string) (Shape, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "circle":
		return ShapeCircle, nil
	case "square":
		return ShapeSquare, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownShape, name)
}

// MarshalText implements encoding.TextMarshaler.
func (s Shape) MarshalText() ([]byte, error) {
	if s > ShapeSquare {
		return nil, fmt.Errorf("%w: %d", ErrUnknownShape, uint8(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Shape) UnmarshalText(text []byte) error {
	parsed, err := ParseShape(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Range is a general-purpose half-open [Min, Max) interval.
type Range struct {
	Min, Max float64
}

// Random returns a value in [Min, Max) drawn from rng.
func (r Range) Random(rng *rand.Rand) float64 {
	if r.Min == r.Max {
		return r.Min
	}
	return r.Min + rng.Float64()*(r.Max-r.Min)
}
