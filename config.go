package bloom

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Bounds enforced by the input controls. The Animator trusts its Config; these
// are applied at the boundary by Validate and Clamp.
const (
	MinInfluenceRadius = 20
	MaxInfluenceRadius = 200
	MaxParticleSize    = 100
	MaxParticleCount   = 10000
)

// Configuration errors returned by Validate, LoadConfig and LookupPreset
// callers. Test with errors.Is.
var (
	ErrInvalidRadius = errors.New("bloom: influence radius must be positive")
	ErrInvalidSize   = errors.New("bloom: particle size bounds must satisfy 0 <= min < max")
	ErrInvalidCount  = errors.New("bloom: particle count must be at least 1")
	ErrUnknownPreset = errors.New("bloom: unknown preset")
	ErrUnknownShape  = errors.New("bloom: unknown shape")
)

// Config is the parameter snapshot read by the Animator every frame.
type Config struct {
	InfluenceRadius     float64 `json:"influenceRadius"`
	ShowInfluenceRadius bool    `json:"showInfluenceRadius"`
	BaseColor           RGB     `json:"baseColor"`
	HighlightColor      RGB     `json:"highlightColor"`
	MinSize             float64 `json:"minSize"`
	MaxSize             float64 `json:"maxSize"`
	ParticleCount       int     `json:"particleCount"`
	Shape               Shape   `json:"shape"`
}

// DefaultConfig returns the default preset with an 80 unit radius, the ring
// hidden and circular particles.
func DefaultConfig() Config {
	cfg := Config{
		InfluenceRadius: 80,
		Shape:           ShapeCircle,
	}
	p, _ := LookupPreset(DefaultPreset)
	return p.Apply(cfg)
}

// Validate reports the first field that a host must not pass to the Animator.
func (c Config) Validate() error {
	if !(c.InfluenceRadius > 0) {
		return fmt.Errorf("%w: got %v", ErrInvalidRadius, c.InfluenceRadius)
	}
	if c.MinSize < 0 || !(c.MinSize < c.MaxSize) {
		return fmt.Errorf("%w: got [%v, %v]", ErrInvalidSize, c.MinSize, c.MaxSize)
	}
	if c.ParticleCount < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidCount, c.ParticleCount)
	}
	if c.Shape > ShapeSquare {
		return fmt.Errorf("%w: %d", ErrUnknownShape, uint8(c.Shape))
	}
	return nil
}

// Clamp pulls every numeric field into the range the input controls allow:
// radius in [20, 200], 0 <= min < max <= 100, count in [1, 10000].
func (c Config) Clamp() Config {
	c.InfluenceRadius = min(max(c.InfluenceRadius, MinInfluenceRadius), MaxInfluenceRadius)
	c.MaxSize = min(max(c.MaxSize, 1), MaxParticleSize)
	c.MinSize = min(max(c.MinSize, 0), c.MaxSize-1)
	c.ParticleCount = min(max(c.ParticleCount, 1), MaxParticleCount)
	return c
}

// LoadConfig decodes a JSON config. Missing fields keep their DefaultConfig
// values. An optional "preset" key is applied before the explicit fields, so
//
//	{"preset": "Slime", "influenceRadius": 120}
//
// yields the Slime bundle with a 120 unit radius.
func LoadConfig(data []byte) (Config, error) {
	var head struct {
		Preset string `json:"preset"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg := DefaultConfig()
	if head.Preset != "" {
		p, ok := LookupPreset(head.Preset)
		if !ok {
			return Config{}, fmt.Errorf("parse config: %w: %q", ErrUnknownPreset, head.Preset)
		}
		cfg = p.Apply(cfg)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
