package bloom

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestDefaultConfigIsFog(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.BaseColor != fogBase || cfg.HighlightColor != fogHighlight {
		t.Errorf("colors = %v / %v, want Fog", cfg.BaseColor, cfg.HighlightColor)
	}
	if cfg.MinSize != 0 || cfg.MaxSize != 35 || cfg.ParticleCount != 1000 {
		t.Errorf("bundle = [%v, %v] x %d, want [0, 35] x 1000", cfg.MinSize, cfg.MaxSize, cfg.ParticleCount)
	}
	if cfg.InfluenceRadius != 80 || cfg.ShowInfluenceRadius || cfg.Shape != ShapeCircle {
		t.Errorf("radius/ring/shape = %v/%v/%v", cfg.InfluenceRadius, cfg.ShowInfluenceRadius, cfg.Shape)
	}
}

func TestValidate(t *testing.T) {
	base := DefaultConfig()
	cases := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"zero radius", func(c *Config) { c.InfluenceRadius = 0 }, ErrInvalidRadius},
		{"min equals max", func(c *Config) { c.MinSize, c.MaxSize = 10, 10 }, ErrInvalidSize},
		{"negative min", func(c *Config) { c.MinSize = -1 }, ErrInvalidSize},
		{"zero count", func(c *Config) { c.ParticleCount = 0 }, ErrInvalidCount},
		{"bad shape", func(c *Config) { c.Shape = 9 }, ErrUnknownShape},
	}
	for _, tc := range cases {
		cfg := base
		tc.mutate(&cfg)
		if err := cfg.Validate(); !errors.Is(err, tc.want) {
			t.Errorf("%s: err = %v, want %v", tc.name, err, tc.want)
		}
	}
}

func TestClamp(t *testing.T) {
	cfg := Config{InfluenceRadius: 5, MinSize: 120, MaxSize: 300, ParticleCount: 0}.Clamp()
	if cfg.InfluenceRadius != MinInfluenceRadius {
		t.Errorf("radius = %v, want %v", cfg.InfluenceRadius, MinInfluenceRadius)
	}
	if cfg.MaxSize != MaxParticleSize || cfg.MinSize != MaxParticleSize-1 {
		t.Errorf("sizes = [%v, %v], want [99, 100]", cfg.MinSize, cfg.MaxSize)
	}
	if cfg.ParticleCount != 1 {
		t.Errorf("count = %d, want 1", cfg.ParticleCount)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("clamped config invalid: %v", err)
	}

	cfg = Config{InfluenceRadius: 900, MaxSize: 10, ParticleCount: 1e6}.Clamp()
	if cfg.InfluenceRadius != MaxInfluenceRadius || cfg.ParticleCount != MaxParticleCount {
		t.Errorf("radius/count = %v/%d", cfg.InfluenceRadius, cfg.ParticleCount)
	}
}

func TestLoadConfigPresetThenOverrides(t *testing.T) {
	cfg, err := LoadConfig([]byte(`{
		"preset": "slime",
		"influenceRadius": 120,
		"showInfluenceRadius": true,
		"baseColor": "#102030",
		"shape": "square"
	}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.MaxSize != 100 || cfg.ParticleCount != 3000 {
		t.Errorf("preset bundle not applied: max %v count %d", cfg.MaxSize, cfg.ParticleCount)
	}
	if cfg.InfluenceRadius != 120 || !cfg.ShowInfluenceRadius || cfg.Shape != ShapeSquare {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.BaseColor != (RGB{0x10, 0x20, 0x30}) {
		t.Errorf("base = %v", cfg.BaseColor)
	}
}

func TestLoadConfigObjectColor(t *testing.T) {
	cfg, err := LoadConfig([]byte(`{"highlightColor": {"r": 1, "g": 2, "b": 3}, "particleCount": 12}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.HighlightColor != (RGB{1, 2, 3}) || cfg.ParticleCount != 12 {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.BaseColor != fogBase {
		t.Errorf("missing base should keep default, got %v", cfg.BaseColor)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	if _, err := LoadConfig([]byte(`not json`)); err == nil {
		t.Error("expected error for invalid JSON")
	}
	if _, err := LoadConfig([]byte(`{"preset": "Nope"}`)); !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("err = %v, want ErrUnknownPreset", err)
	}
	if _, err := LoadConfig([]byte(`{"minSize": 50, "maxSize": 20}`)); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("err = %v, want ErrInvalidSize", err)
	}
	if _, err := LoadConfig([]byte(`{"shape": "hexagon"}`)); !errors.Is(err, ErrUnknownShape) {
		t.Errorf("err = %v, want ErrUnknownShape", err)
	}
}

func TestConfigJSONRoundTrip(t *testing.T) {
	want := DefaultConfig()
	want.Shape = ShapeSquare
	data, err := json.Marshal(want)
	if err != nil {
		t.Fatal(err)
	}
	got, err := LoadConfig(data)
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}
