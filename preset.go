package bloom

import "strings"

// Built-in preset names, in menu order.
const (
	PresetFog             = "Fog"
	PresetBubblegum       = "Bubblegum"
	PresetSlime           = "Slime"
	PresetBubbleBath      = "Bubble Bath"
	PresetPartiallyCloudy = "Partially Cloudy"
	PresetExplosion       = "Explosion"

	DefaultPreset = PresetFog
)

// Preset is a named bundle that replaces colors, size bounds and particle
// count in one step.
type Preset struct {
	Name           string
	BaseColor      RGB
	HighlightColor RGB
	MinSize        float64
	MaxSize        float64
	ParticleCount  int
}

// Apply returns cfg with the preset's bundle written over it. Radius, ring
// visibility and shape are left alone.
func (p Preset) Apply(cfg Config) Config {
	cfg.BaseColor = p.BaseColor
	cfg.HighlightColor = p.HighlightColor
	cfg.MinSize = p.MinSize
	cfg.MaxSize = p.MaxSize
	cfg.ParticleCount = p.ParticleCount
	return cfg
}

// presets is built once and never mutated.
var presets = []Preset{
	{PresetFog, mustHex("#172038"), mustHex("#a4dddb"), 0, 35, 1000},
	{PresetBubblegum, mustHex("#ffffff"), mustHex("#ffcadf"), 0, 60, 500},
	{PresetSlime, mustHex("#47ff3a"), mustHex("#153923"), 0, 100, 3000},
	{PresetBubbleBath, mustHex("#b0deff"), mustHex("#f8f8ff"), 0, 40, 1000},
	{PresetPartiallyCloudy, mustHex("#ffffff"), mustHex("#ffde4f"), 50, 100, 500},
	{PresetExplosion, mustHex("#ff0057"), mustHex("#ffff00"), 0, 50, 1000},
}

// Presets returns a copy of the built-in presets in menu order.
func Presets() []Preset {
	out := make([]Preset, len(presets))
	copy(out, presets)
	return out
}

// LookupPreset finds a preset by name, ignoring case and surrounding space.
func LookupPreset(name string) (Preset, bool) {
	name = strings.TrimSpace(name)
	for _, p := range presets {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return Preset{}, false
}
