package stagekit

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// This file defines the raw, untrusted configuration shape as authored in
// YAML (or built programmatically), plus the package-wide default tables.
// Nothing here is validated; Validate converts these into the normalized
// types in normalized.go.

// --- Defaults ---

// Stage defaults, applied when the stage block is absent or a dimension
// is non-positive.
const (
	DefaultStageWidth  = 2048.0
	DefaultStageHeight = 2048.0
)

// Transform channel defaults.
const (
	DefaultOpacity = 1.0
	DefaultAngle   = 0.0
)

// defaultScale is the per-axis scale applied when a layer omits scale.
var defaultScale = Vec2{1, 1}

// defaultAnchor centers the anchor in normalized image space.
var defaultAnchor = Vec2{0.5, 0.5}

// defaultBehaviors returns the fully-populated behavior record used when a
// layer omits some or all behavior blocks. All behaviors start disabled.
func defaultBehaviors() Behaviors {
	return Behaviors{
		Spin:  SpinConfig{Enabled: false, RPM: 0, Direction: DirectionCW},
		Orbit: OrbitConfig{Enabled: false, RPM: 0, Radius: 0, Center: nil},
		Pulse: PulseConfig{Enabled: false, Amplitude: 0, RPM: 0},
		Fade:  FadeConfig{Enabled: false, From: 1, To: 1, RPM: 0},
	}
}

// Container defaults, filled when width/height materialize a container
// without an explicit fit mode or alignment.
const (
	defaultFitMode   = FitContain
	defaultAlignment = AlignCenter
)

// --- Raw config ---

// LibraryConfig is the raw top-level configuration. All fields are
// optional except Layers; Validate fills every omission with documented
// defaults.
type LibraryConfig struct {
	Stage  *StageConfig  `yaml:"stage,omitempty"`
	Layers []LayerConfig `yaml:"layers"`
}

// StageConfig is the raw stage block. Non-positive or missing dimensions
// fall back to DefaultStageWidth/DefaultStageHeight; an unrecognized
// origin string falls back to center with a warning.
type StageConfig struct {
	Width  float64 `yaml:"width,omitempty"`
	Height float64 `yaml:"height,omitempty"`
	Origin string  `yaml:"origin,omitempty"`
}

// LayerConfig is one raw layer entry. Exactly one of ImagePath and
// RegistryKey must be set. Pointer fields distinguish "absent" from an
// explicit zero value.
type LayerConfig struct {
	LayerID     string `yaml:"layerId"`
	ImagePath   string `yaml:"imagePath,omitempty"`
	RegistryKey string `yaml:"registryKey,omitempty"`

	Position *Vec2      `yaml:"position,omitempty"`
	Scale    *ScaleSpec `yaml:"scale,omitempty"`
	Angle    *float64   `yaml:"angle,omitempty"` // degrees
	Tilt     *Vec2      `yaml:"tilt,omitempty"`  // degrees per axis
	Anchor   *Vec2      `yaml:"anchor,omitempty"` // normalized [0,1] per axis
	Opacity  *float64   `yaml:"opacity,omitempty"`

	Behaviors *BehaviorsConfig `yaml:"behaviors,omitempty"`
	Events    *EventHooks      `yaml:"events,omitempty"`

	// Container fields. Specifying any of them materializes a container
	// on the normalized layer.
	LayerWidth  *float64 `yaml:"layerWidth,omitempty"`
	LayerHeight *float64 `yaml:"layerHeight,omitempty"`
	FitMode     string   `yaml:"fitMode,omitempty"`
	Alignment   string   `yaml:"alignment,omitempty"`
}

// ScaleSpec accepts either a scalar (uniform scale) or an {x, y} pair.
type ScaleSpec struct {
	X, Y float64
}

// UnmarshalYAML decodes a scalar into a uniform scale and a mapping into
// a per-axis scale.
func (s *ScaleSpec) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var f float64
		if err := value.Decode(&f); err != nil {
			return fmt.Errorf("scale: %w", err)
		}
		s.X, s.Y = f, f
		return nil
	case yaml.MappingNode:
		var v Vec2
		if err := value.Decode(&v); err != nil {
			return fmt.Errorf("scale: %w", err)
		}
		s.X, s.Y = v.X, v.Y
		return nil
	default:
		return fmt.Errorf("scale: expected number or {x, y}, got %s", value.Tag)
	}
}

// Vec2 returns the spec as a vector.
func (s ScaleSpec) Vec2() Vec2 {
	return Vec2{s.X, s.Y}
}

// BehaviorsConfig is the raw behaviors block. Any omitted behavior or
// sub-field takes its default; negative rates survive normalization with
// a warning.
type BehaviorsConfig struct {
	Spin  *SpinSpec  `yaml:"spin,omitempty"`
	Orbit *OrbitSpec `yaml:"orbit,omitempty"`
	Pulse *PulseSpec `yaml:"pulse,omitempty"`
	Fade  *FadeSpec  `yaml:"fade,omitempty"`
}

// SpinSpec is the raw spin block.
type SpinSpec struct {
	Enabled   *bool    `yaml:"enabled,omitempty"`
	RPM       *float64 `yaml:"rpm,omitempty"`
	Direction string   `yaml:"direction,omitempty"` // "cw" or "ccw"
}

// OrbitSpec is the raw orbit block.
type OrbitSpec struct {
	Enabled *bool    `yaml:"enabled,omitempty"`
	RPM     *float64 `yaml:"rpm,omitempty"`
	Radius  *float64 `yaml:"radius,omitempty"`
	Center  *Vec2    `yaml:"center,omitempty"`
}

// PulseSpec is the raw pulse block.
type PulseSpec struct {
	Enabled   *bool    `yaml:"enabled,omitempty"`
	Amplitude *float64 `yaml:"amplitude,omitempty"`
	RPM       *float64 `yaml:"rpm,omitempty"`
}

// FadeSpec is the raw fade block.
type FadeSpec struct {
	Enabled *bool    `yaml:"enabled,omitempty"`
	From    *float64 `yaml:"from,omitempty"`
	To      *float64 `yaml:"to,omitempty"`
	RPM     *float64 `yaml:"rpm,omitempty"`
}

// EventHooks is the raw events block. Each hook must decode to a list of
// {action, set} entries, but the fields are deliberately untyped: hook
// shape and entry contents are checked during validation so that a
// malformed hook produces a collected Issue rather than a decode error.
type EventHooks struct {
	OnPress   any `yaml:"onPress,omitempty"`
	OnHover   any `yaml:"onHover,omitempty"`
	OnRelease any `yaml:"onRelease,omitempty"`
}
