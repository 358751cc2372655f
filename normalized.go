package stagekit

// This file defines the normalized configuration: the validated,
// fully-defaulted representation consumed by the pipeline. Every optional
// raw field has been resolved to a concrete value; nothing downstream of
// Validate touches the raw types again.

// Config is a normalized library configuration. Layers preserve input
// order; a layer's index is its z-index.
type Config struct {
	Stage  Stage
	Layers []Layer
}

// Layer is one normalized layer. Behaviors is always a complete record of
// all four behavior configs; Container is non-nil only if the raw layer
// specified any of layerWidth, layerHeight, fitMode, or alignment.
type Layer struct {
	ID        string
	Asset     AssetRef
	Transform Transform
	Container *Container
	Behaviors Behaviors
	Events    *Events
}

// Transform is the full set of per-layer visual channels. Angle and Tilt
// are in degrees; Anchor is in normalized image space; Opacity is nominal
// in [0, 1] but out-of-range authored values are preserved (validation
// warns without clamping).
type Transform struct {
	Position Vec2
	Scale    Vec2
	Angle    float64
	Tilt     Vec2
	Anchor   Vec2
	Opacity  float64
}

// Container is the normalized image-into-box fitting request. FitMode and
// Alignment are always concrete; Width/Height carry whatever the raw
// config supplied (a half-specified container fails closed in FitImage).
type Container struct {
	Width     float64
	Height    float64
	FitMode   FitMode
	Alignment Alignment
}

// --- Behavior configs ---

// Behaviors is the complete per-layer behavior record. All four configs
// are always present; disabled behaviors are no-ops at evaluation time.
type Behaviors struct {
	Spin  SpinConfig
	Orbit OrbitConfig
	Pulse PulseConfig
	Fade  FadeConfig
}

// SpinConfig rotates the layer at RPM rotations per minute.
type SpinConfig struct {
	Enabled   bool
	RPM       float64
	Direction Direction
}

// OrbitConfig moves the layer on a circle of the given radius. Center nil
// means "orbit around the layer's own base position".
type OrbitConfig struct {
	Enabled bool
	RPM     float64
	Radius  float64
	Center  *Vec2
}

// PulseConfig scales the layer sinusoidally around its base scale.
// Amplitude is the peak deviation factor (0.5 → scale swings ±50%).
type PulseConfig struct {
	Enabled   bool
	Amplitude float64
	RPM       float64
}

// FadeConfig oscillates opacity between From and To. The evaluated value
// is clamped to [0, 1]; the configured endpoints are not.
type FadeConfig struct {
	Enabled bool
	From    float64
	To      float64
	RPM     float64
}

// --- Asset references ---

// AssetRef identifies a layer's image source: either a raw path left for
// the caller's loader to resolve, or a key into the caller-owned registry.
// The type set is sealed; ResolveAsset matches it exhaustively.
type AssetRef interface {
	assetRef()
}

// PathRef is an asset referenced by file path. The core never reads the
// path; its dimensions stay NaN until a caller-side loader fills them in.
type PathRef struct {
	Path string
}

func (PathRef) assetRef() {}

// RegistryRef is an asset referenced by symbolic registry key.
type RegistryRef struct {
	Key string
}

func (RegistryRef) assetRef() {}
