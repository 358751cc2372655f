package stagekit

import (
	"fmt"
	"math"
)

// Result is the outcome of one Validate call. Validation is atomic: if
// Errors is non-empty, OK is false and Normalized is nil even when some
// layers normalized cleanly. Warnings never block success.
type Result struct {
	OK         bool
	Errors     []Issue
	Warnings   []Issue
	Normalized *Config
}

// Validate converts an untrusted raw configuration into the normalized
// form, collecting errors and warnings as it scans. Defaults are filled
// for every omitted field; out-of-range opacity, anchor, and behavior
// rates produce warnings but the authored values are kept unclamped.
func Validate(cfg LibraryConfig) Result {
	col := &issueCollector{}

	stage := normalizeStage(cfg.Stage, col)

	seen := make(map[string]bool, len(cfg.Layers))
	layers := make([]Layer, 0, len(cfg.Layers))
	for i, raw := range cfg.Layers {
		path := fmt.Sprintf("layers[%d]", i)
		layer, ok := normalizeLayer(raw, path, stage, seen, col)
		if ok {
			layers = append(layers, layer)
		}
	}

	if len(col.errors) > 0 {
		return Result{Errors: col.errors, Warnings: col.warnings}
	}
	return Result{
		OK:       true,
		Warnings: col.warnings,
		Normalized: &Config{
			Stage:  stage,
			Layers: layers,
		},
	}
}

// normalizeStage applies stage defaults. Non-positive dimensions fall
// back silently; an unrecognized origin falls back with a warning.
func normalizeStage(raw *StageConfig, col *issueCollector) Stage {
	stage := Stage{
		Width:  DefaultStageWidth,
		Height: DefaultStageHeight,
		Origin: OriginCenter,
	}
	if raw == nil {
		return stage
	}
	if raw.Width > 0 {
		stage.Width = raw.Width
	}
	if raw.Height > 0 {
		stage.Height = raw.Height
	}
	switch raw.Origin {
	case "", "center":
		stage.Origin = OriginCenter
	case "top-left":
		stage.Origin = OriginTopLeft
	default:
		col.warnf(CodeStageOriginUnknown, "stage.origin",
			"unknown origin %q, using %q", raw.Origin, OriginCenter)
	}
	return stage
}

// normalizeLayer validates one raw layer. ok is false when the layer must
// be dropped entirely (identity or asset-reference errors). The check
// order is fixed: identity, asset, transform defaults, ranges, container,
// behaviors, events.
func normalizeLayer(raw LayerConfig, path string, stage Stage, seen map[string]bool, col *issueCollector) (Layer, bool) {
	if raw.LayerID == "" {
		col.errorf(CodeLayerIDMissing, path+".layerId", "layer id is required")
		return Layer{}, false
	}
	if seen[raw.LayerID] {
		col.errorf(CodeLayerIDDuplicate, path+".layerId", "duplicate layer id %q", raw.LayerID)
		return Layer{}, false
	}
	seen[raw.LayerID] = true

	ref, ok := normalizeAssetRef(raw, path, col)
	if !ok {
		return Layer{}, false
	}

	layer := Layer{
		ID:        raw.LayerID,
		Asset:     ref,
		Transform: normalizeTransform(raw, path, stage, col),
		Container: normalizeContainer(raw, path, col),
		Behaviors: normalizeBehaviors(raw.Behaviors, path+".behaviors", col),
		Events:    normalizeEventHooks(raw.Events, path+".events", col),
	}
	return layer, true
}

// normalizeAssetRef enforces the exactly-one-of rule on imagePath and
// registryKey.
func normalizeAssetRef(raw LayerConfig, path string, col *issueCollector) (AssetRef, bool) {
	hasPath := raw.ImagePath != ""
	hasKey := raw.RegistryKey != ""
	switch {
	case hasPath && hasKey:
		col.errorf(CodeLayerAssetInvalid, path, "both imagePath and registryKey provided")
		return nil, false
	case !hasPath && !hasKey:
		col.errorf(CodeLayerAssetInvalid, path, "neither imagePath nor registryKey provided")
		return nil, false
	case hasPath:
		return PathRef{Path: raw.ImagePath}, true
	default:
		return RegistryRef{Key: raw.RegistryKey}, true
	}
}

// normalizeTransform fills transform defaults and runs the advisory range
// checks. Out-of-range values are kept as authored.
func normalizeTransform(raw LayerConfig, path string, stage Stage, col *issueCollector) Transform {
	t := Transform{
		Position: DefaultPlacement(stage),
		Scale:    defaultScale,
		Angle:    DefaultAngle,
		Anchor:   defaultAnchor,
		Opacity:  DefaultOpacity,
	}
	if raw.Position != nil {
		t.Position = *raw.Position
	}
	if raw.Scale != nil {
		t.Scale = raw.Scale.Vec2()
	}
	if raw.Angle != nil {
		t.Angle = *raw.Angle
	}
	if raw.Tilt != nil {
		t.Tilt = *raw.Tilt
	}
	if raw.Anchor != nil {
		t.Anchor = *raw.Anchor
	}
	if raw.Opacity != nil {
		t.Opacity = *raw.Opacity
	}

	if t.Opacity < 0 || t.Opacity > 1 {
		col.warnf(CodeLayerOpacityRange, path+".opacity",
			"opacity %v outside [0, 1]", t.Opacity)
	}
	if outsideUnit(t.Anchor.X) || outsideUnit(t.Anchor.Y) {
		col.warnf(CodeLayerAnchorRange, path+".anchor",
			"anchor (%v, %v) outside [0, 1]", t.Anchor.X, t.Anchor.Y)
	}
	return t
}

func outsideUnit(v float64) bool {
	return v < 0 || v > 1
}

// normalizeContainer materializes the container when any of layerWidth,
// layerHeight, fitMode, or alignment is present. Fit or alignment without
// both positive finite dimensions is an error, as are non-positive
// dimensions when both are given.
func normalizeContainer(raw LayerConfig, path string, col *issueCollector) *Container {
	hasW := raw.LayerWidth != nil
	hasH := raw.LayerHeight != nil
	fitSpecified := raw.FitMode != "" || raw.Alignment != ""
	if !hasW && !hasH && !fitSpecified {
		return nil
	}

	c := &Container{FitMode: defaultFitMode, Alignment: defaultAlignment}
	if hasW {
		c.Width = *raw.LayerWidth
	}
	if hasH {
		c.Height = *raw.LayerHeight
	}

	if raw.FitMode != "" {
		if mode, ok := parseFitMode(raw.FitMode); ok {
			c.FitMode = mode
		} else {
			col.warnf(CodeLayerContainerInvalid, path+".fitMode",
				"unknown fit mode %q, using %q", raw.FitMode, defaultFitMode)
		}
	}
	if raw.Alignment != "" {
		if align, ok := parseAlignment(raw.Alignment); ok {
			c.Alignment = align
		} else {
			col.warnf(CodeLayerContainerInvalid, path+".alignment",
				"unknown alignment %q, using %q", raw.Alignment, defaultAlignment)
		}
	}

	if fitSpecified && !sizeUsable(c.Width, c.Height) {
		col.errorf(CodeLayerContainerInvalid, path,
			"fitMode/alignment require positive layerWidth and layerHeight")
	} else if hasW && hasH && (c.Width <= 0 || c.Height <= 0 ||
		math.IsNaN(c.Width) || math.IsNaN(c.Height)) {
		col.errorf(CodeLayerContainerInvalid, path,
			"layerWidth and layerHeight must be positive, got %v x %v", c.Width, c.Height)
	}
	return c
}

func parseFitMode(s string) (FitMode, bool) {
	switch s {
	case "contain":
		return FitContain, true
	case "cover":
		return FitCover, true
	case "stretch":
		return FitStretch, true
	default:
		return 0, false
	}
}

func parseAlignment(s string) (Alignment, bool) {
	switch s {
	case "center":
		return AlignCenter, true
	case "top":
		return AlignTop, true
	case "bottom":
		return AlignBottom, true
	case "left":
		return AlignLeft, true
	case "right":
		return AlignRight, true
	case "top-left":
		return AlignTopLeft, true
	case "top-right":
		return AlignTopRight, true
	case "bottom-left":
		return AlignBottomLeft, true
	case "bottom-right":
		return AlignBottomRight, true
	default:
		return 0, false
	}
}

// normalizeBehaviors fills per-behavior defaults and warns on negative
// rates without clamping them. The result is always a complete record.
func normalizeBehaviors(raw *BehaviorsConfig, path string, col *issueCollector) Behaviors {
	b := defaultBehaviors()
	if raw == nil {
		return b
	}

	if s := raw.Spin; s != nil {
		if s.Enabled != nil {
			b.Spin.Enabled = *s.Enabled
		}
		if s.RPM != nil {
			b.Spin.RPM = *s.RPM
		}
		switch s.Direction {
		case "":
		case "cw":
			b.Spin.Direction = DirectionCW
		case "ccw":
			b.Spin.Direction = DirectionCCW
		default:
			col.warnf(CodeBehaviorDirectionUnknown, path+".spin.direction",
				"unknown direction %q, using %q", s.Direction, DirectionCW)
		}
		warnNegative(b.Spin.RPM, path+".spin.rpm", col)
	}

	if o := raw.Orbit; o != nil {
		if o.Enabled != nil {
			b.Orbit.Enabled = *o.Enabled
		}
		if o.RPM != nil {
			b.Orbit.RPM = *o.RPM
		}
		if o.Radius != nil {
			b.Orbit.Radius = *o.Radius
		}
		if o.Center != nil {
			c := *o.Center
			b.Orbit.Center = &c
		}
		warnNegative(b.Orbit.RPM, path+".orbit.rpm", col)
		warnNegative(b.Orbit.Radius, path+".orbit.radius", col)
	}

	if p := raw.Pulse; p != nil {
		if p.Enabled != nil {
			b.Pulse.Enabled = *p.Enabled
		}
		if p.Amplitude != nil {
			b.Pulse.Amplitude = *p.Amplitude
		}
		if p.RPM != nil {
			b.Pulse.RPM = *p.RPM
		}
		warnNegative(b.Pulse.RPM, path+".pulse.rpm", col)
		warnNegative(b.Pulse.Amplitude, path+".pulse.amplitude", col)
	}

	if f := raw.Fade; f != nil {
		if f.Enabled != nil {
			b.Fade.Enabled = *f.Enabled
		}
		if f.From != nil {
			b.Fade.From = *f.From
		}
		if f.To != nil {
			b.Fade.To = *f.To
		}
		if f.RPM != nil {
			b.Fade.RPM = *f.RPM
		}
		warnNegative(b.Fade.RPM, path+".fade.rpm", col)
	}

	return b
}

// warnNegative records the advisory warning for negative rates. The value
// itself is untouched; behaviors treat non-positive rates as no-ops at
// evaluation time.
func warnNegative(v float64, path string, col *issueCollector) {
	if v < 0 {
		col.warnf(CodeBehaviorRateNegative, path, "negative value %v", v)
	}
}
