package stagekit

import (
	"fmt"
	"strings"
)

// ProcessingContext carries the per-call collaborator inputs: the stage,
// the elapsed time in seconds (a caller-controlled monotonically
// increasing value, never derived from the wall clock here), and the
// caller-owned asset registry. A zero-valued Stage defers to the stage
// from the validated config.
type ProcessingContext struct {
	Stage    Stage
	Time     float64
	Registry map[string]AssetMeta
}

// LayerState is the interaction state attached to each produced layer.
// The core never drives hover/press/active; those belong to the caller's
// event wiring.
type LayerState struct {
	IsHovered bool
	IsPressed bool
	IsActive  bool
	IsVisible bool
}

// LayerData is one fully-composed output layer: resolved asset, final
// transform for this time sample, and the normalized behavior and event
// records for the caller's own use. ZIndex equals the layer's position in
// the input array and is never reassigned.
type LayerData struct {
	ID        string
	ZIndex    int
	Asset     AssetMeta
	Transform Transform
	Container *Container
	Behaviors Behaviors
	Events    *Events
	State     LayerState
}

// ProduceResult is the output of one pipeline invocation. Warnings are
// the validation warnings formatted as "path: message".
type ProduceResult struct {
	Layers   []LayerData
	Warnings []string
}

// ProduceLayers runs the full pipeline: validate, resolve every asset
// reference up front, apply the basic pass-through transform, then the
// four behaviors in fixed order (spin, orbit, pulse, fade), and assemble
// the output in input order.
//
// The call is all-or-nothing: an invalid config returns an aggregated
// "validation failed" error, and any asset resolution failure aborts with
// zero emitted layers. In this canonical path State.IsVisible is true
// unconditionally, even at zero opacity; see Compose for the variant that
// derives visibility from opacity.
func ProduceLayers(cfg LibraryConfig, ctx ProcessingContext) (*ProduceResult, error) {
	return produce(cfg, ctx, allBehaviors, false)
}

// Composer runs a restricted pipeline that applies only a selected subset
// of behaviors, useful for staged rollout or isolating one channel.
// Build one with Compose.
type Composer struct {
	enabled [4]bool
}

// Compose builds a Composer for the given behavior kinds. Duplicate
// selections are deduplicated; the execution order stays fixed at
// spin, orbit, pulse, fade regardless of argument order.
func Compose(kinds ...BehaviorKind) *Composer {
	c := &Composer{}
	for _, k := range kinds {
		c.enabled[k] = true
	}
	return c
}

// Produce runs the restricted pipeline. Unlike ProduceLayers, this
// variant derives State.IsVisible from the final opacity.
func (c *Composer) Produce(cfg LibraryConfig, ctx ProcessingContext) (*ProduceResult, error) {
	return produce(cfg, ctx, c.enabled, true)
}

// allBehaviors selects every behavior channel.
var allBehaviors = [4]bool{true, true, true, true}

// produce is the shared pipeline body.
func produce(cfg LibraryConfig, ctx ProcessingContext, enabled [4]bool, visibleFromOpacity bool) (*ProduceResult, error) {
	// A non-zero context stage overrides the config stage before
	// validation, so default placement math sees the caller's stage.
	if ctx.Stage != (Stage{}) {
		cfg.Stage = &StageConfig{
			Width:  ctx.Stage.Width,
			Height: ctx.Stage.Height,
			Origin: ctx.Stage.Origin.String(),
		}
	}

	res := Validate(cfg)
	if !res.OK {
		return nil, validationError(res.Errors)
	}
	normalized := res.Normalized

	// Resolve every asset before composing anything, so a bad reference
	// aborts with no partial output.
	assets := make([]AssetMeta, len(normalized.Layers))
	for i, layer := range normalized.Layers {
		meta, err := ResolveAsset(layer.Asset, ctx.Registry)
		if err != nil {
			return nil, err
		}
		assets[i] = meta
	}

	out := &ProduceResult{
		Layers:   make([]LayerData, 0, len(normalized.Layers)),
		Warnings: formatWarnings(res.Warnings),
	}
	for i, layer := range normalized.Layers {
		// Basic transform: identity pass-through of the normalized values.
		t := layer.Transform
		base := layer.Transform.Position

		if enabled[BehaviorSpin] {
			t = ApplySpin(t, layer.Behaviors.Spin, ctx.Time)
		}
		if enabled[BehaviorOrbit] {
			t = ApplyOrbit(t, layer.Behaviors.Orbit, base, ctx.Time)
		}
		if enabled[BehaviorPulse] {
			t = ApplyPulse(t, layer.Behaviors.Pulse, ctx.Time)
		}
		if enabled[BehaviorFade] {
			t = ApplyFade(t, layer.Behaviors.Fade, ctx.Time)
		}

		visible := true
		if visibleFromOpacity {
			visible = t.Opacity > 0
		}

		out.Layers = append(out.Layers, LayerData{
			ID:        layer.ID,
			ZIndex:    i,
			Asset:     assets[i],
			Transform: t,
			Container: layer.Container,
			Behaviors: layer.Behaviors,
			Events:    layer.Events,
			State:     LayerState{IsVisible: visible},
		})
	}
	return out, nil
}

// validationError aggregates validation errors into one error value:
// "validation failed: path: message; path: message".
func validationError(errs []Issue) error {
	parts := make([]string, len(errs))
	for i, issue := range errs {
		parts[i] = issue.String()
	}
	return fmt.Errorf("validation failed: %s", strings.Join(parts, "; "))
}

// formatWarnings renders validation warnings as "path: message" strings.
func formatWarnings(warnings []Issue) []string {
	if len(warnings) == 0 {
		return nil
	}
	out := make([]string, len(warnings))
	for i, w := range warnings {
		out[i] = w.String()
	}
	return out
}
