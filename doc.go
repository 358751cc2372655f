// Package stagekit computes, per time sample, the visual transform of a
// set of declaratively configured layers stacked on a fixed-size 2D stage.
//
// A layer's position, rotation, scale, and opacity are driven by four
// time-parameterized behaviors — spin, orbit, pulse, and fade — plus
// event-triggered overrides. Stagekit is the pure-computation half of a
// layered renderer: it validates and normalizes untrusted configuration,
// resolves asset references against a caller-owned registry, and composes
// the final per-layer transforms. It performs no I/O and keeps no state
// between calls.
//
// # Quick start
//
// Parse a config, build a [ProcessingContext], and produce layers:
//
//	cfg, err := stagekit.ParseConfig(data)
//	if err != nil { ... }
//
//	out, err := stagekit.ProduceLayers(cfg, stagekit.ProcessingContext{
//		Time:     elapsedSeconds,
//		Registry: registry,
//	})
//	for _, layer := range out.Layers {
//		m := stagekit.LayerMatrix(layer.Transform, layer.Asset.Width, layer.Asset.Height)
//		// hand m to your renderer
//	}
//
// Call [ProduceLayers] once per frame with a caller-controlled, monotonic
// time value. Every call is an independent pure computation, so concurrent
// invocations are safe as long as the registry is not mutated mid-call.
//
// # Validation
//
// [Validate] converts a raw [LibraryConfig] into a fully-defaulted
// normalized form, collecting [Issue] errors and warnings. Validation is
// atomic: any error anywhere in the config fails the whole call and no
// partial normalized output is surfaced. Warnings (out-of-range opacity,
// negative behavior rates, unknown stage origins) never block success and
// never alter the supplied values.
//
// # Behaviors
//
// Each behavior is a pure function of elapsed time on a single transform
// channel: spin → angle, orbit → position, pulse → scale, fade → opacity.
// All rates are expressed in rotations per minute. [Compose] builds
// restricted pipelines that run only a subset of the behaviors.
//
// # Rendering
//
// Stagekit does not render. The stagekit/preview package contains a
// minimal [Ebitengine] adapter that draws produced layers, mostly as a
// reference for integrating a real backend.
//
// [Ebitengine]: https://ebitengine.org
package stagekit
