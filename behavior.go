package stagekit

import "math"

// The four behavior functions. Each is a pure mapping from (previous
// transform, config, elapsed seconds) to a patched transform on exactly
// one channel: spin → angle, orbit → position, pulse → scale,
// fade → opacity. A behavior returns prev unchanged when it is disabled,
// its rate (and radius/amplitude where applicable) is non-positive, or
// the elapsed time is not finite.
//
// All rates are rotations per minute: one full cycle every 60/rpm
// seconds.

// ApplySpin rotates the layer: cw adds degrees, ccw subtracts.
// At rpm=60, t=1s is exactly one full turn.
func ApplySpin(prev Transform, cfg SpinConfig, t float64) Transform {
	if !cfg.Enabled || cfg.RPM <= 0 || !finite(t) {
		return prev
	}
	prev.Angle += cfg.Direction.Sign() * cfg.RPM * 360 * t / 60
	return prev
}

// ApplyOrbit places the layer on a circle of cfg.Radius around
// cfg.Center, or around base when cfg.Center is nil. The result is an
// absolute position on the circle, not an offset from prev.Position: at
// t=0 the layer sits at center + (radius, 0).
func ApplyOrbit(prev Transform, cfg OrbitConfig, base Vec2, t float64) Transform {
	if !cfg.Enabled || cfg.RPM <= 0 || cfg.Radius <= 0 || !finite(t) {
		return prev
	}
	center := base
	if cfg.Center != nil {
		center = *cfg.Center
	}
	theta := cfg.RPM * 360 * t / 60 * math.Pi / 180
	prev.Position = Vec2{
		X: center.X + cfg.Radius*math.Cos(theta),
		Y: center.Y + cfg.Radius*math.Sin(theta),
	}
	return prev
}

// ApplyPulse scales the layer by 1 + amplitude·sin(2π·rpm·t/60),
// uniformly on both axes so a non-uniform base scale keeps its aspect
// ratio.
func ApplyPulse(prev Transform, cfg PulseConfig, t float64) Transform {
	if !cfg.Enabled || cfg.RPM <= 0 || cfg.Amplitude <= 0 || !finite(t) {
		return prev
	}
	factor := 1 + cfg.Amplitude*math.Sin(2*math.Pi*cfg.RPM*t/60)
	prev.Scale = Vec2{prev.Scale.X * factor, prev.Scale.Y * factor}
	return prev
}

// ApplyFade oscillates opacity between From and To, clamping the result
// to [0, 1]. The sine phase starts at zero, so at t=0 the opacity is the
// midpoint of From and To, not From.
func ApplyFade(prev Transform, cfg FadeConfig, t float64) Transform {
	if !cfg.Enabled || cfg.RPM <= 0 || !finite(t) {
		return prev
	}
	t01 := (math.Sin(2*math.Pi*cfg.RPM*t/60) + 1) / 2
	prev.Opacity = clamp01(cfg.From + (cfg.To-cfg.From)*t01)
	return prev
}

// finite reports whether t is neither NaN nor infinite.
func finite(t float64) bool {
	return !math.IsNaN(t) && !math.IsInf(t, 0)
}

// clamp01 clamps v to [0, 1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
