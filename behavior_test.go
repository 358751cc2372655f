package stagekit

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertVec2(t *testing.T, name string, got, want Vec2) {
	t.Helper()
	if math.Abs(got.X-want.X) > epsilon || math.Abs(got.Y-want.Y) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

// baseTransform is a fully-populated starting transform for behavior tests.
func baseTransform() Transform {
	return Transform{
		Position: Vec2{10, 20},
		Scale:    Vec2{1, 1},
		Angle:    45,
		Anchor:   Vec2{0.5, 0.5},
		Opacity:  1,
	}
}

// --- Spin ---

func TestSpinFullTurnCW(t *testing.T) {
	cfg := SpinConfig{Enabled: true, RPM: 60, Direction: DirectionCW}
	got := ApplySpin(baseTransform(), cfg, 1)
	assertNear(t, "angle", got.Angle, 45+360)
}

func TestSpinFullTurnCCW(t *testing.T) {
	cfg := SpinConfig{Enabled: true, RPM: 60, Direction: DirectionCCW}
	got := ApplySpin(baseTransform(), cfg, 1)
	assertNear(t, "angle", got.Angle, 45-360)
}

func TestSpinHalfTurn(t *testing.T) {
	cfg := SpinConfig{Enabled: true, RPM: 30, Direction: DirectionCW}
	got := ApplySpin(baseTransform(), cfg, 1)
	assertNear(t, "angle", got.Angle, 45+180)
}

func TestSpinDisabledNoOp(t *testing.T) {
	cfg := SpinConfig{Enabled: false, RPM: 60, Direction: DirectionCW}
	prev := baseTransform()
	if got := ApplySpin(prev, cfg, 1); got != prev {
		t.Errorf("disabled spin changed transform: %+v", got)
	}
}

func TestSpinZeroRateNoOp(t *testing.T) {
	cfg := SpinConfig{Enabled: true, RPM: 0, Direction: DirectionCW}
	prev := baseTransform()
	if got := ApplySpin(prev, cfg, 1); got != prev {
		t.Errorf("zero-rpm spin changed transform: %+v", got)
	}
}

func TestSpinNegativeRateNoOp(t *testing.T) {
	cfg := SpinConfig{Enabled: true, RPM: -60, Direction: DirectionCW}
	prev := baseTransform()
	if got := ApplySpin(prev, cfg, 1); got != prev {
		t.Errorf("negative-rpm spin changed transform: %+v", got)
	}
}

func TestSpinNonFiniteTimeNoOp(t *testing.T) {
	cfg := SpinConfig{Enabled: true, RPM: 60, Direction: DirectionCW}
	prev := baseTransform()
	for _, bad := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if got := ApplySpin(prev, cfg, bad); got != prev {
			t.Errorf("spin at t=%v changed transform: %+v", bad, got)
		}
	}
}

// --- Orbit ---

func TestOrbitQuarterTurn(t *testing.T) {
	cfg := OrbitConfig{Enabled: true, RPM: 60, Radius: 100}
	got := ApplyOrbit(baseTransform(), cfg, Vec2{0, 0}, 0.25)
	assertVec2(t, "position", got.Position, Vec2{0, 100})
}

func TestOrbitStartIsAbsolute(t *testing.T) {
	// At t=0 the layer jumps onto the circle at center + (radius, 0),
	// regardless of its previous position.
	cfg := OrbitConfig{Enabled: true, RPM: 60, Radius: 100}
	got := ApplyOrbit(baseTransform(), cfg, Vec2{5, 5}, 0)
	assertVec2(t, "position", got.Position, Vec2{105, 5})
}

func TestOrbitExplicitCenterWins(t *testing.T) {
	cfg := OrbitConfig{Enabled: true, RPM: 60, Radius: 10, Center: &Vec2{100, 200}}
	got := ApplyOrbit(baseTransform(), cfg, Vec2{0, 0}, 0)
	assertVec2(t, "position", got.Position, Vec2{110, 200})
}

func TestOrbitZeroRadiusNoOp(t *testing.T) {
	cfg := OrbitConfig{Enabled: true, RPM: 60, Radius: 0}
	prev := baseTransform()
	if got := ApplyOrbit(prev, cfg, Vec2{0, 0}, 1); got != prev {
		t.Errorf("zero-radius orbit changed transform: %+v", got)
	}
}

func TestOrbitDisabledNoOp(t *testing.T) {
	cfg := OrbitConfig{Enabled: false, RPM: 60, Radius: 100}
	prev := baseTransform()
	if got := ApplyOrbit(prev, cfg, Vec2{0, 0}, 1); got != prev {
		t.Errorf("disabled orbit changed transform: %+v", got)
	}
}

// --- Pulse ---

func TestPulsePeakFactor(t *testing.T) {
	// Sine peak at a quarter cycle: factor = 1 + 0.5 = 1.5.
	cfg := PulseConfig{Enabled: true, Amplitude: 0.5, RPM: 60}
	prev := baseTransform()
	prev.Scale = Vec2{2, 3}
	got := ApplyPulse(prev, cfg, 0.25)
	assertVec2(t, "scale", got.Scale, Vec2{3, 4.5})
}

func TestPulseUniformOnBothAxes(t *testing.T) {
	cfg := PulseConfig{Enabled: true, Amplitude: 0.25, RPM: 60}
	prev := baseTransform()
	prev.Scale = Vec2{1, 4}
	got := ApplyPulse(prev, cfg, 0.25)
	assertNear(t, "aspect", got.Scale.Y/got.Scale.X, 4)
}

func TestPulseZeroAtFullCycle(t *testing.T) {
	cfg := PulseConfig{Enabled: true, Amplitude: 0.5, RPM: 60}
	prev := baseTransform()
	got := ApplyPulse(prev, cfg, 1)
	assertVec2(t, "scale", got.Scale, prev.Scale)
}

func TestPulseZeroAmplitudeNoOp(t *testing.T) {
	cfg := PulseConfig{Enabled: true, Amplitude: 0, RPM: 60}
	prev := baseTransform()
	if got := ApplyPulse(prev, cfg, 0.25); got != prev {
		t.Errorf("zero-amplitude pulse changed transform: %+v", got)
	}
}

// --- Fade ---

func TestFadeMidpointAtZero(t *testing.T) {
	cfg := FadeConfig{Enabled: true, From: 0.2, To: 0.8, RPM: 60}
	got := ApplyFade(baseTransform(), cfg, 0)
	assertNear(t, "opacity", got.Opacity, 0.5)
}

func TestFadePeaksAndTroughs(t *testing.T) {
	cfg := FadeConfig{Enabled: true, From: 0.2, To: 0.8, RPM: 60}
	got := ApplyFade(baseTransform(), cfg, 0.25)
	assertNear(t, "opacity at peak", got.Opacity, 0.8)
	got = ApplyFade(baseTransform(), cfg, 0.75)
	assertNear(t, "opacity at trough", got.Opacity, 0.2)
}

func TestFadeClampsEvaluatedValue(t *testing.T) {
	// Endpoints outside [0,1] are legal config; only the evaluated
	// opacity is clamped.
	cfg := FadeConfig{Enabled: true, From: -1, To: 2, RPM: 60}
	got := ApplyFade(baseTransform(), cfg, 0.25)
	assertNear(t, "clamped high", got.Opacity, 1)
	got = ApplyFade(baseTransform(), cfg, 0.75)
	assertNear(t, "clamped low", got.Opacity, 0)
}

func TestFadeDisabledNoOp(t *testing.T) {
	cfg := FadeConfig{Enabled: false, From: 0, To: 1, RPM: 60}
	prev := baseTransform()
	if got := ApplyFade(prev, cfg, 0.25); got != prev {
		t.Errorf("disabled fade changed transform: %+v", got)
	}
}

func TestFadeNonFiniteTimeNoOp(t *testing.T) {
	cfg := FadeConfig{Enabled: true, From: 0, To: 1, RPM: 60}
	prev := baseTransform()
	if got := ApplyFade(prev, cfg, math.NaN()); got != prev {
		t.Errorf("fade at NaN time changed transform: %+v", got)
	}
}
