package stagekit

import (
	"math"
	"testing"
)

func assertMatrix(t *testing.T, name string, got, want [6]float64) {
	t.Helper()
	for i := range got {
		if math.Abs(got[i]-want[i]) > epsilon {
			t.Errorf("%s[%d] = %v, want %v (full: %v vs %v)", name, i, got[i], want[i], got, want)
		}
	}
}

func TestLayerMatrixIdentity(t *testing.T) {
	tr := Transform{Scale: Vec2{1, 1}}
	assertMatrix(t, "identity", LayerMatrix(tr, 0, 0), IdentityMatrix)
}

func TestLayerMatrixTranslation(t *testing.T) {
	tr := Transform{Position: Vec2{10, 20}, Scale: Vec2{1, 1}}
	assertMatrix(t, "translation", LayerMatrix(tr, 0, 0), [6]float64{1, 0, 0, 1, 10, 20})
}

func TestLayerMatrixScale(t *testing.T) {
	tr := Transform{Scale: Vec2{2, 3}}
	assertMatrix(t, "scale", LayerMatrix(tr, 0, 0), [6]float64{2, 0, 0, 3, 0, 0})
}

func TestLayerMatrixRotation90(t *testing.T) {
	tr := Transform{Scale: Vec2{1, 1}, Angle: 90}
	// cos(90°)=0, sin(90°)=1 → a=0, b=1, c=-1, d=0
	assertMatrix(t, "rot90", LayerMatrix(tr, 0, 0), [6]float64{0, 1, -1, 0, 0, 0})
}

func TestLayerMatrixAnchorPivot(t *testing.T) {
	// Centered anchor on a 32x32 image pivots around (16, 16).
	tr := Transform{Position: Vec2{100, 200}, Scale: Vec2{1, 1}, Anchor: Vec2{0.5, 0.5}}
	assertMatrix(t, "pivot", LayerMatrix(tr, 32, 32), [6]float64{1, 0, 0, 1, 84, 184})
}

func TestLayerMatrixNaNSizeSkipsPivot(t *testing.T) {
	// Unresolved path-ref assets carry NaN dimensions; the pivot falls
	// back to the image origin instead of poisoning the matrix.
	tr := Transform{Position: Vec2{5, 6}, Scale: Vec2{1, 1}, Anchor: Vec2{0.5, 0.5}}
	assertMatrix(t, "nan size", LayerMatrix(tr, math.NaN(), math.NaN()), [6]float64{1, 0, 0, 1, 5, 6})
}

func TestLayerMatrixTiltSkews(t *testing.T) {
	// 45° tilt on X maps to a unit skew term.
	tr := Transform{Scale: Vec2{1, 1}, Tilt: Vec2{45, 0}}
	assertMatrix(t, "tilt", LayerMatrix(tr, 0, 0), [6]float64{1, 0, 1, 1, 0, 0})
}

func TestMultiplyAffineIdentity(t *testing.T) {
	m := [6]float64{2, 1, 3, 4, 5, 6}
	assertMatrix(t, "id*m", MultiplyAffine(IdentityMatrix, m), m)
	assertMatrix(t, "m*id", MultiplyAffine(m, IdentityMatrix), m)
}

func TestInvertAffineRoundtrip(t *testing.T) {
	tr := Transform{Position: Vec2{50, 100}, Scale: Vec2{2, 1}, Angle: 60}
	m := LayerMatrix(tr, 32, 32)
	assertMatrix(t, "m*inv", MultiplyAffine(m, InvertAffine(m)), IdentityMatrix)
}

func TestInvertAffineSingularReturnsIdentity(t *testing.T) {
	m := [6]float64{0, 0, 0, 1, 10, 20}
	assertMatrix(t, "singular", InvertAffine(m), IdentityMatrix)
}

func TestApplyAffine(t *testing.T) {
	m := [6]float64{2, 0, 0, 3, 10, 20}
	assertVec2(t, "point", ApplyAffine(m, Vec2{1, 1}), Vec2{12, 23})
}
