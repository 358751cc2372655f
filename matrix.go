package stagekit

import "math"

// IdentityMatrix is the identity affine matrix.
var IdentityMatrix = [6]float64{1, 0, 0, 1, 0, 0}

// LayerMatrix builds the local affine matrix for a layer transform so a
// renderer can consume produced layers directly. Returns [a, b, c, d, tx,
// ty]. The anchor is converted to a pixel pivot against the given display
// size; tilt degrees map onto the skew terms as the 2D projection of the
// out-of-plane rotation.
//
// Composition order:
//
//	Translate(-pivot) -> Scale -> Skew(tilt) -> Rotate(angle) -> Translate(position)
func LayerMatrix(t Transform, displayW, displayH float64) [6]float64 {
	sx := t.Scale.X
	sy := t.Scale.Y

	var px, py float64
	if finite(displayW) && finite(displayH) {
		px = t.Anchor.X * displayW
		py = t.Anchor.Y * displayH
	}

	sin, cos := math.Sincos(t.Angle * math.Pi / 180)

	var tanTiltX, tanTiltY float64
	if t.Tilt.X != 0 {
		tanTiltX = math.Tan(t.Tilt.X * math.Pi / 180)
	}
	if t.Tilt.Y != 0 {
		tanTiltY = math.Tan(t.Tilt.Y * math.Pi / 180)
	}

	// After Scale * Translate(-pivot), then Skew:
	a := sx
	b := tanTiltY * sx
	c := tanTiltX * sy
	d := sy

	preTx := -px*sx - tanTiltX*py*sy
	preTy := -tanTiltY*px*sx - py*sy

	// After Rotate:
	ra := cos*a - sin*b
	rb := sin*a + cos*b
	rc := cos*c - sin*d
	rd := sin*c + cos*d
	rtx := cos*preTx - sin*preTy
	rty := sin*preTx + cos*preTy

	// After Translate(position):
	return [6]float64{ra, rb, rc, rd, rtx + t.Position.X, rty + t.Position.Y}
}

// MultiplyAffine multiplies two 2D affine matrices: result = outer * inner.
//
//	Matrix layout: [a, b, c, d, tx, ty]
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
func MultiplyAffine(outer, inner [6]float64) [6]float64 {
	return [6]float64{
		outer[0]*inner[0] + outer[2]*inner[1],
		outer[1]*inner[0] + outer[3]*inner[1],
		outer[0]*inner[2] + outer[2]*inner[3],
		outer[1]*inner[2] + outer[3]*inner[3],
		outer[0]*inner[4] + outer[2]*inner[5] + outer[4],
		outer[1]*inner[4] + outer[3]*inner[5] + outer[5],
	}
}

// InvertAffine computes the inverse of a 2D affine matrix. Returns the
// identity matrix if the matrix is singular (determinant ≈ 0).
func InvertAffine(m [6]float64) [6]float64 {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return IdentityMatrix
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return [6]float64{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// ApplyAffine applies an affine matrix to a point.
func ApplyAffine(m [6]float64, p Vec2) Vec2 {
	return Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}
