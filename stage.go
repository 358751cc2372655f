package stagekit

// Stage is the fixed logical 2D canvas all layers are positioned within.
// Origin fixes which coordinate frame layer positions are authored in;
// conversions between the two frames use the stage half-extents.
//
// A Stage is supplied once per validation call and never mutated.
type Stage struct {
	Width  float64
	Height float64
	Origin Origin
}

// halfExtents returns (width/2, height/2).
func (s Stage) halfExtents() Vec2 {
	return Vec2{s.Width / 2, s.Height / 2}
}

// ToCenter converts a point from top-left-origin coordinates to
// center-origin coordinates.
func (s Stage) ToCenter(p Vec2) Vec2 {
	return p.Sub(s.halfExtents())
}

// ToTopLeft converts a point from center-origin coordinates to
// top-left-origin coordinates.
func (s Stage) ToTopLeft(p Vec2) Vec2 {
	return p.Add(s.halfExtents())
}

// Center returns the stage center expressed in the stage's own frame:
// (0,0) for a center-origin stage, the half-extents for a top-left one.
func (s Stage) Center() Vec2 {
	if s.Origin == OriginCenter {
		return Vec2{}
	}
	return s.halfExtents()
}

// Bounds returns the stage rectangle in the stage's own frame.
func (s Stage) Bounds() Rect {
	if s.Origin == OriginCenter {
		half := s.halfExtents()
		return Rect{X: -half.X, Y: -half.Y, Width: s.Width, Height: s.Height}
	}
	return Rect{Width: s.Width, Height: s.Height}
}

// DefaultPlacement returns the canonical spawn point for a new layer:
// the stage center, expressed in the stage's frame.
func DefaultPlacement(s Stage) Vec2 {
	return s.Center()
}
