package stagekit

// Vec2 is a 2D vector used for positions, offsets, sizes, and anchors
// throughout the API.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin
// at the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// unknownStr is the String() fallback for out-of-range enum values.
const unknownStr = "Unknown"

// Origin selects which coordinate frame stage positions are authored in.
type Origin uint8

const (
	OriginCenter  Origin = iota // (0,0) at the stage center, Y down
	OriginTopLeft               // (0,0) at the stage top-left corner
)

// String returns a human-readable name for the origin.
func (o Origin) String() string {
	switch o {
	case OriginCenter:
		return "center"
	case OriginTopLeft:
		return "top-left"
	default:
		return unknownStr
	}
}

// FitMode controls how an asset's natural size maps into a container box.
type FitMode uint8

const (
	FitContain FitMode = iota // scale by min ratio; whole image visible
	FitCover                  // scale by max ratio; container fully covered
	FitStretch                // ignore aspect ratio; use container size
)

// String returns a human-readable name for the fit mode.
func (f FitMode) String() string {
	switch f {
	case FitContain:
		return "contain"
	case FitCover:
		return "cover"
	case FitStretch:
		return "stretch"
	default:
		return unknownStr
	}
}

// Alignment is one of nine anchor points used to offset a fitted image
// within its container.
type Alignment uint8

const (
	AlignCenter Alignment = iota
	AlignTop
	AlignBottom
	AlignLeft
	AlignRight
	AlignTopLeft
	AlignTopRight
	AlignBottomLeft
	AlignBottomRight
)

// String returns a human-readable name for the alignment.
func (a Alignment) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignTop:
		return "top"
	case AlignBottom:
		return "bottom"
	case AlignLeft:
		return "left"
	case AlignRight:
		return "right"
	case AlignTopLeft:
		return "top-left"
	case AlignTopRight:
		return "top-right"
	case AlignBottomLeft:
		return "bottom-left"
	case AlignBottomRight:
		return "bottom-right"
	default:
		return unknownStr
	}
}

// Direction is the rotation direction for spin.
type Direction uint8

const (
	DirectionCW  Direction = iota // clockwise (positive angles)
	DirectionCCW                  // counter-clockwise (negative angles)
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirectionCW:
		return "cw"
	case DirectionCCW:
		return "ccw"
	default:
		return unknownStr
	}
}

// Sign returns +1 for clockwise and -1 for counter-clockwise.
func (d Direction) Sign() float64 {
	if d == DirectionCCW {
		return -1
	}
	return 1
}

// BehaviorKind identifies one of the four behavior channels.
type BehaviorKind uint8

const (
	BehaviorSpin  BehaviorKind = iota // rotation channel
	BehaviorOrbit                     // position channel
	BehaviorPulse                     // scale channel
	BehaviorFade                      // opacity channel
)

// String returns a human-readable name for the behavior kind.
func (k BehaviorKind) String() string {
	switch k {
	case BehaviorSpin:
		return "spin"
	case BehaviorOrbit:
		return "orbit"
	case BehaviorPulse:
		return "pulse"
	case BehaviorFade:
		return "fade"
	default:
		return unknownStr
	}
}

// behaviorKindFromString maps a raw action/behavior name to its kind.
// ok is false for unrecognized names.
func behaviorKindFromString(s string) (BehaviorKind, bool) {
	switch s {
	case "spin":
		return BehaviorSpin, true
	case "orbit":
		return BehaviorOrbit, true
	case "pulse":
		return BehaviorPulse, true
	case "fade":
		return BehaviorFade, true
	default:
		return 0, false
	}
}
