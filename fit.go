package stagekit

import "math"

// FitResult is the outcome of mapping an asset into its container:
// the on-stage display size, the alignment offset from the container
// center, and the anchor carried through unchanged.
type FitResult struct {
	DisplayWidth  float64
	DisplayHeight float64
	Offset        Vec2
	Anchor        Vec2
}

// FitImage computes how an asset of the given natural size maps into an
// optional container. With no container the asset passes through at
// natural size with zero offset. With a container, FitStretch uses the
// container size directly, FitContain scales by the smaller axis ratio,
// and FitCover by the larger; the offset places the image at one of the
// nine alignment points, expressed as ±half-container-extent per axis.
//
// FitImage never panics: non-finite or non-positive asset or container
// dimensions, or a container with only one dimension given, yield zero
// size and zero offset.
func FitImage(assetW, assetH float64, container *Container, anchor Vec2) FitResult {
	if container == nil {
		if !sizeUsable(assetW, assetH) {
			return FitResult{Anchor: anchor}
		}
		return FitResult{DisplayWidth: assetW, DisplayHeight: assetH, Anchor: anchor}
	}

	cw, ch := container.Width, container.Height
	if !sizeUsable(assetW, assetH) || !sizeUsable(cw, ch) {
		return FitResult{Anchor: anchor}
	}

	var dw, dh float64
	switch container.FitMode {
	case FitStretch:
		dw, dh = cw, ch
	case FitCover:
		s := math.Max(cw/assetW, ch/assetH)
		dw, dh = assetW*s, assetH*s
	default: // FitContain
		s := math.Min(cw/assetW, ch/assetH)
		dw, dh = assetW*s, assetH*s
	}

	return FitResult{
		DisplayWidth:  dw,
		DisplayHeight: dh,
		Offset:        alignmentOffset(container.Alignment, cw, ch),
		Anchor:        anchor,
	}
}

// sizeUsable reports whether both dimensions are finite and positive.
func sizeUsable(w, h float64) bool {
	return w > 0 && h > 0 &&
		!math.IsInf(w, 0) && !math.IsInf(h, 0) &&
		!math.IsNaN(w) && !math.IsNaN(h)
}

// alignmentOffset returns the offset from the container center for one of
// the nine alignment points. Y grows downward, so top is negative.
func alignmentOffset(a Alignment, cw, ch float64) Vec2 {
	hw, hh := cw/2, ch/2
	switch a {
	case AlignTop:
		return Vec2{0, -hh}
	case AlignBottom:
		return Vec2{0, hh}
	case AlignLeft:
		return Vec2{-hw, 0}
	case AlignRight:
		return Vec2{hw, 0}
	case AlignTopLeft:
		return Vec2{-hw, -hh}
	case AlignTopRight:
		return Vec2{hw, -hh}
	case AlignBottomLeft:
		return Vec2{-hw, hh}
	case AlignBottomRight:
		return Vec2{hw, hh}
	default: // AlignCenter
		return Vec2{}
	}
}
