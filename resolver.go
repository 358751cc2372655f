package stagekit

import (
	"fmt"
	"math"
)

// AssetMeta is the resolved, read-only snapshot of one asset: its source
// identifier, natural dimensions, and optional authored anchor and DPI.
// ResolveAsset always returns a copy, never a reference into the registry.
type AssetMeta struct {
	Src    string
	Width  float64
	Height float64
	Anchor *Vec2
	DPI    float64
}

// ResolveAsset looks up an asset reference against the caller-owned
// registry. Path references are intentionally left unresolved: the core
// performs no I/O, so their dimensions come back NaN for a caller-side
// loader to fill in. Registry references return a shallow clone of the
// stored metadata so downstream mutation cannot corrupt the registry.
//
// The registry is never mutated.
func ResolveAsset(ref AssetRef, registry map[string]AssetMeta) (AssetMeta, error) {
	switch r := ref.(type) {
	case PathRef:
		return AssetMeta{
			Src:    r.Path,
			Width:  math.NaN(),
			Height: math.NaN(),
		}, nil
	case RegistryRef:
		meta, ok := registry[r.Key]
		if !ok {
			return AssetMeta{}, fmt.Errorf("registry key %q not found", r.Key)
		}
		// Struct copy is the shallow clone; the Anchor pointer is shared.
		return meta, nil
	default:
		return AssetMeta{}, fmt.Errorf("unknown asset ref type: %T", ref)
	}
}
