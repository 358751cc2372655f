// Package preview is a minimal Ebitengine adapter for stagekit: it runs
// the produce pipeline once per frame with an advancing clock and draws
// each layer with its composed transform.
//
// Preview exists as a reference integration and a quick way to eyeball a
// config; a real renderer owns asset loading, batching, and quality
// scaling itself and consumes stagekit.LayerData the same way.
package preview

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/stagekit"
)

// fallbackSize is the on-screen size used for layers whose asset
// dimensions are unknown (path refs before a loader fills them in).
const fallbackSize = 64.0

// Preview implements ebiten.Game over a stagekit config.
type Preview struct {
	cfg      stagekit.LibraryConfig
	registry map[string]stagekit.AssetMeta
	images   map[string]*ebiten.Image

	width   int
	height  int
	elapsed float64
	white   *ebiten.Image
	err     error
}

// New creates a Preview with the given window size. images maps
// AssetMeta.Src to a loaded texture; layers without one draw as solid
// white quads.
func New(cfg stagekit.LibraryConfig, registry map[string]stagekit.AssetMeta, images map[string]*ebiten.Image, width, height int) *Preview {
	white := ebiten.NewImage(1, 1)
	white.Fill(color.White)
	return &Preview{
		cfg:      cfg,
		registry: registry,
		images:   images,
		width:    width,
		height:   height,
		white:    white,
	}
}

// SetConfig swaps in a new config, e.g. from a stagekit.Watcher reload.
func (p *Preview) SetConfig(cfg stagekit.LibraryConfig) {
	p.cfg = cfg
}

// Update advances the preview clock by one tick.
func (p *Preview) Update() error {
	p.elapsed += 1.0 / float64(ebiten.TPS())
	return p.err
}

// Draw produces the layers for the current clock and paints them in
// z order.
func (p *Preview) Draw(screen *ebiten.Image) {
	out, err := stagekit.ProduceLayers(p.cfg, stagekit.ProcessingContext{
		Time:     p.elapsed,
		Registry: p.registry,
	})
	if err != nil {
		p.err = fmt.Errorf("preview: %w", err)
		return
	}

	// Stage positions are center-origin by default; map them onto the
	// screen's top-left frame.
	stage := stagekit.Stage{
		Width:  float64(p.width),
		Height: float64(p.height),
		Origin: stagekit.OriginCenter,
	}

	for _, layer := range out.Layers {
		p.drawLayer(screen, stage, layer)
	}
}

func (p *Preview) drawLayer(screen *ebiten.Image, stage stagekit.Stage, layer stagekit.LayerData) {
	if !layer.State.IsVisible {
		return
	}

	img := p.images[layer.Asset.Src]
	assetW, assetH := layer.Asset.Width, layer.Asset.Height
	if img != nil {
		b := img.Bounds()
		if !(assetW > 0) || !(assetH > 0) {
			assetW, assetH = float64(b.Dx()), float64(b.Dy())
		}
	} else {
		img = p.white
		if !(assetW > 0) || !(assetH > 0) {
			assetW, assetH = fallbackSize, fallbackSize
		}
	}

	fit := stagekit.FitImage(assetW, assetH, layer.Container, layer.Transform.Anchor)
	dw, dh := fit.DisplayWidth, fit.DisplayHeight
	if dw <= 0 || dh <= 0 {
		return
	}

	t := layer.Transform
	t.Position = stage.ToTopLeft(t.Position).Add(fit.Offset)
	m := stagekit.LayerMatrix(t, dw, dh)

	op := &ebiten.DrawImageOptions{}
	b := img.Bounds()
	op.GeoM.Scale(dw/float64(b.Dx()), dh/float64(b.Dy()))
	op.GeoM.Concat(geoM(m))
	alpha := t.Opacity
	if alpha < 0 {
		alpha = 0
	} else if alpha > 1 {
		alpha = 1
	}
	op.ColorScale.ScaleAlpha(float32(alpha))
	screen.DrawImage(img, op)
}

// Layout reports the fixed logical screen size.
func (p *Preview) Layout(_, _ int) (int, int) {
	return p.width, p.height
}

// Run opens a window and runs the preview until the window closes.
func Run(title string, p *Preview) error {
	ebiten.SetWindowSize(p.width, p.height)
	ebiten.SetWindowTitle(title)
	return ebiten.RunGame(p)
}

// geoM converts a stagekit affine matrix to an ebiten.GeoM.
func geoM(m [6]float64) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, m[0])
	g.SetElement(0, 1, m[2])
	g.SetElement(0, 2, m[4])
	g.SetElement(1, 0, m[1])
	g.SetElement(1, 1, m[3])
	g.SetElement(1, 2, m[5])
	return g
}
