package makeup

import (
	"github.com/kozaktomas/makeup-tryon/internal/canvas"
	"github.com/kozaktomas/makeup-tryon/internal/face"
	"github.com/kozaktomas/makeup-tryon/internal/palette"
)

// Renderer draws one feature. Implementations only add layers to the canvas
// and never modify the face or configuration they are given.
type Renderer interface {
	Feature() palette.Feature
	Render(c canvas.Canvas, f *face.Face, cfg Config, look palette.Look)
}

// NoOp is a renderer for features whose settings are kept but not drawn.
type NoOp struct {
	feature palette.Feature
}

func NewNoOp(f palette.Feature) NoOp { return NoOp{feature: f} }

func (n NoOp) Feature() palette.Feature { return n.feature }

func (NoOp) Render(canvas.Canvas, *face.Face, Config, palette.Look) {}

// Renderers returns one renderer per feature in layering order.
func Renderers() []Renderer {
	return []Renderer{
		Foundation{},
		Contour{},
		Blush{},
		Eyeshadow{},
		NewNoOp(palette.FeatureEyeliner),
		NewNoOp(palette.FeatureMascara),
		NewNoOp(palette.FeatureBrows),
		Lipstick{},
	}
}

func solid(c palette.RGBA) canvas.Solid {
	return canvas.Solid{Color: c}
}
