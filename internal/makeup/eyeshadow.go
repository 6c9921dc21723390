package makeup

import (
	"github.com/kozaktomas/makeup-tryon/internal/canvas"
	"github.com/kozaktomas/makeup-tryon/internal/face"
	"github.com/kozaktomas/makeup-tryon/internal/palette"
)

var (
	smokeEdge  = palette.RGBA{A: 0.7}
	haloCenter = palette.RGBA{R: 255, G: 250, B: 240, A: 1}
)

// Eyeshadow dispatches on the eyeshadow style and draws both eyes from the
// same mirrored description.
type Eyeshadow struct{}

func (Eyeshadow) Feature() palette.Feature { return palette.FeatureEyeshadow }

func (Eyeshadow) Render(c canvas.Canvas, f *face.Face, cfg Config, look palette.Look) {
	col := palette.Eyeshadow(cfg.Eyeshadow.Color, look)
	i := palette.Clamp01(cfg.Eyeshadow.Intensity)

	draw := naturalShadow
	switch cfg.Eyeshadow.Style {
	case palette.EyeSmokey:
		draw = smokeyShadow
	case palette.EyeCutCrease:
		// No dedicated crease shape yet; it renders as smokey.
		draw = smokeyShadow
	case palette.EyeCat:
		draw = catShadow
	case palette.EyeHalo:
		draw = haloShadow
	}

	for _, side := range face.Sides {
		draw(c, face.Eye(f.Landmarks, side), col, i)
	}
}

func naturalShadow(c canvas.Canvas, e face.EyeFrame, col palette.RGBA, i float64) {
	w := e.Width
	p := canvas.NewPath().Ellipse(e.Center.X, e.Center.Y-w*0.15, w*0.9, w*0.6, 0)
	c.Fill(p, solid(col), canvas.Options{Alpha: i * 0.7, Blur: 10})
}

// smokeyShadow lifts over the upper lid and extends past the outer corner,
// darkening outward.
func smokeyShadow(c canvas.Canvas, e face.EyeFrame, col palette.RGBA, i float64) {
	w, ctr := e.Width, e.Center
	p := canvas.NewPath().
		MoveTo(e.UpperOuter.X, e.UpperOuter.Y-w*0.3).
		QuadTo(ctr.X, e.UpperOuter.Y-w*0.7, e.Out(e.Outer.X, w*0.5), e.Outer.Y).
		LineTo(e.Inner.X, e.Inner.Y).
		QuadTo(ctr.X, e.Inner.Y+w*0.2, e.UpperInner.X, e.UpperInner.Y).
		Close()
	g := canvas.RadialGradient{CX: ctr.X, CY: ctr.Y, R: w * 1.2, Stops: []canvas.Stop{
		{Offset: 0, Color: col},
		{Offset: 1, Color: smokeEdge},
	}}
	c.Fill(p, g, canvas.Options{Alpha: i * 0.9, Blur: 8})
}

// catShadow sweeps from the inner corner to a lifted wing past the outer
// corner.
func catShadow(c canvas.Canvas, e face.EyeFrame, col palette.RGBA, i float64) {
	w, ctr := e.Width, e.Center
	tipX, tipY := e.Out(e.Outer.X, w*0.7), e.Outer.Y-w*0.3
	p := canvas.NewPath().
		MoveTo(e.UpperOuter.X, e.UpperOuter.Y).
		QuadTo(ctr.X, e.UpperOuter.Y-w*0.5, tipX, tipY).
		LineTo(e.Outer.X, e.Outer.Y).
		LineTo(e.Inner.X, e.Inner.Y).
		QuadTo(ctr.X, ctr.Y+w*0.1, e.LowerInner.X, e.LowerInner.Y).
		Close()
	g := canvas.LinearGradient{X0: e.Inner.X, Y0: e.Inner.Y, X1: tipX, Y1: tipY, Stops: []canvas.Stop{
		{Offset: 0, Color: col.WithAlpha(0.4)},
		{Offset: 1, Color: col},
	}}
	c.Fill(p, g, canvas.Options{Alpha: i * 0.8, Blur: 5})
}

// haloShadow darkens both corners and leaves a light spot over the lid
// center.
func haloShadow(c canvas.Canvas, e face.EyeFrame, col palette.RGBA, i float64) {
	w := e.Width
	y := e.Center.Y - w*0.1
	corners := canvas.NewPath().
		Ellipse(e.Outer.X, y, w*0.4, w*0.5, 0).
		Ellipse(e.Inner.X, y, w*0.4, w*0.5, 0)
	c.Fill(corners, solid(col), canvas.Options{Alpha: i * 0.8, Blur: 6})

	center := canvas.NewPath().Ellipse(e.Center.X, y, w*0.3, w*0.4, 0)
	c.Fill(center, solid(haloCenter.WithAlpha(col.A*0.9)), canvas.Options{Alpha: i * 0.8, Blur: 3})
}
