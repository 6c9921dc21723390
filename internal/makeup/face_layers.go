package makeup

import (
	"math"

	"github.com/kozaktomas/makeup-tryon/internal/canvas"
	"github.com/kozaktomas/makeup-tryon/internal/face"
	"github.com/kozaktomas/makeup-tryon/internal/palette"
)

// Foundation tints the whole face outline.
type Foundation struct{}

func (Foundation) Feature() palette.Feature { return palette.FeatureFoundation }

func (Foundation) Render(c canvas.Canvas, f *face.Face, cfg Config, _ palette.Look) {
	fc := cfg.Foundation
	col := palette.Foundation(fc.Shade).WithAlpha(palette.Clamp01(fc.Coverage) * 0.5)
	p := canvas.NewPath().Polygon(face.FacePolygon(f.Landmarks, f.Box))
	c.Fill(p, solid(col), canvas.Options{Alpha: 1, Blur: 15})
}

// Contour shades the jaw and nose sides and highlights the cheekbones.
type Contour struct{}

func (Contour) Feature() palette.Feature { return palette.FeatureContour }

func (Contour) Render(c canvas.Canvas, f *face.Face, cfg Config, _ palette.Look) {
	s := palette.ContourStrength(cfg.Contour.Level)
	lm, box := f.Landmarks, f.Box

	jaw := canvas.NewPath().Polyline(face.JawPolygon(lm))
	c.Stroke(jaw, box.Width*0.03, solid(palette.ContourShadow.WithAlpha(s)), canvas.Options{Alpha: 1, Blur: 15})

	cheekY := (lm[30].Y + lm[31].Y) / 2
	highlights := canvas.NewPath().
		Ellipse(face.Mid(lm[1], lm[2]).X, cheekY, box.Width*0.06, box.Height*0.04, 0).
		Ellipse(face.Mid(lm[14], lm[15]).X, cheekY, box.Width*0.06, box.Height*0.04, 0)
	c.Fill(highlights, solid(palette.ContourHighlight.WithAlpha(s*0.8)), canvas.Options{Alpha: 1, Blur: 12})

	// Nose-side lines run from the nostrils up toward the bridge.
	rise := 0.7 * (lm[33].Y - lm[27].Y)
	nose := canvas.NewPath().
		MoveTo(lm[31].X-2, lm[31].Y-rise).LineTo(lm[31].X-4, lm[31].Y).
		MoveTo(lm[35].X+2, lm[35].Y-rise).LineTo(lm[35].X+4, lm[35].Y)
	c.Stroke(nose, 3, solid(palette.ContourShadow.WithAlpha(s*0.7)), canvas.Options{Alpha: 1, Blur: 4})
}

// Blush paints one soft ellipse per cheek.
type Blush struct{}

func (Blush) Feature() palette.Feature { return palette.FeatureBlush }

func (Blush) Render(c canvas.Canvas, f *face.Face, cfg Config, look palette.Look) {
	ch := face.CheekAnchors(f.Landmarks, f.Box, look)
	col := palette.Blush(cfg.Blush.Color).WithAlpha(palette.Clamp01(cfg.Blush.Intensity) * 0.6)

	var rot float64
	if look == palette.LookGlamour {
		rot = math.Pi / 8
	}
	p := canvas.NewPath().
		Ellipse(ch.Left.X, ch.Left.Y, ch.Width, ch.Height, -rot).
		Ellipse(ch.Right.X, ch.Right.Y, ch.Width, ch.Height, rot)
	c.Fill(p, solid(col), canvas.Options{Alpha: 1, Blur: 20})
}
