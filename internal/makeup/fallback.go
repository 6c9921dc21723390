package makeup

import (
	"github.com/kozaktomas/makeup-tryon/internal/canvas"
	"github.com/kozaktomas/makeup-tryon/internal/face"
	"github.com/kozaktomas/makeup-tryon/internal/palette"
)

var fallbackGloss = palette.RGBA{R: 255, G: 255, B: 255, A: 0.8}

// fallbackLipBlur is the lip blur per finish when no face was found.
var fallbackLipBlur = map[palette.LipStyle]float64{
	palette.LipMatte:  4,
	palette.LipGlossy: 6,
	palette.LipSatin:  5,
	palette.LipSheer:  8,
	palette.LipOmbre:  5,
}

// RenderFallback draws an approximate look at fixed fractions of the canvas
// for when no face could be located. Contour, eyeliner, mascara and brows
// need anatomy and are skipped.
func RenderFallback(c canvas.Canvas, cfg Config, look palette.Look) {
	b := c.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())
	at := func(fx, fy float64) (float64, float64) {
		return float64(b.Min.X) + w*fx, float64(b.Min.Y) + h*fy
	}
	if _, ok := palette.ParseLook(string(look)); !ok {
		look = palette.LookNatural
	}

	if cfg.Foundation.Enabled {
		x0, y0 := at(0.25, 0.25)
		x1, y1 := at(0.75, 0.75)
		col := palette.Foundation(cfg.Foundation.Shade).WithAlpha(palette.Clamp01(cfg.Foundation.Coverage) * 0.5)
		p := canvas.NewPath().Polygon([]face.Point{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}})
		c.Fill(p, solid(col), canvas.Options{Alpha: 1, Blur: 15})
	}

	if cfg.Blush.Enabled {
		lx, ly := at(0.25, 0.55)
		rx, ry := at(0.75, 0.55)
		p := canvas.NewPath().
			Ellipse(lx, ly, w*0.11, w*0.09, 0).
			Ellipse(rx, ry, w*0.11, w*0.09, 0)
		c.Fill(p, solid(palette.Blush(cfg.Blush.Color)), canvas.Options{Alpha: palette.Clamp01(cfg.Blush.Intensity) * 0.9, Blur: 20})
	}

	if cfg.Enabled(palette.FeatureEyeshadow) {
		lx, ly := at(0.35, 0.4)
		rx, ry := at(0.65, 0.4)
		p := canvas.NewPath().
			Ellipse(lx, ly, w*0.09, w*0.06, 0).
			Ellipse(rx, ry, w*0.09, w*0.06, 0)
		col := palette.Eyeshadow(cfg.Eyeshadow.Color, look)
		c.Fill(p, solid(col), canvas.Options{Alpha: palette.Clamp01(cfg.Eyeshadow.Intensity), Blur: 10})
	}

	if cfg.Enabled(palette.FeatureLipstick) {
		x, y := at(0.5, 0.75)
		blur, ok := fallbackLipBlur[cfg.Lipstick.Style]
		if !ok {
			blur = 5
		}
		col := palette.Lipstick(cfg.Lipstick.Color, look)
		c.Fill(canvas.NewPath().Ellipse(x, y, w*0.11, w*0.055, 0), solid(col),
			canvas.Options{Alpha: palette.Clamp01(cfg.Lipstick.Intensity), Blur: blur})

		if cfg.Lipstick.Style == palette.LipGlossy {
			gx, gy := at(0.5, 0.74)
			c.Fill(canvas.NewPath().Ellipse(gx, gy, w*0.05, w*0.015, 0), solid(fallbackGloss),
				canvas.Options{Alpha: 0.6, Blur: 4})
		}
	}
}
