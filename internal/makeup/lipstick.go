package makeup

import (
	"math"

	"github.com/kozaktomas/makeup-tryon/internal/canvas"
	"github.com/kozaktomas/makeup-tryon/internal/face"
	"github.com/kozaktomas/makeup-tryon/internal/palette"
)

var (
	cornerShadow   = palette.RGBA{A: 0.2}
	glossHighlight = palette.RGBA{R: 255, G: 255, B: 255, A: 0.6}
	satinHighlight = palette.RGBA{R: 255, G: 255, B: 255, A: 0.3}
)

// minMouthArea is the inner-contour area in square pixels below which the
// mouth counts as closed.
const minMouthArea = 0.5

// Lipstick dispatches on the lipstick finish.
type Lipstick struct{}

func (Lipstick) Feature() palette.Feature { return palette.FeatureLipstick }

// lips is the per-render mouth geometry.
type lips struct {
	outer  [12]face.Point
	inner  [8]face.Point
	center face.Point
	width  float64
	height float64
}

func newLips(s face.Set) lips {
	outer, inner := face.LipContours(s)
	b := face.Bounds(outer[:])
	return lips{
		outer:  outer,
		inner:  inner,
		center: face.Centroid(outer[:]),
		width:  b.Width,
		height: b.Height,
	}
}

func (Lipstick) Render(c canvas.Canvas, f *face.Face, cfg Config, look palette.Look) {
	l := newLips(f.Landmarks)
	col := palette.Lipstick(cfg.Lipstick.Color, look)
	i := palette.Clamp01(cfg.Lipstick.Intensity)

	switch cfg.Lipstick.Style {
	case palette.LipMatte:
		c.Fill(l.smoothPath(), solid(col), canvas.Options{Alpha: i, Blur: 2})
		l.cornerShadows(c, canvas.Options{Alpha: i * 0.3, Blur: 3})

	case palette.LipGlossy:
		g := canvas.RadialGradient{CX: l.center.X, CY: l.center.Y, R: l.width * 0.7, Stops: []canvas.Stop{
			{Offset: 0, Color: col.Offset(40).ScaleAlpha(0.9)},
			{Offset: 0.4, Color: col},
			{Offset: 1, Color: col.Offset(-40)},
		}}
		c.Fill(l.smoothPath(), g, canvas.Options{Alpha: i * 0.9, Blur: 3})

		primary := canvas.NewPath().Ellipse(l.center.X, l.center.Y-l.height*0.08, l.width*0.12, l.width*0.04, 0)
		c.Fill(primary, solid(glossHighlight), canvas.Options{Alpha: i * 0.5, Blur: 4})
		secondary := canvas.NewPath().Ellipse(l.center.X, l.center.Y-l.height*0.3, l.width*0.06, l.width*0.02, 0)
		c.Fill(secondary, solid(glossHighlight), canvas.Options{Alpha: i * 0.25, Blur: 4})
		l.cornerShadows(c, canvas.Options{Alpha: i * 0.25, Blur: 4})

	case palette.LipSheer:
		c.Fill(l.polygonPath(), solid(col), canvas.Options{Alpha: i * 0.5, Blur: 3})

	case palette.LipOmbre:
		g := canvas.RadialGradient{CX: l.center.X, CY: l.center.Y, R: l.width * 0.7, Stops: []canvas.Stop{
			{Offset: 0, Color: col},
			{Offset: 1, Color: col.Offset(-40)},
		}}
		c.Fill(l.polygonPath(), g, canvas.Options{Alpha: i * 0.9, Blur: 2})

	default: // satin
		c.Fill(l.polygonPath(), solid(col), canvas.Options{Alpha: i * 0.8, Blur: 2})
		hl := canvas.NewPath().Ellipse(l.center.X, l.center.Y-l.height*0.15, l.width*0.1, l.width*0.03, 0)
		c.Fill(hl, solid(satinHighlight), canvas.Options{Alpha: i * 0.2, Blur: 5})
	}
}

// smoothPath traces the outer contour with quadratic curves through the
// midpoints between landmarks, then cuts out the open mouth.
func (l lips) smoothPath() *canvas.Path {
	o := l.outer
	p := canvas.NewPath().MoveTo(o[0].X, o[0].Y).LineTo(o[1].X, o[1].Y)
	for k := 2; k < len(o); k++ {
		m := face.Mid(o[k-1], o[k])
		p.QuadTo(o[k-1].X, o[k-1].Y, m.X, m.Y)
	}
	last := o[len(o)-1]
	m := face.Mid(last, o[0])
	p.QuadTo(last.X, last.Y, m.X, m.Y).QuadTo(m.X, m.Y, o[0].X, o[0].Y).Close()
	return l.cutMouth(p)
}

// polygonPath joins the outer landmarks with straight lines, then cuts out
// the open mouth.
func (l lips) polygonPath() *canvas.Path {
	return l.cutMouth(canvas.NewPath().Polygon(l.outer[:]))
}

// cutMouth adds the inner contour wound against the outer one so the filled
// region excludes it. A collapsed inner contour is left out.
func (l lips) cutMouth(p *canvas.Path) *canvas.Path {
	inner := l.inner[:]
	innerArea := canvas.SignedArea(inner)
	if math.Abs(innerArea) < minMouthArea {
		return p
	}
	if (innerArea > 0) == (canvas.SignedArea(l.outer[:]) > 0) {
		inner = canvas.Reversed(inner)
	}
	return p.Polygon(inner)
}

// cornerShadows darkens the two mouth corners (points 48 and 54).
func (l lips) cornerShadows(c canvas.Canvas, opts canvas.Options) {
	p := canvas.NewPath().
		Circle(l.outer[0].X, l.outer[0].Y, 3).
		Circle(l.outer[6].X, l.outer[6].Y, 3)
	c.Fill(p, solid(cornerShadow), opts)
}
