package canvas

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/kozaktomas/makeup-tryon/internal/palette"
)

// Paint yields the fill color at a point in image pixel coordinates.
type Paint interface {
	ColorAt(x, y float64) palette.RGBA
}

// Solid paints one color everywhere.
type Solid struct {
	Color palette.RGBA
}

func (s Solid) ColorAt(_, _ float64) palette.RGBA { return s.Color }

// Stop is a gradient color stop; Offset is in [0,1].
type Stop struct {
	Offset float64
	Color  palette.RGBA
}

// LinearGradient interpolates along the line from (X0, Y0) to (X1, Y1).
type LinearGradient struct {
	X0, Y0, X1, Y1 float64
	Stops          []Stop
}

func (g LinearGradient) ColorAt(x, y float64) palette.RGBA {
	dx, dy := g.X1-g.X0, g.Y1-g.Y0
	l2 := dx*dx + dy*dy
	if l2 == 0 {
		return stopAt(g.Stops, 1)
	}
	t := ((x-g.X0)*dx + (y-g.Y0)*dy) / l2
	return stopAt(g.Stops, t)
}

// RadialGradient interpolates outward from (CX, CY) to radius R.
type RadialGradient struct {
	CX, CY, R float64
	Stops     []Stop
}

func (g RadialGradient) ColorAt(x, y float64) palette.RGBA {
	if g.R <= 0 {
		return stopAt(g.Stops, 1)
	}
	return stopAt(g.Stops, math.Hypot(x-g.CX, y-g.CY)/g.R)
}

// stopAt evaluates sorted stops at t. Before the first stop and after the
// last the end colors are held.
func stopAt(stops []Stop, t float64) palette.RGBA {
	if len(stops) == 0 {
		return palette.RGBA{}
	}
	t = palette.Clamp01(t)
	if t <= stops[0].Offset {
		return stops[0].Color
	}
	if last := stops[len(stops)-1]; t >= last.Offset {
		return last.Color
	}
	for i := 1; i < len(stops); i++ {
		a, b := stops[i-1], stops[i]
		if t > b.Offset {
			continue
		}
		span := b.Offset - a.Offset
		if span <= 0 {
			return b.Color
		}
		return lerp(a.Color, b.Color, (t-a.Offset)/span)
	}
	return stops[len(stops)-1].Color
}

func lerp(a, b palette.RGBA, t float64) palette.RGBA {
	if t >= 1 {
		return b
	}
	ca := colorful.Color{R: float64(a.R) / 255, G: float64(a.G) / 255, B: float64(a.B) / 255}
	cb := colorful.Color{R: float64(b.R) / 255, G: float64(b.G) / 255, B: float64(b.B) / 255}
	r, g, bl := ca.BlendRgb(cb, t).Clamped().RGB255()
	return palette.RGBA{R: r, G: g, B: bl, A: a.A + (b.A-a.A)*t}
}
