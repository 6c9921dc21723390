package palette

import (
	"fmt"
	"image/color"
	"math"
)

// RGBA is a paint color with 8-bit channels and a fractional alpha in [0,1].
type RGBA struct {
	R, G, B uint8
	A       float64
}

func rgba(r, g, b uint8, a float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: a}
}

// WithAlpha returns the color with its alpha replaced (clamped to [0,1]).
func (c RGBA) WithAlpha(a float64) RGBA {
	c.A = Clamp01(a)
	return c
}

// ScaleAlpha multiplies the alpha by f.
func (c RGBA) ScaleAlpha(f float64) RGBA {
	return c.WithAlpha(c.A * f)
}

// Offset shifts every RGB channel by d, clamped to [0,255]. Alpha is kept.
func (c RGBA) Offset(d int) RGBA {
	shift := func(v uint8) uint8 {
		return uint8(min(max(int(v)+d, 0), 255))
	}
	return RGBA{R: shift(c.R), G: shift(c.G), B: shift(c.B), A: c.A}
}

// NRGBA converts to a non-premultiplied standard library color.
func (c RGBA) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(math.Round(Clamp01(c.A) * 255))}
}

func (c RGBA) String() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %g)", c.R, c.G, c.B, c.A)
}

// Clamp01 clamps an intensity or coverage value to [0,1]; NaN becomes 0.
func Clamp01(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return min(max(v, 0), 1)
}
