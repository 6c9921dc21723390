package face

import "github.com/kozaktomas/makeup-tryon/internal/palette"

// Cheeks are the blush anchor points and ellipse radii. Both anchors share Y.
type Cheeks struct {
	Left, Right   Point
	Width, Height float64
}

// CheekAnchors places the cheeks for a look.
func CheekAnchors(s Set, box Rect, look palette.Look) Cheeks {
	leftX := Mid(s[1], s[2]).X
	rightX := Mid(s[14], s[15]).X
	y := (s[40].Y + s[47].Y) / 2

	var w, h float64
	switch look {
	case palette.LookNatural, palette.LookSummer:
		w, h = 0.13, 0.13
	case palette.LookGlamour, palette.LookParty:
		y = s[30].Y
		w, h = 0.17, 0.11
	case palette.LookEditorial, palette.LookKpop:
		// Higher and rounder, pulled in from the jaw.
		leftX = s[2].X + box.Width*0.05
		rightX = s[14].X - box.Width*0.05
		y = s[29].Y
		w, h = 0.12, 0.08
	default:
		w, h = 0.15, 0.11
	}

	return Cheeks{
		Left:   Point{leftX, y},
		Right:  Point{rightX, y},
		Width:  box.Width * w,
		Height: box.Height * h,
	}
}
