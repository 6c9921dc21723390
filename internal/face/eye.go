package face

// Side selects an eye by its position in the image.
type Side int

const (
	Left Side = iota
	Right
)

var Sides = []Side{Left, Right}

func (s Side) String() string {
	if s == Right {
		return "right"
	}
	return "left"
}

// EyeFrame names the eye points by anatomy rather than index so one shape
// description serves both eyes. Dir is the outward horizontal direction:
// -1 for the left eye, +1 for the right eye.
type EyeFrame struct {
	Outer      Point
	UpperOuter Point
	UpperInner Point
	Inner      Point
	LowerInner Point
	LowerOuter Point
	Dir        float64
	Center     Point
	Width      float64
}

// Out offsets x by d in the outward direction.
func (e EyeFrame) Out(x, d float64) float64 {
	return x + e.Dir*d
}

// Eye returns the mirrored frame for one eye. The left eye runs outer corner
// (36) to inner corner (39) over the upper lid; the right eye runs inner
// corner (42) to outer corner (45).
func Eye(s Set, side Side) EyeFrame {
	if side == Right {
		pts := s.RightEye()
		return EyeFrame{
			Inner:      pts[0],
			UpperInner: pts[1],
			UpperOuter: pts[2],
			Outer:      pts[3],
			LowerOuter: pts[4],
			LowerInner: pts[5],
			Dir:        1,
			Center:     EyeCenter(pts),
			Width:      EyeWidth(pts),
		}
	}
	pts := s.LeftEye()
	return EyeFrame{
		Outer:      pts[0],
		UpperOuter: pts[1],
		UpperInner: pts[2],
		Inner:      pts[3],
		LowerInner: pts[4],
		LowerOuter: pts[5],
		Dir:        -1,
		Center:     EyeCenter(pts),
		Width:      EyeWidth(pts),
	}
}
