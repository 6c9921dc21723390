package canvas

import (
	"math"

	"github.com/kozaktomas/makeup-tryon/internal/face"
)

// strokeOutline turns p into a fillable outline of the given width with
// round joins and caps. Pieces all wind the same way so their overlaps merge
// instead of cancelling.
func strokeOutline(p *Path, width float64) *Path {
	half := width / 2
	out := NewPath()
	lines, closed := p.flatten()
	for i, line := range lines {
		if closed[i] && line[0] != line[len(line)-1] {
			line = append(line, line[0])
		}
		for j := 1; j < len(line); j++ {
			addSegmentQuad(out, line[j-1], line[j], half)
		}
		for _, pt := range line {
			out.Circle(pt.X, pt.Y, half)
		}
	}
	return out
}

func addSegmentQuad(out *Path, a, b face.Point, half float64) {
	d := b.Sub(a)
	l := math.Hypot(d.X, d.Y)
	if l == 0 {
		return
	}
	n := face.Point{X: d.Y / l * half, Y: -d.X / l * half}
	quad := []face.Point{a.Sub(n), b.Sub(n), b.Add(n), a.Add(n)}
	if SignedArea(quad) < 0 {
		quad[0], quad[1], quad[2], quad[3] = quad[3], quad[2], quad[1], quad[0]
	}
	out.Polygon(quad)
}

// SignedArea is the shoelace area of a closed polygon. Its sign gives the
// winding direction.
func SignedArea(pts []face.Point) float64 {
	var a float64
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		a += p.X*q.Y - q.X*p.Y
	}
	return a / 2
}

// Reversed returns pts in reverse order.
func Reversed(pts []face.Point) []face.Point {
	out := make([]face.Point, len(pts))
	for i, p := range pts {
		out[len(pts)-1-i] = p
	}
	return out
}
