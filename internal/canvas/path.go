package canvas

import (
	"math"
	"slices"

	"golang.org/x/image/vector"

	"github.com/kozaktomas/makeup-tryon/internal/face"
)

// kappa places cubic control points so four curves approximate an ellipse.
const kappa = 0.5522847498307936

// flattenSteps is the number of line pieces a curve is split into when a
// path is stroked.
const flattenSteps = 16

// SegmentKind is one path command.
type SegmentKind uint8

const (
	SegMoveTo SegmentKind = iota
	SegLineTo
	SegQuadTo
	SegCubeTo
	SegClose
)

// Segment is a path command. Pts holds the control points followed by the
// end point; unused entries are zero.
type Segment struct {
	Kind SegmentKind
	Pts  [3]face.Point
}

// end returns the segment's end point.
func (s Segment) end() face.Point {
	switch s.Kind {
	case SegQuadTo:
		return s.Pts[1]
	case SegCubeTo:
		return s.Pts[2]
	}
	return s.Pts[0]
}

// Path is a sequence of subpaths in image pixel coordinates. Subpaths are
// closed implicitly when filled.
type Path struct {
	segs  []Segment
	start face.Point
	pen   face.Point
	open  bool
}

func NewPath() *Path {
	return &Path{}
}

func (p *Path) MoveTo(x, y float64) *Path {
	pt := face.Point{X: x, Y: y}
	p.segs = append(p.segs, Segment{Kind: SegMoveTo, Pts: [3]face.Point{pt}})
	p.start, p.pen, p.open = pt, pt, true
	return p
}

// LineTo draws a line to (x, y). Without a current point it acts as MoveTo.
func (p *Path) LineTo(x, y float64) *Path {
	if !p.open {
		return p.MoveTo(x, y)
	}
	pt := face.Point{X: x, Y: y}
	p.segs = append(p.segs, Segment{Kind: SegLineTo, Pts: [3]face.Point{pt}})
	p.pen = pt
	return p
}

// QuadTo draws a quadratic curve with control (cx, cy) to (x, y).
func (p *Path) QuadTo(cx, cy, x, y float64) *Path {
	if !p.open {
		p.MoveTo(cx, cy)
	}
	pt := face.Point{X: x, Y: y}
	p.segs = append(p.segs, Segment{Kind: SegQuadTo, Pts: [3]face.Point{{X: cx, Y: cy}, pt}})
	p.pen = pt
	return p
}

// CubeTo draws a cubic curve with controls (c1x, c1y), (c2x, c2y) to (x, y).
func (p *Path) CubeTo(c1x, c1y, c2x, c2y, x, y float64) *Path {
	if !p.open {
		p.MoveTo(c1x, c1y)
	}
	pt := face.Point{X: x, Y: y}
	p.segs = append(p.segs, Segment{Kind: SegCubeTo, Pts: [3]face.Point{{X: c1x, Y: c1y}, {X: c2x, Y: c2y}, pt}})
	p.pen = pt
	return p
}

// Close ends the current subpath with a line back to its start.
func (p *Path) Close() *Path {
	if !p.open {
		return p
	}
	p.segs = append(p.segs, Segment{Kind: SegClose, Pts: [3]face.Point{p.start}})
	p.pen, p.open = p.start, false
	return p
}

// Polygon adds a closed subpath through pts.
func (p *Path) Polygon(pts []face.Point) *Path {
	if len(pts) == 0 {
		return p
	}
	p.MoveTo(pts[0].X, pts[0].Y)
	for _, pt := range pts[1:] {
		p.LineTo(pt.X, pt.Y)
	}
	return p.Close()
}

// Polyline adds an open subpath through pts.
func (p *Path) Polyline(pts []face.Point) *Path {
	if len(pts) == 0 {
		return p
	}
	p.MoveTo(pts[0].X, pts[0].Y)
	for _, pt := range pts[1:] {
		p.LineTo(pt.X, pt.Y)
	}
	return p
}

// Ellipse adds a closed elliptical subpath centered at (cx, cy) with radii
// rx, ry, rotated by rot radians. Every ellipse winds the same way so
// overlapping ellipses in one path merge.
func (p *Path) Ellipse(cx, cy, rx, ry, rot float64) *Path {
	rx, ry = math.Abs(rx), math.Abs(ry)
	sin, cos := math.Sincos(rot)
	at := func(theta float64) (pt, tangent face.Point) {
		s, c := math.Sincos(theta)
		lx, ly := rx*c, ry*s
		tx, ty := -rx*s, ry*c
		pt = face.Point{X: cx + lx*cos - ly*sin, Y: cy + lx*sin + ly*cos}
		tangent = face.Point{X: tx*cos - ty*sin, Y: tx*sin + ty*cos}
		return pt, tangent
	}

	p0, _ := at(0)
	p.MoveTo(p0.X, p0.Y)
	for i := 0; i < 4; i++ {
		a0 := float64(i) * math.Pi / 2
		a1 := a0 + math.Pi/2
		s, t0 := at(a0)
		e, t1 := at(a1)
		c1 := s.Add(t0.Scale(kappa))
		c2 := e.Sub(t1.Scale(kappa))
		p.CubeTo(c1.X, c1.Y, c2.X, c2.Y, e.X, e.Y)
	}
	return p.Close()
}

// Circle adds a closed circular subpath.
func (p *Path) Circle(cx, cy, r float64) *Path {
	return p.Ellipse(cx, cy, r, r, 0)
}

// Append adds every subpath of q to p.
func (p *Path) Append(q *Path) *Path {
	if q == nil {
		return p
	}
	p.segs = append(p.segs, q.segs...)
	p.start, p.pen, p.open = q.start, q.pen, q.open
	return p
}

// Segments returns a copy of the path commands.
func (p *Path) Segments() []Segment {
	return slices.Clone(p.segs)
}

// Clone returns an independent copy of p.
func (p *Path) Clone() *Path {
	if p == nil {
		return nil
	}
	c := *p
	c.segs = slices.Clone(p.segs)
	return &c
}

func (p *Path) Empty() bool {
	return p == nil || len(p.segs) == 0
}

// Bounds returns the box around every point and control point. Curves lie
// inside their control hull so the box is conservative.
func (p *Path) Bounds() (minX, minY, maxX, maxY float64) {
	if p.Empty() {
		return 0, 0, 0, 0
	}
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, s := range p.segs {
		n := 1
		switch s.Kind {
		case SegQuadTo:
			n = 2
		case SegCubeTo:
			n = 3
		}
		for _, pt := range s.Pts[:n] {
			minX, minY = min(minX, pt.X), min(minY, pt.Y)
			maxX, maxY = max(maxX, pt.X), max(maxY, pt.Y)
		}
	}
	return minX, minY, maxX, maxY
}

// rasterize feeds the path into r shifted by (-dx, -dy), closing every
// subpath.
func (p *Path) rasterize(r *vector.Rasterizer, dx, dy float64) {
	f := func(pt face.Point) (float32, float32) {
		return float32(pt.X - dx), float32(pt.Y - dy)
	}
	open := false
	for _, s := range p.segs {
		switch s.Kind {
		case SegMoveTo:
			if open {
				r.ClosePath()
			}
			r.MoveTo(f(s.Pts[0]))
			open = true
		case SegLineTo:
			r.LineTo(f(s.Pts[0]))
		case SegQuadTo:
			cx, cy := f(s.Pts[0])
			x, y := f(s.Pts[1])
			r.QuadTo(cx, cy, x, y)
		case SegCubeTo:
			c1x, c1y := f(s.Pts[0])
			c2x, c2y := f(s.Pts[1])
			x, y := f(s.Pts[2])
			r.CubeTo(c1x, c1y, c2x, c2y, x, y)
		case SegClose:
			r.ClosePath()
			open = false
		}
	}
	if open {
		r.ClosePath()
	}
}

// flatten converts the path into polylines, one per subpath, and reports
// which of them are closed.
func (p *Path) flatten() (lines [][]face.Point, closed []bool) {
	var cur []face.Point
	var pen face.Point
	flush := func(isClosed bool) {
		if len(cur) > 1 {
			lines = append(lines, cur)
			closed = append(closed, isClosed)
		}
		cur = nil
	}
	for _, s := range p.segs {
		switch s.Kind {
		case SegMoveTo:
			flush(false)
			cur = []face.Point{s.Pts[0]}
		case SegLineTo:
			cur = append(cur, s.Pts[0])
		case SegQuadTo:
			c, e := s.Pts[0], s.Pts[1]
			for i := 1; i <= flattenSteps; i++ {
				t := float64(i) / flattenSteps
				u := 1 - t
				cur = append(cur, pen.Scale(u*u).Add(c.Scale(2*u*t)).Add(e.Scale(t*t)))
			}
		case SegCubeTo:
			c1, c2, e := s.Pts[0], s.Pts[1], s.Pts[2]
			for i := 1; i <= flattenSteps; i++ {
				t := float64(i) / flattenSteps
				u := 1 - t
				cur = append(cur, pen.Scale(u*u*u).Add(c1.Scale(3*u*u*t)).Add(c2.Scale(3*u*t*t)).Add(e.Scale(t*t*t)))
			}
		case SegClose:
			flush(true)
		}
		pen = s.end()
	}
	flush(false)
	return lines, closed
}
