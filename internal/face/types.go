// Package face holds the 68-point landmark model and the geometry helpers the
// makeup renderers place their shapes with.
package face

import (
	"errors"
	"fmt"
	"math"
)

// NumPoints is the size of a landmark set (iBUG 68-point convention).
const NumPoints = 68

var (
	ErrInvalidBox       = errors.New("face box has no area")
	ErrInvalidLandmarks = errors.New("invalid landmark set")
)

// Point is a position in image pixel space.
type Point struct {
	X, Y float64
}

func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

func (p Point) Scale(f float64) Point { return Point{p.X * f, p.Y * f} }

// Mid returns the midpoint of a and b.
func Mid(a, b Point) Point {
	return Point{(a.X + b.X) / 2, (a.Y + b.Y) / 2}
}

func (p Point) finite() bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

// Rect is a face bounding box; X,Y is the top-left corner.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// RectFromBBox converts a pixel bbox [x1, y1, x2, y2] into a Rect.
func RectFromBBox(bbox []float64) (Rect, bool) {
	if len(bbox) != 4 {
		return Rect{}, false
	}
	r := Rect{X: bbox[0], Y: bbox[1], Width: bbox[2] - bbox[0], Height: bbox[3] - bbox[1]}
	if r.Width <= 0 || r.Height <= 0 {
		return Rect{}, false
	}
	return r, true
}

// BBox returns the box as [x1, y1, x2, y2].
func (r Rect) BBox() []float64 {
	return []float64{r.X, r.Y, r.X + r.Width, r.Y + r.Height}
}

// Set is one face's landmarks. It is an array so it is copied on pass and
// renderers cannot alter the caller's points.
type Set [NumPoints]Point

// Face is a single detection: box, landmarks and detector confidence.
type Face struct {
	Box       Rect
	Landmarks Set
	Score     float64
}

// Validate reports whether the face can be rendered: the box has area and
// every landmark is finite.
func (f *Face) Validate() error {
	if f == nil {
		return ErrInvalidLandmarks
	}
	b := f.Box
	if !(b.Width > 0) || !(b.Height > 0) || math.IsInf(b.Width, 0) || math.IsInf(b.Height, 0) {
		return ErrInvalidBox
	}
	for i, p := range f.Landmarks {
		if !p.finite() {
			return fmt.Errorf("%w: point %d is not finite", ErrInvalidLandmarks, i)
		}
	}
	return nil
}

// SetFromPoints builds a Set from exactly NumPoints points.
func SetFromPoints(pts []Point) (Set, error) {
	var s Set
	if len(pts) != NumPoints {
		return s, fmt.Errorf("%w: got %d points, want %d", ErrInvalidLandmarks, len(pts), NumPoints)
	}
	copy(s[:], pts)
	return s, nil
}
