package face

// Landmark index ranges.
const (
	jawStart  = 0
	jawEnd    = 17
	leftEye   = 36
	rightEye  = 42
	outerLips = 48
	innerLips = 60
)

// foreheadUp is how far above the temples the face outline closes, as a
// fraction of the box height.
const foreheadUp = 0.7

// Jaw returns points 0-16, left ear to right ear.
func (s *Set) Jaw() [17]Point {
	var out [17]Point
	copy(out[:], s[jawStart:jawEnd])
	return out
}

// LeftEye returns points 36-41 (the eye on the image's left).
func (s *Set) LeftEye() [6]Point {
	var out [6]Point
	copy(out[:], s[leftEye:leftEye+6])
	return out
}

// RightEye returns points 42-47.
func (s *Set) RightEye() [6]Point {
	var out [6]Point
	copy(out[:], s[rightEye:rightEye+6])
	return out
}

// LipContours returns the outer (48-59) and inner (60-67) mouth contours.
func LipContours(s Set) (outer [12]Point, inner [8]Point) {
	copy(outer[:], s[outerLips:innerLips])
	copy(inner[:], s[innerLips:NumPoints])
	return outer, inner
}

// EyeCenter is the arithmetic mean of the six eye points.
func EyeCenter(eye [6]Point) Point {
	return Centroid(eye[:])
}

// EyeWidth is the horizontal extent of the eye points.
func EyeWidth(eye [6]Point) float64 {
	minX, maxX := eye[0].X, eye[0].X
	for _, p := range eye[1:] {
		minX = min(minX, p.X)
		maxX = max(maxX, p.X)
	}
	return maxX - minX
}

// JawPolygon returns the jawline as an open polyline.
func JawPolygon(s Set) []Point {
	jaw := s.Jaw()
	return jaw[:]
}

// ForeheadClosure returns the two points that close the jaw into a face
// outline: point 16 then point 0, each lifted by 0.7 of the box height.
func ForeheadClosure(s Set, box Rect) [2]Point {
	up := box.Height * foreheadUp
	return [2]Point{
		{s[16].X, s[16].Y - up},
		{s[0].X, s[0].Y - up},
	}
}

// FacePolygon is the jaw followed by the forehead closure.
func FacePolygon(s Set, box Rect) []Point {
	closure := ForeheadClosure(s, box)
	return append(JawPolygon(s), closure[0], closure[1])
}

// Centroid is the mean of pts. It returns the zero point for no input.
func Centroid(pts []Point) Point {
	if len(pts) == 0 {
		return Point{}
	}
	var sum Point
	for _, p := range pts {
		sum = sum.Add(p)
	}
	return sum.Scale(1 / float64(len(pts)))
}

// Bounds returns the axis-aligned box around pts.
func Bounds(pts []Point) Rect {
	if len(pts) == 0 {
		return Rect{}
	}
	minX, minY, maxX, maxY := pts[0].X, pts[0].Y, pts[0].X, pts[0].Y
	for _, p := range pts[1:] {
		minX = min(minX, p.X)
		minY = min(minY, p.Y)
		maxX = max(maxX, p.X)
		maxY = max(maxY, p.Y)
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}
