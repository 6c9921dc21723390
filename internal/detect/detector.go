// Package detect locates a face and its 68 landmarks in a source image.
package detect

import (
	"context"
	"fmt"

	"github.com/kozaktomas/makeup-tryon/internal/face"
	"github.com/kozaktomas/makeup-tryon/internal/imageio"
)

// Detector finds at most one face. A nil face with a nil error means no face
// was found.
type Detector interface {
	Detect(ctx context.Context, img *imageio.Image) (*face.Face, error)
}

// Func adapts a plain function to Detector.
type Func func(ctx context.Context, img *imageio.Image) (*face.Face, error)

func (f Func) Detect(ctx context.Context, img *imageio.Image) (*face.Face, error) {
	return f(ctx, img)
}

// None never finds a face.
var None = Func(func(context.Context, *imageio.Image) (*face.Face, error) { return nil, nil })

// Document is the JSON form of a face, as written by the detect command and
// read by the file detector.
type Document struct {
	Box       face.Rect    `json:"box"`
	Landmarks [][2]float64 `json:"landmarks"`
	Score     float64      `json:"score,omitempty"`
}

// NewDocument converts f to its JSON form.
func NewDocument(f *face.Face) Document {
	d := Document{Box: f.Box, Score: f.Score, Landmarks: make([][2]float64, len(f.Landmarks))}
	for i, p := range f.Landmarks {
		d.Landmarks[i] = [2]float64{p.X, p.Y}
	}
	return d
}

// Face converts the document back, validating it.
func (d Document) Face() (*face.Face, error) {
	set, err := setFromPairs(d.Landmarks)
	if err != nil {
		return nil, err
	}
	f := &face.Face{Box: d.Box, Landmarks: set, Score: d.Score}
	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("invalid face: %w", err)
	}
	return f, nil
}

func setFromPairs(pairs [][2]float64) (face.Set, error) {
	pts := make([]face.Point, len(pairs))
	for i, p := range pairs {
		pts[i] = face.Point{X: p[0], Y: p[1]}
	}
	return face.SetFromPoints(pts)
}
