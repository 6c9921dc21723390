// Package facetest provides synthetic landmark fixtures for tests.
package facetest

import "github.com/kozaktomas/makeup-tryon/internal/face"

// ImageSize is the side of the square image the fixtures are laid out in.
const ImageSize = 400

// frontal is an upright, symmetric face centered in a 400x400 image with the
// mouth slightly open.
var frontal = [face.NumPoints]face.Point{
	// jaw 0-16
	{X: 105.0, Y: 170.0}, {X: 106.8, Y: 201.2}, {X: 112.2, Y: 231.2}, {X: 121.0, Y: 258.9},
	{X: 132.8, Y: 283.1}, {X: 147.2, Y: 303.0}, {X: 163.6, Y: 317.8}, {X: 181.5, Y: 326.9},
	{X: 200.0, Y: 330.0},
	{X: 218.5, Y: 326.9}, {X: 236.4, Y: 317.8}, {X: 252.8, Y: 303.0}, {X: 267.2, Y: 283.1},
	{X: 279.0, Y: 258.9}, {X: 287.8, Y: 231.2}, {X: 293.2, Y: 201.2}, {X: 295.0, Y: 170.0},
	// brows 17-26
	{X: 130, Y: 150}, {X: 145, Y: 143}, {X: 160, Y: 141}, {X: 175, Y: 143}, {X: 188, Y: 148},
	{X: 212, Y: 148}, {X: 225, Y: 143}, {X: 240, Y: 141}, {X: 255, Y: 143}, {X: 270, Y: 150},
	// nose 27-35
	{X: 200, Y: 160}, {X: 200, Y: 175}, {X: 200, Y: 190}, {X: 200, Y: 205},
	{X: 185, Y: 215}, {X: 192, Y: 218}, {X: 200, Y: 220}, {X: 208, Y: 218}, {X: 215, Y: 215},
	// left eye 36-41
	{X: 140, Y: 175}, {X: 150, Y: 168}, {X: 162, Y: 168}, {X: 172, Y: 176}, {X: 162, Y: 181}, {X: 150, Y: 181},
	// right eye 42-47
	{X: 228, Y: 176}, {X: 238, Y: 168}, {X: 250, Y: 168}, {X: 260, Y: 175}, {X: 250, Y: 181}, {X: 238, Y: 181},
	// outer lips 48-59
	{X: 170, Y: 260}, {X: 180, Y: 252}, {X: 190, Y: 248}, {X: 200, Y: 250}, {X: 210, Y: 248}, {X: 220, Y: 252},
	{X: 230, Y: 260}, {X: 220, Y: 270}, {X: 210, Y: 275}, {X: 200, Y: 276}, {X: 190, Y: 275}, {X: 180, Y: 270},
	// inner lips 60-67
	{X: 176, Y: 260}, {X: 190, Y: 256}, {X: 200, Y: 257}, {X: 210, Y: 256},
	{X: 224, Y: 260}, {X: 210, Y: 264}, {X: 200, Y: 265}, {X: 190, Y: 264},
}

// Box is the bounding box of the frontal fixture.
var Box = face.Rect{X: 100, Y: 100, Width: 200, Height: 240}

// Frontal returns a fresh copy of the frontal fixture.
func Frontal() *face.Face {
	return &face.Face{Box: Box, Landmarks: frontal, Score: 0.98}
}

// ClosedMouth returns the frontal fixture with the inner lip contour
// collapsed onto a line.
func ClosedMouth() *face.Face {
	f := Frontal()
	for i := 65; i <= 67; i++ {
		// 65 mirrors 63, 66 mirrors 62, 67 mirrors 61
		f.Landmarks[i].Y = f.Landmarks[60+(68-i)].Y
	}
	return f
}

// Points returns the frontal landmarks as a slice.
func Points() []face.Point {
	out := make([]face.Point, face.NumPoints)
	copy(out, frontal[:])
	return out
}
