// Package canvas is the drawing surface the makeup renderers paint on: vector
// paths filled or stroked with solid or gradient paint, a uniform alpha and a
// gaussian blur, composited over a transparent RGBA layer.
package canvas

import "image"

// Options apply to one fill or stroke.
type Options struct {
	// Alpha multiplies the paint alpha. Zero draws nothing.
	Alpha float64
	// Blur is the gaussian standard deviation in pixels of the soft edge.
	Blur float64
}

// Canvas receives drawing commands. Implementations only add paint; nothing
// is ever read back or erased through this interface.
type Canvas interface {
	Bounds() image.Rectangle
	Fill(p *Path, paint Paint, opts Options)
	Stroke(p *Path, width float64, paint Paint, opts Options)
}
