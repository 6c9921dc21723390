// Package studio runs a try-on session: it holds the source photo, asks the
// detector for landmarks and composites the configured makeup.
package studio

import (
	"fmt"

	"github.com/kozaktomas/makeup-tryon/internal/canvas"
	"github.com/kozaktomas/makeup-tryon/internal/face"
	"github.com/kozaktomas/makeup-tryon/internal/makeup"
	"github.com/kozaktomas/makeup-tryon/internal/palette"
)

// Render draws every enabled feature of cfg for f onto c, bottom layer first,
// and returns the features it invoked. The canvas is not cleared.
func Render(c canvas.Canvas, f *face.Face, cfg makeup.Config, look palette.Look) ([]palette.Feature, error) {
	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("cannot render face: %w", err)
	}
	look, _ = palette.ParseLook(string(look))

	var drawn []palette.Feature
	for _, r := range makeup.Renderers() {
		if !cfg.Enabled(r.Feature()) {
			continue
		}
		r.Render(c, f, cfg, look)
		drawn = append(drawn, r.Feature())
	}
	return drawn, nil
}
