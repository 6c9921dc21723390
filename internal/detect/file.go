package detect

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/kozaktomas/makeup-tryon/internal/face"
	"github.com/kozaktomas/makeup-tryon/internal/imageio"
)

// SidecarSuffix is appended to an image path to find its landmark file.
const SidecarSuffix = ".landmarks.json"

// File reads precomputed landmarks from JSON instead of running a model.
type File struct {
	// Path is the landmark file. When empty, the image's sidecar file is used
	// and a missing sidecar means no face.
	Path string
}

// SidecarPath returns the landmark file path for an image.
func SidecarPath(imagePath string) string {
	return imagePath + SidecarSuffix
}

func (d File) Detect(ctx context.Context, img *imageio.Image) (*face.Face, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := d.Path
	if path == "" {
		path = SidecarPath(img.Name)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if d.Path == "" && errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read landmarks: %w", err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse landmarks %s: %w", path, err)
	}
	return doc.Face()
}

// WithSidecar prefers an image's sidecar landmark file and asks next only
// when there is none.
func WithSidecar(next Detector) Detector {
	return Func(func(ctx context.Context, img *imageio.Image) (*face.Face, error) {
		if _, err := os.Stat(SidecarPath(img.Name)); err == nil {
			return File{}.Detect(ctx, img)
		}
		return next.Detect(ctx, img)
	})
}
