package canvas

import (
	"image"
	"image/color"
	"math"
	"sync"

	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"github.com/kozaktomas/makeup-tryon/internal/palette"
)

// Surface is a transparent RGBA raster the size of the source image.
type Surface struct {
	mu  sync.Mutex
	img *image.RGBA
	r   vector.Rasterizer
}

func NewSurface(bounds image.Rectangle) *Surface {
	return &Surface{img: image.NewRGBA(bounds)}
}

func (s *Surface) Bounds() image.Rectangle {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.img.Rect
}

// Resize replaces the buffer with a cleared one of the given bounds.
func (s *Surface) Resize(bounds image.Rectangle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.img = image.NewRGBA(bounds)
}

// Clear makes every pixel fully transparent.
func (s *Surface) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.img.Pix)
}

// IsEmpty reports whether no pixel has any opacity.
func (s *Surface) IsEmpty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := 3; i < len(s.img.Pix); i += 4 {
		if s.img.Pix[i] != 0 {
			return false
		}
	}
	return true
}

// Image returns a copy of the current raster.
func (s *Surface) Image() *image.RGBA {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := image.NewRGBA(s.img.Rect)
	copy(out.Pix, s.img.Pix)
	return out
}

func (s *Surface) Fill(p *Path, paint Paint, opts Options) {
	if p.Empty() || paint == nil {
		return
	}
	minX, minY, maxX, maxY := p.Bounds()
	s.paint(p, paint, opts, minX, minY, maxX, maxY)
}

func (s *Surface) Stroke(p *Path, width float64, paint Paint, opts Options) {
	if p.Empty() || paint == nil || !(width > 0) {
		return
	}
	outline := strokeOutline(p, width)
	if outline.Empty() {
		return
	}
	minX, minY, maxX, maxY := outline.Bounds()
	s.paint(outline, paint, opts, minX, minY, maxX, maxY)
}

// paint rasterizes p into a layer covering its bounds plus room for the blur
// kernel, colors it, blurs it and composites it over the surface.
func (s *Surface) paint(p *Path, paint Paint, opts Options, minX, minY, maxX, maxY float64) {
	alpha := palette.Clamp01(opts.Alpha)
	if alpha == 0 {
		return
	}
	blur := opts.Blur
	if !(blur > 0) {
		blur = 0
	}
	pad := int(math.Ceil(3*blur)) + 1

	s.mu.Lock()
	defer s.mu.Unlock()

	layer := image.Rect(
		int(math.Floor(minX))-pad, int(math.Floor(minY))-pad,
		int(math.Ceil(maxX))+pad, int(math.Ceil(maxY))+pad,
	).Intersect(s.img.Rect.Inset(-pad))
	if layer.Empty() {
		return
	}
	dst := layer.Intersect(s.img.Rect)
	if dst.Empty() {
		return
	}

	w, h := layer.Dx(), layer.Dy()
	s.r.Reset(w, h)
	p.rasterize(&s.r, float64(layer.Min.X), float64(layer.Min.Y))
	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	s.r.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	src := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			m := mask.Pix[y*mask.Stride+x]
			if m == 0 {
				continue
			}
			c := paint.ColorAt(float64(layer.Min.X+x)+0.5, float64(layer.Min.Y+y)+0.5)
			a := palette.Clamp01(c.A) * float64(m)
			i := y*src.Stride + x*4
			src.Pix[i+0] = c.R
			src.Pix[i+1] = c.G
			src.Pix[i+2] = c.B
			src.Pix[i+3] = uint8(math.Round(a))
		}
	}

	var layerImg image.Image = src
	if blur > 0 {
		layerImg = imaging.Blur(src, blur)
	}

	a8 := uint8(math.Round(alpha * 255))
	draw.DrawMask(s.img, dst, layerImg, dst.Min.Sub(layer.Min),
		image.NewUniform(color.Alpha{A: a8}), image.Point{}, draw.Over)
}
