package studio

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log"
	"sync"

	"github.com/google/uuid"

	"github.com/kozaktomas/makeup-tryon/internal/canvas"
	"github.com/kozaktomas/makeup-tryon/internal/detect"
	"github.com/kozaktomas/makeup-tryon/internal/face"
	"github.com/kozaktomas/makeup-tryon/internal/imageio"
	"github.com/kozaktomas/makeup-tryon/internal/makeup"
	"github.com/kozaktomas/makeup-tryon/internal/palette"
)

var (
	ErrNoImage       = errors.New("no image loaded")
	ErrBusy          = errors.New("detection already in progress")
	ErrSuperseded    = errors.New("image changed during detection")
	ErrNotExportable = errors.New("nothing rendered to export")
)

// State is the session lifecycle stage.
type State int

const (
	Idle State = iota
	ImageLoaded
	Detecting
	Rendered
	FallbackRendered
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case ImageLoaded:
		return "image-loaded"
	case Detecting:
		return "detecting"
	case Rendered:
		return "rendered"
	case FallbackRendered:
		return "fallback-rendered"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Outcome describes a finished Apply.
type Outcome struct {
	State State
	// Face is the detected face, nil for a fallback render.
	Face *face.Face
	// Features lists the renderers invoked for a face render.
	Features []palette.Feature
}

// Session is one try-on workspace. The overlay surface always has the
// bounds of the loaded image.
type Session struct {
	mu       sync.Mutex
	id       string
	detector detect.Detector
	defaults makeup.Config

	cfg        makeup.Config
	source     *imageio.Image
	surface    *canvas.Surface
	state      State
	exportable bool

	// generation increments on every image load and reset so an in-flight
	// detection can tell its result is stale.
	generation uint64
	cancel     context.CancelFunc
}

// NewSession creates an idle session. defaults is restored on every image
// load.
func NewSession(d detect.Detector, defaults makeup.Config) *Session {
	return &Session{
		id:       uuid.NewString(),
		detector: d,
		defaults: defaults,
		cfg:      defaults,
		surface:  canvas.NewSurface(image.Rectangle{}),
	}
}

func (s *Session) ID() string { return s.id }

// LoadImage replaces the source photo. Any running detection is cancelled
// and its result discarded.
func (s *Session) LoadImage(img *imageio.Image) error {
	if img == nil || img.Pixels == nil {
		return ErrNoImage
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.supersede()
	s.source = img
	s.surface.Resize(img.Bounds())
	s.cfg = s.defaults
	s.state = ImageLoaded
	s.exportable = false
	log.Printf("session %s: loaded %s (%dx%d)", s.id, img.Name, img.Bounds().Dx(), img.Bounds().Dy())
	return nil
}

// Apply detects the face in the loaded image and renders cfg onto the
// overlay. When no usable face is found the fallback simulation is drawn.
func (s *Session) Apply(ctx context.Context, cfg makeup.Config, look palette.Look) (Outcome, error) {
	s.mu.Lock()
	if s.source == nil {
		s.mu.Unlock()
		return Outcome{}, ErrNoImage
	}
	if s.state == Detecting {
		s.mu.Unlock()
		return Outcome{}, ErrBusy
	}

	gen := s.generation
	prev := s.state
	detectCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.state = Detecting
	s.cfg = cfg
	src := s.source
	s.mu.Unlock()

	f, err := s.detector.Detect(detectCtx, src)
	cancel()

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		return Outcome{}, ErrSuperseded
	}
	s.cancel = nil
	if ctx.Err() != nil {
		s.state = prev
		return Outcome{}, ctx.Err()
	}

	if err != nil {
		log.Printf("session %s: detection failed, using fallback: %v", s.id, err)
		f = nil
	} else if f != nil {
		if verr := f.Validate(); verr != nil {
			log.Printf("session %s: unusable face, using fallback: %v", s.id, verr)
			f = nil
		}
	}

	s.surface.Clear()
	out := Outcome{Face: f}
	if f == nil {
		makeup.RenderFallback(s.surface, cfg, look)
		out.State = FallbackRendered
	} else {
		// f was validated above.
		out.Features, _ = Render(s.surface, f, cfg, look)
		out.State = Rendered
	}
	s.state = out.State
	s.exportable = !s.surface.IsEmpty()
	return out, nil
}

// Reset clears the overlay, keeping the loaded image.
func (s *Session) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.source == nil {
		return ErrNoImage
	}
	s.supersede()
	s.surface.Clear()
	s.state = ImageLoaded
	s.exportable = false
	return nil
}

// supersede invalidates any in-flight detection. Callers hold mu.
func (s *Session) supersede() {
	s.generation++
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

// Configure replaces the configuration with fn applied to the current one.
func (s *Session) Configure(fn func(makeup.Config) makeup.Config) makeup.Config {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg = fn(s.cfg)
	return s.cfg
}

func (s *Session) Config() makeup.Config {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// CanExport reports whether the last render left visible paint.
func (s *Session) CanExport() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.exportable
}

// Export flattens the overlay onto the source photo.
func (s *Session) Export() (*image.RGBA, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.source == nil {
		return nil, ErrNoImage
	}
	if !s.exportable {
		return nil, ErrNotExportable
	}
	return imageio.Flatten(s.source.Pixels, s.surface.Image()), nil
}

// Surface returns the overlay the session draws onto.
func (s *Session) Surface() *canvas.Surface {
	return s.surface
}
