package studio

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"testing"
	"time"

	"github.com/kozaktomas/makeup-tryon/internal/canvas"
	"github.com/kozaktomas/makeup-tryon/internal/detect"
	"github.com/kozaktomas/makeup-tryon/internal/face"
	"github.com/kozaktomas/makeup-tryon/internal/face/facetest"
	"github.com/kozaktomas/makeup-tryon/internal/imageio"
	"github.com/kozaktomas/makeup-tryon/internal/makeup"
	"github.com/kozaktomas/makeup-tryon/internal/palette"
)

func photo(w, h int) *imageio.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = 200
	}
	return &imageio.Image{Pixels: img, Name: "photo.png"}
}

func fixed(f *face.Face, err error) detect.Detector {
	return detect.Func(func(context.Context, *imageio.Image) (*face.Face, error) {
		return f, err
	})
}

// blockingDetector parks every call until released or cancelled.
type blockingDetector struct {
	started chan struct{}
	release chan struct{}
}

func newBlockingDetector() *blockingDetector {
	return &blockingDetector{started: make(chan struct{}, 1), release: make(chan struct{})}
}

func (d *blockingDetector) Detect(ctx context.Context, _ *imageio.Image) (*face.Face, error) {
	d.started <- struct{}{}
	select {
	case <-d.release:
		return facetest.Frontal(), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func TestApplyWithoutImage(t *testing.T) {
	s := NewSession(detect.None, makeup.DefaultConfig())
	if _, err := s.Apply(context.Background(), makeup.DefaultConfig(), palette.LookNatural); !errors.Is(err, ErrNoImage) {
		t.Errorf("Apply() error = %v, want ErrNoImage", err)
	}
	if s.State() != Idle {
		t.Errorf("State() = %v, want idle", s.State())
	}
	if _, err := s.Export(); !errors.Is(err, ErrNoImage) {
		t.Errorf("Export() error = %v, want ErrNoImage", err)
	}
	if err := s.Reset(); !errors.Is(err, ErrNoImage) {
		t.Errorf("Reset() error = %v, want ErrNoImage", err)
	}
	if err := s.LoadImage(nil); !errors.Is(err, ErrNoImage) {
		t.Errorf("LoadImage(nil) error = %v, want ErrNoImage", err)
	}
}

func TestApplyRendersFace(t *testing.T) {
	s := NewSession(fixed(facetest.Frontal(), nil), makeup.DefaultConfig())
	if err := s.LoadImage(photo(facetest.ImageSize, facetest.ImageSize)); err != nil {
		t.Fatal(err)
	}

	out, err := s.Apply(context.Background(), makeup.DefaultConfig(), palette.LookGlamour)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if out.State != Rendered || s.State() != Rendered {
		t.Errorf("state = %v / %v, want rendered", out.State, s.State())
	}
	if out.Face == nil {
		t.Error("Outcome.Face is nil")
	}
	want := []palette.Feature{palette.FeatureFoundation, palette.FeatureBlush, palette.FeatureEyeshadow, palette.FeatureBrows, palette.FeatureLipstick}
	if len(out.Features) != len(want) {
		t.Fatalf("Features = %v, want %v", out.Features, want)
	}
	for i := range want {
		if out.Features[i] != want[i] {
			t.Errorf("Features[%d] = %s, want %s", i, out.Features[i], want[i])
		}
	}
	if !s.CanExport() {
		t.Fatal("CanExport() = false after render")
	}

	img, err := s.Export()
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if img.Bounds() != image.Rect(0, 0, facetest.ImageSize, facetest.ImageSize) {
		t.Errorf("export bounds = %v", img.Bounds())
	}
	// Lower lip, painted red over the gray photo.
	if lip := img.RGBAAt(200, 268); lip.R <= lip.G {
		t.Errorf("lip pixel = %v, want reddish", lip)
	}
	if corner := img.RGBAAt(2, 2); corner != (color.RGBA{R: 200, G: 200, B: 200, A: 200}) {
		t.Errorf("corner pixel = %v, want untouched", corner)
	}
}

func TestNoFaceFallsBack(t *testing.T) {
	tests := []struct {
		name     string
		detector detect.Detector
	}{
		{"no face", detect.None},
		{"detector error", fixed(nil, errors.New("service down"))},
		{"invalid face", fixed(&face.Face{Landmarks: facetest.Frontal().Landmarks}, nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSession(tt.detector, makeup.DefaultConfig())
			s.LoadImage(photo(300, 200))
			out, err := s.Apply(context.Background(), makeup.DefaultConfig(), palette.LookNatural)
			if err != nil {
				t.Fatalf("Apply() error = %v", err)
			}
			if out.State != FallbackRendered || out.Face != nil {
				t.Errorf("outcome = %+v, want fallback", out)
			}
			if !s.CanExport() {
				t.Error("fallback render should enable export")
			}
		})
	}
}

func TestStaleDetectionIsDiscarded(t *testing.T) {
	d := newBlockingDetector()
	s := NewSession(d, makeup.DefaultConfig())
	s.LoadImage(photo(facetest.ImageSize, facetest.ImageSize))

	done := make(chan error, 1)
	go func() {
		_, err := s.Apply(context.Background(), makeup.DefaultConfig(), palette.LookNatural)
		done <- err
	}()
	<-d.started

	if s.State() != Detecting {
		t.Fatalf("State() = %v, want detecting", s.State())
	}
	if _, err := s.Apply(context.Background(), makeup.DefaultConfig(), palette.LookNatural); !errors.Is(err, ErrBusy) {
		t.Errorf("second Apply() error = %v, want ErrBusy", err)
	}

	if err := s.LoadImage(photo(120, 90)); err != nil {
		t.Fatal(err)
	}

	select {
	case err := <-done:
		if !errors.Is(err, ErrSuperseded) {
			t.Errorf("stale Apply() error = %v, want ErrSuperseded", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("stale detection was not cancelled")
	}

	if s.State() != ImageLoaded {
		t.Errorf("State() = %v, want image-loaded", s.State())
	}
	if b := s.Surface().Bounds(); b != image.Rect(0, 0, 120, 90) {
		t.Errorf("surface bounds = %v, want the new image", b)
	}
	if !s.Surface().IsEmpty() || s.CanExport() {
		t.Error("stale result reached the surface")
	}
}

func TestLoadImageRestoresDefaults(t *testing.T) {
	defaults := makeup.DefaultConfig()
	s := NewSession(detect.None, defaults)
	s.LoadImage(photo(50, 50))

	got := s.Configure(func(c makeup.Config) makeup.Config {
		return c.WithEnabled(palette.FeatureContour, true)
	})
	if !got.Enabled(palette.FeatureContour) || !s.Config().Enabled(palette.FeatureContour) {
		t.Fatal("Configure() did not apply")
	}

	s.Apply(context.Background(), s.Config(), palette.LookNatural)
	s.LoadImage(photo(80, 60))

	if s.Config() != defaults {
		t.Error("configuration not restored on image load")
	}
	if s.Surface().Bounds() != image.Rect(0, 0, 80, 60) || !s.Surface().IsEmpty() {
		t.Error("surface not resized and cleared")
	}
	if s.CanExport() {
		t.Error("export enabled right after load")
	}
}

func TestReset(t *testing.T) {
	s := NewSession(fixed(facetest.Frontal(), nil), makeup.DefaultConfig())
	s.LoadImage(photo(facetest.ImageSize, facetest.ImageSize))
	s.Apply(context.Background(), makeup.DefaultConfig(), palette.LookNatural)

	if err := s.Reset(); err != nil {
		t.Fatalf("Reset() error = %v", err)
	}
	if s.State() != ImageLoaded {
		t.Errorf("State() = %v, want image-loaded", s.State())
	}
	if !s.Surface().IsEmpty() {
		t.Error("surface not cleared")
	}
	if _, err := s.Export(); !errors.Is(err, ErrNotExportable) {
		t.Errorf("Export() error = %v, want ErrNotExportable", err)
	}
}

func TestEmptyRenderIsNotExportable(t *testing.T) {
	cfg := makeup.DefaultConfig().
		WithEnabled(palette.FeatureFoundation, false).
		WithEnabled(palette.FeatureBlush, false).
		WithEnabled(palette.FeatureEyeshadow, false).
		WithEnabled(palette.FeatureLipstick, false)

	s := NewSession(fixed(facetest.Frontal(), nil), cfg)
	s.LoadImage(photo(facetest.ImageSize, facetest.ImageSize))
	out, err := s.Apply(context.Background(), cfg, palette.LookNatural)
	if err != nil {
		t.Fatal(err)
	}
	if out.State != Rendered {
		t.Errorf("State = %v", out.State)
	}
	if s.CanExport() {
		t.Error("export enabled with nothing painted")
	}
}

func TestApplyCancelledByCaller(t *testing.T) {
	s := NewSession(newBlockingDetector(), makeup.DefaultConfig())
	s.LoadImage(photo(40, 40))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := s.Apply(ctx, makeup.DefaultConfig(), palette.LookNatural); !errors.Is(err, context.Canceled) {
		t.Errorf("Apply() error = %v, want context.Canceled", err)
	}
	if s.State() != ImageLoaded {
		t.Errorf("State() = %v, want image-loaded", s.State())
	}
}

func TestRenderIsIdempotent(t *testing.T) {
	f := facetest.Frontal()
	cfg := makeup.DefaultConfig().WithContour(makeup.ContourConfig{Enabled: true, Level: palette.ContourDramatic})
	bounds := image.Rect(0, 0, facetest.ImageSize, facetest.ImageSize)

	a := canvas.NewSurface(bounds)
	if _, err := Render(a, f, cfg, palette.LookParty); err != nil {
		t.Fatal(err)
	}
	b := canvas.NewSurface(bounds)
	Render(b, f, cfg, palette.LookParty)

	if !bytes.Equal(a.Image().Pix, b.Image().Pix) {
		t.Error("two renders of the same input differ")
	}
}

func TestRenderLayerOrder(t *testing.T) {
	f := facetest.Frontal()
	cfg := makeup.DefaultConfig().WithContour(makeup.ContourConfig{Enabled: true, Level: palette.ContourSubtle})

	rec := canvas.NewRecorder(image.Rect(0, 0, facetest.ImageSize, facetest.ImageSize))
	drawn, err := Render(rec, f, cfg, palette.Look("unknown"))
	if err != nil {
		t.Fatal(err)
	}
	if drawn[0] != palette.FeatureFoundation || drawn[1] != palette.FeatureContour || drawn[len(drawn)-1] != palette.FeatureLipstick {
		t.Errorf("drawn = %v", drawn)
	}

	ops := rec.Ops()
	// Foundation fill first, matte lipstick corner shadows last.
	if ops[0].Kind != canvas.OpFill || ops[0].Options.Blur != 15 {
		t.Errorf("first op = %+v, want foundation", ops[0])
	}
	if ops[1].Kind != canvas.OpStroke {
		t.Errorf("second op = %+v, want contour jaw stroke", ops[1])
	}
	if last := ops[len(ops)-1]; last.Options.Blur != 3 {
		t.Errorf("last op = %+v, want lipstick corner shadows", last)
	}
}

func TestRenderRejectsInvalidFace(t *testing.T) {
	rec := canvas.NewRecorder(image.Rect(0, 0, 10, 10))
	if _, err := Render(rec, &face.Face{}, makeup.DefaultConfig(), palette.LookNatural); !errors.Is(err, face.ErrInvalidBox) {
		t.Errorf("Render() error = %v, want ErrInvalidBox", err)
	}
	if _, err := Render(rec, nil, makeup.DefaultConfig(), palette.LookNatural); err == nil {
		t.Error("expected error for nil face")
	}
	if len(rec.Ops()) != 0 {
		t.Error("invalid face produced ops")
	}
}

func TestStateString(t *testing.T) {
	if Rendered.String() != "rendered" || State(42).String() != "state(42)" {
		t.Errorf("unexpected names: %s %s", Rendered, State(42))
	}
}
