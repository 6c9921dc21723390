package detect

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"image"
	"image/png"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/kozaktomas/makeup-tryon/internal/face"
	"github.com/kozaktomas/makeup-tryon/internal/face/facetest"
	"github.com/kozaktomas/makeup-tryon/internal/imageio"
)

func testImage(t *testing.T) *imageio.Image {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 4, 4))); err != nil {
		t.Fatal(err)
	}
	img, err := imageio.Decode(buf.Bytes(), filepath.Join(t.TempDir(), "portrait.png"))
	if err != nil {
		t.Fatal(err)
	}
	return img
}

func landmarkPairs() [][2]float64 {
	pts := facetest.Points()
	out := make([][2]float64, len(pts))
	for i, p := range pts {
		out[i] = [2]float64{p.X, p.Y}
	}
	return out
}

func TestClientDetect(t *testing.T) {
	var gotMIME, gotFilename string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/detect/landmarks" {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		defer file.Close()
		if _, err := io.ReadAll(file); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		gotMIME = header.Header.Get("Content-Type")
		gotFilename = header.Filename

		resp := landmarkResponse{
			FacesCount: 3,
			Faces: []faceDetection{
				{BBox: []float64{100, 100, 300, 340}, Landmarks: landmarkPairs(), DetScore: 0.71},
				{BBox: []float64{100, 100, 300, 340}, Landmarks: landmarkPairs()[:10], DetScore: 0.99},
				{BBox: []float64{100, 100, 300, 340}, Landmarks: landmarkPairs(), DetScore: 0.93},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	c := NewClient(server.URL+"/", time.Second)
	f, err := c.Detect(context.Background(), testImage(t))
	if err != nil {
		t.Fatalf("Detect() error = %v", err)
	}
	if f == nil {
		t.Fatal("Detect() returned no face")
	}
	if f.Score != 0.93 {
		t.Errorf("Score = %v, want the best complete face 0.93", f.Score)
	}
	if f.Box != facetest.Box {
		t.Errorf("Box = %+v, want %+v", f.Box, facetest.Box)
	}
	if f.Landmarks != facetest.Frontal().Landmarks {
		t.Error("landmarks not carried through")
	}
	if gotMIME != "image/png" {
		t.Errorf("part Content-Type = %q", gotMIME)
	}
	if gotFilename != "portrait.png" {
		t.Errorf("part filename = %q", gotFilename)
	}
}

func TestClientNoFace(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"faces_count":0,"faces":[]}`))
	}))
	defer server.Close()

	f, err := NewClient(server.URL, time.Second).Detect(context.Background(), testImage(t))
	if err != nil {
		t.Fatalf("Detect() error = %v", err)
	}
	if f != nil {
		t.Errorf("Detect() = %+v, want nil", f)
	}
}

func TestClientErrors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"server error", func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "model not loaded", http.StatusServiceUnavailable)
		}},
		{"bad json", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"faces":`))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()
			if _, err := NewClient(server.URL, time.Second).Detect(context.Background(), testImage(t)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestClientHonorsContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewClient(server.URL, 0).Detect(ctx, testImage(t))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

func writeDocument(t *testing.T, path string, doc Document) {
	t.Helper()
	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestFileDetect(t *testing.T) {
	img := testImage(t)
	fixture := facetest.Frontal()

	t.Run("missing sidecar means no face", func(t *testing.T) {
		f, err := File{}.Detect(context.Background(), img)
		if err != nil || f != nil {
			t.Errorf("Detect() = %v, %v, want nil, nil", f, err)
		}
	})

	t.Run("sidecar", func(t *testing.T) {
		writeDocument(t, SidecarPath(img.Name), NewDocument(fixture))
		f, err := File{}.Detect(context.Background(), img)
		if err != nil {
			t.Fatalf("Detect() error = %v", err)
		}
		if *f != *fixture {
			t.Errorf("Detect() = %+v, want fixture", f)
		}
	})

	t.Run("explicit path missing", func(t *testing.T) {
		_, err := File{Path: filepath.Join(t.TempDir(), "nope.json")}.Detect(context.Background(), img)
		if err == nil {
			t.Error("expected error")
		}
	})

	t.Run("wrong point count", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "short.json")
		doc := NewDocument(fixture)
		doc.Landmarks = doc.Landmarks[:67]
		writeDocument(t, path, doc)
		_, err := File{Path: path}.Detect(context.Background(), img)
		if !errors.Is(err, face.ErrInvalidLandmarks) {
			t.Errorf("error = %v, want ErrInvalidLandmarks", err)
		}
	})

	t.Run("zero box", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nobox.json")
		doc := NewDocument(fixture)
		doc.Box = face.Rect{}
		writeDocument(t, path, doc)
		_, err := File{Path: path}.Detect(context.Background(), img)
		if !errors.Is(err, face.ErrInvalidBox) {
			t.Errorf("error = %v, want ErrInvalidBox", err)
		}
	})
}

type countingDetector struct {
	calls atomic.Int32
	face  *face.Face
	err   error
}

func (d *countingDetector) Detect(context.Context, *imageio.Image) (*face.Face, error) {
	d.calls.Add(1)
	return d.face, d.err
}

func TestCached(t *testing.T) {
	img := testImage(t)

	t.Run("face is cached and copied", func(t *testing.T) {
		next := &countingDetector{face: facetest.Frontal()}
		c := NewCached(next, time.Minute)

		first, _ := c.Detect(context.Background(), img)
		first.Score = -1
		second, err := c.Detect(context.Background(), img)
		if err != nil {
			t.Fatal(err)
		}
		if next.calls.Load() != 1 {
			t.Errorf("next called %d times, want 1", next.calls.Load())
		}
		if second.Score != 0.98 {
			t.Errorf("cached face was modified through a returned copy: %v", second.Score)
		}
		if c.Len() != 1 {
			t.Errorf("Len() = %d", c.Len())
		}
	})

	t.Run("no face is cached", func(t *testing.T) {
		next := &countingDetector{}
		c := NewCached(next, time.Minute)
		for i := 0; i < 3; i++ {
			if f, err := c.Detect(context.Background(), img); f != nil || err != nil {
				t.Fatalf("Detect() = %v, %v", f, err)
			}
		}
		if next.calls.Load() != 1 {
			t.Errorf("next called %d times, want 1", next.calls.Load())
		}
	})

	t.Run("errors are not cached", func(t *testing.T) {
		next := &countingDetector{err: errors.New("boom")}
		c := NewCached(next, time.Minute)
		c.Detect(context.Background(), img)
		c.Detect(context.Background(), img)
		if next.calls.Load() != 2 {
			t.Errorf("next called %d times, want 2", next.calls.Load())
		}
		if c.Len() != 0 {
			t.Errorf("Len() = %d, want 0", c.Len())
		}
	})

	t.Run("flush", func(t *testing.T) {
		next := &countingDetector{face: facetest.Frontal()}
		c := NewCached(next, time.Minute)
		c.Detect(context.Background(), img)
		c.Flush()
		c.Detect(context.Background(), img)
		if next.calls.Load() != 2 {
			t.Errorf("next called %d times after flush, want 2", next.calls.Load())
		}
	})
}

func TestCacheKey(t *testing.T) {
	if cacheKey([]byte("a")) == cacheKey([]byte("b")) {
		t.Error("different bytes share a key")
	}
	if cacheKey([]byte("a")) != cacheKey([]byte("a")) {
		t.Error("key is not stable")
	}
}

func TestWithSidecar(t *testing.T) {
	img := testImage(t)
	next := &countingDetector{}
	d := WithSidecar(next)

	if f, err := d.Detect(context.Background(), img); f != nil || err != nil {
		t.Fatalf("Detect() = %v, %v, want next's nil result", f, err)
	}
	if next.calls.Load() != 1 {
		t.Fatalf("next called %d times, want 1", next.calls.Load())
	}

	writeDocument(t, SidecarPath(img.Name), NewDocument(facetest.Frontal()))
	f, err := d.Detect(context.Background(), img)
	if err != nil || f == nil {
		t.Fatalf("Detect() = %v, %v, want sidecar face", f, err)
	}
	if next.calls.Load() != 1 {
		t.Errorf("next called despite sidecar")
	}
}
