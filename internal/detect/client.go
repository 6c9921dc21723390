package detect

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"path/filepath"
	"strings"
	"time"

	"github.com/kozaktomas/makeup-tryon/internal/face"
	"github.com/kozaktomas/makeup-tryon/internal/imageio"
)

const defaultDetectorURL = "http://localhost:8000"

// Client asks a landmark detection server for the faces in an image.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient creates a detection client. A zero timeout means no timeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = defaultDetectorURL
	}
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// faceDetection is a single face in the server response.
type faceDetection struct {
	BBox      []float64    `json:"bbox"` // [x1, y1, x2, y2]
	Landmarks [][2]float64 `json:"landmarks"`
	DetScore  float64      `json:"det_score"`
}

// landmarkResponse is the response of the landmark endpoint.
type landmarkResponse struct {
	FacesCount int             `json:"faces_count"`
	Faces      []faceDetection `json:"faces"`
}

// Detect returns the highest-scoring face with a usable landmark set.
func (c *Client) Detect(ctx context.Context, img *imageio.Image) (*face.Face, error) {
	body, err := c.postMultipartImage(ctx, "/detect/landmarks", img)
	if err != nil {
		return nil, err
	}

	var resp landmarkResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	var best *face.Face
	for i, det := range resp.Faces {
		f, err := det.face()
		if err != nil {
			log.Printf("detect: skipping face %d in %s: %v", i, img.Name, err)
			continue
		}
		if best == nil || f.Score > best.Score {
			best = f
		}
	}
	return best, nil
}

func (d faceDetection) face() (*face.Face, error) {
	box, ok := face.RectFromBBox(d.BBox)
	if !ok {
		return nil, face.ErrInvalidBox
	}
	set, err := setFromPairs(d.Landmarks)
	if err != nil {
		return nil, err
	}
	f := &face.Face{Box: box, Landmarks: set, Score: d.DetScore}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f, nil
}

// postMultipartImage posts the encoded image as the "file" form field.
func (c *Client) postMultipartImage(ctx context.Context, endpoint string, img *imageio.Image) ([]byte, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	filename := filepath.Base(img.Name)
	if filename == "" || filename == "." {
		filename = "image"
	}
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, filename))
	h.Set("Content-Type", imageio.DetectMIMEType(img.Encoded))
	part, err := writer.CreatePart(h)
	if err != nil {
		return nil, fmt.Errorf("failed to create form file: %w", err)
	}

	if _, err := part.Write(img.Encoded); err != nil {
		return nil, fmt.Errorf("failed to write image data: %w", err)
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to close multipart writer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+endpoint, &buf)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(body))
	}

	return body, nil
}
