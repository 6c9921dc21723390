package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"image"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/kozaktomas/makeup-tryon/internal/config"
	"github.com/kozaktomas/makeup-tryon/internal/detect"
	"github.com/kozaktomas/makeup-tryon/internal/imageio"
	"github.com/kozaktomas/makeup-tryon/internal/studio"
)

// newDetector picks the face source from the flags: none with --fallback,
// a landmark file with --landmarks, otherwise sidecar files backed by the
// cached detection server.
func newDetector(cmd *cobra.Command, cfg *config.Config) detect.Detector {
	if mustGetBool(cmd, "fallback") {
		return detect.None
	}
	if path := mustGetString(cmd, "landmarks"); path != "" {
		return detect.File{Path: path}
	}
	return detect.WithSidecar(remoteDetector(cfg))
}

func remoteDetector(cfg *config.Config) *detect.Cached {
	url := cfg.Detector.URL
	if detectorURL != "" {
		url = detectorURL
	}
	client := detect.NewClient(url, cfg.Detector.Timeout())
	return detect.NewCached(client, cfg.Cache.TTL())
}

// tryOn renders sel onto the image at path and returns the flattened result.
func tryOn(ctx context.Context, det detect.Detector, sel config.Makeup, path string) (*image.RGBA, studio.Outcome, error) {
	img, err := imageio.Load(path)
	if err != nil {
		return nil, studio.Outcome{}, err
	}

	s := studio.NewSession(det, sel.Config)
	if err := s.LoadImage(img); err != nil {
		return nil, studio.Outcome{}, err
	}
	out, err := s.Apply(ctx, sel.Config, sel.Look)
	if err != nil {
		return nil, out, fmt.Errorf("failed to apply makeup: %w", err)
	}
	result, err := s.Export()
	if err != nil {
		return nil, out, err
	}
	return result, out, nil
}

// signalContext returns a context cancelled on Ctrl+C or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		select {
		case <-sigChan:
			fmt.Println("\nReceived interrupt signal...")
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigChan)
	}()

	return ctx, cancel
}

func outputJSON(data any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}
	return nil
}

func formatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		return fmt.Sprintf("%dm%ds", int(d.Minutes()), int(d.Seconds())%60)
	}
	return fmt.Sprintf("%dh%dm", int(d.Hours()), int(d.Minutes())%60)
}
