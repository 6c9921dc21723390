package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/kozaktomas/makeup-tryon/internal/config"
	"github.com/kozaktomas/makeup-tryon/internal/detect"
	"github.com/kozaktomas/makeup-tryon/internal/imageio"
	"github.com/kozaktomas/makeup-tryon/internal/studio"
)

var batchCmd = &cobra.Command{
	Use:   "batch <dir>",
	Short: "Apply a makeup look to every photo in a directory",
	Args:  cobra.ExactArgs(1),
	RunE:  runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	addSelectionFlags(batchCmd)
	batchCmd.Flags().String("out", "makeup-out", "Output directory")
	batchCmd.Flags().Int("concurrency", 4, "Number of photos processed in parallel")
	batchCmd.Flags().Int("max-size", 0, "Downscale results to fit this size (0 = EXPORT_MAX_SIZE or keep)")
}

func runBatch(cmd *cobra.Command, args []string) error {
	startTime := time.Now()
	cfg := config.Load()

	dir := args[0]
	outDir := mustGetString(cmd, "out")
	concurrency := max(1, mustGetInt(cmd, "concurrency"))
	maxSize := mustGetInt(cmd, "max-size")
	if maxSize == 0 {
		maxSize = cfg.Export.MaxSize
	}

	sel, err := loadSelection(cmd)
	if err != nil {
		return err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read directory: %w", err)
	}
	var paths []string
	for _, e := range entries {
		if !e.IsDir() && imageio.IsImageFile(e.Name()) {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	if len(paths) == 0 {
		fmt.Println("No images found.")
		return nil
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	fmt.Printf("Found %d images, look: %s\n\n", len(paths), sel.Look)

	ctx, cancel := signalContext()
	defer cancel()

	// One detector (and cache) shared by every session.
	det := newDetector(cmd, cfg)

	bar := progressbar.NewOptions(len(paths),
		progressbar.OptionSetDescription("Applying makeup"),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetItsString("photos"),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetPredictTime(true),
		progressbar.OptionFullWidth(),
	)

	var rendered, fallback int64
	var mu sync.Mutex
	var failures []string
	sem := make(chan struct{}, concurrency)
	var wg sync.WaitGroup

	for _, path := range paths {
		wg.Add(1)
		go func(path string) {
			defer wg.Done()

			sem <- struct{}{}
			defer func() { <-sem }()

			state, err := batchOne(ctx, det, sel, path, outDir, maxSize)
			if err != nil {
				mu.Lock()
				failures = append(failures, fmt.Sprintf("%s: %v", filepath.Base(path), err))
				mu.Unlock()
			} else if state == studio.FallbackRendered {
				atomic.AddInt64(&fallback, 1)
			} else {
				atomic.AddInt64(&rendered, 1)
			}
			bar.Add(1)
		}(path)
	}

	wg.Wait()
	fmt.Println()

	fmt.Println("\nBatch complete!")
	fmt.Printf("  Faces rendered: %d\n", rendered)
	fmt.Printf("  Fallback looks: %d\n", fallback)
	if len(failures) > 0 {
		fmt.Printf("  Errors:         %d\n", len(failures))
		for _, f := range failures {
			fmt.Printf("    %s\n", f)
		}
	}
	fmt.Printf("  Output:         %s\n", outDir)
	fmt.Printf("  Duration:       %s\n", formatDuration(time.Since(startTime)))
	return nil
}

func batchOne(ctx context.Context, det detect.Detector, sel config.Makeup, path, outDir string, maxSize int) (studio.State, error) {
	result, out, err := tryOn(ctx, det, sel, path)
	if err != nil {
		return out.State, err
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)) + ".png"
	if _, err := imageio.SavePNG(filepath.Join(outDir, name), imageio.Fit(result, maxSize)); err != nil {
		return out.State, err
	}
	return out.State, nil
}
