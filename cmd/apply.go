package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kozaktomas/makeup-tryon/internal/config"
	"github.com/kozaktomas/makeup-tryon/internal/imageio"
	"github.com/kozaktomas/makeup-tryon/internal/studio"
)

var applyCmd = &cobra.Command{
	Use:   "apply <image>",
	Short: "Apply a makeup look to a photo",
	Long: `Apply a makeup look to a single photo and save the result as PNG.
The face is taken from --landmarks, from a <image>.landmarks.json sidecar or
from the detection server. Without a face an approximate look is painted.`,
	Args: cobra.ExactArgs(1),
	RunE: runApply,
}

func init() {
	rootCmd.AddCommand(applyCmd)

	addSelectionFlags(applyCmd)
	applyCmd.Flags().StringP("output", "o", imageio.DefaultExportName, "Output PNG path")
	applyCmd.Flags().Int("max-size", 0, "Downscale the result to fit this size (0 = EXPORT_MAX_SIZE or keep)")
}

func runApply(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	output := mustGetString(cmd, "output")
	maxSize := mustGetInt(cmd, "max-size")
	if maxSize == 0 {
		maxSize = cfg.Export.MaxSize
	}

	sel, err := loadSelection(cmd)
	if err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	result, out, err := tryOn(ctx, newDetector(cmd, cfg), sel, args[0])
	if err != nil {
		return err
	}

	fmt.Printf("Look: %s\n", sel.Look)
	if out.State == studio.FallbackRendered {
		fmt.Println("No face found, painted the approximate look")
	} else {
		fmt.Printf("Face found (score %.2f)\n", out.Face.Score)
		fmt.Printf("Features: %v\n", out.Features)
	}

	path, err := imageio.SavePNG(output, imageio.Fit(result, maxSize))
	if err != nil {
		return err
	}
	fmt.Printf("Saved to %s\n", path)
	return nil
}
