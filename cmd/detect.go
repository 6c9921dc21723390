package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/kozaktomas/makeup-tryon/internal/config"
	"github.com/kozaktomas/makeup-tryon/internal/detect"
	"github.com/kozaktomas/makeup-tryon/internal/imageio"
)

var detectCmd = &cobra.Command{
	Use:   "detect <image>",
	Short: "Detect the face landmarks in a photo",
	Long: `Detect the face landmarks in a photo and print them as JSON.
The output can be saved as <image>.landmarks.json and is then used by apply
and batch instead of calling the detection server.`,
	Args: cobra.ExactArgs(1),
	RunE: runDetect,
}

func init() {
	rootCmd.AddCommand(detectCmd)
}

func runDetect(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	img, err := imageio.Load(args[0])
	if err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	f, err := remoteDetector(cfg).Detect(ctx, img)
	if err != nil {
		return err
	}
	if f == nil {
		return errors.New("no face found")
	}
	return outputJSON(detect.NewDocument(f))
}
