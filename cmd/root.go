package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var detectorURL string

var rootCmd = &cobra.Command{
	Use:   "makeup-tryon",
	Short: "A CLI tool for virtual makeup try-on",
	Long: `Makeup Try-On renders lipstick, eyeshadow, blush, foundation and contour
onto portrait photos. Faces are located by a landmark detection server (or a
landmark JSON file) and each cosmetic is drawn from the 68 facial landmarks.
When no face is found an approximate look is painted at fixed positions.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&detectorURL, "detector", "", "Landmark detection server URL (overrides DETECTOR_URL)")
}

func initConfig() {
	// .env file is optional, don't fail if not found
	_ = godotenv.Load()
}
