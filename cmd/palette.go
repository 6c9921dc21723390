package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/kozaktomas/makeup-tryon/internal/palette"
)

var paletteCmd = &cobra.Command{
	Use:   "palette",
	Short: "List every makeup option",
	Long: `List every option accepted by the selection flags and YAML files.
With --colors, print the resolved lipstick and eyeshadow colors for a look.`,
	Args: cobra.NoArgs,
	RunE: runPalette,
}

func init() {
	rootCmd.AddCommand(paletteCmd)

	paletteCmd.Flags().Bool("colors", false, "Print resolved colors instead of option names")
	paletteCmd.Flags().String("look", string(palette.LookNatural), "Look used with --colors")
}

func runPalette(cmd *cobra.Command, args []string) error {
	if mustGetBool(cmd, "colors") {
		raw := mustGetString(cmd, "look")
		look, ok := palette.ParseLook(raw)
		if !ok {
			return fmt.Errorf("unknown look: %s", raw)
		}
		return printColors(look)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "OPTION\tVALUES")
	fmt.Fprintln(w, "------\t------")
	rows := []struct {
		name   string
		values []string
	}{
		{"look", ids(palette.Looks)},
		{"lipstick", ids(palette.LipColors)},
		{"lipstick-style", ids(palette.LipStyles)},
		{"eyeshadow", ids(palette.EyeColors)},
		{"eyeshadow-style", ids(palette.EyeStyles)},
		{"eyeliner", ids(palette.EyelinerColors)},
		{"eyeliner-style", ids(palette.EyelinerStyles)},
		{"mascara-style", ids(palette.MascaraStyles)},
		{"shade", ids(palette.Shades)},
		{"blush", ids(palette.BlushColors)},
		{"contour", ids(palette.ContourLevels)},
		{"brows", ids(palette.BrowColors)},
		{"brows-style", ids(palette.BrowStyles)},
	}
	for _, r := range rows {
		fmt.Fprintf(w, "%s\t%s\n", r.name, strings.Join(r.values, ", "))
	}
	return w.Flush()
}

func printColors(look palette.Look) error {
	fmt.Printf("Look: %s\n\n", look)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "FEATURE\tCOLOR\tRGBA")
	fmt.Fprintln(w, "-------\t-----\t----")
	for _, c := range palette.LipColors {
		fmt.Fprintf(w, "lipstick\t%s\t%s\n", c, palette.Lipstick(c, look))
	}
	for _, c := range palette.EyeColors {
		fmt.Fprintf(w, "eyeshadow\t%s\t%s\n", c, palette.Eyeshadow(c, look))
	}
	for _, c := range palette.BlushColors {
		fmt.Fprintf(w, "blush\t%s\t%s\n", c, palette.Blush(c))
	}
	for _, s := range palette.Shades {
		fmt.Fprintf(w, "foundation\t%s\t%s\n", s, palette.Foundation(s))
	}
	return w.Flush()
}

func ids[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}
