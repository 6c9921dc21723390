package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/kozaktomas/makeup-tryon/internal/config"
	"github.com/kozaktomas/makeup-tryon/internal/palette"
)

// addSelectionFlags registers the makeup selection flags shared by apply
// and batch.
func addSelectionFlags(c *cobra.Command) {
	c.Flags().String("config", "", "Makeup selection YAML file (same schema as the built-in defaults)")
	c.Flags().String("look", "", "Look style: natural, glamour, smokey, party, vintage, editorial, summer, kpop")
	c.Flags().String("lipstick", "", "Lipstick color, or none")
	c.Flags().String("lipstick-style", "", "Lipstick finish: matte, glossy, satin, sheer, ombre")
	c.Flags().String("eyeshadow", "", "Eyeshadow color, or none")
	c.Flags().String("eyeshadow-style", "", "Eyeshadow style: natural, smokey, cat, halo, cut-crease")
	c.Flags().String("blush", "", "Blush color, or none")
	c.Flags().String("shade", "", "Foundation shade, or none")
	c.Flags().String("contour", "", "Contour level, or none")
	c.Flags().Bool("fallback", false, "Skip face detection and paint the approximate look")
	c.Flags().String("landmarks", "", "Landmark JSON file to use instead of the detection server")
}

// loadSelection builds the makeup selection: embedded defaults, then the
// --config file, then individual flags.
func loadSelection(cmd *cobra.Command) (config.Makeup, error) {
	sel := config.DefaultMakeup()
	if path := mustGetString(cmd, "config"); path != "" {
		var err error
		if sel, err = config.LoadMakeupFile(path, sel); err != nil {
			return sel, err
		}
	}

	overlay := selectionOverlay(cmd)
	if len(overlay) == 0 {
		return sel, nil
	}
	data, err := yaml.Marshal(overlay)
	if err != nil {
		return sel, fmt.Errorf("failed to encode flag overrides: %w", err)
	}
	sel, _, err = config.ParseMakeup(data, sel)
	return sel, err
}

// selectionOverlay turns the set flags into a partial selection document.
func selectionOverlay(cmd *cobra.Command) map[string]any {
	overlay := map[string]any{}
	section := func(name string) map[string]any {
		s, ok := overlay[name].(map[string]any)
		if !ok {
			s = map[string]any{}
			overlay[name] = s
		}
		return s
	}
	set := func(flag, sectionName, key string) {
		if v := mustGetString(cmd, flag); v != "" {
			section(sectionName)[key] = v
		}
	}
	// toggle handles flags where "none" disables the feature and any other
	// value enables it.
	toggle := func(flag, sectionName, key string) {
		v := mustGetString(cmd, flag)
		if v == "" {
			return
		}
		s := section(sectionName)
		if isNone(v) {
			s["enabled"] = false
			return
		}
		s["enabled"] = true
		s[key] = v
	}

	if v := mustGetString(cmd, "look"); v != "" {
		overlay["look"] = v
	}
	set("lipstick", "lipstick", "color")
	set("lipstick-style", "lipstick", "style")
	set("eyeshadow", "eyeshadow", "color")
	set("eyeshadow-style", "eyeshadow", "style")
	toggle("blush", "blush", "color")
	toggle("shade", "foundation", "shade")
	toggle("contour", "contour", "level")
	return overlay
}

func isNone(v string) bool {
	id := palette.NormalizeID(v)
	return id == "none" || id == "off"
}
