package config

import (
	_ "embed"
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kozaktomas/makeup-tryon/internal/makeup"
	"github.com/kozaktomas/makeup-tryon/internal/palette"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Makeup is a makeup selection file: the look plus one record per feature.
type Makeup struct {
	Look   palette.Look  `yaml:"look"`
	Config makeup.Config `yaml:",inline"`
}

// DefaultMakeup returns the embedded default selection.
func DefaultMakeup() Makeup {
	m, _, err := ParseMakeup(defaultsYAML, Makeup{Look: palette.LookNatural, Config: makeup.DefaultConfig()})
	if err != nil {
		// This is an embedded file so this error should never happen in practice
		panic("failed to unmarshal embedded defaults.yaml: " + err.Error())
	}
	return m
}

// LoadMakeupFile reads a selection file over base. Keys missing from the
// file keep base's values.
func LoadMakeupFile(path string, base Makeup) (Makeup, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("failed to read makeup file: %w", err)
	}
	m, _, err := ParseMakeup(data, base)
	if err != nil {
		return base, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// ParseMakeup decodes data over base and normalizes every token. Unknown
// tokens are replaced by their default and reported (and logged) as
// warnings.
func ParseMakeup(data []byte, base Makeup) (Makeup, []string, error) {
	m := base
	if err := yaml.Unmarshal(data, &m); err != nil {
		return base, nil, fmt.Errorf("failed to parse makeup: %w", err)
	}
	warnings := m.normalize()
	for _, w := range warnings {
		log.Printf("config: %s", w)
	}
	return m, warnings, nil
}

func (m *Makeup) normalize() []string {
	var warnings []string
	check := func(field, raw string, ok bool, got string) {
		if !ok {
			warnings = append(warnings, fmt.Sprintf("%s: unknown value %q, using %q", field, raw, got))
		}
	}
	var ok bool
	c := &m.Config

	raw := string(m.Look)
	m.Look, ok = palette.ParseLook(raw)
	check("look", raw, ok, string(m.Look))

	// An empty or "none" lipstick/eyeshadow color turns the feature off.
	if raw := string(c.Lipstick.Color); isOff(raw) {
		c.Lipstick.Color = ""
	} else {
		c.Lipstick.Color, ok = palette.ParseLipColor(raw)
		check("lipstick.color", raw, ok, string(c.Lipstick.Color))
	}
	raw = string(c.Lipstick.Style)
	c.Lipstick.Style, ok = palette.ParseLipStyle(raw)
	check("lipstick.style", raw, ok, string(c.Lipstick.Style))

	if raw := string(c.Eyeshadow.Color); isOff(raw) {
		c.Eyeshadow.Color = ""
	} else {
		c.Eyeshadow.Color, ok = palette.ParseEyeColor(raw)
		check("eyeshadow.color", raw, ok, string(c.Eyeshadow.Color))
	}
	raw = string(c.Eyeshadow.Style)
	c.Eyeshadow.Style, ok = palette.ParseEyeStyle(raw)
	check("eyeshadow.style", raw, ok, string(c.Eyeshadow.Style))

	raw = string(c.Eyeliner.Style)
	c.Eyeliner.Style, ok = palette.ParseEyelinerStyle(raw)
	check("eyeliner.style", raw, ok, string(c.Eyeliner.Style))
	raw = string(c.Eyeliner.Color)
	c.Eyeliner.Color, ok = palette.ParseEyelinerColor(raw)
	check("eyeliner.color", raw, ok, string(c.Eyeliner.Color))

	raw = string(c.Mascara.Style)
	c.Mascara.Style, ok = palette.ParseMascaraStyle(raw)
	check("mascara.style", raw, ok, string(c.Mascara.Style))

	raw = string(c.Foundation.Shade)
	c.Foundation.Shade, ok = palette.ParseShade(raw)
	check("foundation.shade", raw, ok, string(c.Foundation.Shade))

	raw = string(c.Blush.Color)
	c.Blush.Color, ok = palette.ParseBlushColor(raw)
	check("blush.color", raw, ok, string(c.Blush.Color))

	raw = string(c.Contour.Level)
	c.Contour.Level, ok = palette.ParseContourLevel(raw)
	check("contour.level", raw, ok, string(c.Contour.Level))

	raw = string(c.Brows.Style)
	c.Brows.Style, ok = palette.ParseBrowStyle(raw)
	check("brows.style", raw, ok, string(c.Brows.Style))
	raw = string(c.Brows.Color)
	c.Brows.Color, ok = palette.ParseBrowColor(raw)
	check("brows.color", raw, ok, string(c.Brows.Color))

	return warnings
}

func isOff(raw string) bool {
	id := palette.NormalizeID(raw)
	return id == "" || id == "none" || id == "off"
}
