// Package makeup renders cosmetic layers onto a canvas from a face's
// landmarks and a makeup configuration.
package makeup

import "github.com/kozaktomas/makeup-tryon/internal/palette"

// Config is the full makeup selection. It is a value: every change produces
// a new Config through the With methods, and each render pass gets a copy.
type Config struct {
	Lipstick   LipstickConfig   `yaml:"lipstick"`
	Eyeshadow  EyeshadowConfig  `yaml:"eyeshadow"`
	Eyeliner   EyelinerConfig   `yaml:"eyeliner"`
	Mascara    MascaraConfig    `yaml:"mascara"`
	Foundation FoundationConfig `yaml:"foundation"`
	Blush      BlushConfig      `yaml:"blush"`
	Contour    ContourConfig    `yaml:"contour"`
	Brows      BrowsConfig      `yaml:"brows"`
}

// LipstickConfig is active whenever a color is set.
type LipstickConfig struct {
	Color     palette.LipColor `yaml:"color"`
	Style     palette.LipStyle `yaml:"style"`
	Intensity float64          `yaml:"intensity"`
}

// EyeshadowConfig is active whenever a color is set.
type EyeshadowConfig struct {
	Color     palette.EyeColor `yaml:"color"`
	Style     palette.EyeStyle `yaml:"style"`
	Intensity float64          `yaml:"intensity"`
}

type EyelinerConfig struct {
	Enabled bool                  `yaml:"enabled"`
	Style   palette.EyelinerStyle `yaml:"style"`
	Color   palette.EyelinerColor `yaml:"color"`
}

type MascaraConfig struct {
	Enabled bool                 `yaml:"enabled"`
	Style   palette.MascaraStyle `yaml:"style"`
}

type FoundationConfig struct {
	Enabled  bool          `yaml:"enabled"`
	Shade    palette.Shade `yaml:"shade"`
	Coverage float64       `yaml:"coverage"`
}

type BlushConfig struct {
	Enabled   bool               `yaml:"enabled"`
	Color     palette.BlushColor `yaml:"color"`
	Intensity float64            `yaml:"intensity"`
}

type ContourConfig struct {
	Enabled bool                 `yaml:"enabled"`
	Level   palette.ContourLevel `yaml:"level"`
}

type BrowsConfig struct {
	Enabled   bool              `yaml:"enabled"`
	Style     palette.BrowStyle `yaml:"style"`
	Color     palette.BrowColor `yaml:"color"`
	Intensity float64           `yaml:"intensity"`
}

// DefaultConfig is the selection a fresh image starts with.
func DefaultConfig() Config {
	return Config{
		Lipstick:   LipstickConfig{Color: palette.LipRed, Style: palette.LipMatte, Intensity: 0.7},
		Eyeshadow:  EyeshadowConfig{Color: palette.EyePurple, Style: palette.EyeNatural, Intensity: 0.5},
		Eyeliner:   EyelinerConfig{Enabled: false, Style: palette.LinerThin, Color: palette.LinerBlack},
		Mascara:    MascaraConfig{Enabled: false, Style: palette.MascaraNatural},
		Foundation: FoundationConfig{Enabled: true, Shade: palette.ShadeMedium, Coverage: 0.5},
		Blush:      BlushConfig{Enabled: true, Color: palette.BlushPink, Intensity: 0.4},
		Contour:    ContourConfig{Enabled: false, Level: palette.ContourSubtle},
		Brows:      BrowsConfig{Enabled: true, Style: palette.BrowNatural, Color: palette.BrowBrown, Intensity: 0.6},
	}
}

func (c Config) WithLipstick(l LipstickConfig) Config {
	c.Lipstick = l
	return c
}

func (c Config) WithEyeshadow(e EyeshadowConfig) Config {
	c.Eyeshadow = e
	return c
}

func (c Config) WithEyeliner(e EyelinerConfig) Config {
	c.Eyeliner = e
	return c
}

func (c Config) WithMascara(m MascaraConfig) Config {
	c.Mascara = m
	return c
}

func (c Config) WithFoundation(f FoundationConfig) Config {
	c.Foundation = f
	return c
}

func (c Config) WithBlush(b BlushConfig) Config {
	c.Blush = b
	return c
}

func (c Config) WithContour(ct ContourConfig) Config {
	c.Contour = ct
	return c
}

func (c Config) WithBrows(b BrowsConfig) Config {
	c.Brows = b
	return c
}

// WithEnabled toggles a feature. Lipstick and eyeshadow have no flag: turning
// them off clears the color and turning them on restores the default color
// when none is set.
func (c Config) WithEnabled(f palette.Feature, on bool) Config {
	def := DefaultConfig()
	switch f {
	case palette.FeatureLipstick:
		switch {
		case !on:
			c.Lipstick.Color = ""
		case c.Lipstick.Color == "":
			c.Lipstick.Color = def.Lipstick.Color
		}
	case palette.FeatureEyeshadow:
		switch {
		case !on:
			c.Eyeshadow.Color = ""
		case c.Eyeshadow.Color == "":
			c.Eyeshadow.Color = def.Eyeshadow.Color
		}
	case palette.FeatureEyeliner:
		c.Eyeliner.Enabled = on
	case palette.FeatureMascara:
		c.Mascara.Enabled = on
	case palette.FeatureFoundation:
		c.Foundation.Enabled = on
	case palette.FeatureBlush:
		c.Blush.Enabled = on
	case palette.FeatureContour:
		c.Contour.Enabled = on
	case palette.FeatureBrows:
		c.Brows.Enabled = on
	}
	return c
}

// Enabled reports whether the feature is part of the render pass.
func (c Config) Enabled(f palette.Feature) bool {
	switch f {
	case palette.FeatureLipstick:
		return c.Lipstick.Color != ""
	case palette.FeatureEyeshadow:
		return c.Eyeshadow.Color != ""
	case palette.FeatureEyeliner:
		return c.Eyeliner.Enabled
	case palette.FeatureMascara:
		return c.Mascara.Enabled
	case palette.FeatureFoundation:
		return c.Foundation.Enabled
	case palette.FeatureBlush:
		return c.Blush.Enabled
	case palette.FeatureContour:
		return c.Contour.Enabled
	case palette.FeatureBrows:
		return c.Brows.Enabled
	}
	return false
}

// EnabledFeatures lists the active features in layering order.
func (c Config) EnabledFeatures() []palette.Feature {
	var out []palette.Feature
	for _, f := range palette.Features {
		if c.Enabled(f) {
			out = append(out, f)
		}
	}
	return out
}
