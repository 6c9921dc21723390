package palette

import (
	"slices"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// removeDiacritics strips combining marks (e.g., "Rosé" -> "Rose").
func removeDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, s)
	return result
}

// NormalizeID turns user input into the canonical id form: lowercase,
// no diacritics, words joined by dashes ("Dark Brown" -> "dark-brown").
func NormalizeID(raw string) string {
	s := strings.ToLower(strings.TrimSpace(removeDiacritics(raw)))
	s = strings.Map(func(r rune) rune {
		if r == '_' || unicode.IsSpace(r) {
			return '-'
		}
		return r
	}, s)
	for strings.Contains(s, "--") {
		s = strings.ReplaceAll(s, "--", "-")
	}
	return s
}

// parseID matches raw against the closed set all. Unknown input yields def
// and false.
func parseID[T ~string](raw string, all []T, def T) (T, bool) {
	id := T(NormalizeID(raw))
	if slices.Contains(all, id) {
		return id, true
	}
	return def, false
}

func ParseLook(raw string) (Look, bool) { return parseID(raw, Looks, LookNatural) }

func ParseLipColor(raw string) (LipColor, bool) { return parseID(raw, LipColors, LipRed) }

func ParseEyeColor(raw string) (EyeColor, bool) { return parseID(raw, EyeColors, EyePurple) }

func ParseBlushColor(raw string) (BlushColor, bool) { return parseID(raw, BlushColors, BlushPink) }

func ParseBrowColor(raw string) (BrowColor, bool) { return parseID(raw, BrowColors, BrowBrown) }

func ParseShade(raw string) (Shade, bool) { return parseID(raw, Shades, ShadeMedium) }

func ParseContourLevel(raw string) (ContourLevel, bool) {
	return parseID(raw, ContourLevels, ContourMedium)
}

func ParseLipStyle(raw string) (LipStyle, bool) { return parseID(raw, LipStyles, LipSatin) }

func ParseEyeStyle(raw string) (EyeStyle, bool) { return parseID(raw, EyeStyles, EyeNatural) }

func ParseEyelinerStyle(raw string) (EyelinerStyle, bool) {
	return parseID(raw, EyelinerStyles, LinerThin)
}

func ParseMascaraStyle(raw string) (MascaraStyle, bool) {
	return parseID(raw, MascaraStyles, MascaraNatural)
}

func ParseBrowStyle(raw string) (BrowStyle, bool) { return parseID(raw, BrowStyles, BrowNatural) }

// ParseEyelinerColor also accepts the legacy "#000000" value for black.
func ParseEyelinerColor(raw string) (EyelinerColor, bool) {
	if strings.TrimSpace(raw) == "#000000" {
		return LinerBlack, true
	}
	return parseID(raw, EyelinerColors, LinerBlack)
}

// ParseFeature matches a feature name; "brow" is accepted for brows.
func ParseFeature(raw string) (Feature, bool) {
	if NormalizeID(raw) == "brow" {
		return FeatureBrows, true
	}
	return parseID(raw, Features, FeatureLipstick)
}
