package palette

import (
	"image/color"
	"math"
	"testing"

	"pgregory.net/rapid"
)

func TestTablesAreTotal(t *testing.T) {
	for _, c := range LipColors {
		for _, look := range Looks {
			if _, ok := lipTable[c][look]; !ok {
				t.Errorf("lipstick table missing %s/%s", c, look)
			}
		}
	}
	for _, c := range EyeColors {
		for _, look := range Looks {
			if _, ok := eyeTable[c][look]; !ok {
				t.Errorf("eyeshadow table missing %s/%s", c, look)
			}
		}
	}
	for _, c := range BlushColors {
		if _, ok := blushTable[c]; !ok {
			t.Errorf("blush table missing %s", c)
		}
	}
	for _, c := range BrowColors {
		if _, ok := browTable[c]; !ok {
			t.Errorf("brow table missing %s", c)
		}
	}
	for _, s := range Shades {
		if _, ok := shadeTable[s]; !ok {
			t.Errorf("foundation table missing %s", s)
		}
	}
	for _, c := range EyelinerColors {
		if _, ok := linerTable[c]; !ok {
			t.Errorf("eyeliner table missing %s", c)
		}
	}
	for _, l := range ContourLevels {
		if _, ok := contourTable[l]; !ok {
			t.Errorf("contour table missing %s", l)
		}
	}
}

func TestLipstick(t *testing.T) {
	tests := []struct {
		name     string
		color    LipColor
		look     Look
		expected RGBA
	}{
		{"red natural", LipRed, LookNatural, RGBA{204, 51, 51, 0.5}},
		{"red glamour", LipRed, LookGlamour, RGBA{204, 0, 0, 0.7}},
		{"pink party", LipPink, LookParty, RGBA{255, 51, 153, 0.8}},
		{"brown party keeps its own alpha", LipBrown, LookParty, RGBA{150, 90, 40, 0.7}},
		{"purple kpop", LipPurple, LookKpop, RGBA{180, 70, 230, 0.7}},
		{"unknown color falls back to red", LipColor("teal"), LookGlamour, RGBA{204, 0, 0, 0.7}},
		{"unknown look falls back to natural", LipCoral, Look("gothic"), RGBA{255, 153, 102, 0.5}},
		{"both unknown", LipColor(""), Look(""), RGBA{204, 51, 51, 0.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Lipstick(tt.color, tt.look)
			if result != tt.expected {
				t.Errorf("Lipstick(%q, %q) = %v, want %v", tt.color, tt.look, result, tt.expected)
			}
		})
	}
}

func TestEyeshadow(t *testing.T) {
	tests := []struct {
		name     string
		color    EyeColor
		look     Look
		expected RGBA
	}{
		{"purple natural", EyePurple, LookNatural, RGBA{204, 153, 204, 0.5}},
		{"purple party", EyePurple, LookParty, RGBA{153, 51, 255, 0.7}},
		{"gold smokey", EyeGold, LookSmokey, RGBA{218, 165, 32, 0.6}},
		{"green editorial", EyeGreen, LookEditorial, RGBA{0, 180, 120, 0.8}},
		{"unknown color falls back to purple", EyeColor("silver"), LookSmokey, RGBA{102, 0, 153, 0.6}},
		{"unknown look falls back to natural", EyeBlue, Look("retro"), RGBA{153, 204, 255, 0.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Eyeshadow(tt.color, tt.look)
			if result != tt.expected {
				t.Errorf("Eyeshadow(%q, %q) = %v, want %v", tt.color, tt.look, result, tt.expected)
			}
		})
	}
}

func TestLookInvariantDefaults(t *testing.T) {
	if got := Blush("coral"); got != Blush(BlushPink) {
		t.Errorf("Blush(unknown) = %v, want pink", got)
	}
	if got := Brow("green"); got != Brow(BrowBrown) {
		t.Errorf("Brow(unknown) = %v, want brown", got)
	}
	if got := Foundation("olive"); got != Foundation(ShadeMedium) {
		t.Errorf("Foundation(unknown) = %v, want medium", got)
	}
	if got := Eyeliner("white"); got != Eyeliner(LinerBlack) {
		t.Errorf("Eyeliner(unknown) = %v, want black", got)
	}
	if got := ContourStrength("extreme"); math.Abs(got-0.35) > 0.0001 {
		t.Errorf("ContourStrength(unknown) = %v, want 0.35", got)
	}
	if got := ContourStrength(ContourDramatic); math.Abs(got-0.65) > 0.0001 {
		t.Errorf("ContourStrength(dramatic) = %v, want 0.65", got)
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		feature  Feature
		colorID  string
		look     Look
		expected RGBA
	}{
		{"lipstick by id", FeatureLipstick, "Red-Dark", LookSmokey, RGBA{140, 0, 0, 0.6}},
		{"lipstick fuzzy id", FeatureLipstick, " pink dark ", LookNatural, RGBA{220, 100, 170, 0.5}},
		{"eyeshadow by id", FeatureEyeshadow, "gold", LookKpop, RGBA{255, 220, 80, 0.7}},
		{"blush ignores look", FeatureBlush, "peach", LookParty, RGBA{255, 180, 150, 0.9}},
		{"brow dark brown", FeatureBrows, "dark_brown", LookNatural, RGBA{70, 50, 30, 0.7}},
		{"foundation shade", FeatureFoundation, "tan", LookNatural, RGBA{240, 195, 160, 1}},
		{"eyeliner legacy hex", FeatureEyeliner, "#000000", LookNatural, RGBA{0, 0, 0, 1}},
		{"unknown lipstick id", FeatureLipstick, "chartreuse", LookNatural, RGBA{204, 51, 51, 0.5}},
		{"unknown look", FeatureEyeshadow, "blue", Look("noir"), RGBA{153, 204, 255, 0.5}},
		{"unknown feature", Feature("glitter"), "red", LookNatural, RGBA{204, 51, 51, 0.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Resolve(tt.feature, tt.colorID, tt.look)
			if result != tt.expected {
				t.Errorf("Resolve(%q, %q, %q) = %v, want %v", tt.feature, tt.colorID, tt.look, result, tt.expected)
			}
		})
	}
}

func TestResolveNeverFails(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		feature := Feature(rapid.String().Draw(rt, "feature"))
		if rapid.Bool().Draw(rt, "known") {
			feature = rapid.SampledFrom(Features).Draw(rt, "knownFeature")
		}
		colorID := rapid.String().Draw(rt, "color")
		look := Look(rapid.String().Draw(rt, "look"))

		c := Resolve(feature, colorID, look)
		if c.A < 0 || c.A > 1 || math.IsNaN(c.A) {
			rt.Fatalf("alpha out of range: %v", c)
		}
		if c != Resolve(feature, colorID, look) {
			rt.Fatalf("resolve is not deterministic for %q/%q/%q", feature, colorID, look)
		}
	})
}

func TestParse(t *testing.T) {
	tests := []struct {
		name   string
		parse  func(string) (string, bool)
		input  string
		want   string
		wantOK bool
	}{
		{"look exact", wrap(ParseLook), "glamour", "glamour", true},
		{"look upper", wrap(ParseLook), "KPOP", "kpop", true},
		{"look unknown", wrap(ParseLook), "gothic", "natural", false},
		{"lip spaced", wrap(ParseLipColor), "Red Dark", "red-dark", true},
		{"lip unknown", wrap(ParseLipColor), "teal", "red", false},
		{"blush diacritics", wrap(ParseBlushColor), "Rosé", "rose", true},
		{"blush underscore", wrap(ParseBlushColor), "light_pink", "light-pink", true},
		{"eye style", wrap(ParseEyeStyle), "cut crease", "cut-crease", true},
		{"eye style unknown", wrap(ParseEyeStyle), "glitter", "natural", false},
		{"lip style unknown", wrap(ParseLipStyle), "vinyl", "satin", false},
		{"liner hex", wrap(ParseEyelinerColor), "#000000", "black", true},
		{"liner navy", wrap(ParseEyelinerColor), "Navy", "navy", true},
		{"feature alias", wrap(ParseFeature), "brow", "brows", true},
		{"contour unknown", wrap(ParseContourLevel), "", "medium", false},
		{"shade collapse dashes", wrap(ParseShade), "  deep  ", "deep", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.parse(tt.input)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("parse(%q) = (%q, %v), want (%q, %v)", tt.input, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func wrap[T ~string](fn func(string) (T, bool)) func(string) (string, bool) {
	return func(s string) (string, bool) {
		v, ok := fn(s)
		return string(v), ok
	}
}

func TestNormalizeID(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Dark Brown", "dark-brown"},
		{"dark__brown", "dark-brown"},
		{"  Pink   Dark ", "pink-dark"},
		{"Rosé", "rose"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := NormalizeID(tt.input)
			if result != tt.expected {
				t.Errorf("NormalizeID(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestRGBA(t *testing.T) {
	c := RGBA{R: 250, G: 10, B: 128, A: 0.5}

	if got := c.Offset(40); got != (RGBA{255, 50, 168, 0.5}) {
		t.Errorf("Offset(40) = %v", got)
	}
	if got := c.Offset(-40); got != (RGBA{210, 0, 88, 0.5}) {
		t.Errorf("Offset(-40) = %v", got)
	}
	if got := c.WithAlpha(2).A; got != 1 {
		t.Errorf("WithAlpha(2).A = %v, want 1", got)
	}
	if got := c.ScaleAlpha(0.5).A; math.Abs(got-0.25) > 0.0001 {
		t.Errorf("ScaleAlpha(0.5).A = %v, want 0.25", got)
	}
	if got := c.NRGBA(); got != (color.NRGBA{250, 10, 128, 128}) {
		t.Errorf("NRGBA() = %v", got)
	}
	if got := c.String(); got != "rgba(250, 10, 128, 0.5)" {
		t.Errorf("String() = %q", got)
	}
	if got := Clamp01(math.NaN()); got != 0 {
		t.Errorf("Clamp01(NaN) = %v, want 0", got)
	}
}
