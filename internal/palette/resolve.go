package palette

// Lipstick returns the lipstick color for c under look. Unknown values fall
// back to red and natural.
func Lipstick(c LipColor, look Look) RGBA {
	looks, ok := lipTable[c]
	if !ok {
		looks = lipTable[LipRed]
	}
	if col, ok := looks[look]; ok {
		return col
	}
	return looks[LookNatural]
}

// Eyeshadow returns the eyeshadow color for c under look. Unknown values fall
// back to purple and natural.
func Eyeshadow(c EyeColor, look Look) RGBA {
	looks, ok := eyeTable[c]
	if !ok {
		looks = eyeTable[EyePurple]
	}
	if col, ok := looks[look]; ok {
		return col
	}
	return looks[LookNatural]
}

func Blush(c BlushColor) RGBA {
	if col, ok := blushTable[c]; ok {
		return col
	}
	return blushTable[BlushPink]
}

func Brow(c BrowColor) RGBA {
	if col, ok := browTable[c]; ok {
		return col
	}
	return browTable[BrowBrown]
}

func Foundation(s Shade) RGBA {
	if col, ok := shadeTable[s]; ok {
		return col
	}
	return shadeTable[ShadeMedium]
}

func Eyeliner(c EyelinerColor) RGBA {
	if col, ok := linerTable[c]; ok {
		return col
	}
	return linerTable[LinerBlack]
}

// ContourStrength maps a contour level to its shadow opacity.
func ContourStrength(level ContourLevel) float64 {
	if v, ok := contourTable[level]; ok {
		return v
	}
	return contourTable[ContourMedium]
}

// Resolve looks up the paint color for a feature by raw color id. It never
// fails: unrecognized ids and looks resolve to the feature default. Features
// without a swatch (contour, mascara) resolve to the contour shadow tone and
// black respectively.
func Resolve(feature Feature, colorID string, look Look) RGBA {
	if _, ok := lipTable[LipRed][look]; !ok {
		look = LookNatural
	}
	switch feature {
	case FeatureLipstick:
		c, _ := ParseLipColor(colorID)
		return Lipstick(c, look)
	case FeatureEyeshadow:
		c, _ := ParseEyeColor(colorID)
		return Eyeshadow(c, look)
	case FeatureBlush:
		c, _ := ParseBlushColor(colorID)
		return Blush(c)
	case FeatureBrows:
		c, _ := ParseBrowColor(colorID)
		return Brow(c)
	case FeatureFoundation:
		s, _ := ParseShade(colorID)
		return Foundation(s)
	case FeatureEyeliner:
		c, _ := ParseEyelinerColor(colorID)
		return Eyeliner(c)
	case FeatureContour:
		return ContourShadow
	case FeatureMascara:
		return linerTable[LinerBlack]
	}
	return Lipstick(LipRed, LookNatural)
}
