package palette

// lipTable holds the lipstick color for every swatch under every look.
var lipTable = map[LipColor]map[Look]RGBA{
	LipRed: {
		LookNatural:   rgba(204, 51, 51, 0.5),
		LookGlamour:   rgba(204, 0, 0, 0.7),
		LookSmokey:    rgba(153, 0, 0, 0.6),
		LookParty:     rgba(255, 0, 51, 0.8),
		LookVintage:   rgba(153, 0, 51, 0.7),
		LookEditorial: rgba(255, 30, 30, 0.8),
		LookSummer:    rgba(255, 80, 80, 0.6),
		LookKpop:      rgba(255, 0, 80, 0.7),
	},
	LipRedDark: {
		LookNatural:   rgba(180, 30, 30, 0.5),
		LookGlamour:   rgba(180, 0, 0, 0.7),
		LookSmokey:    rgba(140, 0, 0, 0.6),
		LookParty:     rgba(190, 0, 0, 0.8),
		LookVintage:   rgba(140, 0, 30, 0.7),
		LookEditorial: rgba(190, 0, 0, 0.8),
		LookSummer:    rgba(180, 40, 40, 0.6),
		LookKpop:      rgba(180, 0, 50, 0.7),
	},
	LipPink: {
		LookNatural:   rgba(255, 153, 204, 0.5),
		LookGlamour:   rgba(255, 102, 204, 0.7),
		LookSmokey:    rgba(204, 102, 153, 0.6),
		LookParty:     rgba(255, 51, 153, 0.8),
		LookVintage:   rgba(255, 102, 153, 0.7),
		LookEditorial: rgba(255, 0, 204, 0.8),
		LookSummer:    rgba(255, 153, 180, 0.6),
		LookKpop:      rgba(255, 102, 204, 0.7),
	},
	LipPinkDark: {
		LookNatural:   rgba(220, 100, 170, 0.5),
		LookGlamour:   rgba(220, 60, 150, 0.7),
		LookSmokey:    rgba(180, 80, 130, 0.6),
		LookParty:     rgba(220, 40, 130, 0.8),
		LookVintage:   rgba(190, 80, 130, 0.7),
		LookEditorial: rgba(220, 0, 150, 0.8),
		LookSummer:    rgba(220, 100, 150, 0.6),
		LookKpop:      rgba(220, 50, 150, 0.7),
	},
	LipPurple: {
		LookNatural:   rgba(204, 153, 204, 0.5),
		LookGlamour:   rgba(153, 51, 153, 0.7),
		LookSmokey:    rgba(102, 0, 102, 0.6),
		LookParty:     rgba(204, 0, 204, 0.8),
		LookVintage:   rgba(153, 51, 204, 0.7),
		LookEditorial: rgba(180, 0, 230, 0.8),
		LookSummer:    rgba(180, 120, 200, 0.6),
		LookKpop:      rgba(180, 70, 230, 0.7),
	},
	LipCoral: {
		LookNatural:   rgba(255, 153, 102, 0.5),
		LookGlamour:   rgba(255, 102, 51, 0.7),
		LookSmokey:    rgba(204, 102, 51, 0.6),
		LookParty:     rgba(255, 102, 0, 0.8),
		LookVintage:   rgba(255, 153, 51, 0.7),
		LookEditorial: rgba(255, 100, 50, 0.8),
		LookSummer:    rgba(255, 140, 100, 0.6),
		LookKpop:      rgba(255, 120, 80, 0.7),
	},
	LipOrange: {
		LookNatural:   rgba(255, 180, 110, 0.5),
		LookGlamour:   rgba(255, 120, 50, 0.7),
		LookSmokey:    rgba(220, 100, 50, 0.6),
		LookParty:     rgba(255, 110, 30, 0.8),
		LookVintage:   rgba(230, 140, 60, 0.7),
		LookEditorial: rgba(255, 100, 30, 0.8),
		LookSummer:    rgba(255, 150, 90, 0.6),
		LookKpop:      rgba(255, 130, 70, 0.7),
	},
	LipBrown: {
		LookNatural:   rgba(170, 120, 90, 0.5),
		LookGlamour:   rgba(150, 90, 50, 0.7),
		LookSmokey:    rgba(130, 80, 40, 0.6),
		LookParty:     rgba(150, 90, 40, 0.7),
		LookVintage:   rgba(204, 153, 102, 0.6),
		LookEditorial: rgba(160, 100, 50, 0.8),
		LookSummer:    rgba(190, 150, 110, 0.6),
		LookKpop:      rgba(180, 130, 90, 0.7),
	},
}

// eyeTable holds the eyeshadow color for every swatch under every look.
var eyeTable = map[EyeColor]map[Look]RGBA{
	EyePurple: {
		LookNatural:   rgba(204, 153, 204, 0.5),
		LookGlamour:   rgba(153, 102, 204, 0.7),
		LookSmokey:    rgba(102, 0, 153, 0.6),
		LookParty:     rgba(153, 51, 255, 0.7),
		LookVintage:   rgba(204, 153, 255, 0.6),
		LookEditorial: rgba(180, 80, 230, 0.8),
		LookSummer:    rgba(200, 160, 240, 0.6),
		LookKpop:      rgba(190, 120, 255, 0.7),
	},
	EyePurpleDark: {
		LookNatural:   rgba(150, 100, 180, 0.5),
		LookGlamour:   rgba(120, 60, 160, 0.7),
		LookSmokey:    rgba(90, 40, 130, 0.6),
		LookParty:     rgba(120, 30, 180, 0.7),
		LookVintage:   rgba(140, 80, 190, 0.6),
		LookEditorial: rgba(130, 50, 180, 0.8),
		LookSummer:    rgba(150, 90, 200, 0.6),
		LookKpop:      rgba(140, 60, 190, 0.7),
	},
	EyeBlue: {
		LookNatural:   rgba(153, 204, 255, 0.5),
		LookGlamour:   rgba(102, 153, 255, 0.7),
		LookSmokey:    rgba(51, 102, 204, 0.6),
		LookParty:     rgba(0, 102, 255, 0.7),
		LookVintage:   rgba(153, 204, 255, 0.6),
		LookEditorial: rgba(0, 150, 255, 0.8),
		LookSummer:    rgba(120, 200, 255, 0.6),
		LookKpop:      rgba(100, 180, 255, 0.7),
	},
	EyePink: {
		LookNatural:   rgba(255, 204, 229, 0.5),
		LookGlamour:   rgba(255, 153, 204, 0.7),
		LookSmokey:    rgba(204, 102, 153, 0.6),
		LookParty:     rgba(255, 102, 178, 0.7),
		LookVintage:   rgba(255, 178, 204, 0.6),
		LookEditorial: rgba(255, 120, 200, 0.8),
		LookSummer:    rgba(255, 180, 220, 0.6),
		LookKpop:      rgba(255, 150, 220, 0.7),
	},
	EyeBrown: {
		LookNatural:   rgba(204, 153, 102, 0.5),
		LookGlamour:   rgba(153, 102, 51, 0.7),
		LookSmokey:    rgba(102, 51, 0, 0.6),
		LookParty:     rgba(153, 102, 51, 0.7),
		LookVintage:   rgba(204, 153, 102, 0.6),
		LookEditorial: rgba(160, 100, 50, 0.8),
		LookSummer:    rgba(190, 150, 110, 0.6),
		LookKpop:      rgba(180, 130, 90, 0.7),
	},
	EyeGray: {
		LookNatural:   rgba(204, 204, 204, 0.5),
		LookGlamour:   rgba(153, 153, 153, 0.7),
		LookSmokey:    rgba(102, 102, 102, 0.6),
		LookParty:     rgba(128, 128, 128, 0.7),
		LookVintage:   rgba(192, 192, 192, 0.6),
		LookEditorial: rgba(120, 120, 120, 0.8),
		LookSummer:    rgba(180, 180, 180, 0.6),
		LookKpop:      rgba(150, 150, 150, 0.7),
	},
	EyeGreen: {
		LookNatural:   rgba(153, 204, 153, 0.5),
		LookGlamour:   rgba(102, 204, 102, 0.7),
		LookSmokey:    rgba(51, 153, 51, 0.6),
		LookParty:     rgba(0, 153, 0, 0.7),
		LookVintage:   rgba(153, 204, 153, 0.6),
		LookEditorial: rgba(0, 180, 120, 0.8),
		LookSummer:    rgba(120, 220, 170, 0.6),
		LookKpop:      rgba(100, 210, 150, 0.7),
	},
	EyeGold: {
		LookNatural:   rgba(255, 215, 0, 0.5),
		LookGlamour:   rgba(255, 215, 0, 0.7),
		LookSmokey:    rgba(218, 165, 32, 0.6),
		LookParty:     rgba(255, 215, 0, 0.7),
		LookVintage:   rgba(255, 223, 0, 0.6),
		LookEditorial: rgba(255, 215, 0, 0.8),
		LookSummer:    rgba(255, 223, 120, 0.6),
		LookKpop:      rgba(255, 220, 80, 0.7),
	},
}

// Look-invariant swatches.
var (
	blushTable = map[BlushColor]RGBA{
		BlushLightPink: rgba(255, 200, 200, 0.9),
		BlushPink:      rgba(255, 150, 170, 0.9),
		BlushRose:      rgba(230, 120, 150, 0.9),
		BlushPeach:     rgba(255, 180, 150, 0.9),
	}

	browTable = map[BrowColor]RGBA{
		BrowBlonde:    rgba(205, 170, 120, 0.7),
		BrowAuburn:    rgba(140, 80, 40, 0.7),
		BrowBrown:     rgba(110, 70, 40, 0.7),
		BrowDarkBrown: rgba(70, 50, 30, 0.7),
		BrowBlack:     rgba(40, 35, 30, 0.7),
	}

	// Foundation alpha is set from coverage at render time.
	shadeTable = map[Shade]RGBA{
		ShadeFair:   rgba(255, 233, 224, 1),
		ShadeLight:  rgba(255, 225, 205, 1),
		ShadeMedium: rgba(255, 215, 185, 1),
		ShadeTan:    rgba(240, 195, 160, 1),
		ShadeDeep:   rgba(210, 170, 140, 1),
	}

	linerTable = map[EyelinerColor]RGBA{
		LinerBlack: rgba(0, 0, 0, 1),
		LinerBrown: rgba(75, 50, 30, 1),
		LinerGray:  rgba(90, 90, 90, 1),
		LinerNavy:  rgba(20, 30, 80, 1),
	}

	contourTable = map[ContourLevel]float64{
		ContourSubtle:   0.2,
		ContourMedium:   0.35,
		ContourDefined:  0.5,
		ContourDramatic: 0.65,
	}
)

// Fixed contour tones.
var (
	ContourShadow    = rgba(120, 90, 70, 1)
	ContourHighlight = rgba(255, 240, 220, 1)
)
