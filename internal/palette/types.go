// Package palette holds the closed sets of cosmetic options (colors, styles,
// looks) and resolves them to concrete paint colors.
package palette

// Feature identifies one cosmetic layer.
type Feature string

const (
	FeatureFoundation Feature = "foundation"
	FeatureContour    Feature = "contour"
	FeatureBlush      Feature = "blush"
	FeatureEyeshadow  Feature = "eyeshadow"
	FeatureEyeliner   Feature = "eyeliner"
	FeatureMascara    Feature = "mascara"
	FeatureBrows      Feature = "brows"
	FeatureLipstick   Feature = "lipstick"
)

// Features lists every feature in layering order (bottom first).
var Features = []Feature{
	FeatureFoundation,
	FeatureContour,
	FeatureBlush,
	FeatureEyeshadow,
	FeatureEyeliner,
	FeatureMascara,
	FeatureBrows,
	FeatureLipstick,
}

// Look is the global look style selected once per render.
type Look string

const (
	LookNatural   Look = "natural"
	LookGlamour   Look = "glamour"
	LookSmokey    Look = "smokey"
	LookParty     Look = "party"
	LookVintage   Look = "vintage"
	LookEditorial Look = "editorial"
	LookSummer    Look = "summer"
	LookKpop      Look = "kpop"
)

var Looks = []Look{LookNatural, LookGlamour, LookSmokey, LookParty, LookVintage, LookEditorial, LookSummer, LookKpop}

// LipColor is a lipstick swatch.
type LipColor string

const (
	LipRed      LipColor = "red"
	LipRedDark  LipColor = "red-dark"
	LipPink     LipColor = "pink"
	LipPinkDark LipColor = "pink-dark"
	LipPurple   LipColor = "purple"
	LipCoral    LipColor = "coral"
	LipOrange   LipColor = "orange"
	LipBrown    LipColor = "brown"
)

var LipColors = []LipColor{LipRed, LipRedDark, LipPink, LipPinkDark, LipPurple, LipCoral, LipOrange, LipBrown}

// EyeColor is an eyeshadow swatch.
type EyeColor string

const (
	EyePurple     EyeColor = "purple"
	EyePurpleDark EyeColor = "purple-dark"
	EyeBlue       EyeColor = "blue"
	EyePink       EyeColor = "pink"
	EyeBrown      EyeColor = "brown"
	EyeGray       EyeColor = "gray"
	EyeGreen      EyeColor = "green"
	EyeGold       EyeColor = "gold"
)

var EyeColors = []EyeColor{EyePurple, EyePurpleDark, EyeBlue, EyePink, EyeBrown, EyeGray, EyeGreen, EyeGold}

// BlushColor is a blush swatch.
type BlushColor string

const (
	BlushLightPink BlushColor = "light-pink"
	BlushPink      BlushColor = "pink"
	BlushRose      BlushColor = "rose"
	BlushPeach     BlushColor = "peach"
)

var BlushColors = []BlushColor{BlushLightPink, BlushPink, BlushRose, BlushPeach}

// BrowColor is a brow pencil swatch.
type BrowColor string

const (
	BrowBlonde    BrowColor = "blonde"
	BrowAuburn    BrowColor = "auburn"
	BrowBrown     BrowColor = "brown"
	BrowDarkBrown BrowColor = "dark-brown"
	BrowBlack     BrowColor = "black"
)

var BrowColors = []BrowColor{BrowBlonde, BrowAuburn, BrowBrown, BrowDarkBrown, BrowBlack}

// EyelinerColor is an eyeliner swatch.
type EyelinerColor string

const (
	LinerBlack EyelinerColor = "black"
	LinerBrown EyelinerColor = "brown"
	LinerGray  EyelinerColor = "gray"
	LinerNavy  EyelinerColor = "navy"
)

var EyelinerColors = []EyelinerColor{LinerBlack, LinerBrown, LinerGray, LinerNavy}

// Shade is a foundation tone.
type Shade string

const (
	ShadeFair   Shade = "fair"
	ShadeLight  Shade = "light"
	ShadeMedium Shade = "medium"
	ShadeTan    Shade = "tan"
	ShadeDeep   Shade = "deep"
)

var Shades = []Shade{ShadeFair, ShadeLight, ShadeMedium, ShadeTan, ShadeDeep}

// ContourLevel selects how strong the contour shadow is.
type ContourLevel string

const (
	ContourSubtle   ContourLevel = "subtle"
	ContourMedium   ContourLevel = "medium"
	ContourDefined  ContourLevel = "defined"
	ContourDramatic ContourLevel = "dramatic"
)

var ContourLevels = []ContourLevel{ContourSubtle, ContourMedium, ContourDefined, ContourDramatic}

// LipStyle is the lipstick finish.
type LipStyle string

const (
	LipMatte  LipStyle = "matte"
	LipGlossy LipStyle = "glossy"
	LipSatin  LipStyle = "satin"
	LipSheer  LipStyle = "sheer"
	LipOmbre  LipStyle = "ombre"
)

var LipStyles = []LipStyle{LipMatte, LipGlossy, LipSatin, LipSheer, LipOmbre}

// EyeStyle is the eyeshadow technique.
type EyeStyle string

const (
	EyeNatural   EyeStyle = "natural"
	EyeSmokey    EyeStyle = "smokey"
	EyeCat       EyeStyle = "cat"
	EyeHalo      EyeStyle = "halo"
	EyeCutCrease EyeStyle = "cut-crease"
)

var EyeStyles = []EyeStyle{EyeNatural, EyeSmokey, EyeCat, EyeHalo, EyeCutCrease}

// EyelinerStyle is the eyeliner shape.
type EyelinerStyle string

const (
	LinerThin    EyelinerStyle = "thin"
	LinerThick   EyelinerStyle = "thick"
	LinerWinged  EyelinerStyle = "winged"
	LinerSmudged EyelinerStyle = "smudged"
)

var EyelinerStyles = []EyelinerStyle{LinerThin, LinerThick, LinerWinged, LinerSmudged}

// MascaraStyle is the lash look.
type MascaraStyle string

const (
	MascaraNatural  MascaraStyle = "natural"
	MascaraVolume   MascaraStyle = "volume"
	MascaraLength   MascaraStyle = "length"
	MascaraDramatic MascaraStyle = "dramatic"
)

var MascaraStyles = []MascaraStyle{MascaraNatural, MascaraVolume, MascaraLength, MascaraDramatic}

// BrowStyle is the brow shape.
type BrowStyle string

const (
	BrowNatural   BrowStyle = "natural"
	BrowDefined   BrowStyle = "defined"
	BrowBold      BrowStyle = "bold"
	BrowFeathered BrowStyle = "feathered"
)

var BrowStyles = []BrowStyle{BrowNatural, BrowDefined, BrowBold, BrowFeathered}
