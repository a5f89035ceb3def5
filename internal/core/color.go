package core

// Color is a palette entry for a surface cell. The platform layer maps
// each entry to a concrete terminal color.
type Color uint8

// Palette used by the screens.
const (
	ColorDefault Color = iota
	ColorPink
	ColorPurple
	ColorLightBlue
	ColorMintGreen
	ColorWhite
	ColorBlack
	ColorGray
)

// Hex returns the RGB value of the color, or "" for ColorDefault.
func (c Color) Hex() string {
	switch c {
	case ColorPink:
		return "#FFC0CB"
	case ColorPurple:
		return "#9370DB"
	case ColorLightBlue:
		return "#ADD8E6"
	case ColorMintGreen:
		return "#98FF98"
	case ColorWhite:
		return "#FFFFFF"
	case ColorBlack:
		return "#000000"
	case ColorGray:
		return "#808080"
	default:
		return ""
	}
}

// String returns the palette name.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorPink:
		return "pink"
	case ColorPurple:
		return "purple"
	case ColorLightBlue:
		return "light_blue"
	case ColorMintGreen:
		return "mint_green"
	case ColorWhite:
		return "white"
	case ColorBlack:
		return "black"
	case ColorGray:
		return "gray"
	default:
		return "unknown"
	}
}
