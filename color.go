package terminalcore

// Rgb is a 24-bit color split into three 8-bit channels.
type Rgb struct {
	R, G, B uint8
}

// NamedColor enumerates the 16 standard ANSI colors plus the two semantic
// slots used as default foreground/background so themes can remap them
// without rewriting the grid.
type NamedColor int

const (
	Black NamedColor = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
	BrightBlack
	BrightRed
	BrightGreen
	BrightYellow
	BrightBlue
	BrightMagenta
	BrightCyan
	BrightWhite
	Foreground
	Background
)

// ColorKind tags which variant a Color value holds.
type ColorKind uint8

const (
	ColorKindNamed ColorKind = iota
	ColorKindIndexed
	ColorKindTrueColor
)

// Color is a tagged union over the three ways a cell's foreground or
// background may be specified. The zero value is Named(Black); Cell's
// default foreground is Named(Foreground) (see DefaultForegroundColor).
type Color struct {
	Kind    ColorKind
	Named   NamedColor
	Indexed uint8
	RGB     Rgb
}

// NamedColorValue constructs a Color holding a NamedColor.
func NamedColorValue(n NamedColor) Color {
	return Color{Kind: ColorKindNamed, Named: n}
}

// IndexedColorValue constructs a Color holding a 256-color palette index.
func IndexedColorValue(idx uint8) Color {
	return Color{Kind: ColorKindIndexed, Indexed: idx}
}

// TrueColorValue constructs a Color holding a 24-bit RGB triple.
func TrueColorValue(rgb Rgb) Color {
	return Color{Kind: ColorKindTrueColor, RGB: rgb}
}

// DefaultForegroundColor is the default-foreground sentinel, Named(Foreground).
func DefaultForegroundColor() Color { return NamedColorValue(Foreground) }

// DefaultBackgroundColor is the default-background sentinel, Named(Background).
func DefaultBackgroundColor() Color { return NamedColorValue(Background) }

// standard16 holds the VGA-like 16-color table from the glossary, in
// NamedColor order 0-15.
var standard16 = [16]Rgb{
	{0, 0, 0},       // Black
	{205, 49, 49},   // Red
	{13, 188, 121},  // Green
	{229, 229, 16},  // Yellow
	{36, 114, 200},  // Blue
	{188, 63, 188},  // Magenta
	{17, 168, 205},  // Cyan
	{229, 229, 229}, // White
	{102, 102, 102}, // BrightBlack
	{241, 76, 76},   // BrightRed
	{35, 209, 139},  // BrightGreen
	{245, 245, 67},  // BrightYellow
	{59, 142, 234},  // BrightBlue
	{214, 112, 214}, // BrightMagenta
	{41, 184, 219},  // BrightCyan
	{255, 255, 255}, // BrightWhite
}

// palette256 is the full 0-255 boundary palette: the 16 standard colors,
// the 6x6x6 color cube (16-231), and the 24-step grayscale ramp (232-255).
var palette256 [256]Rgb

func init() {
	copy(palette256[0:16], standard16[:])

	i := 16
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				palette256[i] = Rgb{uint8(r * 51), uint8(g * 51), uint8(b * 51)}
				i++
			}
		}
	}

	for j := 0; j < 24; j++ {
		gray := uint8(8 + j*10)
		palette256[232+j] = Rgb{gray, gray, gray}
	}
}

// ThemeForeground and ThemeBackground are the RGB values the Foreground and
// Background semantic sentinels resolve to unless an embedder overrides
// them with SetTheme.
var (
	ThemeForeground = Rgb{200, 200, 200}
	ThemeBackground = Rgb{20, 20, 20}
)

// SetTheme overrides the RGB values that Foreground/Background resolve to.
// It does not touch the grid: cells keep carrying the semantic sentinel, so
// changing the theme repaints every cell referencing it for free.
func SetTheme(fg, bg Rgb) {
	ThemeForeground = fg
	ThemeBackground = bg
}

// ResolveColor converts any Color to concrete RGB, resolving semantic
// sentinels and palette indices at the boundary. Cells and the cursor keep
// carrying Color values unresolved; only callers crossing the FFI boundary
// (or rendering) should call this.
func ResolveColor(c Color) Rgb {
	switch c.Kind {
	case ColorKindTrueColor:
		return c.RGB
	case ColorKindIndexed:
		return palette256[c.Indexed]
	case ColorKindNamed:
		switch c.Named {
		case Foreground:
			return ThemeForeground
		case Background:
			return ThemeBackground
		default:
			if int(c.Named) >= 0 && int(c.Named) < 16 {
				return standard16[c.Named]
			}
			return ThemeForeground
		}
	default:
		return ThemeForeground
	}
}
