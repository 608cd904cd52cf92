package terminalcore

// CellFlags is a bitset over the six rendition attributes this core
// tracks. Wider attribute sets (double/curly underline, dim, hidden,
// wide-character spacers) exist in richer emulators but are not part of
// this core's contract.
type CellFlags uint8

const (
	FlagBold CellFlags = 1 << iota
	FlagItalic
	FlagUnderline
	FlagBlink
	FlagInverse
	FlagStrikethrough
)

// Has reports whether flag is set.
func (f CellFlags) Has(flag CellFlags) bool { return f&flag != 0 }

// Set returns f with flag set.
func (f CellFlags) Set(flag CellFlags) CellFlags { return f | flag }

// Clear returns f with flag cleared.
func (f CellFlags) Clear(flag CellFlags) CellFlags { return f &^ flag }

// Cell is one position in the grid: a unicode scalar plus the rendition
// that was active when it was printed.
type Cell struct {
	Ch    rune
	Fg    Color
	Bg    Color
	Flags CellFlags
}

// DefaultCell returns the cell every grid position starts as and resets to:
// a space with the semantic Foreground/Background colors and no attributes.
func DefaultCell() Cell {
	return Cell{
		Ch: ' ',
		Fg: DefaultForegroundColor(),
		Bg: DefaultBackgroundColor(),
	}
}
