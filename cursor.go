package terminalcore

// Cursor carries the active rendition to apply to the next printed
// character. It is distinct from any cell it happens to be positioned
// over — moving the cursor never touches the grid.
type Cursor struct {
	Row, Col int
	Fg, Bg   Color
	Flags    CellFlags
}

// NewCursor returns a cursor at the origin with default rendition.
func NewCursor() Cursor {
	return Cursor{
		Fg: DefaultForegroundColor(),
		Bg: DefaultBackgroundColor(),
	}
}

// snapshot returns a copy of the cursor suitable for SCP/RCP save-restore.
func (c Cursor) snapshot() Cursor { return c }

// clampTo clamps row/col into [0,rows) x [0,cols), used after a resize
// invalidates a saved-cursor snapshot taken against different dimensions.
func (c Cursor) clampTo(rows, cols int) Cursor {
	if c.Row < 0 {
		c.Row = 0
	}
	if c.Row > rows-1 {
		c.Row = rows - 1
	}
	if c.Col < 0 {
		c.Col = 0
	}
	if c.Col > cols-1 {
		c.Col = cols - 1
	}
	return c
}
