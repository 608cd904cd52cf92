package terminalcore

import (
	"github.com/cliofy/govte"
)

// PTYHost is the minimal surface the Terminal needs from a pseudo-terminal
// host. The pty package's Host implements it; Terminal never constructs
// one itself so the interpreter stays free of OS process concerns, per
// spec.md §5's single-threaded, embedder-serialized contract.
type PTYHost interface {
	Read(buf []byte) (int, error)
	Write(data []byte) (int, error)
	Resize(rows, cols int) error
	MasterFD() int
	Close() error
}

// Terminal is the interpreter: it holds the Grid, the Cursor (position +
// active style), an optional saved cursor, an owned Parser, and an
// optional attached PTY. It acts as the parser's handler — each dispatch
// mutates Grid/Cursor directly, with no intermediate event queue.
type Terminal struct {
	Grid        *Grid
	Cursor      Cursor
	SavedCursor *Cursor
	Rows, Cols  int

	parser *AnsiParser
	pty    PTYHost
	logger Logger
}

// defaultMaxScrollback is the bounded-FIFO scrollback capacity new
// terminals start with, per spec.md §3.
const defaultMaxScrollback = 10000

// New creates a Terminal at the given size with no PTY attached and the
// default 10,000-line scrollback cap.
func New(rows, cols int) *Terminal {
	return &Terminal{
		Grid:   NewGrid(rows, cols, defaultMaxScrollback),
		Cursor: NewCursor(),
		Rows:   rows,
		Cols:   cols,
		parser: NewAnsiParser(),
		logger: DefaultLogger(),
	}
}

// AttachPTY binds an already-created PTY host to this terminal. Terminal
// does not own spawning the child process — that is the pty package's
// job — but once attached, Resize and SendInput route through it and
// Close tears it down with the terminal.
func (t *Terminal) AttachPTY(host PTYHost) {
	t.pty = host
}

// HasPTY reports whether a PTY is currently attached.
func (t *Terminal) HasPTY() bool {
	return t.pty != nil
}

// PTY returns the attached PTY host, or nil if none is attached.
func (t *Terminal) PTY() PTYHost {
	return t.pty
}

// Close detaches and closes the PTY, if any. Safe to call on a terminal
// with no PTY attached.
func (t *Terminal) Close() error {
	if t.pty == nil {
		return nil
	}
	err := t.pty.Close()
	t.pty = nil
	return err
}

// ProcessBytes feeds bytes through the parser one at a time. Writes take
// effect in byte order; after this call returns, every byte's effects are
// visible (spec.md §5's ordering guarantee).
func (t *Terminal) ProcessBytes(data []byte) {
	for _, b := range data {
		t.parser.Advance(t, b)
	}
}

// SendInput writes to the attached PTY. With no PTY attached this is a
// trivial success (spec.md §4.3's failure semantics: a missing PTY makes
// send_input a no-op, not an error).
func (t *Terminal) SendInput(data []byte) (int, error) {
	if t.pty == nil {
		return 0, nil
	}
	n, err := t.pty.Write(data)
	if err != nil {
		return n, &Error{Kind: KindOsIO, Err: err}
	}
	return n, nil
}

// Resize grows or shrinks the grid, clamps the cursor into bounds, and
// (if a PTY is attached) pushes the new size to it. PTY resize failures
// are logged and otherwise ignored, per spec.md §4.3 step 4.
func (t *Terminal) Resize(newRows, newCols int) {
	t.Grid.Resize(newRows, newCols)
	t.Rows = newRows
	t.Cols = newCols
	t.Cursor = t.Cursor.clampTo(newRows, newCols)
	if t.pty != nil {
		if err := t.pty.Resize(newRows, newCols); err != nil && t.logger != nil {
			t.logger.Printf("pty resize failed: %v", err)
		}
	}
}

// newline advances the cursor row, resetting the column to 0. LF, VT, and
// FF all perform this — CR+LF behavior, per original_source's newline()
// and spec.md §9 (see SPEC_FULL.md's "Resolved ambiguities").
func (t *Terminal) newline() {
	t.Cursor.Col = 0
	t.Cursor.Row++
	if t.Cursor.Row >= t.Rows {
		t.Grid.ScrollUp()
		t.Cursor.Row = t.Rows - 1
	}
}

// --- govte.Performer ---

var _ govte.Performer = (*Terminal)(nil)

// Print writes a printable character at the cursor, wrapping first if the
// cursor already sits past the last column (Col >= Cols). Wrap is eager at the
// start of the next character; the "last-column sticky" pending-wrap
// subtlety is not modeled, per spec.md §4.3.
func (t *Terminal) Print(ch rune) {
	if t.Cursor.Col >= t.Cols {
		t.Cursor.Col = 0
		t.newline()
	}
	if cell := t.Grid.GetCellMut(t.Cursor.Row, t.Cursor.Col); cell != nil {
		cell.Ch = ch
		cell.Fg = t.Cursor.Fg
		cell.Bg = t.Cursor.Bg
		cell.Flags = t.Cursor.Flags
	}
	t.Cursor.Col++
}

// Execute handles a C0 control character.
func (t *Terminal) Execute(b byte) {
	switch b {
	case 0x0D: // CR
		t.Cursor.Col = 0
	case 0x0A, 0x0B, 0x0C: // LF, VT, FF
		t.newline()
	case 0x08: // BS
		if t.Cursor.Col > 0 {
			t.Cursor.Col--
		}
	case 0x09: // HT
		next := ((t.Cursor.Col / 8) + 1) * 8
		if next > t.Cols-1 {
			next = t.Cols - 1
		}
		t.Cursor.Col = next
	case 0x07: // BEL
		// no-op in the core; a UI may observe via an extension.
	default:
		// ignore other C0 controls
	}
}

// Hook, Put, and Unhook implement the DCS stream as no-ops, per spec.md
// §4.2: this core does not interpret device control strings.
func (t *Terminal) Hook(params *govte.Params, intermediates []byte, ignore bool, action rune) {}
func (t *Terminal) Put(b byte)                                                                {}
func (t *Terminal) Unhook()                                                                   {}

// OscDispatch is a no-op: title, hyperlink, and clipboard OSC sequences
// are explicit non-goals (spec.md §1).
func (t *Terminal) OscDispatch(params [][]byte, bellTerminated bool) {}

// EscDispatch is a no-op: this core's ESC-sequence surface is limited to
// what CSI covers; bare ESC sequences are accepted and ignored, matching
// original_source's esc_dispatch.
func (t *Terminal) EscDispatch(intermediates []byte, ignore bool, b byte) {}

// CsiDispatch implements the CSI table of spec.md §4.3. Any final byte not
// listed there is accepted and ignored.
func (t *Terminal) CsiDispatch(params *govte.Params, intermediates []byte, ignore bool, action rune) {
	if ignore {
		return
	}
	p := paramGroups(params)

	switch action {
	case 'A': // CUU
		n := int(paramAt(p, 0, 1))
		if n < 1 {
			n = 1
		}
		t.Cursor.Row = max(0, t.Cursor.Row-n)
	case 'B': // CUD
		n := int(paramAt(p, 0, 1))
		if n < 1 {
			n = 1
		}
		t.Cursor.Row = min(t.Rows-1, t.Cursor.Row+n)
	case 'C': // CUF
		n := int(paramAt(p, 0, 1))
		if n < 1 {
			n = 1
		}
		t.Cursor.Col = min(t.Cols-1, t.Cursor.Col+n)
	case 'D': // CUB
		n := int(paramAt(p, 0, 1))
		if n < 1 {
			n = 1
		}
		t.Cursor.Col = max(0, t.Cursor.Col-n)
	case 'H', 'f': // CUP
		r := int(paramAt(p, 0, 1))
		if r < 1 {
			r = 1
		}
		c := int(paramAt(p, 1, 1))
		if c < 1 {
			c = 1
		}
		t.Cursor.Row = min(t.Rows-1, r-1)
		t.Cursor.Col = min(t.Cols-1, c-1)
	case 'J': // ED
		mode := paramAt(p, 0, 0)
		switch mode {
		case 0:
			t.Grid.ClearToEnd(t.Cursor.Row, t.Cursor.Col)
		case 1:
			t.Grid.ClearFromStart(t.Cursor.Row, t.Cursor.Col)
		case 2, 3:
			t.Grid.Clear()
		}
	case 'K': // EL
		mode := paramAt(p, 0, 0)
		switch mode {
		case 0:
			t.Grid.resetRow(t.Cursor.Row, t.Cursor.Col, t.Cols-1)
		case 1:
			t.Grid.resetRow(t.Cursor.Row, 0, t.Cursor.Col)
		case 2:
			t.Grid.resetRow(t.Cursor.Row, 0, t.Cols-1)
		}
	case 'm': // SGR
		t.handleSGR(p)
	case 's': // SCP
		snap := t.Cursor.snapshot()
		t.SavedCursor = &snap
	case 'u': // RCP
		if t.SavedCursor != nil {
			t.Cursor = t.SavedCursor.clampTo(t.Rows, t.Cols)
		}
	default:
		// accepted and ignored
	}
}

// handleSGR processes a flattened SGR parameter stream left to right,
// consuming extra indices for the 38/48 extended-color forms, per
// spec.md §4.3.
func (t *Terminal) handleSGR(p []int64) {
	if len(p) == 0 {
		p = []int64{0}
	}
	i := 0
	for i < len(p) {
		switch v := p[i]; {
		case v == 0:
			t.Cursor.Fg = DefaultForegroundColor()
			t.Cursor.Bg = DefaultBackgroundColor()
			t.Cursor.Flags = 0
		case v == 1:
			t.Cursor.Flags = t.Cursor.Flags.Set(FlagBold)
		case v == 22:
			t.Cursor.Flags = t.Cursor.Flags.Clear(FlagBold)
		case v == 3:
			t.Cursor.Flags = t.Cursor.Flags.Set(FlagItalic)
		case v == 23:
			t.Cursor.Flags = t.Cursor.Flags.Clear(FlagItalic)
		case v == 4:
			t.Cursor.Flags = t.Cursor.Flags.Set(FlagUnderline)
		case v == 24:
			t.Cursor.Flags = t.Cursor.Flags.Clear(FlagUnderline)
		case v == 5:
			t.Cursor.Flags = t.Cursor.Flags.Set(FlagBlink)
		case v == 25:
			t.Cursor.Flags = t.Cursor.Flags.Clear(FlagBlink)
		case v == 7:
			t.Cursor.Flags = t.Cursor.Flags.Set(FlagInverse)
		case v == 27:
			t.Cursor.Flags = t.Cursor.Flags.Clear(FlagInverse)
		case v == 9:
			t.Cursor.Flags = t.Cursor.Flags.Set(FlagStrikethrough)
		case v == 29:
			t.Cursor.Flags = t.Cursor.Flags.Clear(FlagStrikethrough)
		case v >= 30 && v <= 37:
			t.Cursor.Fg = NamedColorValue(NamedColor(v - 30))
		case v >= 40 && v <= 47:
			t.Cursor.Bg = NamedColorValue(NamedColor(v - 40))
		case v >= 90 && v <= 97:
			t.Cursor.Fg = NamedColorValue(BrightBlack + NamedColor(v-90))
		case v >= 100 && v <= 107:
			t.Cursor.Bg = NamedColorValue(BrightBlack + NamedColor(v-100))
		case v == 38 || v == 48:
			isFg := v == 38
			if consumed := t.applyExtendedColor(p, i, isFg); consumed > 0 {
				i += consumed
				continue
			}
		default:
			// unknown SGR code: ignored
		}
		i++
	}
}

// applyExtendedColor implements the 38/48 extended-color forms starting
// at index i (which holds the 38 or 48 itself). Returns the number of
// parameters consumed (including the 38/48 itself), or 0 if the form at i
// is incomplete and only the 38/48 should be consumed.
func (t *Terminal) applyExtendedColor(p []int64, i int, isFg bool) int {
	if i+1 >= len(p) {
		return 0
	}
	switch p[i+1] {
	case 5:
		if i+2 >= len(p) {
			return 0
		}
		col := IndexedColorValue(saturateU8(p[i+2]))
		if isFg {
			t.Cursor.Fg = col
		} else {
			t.Cursor.Bg = col
		}
		return 3
	case 2:
		if i+4 >= len(p) {
			return 0
		}
		rgb := Rgb{saturateU8(p[i+2]), saturateU8(p[i+3]), saturateU8(p[i+4])}
		col := TrueColorValue(rgb)
		if isFg {
			t.Cursor.Fg = col
		} else {
			t.Cursor.Bg = col
		}
		return 5
	default:
		return 0
	}
}
