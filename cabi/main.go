// Command cabi is the C-ABI surface of spec.md §6: a thin, stateless
// translation of Terminal's API into C-callable functions returning
// plain-old-data structs, built as a C archive/shared library (cgo
// buildmode c-archive/c-shared).
//
// Mirrors the teacher's wasm/ directory in spirit — a distinct foreign
// boundary kept as its own nested module with a replace directive back to
// the parent — but targets a native C ABI via cgo instead of syscall/js.
//
// Go cannot let C hold a raw pointer to a Go value across calls safely;
// runtime/cgo.Handle is the standard mechanism for exactly this, so the
// opaque "Terminal*" of spec.md §6 is represented here as a uintptr_t
// handle rather than a literal pointer. Everything else follows the
// signatures in spec.md §6 and original_source/core/src/ffi.rs.
package main

/*
#include <stdint.h>
*/
import "C"

import (
	"runtime/cgo"
	"unsafe"

	terminalcore "github.com/themikethompson/terminal-emulator"
	"github.com/themikethompson/terminal-emulator/pty"
)

// CCell mirrors spec.md §6's CCell layout: a Unicode codepoint plus
// boundary-resolved RGB for foreground/background and the raw flags byte.
// Colors are resolved from Named/Indexed/TrueColor to RGB here, at the
// boundary, per spec.md §6's palette rule — the grid itself never stores
// resolved RGB.
type CCell struct {
	Ch            uint32
	FgR, FgG, FgB uint8
	BgR, BgG, BgB uint8
	Flags         uint8
}

// nullCellDefault matches original_source/core/src/ffi.rs's null-handle
// default exactly: space, themed-looking foreground, but a literal black
// background — a defensive sentinel for a bad handle, not a themed cell.
func nullCellDefault() CCell {
	return CCell{Ch: uint32(' '), FgR: 200, FgG: 200, FgB: 200, BgR: 0, BgG: 0, BgB: 0, Flags: 0}
}

func cellToCCell(c terminalcore.Cell) CCell {
	fg := terminalcore.ResolveColor(c.Fg)
	bg := terminalcore.ResolveColor(c.Bg)
	return CCell{
		Ch:    uint32(c.Ch),
		FgR:   fg.R,
		FgG:   fg.G,
		FgB:   fg.B,
		BgR:   bg.R,
		BgG:   bg.G,
		BgB:   bg.B,
		Flags: uint8(c.Flags),
	}
}

func terminalFrom(h C.uintptr_t) *terminalcore.Terminal {
	if h == 0 {
		return nil
	}
	v := cgo.Handle(h).Value()
	t, _ := v.(*terminalcore.Terminal)
	return t
}

//export terminal_new
func terminal_new(rows, cols C.int) C.uintptr_t {
	t := terminalcore.New(int(rows), int(cols))
	return C.uintptr_t(cgo.NewHandle(t))
}

//export terminal_new_with_pty
func terminal_new_with_pty(rows, cols C.int) C.uintptr_t {
	host, err := pty.New(int(rows), int(cols), "")
	if err != nil {
		return 0
	}
	t := terminalcore.New(int(rows), int(cols))
	t.AttachPTY(host)
	return C.uintptr_t(cgo.NewHandle(t))
}

//export terminal_free
func terminal_free(h C.uintptr_t) {
	if h == 0 {
		return
	}
	handle := cgo.Handle(h)
	if t := terminalFrom(h); t != nil {
		_ = t.Close()
	}
	handle.Delete()
}

//export terminal_process_bytes
func terminal_process_bytes(h C.uintptr_t, data *C.uint8_t, length C.size_t) {
	t := terminalFrom(h)
	if t == nil || data == nil {
		return
	}
	bytes := C.GoBytes(unsafe.Pointer(data), C.int(length))
	t.ProcessBytes(bytes)
}

//export terminal_send_input
func terminal_send_input(h C.uintptr_t, data *C.uint8_t, length C.size_t) C.int32_t {
	t := terminalFrom(h)
	if t == nil || data == nil {
		return -1
	}
	bytes := C.GoBytes(unsafe.Pointer(data), C.int(length))
	if _, err := t.SendInput(bytes); err != nil {
		return -1
	}
	return 0
}

//export terminal_get_cell
func terminal_get_cell(h C.uintptr_t, row, col C.int) CCell {
	t := terminalFrom(h)
	if t == nil {
		return nullCellDefault()
	}
	cell, ok := t.Grid.GetCell(int(row), int(col))
	if !ok {
		return nullCellDefault()
	}
	return cellToCCell(cell)
}

//export terminal_get_row
func terminal_get_row(h C.uintptr_t, row C.int, out *CCell, outLen C.size_t) C.size_t {
	t := terminalFrom(h)
	if t == nil || out == nil {
		return 0
	}
	if row < 0 || int(row) >= len(t.Grid.Rows) {
		return 0
	}
	cells := t.Grid.Rows[row].Cells
	n := len(cells)
	if n > int(outLen) {
		n = int(outLen)
	}
	buf := unsafe.Slice(out, int(outLen))
	for i := 0; i < n; i++ {
		buf[i] = cellToCCell(cells[i])
	}
	return C.size_t(n)
}

//export terminal_get_cursor_row
func terminal_get_cursor_row(h C.uintptr_t) C.uint16_t {
	t := terminalFrom(h)
	if t == nil {
		return 0
	}
	return C.uint16_t(t.Cursor.Row)
}

//export terminal_get_cursor_col
func terminal_get_cursor_col(h C.uintptr_t) C.uint16_t {
	t := terminalFrom(h)
	if t == nil {
		return 0
	}
	return C.uint16_t(t.Cursor.Col)
}

//export terminal_resize
func terminal_resize(h C.uintptr_t, rows, cols C.int) {
	t := terminalFrom(h)
	if t == nil {
		return
	}
	t.Resize(int(rows), int(cols))
}

//export terminal_get_dirty_rows
func terminal_get_dirty_rows(h C.uintptr_t, out *C.uint16_t, outLen C.size_t) C.size_t {
	t := terminalFrom(h)
	if t == nil || out == nil {
		return 0
	}
	dirty := t.Grid.DirtyRows()
	n := len(dirty)
	if n > int(outLen) {
		n = int(outLen)
	}
	buf := unsafe.Slice(out, int(outLen))
	for i := 0; i < n; i++ {
		buf[i] = C.uint16_t(dirty[i])
	}
	return C.size_t(n)
}

//export terminal_mark_clean
func terminal_mark_clean(h C.uintptr_t) {
	t := terminalFrom(h)
	if t == nil {
		return
	}
	t.Grid.MarkClean()
}

//export terminal_read_pty
func terminal_read_pty(h C.uintptr_t, out *C.uint8_t, outLen C.size_t) C.intptr_t {
	t := terminalFrom(h)
	if t == nil || out == nil || !t.HasPTY() {
		return -1
	}
	buf := unsafe.Slice((*byte)(unsafe.Pointer(out)), int(outLen))
	n, err := t.PTY().Read(buf)
	if err != nil {
		return -1
	}
	return C.intptr_t(n)
}

//export terminal_get_pty_fd
func terminal_get_pty_fd(h C.uintptr_t) C.int32_t {
	t := terminalFrom(h)
	if t == nil || !t.HasPTY() {
		return -1
	}
	return C.int32_t(t.PTY().MasterFD())
}

func main() {}
