// Package terminalcore implements a headless VT500-family terminal
// emulator: a cell grid with bounded scrollback, a byte-oriented ANSI/VT
// parser, and the interpreter that drives the grid and cursor from parsed
// escape sequences. It has no rendering and no required PTY — an embedder
// feeds it bytes via ProcessBytes and reads back Grid/Cursor state, or
// attaches a pty.Host for a live shell session.
package terminalcore
