package terminalcore

import "github.com/cliofy/govte"

// AnsiParser wraps the VT500-family byte state machine. It is pure: no
// I/O, no timing, no hidden mutation beyond its own parse state. Mirrors
// the thin wrapper shape of original_source's parser.rs, which wraps the
// vte crate's Parser the same way this wraps govte's.
type AnsiParser struct {
	inner *govte.Parser
}

// NewAnsiParser returns a parser ready to drive a govte.Performer.
func NewAnsiParser() *AnsiParser {
	return &AnsiParser{inner: govte.NewParser()}
}

// Advance feeds one byte through the state machine, invoking at most one
// dispatch on performer.
func (p *AnsiParser) Advance(performer govte.Performer, b byte) {
	p.inner.Advance(performer, b)
}

// paramGroups flattens a govte.Params into one integer per semicolon
// group, taking each group's first (and for this core, only meaningful)
// colon-subparameter. Concrete extended-color sequences in this core's
// scope (38;5;N and 38;2;r;g;b) are expressed as separate semicolon
// groups, not colon subgroups, so this flattening loses nothing the CSI
// table in the spec needs.
func paramGroups(params *govte.Params) []int64 {
	if params == nil {
		return nil
	}
	groups := params.Iter()
	out := make([]int64, 0, len(groups))
	for _, g := range groups {
		if len(g) > 0 {
			out = append(out, int64(g[0]))
		} else {
			out = append(out, 0)
		}
	}
	return out
}

// paramAt returns params[idx], or def when idx is out of range (the
// parameter was omitted). A present-but-zero parameter is returned as 0:
// callers whose default equals the floor of a max(1, n) formula get the
// right answer either way, and ED/EL use a default of 0, so an omitted
// mode and an explicit 0 select the same mode.
func paramAt(params []int64, idx int, def int64) int64 {
	if idx < 0 || idx >= len(params) {
		return def
	}
	return params[idx]
}

func saturateU8(v int64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
