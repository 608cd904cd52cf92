package terminalcore

import "testing"

func TestDefaultCell(t *testing.T) {
	c := DefaultCell()
	if c.Ch != ' ' {
		t.Errorf("expected space, got %q", c.Ch)
	}
	if c.Fg != DefaultForegroundColor() {
		t.Errorf("expected default foreground, got %+v", c.Fg)
	}
	if c.Bg != DefaultBackgroundColor() {
		t.Errorf("expected default background, got %+v", c.Bg)
	}
	if c.Flags != 0 {
		t.Errorf("expected no flags, got %v", c.Flags)
	}
}

func TestCellFlags(t *testing.T) {
	var f CellFlags
	f = f.Set(FlagBold)
	if !f.Has(FlagBold) {
		t.Error("expected Bold set")
	}
	f = f.Set(FlagItalic)
	if !f.Has(FlagBold) || !f.Has(FlagItalic) {
		t.Error("expected both Bold and Italic set")
	}
	f = f.Clear(FlagBold)
	if f.Has(FlagBold) {
		t.Error("expected Bold cleared")
	}
	if !f.Has(FlagItalic) {
		t.Error("expected Italic to survive clearing Bold")
	}
}
