package terminalcore

import "testing"

func TestPalette256Cube(t *testing.T) {
	// 16 is the first color-cube entry: r=g=b=0.
	got := ResolveColor(IndexedColorValue(16))
	want := Rgb{0, 0, 0}
	if got != want {
		t.Errorf("index 16: got %+v, want %+v", got, want)
	}

	// 231 is the last color-cube entry: r=g=b=255.
	got = ResolveColor(IndexedColorValue(231))
	want = Rgb{255, 255, 255}
	if got != want {
		t.Errorf("index 231: got %+v, want %+v", got, want)
	}
}

func TestPaletteGrayscale(t *testing.T) {
	got := ResolveColor(IndexedColorValue(232))
	want := Rgb{8, 8, 8}
	if got != want {
		t.Errorf("index 232: got %+v, want %+v", got, want)
	}

	got = ResolveColor(IndexedColorValue(255))
	want = Rgb{238, 238, 238}
	if got != want {
		t.Errorf("index 255: got %+v, want %+v", got, want)
	}
}

func TestResolveNamedStandard(t *testing.T) {
	got := ResolveColor(NamedColorValue(Red))
	want := Rgb{205, 49, 49}
	if got != want {
		t.Errorf("Red: got %+v, want %+v", got, want)
	}
}

func TestResolveThemeDefaults(t *testing.T) {
	defer SetTheme(ThemeForeground, ThemeBackground)
	SetTheme(Rgb{200, 200, 200}, Rgb{20, 20, 20})

	fg := ResolveColor(DefaultForegroundColor())
	if fg != (Rgb{200, 200, 200}) {
		t.Errorf("foreground: got %+v", fg)
	}
	bg := ResolveColor(DefaultBackgroundColor())
	if bg != (Rgb{20, 20, 20}) {
		t.Errorf("background: got %+v", bg)
	}
}

func TestResolveTrueColor(t *testing.T) {
	got := ResolveColor(TrueColorValue(Rgb{255, 100, 50}))
	want := Rgb{255, 100, 50}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}
