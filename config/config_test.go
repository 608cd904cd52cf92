package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Rows != 24 || cfg.Cols != 80 {
		t.Errorf("expected 24x80, got %dx%d", cfg.Rows, cfg.Cols)
	}
	if cfg.MaxScrollback != 10000 {
		t.Errorf("expected 10000 max scrollback, got %d", cfg.MaxScrollback)
	}
	if cfg.Shell != "" {
		t.Errorf("expected empty default shell, got %q", cfg.Shell)
	}
}

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != Default() {
		t.Errorf("expected Default() for a missing file, got %+v", cfg)
	}
}

func TestLoadOverridesFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	contents := "shell: /bin/bash\nrows: 40\ncols: 120\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Shell != "/bin/bash" {
		t.Errorf("expected shell override, got %q", cfg.Shell)
	}
	if cfg.Rows != 40 || cfg.Cols != 120 {
		t.Errorf("expected 40x120, got %dx%d", cfg.Rows, cfg.Cols)
	}
	if cfg.MaxScrollback != 10000 {
		t.Errorf("expected untouched default max scrollback, got %d", cfg.MaxScrollback)
	}
}
