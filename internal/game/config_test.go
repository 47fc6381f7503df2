package game

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.WindowW != WindowWidth || cfg.WindowH != WindowHeight {
		t.Fatalf("window %dx%d, want defaults", cfg.WindowW, cfg.WindowH)
	}
	if cfg.RenderDistance != DefaultRenderDistance {
		t.Fatalf("render distance %d, want %d", cfg.RenderDistance, DefaultRenderDistance)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("missing file should fall back to defaults, got %v", err)
	}
	if cfg.RenderScale != DefaultRenderScale {
		t.Fatalf("render scale %d, want default", cfg.RenderScale)
	}
}

func TestLoadConfigOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cubelet.yaml")
	body := "render_distance: 3\nseed: 1234\nspin: true\nsky: [0.1, 0.2, 0.3]\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.RenderDistance != 3 || cfg.Seed != 1234 || !cfg.Spin {
		t.Fatalf("overlay not applied: %+v", cfg)
	}
	if cfg.Sky != [3]float32{0.1, 0.2, 0.3} {
		t.Fatalf("sky = %v", cfg.Sky)
	}
	// Untouched keys keep their defaults.
	if cfg.WindowW != WindowWidth {
		t.Fatalf("window width %d, want default", cfg.WindowW)
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cubelet.yaml")
	if err := os.WriteFile(path, []byte("render_distance: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("render_distance 0 accepted")
	}
}
