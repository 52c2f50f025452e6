package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"window_width": 800, "show_frustum": false}`), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	if cfg.WindowWidth != 800 {
		t.Errorf("WindowWidth = %d, want 800", cfg.WindowWidth)
	}
	if cfg.ShowFrustum {
		t.Errorf("ShowFrustum deveria vir do arquivo")
	}

	def := DefaultConfig()
	if cfg.WindowHeight != def.WindowHeight || cfg.DecalScrollSpeed != def.DecalScrollSpeed {
		t.Errorf("campos ausentes deveriam manter o padrão: %+v", cfg)
	}
}

func TestLoadFileErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadFile(filepath.Join(dir, "nao_existe.json")); err == nil {
		t.Errorf("esperava erro para arquivo inexistente")
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte(`{"window_width": `), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(bad); err == nil {
		t.Errorf("esperava erro para JSON inválido")
	}
}

func TestSaveFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	cfg := DefaultConfig()
	cfg.DecalFar = 55
	cfg.AmbientColor = [3]uint8{1, 2, 3}
	if err := cfg.SaveFile(path); err != nil {
		t.Fatalf("SaveFile: %v", err)
	}

	got, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if *got != *cfg {
		t.Errorf("got %+v, want %+v", got, cfg)
	}
}
