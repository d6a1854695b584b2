package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	if cfg.Slice.Prefix != "hero" {
		t.Errorf("default prefix = %q, want hero", cfg.Slice.Prefix)
	}
	if cfg.Slice.Format != "png" {
		t.Errorf("default format = %q, want png", cfg.Slice.Format)
	}
	if cfg.Slice.Workers < 1 || cfg.Slice.Workers > MaxWorkers {
		t.Errorf("default workers = %d, want between 1 and %d", cfg.Slice.Workers, MaxWorkers)
	}
	if len(cfg.Presets) != 0 {
		t.Errorf("defaults should ship no presets, got %v", cfg.Presets)
	}
}

func TestLoadFrom_MissingFile(t *testing.T) {
	cfg, err := LoadFrom("/nonexistent/config.yml")
	if err != nil {
		t.Fatalf("missing file should not error, got: %v", err)
	}
	if cfg.Slice.Prefix != "hero" {
		t.Errorf("missing file should use defaults, got prefix = %q", cfg.Slice.Prefix)
	}
}

func TestLoadFrom_ValidFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	data := `
slice:
  prefix: "walk"
  format: "jpg"
  workers: 8
presets:
  hero:
    rows: 4
    cols: 8
  enemy:
    rows: 2
    cols: 6
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("valid file should not error, got: %v", err)
	}
	if cfg.Slice.Prefix != "walk" {
		t.Errorf("prefix = %q, want walk", cfg.Slice.Prefix)
	}
	if cfg.Slice.Format != "jpg" {
		t.Errorf("format = %q, want jpg", cfg.Slice.Format)
	}
	if cfg.Slice.Workers != 8 {
		t.Errorf("workers = %d, want 8", cfg.Slice.Workers)
	}
	if len(cfg.Presets) != 2 {
		t.Fatalf("presets = %v, want 2 entries", cfg.Presets)
	}
	if p := cfg.Presets["hero"]; p.Rows != 4 || p.Cols != 8 {
		t.Errorf("preset hero = %dx%d, want 4x8", p.Rows, p.Cols)
	}
}

func TestLoadFrom_PartialFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	data := `
slice:
  prefix: "tile"
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("partial file should not error, got: %v", err)
	}
	if cfg.Slice.Prefix != "tile" {
		t.Errorf("prefix = %q, want tile", cfg.Slice.Prefix)
	}
	// Partial file: format should keep default
	if cfg.Slice.Format != "png" {
		t.Errorf("format should be default png, got %q", cfg.Slice.Format)
	}
}

func TestLoadFrom_InvalidWorkers(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	data := `
slice:
  workers: 0
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFrom(path); err == nil {
		t.Fatal("workers of 0 should fail validation")
	}
}

func TestLoadFrom_UnknownFormat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	data := `
slice:
  format: "webp"
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFrom(path); err == nil {
		t.Fatal("webp is decode-only and should fail format validation")
	}
}

func TestLoadFrom_InvalidPreset(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	data := `
presets:
  broken:
    rows: 0
    cols: 5
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFrom(path); err == nil {
		t.Fatal("preset with zero rows should fail validation")
	}
}

func TestLoadFrom_MalformedYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	if err := os.WriteFile(path, []byte("{{not yaml"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFrom(path); err == nil {
		t.Fatal("malformed YAML should return error")
	}
}

func TestConfigPath_XDGOverride(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/custom/config")
	path := configPath()
	want := "/custom/config/sheetcut/config.yml"
	if path != want {
		t.Errorf("configPath() = %q, want %q", path, want)
	}
}
