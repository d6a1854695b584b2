package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for sheetcut.
type Config struct {
	Slice   SliceConfig       `yaml:"slice"`
	Presets map[string]Preset `yaml:"presets"`
}

// SliceConfig sets the defaults for the slice command, overridable per
// run by flags.
type SliceConfig struct {
	Prefix  string `yaml:"prefix"`
	Format  string `yaml:"format"`
	Workers int    `yaml:"workers"`
}

// Preset is a named grid: rows × cols. Presets replace per-asset
// copies of the slicing parameters.
type Preset struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// MaxWorkers caps the slice worker pool.
const MaxWorkers = 64

// formats imaging can encode, keyed by output extension
var knownFormats = map[string]bool{
	"png": true, "jpg": true, "jpeg": true, "gif": true,
	"tif": true, "tiff": true, "bmp": true,
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	workers := runtime.NumCPU()
	if workers > MaxWorkers {
		workers = MaxWorkers
	}
	return Config{
		Slice: SliceConfig{
			Prefix:  "hero",
			Format:  "png",
			Workers: workers,
		},
	}
}

// Load reads the config file and merges with defaults.
// Missing file is not an error — defaults are used silently.
func Load() (Config, error) {
	return LoadFrom(configPath())
}

// LoadFrom reads config from a specific path.
func LoadFrom(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Defaults(), fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return Defaults(), fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

func (c Config) validate() error {
	if c.Slice.Workers < 1 || c.Slice.Workers > MaxWorkers {
		return fmt.Errorf("slice.workers must be between 1 and %d, got %d", MaxWorkers, c.Slice.Workers)
	}
	if !knownFormats[c.Slice.Format] {
		return fmt.Errorf("slice.format %q is not an encodable image format", c.Slice.Format)
	}
	for name, p := range c.Presets {
		if p.Rows < 1 || p.Cols < 1 {
			return fmt.Errorf("preset %q: rows and cols must be at least 1, got %dx%d", name, p.Rows, p.Cols)
		}
	}
	return nil
}

func configPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "sheetcut", "config.yml")
}
