package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all procdash configuration.
type Config struct {
	Paths      PathsConfig      `toml:"paths"`
	Dashboard  DashboardConfig  `toml:"dashboard"`
	Charts     ChartsConfig     `toml:"charts"`
	Appearance AppearanceConfig `toml:"appearance"`
}

// PathsConfig holds the project layout.
type PathsConfig struct {
	DataDir string `toml:"data_dir"`
	OutDir  string `toml:"out_dir"`
}

// DashboardConfig holds page-level settings.
type DashboardConfig struct {
	Title     string `toml:"title"`
	PlotlyCDN string `toml:"plotly_cdn,omitempty"`
}

// ChartsConfig holds chart geometry overrides.
type ChartsConfig struct {
	DonutHole float64 `toml:"donut_hole"`
	PiePull   float64 `toml:"pie_pull"`
}

// AppearanceConfig holds terminal theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Paths: PathsConfig{
			DataDir: "data",
			OutDir:  "outputs",
		},
		Dashboard: DashboardConfig{
			Title:     "Procurement Dashboard",
			PlotlyCDN: "https://cdn.plot.ly/plotly-2.35.2.min.js",
		},
		Charts: ChartsConfig{
			DonutHole: 0.7,
			PiePull:   0.05,
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "procdash")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "procdash")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}
