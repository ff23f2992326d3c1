package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config represents the gitred configuration.
type Config struct {
	SinceDays int    `yaml:"sinceDays"`
	MinLines  int    `yaml:"minLines"`
	MinPct    int    `yaml:"minPct"`
	Format    string `yaml:"format"`
}

// Default returns a Config with all defaults applied.
func Default() Config {
	return Config{
		SinceDays: 30,
		MinLines:  10,
		MinPct:    95,
		Format:    "text",
	}
}

// ConfigDir returns the platform-appropriate config directory for gitred.
func ConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "gitred"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "gitred"), nil
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "gitred"), nil
		}
		return filepath.Join(home, "AppData", "Roaming", "gitred"), nil
	default:
		return filepath.Join(home, ".config", "gitred"), nil
	}
}

// ConfigPath returns the full path to the config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// LoadFile loads config from the config file. Returns zero Config and nil
// error if the file doesn't exist.
func LoadFile() (Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return Config{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

// Save writes the config to the config file.
func Save(cfg Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Load builds the effective config by merging: defaults <- file <- env <- overrides.
// The overrides map comes from CLI flags (only flags the user set should be present).
func Load(overrides map[string]string) (Config, error) {
	cfg := Default()

	fileCfg, err := LoadFile()
	if err != nil {
		return Config{}, err
	}
	mergeFile(&cfg, fileCfg)
	mergeEnv(&cfg)
	mergeOverrides(&cfg, overrides)

	return cfg, nil
}

func mergeFile(dst *Config, src Config) {
	if src.SinceDays > 0 {
		dst.SinceDays = src.SinceDays
	}
	if src.MinLines > 0 {
		dst.MinLines = src.MinLines
	}
	if src.MinPct > 0 {
		dst.MinPct = src.MinPct
	}
	if src.Format != "" {
		dst.Format = src.Format
	}
}

func mergeEnv(cfg *Config) {
	if v := os.Getenv("GITRED_SINCE_DAYS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.SinceDays = n
		}
	}
	if v := os.Getenv("GITRED_MIN_LINES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.MinLines = n
		}
	}
	if v := os.Getenv("GITRED_MIN_PCT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.MinPct = n
		}
	}
	if v := os.Getenv("GITRED_FORMAT"); v != "" {
		cfg.Format = v
	}
}

func mergeOverrides(cfg *Config, overrides map[string]string) {
	for key, value := range overrides {
		// Overrides come from flags the user explicitly set, so zero
		// values are applied too. Unknown keys cannot occur here.
		_ = SetField(cfg, key, value)
	}
}

// SetField sets a single config field by key name. Returns an error if the
// key is unknown or the value does not parse.
func SetField(cfg *Config, key, value string) error {
	switch key {
	case "sinceDays":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("sinceDays must be an integer: %w", err)
		}
		cfg.SinceDays = n
	case "minLines":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("minLines must be an integer: %w", err)
		}
		cfg.MinLines = n
	case "minPct":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("minPct must be an integer: %w", err)
		}
		cfg.MinPct = n
	case "format":
		cfg.Format = value
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}
