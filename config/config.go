package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"melody-keyboard/keyboard"
	"melody-keyboard/theory"
)

// Config holds startup defaults. It is read once and never written back.
type Config struct {
	Root             string `json:"root,omitempty"`
	Scale            string `json:"scale,omitempty"`
	Mode             string `json:"mode,omitempty"`
	NoteLengthMS     int    `json:"noteLengthMs,omitempty"`
	Velocity         int    `json:"velocity,omitempty"`
	ToastMS          int    `json:"toastMs,omitempty"`
	AcquireTimeoutMS int    `json:"acquireTimeoutMs,omitempty"`
	Palette          string `json:"palette,omitempty"` // GIMP .gpl file, empty = built-in
	Debug            bool   `json:"debug,omitempty"`
}

// DefaultConfig returns a config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Root:             "C",
		Scale:            theory.DefaultScaleName,
		Mode:             keyboard.ModeMIDI.String(),
		NoteLengthMS:     1000,
		Velocity:         0x7F,
		ToastMS:          2000,
		AcquireTimeoutMS: 3000,
	}
}

// ConfigDir returns the config directory path
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "melody-keyboard"), nil
}

// ConfigPath returns the full path to config.json
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config from disk, or returns defaults if not found
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return DefaultConfig(), nil
	}
	return LoadFrom(path)
}

// LoadFrom reads path; fields missing from the file keep their defaults
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overrides fields from MELODY_* environment variables
func (c *Config) ApplyEnv() {
	c.Root = getEnv("MELODY_ROOT", c.Root)
	c.Scale = getEnv("MELODY_SCALE", c.Scale)
	c.Mode = getEnv("MELODY_MODE", c.Mode)
	c.Palette = getEnv("MELODY_PALETTE", c.Palette)
	if v := os.Getenv("MELODY_DEBUG"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Debug = b
		}
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return defaultValue
}

// Validate checks selections against the registries and numeric ranges
func (c *Config) Validate(table *theory.ScaleTable) error {
	if _, err := theory.ParsePitchClass(c.Root); err != nil {
		return fmt.Errorf("root: %w", err)
	}
	if !table.Has(c.Scale) {
		return fmt.Errorf("scale: %w: %q", theory.ErrUnknownScale, c.Scale)
	}
	if _, err := keyboard.ParseMode(c.Mode); err != nil {
		return fmt.Errorf("mode: %w", err)
	}
	if c.NoteLengthMS <= 0 {
		return fmt.Errorf("noteLengthMs must be positive, got %d", c.NoteLengthMS)
	}
	if c.Velocity < 1 || c.Velocity > 127 {
		return fmt.Errorf("velocity must be 1-127, got %d", c.Velocity)
	}
	if c.ToastMS <= 0 {
		return fmt.Errorf("toastMs must be positive, got %d", c.ToastMS)
	}
	if c.AcquireTimeoutMS <= 0 {
		return fmt.Errorf("acquireTimeoutMs must be positive, got %d", c.AcquireTimeoutMS)
	}
	return nil
}

// State builds the initial keyboard state. Call Validate first.
func (c *Config) State() keyboard.State {
	s := keyboard.DefaultState()
	if root, err := theory.ParsePitchClass(c.Root); err == nil {
		s = s.WithRoot(root)
	}
	if c.Scale != "" {
		s = s.WithScale(c.Scale)
	}
	if m, err := keyboard.ParseMode(c.Mode); err == nil {
		s = s.WithMode(m)
	}
	return s
}

func (c *Config) NoteLength() time.Duration {
	return time.Duration(c.NoteLengthMS) * time.Millisecond
}

func (c *Config) ToastDuration() time.Duration {
	return time.Duration(c.ToastMS) * time.Millisecond
}

func (c *Config) AcquireTimeout() time.Duration {
	return time.Duration(c.AcquireTimeoutMS) * time.Millisecond
}
