// Package config loads and saves the user's contacts preferences.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

type Config struct {
	// ConfirmDelete asks before removing a person. Off by default: deletes are immediate.
	ConfirmDelete bool `json:"confirmDelete,omitempty"`

	// Demo seeds the address book with sample people on startup.
	Demo bool `json:"demo,omitempty"`

	// TUI holds optional user preferences for the interactive TUI.
	TUI *TUIConfig `json:"tui,omitempty"`
}

type TUIConfig struct {
	// Theme is one of: auto|light|dark.
	Theme string `json:"theme,omitempty"`
}

// Keys accepted by Set, in display order.
var Keys = []string{"confirm-delete", "demo", "tui.theme"}

func ConfigDir() (string, error) {
	// Test/advanced override (keeps unit tests from touching ~/.contacts).
	if v := strings.TrimSpace(os.Getenv("CONTACTS_CONFIG_DIR")); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".contacts"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config file. A missing file yields the defaults.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, err
	}
	var cfg Config
	if err := json.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &cfg, nil
}

func Save(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return atomicWriteFile(dir, "config.json.*.tmp", path, b, 0o600)
}

// Theme returns the configured TUI theme, "auto" when unset.
func (c *Config) Theme() string {
	if c == nil || c.TUI == nil || strings.TrimSpace(c.TUI.Theme) == "" {
		return "auto"
	}
	return c.TUI.Theme
}

// Set assigns a single key from its string form.
func (c *Config) Set(key, value string) error {
	value = strings.TrimSpace(value)
	switch strings.TrimSpace(key) {
	case "confirm-delete":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return invalidValueError{key: key, value: value, want: "true|false"}
		}
		c.ConfirmDelete = b
	case "demo":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return invalidValueError{key: key, value: value, want: "true|false"}
		}
		c.Demo = b
	case "tui.theme":
		switch strings.ToLower(value) {
		case "auto", "light", "dark":
		default:
			return invalidValueError{key: key, value: value, want: "auto|light|dark"}
		}
		if c.TUI == nil {
			c.TUI = &TUIConfig{}
		}
		c.TUI.Theme = strings.ToLower(value)
	default:
		return fmt.Errorf("unknown config key: %s (known: %s)", key, strings.Join(Keys, ", "))
	}
	return nil
}

type invalidValueError struct {
	key   string
	value string
	want  string
}

func (e invalidValueError) Error() string {
	return fmt.Sprintf("invalid value for %s: %q (expected %s)", e.key, e.value, e.want)
}

func atomicWriteFile(dir, tmpPattern, path string, b []byte, perm os.FileMode) error {
	f, err := os.CreateTemp(dir, tmpPattern)
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() { _ = os.Remove(tmp) }()
	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	_ = os.Chmod(tmp, perm)
	return os.Rename(tmp, path)
}
