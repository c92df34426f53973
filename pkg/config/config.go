// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads and saves the user's persisted preferences:
// default byte unit, display language, color and log level. Command-line
// flags always win over preferences; preferences win over defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const prefsName = "prefs.toml"

// Prefs are the persisted defaults applied before flag parsing.
type Prefs struct {
	ByteUnit int    `toml:"byte_unit,omitempty"` // 0=auto, 1=KB, 2=MB, 3=GB, 4=TB
	Language string `toml:"language,omitempty"`  // "en", "zh", ...
	Color    bool   `toml:"color"`
	LogLevel string `toml:"log_level,omitempty"` // "debug", "info", "warn", "error"
}

// Default returns the preferences used when no file exists.
func Default() Prefs {
	return Prefs{
		ByteUnit: 0,
		Language: "en",
		Color:    true,
		LogLevel: "info",
	}
}

// DefaultPath returns ~/.evos/prefs.toml.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return prefsName
	}
	return filepath.Join(home, ".evos", prefsName)
}

// Load reads preferences from path, starting from Default for any field
// the file does not set. A missing file is not an error. The EVOS_LANG
// environment variable, when set, overrides the stored language.
func Load(path string) (Prefs, error) {
	p := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return p, err
		}
	} else if err := toml.Unmarshal(data, &p); err != nil {
		return Default(), fmt.Errorf("parse %s: %w", path, err)
	}
	if lang := os.Getenv("EVOS_LANG"); lang != "" {
		p.Language = lang
	}
	return p, nil
}

// Save writes preferences to path, creating the directory as needed.
func (p Prefs) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(p)
}
