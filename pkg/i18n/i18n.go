// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package i18n supplies the translated labels used in monitor reports.
// Lookups fall back to English and then to the key itself, so a missing
// translation degrades to readable output instead of an error.
package i18n

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// Language identifies one supported display language.
type Language int

const (
	English Language = iota
	Chinese
	Spanish
	French
	German
	Japanese
)

var languageNames = map[Language]string{
	English:  "English",
	Chinese:  "Chinese",
	Spanish:  "Spanish",
	French:   "French",
	German:   "German",
	Japanese: "Japanese",
}

// languageCodes maps the --lang option values.
var languageCodes = map[string]Language{
	"en": English,
	"zh": Chinese,
	"es": Spanish,
	"fr": French,
	"de": German,
	"ja": Japanese,
}

func (l Language) String() string {
	if name, ok := languageNames[l]; ok {
		return name
	}
	return "Unknown"
}

// ParseLanguage resolves a --lang value ("en", "zh", ...) to a Language.
func ParseLanguage(code string) (Language, error) {
	lang, ok := languageCodes[strings.ToLower(code)]
	if !ok {
		return English, fmt.Errorf("unsupported language: %q", code)
	}
	return lang, nil
}

// Supported lists the supported language names in stable order.
func Supported() []string {
	names := make([]string, 0, len(languageNames))
	for _, name := range languageNames {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Translator resolves label keys for one selected language. Construct
// one per process; it is not safe for concurrent mutation.
type Translator struct {
	lang         Language
	translations map[Language]map[string]string
}

// New returns a Translator for lang preloaded with the built-in English
// and Chinese tables.
func New(lang Language) *Translator {
	t := &Translator{
		lang:         lang,
		translations: make(map[Language]map[string]string),
	}
	for key, value := range builtinEnglish {
		t.Register(English, key, value)
	}
	for key, value := range builtinChinese {
		t.Register(Chinese, key, value)
	}
	return t
}

func (t *Translator) Language() Language { return t.lang }

// SetLanguage switches the lookup language; registered translations are
// kept.
func (t *Translator) SetLanguage(lang Language) { t.lang = lang }

// T translates key in the current language, falling back to English and
// finally to the key itself.
func (t *Translator) T(key string) string {
	if v, ok := t.translations[t.lang][key]; ok {
		return v
	}
	if v, ok := t.translations[English][key]; ok {
		return v
	}
	return key
}

// Register adds or overrides one translation.
func (t *Translator) Register(lang Language, key, value string) {
	m, ok := t.translations[lang]
	if !ok {
		m = make(map[string]string)
		t.translations[lang] = m
	}
	m[key] = value
}

// LoadFile merges translations for lang from a TOML file of key = "value"
// pairs.
func (t *Translator) LoadFile(lang Language, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var entries map[string]string
	if err := toml.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("parse translation file %s: %w", path, err)
	}
	for key, value := range entries {
		t.Register(lang, key, value)
	}
	return nil
}
