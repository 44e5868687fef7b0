package faq

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Media kinds understood by the sender. Anything else degrades to text.
const (
	MediaPhoto = "photo"
	MediaVideo = "video"
)

// Catalog entry keys double as Telegram callback data.
const (
	KeyBrokenKeys = "main:keys"
	KeyRenew      = "main:renew"
	KeyInvite     = "main:invite"

	KeyInstallIOS     = "install:ios"
	KeyInstallAndroid = "install:android"
	KeyInstallWindows = "install:windows"
	KeyInstallMacOS   = "install:macos"
	KeyInstallLinux   = "install:linux"
)

// Media references a local file attached to an answer.
type Media struct {
	Path string `yaml:"path"`
	Type string `yaml:"type"`
}

// Entry is a static trigger-to-response mapping. Triggers are matched
// case-insensitively against free-text messages; Key is matched against
// callback data.
type Entry struct {
	Key      string   `yaml:"key"`
	Label    string   `yaml:"label"`
	Triggers []string `yaml:"triggers"`
	Text     string   `yaml:"text"`
	Media    *Media   `yaml:"media"`
}

// Install reports whether the entry belongs to the install submenu.
func (e *Entry) Install() bool {
	return strings.HasPrefix(e.Key, "install:")
}

// Catalog holds the immutable FAQ table, loaded once at startup.
type Catalog struct {
	Main    []Entry `yaml:"main"`
	Install []Entry `yaml:"install"`

	byKey map[string]*Entry
}

// Load reads a catalog from a YAML file.
func Load(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read faq catalog: %w", err)
	}
	var catalog Catalog
	if err := yaml.Unmarshal(raw, &catalog); err != nil {
		return nil, fmt.Errorf("parse faq catalog: %w", err)
	}
	if len(catalog.Main) == 0 && len(catalog.Install) == 0 {
		return nil, fmt.Errorf("faq catalog %q has no entries", path)
	}
	catalog.index()
	return &catalog, nil
}

func (c *Catalog) index() {
	c.byKey = make(map[string]*Entry, len(c.Main)+len(c.Install))
	for i := range c.Main {
		c.byKey[c.Main[i].Key] = &c.Main[i]
	}
	for i := range c.Install {
		c.byKey[c.Install[i].Key] = &c.Install[i]
	}
}

// Get returns the entry for a callback key.
func (c *Catalog) Get(key string) (*Entry, bool) {
	entry, ok := c.byKey[key]
	return entry, ok
}

// Match finds the first entry whose trigger equals or occurs in the message
// text. Matching is case-insensitive.
func (c *Catalog) Match(text string) (*Entry, bool) {
	needle := strings.ToLower(strings.TrimSpace(text))
	if needle == "" {
		return nil, false
	}
	for _, group := range [][]Entry{c.Main, c.Install} {
		for i := range group {
			for _, trigger := range group[i].Triggers {
				trigger = strings.ToLower(strings.TrimSpace(trigger))
				if trigger == "" {
					continue
				}
				if needle == trigger || strings.Contains(needle, trigger) {
					return &group[i], true
				}
			}
		}
	}
	return nil, false
}

// Label resolves a recorded subject to its human-readable form for stats.
func (c *Catalog) Label(subject string) string {
	if subject == "" {
		return "—"
	}
	if entry, ok := c.byKey[subject]; ok && entry.Label != "" {
		return entry.Label
	}
	return subject
}
