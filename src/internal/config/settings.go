package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Settings is the content of <home>/config
type Settings struct {
	Proxy   string         `toml:"proxy,omitempty"`
	DataDir string         `toml:"data_dir,omitempty"`
	Go      LanguageConfig `toml:"go,omitempty"`
	Node    LanguageConfig `toml:"node,omitempty"`
	Java    JavaConfig     `toml:"java,omitempty"`
}

// LanguageConfig holds the per-language overrides
type LanguageConfig struct {
	Proxy  string `toml:"proxy,omitempty"`
	Mirror string `toml:"mirror,omitempty"`
}

// JavaConfig adds the default vendor to the per-language overrides
type JavaConfig struct {
	Proxy         string `toml:"proxy,omitempty"`
	Mirror        string `toml:"mirror,omitempty"`
	DefaultVendor string `toml:"default_vendor,omitempty"`
}

// Keys accepted by `uvm config`
const (
	KeyProxy   = "proxy"
	KeyDataDir = "data_dir"
)

// SettingKeys lists the keys accepted by Get, Set and Delete
var SettingKeys = []string{KeyProxy, KeyDataDir}

// LoadSettings reads the settings file. A missing file yields empty settings.
func LoadSettings(path string) (*Settings, error) {
	settings := &Settings{}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return settings, nil
		}
		return nil, err
	}

	if _, err := toml.Decode(string(data), settings); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return settings, nil
}

// Save writes the settings file, replacing its previous content
func (s *Settings) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	return toml.NewEncoder(f).Encode(s)
}

// Get returns the value of a top-level key
func (s *Settings) Get(key string) (string, error) {
	switch key {
	case KeyProxy:
		return s.Proxy, nil
	case KeyDataDir:
		return s.DataDir, nil
	default:
		return "", unknownKey(key)
	}
}

// Set assigns a top-level key
func (s *Settings) Set(key, value string) error {
	switch key {
	case KeyProxy:
		s.Proxy = strings.TrimSpace(value)
	case KeyDataDir:
		s.DataDir = strings.TrimSpace(value)
	default:
		return unknownKey(key)
	}
	return nil
}

// Delete clears a top-level key
func (s *Settings) Delete(key string) error {
	return s.Set(key, "")
}

// ProxyFor returns the proxy to use for a language. A language proxy wins
// over the global one; an empty result means a direct connection.
func (s *Settings) ProxyFor(language string) string {
	var override string
	switch language {
	case "go":
		override = s.Go.Proxy
	case "node":
		override = s.Node.Proxy
	case "java":
		override = s.Java.Proxy
	}
	if override != "" {
		return override
	}
	return s.Proxy
}

// MirrorFor returns the catalog mirror configured for a language, if any
func (s *Settings) MirrorFor(language string) string {
	switch language {
	case "go":
		return s.Go.Mirror
	case "node":
		return s.Node.Mirror
	case "java":
		return s.Java.Mirror
	}
	return ""
}

func unknownKey(key string) error {
	return fmt.Errorf("unknown config key %q (valid keys: %s)", key, strings.Join(SettingKeys, ", "))
}
