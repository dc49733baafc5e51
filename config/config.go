package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Settings is the process-wide configuration shared by every convention
// instance. It is created once by the caller and passed around by
// reference; nothing here is persisted between invocations unless the
// caller saves it.
type Settings struct {
	// Name selects the active convention.
	Name string `json:"name" yaml:"name"`
	// TagFormat describes how release tags are rendered from a version.
	TagFormat string `json:"tagFormat" yaml:"tagFormat"`
	// IgnoredTagFormats holds glob patterns for tag names release tooling
	// should skip (build markers, nightly tags and the like).
	IgnoredTagFormats []string `json:"ignoredTagFormats" yaml:"ignoredTagFormats"`
	// Style maps prompt role names to color/emphasis directives. When a
	// convention is constructed against settings without a style entry,
	// the default table is installed exactly once.
	Style map[string]string `json:"style" yaml:"style"`
}

// Default returns settings with built-in values.
func Default() *Settings {
	return &Settings{
		Name:      "conventional",
		TagFormat: "v$version",
	}
}

// DefaultStyle returns the built-in prompt style table. Roles follow the
// usual question/answer prompt vocabulary.
func DefaultStyle() map[string]string {
	return map[string]string{
		"qmark":       "fg:#ff9d00 bold",
		"question":    "bold",
		"answer":      "fg:#ff9d00 bold",
		"pointer":     "fg:#ff9d00 bold",
		"highlighted": "fg:#ff9d00 bold",
		"selected":    "fg:#cc5454",
		"separator":   "fg:#cc5454",
		"instruction": "",
		"text":        "",
		"disabled":    "fg:#858585 italic",
	}
}

// EnsureDefaultStyle installs the default style table when the settings
// carry none, and reports whether the default was applied. An existing
// style entry is never overwritten, so repeated calls are idempotent.
func (s *Settings) EnsureDefaultStyle() bool {
	if len(s.Style) > 0 {
		return false
	}
	s.Style = DefaultStyle()
	return true
}

// candidateNames are probed, in order, in the working directory and then
// the home directory when Load is called with an empty path.
var candidateNames = []string{".czkit.json", ".czkit.yaml", ".czkit.yml"}

// Load reads settings from path, merged over Default. An empty path
// probes the candidate file names; when nothing is found the defaults are
// returned as-is.
func Load(path string) (*Settings, error) {
	settings := Default()

	if path == "" {
		dirs := []string{"."}
		if home, err := os.UserHomeDir(); err == nil && home != "" {
			dirs = append(dirs, home)
		}
		for _, dir := range dirs {
			for _, name := range candidateNames {
				p := filepath.Join(dir, name)
				if _, err := os.Stat(p); err == nil {
					path = p
					break
				}
			}
			if path != "" {
				break
			}
		}
	}

	if path == "" {
		return settings, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return settings, nil
		}
		return nil, err
	}

	if err := unmarshalByExtension(path, data, settings); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return settings, nil
}

// Save writes settings to path in the format implied by its extension
// (YAML for .yaml/.yml, JSON otherwise).
func Save(s *Settings, path string) error {
	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(s)
	} else {
		data, err = json.MarshalIndent(s, "", "  ")
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func unmarshalByExtension(path string, data []byte, s *Settings) error {
	if isYAML(path) {
		return yaml.Unmarshal(data, s)
	}
	return json.Unmarshal(data, s)
}

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
