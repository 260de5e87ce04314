// Package config loads and owns convoke's multi-environment configuration
// documents. A document is a YAML file whose top level maps environment names
// (e.g. test, prod) to that environment's settings. Exactly one environment
// is activated per process; selection is the job of internal/appctx, this
// package only parses and hands out settings.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Settings is one environment's settings mapping, as parsed from the
// document. Nested mappings decode as map[string]any.
type Settings map[string]any

// Manager owns a single parsed configuration document.
type Manager struct {
	path         string
	name         string
	environments map[string]Settings
}

// FromFile reads and parses a configuration document. The file must be a
// YAML mapping of environment name to settings; any parse failure is
// returned wrapped with the file path.
func FromFile(path string) (*Manager, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading configuration %s: %w", path, err)
	}

	var environments map[string]Settings
	if err := yaml.Unmarshal(data, &environments); err != nil {
		return nil, fmt.Errorf("parsing configuration %s: %w", path, err)
	}

	return &Manager{
		path:         path,
		name:         fileStem(path),
		environments: environments,
	}, nil
}

// Path returns the path the document was loaded from.
func (m *Manager) Path() string {
	return m.path
}

// Name returns the document's file stem, which doubles as the instance name.
func (m *Manager) Name() string {
	return m.name
}

// Environments returns the names of all environments in the document, sorted.
func (m *Manager) Environments() []string {
	names := make([]string, 0, len(m.environments))
	for name := range m.environments {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether the document contains the named environment.
func (m *Manager) Has(environment string) bool {
	_, ok := m.environments[environment]
	return ok
}

// Get returns the settings for the named environment.
func (m *Manager) Get(environment string) (Settings, bool) {
	settings, ok := m.environments[environment]
	return settings, ok
}

// IsEmpty reports whether the document defines no environments at all. An
// empty document is treated as a load failure by discovery.
func (m *Manager) IsEmpty() bool {
	return len(m.environments) == 0
}

// fileStem returns the base name of path without its extension.
func fileStem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
