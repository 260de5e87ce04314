package appctx

import (
	"os"
	"path/filepath"

	"convoke/internal/config"
)

// ConfigExists reports whether a configuration for the given instance exists
// under the conventional layout and contains the named environment. It never
// constructs a context and has no side effects.
func ConfigExists(instanceType, instanceName, environment string, systemFolders bool) bool {
	folders := instanceFolders(AppName, instanceType, instanceName, systemFolders)
	configFile := filepath.Join(folders.Config, instanceName+".yaml")

	if _, err := os.Stat(configFile); err != nil {
		return false
	}

	manager, err := config.FromFile(configFile)
	if err != nil {
		return false
	}
	return manager.Has(environmentOrDefault(environment))
}

// AvailableConfigurations enumerates every *.yaml document in the instance
// type's config directory. Documents that parse and define at least one
// environment come back as managers; unreadable, malformed or empty ones
// land in the failed list by path. Per-file errors are absorbed here so a
// scan survives individual corrupt files.
func AvailableConfigurations(instanceType string, systemFolders bool) ([]*config.Manager, []string) {
	folders := instanceFolders(AppName, instanceType, "", systemFolders)

	candidates, err := filepath.Glob(filepath.Join(folders.Config, "*.yaml"))
	if err != nil {
		// Glob only fails on a malformed pattern, which a joined literal
		// path cannot produce.
		return nil, nil
	}

	var managers []*config.Manager
	var failed []string
	for _, candidate := range candidates {
		manager, err := config.FromFile(candidate)
		if err != nil || manager.IsEmpty() {
			failed = append(failed, candidate)
			continue
		}
		managers = append(managers, manager)
	}
	return managers, failed
}
