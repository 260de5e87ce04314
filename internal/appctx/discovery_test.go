package appctx

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigExists(t *testing.T) {
	base := withTempLayout(t)
	writeInstanceConfig(t, base, ScopeUser, "node", "alpha", instanceDocument)

	assert.True(t, ConfigExists("node", "alpha", "test", false))
	assert.True(t, ConfigExists("node", "alpha", "application", false))
	assert.False(t, ConfigExists("node", "alpha", "prod", false))
	assert.False(t, ConfigExists("node", "beta", "test", false))
	assert.False(t, ConfigExists("node", "alpha", "test", true))
}

func TestConfigExistsDefaultEnvironment(t *testing.T) {
	base := withTempLayout(t)
	writeInstanceConfig(t, base, ScopeUser, "node", "alpha", instanceDocument)

	assert.True(t, ConfigExists("node", "alpha", "", false))
}

func TestAvailableConfigurations(t *testing.T) {
	base := withTempLayout(t)
	writeInstanceConfig(t, base, ScopeUser, "node", "alpha", instanceDocument)
	corrupt := writeInstanceConfig(t, base, ScopeUser, "node", "broken", "test: [unclosed")
	empty := writeInstanceConfig(t, base, ScopeUser, "node", "hollow", "")

	managers, failed := AvailableConfigurations("node", false)

	require.Len(t, managers, 1)
	assert.Equal(t, "alpha", managers[0].Name())
	assert.ElementsMatch(t, []string{corrupt, empty}, failed)
}

func TestAvailableConfigurationsEmptyDirectory(t *testing.T) {
	base := withTempLayout(t)
	require.NoError(t, os.MkdirAll(filepath.Join(base, "user", "config", "node"), 0755))

	managers, failed := AvailableConfigurations("node", false)
	assert.Empty(t, managers)
	assert.Empty(t, failed)
}

func TestAvailableConfigurationsMissingDirectory(t *testing.T) {
	withTempLayout(t)

	managers, failed := AvailableConfigurations("node", false)
	assert.Empty(t, managers)
	assert.Empty(t, failed)
}
