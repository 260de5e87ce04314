package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const twoEnvDocument = `
application:
  logging:
    level: INFO
    format: "%(asctime)s %(levelname)s %(message)s"
    max_size: 1024
    backup_count: 5
    use_console: true
  api_key: alpha

test:
  logging:
    level: debug
    format: text
    max_size: 64
    backup_count: 1
    use_console: false
    file: override.log
  api_key: beta
`

func writeDocument(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestFromFile(t *testing.T) {
	path := writeDocument(t, "alpha.yaml", twoEnvDocument)

	manager, err := FromFile(path)
	require.NoError(t, err)

	assert.Equal(t, path, manager.Path())
	assert.Equal(t, "alpha", manager.Name())
	assert.Equal(t, []string{"application", "test"}, manager.Environments())
	assert.True(t, manager.Has("test"))
	assert.False(t, manager.Has("prod"))
	assert.False(t, manager.IsEmpty())
}

func TestFromFileMissing(t *testing.T) {
	_, err := FromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestFromFileMalformed(t *testing.T) {
	path := writeDocument(t, "broken.yaml", "application: [unclosed")

	_, err := FromFile(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "broken.yaml")
}

func TestFromFileEmptyDocument(t *testing.T) {
	path := writeDocument(t, "empty.yaml", "")

	manager, err := FromFile(path)
	require.NoError(t, err)
	assert.True(t, manager.IsEmpty())
}

func TestGetReturnsEnvironmentSettings(t *testing.T) {
	path := writeDocument(t, "alpha.yaml", twoEnvDocument)
	manager, err := FromFile(path)
	require.NoError(t, err)

	settings, ok := manager.Get("test")
	require.True(t, ok)
	assert.Equal(t, "beta", settings["api_key"])

	_, ok = manager.Get("prod")
	assert.False(t, ok)
}

func TestLoggingSettings(t *testing.T) {
	path := writeDocument(t, "alpha.yaml", twoEnvDocument)
	manager, err := FromFile(path)
	require.NoError(t, err)

	settings, ok := manager.Get("test")
	require.True(t, ok)

	logSettings, err := settings.Logging()
	require.NoError(t, err)
	assert.Equal(t, "debug", logSettings.Level)
	assert.Equal(t, "text", logSettings.Format)
	assert.Equal(t, 64, logSettings.MaxSize)
	assert.Equal(t, 1, logSettings.BackupCount)
	assert.False(t, logSettings.UseConsole)
	assert.Equal(t, "override.log", logSettings.File)
}

func TestLoggingSettingsMissingSection(t *testing.T) {
	_, err := Settings{"api_key": "x"}.Logging()
	assert.ErrorIs(t, err, ErrNoLoggingSection)
}

func TestLoggingSettingsMissingRequiredKeys(t *testing.T) {
	settings := Settings{
		"logging": map[string]any{
			"format":       "text",
			"max_size":     10,
			"backup_count": 1,
		},
	}

	_, err := settings.Logging()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "level")
}
