package appdirs

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func withTestRoots(t *testing.T) Roots {
	t.Helper()
	base := t.TempDir()
	roots := Roots{
		UserLog:    filepath.Join(base, "state", "convoke", "log"),
		UserData:   filepath.Join(base, "data", "convoke"),
		UserConfig: filepath.Join(base, "config", "convoke"),
		SiteData:   filepath.Join(base, "site-data", "convoke"),
		SiteConfig: filepath.Join(base, "site-config", "convoke"),
	}

	original := appRoots
	appRoots = func(string) Roots { return roots }
	t.Cleanup(func() { appRoots = original })

	return roots
}

func TestInstanceFoldersUserScope(t *testing.T) {
	roots := withTestRoots(t)

	folders := InstanceFolders("convoke", "node", "alpha", false)

	assert.Equal(t, filepath.Join(roots.UserLog, "node"), folders.Log)
	assert.Equal(t, filepath.Join(roots.UserData, "node", "alpha"), folders.Data)
	assert.Equal(t, filepath.Join(roots.UserConfig, "node"), folders.Config)
}

func TestInstanceFoldersSystemScope(t *testing.T) {
	roots := withTestRoots(t)

	folders := InstanceFolders("convoke", "server", "central", true)

	assert.Equal(t, filepath.Join(roots.SiteData, "server"), folders.Log)
	assert.Equal(t, filepath.Join(roots.SiteData, "server", "central"), folders.Data)
	assert.Equal(t, filepath.Join(roots.SiteConfig, "server"), folders.Config)
}

func TestInstanceFoldersConfigIndependentOfName(t *testing.T) {
	withTestRoots(t)

	// The config directory is keyed by instance type only; two instances of
	// the same type share it.
	a := InstanceFolders("convoke", "node", "alpha", false)
	b := InstanceFolders("convoke", "node", "beta", false)

	assert.Equal(t, a.Config, b.Config)
	assert.NotEqual(t, a.Data, b.Data)
}

func TestPlatformRootsAreAbsolute(t *testing.T) {
	roots := platformRoots("convoke")

	assert.True(t, filepath.IsAbs(roots.UserConfig))
	assert.True(t, filepath.IsAbs(roots.UserData))
	assert.True(t, filepath.IsAbs(roots.UserLog))
	assert.True(t, filepath.IsAbs(roots.SiteData))
	assert.True(t, filepath.IsAbs(roots.SiteConfig))
}
