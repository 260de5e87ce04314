// Package appdirs resolves the on-disk layout for convoke instances.
//
// Every instance of a given type keeps its configuration, data and logs under
// OS-conventional application directories. The package wraps the platform
// convention (XDG on Linux, the equivalents on macOS and Windows via
// github.com/adrg/xdg) and derives per-instance folders from it.
package appdirs

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// Roots holds the base directory per category for one application, before any
// per-instance subdirectories are applied.
type Roots struct {
	UserLog    string
	UserData   string
	UserConfig string
	SiteData   string
	SiteConfig string
}

// Folders is the resolved per-instance directory set.
type Folders struct {
	Log    string
	Data   string
	Config string
}

// appRoots resolves the base directories for the given application name.
// Swappable in tests so instance folders can be pointed at a temp dir.
var appRoots = platformRoots

// platformRoots derives the application roots from the host platform
// convention. Logs live under the state directory, which is where XDG puts
// data that should persist between restarts but is not portable.
func platformRoots(app string) Roots {
	return Roots{
		UserLog:    filepath.Join(xdg.StateHome, app, "log"),
		UserData:   filepath.Join(xdg.DataHome, app),
		UserConfig: filepath.Join(xdg.ConfigHome, app),
		SiteData:   filepath.Join(firstOr(xdg.DataDirs, "/usr/local/share"), app),
		SiteConfig: filepath.Join(firstOr(xdg.ConfigDirs, "/etc/xdg"), app),
	}
}

func firstOr(dirs []string, fallback string) string {
	if len(dirs) > 0 {
		return dirs[0]
	}
	return fallback
}

// InstanceFolders computes the log, data and config directories for a single
// instance. System-scoped instances share the site data root for both logs
// and data; user-scoped instances get the per-user roots. The function is a
// pure mapping over its inputs and the platform convention, it never touches
// the filesystem.
func InstanceFolders(app, instanceType, instanceName string, systemFolders bool) Folders {
	roots := appRoots(app)
	if systemFolders {
		return Folders{
			Log:    filepath.Join(roots.SiteData, instanceType),
			Data:   filepath.Join(roots.SiteData, instanceType, instanceName),
			Config: filepath.Join(roots.SiteConfig, instanceType),
		}
	}
	return Folders{
		Log:    filepath.Join(roots.UserLog, instanceType),
		Data:   filepath.Join(roots.UserData, instanceType, instanceName),
		Config: filepath.Join(roots.UserConfig, instanceType),
	}
}
