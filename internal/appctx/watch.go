package appctx

import (
	"context"
	"fmt"

	"convoke/internal/config"
	"convoke/pkg/logging"

	"github.com/fsnotify/fsnotify"
)

const watcherSubsystem = "Watcher"

// WatchConfig re-activates the current environment whenever the context's
// configuration file is rewritten on disk, picking up edited settings and
// rebuilding logging. The returned channel emits the environment name after
// each successful reload. Reload failures are logged and the watch
// continues; the goroutine stops when ctx is cancelled.
//
// The reload runs on the watcher goroutine, so the single-owner rule for
// environment switches extends to it: don't call ActivateEnvironment from
// other goroutines while a watch is running.
func (c *AppContext) WatchConfig(ctx context.Context) (<-chan string, error) {
	if c.Manager == nil {
		return nil, fmt.Errorf("watching configuration: %w", ErrNoManager)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating configuration watcher: %w", err)
	}
	// Watch the directory, not the file: editors and atomic writers replace
	// the file, which drops a file-level watch.
	if err := watcher.Add(c.ConfigDir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watching %s: %w", c.ConfigDir, err)
	}

	reloaded := make(chan string, 1)
	go func() {
		defer watcher.Close()
		defer close(reloaded)
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Name != c.ConfigFile {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				c.reloadConfig(reloaded)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logging.Warn(watcherSubsystem, "Configuration watcher error: %v", err)
			}
		}
	}()
	return reloaded, nil
}

// reloadConfig re-reads the configuration file and re-activates the current
// environment. Failures leave the previous state in place.
func (c *AppContext) reloadConfig(reloaded chan<- string) {
	manager, err := config.FromFile(c.ConfigFile)
	if err != nil {
		logging.Warn(watcherSubsystem, "Ignoring configuration change: %v", err)
		return
	}
	if !manager.Has(c.Environment) {
		logging.Warn(watcherSubsystem, "Ignoring configuration change: environment %s no longer present", c.Environment)
		return
	}

	c.Manager = manager
	if err := c.ActivateEnvironment(c.Environment); err != nil {
		logging.Warn(watcherSubsystem, "Reload of environment %s failed: %v", c.Environment, err)
		return
	}
	logging.Info(watcherSubsystem, "Reloaded configuration from %s", c.ConfigFile)

	select {
	case reloaded <- c.Environment:
	default:
	}
}
