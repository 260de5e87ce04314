// Package appctx holds the application context for a convoke node or server
// process: the instance's on-disk layout, the loaded multi-environment
// configuration document, the active environment, and the logging that comes
// with it. A process constructs one context at startup and shares it; see
// Set and Get for the process-wide holder.
package appctx

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"convoke/internal/appdirs"
	"convoke/internal/config"
	"convoke/pkg/logging"

	"github.com/google/uuid"
)

// AppName is the application name all directory conventions and derived
// docker names are keyed by.
const AppName = "convoke"

// DefaultEnvironment is activated when the caller does not name one.
const DefaultEnvironment = "application"

// Scope selects the installation convention an instance lives under.
const (
	ScopeUser   = "user"
	ScopeSystem = "system"
)

const bootstrapSubsystem = "Bootstrap"

// instanceFolders is swappable in tests to point the layout at a temp dir.
var instanceFolders = appdirs.InstanceFolders

// loggingEnabled gates the logging side effect of environment activation
// process-wide. Tests disable it to keep the default logger untouched.
var loggingEnabled = true

// SetLoggingEnabled toggles whether environment activation configures
// process logging. It exists for tests and tooling that must not touch the
// process logger; normal operation leaves it on.
func SetLoggingEnabled(enabled bool) {
	loggingEnabled = enabled
}

// AppContext is the application context of one convoke instance. Fields are
// set during construction and environment activation and treated as
// read-only afterwards; switching environments from multiple goroutines is
// not supported.
type AppContext struct {
	// Name is the instance name, equal to the configuration file's stem.
	Name string

	// Scope is ScopeUser or ScopeSystem.
	Scope string

	// LogDir, DataDir and ConfigDir are the resolved instance directories.
	// Only the log directory is created by this package; the data directory
	// is the orchestration layer's to populate.
	LogDir    string
	DataDir   string
	ConfigDir string

	// ConfigFile is the configuration document the context was loaded from.
	ConfigFile string

	// Manager owns the parsed multi-environment document.
	Manager *config.Manager

	// Environment is the active environment name and Config its settings.
	Environment string
	Config      config.Settings

	// SessionID tags this process in the startup banner and is available to
	// the orchestration layer for run bookkeeping.
	SessionID string

	// Log is the logger installed by the last activation, nil while logging
	// is disabled for the process.
	Log *slog.Logger
}

// New constructs the context for a named instance. The configuration file
// is resolved to <config dir>/<instanceName>.yaml and must exist; the given
// environment (DefaultEnvironment when empty) is activated before New
// returns, so logging is fully configured on success.
func New(instanceType, instanceName string, systemFolders bool, environment string) (*AppContext, error) {
	ctx := &AppContext{
		Name:      instanceName,
		Scope:     scopeName(systemFolders),
		SessionID: uuid.NewString(),
	}
	ctx.setFolders(instanceType, instanceName, systemFolders)

	configFile := filepath.Join(ctx.ConfigDir, instanceName+".yaml")
	if err := ctx.loadConfigFile(configFile); err != nil {
		return nil, err
	}
	if err := ctx.ActivateEnvironment(environmentOrDefault(environment)); err != nil {
		return nil, err
	}
	return ctx, nil
}

// FromExternalConfigFile constructs a context from a configuration file
// outside the conventional layout. The config directory becomes the file's
// parent and the instance name its stem; log and data directories still
// follow the convention for the derived name.
func FromExternalConfigFile(path, instanceType string, systemFolders bool, environment string) (*AppContext, error) {
	instanceName := fileStem(path)
	ctx := &AppContext{
		Name:      instanceName,
		Scope:     scopeName(systemFolders),
		SessionID: uuid.NewString(),
	}
	ctx.setFolders(instanceType, instanceName, systemFolders)
	ctx.ConfigDir = filepath.Dir(path)

	if err := ctx.loadConfigFile(path); err != nil {
		return nil, err
	}
	if err := ctx.ActivateEnvironment(environmentOrDefault(environment)); err != nil {
		return nil, err
	}
	return ctx, nil
}

// ActivateEnvironment switches the context to the named environment. The
// configuration manager must already be loaded and the name must exist in
// the document. On success the environment's settings become Config and,
// when logging is enabled for the process, the process logger is rebuilt
// for the new environment. There is no deactivation; activation only moves
// forward.
func (c *AppContext) ActivateEnvironment(environment string) error {
	if c.Manager == nil {
		return fmt.Errorf("activating environment %q: %w", environment, ErrNoManager)
	}
	if !c.Manager.Has(environment) {
		return &EnvironmentNotFoundError{Environment: environment}
	}

	c.Environment = environment
	c.Config, _ = c.Manager.Get(environment)

	if loggingEnabled {
		if err := c.setupLogging(); err != nil {
			return fmt.Errorf("configuring logging for environment %q: %w", environment, err)
		}
	}
	return nil
}

// LogFile resolves the active log file path: the environment's
// logging.file override when present, otherwise
// "<name>-<environment>-<scope>.log", both under the instance log directory.
func (c *AppContext) LogFile() (string, error) {
	if c.Manager == nil {
		return "", fmt.Errorf("resolving log file: %w", ErrNoManager)
	}

	settings, err := c.Config.Logging()
	if err == nil && settings.File != "" {
		return filepath.Join(c.LogDir, settings.File), nil
	}
	name := fmt.Sprintf("%s-%s-%s.log", c.Manager.Name(), c.Environment, c.Scope)
	return filepath.Join(c.LogDir, name), nil
}

// ConfigFileName returns the configuration file's stem, which equals the
// instance name.
func (c *AppContext) ConfigFileName() string {
	return fileStem(c.ConfigFile)
}

// DockerContainerName is the instance's container name in the orchestration
// layer.
func (c *AppContext) DockerContainerName() string {
	return fmt.Sprintf("%s-%s-%s", AppName, c.Name, c.Scope)
}

// DockerNetworkName is the instance's network name in the orchestration
// layer.
func (c *AppContext) DockerNetworkName() string {
	return fmt.Sprintf("%s-%s-%s", AppName, c.Name, c.Scope)
}

// DockerTemporaryVolumeName is the per-run scratch volume name.
func (c *AppContext) DockerTemporaryVolumeName(runID int) string {
	return fmt.Sprintf("%s-%s-%s-%d-tmpvol", AppName, c.Name, c.Scope, runID)
}

// setFolders resolves the instance directories from the platform convention.
func (c *AppContext) setFolders(instanceType, instanceName string, systemFolders bool) {
	folders := instanceFolders(AppName, instanceType, instanceName, systemFolders)
	c.LogDir = folders.Log
	c.DataDir = folders.Data
	c.ConfigDir = folders.Config
}

// loadConfigFile checks the file exists and eagerly loads the configuration
// manager from it.
func (c *AppContext) loadConfigFile(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("configuration %s: %w", path, ErrConfigNotFound)
		}
		return fmt.Errorf("configuration %s: %w", path, err)
	}

	manager, err := config.FromFile(path)
	if err != nil {
		return err
	}
	c.ConfigFile = path
	c.Manager = manager
	return nil
}

// setupLogging rebuilds the process logger from the active environment's
// logging block.
func (c *AppContext) setupLogging() error {
	settings, err := c.Config.Logging()
	if err != nil {
		return err
	}
	logFile, err := c.LogFile()
	if err != nil {
		return err
	}

	logger, err := logging.Setup(logging.SetupOptions{
		AppName:     AppName,
		Environment: c.Environment,
		Scope:       c.Scope,
		SessionID:   c.SessionID,
		ConfigFile:  c.ConfigFile,
		LogFile:     logFile,
		Level:       settings.Level,
		Format:      settings.Format,
		DateFormat:  settings.DateFormat,
		MaxSize:     settings.MaxSize,
		BackupCount: settings.BackupCount,
		UseConsole:  settings.UseConsole,
	})
	if err != nil {
		return err
	}

	c.Log = logger
	logging.Debug(bootstrapSubsystem, "Activated environment %s for instance %s", c.Environment, c.Name)
	return nil
}

func scopeName(systemFolders bool) string {
	if systemFolders {
		return ScopeSystem
	}
	return ScopeUser
}

func environmentOrDefault(environment string) string {
	if environment == "" {
		return DefaultEnvironment
	}
	return environment
}

func fileStem(path string) string {
	base := filepath.Base(path)
	return base[:len(base)-len(filepath.Ext(base))]
}
