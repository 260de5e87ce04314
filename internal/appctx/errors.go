package appctx

import (
	"errors"
	"fmt"
)

// ErrConfigNotFound indicates the instance's configuration file does not
// exist at the resolved path. Construction fails immediately on it.
var ErrConfigNotFound = errors.New("configuration file not found")

// ErrNoManager indicates an operation that needs the configuration manager
// ran before the manager was loaded. This is a programmer error.
var ErrNoManager = errors.New("configuration manager not initialized")

// EnvironmentNotFoundError indicates the requested environment is absent
// from the loaded configuration document.
type EnvironmentNotFoundError struct {
	Environment string
}

func (e *EnvironmentNotFoundError) Error() string {
	return fmt.Sprintf("environment %q is not found in the configuration", e.Environment)
}
