//go:build !windows

package cmd

import (
	"errors"

	"clrhost-cli/internal/ports"
)

func wireRuntimePorts() (ports.RuntimeLocator, ports.MemoryPatcher, ports.Releaser, error) {
	return nil, nil, nil, errors.New("CLR hosting requires Windows")
}
