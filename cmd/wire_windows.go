//go:build windows

package cmd

import (
	"clrhost-cli/internal/adapters/clr"
	"clrhost-cli/internal/ports"
)

func wireRuntimePorts() (ports.RuntimeLocator, ports.MemoryPatcher, ports.Releaser, error) {
	return clr.NewLocator(), clr.NewPatcher(), clr.NewObjectReleaser(), nil
}
