package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"

	profilerepo "clrhost-cli/internal/adapters/profile"
	"clrhost-cli/internal/ports"
)

type app struct {
	locator  ports.RuntimeLocator
	patcher  ports.MemoryPatcher
	releaser ports.Releaser
	profiles ports.ProfileRepository
	logger   *log.Logger

	// runtimeErr is non-nil when the process cannot host a CLR at all, on
	// non-Windows builds. Commands that need the runtime surface it.
	runtimeErr error
}

func wireApp() (*app, error) {
	profiles, err := profilerepo.NewRepository(viper.New())
	if err != nil {
		return nil, fmt.Errorf("wire profile repository: %w", err)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "clrhost",
	})

	a := &app{profiles: profiles, logger: logger}
	a.locator, a.patcher, a.releaser, a.runtimeErr = wireRuntimePorts()
	return a, nil
}

func (a *app) requireRuntime() error {
	return a.runtimeErr
}
