package application

import (
	"fmt"

	"github.com/google/uuid"

	"clrhost-cli/internal/domain"
	"clrhost-cli/internal/ports"
)

// Environment is the light-weight hosting mode: runtime plus domain, no
// guest assembly and no bind interception. It exists for callers that only
// want reflection over the framework itself, mscorlib first among them.
type Environment struct {
	locator  ports.RuntimeLocator
	releaser ports.Releaser
	version  domain.RuntimeVersion

	corHost   ports.CorRuntimeHost
	appDomain ports.AppDomain
	mscorlib  ports.Assembly
}

func NewEnvironment(locator ports.RuntimeLocator, releaser ports.Releaser, version domain.RuntimeVersion) *Environment {
	return &Environment{locator: locator, releaser: releaser, version: version}
}

// Open starts the runtime and creates a fresh domain. The domain name is
// always generated; environment domains are throwaway.
func (e *Environment) Open() error {
	info, err := e.locator.Resolve(e.version)
	if err != nil {
		return fmt.Errorf("resolve runtime %s: %w", e.version, err)
	}
	corHost, err := info.CorHost()
	if err != nil {
		return fmt.Errorf("obtain execution-context host: %w", err)
	}
	if err := corHost.Start(); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrRuntimeStart, err)
	}
	e.corHost = corHost

	appDomain, err := corHost.CreateDomain(uuid.NewString())
	if err != nil {
		return fmt.Errorf("create domain: %w", err)
	}
	e.appDomain = appDomain

	mscorlib, err := appDomain.AssemblyByName("mscorlib")
	if err != nil {
		return fmt.Errorf("locate mscorlib: %w", err)
	}
	e.mscorlib = mscorlib
	return nil
}

// Mscorlib returns the framework core assembly. Open must have succeeded.
func (e *Environment) Mscorlib() (ports.Assembly, error) {
	if e.mscorlib == nil {
		return nil, domain.ErrNotPrepared
	}
	return e.mscorlib, nil
}

// Invoker returns a call surface over mscorlib.
func (e *Environment) Invoker() (*Invoker, error) {
	mscorlib, err := e.Mscorlib()
	if err != nil {
		return nil, err
	}
	return NewInvoker(mscorlib, e.releaser), nil
}

// Close unloads the domain and stops the runtime. Idempotent.
func (e *Environment) Close() error {
	var firstErr error
	if e.appDomain != nil && e.corHost != nil {
		if err := e.corHost.UnloadDomain(e.appDomain); err != nil {
			firstErr = fmt.Errorf("unload domain: %w", err)
		}
		e.appDomain = nil
		e.mscorlib = nil
	}
	if e.corHost != nil {
		if err := e.corHost.Stop(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("stop runtime: %w", err)
		}
		e.corHost = nil
	}
	return firstErr
}
