package application

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"clrhost-cli/internal/domain"
	"clrhost-cli/internal/ports"
)

// State tracks the host through its one-directional lifecycle. Transitions
// are strictly sequential; in particular the interceptor must be registered
// before the runtime starts or it never takes effect.
type State uint8

const (
	StateUninitialized State = iota
	StateVersionResolved
	StateInterceptorRegistered
	StateRuntimeStarted
	StateDomainCreated
	StateAssemblyLoaded
	StateDomainUnloaded
	StateRuntimeStopped
)

type Options struct {
	Version        domain.RuntimeVersion
	DomainName     string
	RedirectOutput bool
	PatchExit      bool
	Logger         *log.Logger
}

// Host drives one managed execution environment: one runtime, one domain,
// one in-memory assembly. A second assembly needs a second Host.
type Host struct {
	locator  ports.RuntimeLocator
	patcher  ports.MemoryPatcher
	releaser ports.Releaser
	opts     Options
	logger   *log.Logger

	state    State
	image    []byte
	identity string

	info      ports.RuntimeInfo
	clrHost   ports.RuntimeHost
	corHost   ports.CorRuntimeHost
	appDomain ports.AppDomain
}

func NewHost(locator ports.RuntimeLocator, patcher ports.MemoryPatcher, releaser ports.Releaser, opts Options) *Host {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &Host{
		locator:  locator,
		patcher:  patcher,
		releaser: releaser,
		opts:     opts,
		logger:   logger,
	}
}

func (h *Host) State() State { return h.state }

// Identity returns the binding identity computed for the current image.
// Empty until prepare has run.
func (h *Host) Identity() string { return h.identity }

// Run executes the assembly's entry point and returns whatever console
// output was captured (empty when redirection is off). The context is
// consulted between stages only: a native call already in flight cannot be
// cancelled.
func (h *Host) Run(ctx context.Context, image []byte, args []string) (output string, err error) {
	if err := domain.ValidateImage(image); err != nil {
		return "", err
	}
	h.image = image

	defer h.teardown()

	if err = h.prepare(ctx); err != nil {
		return "", err
	}
	if err = ctx.Err(); err != nil {
		return "", err
	}

	assembly, err := h.appDomain.LoadByIdentity(h.identity)
	if err != nil {
		return "", fmt.Errorf("load assembly by identity: %w", err)
	}
	h.state = StateAssemblyLoaded

	var mscorlib ports.Assembly
	if h.opts.PatchExit || h.opts.RedirectOutput {
		mscorlib, err = h.appDomain.AssemblyByName("mscorlib")
		if err != nil {
			return "", fmt.Errorf("locate mscorlib: %w", err)
		}
	}

	if h.opts.PatchExit {
		neutralizer := NewExitNeutralizer(mscorlib, h.patcher, h.releaser)
		if err = neutralizer.Neutralize(); err != nil {
			return "", fmt.Errorf("neutralize process exit: %w", err)
		}
	}

	var capture *ConsoleCapture
	if h.opts.RedirectOutput {
		capture = NewConsoleCapture(mscorlib, h.releaser)
		if err = capture.Arm(); err != nil {
			return "", fmt.Errorf("arm output capture: %w", err)
		}
		defer func() {
			if rerr := capture.Restore(); rerr != nil {
				h.logger.Warn("console restore failed", "err", rerr)
			}
		}()
	}

	if err = assembly.RunEntryPoint(domain.Strings(args)); err != nil {
		return "", fmt.Errorf("invoke entry point: %w", err)
	}

	if capture != nil {
		output, err = capture.Capture()
		if err != nil {
			return "", fmt.Errorf("capture output: %w", err)
		}
	}

	return output, nil
}

// prepare walks the environment up to DomainCreated: locate the runtime,
// compute the image identity, register the bind interceptor, start the
// runtime and create the execution context.
func (h *Host) prepare(ctx context.Context) error {
	info, err := h.locator.Resolve(h.opts.Version)
	if err != nil {
		return fmt.Errorf("resolve runtime %s: %w", h.opts.Version, err)
	}
	h.info = info
	h.state = StateVersionResolved

	identityManager, err := info.IdentityManager()
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrIdentityExtraction, err)
	}
	identity, err := identityManager.IdentityFromImage(h.image)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrIdentityExtraction, err)
	}
	h.identity = identity

	if err := ctx.Err(); err != nil {
		return err
	}

	clrHost, err := info.RuntimeHost()
	if err != nil {
		return fmt.Errorf("obtain runtime host: %w", err)
	}
	h.clrHost = clrHost

	loadable, err := info.IsLoadable()
	if err != nil {
		return fmt.Errorf("query loadable: %w", err)
	}
	started, err := info.IsStarted()
	if err != nil {
		return fmt.Errorf("query started: %w", err)
	}

	// Another actor in the process may have started the runtime already;
	// the interceptor would be inert then, and registering it is skipped.
	if loadable && !started {
		store := domain.NewAssemblyStore(identity, h.image)
		if err := clrHost.RegisterInterceptor(store); err != nil {
			return fmt.Errorf("register bind interceptor: %w", err)
		}
		h.state = StateInterceptorRegistered

		if err := clrHost.Start(); err != nil {
			return fmt.Errorf("%w: %w", domain.ErrRuntimeStart, err)
		}
	}
	h.state = StateRuntimeStarted

	corHost, err := info.CorHost()
	if err != nil {
		return fmt.Errorf("obtain execution-context host: %w", err)
	}
	if err := corHost.Start(); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrRuntimeStart, err)
	}
	h.corHost = corHost

	name := h.opts.DomainName
	if name == "" {
		name = uuid.NewString()
	}
	appDomain, err := corHost.CreateDomain(name)
	if err != nil {
		return fmt.Errorf("create domain %q: %w", name, err)
	}
	h.appDomain = appDomain
	h.state = StateDomainCreated

	return nil
}

// Unload tears the domain down. Calling it with no domain present, or
// twice, is a no-op.
func (h *Host) Unload() error {
	if h.appDomain == nil || h.corHost == nil {
		return nil
	}
	err := h.corHost.UnloadDomain(h.appDomain)
	h.appDomain = nil
	h.state = StateDomainUnloaded
	if err != nil {
		return fmt.Errorf("unload domain: %w", err)
	}
	return nil
}

// teardown runs on every exit path. Order is fixed: unload the domain,
// then stop the runtime. Failures here are logged and never replace an
// error already pending from the run itself.
func (h *Host) teardown() {
	if err := h.Unload(); err != nil {
		h.logger.Warn("domain unload failed during teardown", "err", err)
	}
	if h.corHost != nil {
		if err := h.corHost.Stop(); err != nil {
			h.logger.Warn("runtime stop failed during teardown", "err", err)
		}
		h.corHost = nil
		h.state = StateRuntimeStopped
	}
}
