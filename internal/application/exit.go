package application

import (
	"fmt"

	"clrhost-cli/internal/ports"
)

// ExitNeutralizer rewrites the native entry of System.Environment.Exit so a
// guest assembly calling it returns immediately instead of killing the
// hosting process. The rewrite is process-wide and permanent for the life
// of the loaded runtime.
type ExitNeutralizer struct {
	mscorlib ports.Assembly
	patcher  ports.MemoryPatcher
	releaser ports.Releaser
}

func NewExitNeutralizer(mscorlib ports.Assembly, patcher ports.MemoryPatcher, releaser ports.Releaser) *ExitNeutralizer {
	return &ExitNeutralizer{mscorlib: mscorlib, patcher: patcher, releaser: releaser}
}

// Neutralize resolves Environment.Exit down to its native function pointer
// through MethodHandle and GetFunctionPointer, then patches it. Every step
// is fatal: a partial neutralization would leave the guest able to take
// the process down.
func (n *ExitNeutralizer) Neutralize() error {
	inv := NewInvoker(n.mscorlib, n.releaser)

	method, err := inv.Method("System.Environment", "Exit", "Void Exit(Int32)")
	if err != nil {
		return fmt.Errorf("resolve Environment.Exit: %w", err)
	}
	defer method.Release()

	methodObj, err := method.AsValue()
	if err != nil {
		return fmt.Errorf("reference Environment.Exit: %w", err)
	}
	if n.releaser != nil {
		defer n.releaser.Release(methodObj)
	}

	handle, err := inv.PropertyValue("System.Reflection.MethodInfo", "MethodHandle", methodObj)
	if err != nil {
		return fmt.Errorf("read MethodHandle: %w", err)
	}
	if n.releaser != nil {
		defer n.releaser.Release(handle)
	}

	pointer, err := inv.CallInstance("System.RuntimeMethodHandle", "GetFunctionPointer", handle, nil)
	if err != nil {
		return fmt.Errorf("resolve exit function pointer: %w", err)
	}
	addr, err := pointer.Uintptr()
	if err != nil {
		return fmt.Errorf("exit function pointer: %w", err)
	}
	if addr == 0 {
		return fmt.Errorf("exit function pointer: null address")
	}

	if err := n.patcher.PatchReturn(addr); err != nil {
		return fmt.Errorf("patch exit stub: %w", err)
	}
	return nil
}
