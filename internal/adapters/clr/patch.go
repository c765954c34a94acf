//go:build windows

package clr

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

// Patcher rewrites native code in the current process. Its one use is
// turning a JIT-compiled method prologue into an immediate return.
type Patcher struct{}

func NewPatcher() *Patcher { return &Patcher{} }

// PatchReturn overwrites the first byte at addr with a RET instruction.
// The page is remapped writable for the single store and the previous
// protection is put back afterwards; failing to restore is an error even
// though the byte is already written.
func (Patcher) PatchReturn(addr uintptr) error {
	const ret = 0xC3

	var old uint32
	if err := windows.VirtualProtect(addr, 1, windows.PAGE_EXECUTE_READWRITE, &old); err != nil {
		return fmt.Errorf("unprotect 0x%X: %w", addr, err)
	}
	*(*byte)(unsafe.Pointer(addr)) = ret
	var scratch uint32
	if err := windows.VirtualProtect(addr, 1, old, &scratch); err != nil {
		return fmt.Errorf("reprotect 0x%X: %w", addr, err)
	}
	return nil
}
