//go:build windows

package clr

import (
	"fmt"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"

	"clrhost-cli/internal/ports"
)

type corRuntimeHostVtbl struct {
	iUnknownVtbl
	CreateLogicalThreadState    uintptr
	DeleteLogicalThreadState    uintptr
	SwitchInLogicalThreadState  uintptr
	SwitchOutLogicalThreadState uintptr
	LocksHeldByLogicalThread    uintptr
	MapFile                     uintptr
	GetConfiguration            uintptr
	Start                       uintptr
	Stop                        uintptr
	CreateDomain                uintptr
	GetDefaultDomain            uintptr
	EnumDomains                 uintptr
	NextDomain                  uintptr
	CloseEnum                   uintptr
	CreateDomainEx              uintptr
	CreateDomainSetup           uintptr
	CreateEvidence              uintptr
	UnloadDomain                uintptr
	CurrentDomain               uintptr
}

// corRuntimeHost wraps ICorRuntimeHost, the legacy hosting interface that
// still owns application domain management.
type corRuntimeHost struct {
	ptr uintptr
}

func (h *corRuntimeHost) vt() *corRuntimeHostVtbl {
	return (*corRuntimeHostVtbl)(unsafe.Pointer(vtbl(h.ptr)))
}

func (h *corRuntimeHost) Start() error {
	hr, _, _ := syscall.SyscallN(h.vt().Start, h.ptr)
	return checkHR("Start", hr)
}

func (h *corRuntimeHost) Stop() error {
	hr, _, _ := syscall.SyscallN(h.vt().Stop, h.ptr)
	return checkHR("Stop", hr)
}

// CreateDomain creates a named application domain and hands back its
// reflection surface.
func (h *corRuntimeHost) CreateDomain(name string) (ports.AppDomain, error) {
	wide, err := windows.UTF16PtrFromString(name)
	if err != nil {
		return nil, fmt.Errorf("domain name %q: %w", name, err)
	}
	var unk uintptr
	hr, _, _ := syscall.SyscallN(h.vt().CreateDomain, h.ptr,
		uintptr(unsafe.Pointer(wide)), 0, uintptr(unsafe.Pointer(&unk)))
	if err := checkHR("CreateDomain", hr); err != nil {
		return nil, err
	}
	defer release(unk)

	ptr, err := queryInterface(unk, &iidAppDomain)
	if err != nil {
		return nil, err
	}
	return &appDomain{ptr: ptr}, nil
}

func (h *corRuntimeHost) UnloadDomain(d ports.AppDomain) error {
	ad, ok := d.(*appDomain)
	if !ok {
		return fmt.Errorf("unload domain: foreign implementation %T", d)
	}
	hr, _, _ := syscall.SyscallN(h.vt().UnloadDomain, h.ptr, ad.ptr)
	if err := checkHR("UnloadDomain", hr); err != nil {
		return err
	}
	release(ad.ptr)
	ad.ptr = 0
	return nil
}
