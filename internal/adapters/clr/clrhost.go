//go:build windows

package clr

import (
	"syscall"
	"unsafe"

	"clrhost-cli/internal/domain"
)

type runtimeHostVtbl struct {
	iUnknownVtbl
	Start                     uintptr
	Stop                      uintptr
	SetHostControl            uintptr
	GetCLRControl             uintptr
	UnloadAppDomain           uintptr
	ExecuteInAppDomain        uintptr
	GetCurrentAppDomainId     uintptr
	ExecuteApplication        uintptr
	ExecuteInDefaultAppDomain uintptr
}

// runtimeHost wraps ICLRRuntimeHost. Its one job beyond Start/Stop is
// installing the bind interceptor, which must happen before Start.
type runtimeHost struct {
	ptr uintptr

	// control keeps the callback object reachable for the lifetime of the
	// runtime; the CLR holds only a raw pointer to it.
	control *hostControl
}

func (h *runtimeHost) vt() *runtimeHostVtbl {
	return (*runtimeHostVtbl)(unsafe.Pointer(vtbl(h.ptr)))
}

// RegisterInterceptor installs an IHostControl whose assembly store serves
// the given in-memory image.
func (h *runtimeHost) RegisterInterceptor(store *domain.AssemblyStore) error {
	control := newHostControl(store)
	hr, _, _ := syscall.SyscallN(h.vt().SetHostControl, h.ptr, control.raw())
	if err := checkHR("SetHostControl", hr); err != nil {
		return err
	}
	h.control = control
	return nil
}

func (h *runtimeHost) Start() error {
	hr, _, _ := syscall.SyscallN(h.vt().Start, h.ptr)
	return checkHR("Start", hr)
}

func (h *runtimeHost) Stop() error {
	hr, _, _ := syscall.SyscallN(h.vt().Stop, h.ptr)
	return checkHR("Stop", hr)
}
