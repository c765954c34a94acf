//go:build windows

package clr

import (
	"syscall"
	"unicode/utf16"
	"unsafe"

	"golang.org/x/sys/windows"

	"clrhost-cli/internal/ports"
)

type runtimeInfoVtbl struct {
	iUnknownVtbl
	GetVersionString       uintptr
	GetRuntimeDirectory    uintptr
	IsLoaded               uintptr
	LoadErrorString        uintptr
	LoadLibrary            uintptr
	GetProcAddress         uintptr
	GetInterface           uintptr
	IsLoadable             uintptr
	SetDefaultStartupFlags uintptr
	GetDefaultStartupFlags uintptr
	BindAsLegacyV2Runtime  uintptr
	IsStarted              uintptr
}

// runtimeInfo wraps ICLRRuntimeInfo for one resolved runtime generation.
type runtimeInfo struct {
	ptr uintptr
}

func (r *runtimeInfo) vt() *runtimeInfoVtbl {
	return (*runtimeInfoVtbl)(unsafe.Pointer(vtbl(r.ptr)))
}

func (r *runtimeInfo) VersionString() (string, error) {
	buf := make([]uint16, 64)
	size := uint32(len(buf))
	hr, _, _ := syscall.SyscallN(r.vt().GetVersionString, r.ptr,
		uintptr(unsafe.Pointer(&buf[0])), uintptr(unsafe.Pointer(&size)))
	if err := checkHR("GetVersionString", hr); err != nil {
		return "", err
	}
	if size > 0 {
		size--
	}
	return string(utf16.Decode(buf[:size])), nil
}

func (r *runtimeInfo) IsLoadable() (bool, error) {
	var loadable int32
	hr, _, _ := syscall.SyscallN(r.vt().IsLoadable, r.ptr,
		uintptr(unsafe.Pointer(&loadable)))
	if err := checkHR("IsLoadable", hr); err != nil {
		return false, err
	}
	return loadable != 0, nil
}

func (r *runtimeInfo) IsStarted() (bool, error) {
	var started int32
	var startupFlags uint32
	hr, _, _ := syscall.SyscallN(r.vt().IsStarted, r.ptr,
		uintptr(unsafe.Pointer(&started)),
		uintptr(unsafe.Pointer(&startupFlags)))
	if err := checkHR("IsStarted", hr); err != nil {
		return false, err
	}
	return started != 0, nil
}

// getInterface asks the runtime for one of its hosting objects.
func (r *runtimeInfo) getInterface(clsid, iid *windows.GUID) (uintptr, error) {
	var out uintptr
	hr, _, _ := syscall.SyscallN(r.vt().GetInterface, r.ptr,
		uintptr(unsafe.Pointer(clsid)),
		uintptr(unsafe.Pointer(iid)),
		uintptr(unsafe.Pointer(&out)))
	if err := checkHR("GetInterface", hr); err != nil {
		return 0, err
	}
	return out, nil
}

// procAddress resolves an export of the runtime's own module.
func (r *runtimeInfo) procAddress(name string) (uintptr, error) {
	cname, err := windows.BytePtrFromString(name)
	if err != nil {
		return 0, err
	}
	var proc uintptr
	hr, _, _ := syscall.SyscallN(r.vt().GetProcAddress, r.ptr,
		uintptr(unsafe.Pointer(cname)), uintptr(unsafe.Pointer(&proc)))
	if err := checkHR("GetProcAddress", hr); err != nil {
		return 0, err
	}
	return proc, nil
}

func (r *runtimeInfo) IdentityManager() (ports.IdentityManager, error) {
	return newIdentityManager(r)
}

func (r *runtimeInfo) RuntimeHost() (ports.RuntimeHost, error) {
	ptr, err := r.getInterface(&clsidCLRRuntimeHost, &iidICLRRuntimeHost)
	if err != nil {
		return nil, err
	}
	return &runtimeHost{ptr: ptr}, nil
}

func (r *runtimeInfo) CorHost() (ports.CorRuntimeHost, error) {
	ptr, err := r.getInterface(&clsidCorRuntimeHost, &iidICorRuntimeHost)
	if err != nil {
		return nil, err
	}
	return &corRuntimeHost{ptr: ptr}, nil
}
