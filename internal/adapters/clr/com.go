//go:build windows

package clr

import (
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"

	"clrhost-cli/internal/domain"
)

// The interfaces in this package are hand-laid vtables over raw COM
// pointers. The runtime's reflection surfaces are not declared in any Go
// binding, so each wrapper names only the slots it calls and leaves the
// rest as padding.

const (
	hrOK           = 0
	hrENointerface = -2147467262 // 0x80004002
	hrFileNotFound = -2147024894 // 0x80070002
	hrInsufficient = -2147024774 // 0x8007007A
)

// checkHR turns a raw HRESULT into an error. The hosting interfaces never
// use success codes other than S_OK, so anything non-zero is a failure.
func checkHR(op string, hr uintptr) error {
	if int32(hr) != hrOK {
		return domain.NewCallError(op, int32(hr))
	}
	return nil
}

// vtbl returns the first vtable slot pointer of a COM object.
func vtbl(this uintptr) uintptr {
	return *(*uintptr)(unsafe.Pointer(this))
}

// iUnknownVtbl is the prefix every COM vtable starts with.
type iUnknownVtbl struct {
	QueryInterface uintptr
	AddRef         uintptr
	Release        uintptr
}

// iDispatchVtbl is the prefix of every mscorlib reflection interface; the
// dispatch slots themselves are never called.
type iDispatchVtbl struct {
	iUnknownVtbl
	GetTypeInfoCount uintptr
	GetTypeInfo      uintptr
	GetIDsOfNames    uintptr
	Invoke           uintptr
}

func queryInterface(this uintptr, iid *windows.GUID) (uintptr, error) {
	v := (*iUnknownVtbl)(unsafe.Pointer(vtbl(this)))
	var out uintptr
	hr, _, _ := syscall.SyscallN(v.QueryInterface, this,
		uintptr(unsafe.Pointer(iid)), uintptr(unsafe.Pointer(&out)))
	if err := checkHR("QueryInterface", hr); err != nil {
		return 0, err
	}
	return out, nil
}

func addRef(this uintptr) {
	if this == 0 {
		return
	}
	v := (*iUnknownVtbl)(unsafe.Pointer(vtbl(this)))
	syscall.SyscallN(v.AddRef, this)
}

func release(this uintptr) {
	if this == 0 {
		return
	}
	v := (*iUnknownVtbl)(unsafe.Pointer(vtbl(this)))
	syscall.SyscallN(v.Release, this)
}
