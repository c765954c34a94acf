//go:build windows

package clr

import (
	"fmt"
	"syscall"
	"unsafe"

	"clrhost-cli/internal/domain"
	"clrhost-cli/internal/ports"
)

type assemblyVtbl struct {
	iDispatchVtbl
	GetToString        uintptr
	Equals             uintptr
	GetHashCode        uintptr
	GetType            uintptr
	GetCodeBase        uintptr
	GetEscapedCodeBase uintptr
	GetName            uintptr
	GetNameCopied      uintptr
	GetFullName        uintptr
	GetEntryPoint      uintptr
	GetTypeByName      uintptr
	middleSlots        [23]uintptr
	CreateInstance     uintptr
}

// assembly wraps one _Assembly reflection surface.
type assembly struct {
	ptr uintptr
}

func (a *assembly) vt() *assemblyVtbl {
	return (*assemblyVtbl)(unsafe.Pointer(vtbl(a.ptr)))
}

func (a *assembly) release() {
	release(a.ptr)
	a.ptr = 0
}

// displayName returns the assembly's full display name, the same string
// the identity manager computes for its image.
func (a *assembly) displayName() (string, error) {
	var bstr uintptr
	hr, _, _ := syscall.SyscallN(a.vt().GetToString, a.ptr,
		uintptr(unsafe.Pointer(&bstr)))
	if err := checkHR("get_ToString", hr); err != nil {
		return "", err
	}
	s := bstrToString(bstr)
	sysFreeString(bstr)
	return s, nil
}

// Type resolves a type by its namespace-qualified name.
func (a *assembly) Type(name string) (ports.Type, error) {
	bstr := sysAllocString(name)
	defer sysFreeString(bstr)

	var out uintptr
	hr, _, _ := syscall.SyscallN(a.vt().GetTypeByName, a.ptr,
		bstr, uintptr(unsafe.Pointer(&out)))
	if err := checkHR("GetType_2", hr); err != nil {
		return nil, err
	}
	// GetType_2 reports success with a null result when the type does not
	// exist in the assembly.
	if out == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrTypeNotFound, name)
	}
	return &typeInfo{ptr: out}, nil
}

// CreateInstance constructs an object of the named type with its default
// constructor.
func (a *assembly) CreateInstance(typeName string) (domain.Value, error) {
	bstr := sysAllocString(typeName)
	defer sysFreeString(bstr)

	ret := emptyVariant()
	hr, _, _ := syscall.SyscallN(a.vt().CreateInstance, a.ptr,
		bstr, uintptr(unsafe.Pointer(&ret)))
	if err := checkHR("CreateInstance", hr); err != nil {
		return domain.Empty(), err
	}
	v, err := decodeVariant(&ret)
	if err != nil {
		return domain.Empty(), err
	}
	if v.IsEmpty() {
		return domain.Empty(), fmt.Errorf("%w: %s", domain.ErrTypeNotFound, typeName)
	}
	return v, nil
}

// RunEntryPoint invokes the assembly's entry point with the given argument
// strings marshaled the way Main(string[]) expects them.
func (a *assembly) RunEntryPoint(args []domain.Value) error {
	var entry uintptr
	hr, _, _ := syscall.SyscallN(a.vt().GetEntryPoint, a.ptr,
		uintptr(unsafe.Pointer(&entry)))
	if err := checkHR("get_EntryPoint", hr); err != nil {
		return err
	}
	if entry == 0 {
		return fmt.Errorf("%w: no entry point", domain.ErrMethodNotFound)
	}
	m := &methodInfo{ptr: entry}
	defer m.Release()

	params, err := entryPointArgs(args)
	if err != nil {
		return err
	}
	defer safeArrayDestroy(params)

	return m.invokeRaw(emptyVariant(), params, nil)
}
