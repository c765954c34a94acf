//go:build windows

package clr

import (
	"fmt"
	"syscall"
	"unsafe"

	"clrhost-cli/internal/domain"
	"clrhost-cli/internal/ports"
)

// typeInfoVtbl names the _Type slots this package calls. The reflection
// vtable is long; the unused stretches collapse into padding arrays.
type typeInfoVtbl struct {
	iDispatchVtbl
	GetToString       uintptr
	memberSlots       [36]uintptr
	GetMethodTyped    uintptr
	GetMethodUntyped  uintptr
	GetMethods        uintptr
	fieldSlots        [10]uintptr
	InvokeMember      uintptr
	constructorSlots  [8]uintptr
	GetMethodByName   uintptr
	lookupSlots       [9]uintptr
	GetPropertyByName uintptr
}

// typeInfo wraps one _Type reflection surface.
type typeInfo struct {
	ptr uintptr
}

func (t *typeInfo) vt() *typeInfoVtbl {
	return (*typeInfoVtbl)(unsafe.Pointer(vtbl(t.ptr)))
}

// Method resolves a method by plain name. Overloaded names resolve to
// whichever overload reflection reports first.
func (t *typeInfo) Method(name string) (ports.Method, error) {
	bstr := sysAllocString(name)
	defer sysFreeString(bstr)

	var out uintptr
	hr, _, _ := syscall.SyscallN(t.vt().GetMethodByName, t.ptr,
		bstr, uintptr(unsafe.Pointer(&out)))
	if err := checkHR("GetMethod_6", hr); err != nil {
		return nil, err
	}
	if out == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrMethodNotFound, name)
	}
	return &methodInfo{ptr: out}, nil
}

// MethodBySignature scans every public method of the type for an exact
// display-form match, for example "Void Exit(Int32)". The scan is the
// fallback when a plain name is ambiguous.
func (t *typeInfo) MethodBySignature(signature string) (ports.Method, error) {
	var sa uintptr
	hr, _, _ := syscall.SyscallN(t.vt().GetMethods, t.ptr,
		uintptr(domain.EnumerationFlags()), uintptr(unsafe.Pointer(&sa)))
	if err := checkHR("GetMethods", hr); err != nil {
		return nil, err
	}
	defer safeArrayDestroy(sa)

	ptrs, err := safeArrayUnknowns(sa)
	if err != nil {
		return nil, err
	}

	var found ports.Method
	for _, p := range ptrs {
		m := &methodInfo{ptr: p}
		if found != nil {
			m.Release()
			continue
		}
		sig, err := m.Signature()
		if err != nil {
			m.Release()
			continue
		}
		if sig == signature {
			found = m
			continue
		}
		m.Release()
	}
	if found == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrMethodNotFound, signature)
	}
	return found, nil
}

// Property resolves a property by name.
func (t *typeInfo) Property(name string) (ports.Property, error) {
	bstr := sysAllocString(name)
	defer sysFreeString(bstr)

	var out uintptr
	hr, _, _ := syscall.SyscallN(t.vt().GetPropertyByName, t.ptr,
		bstr, uintptr(unsafe.Pointer(&out)))
	if err := checkHR("GetProperty_7", hr); err != nil {
		return nil, err
	}
	if out == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrPropertyNotFound, name)
	}
	return &propertyInfo{ptr: out}, nil
}

// Invoke performs a late-bound member invocation through InvokeMember,
// letting the runtime pick the overload for the given arguments.
func (t *typeInfo) Invoke(name string, flags domain.BindingFlags, instance domain.Value, args []domain.Value) (domain.Value, error) {
	bstr := sysAllocString(name)
	defer sysFreeString(bstr)

	inst, err := encodeVariant(instance)
	if err != nil {
		return domain.Empty(), err
	}
	defer freeVariant(&inst)

	params, err := variantSafeArray(args)
	if err != nil {
		return domain.Empty(), err
	}
	defer safeArrayDestroy(params)

	ret := emptyVariant()
	hr, _, _ := syscall.SyscallN(t.vt().InvokeMember, t.ptr,
		bstr, uintptr(flags), 0,
		uintptr(unsafe.Pointer(&inst)), params,
		uintptr(unsafe.Pointer(&ret)))
	if err := checkHR("InvokeMember_3", hr); err != nil {
		return domain.Empty(), err
	}
	return decodeVariant(&ret)
}
