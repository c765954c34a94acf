//go:build windows

package clr

import (
	"syscall"
	"unsafe"

	"clrhost-cli/internal/domain"
)

type methodInfoVtbl struct {
	iDispatchVtbl
	GetToString                  uintptr
	Equals                       uintptr
	GetHashCode                  uintptr
	GetType                      uintptr
	GetMemberType                uintptr
	GetName                      uintptr
	GetDeclaringType             uintptr
	GetReflectedType             uintptr
	GetCustomAttributes          uintptr
	GetCustomAttributesTyped     uintptr
	IsDefined                    uintptr
	GetParameters                uintptr
	GetMethodImplementationFlags uintptr
	GetMethodHandle              uintptr
	GetAttributes                uintptr
	GetCallingConvention         uintptr
	InvokeWithBinder             uintptr
	flagSlots                    [13]uintptr
	Invoke                       uintptr
}

// methodInfo wraps one _MethodInfo member handle.
type methodInfo struct {
	ptr uintptr
}

func (m *methodInfo) vt() *methodInfoVtbl {
	return (*methodInfoVtbl)(unsafe.Pointer(vtbl(m.ptr)))
}

// Signature returns the method's display form, for example
// "Void Exit(Int32)". Reflection's ToString is the canonical source.
func (m *methodInfo) Signature() (string, error) {
	var bstr uintptr
	hr, _, _ := syscall.SyscallN(m.vt().GetToString, m.ptr,
		uintptr(unsafe.Pointer(&bstr)))
	if err := checkHR("get_ToString", hr); err != nil {
		return "", err
	}
	s := bstrToString(bstr)
	sysFreeString(bstr)
	return s, nil
}

// Invoke calls the method on the given instance, or statically when the
// instance is empty.
func (m *methodInfo) Invoke(instance domain.Value, args []domain.Value) (domain.Value, error) {
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
	if err := m.invokeRaw(inst, params, &ret); err != nil {
		return domain.Empty(), err
	}
	return decodeVariant(&ret)
}

// invokeRaw performs Invoke_3 with already marshaled arguments. By-value
// VARIANT parameters travel by pointer on x64.
func (m *methodInfo) invokeRaw(instance variant, params uintptr, ret *variant) error {
	scratch := emptyVariant()
	if ret == nil {
		ret = &scratch
	}
	hr, _, _ := syscall.SyscallN(m.vt().Invoke, m.ptr,
		uintptr(unsafe.Pointer(&instance)), params,
		uintptr(unsafe.Pointer(ret)))
	if err := checkHR("Invoke_3", hr); err != nil {
		return err
	}
	if ret == &scratch {
		variantClear(&scratch)
	}
	return nil
}

// AsValue exposes the method itself as an object reference, for reflection
// chains that operate on MethodInfo instances. The returned value carries
// its own reference.
func (m *methodInfo) AsValue() (domain.Value, error) {
	addRef(m.ptr)
	return domain.FromObject(m.ptr), nil
}

func (m *methodInfo) Release() {
	release(m.ptr)
	m.ptr = 0
}
