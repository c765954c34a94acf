//go:build windows

package clr

import (
	"syscall"
	"unsafe"

	"clrhost-cli/internal/domain"
)

type propertyInfoVtbl struct {
	iDispatchVtbl
	GetToString              uintptr
	Equals                   uintptr
	GetHashCode              uintptr
	GetType                  uintptr
	GetMemberType            uintptr
	GetName                  uintptr
	GetDeclaringType         uintptr
	GetReflectedType         uintptr
	GetCustomAttributes      uintptr
	GetCustomAttributesTyped uintptr
	IsDefined                uintptr
	GetPropertyType          uintptr
	GetValue                 uintptr
	GetValueIndexed          uintptr
	SetValue                 uintptr
	SetValueIndexed          uintptr
}

// propertyInfo wraps one _PropertyInfo member handle.
type propertyInfo struct {
	ptr uintptr
}

func (p *propertyInfo) vt() *propertyInfoVtbl {
	return (*propertyInfoVtbl)(unsafe.Pointer(vtbl(p.ptr)))
}

// Value reads the property from the given instance, or statically when the
// instance is empty. Index parameters apply to indexed properties only.
func (p *propertyInfo) Value(instance domain.Value, index []domain.Value) (domain.Value, error) {
	inst, err := encodeVariant(instance)
	if err != nil {
		return domain.Empty(), err
	}
	defer freeVariant(&inst)

	idx, err := variantSafeArray(index)
	if err != nil {
		return domain.Empty(), err
	}
	defer safeArrayDestroy(idx)

	ret := emptyVariant()
	hr, _, _ := syscall.SyscallN(p.vt().GetValue, p.ptr,
		uintptr(unsafe.Pointer(&inst)), idx,
		uintptr(unsafe.Pointer(&ret)))
	if err := checkHR("GetValue", hr); err != nil {
		return domain.Empty(), err
	}
	return decodeVariant(&ret)
}

func (p *propertyInfo) Release() {
	release(p.ptr)
	p.ptr = 0
}
