//go:build windows

package clr

import (
	"unsafe"

	"clrhost-cli/internal/domain"
)

// stringSafeArray builds a one-dimensional SAFEARRAY of BSTR, the shape a
// managed string[] expects. PutElement copies each BSTR, so the temporaries
// are freed here.
func stringSafeArray(items []string) (uintptr, error) {
	psa, _, _ := procSafeArrayCreateVector.Call(vtBSTR, 0, uintptr(len(items)))
	if psa == 0 {
		return 0, domain.NewCallError("SafeArrayCreateVector", hrInsufficient)
	}
	for i, item := range items {
		bstr := sysAllocString(item)
		idx := int32(i)
		hr, _, _ := procSafeArrayPutElement.Call(psa,
			uintptr(unsafe.Pointer(&idx)), bstr)
		sysFreeString(bstr)
		if err := checkHR("SafeArrayPutElement", hr); err != nil {
			safeArrayDestroy(psa)
			return 0, err
		}
	}
	return psa, nil
}

// entryPointArgs wraps the argument strings the way a managed entry point
// receives them: a single-element VARIANT array whose one cell carries the
// string[] as VT_ARRAY|VT_BSTR. No arguments means no array at all.
func entryPointArgs(args []domain.Value) (uintptr, error) {
	if len(args) == 0 {
		return 0, nil
	}

	items := make([]string, len(args))
	for i, a := range args {
		s, err := a.String()
		if err != nil {
			return 0, err
		}
		items[i] = s
	}
	inner, err := stringSafeArray(items)
	if err != nil {
		return 0, err
	}

	outer, _, _ := procSafeArrayCreateVector.Call(vtVariant, 0, 1)
	if outer == 0 {
		safeArrayDestroy(inner)
		return 0, domain.NewCallError("SafeArrayCreateVector", hrInsufficient)
	}
	cell := variant{vt: vtArray | vtBSTR, val: uint64(inner)}
	idx := int32(0)
	hr, _, _ := procSafeArrayPutElement.Call(outer,
		uintptr(unsafe.Pointer(&idx)), uintptr(unsafe.Pointer(&cell)))
	// PutElement deep-copies an array-typed cell, so the inner array is
	// reclaimed here either way.
	safeArrayDestroy(inner)
	if err := checkHR("SafeArrayPutElement", hr); err != nil {
		safeArrayDestroy(outer)
		return 0, err
	}
	return outer, nil
}

// variantSafeArray builds the VT_VARIANT argument array for a reflection
// invocation. Values are encoded per cell; PutElement copies, so encoded
// temporaries are freed immediately.
func variantSafeArray(args []domain.Value) (uintptr, error) {
	if len(args) == 0 {
		return 0, nil
	}
	psa, _, _ := procSafeArrayCreateVector.Call(vtVariant, 0, uintptr(len(args)))
	if psa == 0 {
		return 0, domain.NewCallError("SafeArrayCreateVector", hrInsufficient)
	}
	for i, arg := range args {
		cell, err := encodeVariant(arg)
		if err != nil {
			safeArrayDestroy(psa)
			return 0, err
		}
		idx := int32(i)
		hr, _, _ := procSafeArrayPutElement.Call(psa,
			uintptr(unsafe.Pointer(&idx)), uintptr(unsafe.Pointer(&cell)))
		freeVariant(&cell)
		if err := checkHR("SafeArrayPutElement", hr); err != nil {
			safeArrayDestroy(psa)
			return 0, err
		}
	}
	return psa, nil
}

func safeArrayDestroy(psa uintptr) {
	if psa != 0 {
		procSafeArrayDestroy.Call(psa)
	}
}

func safeArrayBounds(psa uintptr) (int32, int32, error) {
	var lbound, ubound int32
	hr, _, _ := procSafeArrayGetLBound.Call(psa, 1, uintptr(unsafe.Pointer(&lbound)))
	if err := checkHR("SafeArrayGetLBound", hr); err != nil {
		return 0, 0, err
	}
	hr, _, _ = procSafeArrayGetUBound.Call(psa, 1, uintptr(unsafe.Pointer(&ubound)))
	if err := checkHR("SafeArrayGetUBound", hr); err != nil {
		return 0, 0, err
	}
	return lbound, ubound, nil
}

// safeArrayUnknowns extracts every interface pointer from a SAFEARRAY of
// IUnknown-compatible elements. GetElement AddRefs each extracted pointer;
// the caller releases them.
func safeArrayUnknowns(psa uintptr) ([]uintptr, error) {
	lbound, ubound, err := safeArrayBounds(psa)
	if err != nil {
		return nil, err
	}
	var out []uintptr
	for i := lbound; i <= ubound; i++ {
		var p uintptr
		idx := i
		hr, _, _ := procSafeArrayGetElement.Call(psa,
			uintptr(unsafe.Pointer(&idx)), uintptr(unsafe.Pointer(&p)))
		if err := checkHR("SafeArrayGetElement", hr); err != nil {
			for _, q := range out {
				release(q)
			}
			return nil, err
		}
		if p != 0 {
			out = append(out, p)
		}
	}
	return out, nil
}
